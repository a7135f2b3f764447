package qsim

import "time"

// Config holds tunables for queued execution.
type Config struct {
	QueueTimeout time.Duration // max wait for a queued job result
	QueueLatency time.Duration // simulated device queue delay per job
	QueueDepth   int           // pending jobs accepted before the queue is full
	DefaultShots int
}

func NewConfig() *Config {
	return &Config{
		QueueTimeout: 10 * time.Second,
		QueueLatency: 5 * time.Millisecond,
		QueueDepth:   64,
		DefaultShots: 1024,
	}
}
