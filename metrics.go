package qsim

import (
	"sort"
	"sync"
	"time"
)

/*
Metrics tracks execution statistics for a queued backend: how many jobs
ran, how many failed, and how long runs take. Latency percentiles come
from a sliding window of the most recent measurements.
*/
type Metrics struct {
	mu           sync.RWMutex
	JobCount     int64
	FailureCount int64
	TotalRunTime time.Duration

	AverageRunTime time.Duration
	P95RunTime     time.Duration

	latencies  []time.Duration
	windowSize int
}

func NewMetrics() *Metrics {
	return &Metrics{
		latencies:  make([]time.Duration, 0, 1000),
		windowSize: 1000,
	}
}

// recordJob accounts one job execution, successful or not.
func (m *Metrics) recordJob(start time.Time, err error) {
	duration := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.JobCount++
	if err != nil {
		m.FailureCount++
	}
	m.TotalRunTime += duration
	m.AverageRunTime = m.TotalRunTime / time.Duration(m.JobCount)

	m.latencies = append(m.latencies, duration)
	if len(m.latencies) > m.windowSize {
		m.latencies = m.latencies[1:]
	}
	sorted := make([]time.Duration, len(m.latencies))
	copy(sorted, m.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(float64(len(sorted)) * 0.95)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	m.P95RunTime = sorted[idx]
}

// Export returns a snapshot suitable for logging or dashboards.
func (m *Metrics) Export() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	successRate := 1.0
	if m.JobCount > 0 {
		successRate = float64(m.JobCount-m.FailureCount) / float64(m.JobCount)
	}
	return map[string]any{
		"job_count":    m.JobCount,
		"failures":     m.FailureCount,
		"success_rate": successRate,
		"avg_run_ms":   m.AverageRunTime.Milliseconds(),
		"p95_run_ms":   m.P95RunTime.Milliseconds(),
	}
}
