package qsim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/theapemachine/errnie"
)

var (
	// ErrQueueTimeout is returned when a queued job's result never arrives.
	ErrQueueTimeout = errors.New("timed out waiting for queued job")
	// ErrQueueFull is returned when the device queue rejects a submission.
	ErrQueueFull = errors.New("device queue is full")
	// ErrQueueClosed is returned when the queue backend has been shut down.
	ErrQueueClosed = errors.New("device queue is closed")
	// ErrBreakerOpen is returned while the backend's circuit breaker is open.
	ErrBreakerOpen = errors.New("backend circuit breaker is open")
)

type jobResult struct {
	res *Result
	err error
}

/*
QueueBackend models a shared quantum device sitting behind a submission
queue. Jobs are accepted up to the queue depth, executed one at a time by
the device after a simulated queue delay, and handed back to the blocked
caller. From the caller's side Run behaves exactly like a local backend,
except it can also fail with a queue-full, timeout or breaker-open error.

A retry policy (if configured) re-attempts submissions rejected by a full
queue; a circuit breaker (if configured) sheds jobs once the device keeps
failing. Execution metrics are recorded per job.
*/
type QueueBackend struct {
	inner   Backend
	config  *Config
	breaker *CircuitBreaker
	retry   *RetryPolicy
	metrics *Metrics

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	jobs   chan *Job
	seq    atomic.Int64

	mu      sync.Mutex
	waiting map[string]chan jobResult
}

// QueueOption configures a QueueBackend.
type QueueOption func(*QueueBackend)

// WithRetryPolicy retries submissions rejected by a full queue.
func WithRetryPolicy(p *RetryPolicy) QueueOption {
	return func(qb *QueueBackend) {
		qb.retry = p
	}
}

// WithBreaker guards submissions with a circuit breaker.
func WithBreaker(cb *CircuitBreaker) QueueOption {
	return func(qb *QueueBackend) {
		qb.breaker = cb
	}
}

// NewQueueBackend wraps inner behind a device queue and starts its dispatcher.
func NewQueueBackend(ctx context.Context, inner Backend, config *Config, opts ...QueueOption) *QueueBackend {
	if config == nil {
		config = NewConfig()
	}
	ctx, cancel := context.WithCancel(ctx)
	qb := &QueueBackend{
		inner:   inner,
		config:  config,
		metrics: NewMetrics(),
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(chan *Job, config.QueueDepth),
		waiting: make(map[string]chan jobResult),
	}
	for _, opt := range opts {
		opt(qb)
	}

	qb.wg.Add(1)
	go func() {
		defer qb.wg.Done()
		qb.dispatch()
	}()

	errnie.Info("queue backend started for %s, depth %d", inner.Name(), config.QueueDepth)
	return qb
}

func (qb *QueueBackend) Name() string    { return qb.inner.Name() + "-queue" }
func (qb *QueueBackend) MaxQubits() int  { return qb.inner.MaxQubits() }
func (qb *QueueBackend) Simulator() bool { return qb.inner.Simulator() }

// Metrics returns the backend's execution statistics.
func (qb *QueueBackend) Metrics() *Metrics {
	return qb.metrics
}

/*
Run submits the circuit to the device queue and blocks until its result
arrives, the queue timeout elapses, or the caller's context is cancelled.
Any failure is terminal for this run; nothing is re-executed on the
caller's behalf beyond the configured submission retries.
*/
func (qb *QueueBackend) Run(ctx context.Context, qc *Circuit, shots int) (*Result, error) {
	if qb.breaker != nil && !qb.breaker.Allow() {
		return nil, fmt.Errorf("%s: %w", qb.Name(), ErrBreakerOpen)
	}

	start := time.Now()
	job := &Job{
		ID:          fmt.Sprintf("job-%d", qb.seq.Add(1)),
		Circuit:     qc,
		Shots:       shots,
		SubmittedAt: start,
	}

	ch := qb.registerWaiter(job.ID)
	if err := qb.submit(ctx, job); err != nil {
		qb.dropWaiter(job.ID)
		qb.record(start, err)
		return nil, err
	}

	select {
	case r := <-ch:
		qb.record(start, r.err)
		if r.err != nil {
			return nil, fmt.Errorf("%s %s: %w", qb.Name(), job.ID, r.err)
		}
		return r.res, nil
	case <-time.After(qb.config.QueueTimeout):
		qb.dropWaiter(job.ID)
		qb.record(start, ErrQueueTimeout)
		return nil, fmt.Errorf("%s %s: %w", qb.Name(), job.ID, ErrQueueTimeout)
	case <-ctx.Done():
		qb.dropWaiter(job.ID)
		return nil, ctx.Err()
	case <-qb.ctx.Done():
		qb.dropWaiter(job.ID)
		return nil, ErrQueueClosed
	}
}

// submit places the job on the queue, retrying full-queue rejections per policy.
func (qb *QueueBackend) submit(ctx context.Context, job *Job) error {
	attempts := 1
	var strategy RetryStrategy = &ExponentialBackoff{Initial: 10 * time.Millisecond}
	if qb.retry != nil {
		attempts = qb.retry.MaxAttempts
		strategy = qb.retry.Strategy
	}

	for job.Attempt = 0; job.Attempt < attempts; job.Attempt++ {
		if job.Attempt > 0 {
			errnie.Info("job %s resubmitting, attempt %d", job.ID, job.Attempt+1)
			time.Sleep(strategy.NextDelay(job.Attempt))
		}
		select {
		case qb.jobs <- job:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-qb.ctx.Done():
			return ErrQueueClosed
		default:
			job.LastError = ErrQueueFull
		}
		if qb.retry != nil && qb.retry.Filter != nil && !qb.retry.Filter(job.LastError) {
			break
		}
	}
	return fmt.Errorf("submit %s: %w", job.ID, job.LastError)
}

// dispatch is the device loop: one job at a time, after the queue delay.
func (qb *QueueBackend) dispatch() {
	for {
		select {
		case <-qb.ctx.Done():
			return
		case job := <-qb.jobs:
			if qb.config.QueueLatency > 0 {
				select {
				case <-time.After(qb.config.QueueLatency):
				case <-qb.ctx.Done():
					return
				}
			}
			res, err := qb.inner.Run(qb.ctx, job.Circuit, job.Shots)
			qb.deliver(job.ID, res, err)
		}
	}
}

func (qb *QueueBackend) registerWaiter(id string) chan jobResult {
	qb.mu.Lock()
	defer qb.mu.Unlock()
	ch := make(chan jobResult, 1)
	qb.waiting[id] = ch
	return ch
}

func (qb *QueueBackend) dropWaiter(id string) {
	qb.mu.Lock()
	defer qb.mu.Unlock()
	delete(qb.waiting, id)
}

// deliver hands a finished job back to its waiter, if it is still there.
func (qb *QueueBackend) deliver(id string, res *Result, err error) {
	qb.mu.Lock()
	defer qb.mu.Unlock()
	if ch, ok := qb.waiting[id]; ok {
		ch <- jobResult{res: res, err: err}
		delete(qb.waiting, id)
	}
}

func (qb *QueueBackend) record(start time.Time, err error) {
	qb.metrics.recordJob(start, err)
	if qb.breaker == nil {
		return
	}
	if err != nil {
		qb.breaker.RecordFailure()
	} else {
		qb.breaker.RecordSuccess()
	}
}

// Close stops the dispatcher and fails any pending Run with ErrQueueClosed.
func (qb *QueueBackend) Close() {
	if qb == nil {
		return
	}
	qb.cancel()
	qb.wg.Wait()
	errnie.Info("queue backend for %s closed", qb.inner.Name())
}
