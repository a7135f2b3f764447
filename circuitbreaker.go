package qsim

import (
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

// BreakerState tracks the operational mode of a circuit breaker.
type BreakerState int

const (
	BreakerClosed   BreakerState = iota // normal operation, submissions allowed
	BreakerOpen                         // failure threshold reached, submissions rejected
	BreakerHalfOpen                     // probationary, limited submissions allowed
)

/*
CircuitBreaker sheds submissions to a backend that keeps failing. Remote
devices fail as a unit (offline, mid-calibration, queue wedged), so after
maxFailures consecutive errors the breaker opens and rejects jobs outright
instead of letting every caller ride out its own timeout. After
resetTimeout it admits up to halfOpenMax probe jobs; enough successes close
it again, one failure reopens it.
*/
type CircuitBreaker struct {
	mu               sync.Mutex
	maxFailures      int
	resetTimeout     time.Duration
	halfOpenMax      int
	failureCount     int
	state            BreakerState
	openedAt         time.Time
	halfOpenAttempts int
}

// NewCircuitBreaker creates a breaker in the closed state.
func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration, halfOpenMax int) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		halfOpenMax:  halfOpenMax,
		state:        BreakerClosed,
	}
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// RecordFailure counts a failed job and opens the breaker at the threshold.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failureCount++
	if cb.failureCount < cb.maxFailures {
		return
	}
	switch cb.state {
	case BreakerHalfOpen:
		cb.state = BreakerOpen
		cb.openedAt = time.Now()
		errnie.Info("circuit breaker reopened from half-open")
	case BreakerClosed:
		cb.state = BreakerOpen
		cb.openedAt = time.Now()
		errnie.Info("circuit breaker opened after %d failures", cb.failureCount)
	}
}

// RecordSuccess counts a completed job; enough half-open successes close the breaker.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerHalfOpen:
		cb.halfOpenAttempts++
		if cb.halfOpenAttempts >= cb.halfOpenMax {
			cb.state = BreakerClosed
			cb.failureCount = 0
			cb.halfOpenAttempts = 0
			errnie.Info("circuit breaker closed from half-open")
		}
	case BreakerClosed:
		cb.failureCount = 0
	}
}

// Allow reports whether a submission may proceed right now.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerClosed:
		return true
	case BreakerOpen:
		if time.Since(cb.openedAt) > cb.resetTimeout {
			cb.state = BreakerHalfOpen
			cb.halfOpenAttempts = 0
			return true
		}
		return false
	case BreakerHalfOpen:
		return cb.halfOpenAttempts < cb.halfOpenMax
	default:
		return false
	}
}
