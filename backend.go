package qsim

import (
	"context"
	"errors"
)

// ErrTooManyQubits is returned when a circuit exceeds a backend's capacity.
var ErrTooManyQubits = errors.New("circuit exceeds backend qubit capacity")

/*
Backend executes circuits. Implementations own all execution state; callers
pass the backend in explicitly rather than reaching for any shared session.

Run repeats the circuit for the given number of shots and returns the
aggregated outcome distribution. It may block (a queued device) and fails
terminally on any backend error. Implementations call Circuit.Seal after a
successful run so the executed gate sequence stays immutable.
*/
type Backend interface {
	Name() string
	MaxQubits() int
	Simulator() bool
	Run(ctx context.Context, qc *Circuit, shots int) (*Result, error)
}
