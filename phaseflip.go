package qsim

import (
	"context"

	"github.com/theapemachine/errnie"
)

/*
BuildPhaseFlipCircuit constructs the three-qubit phase-flip repetition
code on a fresh register of 3 qubits and 1 classical bit. Qubit 0 carries
the logical value; when flip is set it is prepared in |1> before encoding.

The fixed sequence: entangle q0 across q1 and q2, rotate all three into
the sign basis, inject a deliberate Z fault on q0, rotate back, undo the
entangling step, majority-correct q0 with a Toffoli controlled by q1 and
q2, then read q0 out into the classical bit. On an ideal backend the
measured bit equals the prepared logical value on every shot.
*/
func BuildPhaseFlipCircuit(flip bool) *Circuit {
	qc := NewCircuit(3, 1)
	if flip {
		qc.X(0)
	}
	qc.CX(0, 1).CX(0, 2)
	qc.H(0).H(1).H(2)
	qc.Z(0) // injected fault
	qc.H(0).H(1).H(2)
	qc.CX(0, 1).CX(0, 2)
	qc.CCX(1, 2, 0)
	qc.Measure(0, 0)
	return qc
}

// RunPhaseFlipDemo executes the error-correction circuit on the given
// backend and returns its outcome distribution.
func RunPhaseFlipDemo(ctx context.Context, backend Backend, shots int, flip bool) (*Result, error) {
	qc := BuildPhaseFlipCircuit(flip)
	if err := qc.Err(); err != nil {
		return nil, err
	}
	errnie.Info("phase-flip demo on %s, shots %d, flip %v", backend.Name(), shots, flip)
	return backend.Run(ctx, qc, shots)
}
