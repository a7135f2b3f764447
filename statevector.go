package qsim

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
)

/*
StateVector holds the full 2^n amplitude vector of an n-qubit register.
Basis state i has qubit q set when bit q of i is set, so qubit 0 is the
least significant bit of the index. A fresh vector is the deterministic
all-zero basis state |0...0>.

Gate application walks the amplitude slice with bit masks rather than
building explicit unitary matrices; for the register sizes this library
targets that is both simpler and faster.
*/
type StateVector struct {
	amps   []complex128
	qubits int
}

// NewStateVector allocates the |0...0> state over the given qubit count.
func NewStateVector(qubits int) *StateVector {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &StateVector{amps: amps, qubits: qubits}
}

// Amplitudes returns a copy of the amplitude vector.
func (s *StateVector) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// Probabilities returns |amplitude|^2 per basis state.
func (s *StateVector) Probabilities() []float64 {
	out := make([]float64, len(s.amps))
	for i, a := range s.amps {
		out[i] = real(a * cmplx.Conj(a))
	}
	return out
}

func (s *StateVector) apply(g Gate) {
	switch g.Kind {
	case GateH:
		s.applyH(g.Target)
	case GateX:
		s.applyX(g.Target)
	case GateZ:
		s.applyZ(g.Target)
	case GateCX:
		s.applyCX(g.Controls[0], g.Target)
	case GateCZ:
		s.applyCZ(g.Controls[0], g.Target)
	case GateCCX:
		s.applyCCX(g.Controls[0], g.Controls[1], g.Target)
	}
}

func (s *StateVector) applyH(q int) {
	factor := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	next := make([]complex128, len(s.amps))
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = factor * (s.amps[i] + s.amps[j])
			next[j] = factor * (s.amps[i] - s.amps[j])
		}
	}
	s.amps = next
}

func (s *StateVector) applyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *StateVector) applyZ(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *StateVector) applyCZ(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

func (s *StateVector) applyCCX(control1, control2, target int) {
	c1Bit, c2Bit, tBit := 1<<control1, 1<<control2, 1<<target
	for i := range s.amps {
		if i&c1Bit != 0 && i&c2Bit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

/*
measure samples qubit q against its marginal probability, collapses the
vector onto the observed branch and renormalizes. The outcome of a single
call is probabilistic; only the distribution over many fresh runs is
deterministic for a given circuit.
*/
func (s *StateVector) measure(q int, rng *rand.Rand) int {
	bit := 1 << q
	p1 := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p1 += real(a * cmplx.Conj(a))
		}
	}

	outcome := 0
	keep := 1 - p1
	if rng.Float64() < p1 {
		outcome = 1
		keep = p1
	}

	norm := math.Sqrt(keep)
	if norm == 0 {
		norm = 1
	}
	for i := range s.amps {
		set := i&bit != 0
		if set == (outcome == 1) {
			s.amps[i] /= complex(norm, 0)
		} else {
			s.amps[i] = 0
		}
	}
	return outcome
}
