package qsim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
)

/*
LocalSimulator is an ideal (noiseless) statevector backend. Every shot
replays the full gate sequence on a fresh |0...0> register, sampling each
measurement against the exact amplitudes, so a fixed circuit always
reproduces the same aggregate distribution.

The sampler is seedable for reproducible runs; the zero value of the seed
option is never used implicitly, an unseeded simulator draws from a
randomly initialized generator.
*/
type LocalSimulator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	maxQubits int
}

// SimulatorOption configures a LocalSimulator.
type SimulatorOption func(*LocalSimulator)

// WithSeed makes the simulator's sampling reproducible.
func WithSeed(seed uint64) SimulatorOption {
	return func(s *LocalSimulator) {
		s.rng = rand.New(rand.NewPCG(seed, seed<<32|seed>>32))
	}
}

// WithMaxQubits caps the register size the simulator accepts.
func WithMaxQubits(n int) SimulatorOption {
	return func(s *LocalSimulator) {
		s.maxQubits = n
	}
}

// NewLocalSimulator creates an ideal simulator backend.
func NewLocalSimulator(opts ...SimulatorOption) *LocalSimulator {
	sim := &LocalSimulator{
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		maxQubits: 24, // amplitude vector stays under a few hundred MB
	}
	for _, opt := range opts {
		opt(sim)
	}
	return sim
}

func (s *LocalSimulator) Name() string    { return "qsim-statevector" }
func (s *LocalSimulator) MaxQubits() int  { return s.maxQubits }
func (s *LocalSimulator) Simulator() bool { return true }

// Run executes the circuit shot by shot and aggregates outcome counts.
func (s *LocalSimulator) Run(ctx context.Context, qc *Circuit, shots int) (*Result, error) {
	if err := qc.Err(); err != nil {
		return nil, fmt.Errorf("invalid circuit: %w", err)
	}
	if qc.Qubits() > s.maxQubits {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyQubits, qc.Qubits(), s.maxQubits)
	}
	if shots < 1 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for shot := 0; shot < shots; shot++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		state := NewStateVector(qc.Qubits())
		clbits := make([]int, qc.Clbits())
		for _, g := range qc.gates {
			if g.Kind == GateMeasure {
				clbits[g.Clbit] = state.measure(g.Target, s.rng)
				continue
			}
			state.apply(g)
		}
		counts[formatBits(clbits)]++
	}

	qc.Seal()
	return &Result{Backend: s.Name(), Shots: shots, Counts: counts}, nil
}
