package qsim

import "fmt"

/*
Register describes the slots a circuit acts on: an ordered sequence of
qubits, each starting in |0>, and an ordered sequence of classical bits
that receive measurement outcomes. Both are addressed by index.
*/
type Register struct {
	Qubits int
	Clbits int
}

// NewRegister allocates a register description.
func NewRegister(qubits, clbits int) (*Register, error) {
	if qubits < 1 {
		return nil, fmt.Errorf("register needs at least one qubit, got %d", qubits)
	}
	if clbits < 0 {
		return nil, fmt.Errorf("register cannot have %d classical bits", clbits)
	}
	return &Register{Qubits: qubits, Clbits: clbits}, nil
}

func (r *Register) validQubit(i int) bool {
	return i >= 0 && i < r.Qubits
}

func (r *Register) validClbit(i int) bool {
	return i >= 0 && i < r.Clbits
}
