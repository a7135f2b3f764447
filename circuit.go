package qsim

import (
	"errors"
	"fmt"
)

// ErrCircuitSealed is returned when gates are appended after execution.
var ErrCircuitSealed = errors.New("circuit is sealed after execution")

/*
Circuit is an ordered, append-only sequence of gate records over a fixed
register. Builder methods chain and record the first invalid append in a
sticky error, so a full gate sequence can be written without interleaved
checks; the error surfaces from Err and from any backend Run.

A circuit becomes immutable once a backend has executed it.
*/
type Circuit struct {
	reg    *Register
	gates  []Gate
	sealed bool
	err    error
}

// NewCircuit allocates a circuit over the given qubit and classical slots.
func NewCircuit(qubits, clbits int) *Circuit {
	reg, err := NewRegister(qubits, clbits)
	return &Circuit{reg: reg, err: err}
}

// H appends a Hadamard on qubit q.
func (c *Circuit) H(q int) *Circuit {
	return c.append(Gate{Kind: GateH, Target: q, Clbit: -1})
}

// X appends a bit-flip on qubit q.
func (c *Circuit) X(q int) *Circuit {
	return c.append(Gate{Kind: GateX, Target: q, Clbit: -1})
}

// Z appends a phase-flip on qubit q.
func (c *Circuit) Z(q int) *Circuit {
	return c.append(Gate{Kind: GateZ, Target: q, Clbit: -1})
}

// CX appends a controlled bit-flip of target, controlled by control.
func (c *Circuit) CX(control, target int) *Circuit {
	return c.append(Gate{Kind: GateCX, Target: target, Controls: []int{control}, Clbit: -1})
}

// CZ appends a controlled phase-flip between the two qubits.
func (c *Circuit) CZ(control, target int) *Circuit {
	return c.append(Gate{Kind: GateCZ, Target: target, Controls: []int{control}, Clbit: -1})
}

// CCX appends a Toffoli: flip target when both controls are set.
func (c *Circuit) CCX(control1, control2, target int) *Circuit {
	return c.append(Gate{Kind: GateCCX, Target: target, Controls: []int{control1, control2}, Clbit: -1})
}

// Measure appends a measurement of qubit q into classical slot clbit.
func (c *Circuit) Measure(q, clbit int) *Circuit {
	return c.append(Gate{Kind: GateMeasure, Target: q, Clbit: clbit})
}

// Err reports the first invalid append, or nil.
func (c *Circuit) Err() error {
	return c.err
}

// Qubits returns the number of qubit slots, 0 when allocation failed.
func (c *Circuit) Qubits() int {
	if c.reg == nil {
		return 0
	}
	return c.reg.Qubits
}

// Clbits returns the number of classical slots, 0 when allocation failed.
func (c *Circuit) Clbits() int {
	if c.reg == nil {
		return 0
	}
	return c.reg.Clbits
}

// Size returns the number of appended gate records.
func (c *Circuit) Size() int {
	return len(c.gates)
}

// Gates returns a copy of the gate sequence in append order.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

func (c *Circuit) append(g Gate) *Circuit {
	if c.err != nil {
		return c
	}
	if c.sealed {
		c.err = ErrCircuitSealed
		return c
	}
	if err := c.validate(g); err != nil {
		c.err = err
		return c
	}
	c.gates = append(c.gates, g)
	return c
}

func (c *Circuit) validate(g Gate) error {
	seen := make(map[int]bool, len(g.Controls)+1)
	for _, q := range g.operands() {
		if !c.reg.validQubit(q) {
			return fmt.Errorf("%s: qubit %d out of range [0,%d)", g.Kind, q, c.reg.Qubits)
		}
		if seen[q] {
			return fmt.Errorf("%s: qubit %d used twice in one gate", g.Kind, q)
		}
		seen[q] = true
	}
	if g.Kind == GateMeasure && !c.reg.validClbit(g.Clbit) {
		return fmt.Errorf("%s: classical bit %d out of range [0,%d)", g.Kind, g.Clbit, c.reg.Clbits)
	}
	return nil
}

// Seal marks the circuit immutable. Backends call this after a successful
// run so that an executed gate sequence can no longer change.
func (c *Circuit) Seal() {
	c.sealed = true
}
