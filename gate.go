package qsim

// GateKind identifies a circuit operation.
type GateKind int

const (
	GateH GateKind = iota
	GateX
	GateZ
	GateCX
	GateCZ
	GateCCX
	GateMeasure
)

func (k GateKind) String() string {
	switch k {
	case GateH:
		return "h"
	case GateX:
		return "x"
	case GateZ:
		return "z"
	case GateCX:
		return "cx"
	case GateCZ:
		return "cz"
	case GateCCX:
		return "ccx"
	case GateMeasure:
		return "measure"
	default:
		return "unknown"
	}
}

/*
Gate is a single gate-application record: the operation, the qubit it acts
on, any control qubits, and the classical slot a measurement writes to.
Records are appended to a Circuit in order and never mutated afterwards.
*/
type Gate struct {
	Kind     GateKind
	Target   int
	Controls []int
	Clbit    int // classical slot for measurements, -1 otherwise
}

// operands returns every qubit index the gate touches.
func (g Gate) operands() []int {
	return append([]int{g.Target}, g.Controls...)
}
