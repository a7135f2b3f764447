package qsim

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGroverCircuitStructure(t *testing.T) {
	Convey("Given the two-qubit Grover circuit", t, func() {
		qc := BuildGroverCircuit()

		So(qc.Err(), ShouldBeNil)
		So(qc.Qubits(), ShouldEqual, 2)
		So(qc.Clbits(), ShouldEqual, 2)

		Convey("The gate sequence is exactly one Grover iteration", func() {
			kinds := make([]GateKind, 0, qc.Size())
			for _, g := range qc.Gates() {
				kinds = append(kinds, g.Kind)
			}
			So(kinds, ShouldResemble, []GateKind{
				GateH, GateH, // superposition
				GateCZ,       // oracle
				GateH, GateH, GateZ, GateZ, GateCZ, GateH, GateH, // diffusion
				GateMeasure, GateMeasure,
			})
		})
	})
}

func TestGroverSearch(t *testing.T) {
	Convey("Given an ideal simulator and 1000 shots", t, func() {
		ctx := context.Background()
		sim := NewLocalSimulator(WithSeed(42))

		res, err := RunGroverDemo(ctx, sim, 1000)
		So(err, ShouldBeNil)
		spew.Dump(res.Counts)

		Convey("The marked state dominates the distribution", func() {
			So(res.Counts[GroverMarkedState], ShouldBeGreaterThanOrEqualTo, 950)

			unmarked := 0
			for outcome, count := range res.Counts {
				if outcome != GroverMarkedState {
					unmarked += count
				}
			}
			So(unmarked, ShouldBeLessThanOrEqualTo, 50)
		})

		Convey("The marked state clears the uniform baseline", func() {
			So(res.Probability(GroverMarkedState), ShouldBeGreaterThan, 0.25)
			outcome, _ := res.Top()
			So(outcome, ShouldEqual, GroverMarkedState)
		})
	})
}
