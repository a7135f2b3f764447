package qsim

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLocalSimulator(t *testing.T) {
	Convey("Given an ideal local simulator", t, func() {
		sim := NewLocalSimulator(WithSeed(42))
		ctx := context.Background()

		Convey("A deterministic circuit yields a single outcome", func() {
			qc := NewCircuit(1, 1)
			qc.X(0).Measure(0, 0)

			res, err := sim.Run(ctx, qc, 256)
			So(err, ShouldBeNil)
			So(res.Counts["1"], ShouldEqual, 256)
			So(res.Probability("1"), ShouldAlmostEqual, 1.0)
			So(res.Backend, ShouldEqual, "qsim-statevector")
		})

		Convey("Counts always sum to the shot total", func() {
			qc := NewCircuit(2, 2)
			qc.H(0).H(1).Measure(0, 0).Measure(1, 1)

			res, err := sim.Run(ctx, qc, 500)
			So(err, ShouldBeNil)
			total := 0
			for _, count := range res.Counts {
				total += count
			}
			So(total, ShouldEqual, 500)
		})

		Convey("The same seed reproduces the same distribution", func() {
			build := func() *Circuit {
				qc := NewCircuit(2, 2)
				return qc.H(0).CX(0, 1).Measure(0, 0).Measure(1, 1)
			}

			first, err := NewLocalSimulator(WithSeed(99)).Run(ctx, build(), 300)
			So(err, ShouldBeNil)
			second, err := NewLocalSimulator(WithSeed(99)).Run(ctx, build(), 300)
			So(err, ShouldBeNil)
			So(second.Counts, ShouldResemble, first.Counts)
		})

		Convey("A builder error surfaces from Run", func() {
			qc := NewCircuit(1, 1)
			qc.X(5).Measure(0, 0)

			_, err := sim.Run(ctx, qc, 10)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "out of range")
		})

		Convey("A circuit over capacity is rejected", func() {
			small := NewLocalSimulator(WithMaxQubits(1))
			qc := NewCircuit(2, 1)
			qc.H(0).Measure(0, 0)

			_, err := small.Run(ctx, qc, 10)
			So(errors.Is(err, ErrTooManyQubits), ShouldBeTrue)
		})

		Convey("A non-positive shot count is rejected", func() {
			qc := NewCircuit(1, 1)
			qc.Measure(0, 0)

			_, err := sim.Run(ctx, qc, 0)
			So(err, ShouldNotBeNil)
		})

		Convey("A cancelled context stops the run", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			qc := NewCircuit(1, 1)
			qc.H(0).Measure(0, 0)
			_, err := sim.Run(cancelled, qc, 10)
			So(err, ShouldEqual, context.Canceled)
		})
	})
}

func TestResult(t *testing.T) {
	Convey("Given an outcome distribution", t, func() {
		res := &Result{
			Backend: "test",
			Shots:   10,
			Counts:  map[string]int{"00": 3, "11": 7},
		}

		Convey("Probability divides by the shot total", func() {
			So(res.Probability("11"), ShouldAlmostEqual, 0.7)
			So(res.Probability("01"), ShouldAlmostEqual, 0.0)
		})

		Convey("Top returns the most frequent outcome", func() {
			outcome, count := res.Top()
			So(outcome, ShouldEqual, "11")
			So(count, ShouldEqual, 7)
		})

		Convey("Bit-strings put classical slot 0 rightmost", func() {
			So(formatBits([]int{1, 0}), ShouldEqual, "01")
			So(formatBits([]int{0, 1}), ShouldEqual, "10")
		})
	})
}
