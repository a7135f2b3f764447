package qsim

import (
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStateVector(t *testing.T) {
	Convey("Given a fresh statevector", t, func() {
		Convey("It starts in the all-zero basis state", func() {
			s := NewStateVector(2)
			probs := s.Probabilities()
			So(probs[0], ShouldAlmostEqual, 1.0)
			So(probs[1], ShouldAlmostEqual, 0.0)
			So(probs[2], ShouldAlmostEqual, 0.0)
			So(probs[3], ShouldAlmostEqual, 0.0)
		})

		Convey("Hadamard produces a uniform superposition", func() {
			s := NewStateVector(1)
			s.applyH(0)
			probs := s.Probabilities()
			So(probs[0], ShouldAlmostEqual, 0.5)
			So(probs[1], ShouldAlmostEqual, 0.5)
		})

		Convey("X flips the basis state", func() {
			s := NewStateVector(1)
			s.applyX(0)
			probs := s.Probabilities()
			So(probs[0], ShouldAlmostEqual, 0.0)
			So(probs[1], ShouldAlmostEqual, 1.0)
		})

		Convey("H Z H acts as a bit flip", func() {
			s := NewStateVector(1)
			s.applyH(0)
			s.applyZ(0)
			s.applyH(0)
			So(s.Probabilities()[1], ShouldAlmostEqual, 1.0)
		})

		Convey("H then CX prepares a Bell pair", func() {
			s := NewStateVector(2)
			s.applyH(0)
			s.applyCX(0, 1)
			probs := s.Probabilities()
			So(probs[0b00], ShouldAlmostEqual, 0.5)
			So(probs[0b01], ShouldAlmostEqual, 0.0)
			So(probs[0b10], ShouldAlmostEqual, 0.0)
			So(probs[0b11], ShouldAlmostEqual, 0.5)
		})

		Convey("CZ flips only the all-ones phase", func() {
			s := NewStateVector(2)
			s.applyX(0)
			s.applyX(1)
			s.applyCZ(0, 1)
			amps := s.Amplitudes()
			So(real(amps[0b11]), ShouldAlmostEqual, -1.0)
		})

		Convey("CCX fires only when both controls are set", func() {
			s := NewStateVector(3)
			s.applyX(0)
			s.applyCCX(0, 1, 2)
			So(s.Probabilities()[0b001], ShouldAlmostEqual, 1.0)

			s.applyX(1)
			s.applyCCX(0, 1, 2)
			So(s.Probabilities()[0b111], ShouldAlmostEqual, 1.0)
		})
	})

	Convey("Given a Bell pair under measurement", t, func() {
		rng := rand.New(rand.NewPCG(11, 13))

		Convey("The two qubits always collapse to the same value", func() {
			for i := 0; i < 50; i++ {
				s := NewStateVector(2)
				s.applyH(0)
				s.applyCX(0, 1)
				first := s.measure(0, rng)
				second := s.measure(1, rng)
				So(second, ShouldEqual, first)
			}
		})

		Convey("Collapse renormalizes the surviving branch", func() {
			s := NewStateVector(2)
			s.applyH(0)
			s.applyCX(0, 1)
			outcome := s.measure(0, rng)
			probs := s.Probabilities()
			if outcome == 0 {
				So(probs[0b00], ShouldAlmostEqual, 1.0)
			} else {
				So(probs[0b11], ShouldAlmostEqual, 1.0)
			}
		})
	})
}
