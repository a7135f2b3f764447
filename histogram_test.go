package qsim

import (
	"bytes"
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderCountsPage(t *testing.T) {
	Convey("Given results from both demonstrations", t, func() {
		ctx := context.Background()
		sim := NewLocalSimulator(WithSeed(3))

		flip, err := RunPhaseFlipDemo(ctx, sim, 64, true)
		So(err, ShouldBeNil)
		grover, err := RunGroverDemo(ctx, sim, 64)
		So(err, ShouldBeNil)

		Convey("Rendering produces an HTML page with both charts", func() {
			var buf bytes.Buffer
			err := RenderCountsPage(&buf,
				NamedResult{Title: "phase-flip correction", Result: flip},
				NamedResult{Title: "grover search", Result: grover},
			)

			So(err, ShouldBeNil)
			html := buf.String()
			So(html, ShouldContainSubstring, "phase-flip correction")
			So(html, ShouldContainSubstring, "grover search")
			So(html, ShouldContainSubstring, "qsim-statevector")
		})

		Convey("Nil results are skipped without error", func() {
			var buf bytes.Buffer
			err := RenderCountsPage(&buf, NamedResult{Title: "empty"})

			So(err, ShouldBeNil)
		})
	})
}
