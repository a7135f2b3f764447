package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/theapemachine/qsim"
)

func main() {
	shots := flag.Int("shots", 1024, "shots per circuit")
	seed := flag.Uint64("seed", 0, "sampling seed (0 = random)")
	outDir := flag.String("out", "reports", "output directory for the histogram page")
	queued := flag.Bool("queue", false, "route execution through the simulated device queue")
	flag.Parse()

	var simOpts []qsim.SimulatorOption
	if *seed != 0 {
		simOpts = append(simOpts, qsim.WithSeed(*seed))
	}
	var backend qsim.Backend = qsim.NewLocalSimulator(simOpts...)

	ctx := context.Background()
	if *queued {
		qb := qsim.NewQueueBackend(ctx, backend, qsim.NewConfig())
		defer qb.Close()
		backend = qb
	}

	runs := make([]qsim.NamedResult, 0, 3)
	collect := func(title string, res *qsim.Result, err error) {
		if err != nil {
			log.Fatalf("%s: %v", title, err)
		}
		printCounts(title, res)
		runs = append(runs, qsim.NamedResult{Title: title, Result: res})
	}

	res, err := qsim.RunPhaseFlipDemo(ctx, backend, *shots, false)
	collect("phase-flip correction, logical 0", res, err)

	res, err = qsim.RunPhaseFlipDemo(ctx, backend, *shots, true)
	collect("phase-flip correction, logical 1", res, err)

	res, err = qsim.RunGroverDemo(ctx, backend, *shots)
	collect("grover search, marked "+qsim.GroverMarkedState, res, err)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}
	htmlPath := filepath.Join(*outDir, "counts.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := qsim.RenderCountsPage(f, runs...); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Histogram page:", htmlPath)
}

func printCounts(title string, res *qsim.Result) {
	fmt.Printf("%s [%s, %d shots]\n", title, res.Backend, res.Shots)
	outcomes := make([]string, 0, len(res.Counts))
	for outcome := range res.Counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)
	for _, outcome := range outcomes {
		fmt.Printf("  %s: %d (%.3f)\n", outcome, res.Counts[outcome], res.Probability(outcome))
	}
}
