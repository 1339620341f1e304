// Command analyze-cycle prints key figures of an ink ratio cycle and,
// optionally, the sampled state of every frame.
//
// Usage:
//
//	analyze-cycle
//	analyze-cycle -table -every 10
//	analyze-cycle -table -csv -out cycle.csv -easing cubic
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	inkmotion "github.com/tphakala/go-ink-motion"
	"github.com/tphakala/go-ink-motion/internal/preset"
)

// Table output
const (
	defaultEvery = 1
	tableMinCell = 8
	tablePadding = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	settingsFlags := preset.RegisterFlags(flag.CommandLine)
	table := flag.Bool("table", false, "Print the per-frame table")
	asCSV := flag.Bool("csv", false, "Write the table as CSV")
	every := flag.Int("every", defaultEvery, "Print every Nth frame of the table")
	out := flag.String("out", "", "Write output to this file instead of stdout")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *every <= 0 {
		return fmt.Errorf("-every must be positive, got %d", *every)
	}

	settings, err := settingsFlags.Resolve(preset.Default())
	if err != nil {
		return err
	}

	cfg := settings.Config()
	cfg.EnableParallel = true
	model, err := inkmotion.New(&cfg)
	if err != nil {
		return fmt.Errorf("failed to create motion model: %w", err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)

	if *verbose {
		log.Printf("Cycle: %d frames, params %+v", settings.Frames, settings.Params)
	}

	traj := model.Trajectory()
	if err := writeReport(bw, model, traj, &reportOptions{
		table: *table,
		csv:   *asCSV,
		every: *every,
	}); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if *verbose && *out != "" {
		log.Printf("Wrote %s", *out)
	}
	return nil
}
