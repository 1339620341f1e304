package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	inkmotion "github.com/tphakala/go-ink-motion"
)

type reportOptions struct {
	table bool
	csv   bool
	every int
}

var tableHeader = []string{"frame", "phase", "eased", "b_x", "b_alpha", "c_x", "separation"}

// writeReport writes the summary, then the table if requested. CSV output
// holds only the table so it stays machine readable.
func writeReport(w io.Writer, m *inkmotion.Model, t *inkmotion.Trajectory, o *reportOptions) error {
	if o.table && o.csv {
		return writeCSV(w, t, o.every)
	}

	if err := writeSummary(w, m.Summarize(t)); err != nil {
		return err
	}
	if o.table {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return writeTable(w, t, o.every)
	}
	return nil
}

func writeSummary(w io.Writer, s inkmotion.Summary) error {
	_, err := fmt.Fprintf(w, `Cycle summary:
  Frames: %d
  Peak frame: %d
  B position: %.4f .. %.4f
  C position: %.4f .. %.4f
  Separation C-B: %.4f .. %.4f (mean %.4f, std dev %.4f)
  Mean B opacity: %.4f
  B fading: %d frames (%d hidden)
`,
		s.TotalFrames, s.PeakFrame,
		s.MinAbsorbed, s.MaxAbsorbed,
		s.MinRepelled, s.MaxRepelled,
		s.MinSeparation, s.MaxSeparation, s.MeanSeparation, s.SeparationStdDev,
		s.MeanAbsorbedOpacity,
		s.FadingFrames, s.HiddenFrames)
	return err
}

func tableRow(t *inkmotion.Trajectory, i int) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	return []string{
		strconv.Itoa(i),
		f(t.Phase[i]),
		f(t.Eased[i]),
		f(t.AbsorbedPosition[i]),
		f(t.AbsorbedOpacity[i]),
		f(t.RepelledPosition[i]),
		f(t.RepelledPosition[i] - t.AbsorbedPosition[i]),
	}
}

func writeTable(w io.Writer, t *inkmotion.Trajectory, every int) error {
	tw := tabwriter.NewWriter(w, tableMinCell, 0, tablePadding, ' ', tabwriter.AlignRight)
	writeLine := func(cells []string) {
		for _, c := range cells {
			fmt.Fprint(tw, c, "\t")
		}
		fmt.Fprintln(tw)
	}

	writeLine(tableHeader)
	for i := 0; i < t.Len(); i += every {
		writeLine(tableRow(t, i))
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, t *inkmotion.Trajectory, every int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return err
	}
	for i := 0; i < t.Len(); i += every {
		if err := cw.Write(tableRow(t, i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
