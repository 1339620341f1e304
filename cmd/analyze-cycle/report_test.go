package main

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inkmotion "github.com/tphakala/go-ink-motion"
)

func report(t *testing.T, o *reportOptions) string {
	t.Helper()
	m := inkmotion.NewDefault()
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, m, m.Trajectory(), o))
	return buf.String()
}

func TestWriteReport_Summary(t *testing.T) {
	out := report(t, &reportOptions{every: 1})

	assert.Contains(t, out, "Frames: 200")
	assert.Contains(t, out, "Peak frame: 100")
	assert.Contains(t, out, "B position: 0.0000 .. 90.0000")
	assert.Contains(t, out, "C position: -10.0000 .. 180.0000")
	assert.Contains(t, out, "mean 40.0000")
	assert.Contains(t, out, "B fading: 31 frames (1 hidden)")
	assert.NotContains(t, out, "separation")
}

func TestWriteReport_Table(t *testing.T) {
	out := report(t, &reportOptions{table: true, every: 50})

	assert.Contains(t, out, "Cycle summary:")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus frames 0, 50, 100, 150.
	tail := lines[len(lines)-5:]
	assert.Contains(t, tail[0], "separation")
	assert.Contains(t, tail[3], "90.000000")
	assert.Contains(t, tail[3], "180.000000")
}

func TestWriteReport_CSV(t *testing.T) {
	out := report(t, &reportOptions{table: true, csv: true, every: 1})
	assert.NotContains(t, out, "Cycle summary")

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, inkmotion.DefaultTotalFrames+1)
	assert.Equal(t, tableHeader, records[0])

	peak := records[101]
	assert.Equal(t, []string{"100", "1.000000", "1.000000", "90.000000", "0.800000", "180.000000", "90.000000"}, peak)

	start := records[1]
	assert.Equal(t, "-10.000000", start[5])
	assert.Equal(t, "0.000000", start[4])
}
