package bench

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sampleReport() *Report {
	ok := fakeRun("heap", 1.5, 12.25, 7)
	ok.Instance, ok.Project, ok.Nodes, ok.RunID = "i1.json", "demo", 10, "rid"
	ok.Path = []string{"a", "b"}
	lost := fakeRun("scan", 2, math.Inf(1), 3)
	lost.Instance, lost.Nodes, lost.RunID = "i1.json", 10, "rid"
	lost.TimedOut = true
	lost.Err = errors.New("late")

	return &Report{
		RunID:    "rid",
		Started:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Finished: time.Date(2026, 1, 2, 3, 4, 6, 0, time.UTC),
		Runs:     []Run{ok, lost},
		Mismatches: []Mismatch{{
			Instance: "i1.json", Field: "distance", Reference: "heap", Other: "scan",
			Want: 12.25, Got: math.Inf(1),
		}},
	}
}

func TestFormatLine(t *testing.T) {
	rep := sampleReport()

	assert.Equal(t, "Project=demo Algo=heap Time_ms=1.50 Gap=0.0000 Result=12.25", FormatLine(rep.Runs[0]))
	assert.Equal(t, "Project=- Algo=scan Time_ms=2.00 Gap=1.0000 Result=inf", FormatLine(rep.Runs[1]))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport().Runs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"instance", "n_nodes", "algo", "time_ms", "result"}, rows[0][:5])
	assert.Equal(t, []string{"i1.json", "10", "heap", "1.5000", "12.25", "7", "700"}, rows[1][:7])
	assert.Equal(t, "inf", rows[2][4])
	assert.Equal(t, "true", rows[2][8])
	assert.Equal(t, "late", rows[2][9])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))
	out := buf.String()

	require.True(t, gjson.Valid(out))
	assert.Equal(t, "rid", gjson.Get(out, "run_id").String())
	assert.Equal(t, 12.25, gjson.Get(out, "runs.0.distance").Float())
	assert.Equal(t, "a", gjson.Get(out, "runs.0.path.0").String())
	assert.Equal(t, gjson.Null, gjson.Get(out, "runs.1.distance").Type)
	assert.True(t, gjson.Get(out, "runs.1.timed_out").Bool())
	assert.Equal(t, "inf", gjson.Get(out, "mismatches.0.got").String())
	assert.Equal(t, int64(2), gjson.Get(out, "summary.#").Int())
}

func TestWriteTable(t *testing.T) {
	defer func(prev bool) { color.NoColor = prev }(color.NoColor)
	color.NoColor = true

	var buf bytes.Buffer
	WriteTable(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "run rid")
	assert.Contains(t, out, "i1.json")
	assert.Contains(t, out, "timeout")
	assert.Contains(t, out, "(1 timed out)")
	assert.Contains(t, out, "1 mismatch(es)")
	assert.NotContains(t, out, "speedup", "scan never completed")
}

func TestWriteScale(t *testing.T) {
	defer func(prev bool) { color.NoColor = prev }(color.NoColor)
	color.NoColor = true

	rep := &ScaleReport{
		Instance: "big",
		Points: []ScalePoint{
			{Step: 50, Nodes: 50, Arcs: 80, Runs: []Run{fakeRun("heap", 1, 3, 9), fakeRun("scan", 3, 3, 9)}},
		},
		DivergenceStep: 50,
	}
	var buf bytes.Buffer
	WriteScale(&buf, rep)

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, buf.String(), "divergence at n = 50")
	assert.Equal(t, []string{"50", "50", "80", "1.000", "3.000", "9", "9"}, strings.Fields(lines[3]))
}

func TestMetricsFile(t *testing.T) {
	m := NewMetrics()
	rep := sampleReport()
	for _, r := range rep.Runs {
		m.Observe(r)
	}
	m.ObserveMismatch()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("heap", OutcomeReachable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("scan", OutcomeTimeout)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.VisitedNodes.WithLabelValues("heap")))

	path := filepath.Join(t.TempDir(), "spbench.prom")
	require.NoError(t, m.WriteFile(path))
	n, err := testutil.GatherAndCount(m.Registry, "spbench_mismatches_total", "spbench_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe(fakeRun("heap", 1, 1, 1))
		m.ObserveMismatch()
	})
}
