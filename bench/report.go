package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/fatih/color"
)

var (
	bold     = color.New(color.Bold).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
	boldCyan = color.New(color.Bold, color.FgCyan).SprintFunc()
	green    = color.New(color.FgGreen).SprintFunc()
	red      = color.New(color.FgRed).SprintFunc()
	yellow   = color.New(color.FgYellow).SprintFunc()
)

// FormatLine renders one run as the single-line record of the run command:
//
//	Project=<p> Algo=<a> Time_ms=<ms> Gap=<gap> Result=<distance|inf>
func FormatLine(r Run) string {
	project := r.Project
	if project == "" {
		project = "-"
	}

	return fmt.Sprintf("Project=%s Algo=%s Time_ms=%.2f Gap=%.4f Result=%s",
		project, r.Algorithm, r.ElapsedMillis(), r.Gap(), formatDistance(r.Distance))
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}

var csvHeader = []string{
	"instance", "n_nodes", "algo", "time_ms", "result",
	"visited", "peak_bytes", "alloc_bytes", "timed_out", "error", "run_id",
}

// WriteCSV writes one row per run. The first five columns match the
// historical batch format; unreachable results are written as "inf".
func WriteCSV(w io.Writer, runs []Run) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range runs {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		row := []string{
			r.Instance,
			strconv.Itoa(r.Nodes),
			r.Algorithm,
			strconv.FormatFloat(r.ElapsedMillis(), 'f', 4, 64),
			formatDistance(r.Distance),
			strconv.Itoa(r.Visited),
			strconv.FormatUint(r.PeakBytes, 10),
			strconv.FormatUint(r.AllocBytes, 10),
			strconv.FormatBool(r.TimedOut),
			errText,
			r.RunID,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

type jsonRun struct {
	Instance   string   `json:"instance"`
	Project    string   `json:"project,omitempty"`
	Nodes      int      `json:"n_nodes"`
	Algorithm  string   `json:"algo"`
	Repeat     int      `json:"repeat"`
	Source     string   `json:"source"`
	Target     string   `json:"target"`
	Distance   *float64 `json:"distance"` // null when unreachable
	Visited    int      `json:"visited"`
	Path       []string `json:"path,omitempty"`
	TimeMillis float64  `json:"time_ms"`
	PeakBytes  uint64   `json:"peak_bytes"`
	AllocBytes uint64   `json:"alloc_bytes"`
	TimedOut   bool     `json:"timed_out,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type jsonReport struct {
	RunID      string         `json:"run_id"`
	Started    string         `json:"started"`
	Finished   string         `json:"finished"`
	Runs       []jsonRun      `json:"runs"`
	Summary    []Summary      `json:"summary"`
	Mismatches []jsonMismatch `json:"mismatches"`
}

type jsonMismatch struct {
	Instance  string `json:"instance"`
	Repeat    int    `json:"repeat"`
	Field     string `json:"field"`
	Reference string `json:"reference"`
	Other     string `json:"other"`
	Want      string `json:"want"`
	Got       string `json:"got"`
}

// WriteJSON writes the report together with its per-algorithm summary.
func WriteJSON(w io.Writer, rep *Report) error {
	out := jsonReport{
		RunID:      rep.RunID,
		Started:    rep.Started.Format("2006-01-02T15:04:05.000Z07:00"),
		Finished:   rep.Finished.Format("2006-01-02T15:04:05.000Z07:00"),
		Runs:       make([]jsonRun, 0, len(rep.Runs)),
		Summary:    Summarize(rep.Runs),
		Mismatches: make([]jsonMismatch, 0, len(rep.Mismatches)),
	}
	for _, m := range rep.Mismatches {
		out.Mismatches = append(out.Mismatches, jsonMismatch{
			Instance:  m.Instance,
			Repeat:    m.Repeat,
			Field:     m.Field,
			Reference: m.Reference,
			Other:     m.Other,
			Want:      formatDistance(m.Want),
			Got:       formatDistance(m.Got),
		})
	}
	for i := range out.Summary {
		// encoding/json rejects non-finite floats.
		if math.IsInf(out.Summary[i].MinMillis, 0) {
			out.Summary[i].MinMillis = 0
		}
	}
	for _, r := range rep.Runs {
		jr := jsonRun{
			Instance:   r.Instance,
			Project:    r.Project,
			Nodes:      r.Nodes,
			Algorithm:  r.Algorithm,
			Repeat:     r.Repeat,
			Source:     r.Source,
			Target:     r.Target,
			Visited:    r.Visited,
			Path:       r.Path,
			TimeMillis: r.ElapsedMillis(),
			PeakBytes:  r.PeakBytes,
			AllocBytes: r.AllocBytes,
			TimedOut:   r.TimedOut,
		}
		if r.Reachable() {
			d := r.Distance
			jr.Distance = &d
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out.Runs = append(out.Runs, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// WriteTable prints a per-run table followed by the per-algorithm summary,
// the heap/scan speedup and any mismatches.
func WriteTable(w io.Writer, rep *Report) {
	fmt.Fprintf(w, "%s %s\n\n", boldCyan("spbench"), dim("run "+rep.RunID))
	fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("%-28s %8s %-6s %12s %14s %9s %12s",
		"INSTANCE", "NODES", "ALGO", "TIME_MS", "RESULT", "VISITED", "PEAK_BYTES")))
	for _, r := range rep.Runs {
		fmt.Fprintf(w, "%-28s %8d %-6s %12.3f %s %9d %12d\n",
			truncate(r.Instance, 28), r.Nodes, r.Algorithm, r.ElapsedMillis(),
			resultCell(r), r.Visited, r.PeakBytes)
	}
	fmt.Fprintln(w)
	WriteSummary(w, Summarize(rep.Runs))

	if len(rep.Mismatches) > 0 {
		fmt.Fprintf(w, "\n%s\n", red(fmt.Sprintf("%d mismatch(es)", len(rep.Mismatches))))
		for _, m := range rep.Mismatches {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
}

// WriteSummary prints one line per algorithm and the speedup when both
// engines ran.
func WriteSummary(w io.Writer, sums []Summary) {
	fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("%-6s %6s %9s %12s %12s %12s %14s %12s %8s",
		"ALGO", "RUNS", "REACHED", "MEAN_MS", "MIN_MS", "MAX_MS", "MEAN_PEAK", "MEAN_VISIT", "GAP")))
	for _, s := range sums {
		fmt.Fprintf(w, "%-6s %6d %9d %12.3f %12.3f %12.3f %14.0f %12.1f %8.4f",
			s.Algorithm, s.Runs, s.Reachable, s.MeanMillis, s.MinMillis, s.MaxMillis,
			s.MeanPeakBytes, s.MeanVisited, s.Gap)
		if s.TimedOut > 0 {
			fmt.Fprintf(w, " %s", yellow(fmt.Sprintf("(%d timed out)", s.TimedOut)))
		}
		if s.Failed > 0 {
			fmt.Fprintf(w, " %s", red(fmt.Sprintf("(%d failed)", s.Failed)))
		}
		fmt.Fprintln(w)
	}
	if ratio, ok := Speedup(sums); ok {
		fmt.Fprintf(w, "\n%s %s\n", bold("speedup (scan/heap):"), green(fmt.Sprintf("%.2fx", ratio)))
	}
}

// WriteScale prints one line per scaling step and the divergence point.
func WriteScale(w io.Writer, rep *ScaleReport) {
	fmt.Fprintf(w, "%s %s\n\n", boldCyan("spbench scale"), dim(rep.Instance))
	fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("%8s %8s %10s %12s %12s %10s %10s",
		"STEP", "NODES", "ARCS", "HEAP_MS", "SCAN_MS", "HEAP_VIS", "SCAN_VIS")))
	for _, p := range rep.Points {
		h, _ := p.Mean("heap")
		s, _ := p.Mean("scan")
		hv, sv := visitedOf(p.Runs, "heap"), visitedOf(p.Runs, "scan")
		fmt.Fprintf(w, "%8d %8d %10d %12.3f %12.3f %10d %10d\n", p.Step, p.Nodes, p.Arcs, h, s, hv, sv)
	}
	if rep.DivergenceStep > 0 {
		fmt.Fprintf(w, "\n%s %s\n", bold("divergence at n ="), yellow(strconv.Itoa(rep.DivergenceStep)))
	} else {
		fmt.Fprintf(w, "\n%s\n", dim("no divergence observed"))
	}
}

func visitedOf(runs []Run, algo string) int {
	for _, r := range runs {
		if r.Algorithm == algo && !r.TimedOut && r.Err == nil {
			return r.Visited
		}
	}

	return 0
}

func resultCell(r Run) string {
	cell := fmt.Sprintf("%14s", formatDistance(r.Distance))
	switch r.Outcome() {
	case OutcomeReachable:
		return green(cell)
	case OutcomeUnreachable:
		return yellow(cell)
	default:
		return red(fmt.Sprintf("%14s", r.Outcome()))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n-1] + "~"
}
