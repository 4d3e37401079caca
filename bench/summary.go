package bench

import (
	"math"

	"github.com/katalvlaran/spbench/dijkstra"
)

// Summary aggregates the runs of one algorithm. Timing and memory figures
// cover completed runs only (neither timed out nor failed).
type Summary struct {
	Algorithm string
	Runs      int
	Reachable int
	TimedOut  int
	Failed    int

	MeanMillis    float64
	MinMillis     float64
	MaxMillis     float64
	MeanPeakBytes float64
	MeanVisited   float64

	// Gap is the mean feasibility gap over completed runs.
	Gap float64
}

// Summarize groups runs by algorithm in order of first appearance.
func Summarize(runs []Run) []Summary {
	var (
		order []string
		acc   = make(map[string]*Summary)
		done  = make(map[string]int)
	)
	for _, r := range runs {
		s, ok := acc[r.Algorithm]
		if !ok {
			s = &Summary{Algorithm: r.Algorithm, MinMillis: math.Inf(1)}
			acc[r.Algorithm] = s
			order = append(order, r.Algorithm)
		}
		s.Runs++
		switch {
		case r.TimedOut:
			s.TimedOut++
			continue
		case r.Err != nil:
			s.Failed++
			continue
		}
		if r.Reachable() {
			s.Reachable++
		}
		ms := r.ElapsedMillis()
		s.MeanMillis += ms
		s.MinMillis = math.Min(s.MinMillis, ms)
		s.MaxMillis = math.Max(s.MaxMillis, ms)
		s.MeanPeakBytes += float64(r.PeakBytes)
		s.MeanVisited += float64(r.Visited)
		s.Gap += r.Gap()
		done[r.Algorithm]++
	}

	out := make([]Summary, 0, len(order))
	for _, name := range order {
		s := acc[name]
		if n := float64(done[name]); n > 0 {
			s.MeanMillis /= n
			s.MeanPeakBytes /= n
			s.MeanVisited /= n
			s.Gap /= n
		} else {
			s.MinMillis = 0
		}
		out = append(out, *s)
	}

	return out
}

// Speedup returns mean scan time divided by mean heap time. ok is false when
// either algorithm is missing or has no completed run.
func Speedup(sums []Summary) (ratio float64, ok bool) {
	var heap, scan *Summary
	for i := range sums {
		switch dijkstra.Algorithm(sums[i].Algorithm) {
		case dijkstra.AlgorithmHeap:
			heap = &sums[i]
		case dijkstra.AlgorithmScan:
			scan = &sums[i]
		}
	}
	if heap == nil || scan == nil || heap.MeanMillis == 0 || scan.MeanMillis == 0 {
		return 0, false
	}

	return scan.MeanMillis / heap.MeanMillis, true
}
