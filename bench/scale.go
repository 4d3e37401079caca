package bench

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/spbench/dijkstra"
	"github.com/katalvlaran/spbench/instance"
)

// divergenceFloorMillis ignores ratios measured below timer noise.
const divergenceFloorMillis = 1.0

// ScalePoint holds the runs of every algorithm on one prefix subgraph.
type ScalePoint struct {
	Step  int // requested prefix size
	Nodes int // actual node count of the subgraph
	Arcs  int
	Runs  []Run
}

// Mean returns the mean elapsed milliseconds of algo at this point, and
// whether any completed run contributed.
func (p ScalePoint) Mean(algo dijkstra.Algorithm) (float64, bool) {
	for _, s := range Summarize(p.Runs) {
		if s.Algorithm == string(algo) && s.Runs > s.TimedOut+s.Failed {
			return s.MeanMillis, true
		}
	}

	return 0, false
}

// ScaleReport is the output of Scale.
type ScaleReport struct {
	Instance   string
	Points     []ScalePoint
	Mismatches []Mismatch

	// DivergenceStep is the first step at which scan took more than twice
	// as long as heap and more than a millisecond; 0 when never.
	DivergenceStep int
}

// Scale runs the configured engines on growing prefixes of inst, one
// subgraph per step. Steps are deduplicated and sorted; steps larger than
// the instance are clamped to its source count.
func (r *Runner) Scale(ctx context.Context, inst *instance.Instance, steps []int) (*ScaleReport, error) {
	if inst == nil || inst.Graph == nil {
		return nil, ErrNoInstances
	}
	if len(steps) == 0 {
		steps = r.cfg.Scaling.Steps
	}
	steps = normalizeSteps(steps, len(inst.Graph.Sources()))

	subs := make([]*instance.Instance, 0, len(steps))
	for _, n := range steps {
		sub, err := instance.Subgraph(inst, n)
		if err != nil {
			return nil, fmt.Errorf("bench: scale step %d: %w", n, err)
		}
		subs = append(subs, sub)
	}

	rep, err := r.Run(ctx, subs)
	if err != nil {
		return nil, err
	}

	out := &ScaleReport{Instance: inst.Name, Mismatches: rep.Mismatches}
	per := len(rep.Runs) / len(subs)
	for i, sub := range subs {
		p := ScalePoint{
			Step:  steps[i],
			Nodes: sub.Graph.NodeCount(),
			Arcs:  sub.Graph.ArcCount(),
			Runs:  rep.Runs[i*per : (i+1)*per],
		}
		out.Points = append(out.Points, p)

		if out.DivergenceStep == 0 && diverged(p) {
			out.DivergenceStep = p.Step
		}
	}
	r.log.Info().Str("instance", inst.Name).Int("points", len(out.Points)).
		Int("divergence_step", out.DivergenceStep).Msg("scaling finished")

	return out, nil
}

func diverged(p ScalePoint) bool {
	h, okH := p.Mean(dijkstra.AlgorithmHeap)
	s, okS := p.Mean(dijkstra.AlgorithmScan)

	return okH && okS && s > 2*h && s > divergenceFloorMillis
}

func normalizeSteps(steps []int, size int) []int {
	seen := make(map[int]bool, len(steps))
	out := make([]int, 0, len(steps))
	for _, n := range steps {
		if n > size {
			n = size
		}
		if n < 1 || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}
