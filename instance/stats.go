package instance

import (
	"math"
	"sort"
)

// Stats summarizes the structure and the weight distribution of an instance.
type Stats struct {
	Nodes   int     // union of sources and destinations
	Sources int     // outer keys of the adjacency
	Arcs    int
	Density float64 // Arcs / (Nodes·(Nodes-1)); 0 below two nodes

	MinWeight    float64
	MaxWeight    float64
	MeanWeight   float64
	MedianWeight float64
	StdDevWeight float64 // population standard deviation
}

// Describe computes Stats for inst. Weight figures are zero for a graph
// without arcs.
func Describe(inst *Instance) Stats {
	var s Stats
	if inst == nil || inst.Graph == nil {
		return s
	}
	g := inst.Graph
	gs := g.Stats()
	s.Nodes, s.Sources, s.Arcs = gs.Nodes, gs.Sources, gs.Arcs
	if s.Nodes > 1 {
		s.Density = float64(s.Arcs) / (float64(s.Nodes) * float64(s.Nodes-1))
	}

	weights := make([]float64, 0, s.Arcs)
	for _, from := range g.Sources() {
		for _, a := range g.Neighbors(from) {
			weights = append(weights, a.Weight)
		}
	}
	if len(weights) == 0 {
		return s
	}
	sort.Float64s(weights)

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	n := float64(len(weights))
	s.MinWeight = weights[0]
	s.MaxWeight = weights[len(weights)-1]
	s.MeanWeight = sum / n

	mid := len(weights) / 2
	if len(weights)%2 == 0 {
		s.MedianWeight = (weights[mid-1] + weights[mid]) / 2
	} else {
		s.MedianWeight = weights[mid]
	}

	ss := 0.0
	for _, w := range weights {
		d := w - s.MeanWeight
		ss += d * d
	}
	s.StdDevWeight = math.Sqrt(ss / n)

	return s
}
