package instance

import (
	"fmt"

	"github.com/katalvlaran/spbench/core"
)

// Subgraph returns the scaling-test view of inst: the first n sources in
// document order with arcs leaving that set dropped. The start node is the
// first kept source and the end node the last one. n larger than the number
// of sources keeps them all.
func Subgraph(inst *Instance, n int) (*Instance, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	if inst == nil || inst.Graph == nil || len(inst.Graph.Sources()) == 0 {
		return nil, ErrEmptyGraph
	}

	sub := inst.Graph.Prefix(n)
	kept := sub.Sources()
	st := sub.Stats()

	return &Instance{
		Name:    fmt.Sprintf("%s[:%d]", inst.Name, len(kept)),
		Project: inst.Project,
		GroupID: inst.GroupID,
		Meta: Meta{
			StartNode:  kept[0],
			EndNode:    kept[len(kept)-1],
			TotalNodes: st.Nodes,
			TotalEdges: st.Arcs,
		},
		Graph: sub,
	}, nil
}

// New wraps an existing graph into an instance, filling the declared sizes
// from the graph itself.
func New(name string, g *core.Graph, start, end string) *Instance {
	st := g.Stats()

	return &Instance{
		Name: name,
		Meta: Meta{
			StartNode:  start,
			EndNode:    end,
			TotalNodes: st.Nodes,
			TotalEdges: st.Arcs,
		},
		Graph: g,
	}
}
