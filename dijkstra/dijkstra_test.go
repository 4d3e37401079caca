// Package dijkstra_test contains unit tests for both shortest-path engines.
// Every scenario runs against Heap and Scan so that the two are held to the
// same answers, including the Visited count.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spbench/core"
	"github.com/katalvlaran/spbench/dijkstra"
)

// engines lists both implementations under a readable name.
var engines = []struct {
	name string
	run  dijkstra.Engine
}{
	{"heap", dijkstra.Heap},
	{"scan", dijkstra.Scan},
}

// diamond is the four-node graph used by most scenarios:
// A→B 5, A→C 2, B→D 1, C→D 7.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromMap(map[string]map[string]float64{
		"A": {"B": 5, "C": 2},
		"B": {"D": 1},
		"C": {"D": 7},
		"D": {},
	})
	require.NoError(t, err)

	return g
}

// adjacencyOnly hides the NodeLister side of a graph so that Scan has to
// discover its node set on its own.
type adjacencyOnly struct{ g *core.Graph }

func (a adjacencyOnly) Neighbors(id string) []core.Arc { return a.g.Neighbors(id) }

// partialLister reports only some of the graph's nodes from Nodes, the way a
// NodeLister that forgets destination-only nodes would.
type partialLister struct {
	g     *core.Graph
	nodes []string
}

func (p partialLister) Neighbors(id string) []core.Arc { return p.g.Neighbors(id) }
func (p partialLister) Nodes() []string                { return p.nodes }

// ------------------------------------------------------------------------
// 1. Validation: structural problems are the only errors.
// ------------------------------------------------------------------------

func TestEngines_Validation(t *testing.T) {
	var typedNil *core.Graph
	g := diamond(t)

	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			_, err := e.run(nil, "A", "B")
			require.ErrorIs(t, err, dijkstra.ErrNilGraph)

			_, err = e.run(typedNil, "A", "B")
			require.ErrorIs(t, err, dijkstra.ErrNilGraph)

			_, err = e.run(g, "", "B")
			require.ErrorIs(t, err, dijkstra.ErrEmptyEndpoint)

			_, err = e.run(g, "A", "")
			require.ErrorIs(t, err, dijkstra.ErrEmptyEndpoint)

			_, err = e.run(g, "A", "D", dijkstra.WithMaxDistance(-1))
			require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
			require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

			_, err = e.run(g, "A", "D", dijkstra.WithMaxDistance(math.NaN()))
			require.ErrorIs(t, err, dijkstra.ErrOptionViolation)
		})
	}
}

// ------------------------------------------------------------------------
// 2. Outcomes on small fixed graphs.
// ------------------------------------------------------------------------

func TestEngines_Diamond(t *testing.T) {
	g := diamond(t)
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			res, err := e.run(g, "A", "D", dijkstra.WithReturnPath())
			require.NoError(t, err)
			require.Equal(t, 6.0, res.Distance)
			require.Equal(t, 4, res.Visited) // A(0) C(2) B(5) D(6)
			require.Equal(t, []string{"A", "B", "D"}, res.Path)
			require.True(t, res.Reachable())
			require.Equal(t, "A", res.Source)
			require.Equal(t, "D", res.Target)
		})
	}
}

func TestEngines_Unreachable(t *testing.T) {
	g, err := core.FromMap(map[string]map[string]float64{
		"A": {"B": 1},
		"C": {"D": 1},
	})
	require.NoError(t, err)

	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			res, err := e.run(g, "A", "D", dijkstra.WithReturnPath())
			require.NoError(t, err)
			require.True(t, math.IsInf(res.Distance, 1))
			require.False(t, res.Reachable())
			require.Equal(t, 2, res.Visited)
			require.Nil(t, res.Path)
		})
	}
}

func TestEngines_SourceIsTarget(t *testing.T) {
	g := diamond(t)
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			relaxed := 0
			res, err := e.run(g, "A", "A",
				dijkstra.WithReturnPath(),
				dijkstra.WithOnRelax(func(string, float64, float64) { relaxed++ }),
			)
			require.NoError(t, err)
			require.Equal(t, 0.0, res.Distance)
			require.Equal(t, 1, res.Visited)
			require.Equal(t, []string{"A"}, res.Path)
			require.Zero(t, relaxed, "no arc may be examined")
		})
	}
}

func TestEngines_UnknownSource(t *testing.T) {
	g := diamond(t)
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			res, err := e.run(g, "Z", "A")
			require.NoError(t, err)
			require.Equal(t, dijkstra.Unreachable, res.Distance)
			require.Equal(t, 1, res.Visited)

			res, err = e.run(g, "Z", "Z")
			require.NoError(t, err)
			require.Equal(t, 0.0, res.Distance)
			require.Equal(t, 1, res.Visited)
		})
	}
}

func TestEngines_ZeroWeightCycle(t *testing.T) {
	g, err := core.FromMap(map[string]map[string]float64{
		"A": {"B": 0},
		"B": {"A": 0, "C": 0},
		"C": {"C": 0},
	})
	require.NoError(t, err)

	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			res, err := e.run(g, "A", "C")
			require.NoError(t, err)
			require.Equal(t, 0.0, res.Distance)
			require.Equal(t, 3, res.Visited)
		})
	}
}

func TestEngines_TieBreakIsLexicographic(t *testing.T) {
	g, err := core.FromMap(map[string]map[string]float64{
		"S": {"B": 1, "A": 1},
		"A": {"T": 1},
		"B": {"T": 1},
	})
	require.NoError(t, err)

	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			var order []string
			res, err := e.run(g, "S", "T",
				dijkstra.WithReturnPath(),
				dijkstra.WithOnSettle(func(id string, _ float64) { order = append(order, id) }),
			)
			require.NoError(t, err)
			require.Equal(t, []string{"S", "A", "B", "T"}, order)
			require.Equal(t, []string{"S", "A", "T"}, res.Path)
			require.Equal(t, 2.0, res.Distance)
		})
	}
}

func TestEngines_MaxDistance(t *testing.T) {
	g := diamond(t)
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			res, err := e.run(g, "A", "D", dijkstra.WithMaxDistance(5))
			require.NoError(t, err)
			require.False(t, res.Reachable())
			require.Equal(t, 3, res.Visited)

			res, err = e.run(g, "A", "D", dijkstra.WithMaxDistance(6))
			require.NoError(t, err)
			require.Equal(t, 6.0, res.Distance)
		})
	}
}

// TestScan_WithoutNodeLister checks that Scan still agrees with Heap when the
// adjacency cannot enumerate its nodes.
func TestScan_WithoutNodeLister(t *testing.T) {
	g, err := core.FromMap(map[string]map[string]float64{
		"A": {"B": 1, "C": 4},
		"B": {"C": 1},
		"X": {"Y": 1},
	})
	require.NoError(t, err)
	adj := adjacencyOnly{g}

	for _, target := range []string{"C", "Y"} {
		want, err := dijkstra.Heap(adj, "A", target)
		require.NoError(t, err)
		got, err := dijkstra.Scan(adj, "A", target)
		require.NoError(t, err)
		require.Equal(t, want, got, "target %s", target)
	}
}

// TestScan_NodeListerMissingNodes checks that Scan picks up neighbours that
// Nodes does not report and still matches Heap.
func TestScan_NodeListerMissingNodes(t *testing.T) {
	g := diamond(t)
	for _, listed := range [][]string{
		{"A"},
		{"A", "C"},
		{"B", "C", "D"},
		nil,
	} {
		adj := partialLister{g: g, nodes: listed}
		for _, target := range []string{"B", "D", "Z"} {
			want, err := dijkstra.Heap(adj, "A", target, dijkstra.WithReturnPath())
			require.NoError(t, err)
			got, err := dijkstra.Scan(adj, "A", target, dijkstra.WithReturnPath())
			require.NoError(t, err)
			require.Equal(t, want, got, "listed %v target %s", listed, target)
		}
	}

	res, err := dijkstra.Scan(partialLister{g: g, nodes: []string{"A"}}, "A", "D", dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.Equal(t, 6.0, res.Distance)
	require.Equal(t, []string{"A", "B", "D"}, res.Path)
	require.Equal(t, 4, res.Visited)
}

// ------------------------------------------------------------------------
// 3. Hooks.
// ------------------------------------------------------------------------

func TestEngines_HooksObserveMonotoneProgress(t *testing.T) {
	g := diamond(t)
	for _, e := range engines {
		t.Run(e.name, func(t *testing.T) {
			last := -1.0
			_, err := e.run(g, "A", "D",
				dijkstra.WithOnSettle(func(id string, d float64) {
					require.GreaterOrEqual(t, d, last, "settle order regressed at %s", id)
					last = d
				}),
				dijkstra.WithOnRelax(func(id string, prev, next float64) {
					require.Less(t, next, prev, "relaxation of %s did not improve", id)
				}),
			)
			require.NoError(t, err)
		})
	}
}

func TestEngines_NilHooksIgnored(t *testing.T) {
	g := diamond(t)
	for _, e := range engines {
		res, err := e.run(g, "A", "D", dijkstra.WithOnSettle(nil), dijkstra.WithOnRelax(nil))
		require.NoError(t, err)
		require.Equal(t, 6.0, res.Distance)
	}
}

// ------------------------------------------------------------------------
// 4. Algorithm registry.
// ------------------------------------------------------------------------

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]dijkstra.Algorithm{
		"heap":   dijkstra.AlgorithmHeap,
		" PQ ":   dijkstra.AlgorithmHeap,
		"A":      dijkstra.AlgorithmHeap,
		"scan":   dijkstra.AlgorithmScan,
		"B":      dijkstra.AlgorithmScan,
		"Array":  dijkstra.AlgorithmScan,
		"linear": dijkstra.AlgorithmScan,
	}
	for in, want := range cases {
		got, err := dijkstra.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := dijkstra.ParseAlgorithm("fibonacci")
	require.ErrorIs(t, err, dijkstra.ErrUnknownAlgorithm)

	_, err = dijkstra.Algorithm("bogus").Engine()
	require.True(t, errors.Is(err, dijkstra.ErrUnknownAlgorithm))

	require.Equal(t, []dijkstra.Algorithm{dijkstra.AlgorithmHeap, dijkstra.AlgorithmScan}, dijkstra.Algorithms())
}

func TestLookupRunsEngine(t *testing.T) {
	g := diamond(t)
	for _, name := range []string{"heap", "scan"} {
		run, err := dijkstra.Lookup(name)
		require.NoError(t, err)
		res, err := run(g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, 6.0, res.Distance, name)
	}
	_, err := dijkstra.Lookup("")
	require.ErrorIs(t, err, dijkstra.ErrUnknownAlgorithm)
}
