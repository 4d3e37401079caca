package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spbench/bfs"
	"github.com/katalvlaran/spbench/core"
)

// A 3×3 lattice whose arcs point right and down is walked layer by layer.
func ExampleBFS() {
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("%d_%d", r, c) }
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				_ = g.AddArc(id(r, c), id(r, c+1), 1)
			}
			if r+1 < 3 {
				_ = g.AddArc(id(r, c), id(r+1, c), 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth["2_2"])
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
	// 4
}

// ExampleReachable sizes the component reachable from a start node.
func ExampleReachable() {
	g, _ := core.FromMap(map[string]map[string]float64{
		"A": {"B": 1},
		"C": {"D": 1},
	})
	ids, _ := bfs.Reachable(g, "A")
	fmt.Println(ids, len(ids))
	// Output:
	// [A B] 2
}
