// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/spbench/core"
)

// BenchmarkAddArc measures performance of adding arcs out of one hub.
func BenchmarkAddArc(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddArc("Root", fmt.Sprintf("N%d", i), float64(i%97))
	}
}

// BenchmarkNeighbors measures cached lookups on a 1000-arc star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddArc("Center", fmt.Sprintf("Node%d", i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("Center")
	}
}

// BenchmarkPrefix measures building a half-size prefix view.
func BenchmarkPrefix(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_ = g.AddArc(fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", (i+1)%1000), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Prefix(500)
	}
}
