// SPDX-License-Identifier: MIT
// Package: spbench/builder
//
// api.go - public entry points: BuildGraph, BuildInstance, RandomEndpoints.
//
// Contract:
//   - BuildGraph creates g, resolves cfg once, runs constructors in order.
//   - Determinism: same constructors, options and seed ⇒ identical graphs,
//     identical Sources() order and identical endpoints.
//   - Never panics at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spbench/core"
	"github.com/katalvlaran/spbench/instance"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, _, err := build(gopts, bopts, cons)

	return g, err
}

// BuildInstance builds a graph from cons and wraps it into a named benchmark
// instance. When start or end is empty, both are drawn with RandomEndpoints
// from the same random stream that produced the graph.
func BuildInstance(name, start, end string, cons []Constructor, opts ...BuilderOption) (*instance.Instance, error) {
	g, cfg, err := build(nil, opts, cons)
	if err != nil {
		return nil, err
	}
	if start == "" || end == "" {
		if start, end, err = RandomEndpoints(g, cfg.rng); err != nil {
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
	}
	inst := instance.New(name, g, start, end)
	inst.Project = defaultProject

	return inst, nil
}

// RandomEndpoints picks two distinct nodes of g uniformly at random. Nodes
// are drawn from the sorted node list so the choice depends only on rng.
func RandomEndpoints(g *core.Graph, rng *rand.Rand) (start, end string, err error) {
	if rng == nil {
		return "", "", fmt.Errorf("RandomEndpoints: %w", ErrNeedRandSource)
	}
	if g == nil || g.NodeCount() < 2 {
		return "", "", fmt.Errorf("RandomEndpoints: need at least 2 nodes: %w", ErrTooFewVertices)
	}
	nodes := g.Nodes()
	start = nodes[rng.Intn(len(nodes))]
	end = nodes[rng.Intn(len(nodes))]
	for end == start {
		end = nodes[rng.Intn(len(nodes))]
	}

	return start, end, nil
}

func build(gopts []core.GraphOption, bopts []BuilderOption, cons []Constructor) (*core.Graph, builderConfig, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, cfg, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, cfg, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, cfg, nil
}
