package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spbench/instance"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--log-level", "error"))

	return cmd.Execute()
}

func TestGenerateThenBatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "generate", "--kind", "path", "--n", "8", "--count", "2", "--out", dir, "--prefix", "chain"))

	paths, err := instance.Dir(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "chain_000.json", filepath.Base(paths[0]))

	inst, err := instance.Load(paths[1])
	require.NoError(t, err)
	assert.Equal(t, 8, inst.Graph.NodeCount())
	assert.NotEqual(t, inst.Start(), inst.End())

	csvPath := filepath.Join(dir, "out.csv")
	metricsPath := filepath.Join(dir, "spbench.prom")
	require.NoError(t, execute(t, "batch", "--dir", dir, "--csv", csvPath, "--metrics-file", metricsPath))
	require.NoError(t, flushMetrics())

	b, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "instance,n_nodes,algo,time_ms,result")
	m, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(m), "spbench_runs_total")
}

func TestRunAndScaleCommands(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, "generate", "--kind", "grid", "--rows", "4", "--cols", "4", "--count", "1", "--out", dir))
	path := filepath.Join(dir, "synthetic_000.json")

	require.NoError(t, execute(t, "run", "--instance", path, "--algo", "B", "--path"))
	require.NoError(t, execute(t, "scale", "--instance", path, "--steps", "4,8,16"))
	require.NoError(t, execute(t, "stats", "--instance", path))
}

func TestCommandErrors(t *testing.T) {
	assert.Error(t, execute(t, "run", "--instance", "missing.json"))
	assert.Error(t, execute(t, "run", "--instance", "x.json", "--algo", "bogus"))
	assert.Error(t, execute(t, "generate", "--kind", "torus", "--out", t.TempDir()))
	assert.Error(t, execute(t, "batch", "--dir", t.TempDir()))
	assert.Error(t, execute(t, "batch", "--repeat=-1"))
}
