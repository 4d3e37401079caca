package bench

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()

	require.NoError(t, c.Validate())
	assert.Equal(t, []string{"heap", "scan"}, c.Algorithms)
	assert.Equal(t, 1, c.Parallelism)
	assert.Equal(t, []int{50, 100, 200, 400, 800, 1500, 2500, 3796}, c.Scaling.Steps)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spbench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithms: [scan, heap]
repeat: 3
timeout: 2s
scaling:
  steps: [10, 20]
logging:
  level: debug
  pretty: true
`), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"scan", "heap"}, c.Algorithms)
	assert.Equal(t, 3, c.Repeat)
	assert.Equal(t, 2*time.Second, c.Timeout)
	assert.Equal(t, []int{10, 20}, c.Scaling.Steps)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.Pretty)
	// untouched keys keep their defaults
	assert.Equal(t, 1, c.Parallelism)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SPBENCH_ALGORITHMS", " heap ,")
	t.Setenv("SPBENCH_REPEAT", "5")
	t.Setenv("SPBENCH_TIMEOUT", "150ms")
	t.Setenv("SPBENCH_METRICS_FILE", "/tmp/spbench.prom")

	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"heap"}, c.Algorithms)
	assert.Equal(t, 5, c.Repeat)
	assert.Equal(t, 150*time.Millisecond, c.Timeout)
	assert.Equal(t, "/tmp/spbench.prom", c.Metrics.File)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repeat: 7\n"), 0o644))
	t.Setenv("SPBENCH_CONFIG", path)

	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Repeat)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("SPBENCH_REPEAT", "many")
	t.Setenv("SPBENCH_LOG_PRETTY", "sometimes")
	_, err = LoadConfig("")
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "SPBENCH_REPEAT")
	assert.Contains(t, err.Error(), "SPBENCH_LOG_PRETTY")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := DefaultConfig()
	c.Algorithms = []string{"heap", "pq", "bogus"}
	c.Repeat = 0
	c.Parallelism = 0
	c.SampleInterval = 0
	c.Tolerance = -1
	c.Scaling.Steps = []int{10, 0}

	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	for _, want := range []string{"listed twice", "unknown algorithm", "repeat", "parallelism", "sample_interval", "tolerance", "scaling.steps"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a,, b ,"))
	assert.Nil(t, splitCSV(" , "))
}
