package bench

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spbench/dijkstra"
	"github.com/katalvlaran/spbench/instrument"
)

// Config drives the harness and the CLI.
type Config struct {
	// Algorithms lists engine names; the first one is the reference for
	// cross-engine consistency checks.
	Algorithms []string `yaml:"algorithms"`

	// Repeat is the number of measured runs per (instance, algorithm).
	Repeat int `yaml:"repeat"`

	// Parallelism bounds the number of concurrent measurements. Memory
	// figures are process-wide, so values above 1 trade their precision
	// for throughput.
	Parallelism int `yaml:"parallelism"`

	// Timeout is the external per-run deadline; 0 disables it.
	Timeout time.Duration `yaml:"timeout"`

	// SampleInterval is the memory sampler period.
	SampleInterval time.Duration `yaml:"sample_interval"`

	// Tolerance is the relative tolerance for distance agreement.
	Tolerance float64 `yaml:"tolerance"`

	// ReturnPath asks the engines to reconstruct the shortest path. It adds
	// predecessor bookkeeping to every measured call.
	ReturnPath bool `yaml:"return_path"`

	Scaling struct {
		Steps []int `yaml:"steps"`
	} `yaml:"scaling"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`

	Metrics struct {
		File string `yaml:"file"`
	} `yaml:"metrics"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	var c Config
	c.Algorithms = []string{string(dijkstra.AlgorithmHeap), string(dijkstra.AlgorithmScan)}
	c.Repeat = 1
	c.Parallelism = 1
	c.Timeout = 0
	c.SampleInterval = instrument.DefaultSampleInterval
	c.Tolerance = 1e-9
	c.Scaling.Steps = []int{50, 100, 200, 400, 800, 1500, 2500, 3796}
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	return c
}

// LoadConfig starts from DefaultConfig, overlays the YAML file at path (or
// at $SPBENCH_CONFIG when path is empty), applies SPBENCH_* environment
// overrides and validates the result.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		path = os.Getenv("SPBENCH_CONFIG")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("bench: read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("bench: parse config %s: %w", path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}

	return c, c.Validate()
}

func (c *Config) applyEnv() error {
	var errs *multierror.Error
	if v := os.Getenv("SPBENCH_ALGORITHMS"); v != "" {
		c.Algorithms = splitCSV(v)
	}
	if v := os.Getenv("SPBENCH_REPEAT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("SPBENCH_REPEAT: %w", err))
		}
		c.Repeat = n
	}
	if v := os.Getenv("SPBENCH_PARALLELISM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("SPBENCH_PARALLELISM: %w", err))
		}
		c.Parallelism = n
	}
	if v := os.Getenv("SPBENCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("SPBENCH_TIMEOUT: %w", err))
		}
		c.Timeout = d
	}
	if v := os.Getenv("SPBENCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SPBENCH_LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("SPBENCH_LOG_PRETTY: %w", err))
		}
		c.Logging.Pretty = b
	}
	if v := os.Getenv("SPBENCH_METRICS_FILE"); v != "" {
		c.Metrics.File = v
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Validate reports every invalid field at once, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs *multierror.Error
	if len(c.Algorithms) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("algorithms: at least one is required"))
	}
	seen := make(map[dijkstra.Algorithm]bool, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := dijkstra.ParseAlgorithm(name)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("algorithms: %w", err))
			continue
		}
		if seen[a] {
			errs = multierror.Append(errs, fmt.Errorf("algorithms: %q listed twice", a))
		}
		seen[a] = true
	}
	if c.Repeat < 1 {
		errs = multierror.Append(errs, fmt.Errorf("repeat: %d < 1", c.Repeat))
	}
	if c.Parallelism < 1 {
		errs = multierror.Append(errs, fmt.Errorf("parallelism: %d < 1", c.Parallelism))
	}
	if c.Timeout < 0 {
		errs = multierror.Append(errs, fmt.Errorf("timeout: %v is negative", c.Timeout))
	}
	if c.SampleInterval <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("sample_interval: %v must be positive", c.SampleInterval))
	}
	if c.Tolerance < 0 {
		errs = multierror.Append(errs, fmt.Errorf("tolerance: %g is negative", c.Tolerance))
	}
	for _, n := range c.Scaling.Steps {
		if n < 1 {
			errs = multierror.Append(errs, fmt.Errorf("scaling.steps: %d < 1", n))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}
