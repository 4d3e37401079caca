package instrument

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/katalvlaran/spbench/core"
	"github.com/katalvlaran/spbench/dijkstra"
)

// Sentinel errors.
var (
	// ErrNilEngine indicates that Measure received a nil engine.
	ErrNilEngine = errors.New("instrument: engine is nil")

	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("instrument: invalid option supplied")

	// ErrEnginePanic marks Record.Err when the engine panicked.
	ErrEnginePanic = errors.New("instrument: engine panicked")
)

// DefaultSampleInterval is the polling period of the memory sampler.
const DefaultSampleInterval = 50 * time.Microsecond

// Record is the measured outcome of one engine call.
type Record struct {
	Algorithm string
	Source    string
	Target    string

	Distance float64 // dijkstra.Unreachable when not reached or failed
	Visited  int
	Path     []string

	Elapsed    time.Duration
	PeakBytes  uint64 // heap high-water mark above the pre-call baseline
	AllocBytes uint64 // bytes allocated during the call

	// Err holds a non-structural engine failure or a recovered panic.
	Err error
}

// Reachable reports whether the engine reached the target.
func (r Record) Reachable() bool { return !math.IsInf(r.Distance, 1) }

// ElapsedMillis returns Elapsed in fractional milliseconds.
func (r Record) ElapsedMillis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Option configures Measure.
type Option func(*settings)

type settings struct {
	interval   time.Duration
	engineOpts []dijkstra.Option
	err        error
}

// WithSampleInterval sets the memory sampler period. d must be > 0.
func WithSampleInterval(d time.Duration) Option {
	return func(s *settings) {
		if d <= 0 {
			s.err = fmt.Errorf("%w: sample interval %v must be positive", ErrOptionViolation, d)
			return
		}
		s.interval = d
	}
}

// WithEngineOptions forwards options to the measured engine.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(s *settings) { s.engineOpts = append(s.engineOpts, opts...) }
}

// Measure runs e(g, source, target) inside a fresh measurement scope and
// returns its Record. name labels the record, typically the algorithm name.
func Measure(name string, e dijkstra.Engine, g core.Adjacency, source, target string, opts ...Option) (Record, error) {
	if e == nil {
		return Record{}, ErrNilEngine
	}
	cfg := settings{interval: DefaultSampleInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Record{}, cfg.err
	}

	rec := Record{
		Algorithm: name,
		Source:    source,
		Target:    target,
		Distance:  dijkstra.Unreachable,
	}

	if w, ok := g.(core.Warmer); ok {
		w.Warm()
	}

	runtime.GC()
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	baseline := heapObjectBytes()

	s := startSampler(cfg.interval, baseline)
	defer s.stop()

	start := time.Now()
	res, err := call(e, g, source, target, cfg.engineOpts)
	rec.Elapsed = time.Since(start)

	peak := s.stop()
	runtime.ReadMemStats(&after)
	if peak > baseline {
		rec.PeakBytes = peak - baseline
	}
	rec.AllocBytes = after.TotalAlloc - before.TotalAlloc

	switch {
	case err == nil:
		rec.Distance = res.Distance
		rec.Visited = res.Visited
		rec.Path = res.Path
	case isStructural(err):
		return rec, fmt.Errorf("instrument: %s: %w", name, err)
	default:
		rec.Err = err
	}

	return rec, nil
}

// call invokes the engine and converts a panic into an ErrEnginePanic error.
func call(e dijkstra.Engine, g core.Adjacency, source, target string, opts []dijkstra.Option) (res dijkstra.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = dijkstra.Result{Distance: dijkstra.Unreachable}
			err = fmt.Errorf("%w: %v", ErrEnginePanic, r)
		}
	}()

	return e(g, source, target, opts...)
}

func isStructural(err error) bool {
	return errors.Is(err, dijkstra.ErrNilGraph) ||
		errors.Is(err, dijkstra.ErrEmptyEndpoint) ||
		errors.Is(err, dijkstra.ErrOptionViolation)
}
