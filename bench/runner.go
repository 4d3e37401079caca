package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spbench/dijkstra"
	"github.com/katalvlaran/spbench/instance"
	"github.com/katalvlaran/spbench/instrument"
)

const tracerName = "github.com/katalvlaran/spbench/bench"

// Run is one measured engine call on one instance.
type Run struct {
	RunID    string
	Instance string
	Project  string
	Nodes    int
	Repeat   int

	instrument.Record

	// TimedOut is set when the call exceeded Config.Timeout; the engine's
	// late result was discarded and Distance is Unreachable.
	TimedOut bool
}

// Gap is the feasibility gap of the run: 0 when the target was reached, 1
// otherwise.
func (r Run) Gap() float64 {
	if r.Reachable() {
		return 0
	}
	return 1
}

// Outcome classifies the run for metrics and reports.
func (r Run) Outcome() string {
	switch {
	case r.TimedOut:
		return OutcomeTimeout
	case r.Err != nil:
		return OutcomeError
	case r.Reachable():
		return OutcomeReachable
	default:
		return OutcomeUnreachable
	}
}

// Mismatch is a cross-engine disagreement on one (instance, repeat).
type Mismatch struct {
	Instance  string
	Repeat    int
	Field     string // "distance" or "visited"
	Reference string
	Other     string
	Want      float64
	Got       float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s#%d %s: %s=%g %s=%g", m.Instance, m.Repeat, m.Field, m.Reference, m.Want, m.Other, m.Got)
}

// Report is the outcome of a Runner.Run call. Runs are ordered by instance,
// then repeat, then algorithm in configuration order.
type Report struct {
	RunID      string
	Started    time.Time
	Finished   time.Time
	Runs       []Run
	Mismatches []Mismatch
}

// Runner measures every configured engine on every instance.
type Runner struct {
	cfg     Config
	algos   []dijkstra.Algorithm
	engines []dijkstra.Engine
	log     zerolog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) { r.log = l }
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) RunnerOption {
	return func(r *Runner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// NewRunner validates cfg and resolves its engines.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:    cfg,
		log:    zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, name := range cfg.Algorithms {
		a, err := dijkstra.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		e, err := a.Engine()
		if err != nil {
			return nil, err
		}
		r.algos = append(r.algos, a)
		r.engines = append(r.engines, e)
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Config returns the runner's configuration.
func (r *Runner) Config() Config { return r.cfg }

type job struct {
	slot int
	inst *instance.Instance
	rep  int
	algo int
}

// Run measures every (instance, repeat, algorithm) combination with at most
// Config.Parallelism calls in flight, then cross-checks the engines.
// Structural input errors abort the whole run; timeouts and engine failures
// are reported in the affected Run.
func (r *Runner) Run(ctx context.Context, insts []*instance.Instance) (*Report, error) {
	if len(insts) == 0 {
		return nil, ErrNoInstances
	}
	rep := &Report{RunID: uuid.NewString(), Started: time.Now()}
	log := r.log.With().Str("run_id", rep.RunID).Logger()

	ctx, span := r.tracer.Start(ctx, "bench.Run", trace.WithAttributes(
		attribute.String("run_id", rep.RunID),
		attribute.Int("instances", len(insts)),
		attribute.Int("repeat", r.cfg.Repeat),
	))
	defer span.End()

	per := r.cfg.Repeat * len(r.engines)
	rep.Runs = make([]Run, len(insts)*per)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallelism)
	for i, inst := range insts {
		for k := 0; k < r.cfg.Repeat; k++ {
			for a := range r.engines {
				j := job{slot: i*per + k*len(r.engines) + a, inst: inst, rep: k, algo: a}
				g.Go(func() error {
					run, err := r.measure(gctx, log, rep.RunID, j)
					if err != nil {
						return err
					}
					rep.Runs[j.slot] = run
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run aborted")
		return nil, err
	}

	rep.Mismatches = r.crossCheck(rep.Runs)
	for _, m := range rep.Mismatches {
		r.metrics.ObserveMismatch()
		log.Warn().Str("instance", m.Instance).Int("repeat", m.Repeat).
			Str("field", m.Field).Str("reference", m.Reference).Str("other", m.Other).
			Float64("want", m.Want).Float64("got", m.Got).Msg("engines disagree")
	}
	rep.Finished = time.Now()
	span.SetAttributes(attribute.Int("mismatches", len(rep.Mismatches)))
	log.Info().Int("runs", len(rep.Runs)).Int("mismatches", len(rep.Mismatches)).
		Dur("wall", rep.Finished.Sub(rep.Started)).Msg("benchmark finished")

	return rep, nil
}

// measure runs one job under the external deadline.
func (r *Runner) measure(ctx context.Context, log zerolog.Logger, runID string, j job) (Run, error) {
	algo := string(r.algos[j.algo])
	inst := j.inst
	ctx, span := r.tracer.Start(ctx, "bench.measure", trace.WithAttributes(
		attribute.String("instance", inst.Name),
		attribute.String("algorithm", algo),
		attribute.Int("repeat", j.rep),
	))
	defer span.End()

	run := Run{
		RunID:    runID,
		Instance: inst.Name,
		Project:  inst.Project,
		Repeat:   j.rep,
	}
	if inst.Graph != nil {
		run.Nodes = inst.Graph.NodeCount()
	}

	type outcome struct {
		rec instrument.Record
		err error
	}
	mopts := []instrument.Option{instrument.WithSampleInterval(r.cfg.SampleInterval)}
	if r.cfg.ReturnPath {
		mopts = append(mopts, instrument.WithEngineOptions(dijkstra.WithReturnPath()))
	}
	done := make(chan outcome, 1)
	go func() {
		rec, err := instrument.Measure(algo, r.engines[j.algo], inst.Graph, inst.Start(), inst.End(), mopts...)
		done <- outcome{rec, err}
	}()

	var deadline <-chan time.Time
	if r.cfg.Timeout > 0 {
		t := time.NewTimer(r.cfg.Timeout)
		defer t.Stop()
		deadline = t.C
	}

	select {
	case out := <-done:
		if out.err != nil {
			span.RecordError(out.err)
			span.SetStatus(codes.Error, "structural error")
			return run, fmt.Errorf("bench: %s/%s: %w", inst.Name, algo, out.err)
		}
		run.Record = out.rec
	case <-deadline:
		// The engine cannot be interrupted; its result lands in the
		// buffered channel and is dropped.
		run.Record = instrument.Record{
			Algorithm: algo,
			Source:    inst.Start(),
			Target:    inst.End(),
			Distance:  dijkstra.Unreachable,
			Elapsed:   r.cfg.Timeout,
		}
		run.TimedOut = true
		span.SetStatus(codes.Error, "timeout")
	case <-ctx.Done():
		return run, ctx.Err()
	}

	if run.Err != nil {
		span.RecordError(run.Err)
	}
	span.SetAttributes(
		attribute.Int("visited", run.Visited),
		attribute.Bool("reachable", run.Reachable()),
		attribute.Int64("peak_bytes", int64(run.PeakBytes)),
	)
	r.metrics.Observe(run)

	ev := log.Info()
	if run.TimedOut || run.Err != nil {
		ev = log.Warn().AnErr("engine_error", run.Err).Bool("timed_out", run.TimedOut)
	}
	ev.Str("instance", run.Instance).Str("algorithm", algo).Int("repeat", run.Repeat).
		Int("nodes", run.Nodes).Float64("elapsed_ms", run.ElapsedMillis()).
		Int("visited", run.Visited).Uint64("peak_bytes", run.PeakBytes).
		Float64("distance", finiteOr(run.Distance, -1)).Msg("run complete")

	return run, nil
}

// crossCheck compares every engine against the first configured one on each
// (instance, repeat). Timed-out and failed runs are skipped.
func (r *Runner) crossCheck(runs []Run) []Mismatch {
	n := len(r.engines)
	if n < 2 {
		return nil
	}
	var out []Mismatch
	for base := 0; base+n <= len(runs); base += n {
		ref := runs[base]
		if ref.TimedOut || ref.Err != nil {
			continue
		}
		for _, other := range runs[base+1 : base+n] {
			if other.TimedOut || other.Err != nil {
				continue
			}
			if !DistancesAgree(ref.Distance, other.Distance, r.cfg.Tolerance) {
				out = append(out, mismatch(ref, other, "distance", ref.Distance, other.Distance))
			}
			if ref.Visited != other.Visited {
				out = append(out, mismatch(ref, other, "visited", float64(ref.Visited), float64(other.Visited)))
			}
		}
	}

	return out
}

func mismatch(ref, other Run, field string, want, got float64) Mismatch {
	return Mismatch{
		Instance:  ref.Instance,
		Repeat:    ref.Repeat,
		Field:     field,
		Reference: ref.Algorithm,
		Other:     other.Algorithm,
		Want:      want,
		Got:       got,
	}
}

// DistancesAgree reports whether a and b are equal within relative
// tolerance tol. Two Unreachable distances agree; Unreachable never agrees
// with a finite distance.
func DistancesAgree(a, b, tol float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= tol*scale
}

func finiteOr(v, fallback float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fallback
	}
	return v
}
