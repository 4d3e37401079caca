// Package bench is the benchmark harness: it runs every configured
// shortest-path engine over a set of instances, measures each call with
// package instrument, and cross-checks the answers.
//
// Pipeline:
//
//  1. LoadConfig reads YAML and SPBENCH_* overrides into a Config.
//  2. NewRunner resolves the engine names.
//  3. Runner.Run measures each (instance, repeat, algorithm) under an
//     optional external Timeout, bounded by Parallelism, and compares each
//     engine against the first on Distance and Visited.
//  4. Summarize, Speedup and the Write* helpers turn the Report into tables,
//     CSV and JSON.
//
// Runner.Scale repeats step 3 on growing prefixes of one instance and
// locates the first size at which the scan engine falls behind the heap
// engine.
//
// Every call is logged with zerolog, traced with OpenTelemetry (no-op unless
// a provider is installed) and, when WithMetrics is given, counted on a
// private Prometheus registry.
package bench
