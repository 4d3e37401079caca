// Package instrument wraps a single shortest-path engine call and records
// how long it took and how much memory it needed, without changing what the
// engine computes.
//
// Every Measure call opens a fresh measurement scope:
//
//  0. graphs implementing core.Warmer precompute their neighbour lists,
//     so no engine is charged for building them;
//  1. runtime.GC() and a baseline sample of live heap bytes;
//  2. a background sampler polling runtime/metrics for the heap high-water
//     mark, started right before the engine call;
//  3. the engine call itself, timed with the monotonic clock;
//  4. sampler shutdown (deferred, so it also runs if the engine panics).
//
// PeakBytes is the high-water mark above the baseline. Sampling can miss
// very short spikes, so AllocBytes (bytes allocated during the call) is
// recorded too as a deterministic companion figure.
//
// Outcomes:
//
//   - Structural input errors from the engine (nil graph, empty endpoint,
//     invalid engine option) are returned as errors.
//   - Any other engine error, and any engine panic, is captured in
//     Record.Err while Distance is set to dijkstra.Unreachable; Measure
//     itself returns nil.
package instrument
