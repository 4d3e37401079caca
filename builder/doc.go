// Package builder generates deterministic synthetic benchmark inputs: directed
// graphs with non-negative float weights, and instances (graph plus start
// and end node) ready for the shortest-path harness.
//
// Constructors:
//
//   - RandomSparse(n, p): every ordered pair (i, j), i ≠ j, becomes an arc
//     with probability p.
//   - Grid(rows, cols): a road-like lattice; each orthogonal neighbour pair
//     is joined in both directions with one shared weight.
//   - Path(n): the chain 0 → 1 → … → n-1.
//
// Options:
//
//   - WithSeed / WithRand: the random stream (default seed DefaultSeed).
//   - WithIDScheme: vertex naming (DefaultIDFn, SymbolNumberIDFn,
//     ExcelColumnIDFn, HexIDFn).
//   - WithWeightFn: arc weights (DefaultWeightFn is uniform in [1,100);
//     ConstantWeightFn, UniformWeightFn, NormalWeightFn, ExponentialWeightFn).
//
// Same constructors, options and seed always produce the same graph and
// the same endpoints.
package builder
