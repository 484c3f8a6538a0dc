// Package dataset generates labeled 2D synthetic point sets in the unit
// square for pedagogical machine-learning demonstrations.
//
// What:
//
//   - MakePoints samples n points with coordinates i.i.d. uniform over [0,1).
//   - Six generators (Simple, Diag, Split, Xor, Circle, Spiral) each return a
//     Dataset: sampled points plus a binary label per point.
//   - Get/Names expose a read-only registry mapping display names to
//     generators for name-based dispatch (UI dropdown, --dataset flag in an
//     external driver).
//
// Why:
//
//   - Decision-boundary visualizations: each rule draws a different boundary
//     shape (line, diagonal, bands, quadrants, ring, spiral arms).
//   - Classifier smoke tests: datasets range from linearly separable
//     (Simple, Diag) to decidedly not (Xor, Circle, Spiral).
//   - Deterministic fixtures: seed the sampler via WithSeed for reproducible
//     golden outputs.
//
// Complexity:
//
//   - MakePoints:     O(n) time, O(n) memory.
//   - Each generator: O(n) time, O(n) memory.
//   - Get / Names:    O(1) / O(k) for k registered rules.
//
// Boundary policy:
//
//	All labeling comparisons are strict; a point exactly on a rule's
//	decision boundary (x == 0.5 for Simple, radius² == 0.1 for Circle, …)
//	takes label 0. Measure-zero under continuous sampling, but observable
//	with injected fixed points and preserved exactly.
//
// Spiral caveat:
//
//	Spiral emits 2*(n/2) points — the two arms split n by integer division,
//	so an odd n truncates to an even output length while Dataset.Count still
//	records the requested n. Pass an even n for balanced arms.
//
// Errors:
//
//   - ErrNegativeCount: a generator or MakePoints received n < 0.
//   - ErrUnknownDataset: Get was queried with an unregistered name.
//
// See example_test.go for seeded, reproducible usage.
package dataset
