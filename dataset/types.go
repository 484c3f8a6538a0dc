// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// types.go — core value types and the uniform generator signature.

package dataset

// Point is a single 2D sample. Coordinates are semantically in [0,1) for
// every rule except Spiral, whose parametric offset may push them slightly
// outside the unit square for large n.
type Point struct {
	X, Y float64
}

// Dataset is the result of one generator call: the requested sample count,
// the generated points, and one binary label per point. It is a plain value
// record — construct, read, discard; no mutation after construction.
//
// Invariant: len(Points) == len(Labels). Both equal Count for every rule
// except Spiral with odd Count, where both equal 2*(Count/2) (see doc.go).
// Labels[i] ∈ {0,1} classifies Points[i]; generation order is meaningful for
// Spiral, whose first half is arm A (label 0) and second half arm B (label 1).
type Dataset struct {
	Count  int
	Points []Point
	Labels []int
}

// Generator produces a Dataset of n samples. All six exported generators
// satisfy this type, so the registry can dispatch them uniformly.
// Contract: n < 0 ⇒ ErrNegativeCount (wrapped with the rule name);
// n == 0 ⇒ empty Dataset, nil error; generators never panic.
type Generator func(n int, opts ...Option) (Dataset, error)

// Registered display names, also the keys accepted by Get.
const (
	NameSimple = "Simple"
	NameDiag   = "Diag"
	NameSplit  = "Split"
	NameXor    = "Xor"
	NameCircle = "Circle"
	NameSpiral = "Spiral"
)
