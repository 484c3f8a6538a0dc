// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// rules.go — the five sample-then-label generators and their classifiers.
//
// Shape shared by all five: draw n uniform points, then derive one binary
// label per point from a fixed geometric predicate. Every predicate uses
// strict comparisons, so a point exactly on its decision boundary falls to
// the else branch and takes label 0. Spiral does not fit this shape (points
// and labels are produced jointly) and lives in spiral.go.

package dataset

import "fmt"

// classifier derives the binary label for one point. Classifiers are pure;
// the fixed-point determinism tests exercise them directly.
type classifier func(Point) int

// labeled samples n points and applies classify to each — the common body of
// the five post-hoc rules. O(n) time, O(n) memory.
func labeled(rule string, n int, classify classifier, opts ...Option) (Dataset, error) {
	pts, err := MakePoints(n, opts...)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", rule, err)
	}

	labels := make([]int, len(pts))
	for i, p := range pts {
		labels[i] = classify(p)
	}
	return Dataset{Count: n, Points: pts, Labels: labels}, nil
}

// classifySimple: label 1 left of the vertical line x = 0.5.
func classifySimple(p Point) int {
	if p.X < 0.5 {
		return 1
	}
	return 0
}

// classifyDiag: label 1 below the diagonal x + y = 0.5.
func classifyDiag(p Point) int {
	if p.X+p.Y < 0.5 {
		return 1
	}
	return 0
}

// classifySplit: label 1 inside either vertical edge band.
func classifySplit(p Point) int {
	if p.X < 0.2 || p.X > 0.8 {
		return 1
	}
	return 0
}

// classifyXor: label 1 in the top-left and bottom-right quadrants.
func classifyXor(p Point) int {
	if (p.X < 0.5 && p.Y > 0.5) || (p.X > 0.5 && p.Y < 0.5) {
		return 1
	}
	return 0
}

// classifyCircle: label 1 outside the disc of radius² 0.1 around (0.5,0.5).
// The boundary itself (radius² exactly 0.1) takes label 0.
func classifyCircle(p Point) int {
	dx, dy := p.X-0.5, p.Y-0.5
	if dx*dx+dy*dy > 0.1 {
		return 1
	}
	return 0
}

// Simple generates n uniform points split by the vertical line x = 0.5:
// label 1 if x < 0.5, else 0. The easiest linearly separable toy set.
func Simple(n int, opts ...Option) (Dataset, error) {
	return labeled(NameSimple, n, classifySimple, opts...)
}

// Diag generates n uniform points split by the diagonal x + y = 0.5:
// label 1 if x + y < 0.5, else 0.
func Diag(n int, opts ...Option) (Dataset, error) {
	return labeled(NameDiag, n, classifyDiag, opts...)
}

// Split generates n uniform points with two vertical bands near the edges
// labeled 1: label 1 if x < 0.2 or x > 0.8, else 0. Not linearly separable.
func Split(n int, opts ...Option) (Dataset, error) {
	return labeled(NameSplit, n, classifySplit, opts...)
}

// Xor generates n uniform points labeled by quadrant parity around the
// center: label 1 in opposite quadrants across x = 0.5 and y = 0.5, else 0.
func Xor(n int, opts ...Option) (Dataset, error) {
	return labeled(NameXor, n, classifyXor, opts...)
}

// Circle generates n uniform points with an inner disc labeled 0 and the
// outer ring labeled 1: label 1 if (x−0.5)² + (y−0.5)² > 0.1, else 0.
func Circle(n int, opts ...Option) (Dataset, error) {
	return labeled(NameCircle, n, classifyCircle, opts...)
}
