// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// spiral.go — two interleaved parametric spiral arms.
//
// Unlike the rules in rules.go, Spiral produces points and labels jointly
// from a closed-form parametrization; no randomness is consumed. The plane
// curves are
//
//	x(t) = t·cos(t)/20,  y(t) = t·sin(t)/20,
//
// traced around the square's center (0.5, 0.5). Arm B is arm A's curve with
// the x/y roles swapped and the parameter negated, which interleaves the two
// arms instead of overlaying them.

package dataset

import (
	"fmt"
	"math"
)

// spiralX and spiralY evaluate the arm curves at parameter t.
func spiralX(t float64) float64 { return t * math.Cos(t) / 20.0 }
func spiralY(t float64) float64 { return t * math.Sin(t) / 20.0 }

// Spiral generates two interleaved spiral arms of n/2 points each: arm A
// first (labels 0), then arm B (labels 1), in increasing parameter order.
// The arm index starts at 5 rather than 0 so neither curve degenerates at
// the origin singularity t = 0.
//
// Emitted length is 2*(n/2) — an odd n truncates to an even output while
// Count still records the requested n; see doc.go. Options are accepted for
// signature uniformity with the other generators but no randomness is drawn.
//
// Validation: n < 0 ⇒ ErrNegativeCount. Complexity: O(n) time and memory.
func Spiral(n int, opts ...Option) (Dataset, error) {
	if n < 0 {
		return Dataset{}, fmt.Errorf("%s: n=%d: %w", NameSpiral, n, ErrNegativeCount)
	}
	_ = newConfig(opts...) // resolved for contract symmetry; no knobs apply

	half := n / 2
	pts := make([]Point, 0, 2*half)
	labels := make([]int, 2*half)

	// Arm A: (x(t)+0.5, y(t)+0.5) with t = 10·i/half, label 0.
	for i := 5; i < 5+half; i++ {
		t := 10.0 * float64(i) / float64(half)
		pts = append(pts, Point{X: spiralX(t) + 0.5, Y: spiralY(t) + 0.5})
	}
	// Arm B: coordinates swapped, parameter negated, label 1.
	for i := 5; i < 5+half; i++ {
		t := -10.0 * float64(i) / float64(half)
		pts = append(pts, Point{X: spiralY(t) + 0.5, Y: spiralX(t) + 0.5})
	}
	for i := half; i < 2*half; i++ {
		labels[i] = 1
	}

	return Dataset{Count: n, Points: pts, Labels: labels}, nil
}
