// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// sampler.go — uniform point sampler shared by the labeling rules.

package dataset

import "fmt"

// MakePoints returns n points with both coordinates drawn independently and
// uniformly from [0,1). The draw order is fixed (X before Y, index order), so
// a seeded source yields an identical sequence on every run.
//
// Validation:
//   - n < 0 ⇒ ErrNegativeCount.
//   - n == 0 ⇒ empty non-nil slice, nil error.
//
// Complexity: O(n) time, O(n) memory.
func MakePoints(n int, opts ...Option) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("MakePoints: n=%d: %w", n, ErrNegativeCount)
	}

	cfg := newConfig(opts...)

	pts := make([]Point, n)
	for i := range pts {
		pts[i].X = cfg.float64From()
		pts[i].Y = cfg.float64From()
	}
	return pts, nil
}
