// Package scatter generates small labeled 2D point sets for teaching and
// demonstrating classification algorithms — the kind of datasets you scatter
// on a plot to watch a toy model carve out a decision boundary.
//
// 🚀 What is scatter?
//
//	A tiny, pure-Go library that brings together six classic toy datasets:
//		• Simple — vertical split at x = 0.5
//		• Diag   — diagonal split at x + y = 0.5
//		• Split  — two vertical bands near the edges
//		• Xor    — opposite quadrants across the center
//		• Circle — inner disc vs. outer ring
//		• Spiral — two interleaved parametric spiral arms
//
// ✨ Why choose scatter?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic on demand – seed the sampler for reproducible fixtures
//   - Pure Go – no cgo, no hidden deps
//   - Dispatchable – a read-only registry maps display names to generators,
//     ready for a UI dropdown or a --dataset flag in an external driver
//
// Everything lives in one subpackage:
//
//	dataset/ — Point & Dataset types, the uniform sampler, the six
//	           generators, and the name registry
//
// Quick ASCII example:
//
//	1 1 │ 0 0
//	1 1 │ 0 0
//	1 1 │ 0 0
//
//	Simple: label 1 left of x = 0.5, label 0 on and to the right of it.
//
// Dive into dataset/doc.go for full contracts, error semantics, and examples.
//
//	go get github.com/lowdim/scatter/dataset
package scatter
