// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with fmt.Errorf("...: %w", ErrX);
//     sentinels themselves never embed parameters.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithRand, ...).

package dataset

import "errors"

// ErrNegativeCount indicates a generator or MakePoints received a negative
// sample count. The original contract left negative n undefined; this
// implementation rejects it explicitly.
// Usage: if errors.Is(err, ErrNegativeCount) { /* fix caller's n */ }.
var ErrNegativeCount = errors.New("dataset: sample count must be non-negative")

// ErrUnknownDataset indicates Get was called with a name absent from the
// registry. Callers should validate against Names() before dispatching.
// Usage: if errors.Is(err, ErrUnknownDataset) { /* report bad name */ }.
var ErrUnknownDataset = errors.New("dataset: unknown dataset name")
