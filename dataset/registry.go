// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// registry.go — read-only name → generator dispatch table.
//
// The table is fixed at process start and never mutated afterwards, so it is
// safe for concurrent lookups without locking. Names() returns a fresh copy
// of the ordered name list; callers cannot reach the underlying storage.

package dataset

import "fmt"

// registryOrder fixes the presentation order of the registered rules, from
// linearly separable to decidedly not.
var registryOrder = []string{
	NameSimple,
	NameDiag,
	NameSplit,
	NameXor,
	NameCircle,
	NameSpiral,
}

// registry maps each display name to its generator.
var registry = map[string]Generator{
	NameSimple: Simple,
	NameDiag:   Diag,
	NameSplit:  Split,
	NameXor:    Xor,
	NameCircle: Circle,
	NameSpiral: Spiral,
}

// Names returns the registered dataset names in presentation order. The
// returned slice is a copy; mutating it does not affect the registry.
func Names() []string {
	out := make([]string, len(registryOrder))
	copy(out, registryOrder)
	return out
}

// Get returns the generator registered under name, matched exactly
// (case-sensitive). Unknown names yield ErrUnknownDataset wrapped with the
// offending name; branch with errors.Is.
func Get(name string) (Generator, error) {
	gen, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("Get: %q: %w", name, ErrUnknownDataset)
	}
	return gen, nil
}
