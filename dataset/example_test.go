package dataset_test

import (
	"errors"
	"fmt"

	"github.com/lowdim/scatter/dataset"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSimple
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Generate a seeded, reproducible linearly-separable dataset and confirm
//	the core invariant: one label per point, Count echoing the request.
//
// Use case:
//
//	Feeding a toy perceptron demo with a dataset it is guaranteed to solve.
func ExampleSimple() {
	ds, err := dataset.Simple(100, dataset.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("count:", ds.Count)
	fmt.Println("points == labels:", len(ds.Points) == len(ds.Labels))
	// Output:
	// count: 100
	// points == labels: true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSpiral
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The spiral is fully closed-form: no randomness, so its output needs no
//	seeding to be reproducible. With n=4 each arm carries two points, arm A
//	first (label 0), then arm B (label 1).
func ExampleSpiral() {
	ds, err := dataset.Spiral(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("emitted:", len(ds.Points))
	fmt.Println("labels:", ds.Labels)
	// Output:
	// emitted: 4
	// labels: [0 0 1 1]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGet
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Name-based dispatch, the path a UI dropdown or --dataset flag would
//	take: list the names, fetch one generator, reject a bad name.
func ExampleGet() {
	fmt.Println(dataset.Names())

	gen, err := dataset.Get("Xor")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ds, _ := gen(8, dataset.WithSeed(1))
	fmt.Println("xor samples:", len(ds.Points))

	_, err = dataset.Get("NotARule")
	fmt.Println("unknown name:", errors.Is(err, dataset.ErrUnknownDataset))
	// Output:
	// [Simple Diag Split Xor Circle Spiral]
	// xor samples: 8
	// unknown name: true
}
