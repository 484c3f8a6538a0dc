package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowdim/scatter/dataset"
)

// TestMakePoints_Basic verifies length, coordinate range, and the empty and
// negative edge cases of the raw sampler.
func TestMakePoints_Basic(t *testing.T) {
	t.Parallel()

	pts, err := dataset.MakePoints(500, dataset.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, pts, 500)
	for i, p := range pts {
		assert.GreaterOrEqual(t, p.X, 0.0, "point %d X", i)
		assert.Less(t, p.X, 1.0, "point %d X", i)
		assert.GreaterOrEqual(t, p.Y, 0.0, "point %d Y", i)
		assert.Less(t, p.Y, 1.0, "point %d Y", i)
	}

	empty, err := dataset.MakePoints(0)
	require.NoError(t, err)
	assert.NotNil(t, empty, "n=0 yields an empty, non-nil slice")
	assert.Empty(t, empty)

	_, err = dataset.MakePoints(-3)
	assert.ErrorIs(t, err, dataset.ErrNegativeCount)
}

// TestMakePoints_SeededDeterminism verifies WithSeed and WithRand both pin
// the sequence, and that WithRand draws from exactly the supplied source.
func TestMakePoints_SeededDeterminism(t *testing.T) {
	t.Parallel()

	a, err := dataset.MakePoints(32, dataset.WithSeed(11))
	require.NoError(t, err)
	b, err := dataset.MakePoints(32, dataset.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same points")

	// WithRand(rand.New(seed)) must match WithSeed(seed): the draw order is
	// fixed (X before Y, index order).
	c, err := dataset.MakePoints(32, dataset.WithRand(rand.New(rand.NewSource(11))))
	require.NoError(t, err)
	assert.Equal(t, a, c, "WithRand and WithSeed agree for the same seed")
}

// TestWithRand_NilPanics pins the option-constructor contract: options
// validate eagerly and panic, generators never do.
func TestWithRand_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { dataset.WithRand(nil) }, "WithRand(nil) must panic")
}

// TestOptions_LastWins verifies later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	t.Parallel()

	a, err := dataset.MakePoints(8, dataset.WithSeed(1), dataset.WithSeed(2))
	require.NoError(t, err)
	b, err := dataset.MakePoints(8, dataset.WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, b, a, "the last WithSeed must win")
}
