package polygon

import (
	"slices"
	"testing"

	"github.com/oliverbestmann/collide/gm"
	"github.com/stretchr/testify/require"
)

func TestIntersectionsWithRay(t *testing.T) {
	square := MustNew(unitSquare()...)

	t.Run("through", func(t *testing.T) {
		hits := slices.Collect(square.IntersectionsWithRay(gm.Vec{X: -5, Y: 0.5}, gm.Vec{X: 1}))
		require.ElementsMatch(t, []float64{5, 6}, hits)

		tMin, ok := square.IntersectsRay(gm.Vec{X: -5, Y: 0.5}, gm.Vec{X: 1})
		require.True(t, ok)
		require.InDelta(t, 5.0, tMin, 1e-12)
	})

	t.Run("scaled direction", func(t *testing.T) {
		tMin, ok := square.IntersectsRay(gm.Vec{X: -5, Y: 0.5}, gm.Vec{X: 2})
		require.True(t, ok)
		require.InDelta(t, 2.5, tMin, 1e-12)
	})

	t.Run("pointing away", func(t *testing.T) {
		hits := slices.Collect(square.IntersectionsWithRay(gm.Vec{X: -5, Y: 0.5}, gm.Vec{X: -1}))
		require.Empty(t, hits)

		_, ok := square.IntersectsRay(gm.Vec{X: -5, Y: 0.5}, gm.Vec{X: -1})
		require.False(t, ok)
	})

	t.Run("from inside", func(t *testing.T) {
		hits := slices.Collect(square.IntersectionsWithRay(gm.Vec{X: 0.5, Y: 0.5}, gm.Vec{Y: 1}))
		require.Equal(t, []float64{0.5}, hits)
	})

	t.Run("collinear edge", func(t *testing.T) {
		hits := slices.Collect(square.IntersectionsWithRay(gm.Vec{X: -1}, gm.Vec{X: 2}))
		require.ElementsMatch(t, []float64{0.5, 1, 1}, hits)

		tMin, ok := square.IntersectsRay(gm.Vec{X: -1}, gm.Vec{X: 2})
		require.True(t, ok)
		require.Equal(t, 0.5, tMin)
	})

	t.Run("zero direction", func(t *testing.T) {
		require.Empty(t, slices.Collect(square.IntersectionsWithRay(gm.Vec{}, gm.Vec{})))
	})
}

func TestIntersectionsWithRay_Concave(t *testing.T) {
	u := MustNew(uShape()...)

	seq := u.IntersectionsWithRay(gm.Vec{X: -1, Y: 2}, gm.Vec{X: 1})

	hits := slices.Collect(seq)
	require.ElementsMatch(t, []float64{1, 2, 3, 4}, hits)

	// the sequence can be restarted
	require.Equal(t, hits, slices.Collect(seq))

	// and stopped early
	var count int
	for range seq {
		count++
		break
	}
	require.Equal(t, 1, count)
}
