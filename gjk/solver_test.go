package gjk

import (
	"math"
	"testing"

	"github.com/oliverbestmann/collide/gm"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type convex []gm.Vec

func (c convex) Support(dir gm.Vec) gm.Vec {
	best := c[0]
	for _, v := range c[1:] {
		if v.Dot(dir) > best.Dot(dir) {
			best = v
		}
	}

	return best
}

type circle struct {
	Center gm.Vec
	Radius float64
}

func (c circle) Support(dir gm.Vec) gm.Vec {
	return c.Center.Add(dir.Normalized().Mul(c.Radius))
}

func (c circle) IsCurved() bool {
	return true
}

func square(center gm.Vec, size float64) convex {
	h := size / 2
	return convex{
		center.Add(gm.Vec{X: -h, Y: -h}),
		center.Add(gm.Vec{X: h, Y: -h}),
		center.Add(gm.Vec{X: h, Y: h}),
		center.Add(gm.Vec{X: -h, Y: h}),
	}
}

func requireVecInDelta(t *testing.T, expected, actual gm.Vec, delta float64) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, "x of %s", actual)
	require.InDelta(t, expected.Y, actual.Y, delta, "y of %s", actual)
}

func TestCollide_Separated(t *testing.T) {
	res, err := Default().Collide(square(gm.Vec{}, 1), square(gm.Vec{X: 5}, 1))
	require.NoError(t, err)
	require.False(t, res.Collides)
	require.Equal(t, gm.Vec{}, res.Separation)

	res, err = Default().Collide(square(gm.Vec{}, 1), square(gm.Vec{X: 1.5, Y: 1.5}, 1))
	require.NoError(t, err)
	require.False(t, res.Collides)
}

func TestCollide_Squares(t *testing.T) {
	res, err := Default().Collide(square(gm.Vec{}, 1), square(gm.Vec{X: 0.5}, 1))
	require.NoError(t, err)
	require.True(t, res.Collides)
	requireVecInDelta(t, gm.Vec{X: -0.5}, res.Separation, 1e-9)

	// moving the first shape by the separation resolves the collision
	moved := square(res.Separation, 1)
	res, err = Default().Collide(moved, square(gm.Vec{X: 0.5}, 1))
	require.NoError(t, err)
	require.False(t, res.Collides)
}

func TestCollide_SquaresVertical(t *testing.T) {
	res, err := Default().Collide(square(gm.Vec{X: 0.1, Y: 0.8}, 1), square(gm.Vec{}, 1))
	require.NoError(t, err)
	require.True(t, res.Collides)
	requireVecInDelta(t, gm.Vec{Y: 0.2}, res.Separation, 1e-9)
}

func TestCollide_TouchingVertex(t *testing.T) {
	a := convex{{X: -1, Y: 1}, {X: -1, Y: -1}, {X: 0, Y: 0}}
	b := convex{{X: 0, Y: 0}, {X: 1, Y: -1}, {X: 1, Y: 1}}

	res, err := Default().Collide(a, b)
	require.NoError(t, err)
	require.False(t, res.Collides)
}

func TestCollide_CircleAndSquare(t *testing.T) {
	res, err := Default().Collide(square(gm.Vec{}, 2), circle{Center: gm.Vec{X: 1.5}, Radius: 1})
	require.NoError(t, err)
	require.True(t, res.Collides)
	requireVecInDelta(t, gm.Vec{X: -0.5}, res.Separation, 1e-3)

	res, err = Default().Collide(square(gm.Vec{}, 2), circle{Center: gm.Vec{X: 2.5}, Radius: 1})
	require.NoError(t, err)
	require.False(t, res.Collides)
}

func TestCollide_Circles(t *testing.T) {
	a := circle{Center: gm.Vec{}, Radius: 1}
	b := circle{Center: gm.Vec{X: 1.5 * math.Cos(0.3), Y: 1.5 * math.Sin(0.3)}, Radius: 1}

	t.Run("Default", func(t *testing.T) {
		res, err := Default().Collide(a, b)
		require.NoError(t, err)
		require.True(t, res.Collides)

		// two edges mirrored around the true normal gain the same
		// distance, which stops EPA early on symmetric shapes
		require.InDelta(t, 0.5, res.Separation.Length(), 0.05)

		// pushes a away from b
		require.Negative(t, res.Separation.Dot(b.Center))
	})

	t.Run("WithoutCurvedTolerance", func(t *testing.T) {
		config := DefaultConfig()
		config.CurvedTolerance = 0

		solver, err := NewSolver(config)
		require.NoError(t, err)

		res, err := solver.Collide(a, b)
		require.NoError(t, err)
		require.True(t, res.Collides)
		require.InDelta(t, 0.5, res.Separation.Length(), 1e-5)
		require.InDelta(t, 0, res.Separation.Cross(b.Center), 1e-3)
	})
}

func TestCollide_Symmetric(t *testing.T) {
	a := convex{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}
	b := square(gm.Vec{X: 1.2, Y: 1.6}, 1)

	ab, err := Default().Collide(a, b)
	require.NoError(t, err)

	ba, err := Default().Collide(b, a)
	require.NoError(t, err)

	require.True(t, ab.Collides)
	require.True(t, ba.Collides)
	requireVecInDelta(t, ab.Separation, ba.Separation.Neg(), 1e-9)
}

func TestCollide_NotConverged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	config := DefaultConfig()
	config.MaxIterations = 1

	solver, err := NewSolver(config, WithLogger(zap.New(core)))
	require.NoError(t, err)

	a := circle{Center: gm.Vec{}, Radius: 1}
	b := circle{Center: gm.Vec{X: 0.3, Y: 0.2}, Radius: 1}

	_, err = solver.Collide(a, b)
	require.ErrorIs(t, err, ErrNotConverged)
	require.Equal(t, 1, logs.Len())
}

func TestNewSolver_InvalidConfig(t *testing.T) {
	_, err := NewSolver(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func BenchmarkCollide(b *testing.B) {
	solver := Default()

	shapeA := square(gm.Vec{}, 1)
	shapeB := circle{Center: gm.Vec{X: 0.7, Y: 0.3}, Radius: 0.5}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = solver.Collide(shapeA, shapeB)
	}
}
