package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec_Cross(t *testing.T) {
	x := Vec{X: 1}
	y := Vec{Y: 1}

	require.Equal(t, 1.0, x.Cross(y))
	require.Equal(t, -1.0, y.Cross(x))
	require.Equal(t, 0.0, x.Cross(x.Mul(4)))
}

func TestVec_Perpendicular(t *testing.T) {
	v := Vec{X: 2, Y: 1}
	require.Equal(t, Vec{X: -1, Y: 2}, v.Perpendicular())
	require.Equal(t, 0.0, v.Dot(v.Perpendicular()))
	require.Positive(t, v.Cross(v.Perpendicular()))
}

func TestVec_Normalized(t *testing.T) {
	require.InDelta(t, 1.0, Vec{X: 3, Y: 4}.Normalized().Length(), 1e-12)
	require.Equal(t, Vec{}, Vec{}.Normalized())
}

func TestVec_Rotated(t *testing.T) {
	v := Vec{X: 1, Y: 2}

	r := v.Rotated(math.Pi / 2)
	require.InDelta(t, -2.0, r.X, 1e-12)
	require.InDelta(t, 1.0, r.Y, 1e-12)

	back := r.Rotated(-math.Pi / 2)
	require.InDelta(t, v.X, back.X, 1e-12)
	require.InDelta(t, v.Y, back.Y, 1e-12)
}

func TestVec_Less(t *testing.T) {
	require.True(t, Vec{X: 0, Y: 5}.Less(Vec{X: 1}))
	require.True(t, Vec{X: 1, Y: 0}.Less(Vec{X: 1, Y: 1}))
	require.False(t, Vec{X: 1, Y: 1}.Less(Vec{X: 1, Y: 1}))
}

func TestRect(t *testing.T) {
	r := RectEnclosing(Vec{X: 1, Y: 5}, Vec{X: -2, Y: 0}, Vec{X: 3, Y: 2})
	require.Equal(t, Rect{Min: Vec{X: -2}, Max: Vec{X: 3, Y: 5}}, r)

	require.True(t, r.Contains(Vec{}))
	require.False(t, r.Contains(Vec{X: 4}))

	other := RectWithCenterAndSize(Vec{X: 4, Y: 4}, VecSplat(2))
	require.True(t, r.Intersects(other))
	require.False(t, r.Intersects(other.Translate(Vec{X: 10})))

	require.Equal(t, Rect{Min: Vec{X: -2}, Max: Vec{X: 5, Y: 5}}, r.Union(other))
	require.Equal(t, r, r.Union(RectWithPoints(Vec{}, Vec{X: 1, Y: 1})))
}

func TestRad_Normalized(t *testing.T) {
	require.InDelta(t, -math.Pi/2, float64(Rad(3*math.Pi/2).Normalized()), 1e-12)
	require.InDelta(t, 0.5, float64(Rad(0.5+4*math.Pi).Normalized()), 1e-12)

	require.InDelta(t, -90.0, Rad(3*math.Pi/2).Normalized().Degrees(), 1e-9)

	dir := DegToRad(90).Direction()
	require.InDelta(t, 0.0, dir.X, 1e-12)
	require.InDelta(t, 1.0, dir.Y, 1e-12)
}
