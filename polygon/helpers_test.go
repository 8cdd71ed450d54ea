package polygon

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/oliverbestmann/collide/gm"
	"github.com/stretchr/testify/require"
)

func unitSquare() []gm.Vec {
	return []gm.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func lShape() []gm.Vec {
	return []gm.Vec{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
	}
}

func uShape() []gm.Vec {
	return []gm.Vec{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 3}, {X: 2, Y: 3},
		{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3},
	}
}

func regularPolygon(n int, radius float64) []gm.Vec {
	var vertices []gm.Vec
	for idx := range n {
		angle := gm.Rad(2 * math.Pi * float64(idx) / float64(n))
		vertices = append(vertices, angle.Direction().Mul(radius))
	}

	return vertices
}

// randomStar builds a star shaped polygon around the origin,
// which is always simple.
func randomStar(rng *rand.Rand, n int) []gm.Vec {
	var vertices []gm.Vec
	for idx := range n {
		angle := gm.Rad(2 * math.Pi * float64(idx) / float64(n))
		radius := 0.5 + rng.Float64()
		vertices = append(vertices, angle.Direction().Mul(radius))
	}

	return vertices
}

func sumOfAreas(polygons []*Polygon) float64 {
	var area float64
	for _, p := range polygons {
		area += p.Area()
	}

	return area
}

func requireVecInDelta(t *testing.T, expected, actual gm.Vec, delta float64) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, "x of %s", actual)
	require.InDelta(t, expected.Y, actual.Y, delta, "y of %s", actual)
}
