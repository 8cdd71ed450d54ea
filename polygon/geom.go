package polygon

import (
	"github.com/oliverbestmann/collide/gm"
)

// turn returns twice the signed area of the triangle pqr,
// positive if p, q, r make a counter clockwise turn.
func turn(p, q, r gm.Vec) float64 {
	return q.Sub(p).Cross(r.Sub(p))
}

// ccw returns true if p, q, r make a counter clockwise turn or lie on a line.
func ccw(p, q, r gm.Vec) bool {
	return turn(p, q, r) >= 0
}

// onSameSide tests whether a and b lie on the same side of the line c->d.
// Points on the line count for both sides.
func onSameSide(a, b, c, d gm.Vec) bool {
	dir := d.Sub(c)
	l := dir.Cross(a.Sub(c))
	m := dir.Cross(b.Sub(c))
	return l*m >= 0
}

// pointInTriangle includes the boundary of the triangle.
func pointInTriangle(p, a, b, c gm.Vec) bool {
	return onSameSide(p, a, b, c) && onSameSide(p, b, a, c) && onSameSide(p, c, a, b)
}

// segmentsIntersect returns true if the closed segments ab and pq
// have at least one point in common.
func segmentsIntersect(a, b, p, q gm.Vec) bool {
	d1 := turn(p, q, a)
	d2 := turn(p, q, b)

	if d1 == 0 && d2 == 0 {
		// all four points lie on one line
		return gm.RectWithPoints(a, b).Intersects(gm.RectWithPoints(p, q))
	}

	d3 := turn(a, b, p)
	d4 := turn(a, b, q)

	return d1*d2 <= 0 && d3*d4 <= 0
}

// cleanVertices removes consecutive duplicates and vertices lying on the
// line through their neighbours until no such vertex is left.
func cleanVertices(vertices []gm.Vec) []gm.Vec {
	for {
		n := len(vertices)
		if n < 3 {
			return vertices
		}

		cleaned := make([]gm.Vec, 0, n)
		for idx, v := range vertices {
			prev := vertices[(idx+n-1)%n]
			next := vertices[(idx+1)%n]

			if v == next {
				continue
			}

			if prev != v && turn(prev, v, next) == 0 {
				continue
			}

			cleaned = append(cleaned, v)
		}

		if len(cleaned) == n {
			return cleaned
		}

		vertices = cleaned
	}
}

// indexOfExtreme returns the index of the lexicographically smallest
// vertex. It is always a convex vertex of the polygon.
func indexOfExtreme(vertices []gm.Vec) int {
	idx := 0
	for i, v := range vertices {
		if v.Less(vertices[idx]) {
			idx = i
		}
	}

	return idx
}

func isCounterClockwise(vertices []gm.Vec) bool {
	n := len(vertices)
	r := indexOfExtreme(vertices)
	q := vertices[(r+n-1)%n]
	s := vertices[(r+1)%n]
	return ccw(q, vertices[r], s)
}

func isSelfIntersecting(vertices []gm.Vec) bool {
	n := len(vertices)

	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]

		// only edges that do not share a vertex with ab
		for k := i + 2; k < n; k++ {
			if i == 0 && k == n-1 {
				continue
			}

			p, q := vertices[k], vertices[(k+1)%n]
			if segmentsIntersect(a, b, p, q) {
				return true
			}
		}
	}

	return false
}
