package polygon

import (
	"fmt"

	"github.com/oliverbestmann/collide/gm"
)

// Triangulate splits the polygon into triangles by ear clipping, following
// the method of Kong: only reflex vertices can lie within a candidate ear,
// so only those are tested. A polygon with n vertices yields n-2 triangles.
func (p *Polygon) Triangulate() ([]*Polygon, error) {
	vertices := p.vertices

	n := len(vertices)
	if n == 3 {
		return []*Polygon{p.Clone()}, nil
	}

	next := make([]int, n)
	prev := make([]int, n)
	for idx := range n {
		next[idx] = (idx + 1) % n
		prev[idx] = (idx + n - 1) % n
	}

	var reflex VertexSet
	for idx, v := range vertices {
		if !ccw(vertices[prev[idx]], v, vertices[next[idx]]) {
			if err := reflex.Insert(v); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrCannotTriangulate, err)
			}
		}
	}

	// a reflex vertex becomes convex once enough of its neighbours are clipped
	updateReflex := func(idx int) {
		v := vertices[idx]
		if reflex.Has(v) && ccw(vertices[prev[idx]], v, vertices[next[idx]]) {
			reflex.Remove(v)
		}
	}

	triangles := make([]*Polygon, 0, n-2)

	remaining := n
	current := 0
	skipped := 0

	for remaining > 3 {
		prevIdx, nextIdx := prev[current], next[current]
		a, b, c := vertices[prevIdx], vertices[current], vertices[nextIdx]

		if isEar(a, b, c, &reflex) {
			triangles = append(triangles, fromVertices([]gm.Vec{a, b, c}))

			next[prevIdx] = nextIdx
			prev[nextIdx] = prevIdx
			reflex.Remove(b)

			updateReflex(prevIdx)
			updateReflex(nextIdx)

			remaining--
			skipped = 0
		} else {
			skipped++
			if skipped > remaining {
				return nil, fmt.Errorf("%w: no ear among %d remaining vertices", ErrCannotTriangulate, remaining)
			}
		}

		current = nextIdx
	}

	a, b, c := vertices[prev[current]], vertices[current], vertices[next[current]]
	triangles = append(triangles, fromVertices([]gm.Vec{a, b, c}))

	return triangles, nil
}

// isEar tests if abc is a counter clockwise triangle with positive
// area that contains none of the reflex vertices.
func isEar(a, b, c gm.Vec, reflex *VertexSet) bool {
	if turn(a, b, c) <= 0 {
		return false
	}

	for v := range reflex.All() {
		if v == a || v == b || v == c {
			continue
		}

		if pointInTriangle(v, a, b, c) {
			return false
		}
	}

	return true
}
