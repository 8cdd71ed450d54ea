package polygon

import (
	"iter"

	"github.com/oliverbestmann/collide/gm"
)

// IntersectionsWithRay yields the ray parameter t of every intersection of
// the ray origin + t * dir with the polygon's edges, with t >= 0.
//
// A concave polygon can be hit multiple times. Edges parallel to the ray
// are only hit if they lie on the ray, in which case the endpoint further
// along the ray is reported. The sequence can be iterated multiple times
// and always reflects the current position of the polygon.
func (p *Polygon) IntersectionsWithRay(origin, dir gm.Vec) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if dir.IsZero() {
			return
		}

		q2 := p.vertices[len(p.vertices)-1]
		for _, v := range p.vertices {
			q1 := q2
			q2 = v

			t, ok := intersectEdge(origin, dir, q1, q2)
			if !ok || t < 0 {
				continue
			}

			if !yield(t) {
				return
			}
		}
	}
}

// IntersectsRay returns the smallest ray parameter of all intersections.
func (p *Polygon) IntersectsRay(origin, dir gm.Vec) (t float64, ok bool) {
	for hit := range p.IntersectionsWithRay(origin, dir) {
		if !ok || hit < t {
			t = hit
			ok = true
		}
	}

	return t, ok
}

func intersectEdge(origin, dir, q1, q2 gm.Vec) (float64, bool) {
	w := q2.Sub(q1)

	det := dir.Cross(w)
	if det != 0 {
		r := q2.Sub(origin)

		// solve origin + l*dir = q2 - m*w
		l := r.Cross(w) / det
		m := dir.Cross(r) / det

		return l, m >= 0 && m <= 1
	}

	// parallel edge, only hit if it lies on the ray
	if dir.Cross(q1.Sub(origin)) != 0 {
		return 0, false
	}

	lengthSqr := dir.LengthSqr()
	l := dir.Dot(q1.Sub(origin)) / lengthSqr
	m := dir.Dot(q2.Sub(origin)) / lengthSqr

	return max(l, m), true
}
