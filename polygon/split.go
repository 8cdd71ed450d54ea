package polygon

import (
	"fmt"
	"slices"

	"github.com/oliverbestmann/collide/gm"
)

// SplitConvex splits the polygon into convex polygons. Triangles and convex
// polygons are returned as a single clone. Everything else is triangulated
// and adjacent pieces are merged greedily as long as the result stays convex.
// The split is not minimal in general.
func (p *Polygon) SplitConvex() ([]*Polygon, error) {
	if len(p.vertices) == 3 || p.IsConvex() {
		return []*Polygon{p.Clone()}, nil
	}

	parts, err := p.Triangulate()
	if err != nil {
		return nil, fmt.Errorf("split convex: %w", err)
	}

	for merged := true; merged; {
		merged = false

		for i := 0; i < len(parts); i++ {
			for k := i + 1; k < len(parts); {
				candidate, err := parts[i].MergeWith(parts[k])
				if err != nil || !candidate.IsConvex() {
					k++
					continue
				}

				parts[i] = candidate
				parts = slices.Delete(parts, k, k+1)
				merged = true
			}
		}
	}

	return parts, nil
}

// MergeWith joins two polygons that share exactly one edge into one
// polygon by removing the shared edge.
func (p *Polygon) MergeWith(other *Polygon) (*Polygon, error) {
	i, j, ok := sharedEdge(p.vertices, other.vertices)
	if !ok {
		return nil, ErrNoSharedEdge
	}

	n, m := len(p.vertices), len(other.vertices)
	merged := make([]gm.Vec, 0, n+m-2)

	// walk p from the end of the shared edge around to its start
	for k := range n {
		merged = append(merged, p.vertices[(i+1+k)%n])
	}

	// then the vertices of other that are not part of the shared edge
	for k := 2; k < m; k++ {
		merged = append(merged, other.vertices[(j+k)%m])
	}

	polygon, err := New(merged...)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	return polygon, nil
}

type edge struct {
	From, To gm.Vec
}

// sharedEdge finds the one edge p[i]->p[i+1] that appears reversed
// in q as q[j]->q[j+1].
func sharedEdge(p, q []gm.Vec) (i, j int, ok bool) {
	edges := make(map[edge]int, len(q))
	for idx := range q {
		edges[edge{From: q[idx], To: q[(idx+1)%len(q)]}] = idx
	}

	var count int
	for idx := range p {
		reversed := edge{From: p[(idx+1)%len(p)], To: p[idx]}
		if k, found := edges[reversed]; found {
			i, j = idx, k
			count++
		}
	}

	return i, j, count == 1
}
