package polygon

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/oliverbestmann/collide/gm"
)

// Polygon is a simple polygon with its vertices in counter clockwise order.
//
// Area, centroid and the radius of the outcircle around the centroid are
// computed once during construction and kept up to date by the transform
// methods. The number and order of vertices never changes after construction.
type Polygon struct {
	vertices []gm.Vec
	area     float64
	centroid gm.Vec
	radius   float64

	convex      bool
	convexKnown bool
}

// New builds a polygon from the given vertices. The vertices are copied.
// Duplicated vertices and vertices lying on a line with their neighbours
// are dropped, clockwise input is reversed.
func New(vertices ...gm.Vec) (*Polygon, error) {
	count := len(vertices)

	vertices = cleanVertices(slices.Clone(vertices))
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w (got %d, %d usable)", ErrTooFewVertices, count, len(vertices))
	}

	if !isCounterClockwise(vertices) {
		slices.Reverse(vertices)
	}

	if isSelfIntersecting(vertices) {
		return nil, ErrSelfIntersecting
	}

	return fromVertices(vertices), nil
}

// MustNew is like New but panics if the polygon is invalid.
func MustNew(vertices ...gm.Vec) *Polygon {
	p, err := New(vertices...)
	if err != nil {
		panic(err)
	}

	return p
}

// fromVertices takes ownership of an already validated vertex slice.
func fromVertices(vertices []gm.Vec) *Polygon {
	area := computeArea(vertices)
	centroid := computeCentroid(vertices, area)

	return &Polygon{
		vertices: vertices,
		area:     area,
		centroid: centroid,
		radius:   computeOutcircle(vertices, centroid),
	}
}

// Vertices returns a copy of the vertices in counter clockwise order.
func (p *Polygon) Vertices() []gm.Vec {
	return slices.Clone(p.vertices)
}

// All iterates over the vertices in counter clockwise order
// without copying them.
func (p *Polygon) All() iter.Seq2[int, gm.Vec] {
	return slices.All(p.vertices)
}

func (p *Polygon) Len() int {
	return len(p.vertices)
}

// Area is always positive.
func (p *Polygon) Area() float64 {
	return p.area
}

func (p *Polygon) Centroid() gm.Vec {
	return p.centroid
}

// Radius returns the radius of the smallest circle around the
// centroid that contains every vertex.
func (p *Polygon) Radius() float64 {
	return p.radius
}

func (p *Polygon) BoundingBox() gm.Rect {
	return gm.RectEnclosing(p.vertices...)
}

func (p *Polygon) Clone() *Polygon {
	clone := *p
	clone.vertices = slices.Clone(p.vertices)
	return &clone
}

// IsConvex returns true if every vertex makes a counter clockwise turn.
// The result is computed on first use and cached.
func (p *Polygon) IsConvex() bool {
	if !p.convexKnown {
		p.convex = computeIsConvex(p.vertices)
		p.convexKnown = true
	}

	return p.convex
}

// Move translates the polygon by the given delta.
func (p *Polygon) Move(delta gm.Vec) {
	for idx := range p.vertices {
		p.vertices[idx] = p.vertices[idx].Add(delta)
	}

	p.centroid = p.centroid.Add(delta)
}

// MoveTo translates the polygon so that its centroid lies exactly at pos.
func (p *Polygon) MoveTo(pos gm.Vec) {
	p.Move(pos.Sub(p.centroid))
	p.centroid = pos
}

// Rotate rotates the polygon around its centroid.
func (p *Polygon) Rotate(angle gm.Rad) {
	p.RotateAround(angle, p.centroid)
}

// RotateAround rotates the polygon counter clockwise around the pivot.
func (p *Polygon) RotateAround(angle gm.Rad, pivot gm.Vec) {
	p.transform(gm.IdentityAffine().Rotate(angle), pivot)
}

// Scale scales the polygon uniformly around its centroid. The
// scale factor must not be zero.
func (p *Polygon) Scale(s float64) {
	p.ScaleAround(s, p.centroid)
}

// ScaleAround scales the polygon uniformly around the pivot. The
// scale factor must not be zero.
func (p *Polygon) ScaleAround(s float64, pivot gm.Vec) {
	p.transform(gm.IdentityAffine().Scale(gm.VecSplat(s)), pivot)
	p.radius *= math.Abs(s)
	p.area *= s * s
}

func (p *Polygon) transform(tr gm.Affine, pivot gm.Vec) {
	tr = gm.AroundPivot(pivot, tr)

	for idx := range p.vertices {
		p.vertices[idx] = tr.Transform(p.vertices[idx])
	}

	if pivot != p.centroid {
		p.centroid = tr.Transform(p.centroid)
	}
}

// Contains tests if the point lies within the polygon using the even-odd
// rule. A horizontal ray is cast towards positive x, rays passing exactly
// through a vertex are counted once.
func (p *Polygon) Contains(point gm.Vec) bool {
	var inside bool

	q := p.vertices[len(p.vertices)-1]
	for _, v := range p.vertices {
		prev := q
		q = v

		if cutsRay(point, prev, q) || crossesBoundary(point, prev, q) {
			inside = !inside
		}
	}

	return inside
}

// cutsRay tests if the edge pq strictly crosses the horizontal
// ray starting at point.
func cutsRay(point, p, q gm.Vec) bool {
	if !(p.Y > point.Y && q.Y < point.Y) && !(p.Y < point.Y && q.Y > point.Y) {
		return false
	}

	return point.X-p.X < (point.Y-p.Y)*(q.X-p.X)/(q.Y-p.Y)
}

// crossesBoundary handles a ray passing through one of the edges endpoints.
// Only the endpoint whose other side lies below the ray is counted.
func crossesBoundary(point, p, q gm.Vec) bool {
	return (p.Y == point.Y && p.X > point.X && q.Y < point.Y) ||
		(q.Y == point.Y && q.X > point.X && p.Y < point.Y)
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon(vertices=%v)", p.vertices)
}

func computeArea(vertices []gm.Vec) float64 {
	var area float64

	q := vertices[len(vertices)-1]
	for _, v := range vertices {
		area += q.Cross(v)
		q = v
	}

	return area / 2
}

func computeCentroid(vertices []gm.Vec, area float64) gm.Vec {
	var centroid gm.Vec

	q := vertices[len(vertices)-1]
	for _, v := range vertices {
		det := q.Cross(v)
		centroid = centroid.Add(q.Add(v).Mul(det))
		q = v
	}

	return centroid.Mul(1 / (6 * area))
}

func computeOutcircle(vertices []gm.Vec, centroid gm.Vec) float64 {
	var radius float64
	for _, v := range vertices {
		radius = max(radius, v.DistanceTo(centroid))
	}

	return radius
}

func computeIsConvex(vertices []gm.Vec) bool {
	n := len(vertices)
	if n == 3 {
		return true
	}

	for idx := range vertices {
		prev := vertices[(idx+n-1)%n]
		next := vertices[(idx+1)%n]
		if !ccw(prev, vertices[idx], next) {
			return false
		}
	}

	return true
}
