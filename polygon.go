package collide

import (
	"fmt"
	"iter"
	"math"

	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/polygon"
)

// ConvexPolygon is a shape backed by a convex polygon. It takes
// ownership of the polygon, the polygon must not be modified
// by the caller afterwards.
type ConvexPolygon struct {
	shapeBase
	polygon *polygon.Polygon
}

func NewConvexPolygon(p *polygon.Polygon) (*ConvexPolygon, error) {
	if !p.IsConvex() {
		return nil, fmt.Errorf("convex polygon shape from %s: %w", p, ErrNotConvex)
	}

	return &ConvexPolygon{polygon: p}, nil
}

func (c *ConvexPolygon) Kind() Kind {
	return KindConvexPolygon
}

func (c *ConvexPolygon) Polygon() *polygon.Polygon {
	return c.polygon
}

func (c *ConvexPolygon) Center() gm.Vec {
	return c.polygon.Centroid()
}

func (c *ConvexPolygon) MoveTo(pos gm.Vec) {
	c.polygon.MoveTo(pos)
}

func (c *ConvexPolygon) Move(delta gm.Vec) {
	c.polygon.Move(delta)
}

func (c *ConvexPolygon) Rotate(angle gm.Rad) {
	c.rotateAround(angle, c.polygon.Centroid())
}

func (c *ConvexPolygon) rotateAround(angle gm.Rad, pivot gm.Vec) {
	c.rotation += angle
	c.polygon.RotateAround(angle, pivot)
}

func (c *ConvexPolygon) SetRotation(angle gm.Rad) {
	c.Rotate(angle - c.rotation)
}

func (c *ConvexPolygon) Scale(s float64) {
	c.polygon.Scale(s)
}

func (c *ConvexPolygon) Support(dir gm.Vec) gm.Vec {
	return support(c.polygon, dir)
}

func (c *ConvexPolygon) Contains(point gm.Vec) bool {
	return c.polygon.Contains(point)
}

func (c *ConvexPolygon) BoundingBox() gm.Rect {
	return c.polygon.BoundingBox()
}

func (c *ConvexPolygon) CollidesWith(other Shape) CollisionResult {
	return collide(c, other)
}

func (c *ConvexPolygon) IntersectsRay(origin, dir gm.Vec) RayResult {
	return rayResult(c.IntersectionsWithRay(origin, dir))
}

func (c *ConvexPolygon) IntersectionsWithRay(origin, dir gm.Vec) iter.Seq[float64] {
	return c.polygon.IntersectionsWithRay(origin, dir)
}

func (c *ConvexPolygon) String() string {
	return fmt.Sprintf("ConvexPolygon(%s)", c.polygon)
}

// ConcavePolygon is a shape backed by an arbitrary simple polygon. The
// polygon is split into convex parts once during construction, collisions
// are resolved against each part.
type ConcavePolygon struct {
	shapeBase
	polygon *polygon.Polygon
	parts   []*ConvexPolygon
}

// NewConcavePolygon takes ownership of the polygon and splits it into
// convex parts. A polygon validated by polygon.New always splits, the error
// is only returned for invalid polygons that bypassed that validation.
func NewConcavePolygon(p *polygon.Polygon) (*ConcavePolygon, error) {
	polygons, err := p.SplitConvex()
	if err != nil {
		return nil, fmt.Errorf("split %s into convex parts: %w", p, err)
	}

	parts := make([]*ConvexPolygon, 0, len(polygons))
	for _, part := range polygons {
		shape, err := NewConvexPolygon(part)
		if err != nil {
			return nil, err
		}

		parts = append(parts, shape)
	}

	return &ConcavePolygon{polygon: p, parts: parts}, nil
}

func (c *ConcavePolygon) Kind() Kind {
	return KindConcavePolygon
}

func (c *ConcavePolygon) Polygon() *polygon.Polygon {
	return c.polygon
}

// Parts returns the convex parts of this polygon. The parts are owned
// by the concave polygon and must not be transformed directly.
func (c *ConcavePolygon) Parts() []*ConvexPolygon {
	return c.parts
}

func (c *ConcavePolygon) Center() gm.Vec {
	return c.polygon.Centroid()
}

func (c *ConcavePolygon) MoveTo(pos gm.Vec) {
	delta := pos.Sub(c.polygon.Centroid())

	c.polygon.MoveTo(pos)
	for _, part := range c.parts {
		part.Move(delta)
	}
}

func (c *ConcavePolygon) Move(delta gm.Vec) {
	c.polygon.Move(delta)
	for _, part := range c.parts {
		part.Move(delta)
	}
}

// Rotate rotates the polygon around its centroid. Every part is rotated
// around the same pivot so the parts keep covering the polygon.
func (c *ConcavePolygon) Rotate(angle gm.Rad) {
	pivot := c.polygon.Centroid()

	c.rotation += angle
	c.polygon.Rotate(angle)

	for _, part := range c.parts {
		part.rotateAround(angle, pivot)
	}
}

func (c *ConcavePolygon) SetRotation(angle gm.Rad) {
	c.Rotate(angle - c.rotation)
}

func (c *ConcavePolygon) Scale(s float64) {
	pivot := c.polygon.Centroid()

	c.polygon.Scale(s)
	for _, part := range c.parts {
		part.polygon.ScaleAround(s, pivot)
	}
}

// Support returns the support point of the polygon's convex hull.
func (c *ConcavePolygon) Support(dir gm.Vec) gm.Vec {
	return support(c.polygon, dir)
}

func (c *ConcavePolygon) Contains(point gm.Vec) bool {
	return c.polygon.Contains(point)
}

func (c *ConcavePolygon) BoundingBox() gm.Rect {
	return c.polygon.BoundingBox()
}

func (c *ConcavePolygon) CollidesWith(other Shape) CollisionResult {
	return collide(c, other)
}

func (c *ConcavePolygon) IntersectsRay(origin, dir gm.Vec) RayResult {
	return rayResult(c.IntersectionsWithRay(origin, dir))
}

func (c *ConcavePolygon) IntersectionsWithRay(origin, dir gm.Vec) iter.Seq[float64] {
	return c.polygon.IntersectionsWithRay(origin, dir)
}

func (c *ConcavePolygon) String() string {
	return fmt.Sprintf("ConcavePolygon(%s, parts=%d)", c.polygon, len(c.parts))
}

// support scans all vertices of the polygon. For a concave polygon this
// yields the support point of its convex hull.
func support(p *polygon.Polygon, dir gm.Vec) gm.Vec {
	var best gm.Vec
	bestDot := math.Inf(-1)

	for _, v := range p.All() {
		if dot := v.Dot(dir); dot > bestDot {
			best, bestDot = v, dot
		}
	}

	return best
}
