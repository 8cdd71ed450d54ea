package collide

import (
	"errors"
	"fmt"
	"iter"

	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/polygon"
)

var ErrNotConvex = errors.New("polygon is not convex")

type Kind uint8

const (
	KindCircle Kind = iota
	KindPoint
	KindConvexPolygon
	KindConcavePolygon

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	case KindPoint:
		return "Point"
	case KindConvexPolygon:
		return "ConvexPolygon"
	case KindConcavePolygon:
		return "ConcavePolygon"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Shape is implemented by Circle, Point, ConvexPolygon and ConcavePolygon.
// No other implementations exist.
type Shape interface {
	Kind() Kind

	// Center returns the center of a circle, the position of a point or
	// the centroid of a polygon.
	Center() gm.Vec

	// Rotation returns the sum of all rotations applied to the shape.
	Rotation() gm.Rad

	// MoveTo moves the shape so that its center lies at pos.
	MoveTo(pos gm.Vec)
	Move(delta gm.Vec)

	// Rotate rotates the shape around its center.
	Rotate(angle gm.Rad)
	SetRotation(angle gm.Rad)

	// Scale scales the shape around its center.
	// The scale factor must not be zero.
	Scale(s float64)

	// Support returns the point of the shape that lies
	// furthest in the given direction.
	Support(dir gm.Vec) gm.Vec

	Contains(point gm.Vec) bool
	BoundingBox() gm.Rect

	// CollidesWith tests if this shape overlaps the other shape. The
	// separation vector of the result moves this shape out of other.
	CollidesWith(other Shape) CollisionResult

	// IntersectsRay returns the closest intersection of the ray
	// origin + t*dir with the shape, with t >= 0.
	IntersectsRay(origin, dir gm.Vec) RayResult

	// IntersectionsWithRay yields the ray parameter of every
	// intersection with the shape, with t >= 0.
	IntersectionsWithRay(origin, dir gm.Vec) iter.Seq[float64]

	sealed()
}

type CollisionResult struct {
	Collides bool

	// Separation is the zero vector if the shapes do not collide.
	Separation gm.Vec
}

func (r CollisionResult) negated() CollisionResult {
	if !r.Collides {
		return r
	}

	return CollisionResult{Collides: true, Separation: r.Separation.Neg()}
}

type RayResult struct {
	Hit bool

	// T is the smallest ray parameter of all hits.
	T float64

	// Hits yields every hit. It can be iterated multiple times
	// and reflects the current position of the shape.
	Hits iter.Seq[float64]
}

// rayResult reduces all hits to the smallest one.
func rayResult(hits iter.Seq[float64]) RayResult {
	result := RayResult{Hits: hits}

	for t := range hits {
		if !result.Hit || t < result.T {
			result.T = t
			result.Hit = true
		}
	}

	return result
}

// NewPolygonShape builds a polygon from the given vertices and wraps it
// into a ConvexPolygon if it is convex, or a ConcavePolygon otherwise.
func NewPolygonShape(vertices ...gm.Vec) (Shape, error) {
	p, err := polygon.New(vertices...)
	if err != nil {
		return nil, err
	}

	if p.IsConvex() {
		return NewConvexPolygon(p)
	}

	return NewConcavePolygon(p)
}

type shapeBase struct {
	rotation gm.Rad
}

func (r *shapeBase) Rotation() gm.Rad {
	return r.rotation
}

func (r *shapeBase) sealed() {}
