package collide

import (
	"fmt"
	"iter"

	"github.com/oliverbestmann/collide/gm"
)

type Point struct {
	shapeBase
	pos gm.Vec
}

func NewPoint(pos gm.Vec) *Point {
	return &Point{pos: pos}
}

func (p *Point) Kind() Kind {
	return KindPoint
}

func (p *Point) Center() gm.Vec {
	return p.pos
}

func (p *Point) MoveTo(pos gm.Vec) {
	p.pos = pos
}

func (p *Point) Move(delta gm.Vec) {
	p.pos = p.pos.Add(delta)
}

func (p *Point) Rotate(angle gm.Rad) {
	p.rotation += angle
}

func (p *Point) SetRotation(angle gm.Rad) {
	p.Rotate(angle - p.rotation)
}

// Scale does nothing, a point has no extent.
func (p *Point) Scale(float64) {}

func (p *Point) Support(gm.Vec) gm.Vec {
	return p.pos
}

// Contains tests for exact equality.
func (p *Point) Contains(point gm.Vec) bool {
	return p.pos == point
}

func (p *Point) BoundingBox() gm.Rect {
	return gm.RectWithPoints(p.pos, p.pos)
}

func (p *Point) CollidesWith(other Shape) CollisionResult {
	return collide(p, other)
}

func (p *Point) IntersectsRay(origin, dir gm.Vec) RayResult {
	return rayResult(p.IntersectionsWithRay(origin, dir))
}

// IntersectionsWithRay yields a hit if the point lies exactly on the ray.
func (p *Point) IntersectionsWithRay(origin, dir gm.Vec) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if dir.IsZero() {
			return
		}

		rel := p.pos.Sub(origin)
		if dir.Cross(rel) != 0 {
			return
		}

		if t := dir.Dot(rel) / dir.LengthSqr(); t >= 0 {
			yield(t)
		}
	}
}

func (p *Point) String() string {
	return fmt.Sprintf("Point(%s)", p.pos)
}
