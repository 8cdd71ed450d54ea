package collide

import (
	"fmt"
	"iter"
	"math"

	"github.com/oliverbestmann/collide/gm"
)

type Circle struct {
	shapeBase
	center gm.Vec
	radius float64
}

func NewCircle(center gm.Vec, radius float64) *Circle {
	return &Circle{center: center, radius: radius}
}

func (c *Circle) Kind() Kind {
	return KindCircle
}

func (c *Circle) Center() gm.Vec {
	return c.center
}

func (c *Circle) Radius() float64 {
	return c.radius
}

func (c *Circle) MoveTo(pos gm.Vec) {
	c.center = pos
}

func (c *Circle) Move(delta gm.Vec) {
	c.center = c.center.Add(delta)
}

func (c *Circle) Rotate(angle gm.Rad) {
	c.rotation += angle
}

func (c *Circle) SetRotation(angle gm.Rad) {
	c.Rotate(angle - c.rotation)
}

func (c *Circle) Scale(s float64) {
	c.radius *= math.Abs(s)
}

func (c *Circle) Support(dir gm.Vec) gm.Vec {
	return c.center.Add(dir.Normalized().Mul(c.radius))
}

// IsCurved marks the circle as a shape with a curved outline for the
// narrow phase.
func (c *Circle) IsCurved() bool {
	return true
}

func (c *Circle) Contains(point gm.Vec) bool {
	return point.DistanceToSqr(c.center) < c.radius*c.radius
}

func (c *Circle) BoundingBox() gm.Rect {
	return gm.RectWithCenterAndSize(c.center, gm.VecSplat(2*c.radius))
}

func (c *Circle) CollidesWith(other Shape) CollisionResult {
	return collide(c, other)
}

func (c *Circle) IntersectsRay(origin, dir gm.Vec) RayResult {
	return rayResult(c.IntersectionsWithRay(origin, dir))
}

// IntersectionsWithRay yields up to two hits. A ray starting inside
// the circle only hits it once.
func (c *Circle) IntersectionsWithRay(origin, dir gm.Vec) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		a := dir.LengthSqr()
		if a == 0 {
			return
		}

		// solve |origin + t*dir - center|² = radius²
		rel := origin.Sub(c.center)
		b := 2 * dir.Dot(rel)
		d := b*b - 4*a*(rel.LengthSqr()-c.radius*c.radius)
		if d < 0 {
			return
		}

		d = math.Sqrt(d)
		t1 := (-b - d) / (2 * a)
		t2 := (-b + d) / (2 * a)

		if t1 >= 0 && !yield(t1) {
			return
		}

		if t2 >= 0 && t2 != t1 {
			yield(t2)
		}
	}
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(center=%s, radius=%v)", c.center, c.radius)
}
