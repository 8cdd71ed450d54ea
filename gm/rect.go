package gm

import (
	"fmt"
)

// Rect is an axis aligned rectangle, e.g. a bounding box.
type Rect struct {
	Min, Max Vec
}

func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: Vec{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

// RectEnclosing returns the smallest rectangle containing all points.
// The zero Rect is returned if no points are given.
func RectEnclosing(points ...Vec) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	r := Rect{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		r = r.Extend(point)
	}

	return r
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Translate(offset Vec) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

// Extend grows the rectangle so that it contains the given point.
func (r Rect) Extend(p Vec) Rect {
	return Rect{
		Min: Vec{X: min(r.Min.X, p.X), Y: min(r.Min.Y, p.Y)},
		Max: Vec{X: max(r.Max.X, p.X), Y: max(r.Max.Y, p.Y)},
	}
}

func (r Rect) Union(other Rect) Rect {
	return r.Extend(other.Min).Extend(other.Max)
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Intersects returns true if both rectangles overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
