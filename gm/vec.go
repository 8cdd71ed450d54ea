package gm

import (
	"fmt"
	"math"
)

// Vec is a 2d vector of float64 values. It is a plain value type,
// two vectors are equal if both components are equal.
type Vec struct {
	X, Y float64
}

func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of both vectors.
func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the determinant of the 2x2 matrix built from both vectors,
// the z component of the 3d cross product. It is positive if other
// lies counter clockwise of v.
func (v Vec) Cross(other Vec) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Perpendicular returns the vector rotated counter clockwise by 90°.
func (v Vec) Perpendicular() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Rotated returns the vector rotated counter clockwise by the given angle.
func (v Vec) Rotated(angle Rad) Vec {
	sin, cos := math.Sincos(float64(angle))
	return Vec{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}

// Normalized returns a vector of length one pointing in the same direction.
// The zero vector stays the zero vector.
func (v Vec) Normalized() Vec {
	length := v.Length()
	if length == 0 {
		return v
	}

	v.X /= length
	v.Y /= length
	return v
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) DistanceTo(other Vec) float64 {
	return v.Sub(other).Length()
}

func (v Vec) DistanceToSqr(other Vec) float64 {
	return v.Sub(other).LengthSqr()
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Less orders vectors lexicographically, first by X, then by Y.
func (v Vec) Less(other Vec) bool {
	return v.X < other.X || (v.X == other.X && v.Y < other.Y)
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
