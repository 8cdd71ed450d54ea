package gm

import "math"

// Rad is an angle in radians. Positive angles rotate counter clockwise.
type Rad float64

func (r Rad) Degrees() float64 {
	return float64(r) * (180 / math.Pi)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := math.Mod(float64(r)+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

// Direction returns the unit vector pointing in the direction of the angle.
func (r Rad) Direction() Vec {
	sin, cos := math.Sincos(float64(r))
	return Vec{X: cos, Y: sin}
}

func DegToRad(deg float64) Rad {
	return Rad(math.Pi / 180 * deg)
}
