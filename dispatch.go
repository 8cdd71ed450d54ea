package collide

import (
	"errors"
	"math"

	"github.com/oliverbestmann/collide/gjk"
	"github.com/oliverbestmann/collide/gm"
	"go.uber.org/zap"
)

type resolver func(self, other Shape) CollisionResult

var resolvers [kindCount][kindCount]resolver

func init() {
	resolvers = [kindCount][kindCount]resolver{
		KindCircle: {
			KindCircle:         collideCircles,
			KindPoint:          collideWithPoint,
			KindConvexPolygon:  collideNarrowPhase,
			KindConcavePolygon: mirrored,
		},
		KindPoint: {
			KindCircle:         collidePoint,
			KindPoint:          collidePoint,
			KindConvexPolygon:  collidePoint,
			KindConcavePolygon: collidePoint,
		},
		KindConvexPolygon: {
			KindCircle:         mirrored,
			KindPoint:          collideWithPoint,
			KindConvexPolygon:  collideNarrowPhase,
			KindConcavePolygon: mirrored,
		},
		KindConcavePolygon: {
			KindCircle:         collideParts,
			KindPoint:          collideWithPoint,
			KindConvexPolygon:  collideParts,
			KindConcavePolygon: collideParts,
		},
	}
}

var solver = gjk.Default()

// SetSolver replaces the narrow phase solver used by all shapes. It must
// be called before shapes are tested for collision concurrently.
func SetSolver(s *gjk.Solver) {
	solver = s
}

func collide(self, other Shape) CollisionResult {
	if self == other {
		return CollisionResult{}
	}

	return resolvers[self.Kind()][other.Kind()](self, other)
}

// mirrored resolves the pair using the logic of the other shape
// and negates the separation.
func mirrored(self, other Shape) CollisionResult {
	return other.CollidesWith(self).negated()
}

func collideCircles(self, other Shape) CollisionResult {
	a := self.(*Circle)
	b := other.(*Circle)

	delta := a.center.Sub(b.center)
	radii := a.radius + b.radius

	distanceSqr := delta.LengthSqr()
	if distanceSqr >= radii*radii {
		return CollisionResult{}
	}

	if distanceSqr == 0 {
		return CollisionResult{Collides: true, Separation: gm.Vec{Y: radii}}
	}

	distance := math.Sqrt(distanceSqr)
	separation := delta.Mul((radii - distance) / distance)
	return CollisionResult{Collides: true, Separation: separation}
}

func collideNarrowPhase(self, other Shape) CollisionResult {
	result, err := solver.Collide(self, other)
	if errors.Is(err, gjk.ErrNotConverged) {
		solver.Logger().Debug("Using best estimate of narrow phase",
			zap.Stringer("self", self.Kind()),
			zap.Stringer("other", other.Kind()),
			zap.Error(err),
		)
	}

	return CollisionResult{
		Collides:   result.Collides,
		Separation: result.Separation,
	}
}

// collideParts resolves the collision against every convex part. The
// separation takes the component with the largest magnitude per axis
// over all colliding parts. This is an approximation and not
// the true minimum translation.
func collideParts(self, other Shape) CollisionResult {
	var result CollisionResult

	for _, part := range self.(*ConcavePolygon).parts {
		partResult := part.CollidesWith(other)
		if !partResult.Collides {
			continue
		}

		result.Collides = true

		sep := partResult.Separation
		if math.Abs(sep.X) > math.Abs(result.Separation.X) {
			result.Separation.X = sep.X
		}

		if math.Abs(sep.Y) > math.Abs(result.Separation.Y) {
			result.Separation.Y = sep.Y
		}
	}

	return result
}

func collidePoint(self, other Shape) CollisionResult {
	return CollisionResult{Collides: other.Contains(self.Center())}
}

func collideWithPoint(self, other Shape) CollisionResult {
	return CollisionResult{Collides: self.Contains(other.Center())}
}
