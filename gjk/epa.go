package gjk

import (
	"fmt"
	"math"
	"slices"

	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/typedpool"
	"go.uber.org/zap"
)

var polytopes = typedpool.Slices[gm.Vec]()

type edge struct {
	Distance float64
	Normal   gm.Vec

	// index of the edges end point in the polytope
	Index int
}

// expand runs EPA on a simplex that encloses the origin.
func (s *Solver) expand(md minkowski, simplex []gm.Vec) (Result, error) {
	buf := polytopes.Get()

	polytope := append(*buf, simplex...)
	defer func() {
		// keep the grown buffer for the next run
		*buf = polytope
		polytopes.Put(buf)
	}()

	// keep the polytope counter clockwise, edge normals then point outwards
	if turn(polytope[0], polytope[1], polytope[2]) < 0 {
		polytope[0], polytope[2] = polytope[2], polytope[0]
	}

	curved := md.IsCurved()
	lastGain := math.Inf(1)

	var separation gm.Vec
	for iteration := range s.config.MaxIterations {
		e := closestEdge(polytope)

		p := md.Support(e.Normal)
		distance := p.Dot(e.Normal)
		separation = e.Normal.Mul(-distance)

		gain := distance - e.Distance
		if gain < s.config.Tolerance || (curved && math.Abs(lastGain-gain) < s.config.CurvedTolerance) {
			return Result{Collides: true, Separation: separation, Iterations: iteration + 1}, nil
		}

		lastGain = gain
		polytope = slices.Insert(polytope, e.Index, p)
	}

	s.logger.Warn("EPA did not converge",
		zap.Int("iterations", s.config.MaxIterations),
		zap.Int("polytopeSize", len(polytope)),
		zap.Float64("lastGain", lastGain),
		zap.Stringer("separation", separation),
	)

	result := Result{Collides: true, Separation: separation, Iterations: s.config.MaxIterations}
	return result, fmt.Errorf("epa after %d iterations: %w", s.config.MaxIterations, ErrNotConverged)
}

// closestEdge returns the edge of the counter clockwise polytope
// closest to the origin.
func closestEdge(polytope []gm.Vec) edge {
	closest := edge{Distance: math.Inf(1)}

	prev := polytope[len(polytope)-1]
	for idx, p := range polytope {
		a := prev
		prev = p

		e := p.Sub(a)
		if e.IsZero() {
			continue
		}

		normal := gm.Vec{X: e.Y, Y: -e.X}.Normalized()

		distance := a.Dot(normal)
		if distance < closest.Distance {
			closest = edge{Distance: distance, Normal: normal, Index: idx}
		}
	}

	return closest
}
