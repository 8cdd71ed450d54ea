package gjk

import (
	"errors"
	"fmt"

	"github.com/oliverbestmann/collide/gm"
	"go.uber.org/zap"
)

var ErrNotConverged = errors.New("narrow phase did not converge")

// Supporter is implemented by every shape the narrow phase can handle.
type Supporter interface {
	// Support returns the point of the shape that lies
	// furthest in the given direction.
	Support(dir gm.Vec) gm.Vec
}

// Curved is implemented by shapes with a curved outline. The support
// points of curved shapes are not a finite set, EPA might oscillate
// around the solution instead of reaching it.
type Curved interface {
	IsCurved() bool
}

type Result struct {
	Collides bool

	// Separation is the minimum translation that moves the first shape
	// out of the second one. It is the zero vector if the shapes
	// do not collide.
	Separation gm.Vec

	// Iterations spent in GJK and EPA.
	Iterations int
}

type Solver struct {
	config Config
	logger *zap.Logger
}

type Option func(s *Solver)

// WithLogger sets the logger used to report convergence problems.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		s.logger = logger
	}
}

func NewSolver(config Config, opts ...Option) (*Solver, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Solver{
		config: config,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Default returns a solver using DefaultConfig that does not log.
func Default() *Solver {
	return &Solver{
		config: DefaultConfig(),
		logger: zap.NewNop(),
	}
}

func (s *Solver) Config() Config {
	return s.config
}

func (s *Solver) Logger() *zap.Logger {
	return s.logger
}

// Collide tests the shapes a and b for overlap. Shapes that only touch
// are not colliding.
//
// If the iteration limit is exceeded, the best estimate so far is returned
// together with an error wrapping ErrNotConverged.
func (s *Solver) Collide(a, b Supporter) (Result, error) {
	md := minkowski{A: a, B: b}

	p := md.Support(gm.Vec{X: 1})
	if p.IsZero() {
		// both shapes share only their extreme vertex, e.g. two squares
		// touching in a corner. Circles can not normalize a zero direction,
		// so this is judged as not colliding.
		return Result{}, nil
	}

	dir := p.Neg()
	simplex := make([]gm.Vec, 1, 3)
	simplex[0] = p

	// line case
	p = md.Support(dir)
	if p.Dot(dir) <= 0 {
		return Result{Iterations: 1}, nil
	}

	simplex = append(simplex, p)
	dir = lineDirection(simplex[0], simplex[1])

	// all other iterations are the triangle case
	for iteration := range s.config.MaxIterations {
		p = md.Support(dir)
		if p.Dot(dir) <= 0 {
			return Result{Iterations: iteration + 1}, nil
		}

		simplex = append(simplex, p)

		var enclosed bool
		simplex, dir, enclosed = triangleCase(simplex)
		if !enclosed {
			continue
		}

		if turn(simplex[0], simplex[1], simplex[2]) == 0 {
			// the origin lies on a degenerate simplex, the shapes are touching
			return Result{Iterations: iteration + 1}, nil
		}

		result, err := s.expand(md, simplex)
		result.Iterations += iteration + 1
		return result, err
	}

	s.logger.Warn("GJK did not converge",
		zap.Int("iterations", s.config.MaxIterations),
		zap.Stringer("direction", dir),
	)

	return Result{Iterations: s.config.MaxIterations},
		fmt.Errorf("gjk after %d iterations: %w", s.config.MaxIterations, ErrNotConverged)
}

type minkowski struct {
	A, B Supporter
}

func (m minkowski) Support(dir gm.Vec) gm.Vec {
	return m.A.Support(dir).Sub(m.B.Support(dir.Neg()))
}

func (m minkowski) IsCurved() bool {
	return isCurved(m.A) || isCurved(m.B)
}

func isCurved(s Supporter) bool {
	curved, ok := s.(Curved)
	return ok && curved.IsCurved()
}

// turn returns twice the signed area of the triangle pqr.
func turn(p, q, r gm.Vec) float64 {
	return q.Sub(p).Cross(r.Sub(p))
}

// lineDirection returns the normal of the segment from a to b that
// points towards the origin. The origin must lie between a and b,
// as a is the furthest point in the direction of the origin.
func lineDirection(b, a gm.Vec) gm.Vec {
	dir := b.Sub(a).Perpendicular()
	if dir.Dot(a.Neg()) < 0 {
		dir = dir.Neg()
	}

	return dir
}

// triangleCase checks the voronoi regions of the newest simplex point a.
// The origin can only lie beyond ab, beyond ac or inside the triangle,
// as a lies on the edge of the Minkowski difference and the search
// came from beyond bc.
func triangleCase(simplex []gm.Vec) ([]gm.Vec, gm.Vec, bool) {
	c, b, a := simplex[0], simplex[1], simplex[2]

	ao := a.Neg()
	ab := b.Sub(a)
	ac := c.Sub(a)

	dir := ab.Perpendicular()
	if dir.Dot(ac) > 0 {
		dir = dir.Neg()
	}

	if dir.Dot(ao) > 0 {
		return append(simplex[:0], b, a), dir, false
	}

	dir = ac.Perpendicular()
	if dir.Dot(ab) > 0 {
		dir = dir.Neg()
	}

	if dir.Dot(ao) > 0 {
		return append(simplex[:0], c, a), dir, false
	}

	return simplex, gm.Vec{}, true
}
