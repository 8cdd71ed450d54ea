// Package collide provides shapes that can be tested for collision with
// each other and queried with rays.
//
// Four kinds of shapes exist: Circle, Point, ConvexPolygon and
// ConcavePolygon. Polygons are built from a polygon.Polygon, use
// NewPolygonShape to pick the right kind automatically.
//
// Shapes are not safe for concurrent use. Moving or rotating a shape
// while another goroutine tests it for collision is a data race.
package collide
