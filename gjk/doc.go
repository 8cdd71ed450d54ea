// Package gjk implements the narrow phase of the collision detection.
//
// Overlap of two convex shapes is decided with the Gilbert-Johnson-Keerthi
// algorithm on the Minkowski difference of both shapes. If the shapes
// overlap, the expanding polytope algorithm (EPA) refines the final simplex
// into the minimum translation vector that separates the shapes.
//
// Both algorithms only ever ask the shapes for their support point in a
// given direction, which makes them independent of the actual kind of shape.
//
// All tolerances are absolute. Inputs at extreme coordinate scales
// need to be rescaled by the caller.
package gjk
