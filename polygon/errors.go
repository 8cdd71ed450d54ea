package polygon

import "errors"

var (
	// ErrTooFewVertices is returned if a polygon has less than three
	// vertices after collinear and duplicate vertices are removed.
	ErrTooFewVertices = errors.New("polygon needs at least 3 non collinear vertices")

	// ErrSelfIntersecting is returned for polygons with crossing or touching edges.
	ErrSelfIntersecting = errors.New("polygon must not intersect itself")

	// ErrCannotTriangulate is returned if ear clipping finds no ear within
	// a full pass over the remaining vertices.
	ErrCannotTriangulate = errors.New("cannot triangulate polygon")

	// ErrNoSharedEdge is returned by MergeWith if the polygons do not share
	// exactly one edge.
	ErrNoSharedEdge = errors.New("polygons do not share exactly one edge")

	// ErrDuplicateVertex is returned when inserting a vertex into a VertexSet
	// that already holds a vertex with the same coordinates.
	ErrDuplicateVertex = errors.New("vertex already contained in set")
)
