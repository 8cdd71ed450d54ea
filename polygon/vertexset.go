package polygon

import (
	"fmt"
	"iter"

	"github.com/oliverbestmann/collide/gm"
	"github.com/oliverbestmann/collide/internal/set"
)

// VertexSet is a set of vertices keyed on their exact coordinates.
// Two vertices with the same coordinates collapse into one entry.
//
// Iteration order is deterministic but not part of the contract.
// The zero value is an empty set ready to use.
type VertexSet struct {
	values set.Set[gm.Vec]
}

// Insert adds the vertex to the set. It fails with ErrDuplicateVertex if
// a vertex with the same coordinates is already present.
func (s *VertexSet) Insert(v gm.Vec) error {
	if !s.values.Insert(v) {
		return fmt.Errorf("insert %s: %w", v, ErrDuplicateVertex)
	}

	return nil
}

func (s *VertexSet) Has(v gm.Vec) bool {
	return s.values.Has(v)
}

// Remove removes the vertex from the set, does nothing if it is not present.
func (s *VertexSet) Remove(v gm.Vec) {
	s.values.Remove(v)
}

func (s *VertexSet) Len() int {
	return s.values.Len()
}

func (s *VertexSet) Clear() {
	s.values.Clear()
}

// All iterates over the vertices in the set. Stop ranging over
// the sequence to cancel the iteration early.
func (s *VertexSet) All() iter.Seq[gm.Vec] {
	return s.values.Values()
}

// ForEach calls visit for every vertex in the set until
// visit returns false.
func (s *VertexSet) ForEach(visit func(v gm.Vec) bool) {
	for v := range s.All() {
		if !visit(v) {
			return
		}
	}
}
