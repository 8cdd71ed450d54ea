package set

import (
	"iter"
	"slices"
)

// Set is a set of comparable values. Values are iterated in insertion order,
// removing a value moves the last inserted value into its slot.
// The zero value is an empty set ready to use.
type Set[T comparable] struct {
	index  map[T]int
	values []T
}

// Insert adds the value to the set. Returns false if
// the value was already present.
func (s *Set[T]) Insert(value T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}

	// check if the value exists
	if _, exists := s.index[value]; exists {
		return false
	}

	// insert value
	s.index[value] = len(s.values)
	s.values = append(s.values, value)
	return true
}

// Remove removes the value from the set. Removing a value
// that is not in the set does nothing.
func (s *Set[T]) Remove(value T) {
	idx, exists := s.index[value]
	if !exists {
		return
	}

	last := len(s.values) - 1
	if idx != last {
		moved := s.values[last]
		s.values[idx] = moved
		s.index[moved] = idx
	}

	s.values = s.values[:last]
	delete(s.index, value)
}

func (s *Set[T]) Has(value T) bool {
	_, exists := s.index[value]
	return exists
}

// Values iterates over the values in the set. Each value is visited at most
// once, values removed during iteration are skipped, values inserted during
// iteration are not visited.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range slices.Clone(s.values) {
			if !s.Has(value) {
				continue
			}

			if !yield(value) {
				return
			}
		}
	}
}

func (s *Set[T]) Len() int {
	return len(s.values)
}

func (s *Set[T]) Clear() {
	clear(s.index)
	s.values = s.values[:0]
}
