// Package types holds small generic containers shared by the in-memory
// backends.
package types

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a hash set backed by map[T]struct{}. It is not safe for concurrent
// use; callers guard it with their own lock.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values and reports how many of them were not already present.
func (s Set[T]) Add(values ...T) int {
	added := 0
	for _, val := range values {
		if _, ok := s[val]; ok {
			continue
		}

		s[val] = struct{}{}
		added++
	}
	return added
}

// Delete removes values and reports how many of them were present.
func (s Set[T]) Delete(values ...T) int {
	removed := 0
	for _, val := range values {
		if _, ok := s[val]; !ok {
			continue
		}

		delete(s, val)
		removed++
	}
	return removed
}

// Has reports whether val is in the set.
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// ToIter returns an iterator over the elements, in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(s.ToIter())
}
