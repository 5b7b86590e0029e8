package rangekit

import (
	"iter"
	"slices"
)

// Slice adapts a caller-owned slice into the container capabilities.
// The conversion shares the backing array,
// so mutating traversals write into the original slice,
// and content changes between two passes are visible to later passes.
type Slice[V any] []V

func (s Slice[V]) Values() iter.Seq[V] {
	return slices.Values(s)
}

func (s Slice[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := len(s) - 1; 0 <= i; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

func (s Slice[V]) Refs() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

func (s Slice[V]) BackwardRefs() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for i := len(s) - 1; 0 <= i; i-- {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// SnapshotOf copies the given values into an owned, read-only sequence that
// stays alive as long as the returned value, detached from whatever slice
// the values came from. It is the explicit ownership decision for values
// that are handed over only for the duration of the call.
//
// A Snapshot has no pointer traversal, so mutating views over it do not
// compile.
func SnapshotOf[V any](vs ...V) Snapshot[V] {
	// SnapshotOf(s...) passes the caller's slice through as-is, hence the clone
	return Snapshot[V]{values: slices.Clone(vs)}
}

// Snapshot is an owned, immutable copy of a sequence of values.
type Snapshot[V any] struct {
	values []V
}

func (s Snapshot[V]) Values() iter.Seq[V] {
	return Slice[V](s.values).Values()
}

func (s Snapshot[V]) Backward() iter.Seq[V] {
	return Slice[V](s.values).Backward()
}

// Len returns the number of captured values.
func (s Snapshot[V]) Len() int {
	return len(s.values)
}
