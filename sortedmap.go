package rangekit

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"

	"go.llib.dev/frameless/pkg/iterkit"
)

// SortedMap adapts a caller-owned map into the key-value capabilities.
// Entries traverse in ascending key order,
// which keeps the traversal deterministic despite map iteration randomisation.
// The conversion shares the underlying map, so value writes land in it.
type SortedMap[K constraints.Ordered, V any] map[K]V

func (m SortedMap[K, V]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys() {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// PairRefs yields each entry with an addressable value.
// The pointee is written back into the map when the loop body returns,
// including on early break.
func (m SortedMap[K, V]) PairRefs() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for _, k := range m.keys() {
			// map values are not addressable, so mutate a copy and write it back
			v := m[k]
			cont := yield(k, &v)
			m[k] = v
			if !cont {
				return
			}
		}
	}
}

func (m SortedMap[K, V]) keys() []K {
	return slices.Sorted(maps.Keys(m))
}

// PairSnapshotOf copies the map's entries, pre-sorted by key, into an
// owned read-only pair sequence. It is the explicit ownership decision for
// maps handed over only for the duration of the call; later changes to the
// source map are not visible through the snapshot.
func PairSnapshotOf[K constraints.Ordered, V any](m map[K]V) PairSnapshot[K, V] {
	return PairSnapshot[K, V]{pairs: iterkit.Collect2KV(SortedMap[K, V](m).Pairs())}
}

// PairSnapshot is an owned, immutable copy of an associative container's
// entries. It has no addressable value traversal, so mutating views over
// it do not compile.
type PairSnapshot[K, V any] struct {
	pairs []iterkit.KV[K, V]
}

func (s PairSnapshot[K, V]) Pairs() iter.Seq2[K, V] {
	return iterkit.FromKV(s.pairs)
}

// Len returns the number of captured entries.
func (s PairSnapshot[K, V]) Len() int {
	return len(s.pairs)
}
