package rangekit

import "iter"

// KeyValue returns a read-only view over an associative container's entries,
// yielding key-value pairs in the container's native key order.
//
// The view is non-mutating even when the container itself is writable,
// so no const-wrapping dance is needed at the call site.
//
//	digits := rangekit.SortedMap[int, string]{1: "one", 2: "two", 3: "three"}
//	for k, v := range rangekit.KeyValue[int, string](digits).All() {
//		fmt.Println(k, v)
//	}
func KeyValue[K, V any](c KeyValueIterable[K, V]) KeyValueView[K, V] {
	return KeyValueView[K, V]{container: c}
}

// MutableKeyValue returns an entry view whose values may be modified in
// place through the yielded pointer. Keys stay immutable; they are passed
// by value.
//
// The container must offer addressable value traversal
// (MutableKeyValueIterable), which owned pair snapshots do not,
// so a mutating view over a snapshot is a compile error.
func MutableKeyValue[K, V any](c MutableKeyValueIterable[K, V]) MutableKeyValueView[K, V] {
	return MutableKeyValueView[K, V]{container: c}
}

// KeyValueView is a read-only pair view over one associative container.
type KeyValueView[K, V any] struct {
	container KeyValueIterable[K, V]
}

func (v KeyValueView[K, V]) All() iter.Seq2[K, V] {
	return v.container.Pairs()
}

// MutableKeyValueView is the value-mutating variant of KeyValueView.
type MutableKeyValueView[K, V any] struct {
	container MutableKeyValueIterable[K, V]
}

// All yields each key with an addressable value.
// Writes through the pointer land in the wrapped container.
func (v MutableKeyValueView[K, V]) All() iter.Seq2[K, *V] {
	return v.container.PairRefs()
}
