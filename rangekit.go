// Package rangekit provides container views for range loops.
//
// # Summary
//
// A view wraps one or more containers and presents an alternate iteration
// order or shape, without copying unless ownership is requested explicitly.
// Views are plain values; they are constructed by a factory function and
// consumed directly by a range loop through their All method,
// which returns a Go 1.23 iter.Seq / iter.Seq2.
//
// Three view families are provided:
//
//   - Reversible / MutableReversible: forward or backward traversal of a
//     single container, selectable at runtime.
//   - Synchronized2..4 / Synchronized: lockstep traversal of multiple
//     containers, stopping at the shortest one.
//   - KeyValue / MutableKeyValue: key-value pair traversal of an
//     associative container in its native entry order.
//
// Containers take part by satisfying small capability interfaces.
// The split between read and write capabilities is what enforces the
// mutability rules at compile time: read-only factories accept any
// container and narrow it to a non-mutating view, while mutating factories
// only accept containers that expose pointer traversal.
// Owned snapshots never do, so a mutating view over a snapshot is a
// compile error, not a runtime one.
//
// Views hold no locks and provide no synchronisation;
// the caller keeps the wrapped containers alive and externally synchronised
// for as long as any traversal derived from the view is in use.
package rangekit

import "iter"

// Iterable is the minimal container capability the views build upon:
// an in-order value traversal.
//
// The returned sequence must be re-iterable;
// every call of Values restarts from the first element.
type Iterable[V any] interface {
	// Values returns the container's elements in their natural order.
	Values() iter.Seq[V]
}

// BackwardIterable marks containers that can also be walked in reverse
// natural order. The Reversible views require this capability.
type BackwardIterable[V any] interface {
	Iterable[V]
	// Backward returns the container's elements in reverse natural order.
	Backward() iter.Seq[V]
}

// MutableIterable is the capability of caller-owned, writable containers.
// Traversal yields element pointers, so writes land in the container itself.
//
// Owned snapshot bindings intentionally lack this capability,
// which rejects mutating views over them at compile time.
type MutableIterable[V any] interface {
	// Refs returns addressable access to the elements in natural order.
	Refs() iter.Seq[*V]
	// BackwardRefs returns addressable access in reverse natural order.
	BackwardRefs() iter.Seq[*V]
}

// KeyValueIterable is the associative container capability.
type KeyValueIterable[K, V any] interface {
	// Pairs returns the container's entries in its native key order.
	// The returned sequence must be re-iterable and order-stable.
	Pairs() iter.Seq2[K, V]
}

// MutableKeyValueIterable additionally permits in-place modification of the
// values of an associative container. Keys are always passed by value and
// remain immutable through this capability.
type MutableKeyValueIterable[K, V any] interface {
	KeyValueIterable[K, V]
	// PairRefs returns the entries with addressable values, in native key order.
	PairRefs() iter.Seq2[K, *V]
}
