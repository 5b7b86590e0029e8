package rangekit

import (
	"iter"

	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
)

// Reversible returns a read-only view over a single container,
// whose traversal order is selected by the IterateBackward option.
// Without options the view iterates backward.
//
// The view is non-mutating even when the container itself is writable;
// use MutableReversible when in-place modification is intended.
//
//	values := rangekit.Slice[int]{0, 1, 2, 3}
//	for v := range rangekit.Reversible[int](values).All() {
//		fmt.Println(v) // 3, 2, 1, 0
//	}
func Reversible[V any](c BackwardIterable[V], opts ...ReversibleOption) ReversibleView[V] {
	return ReversibleView[V]{container: c, conf: option.ToConfig(opts)}
}

// MutableReversible returns a direction-toggled view whose traversal yields
// element pointers, so the loop body can modify the container in place.
//
// The container must offer pointer traversal (MutableIterable).
// Owned snapshots do not, therefore a mutating view over a snapshot is a
// compile error.
func MutableReversible[V any](c MutableIterable[V], opts ...ReversibleOption) MutableReversibleView[V] {
	return MutableReversibleView[V]{container: c, conf: option.ToConfig(opts)}
}

// ReversibleConfig holds the traversal direction of a Reversible view.
type ReversibleConfig struct {
	// Backward selects reverse-order traversal. Defaults to true.
	Backward bool
}

func (c *ReversibleConfig) Init() {
	c.Backward = true
}

func (c ReversibleConfig) Configure(t *ReversibleConfig) { *t = reflectkit.MergeStruct(*t, c) }

type ReversibleOption option.Option[ReversibleConfig]

// IterateBackward sets the traversal direction of a Reversible view.
// Passing a runtime flag allows toggling the order between two loop passes
// with a single loop body:
//
//	for v := range rangekit.Reversible[int](values, rangekit.IterateBackward(revert)).All() {
func IterateBackward(backward bool) ReversibleOption {
	return option.Func[ReversibleConfig](func(c *ReversibleConfig) {
		c.Backward = backward
	})
}

// ReversibleView is a read-only, direction-toggled view over one container.
// The direction is fixed for the lifetime of the view value.
type ReversibleView[V any] struct {
	container BackwardIterable[V]
	conf      ReversibleConfig
}

// All returns the traversal in the view's configured direction.
// The direction is read when All is called, and the traversal walks the
// container's current content, so a borrowed container may change between
// two passes.
func (v ReversibleView[V]) All() iter.Seq[V] {
	if v.conf.Backward {
		return v.container.Backward()
	}
	return v.container.Values()
}

// MutableReversibleView is the pointer-yielding variant of ReversibleView.
type MutableReversibleView[V any] struct {
	container MutableIterable[V]
	conf      ReversibleConfig
}

// All returns addressable access to the elements in the configured direction.
// Writes through the yielded pointers land in the wrapped container.
func (v MutableReversibleView[V]) All() iter.Seq[*V] {
	if v.conf.Backward {
		return v.container.BackwardRefs()
	}
	return v.container.Refs()
}
