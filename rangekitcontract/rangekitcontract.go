// Package rangekitcontract provides reusable behavioural suites for the
// rangekit container capabilities,
// meant to be run against every binding that claims one of them.
package rangekitcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"

	"go.llib.dev/rangekit"
)

// Iterable asserts that a container's forward traversal is non-empty,
// order-stable and repeatable.
func Iterable[V any](mk func(tb testing.TB) rangekit.Iterable[V]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) rangekit.Iterable[V] {
		return mk(t)
	})

	s.Then("traversal yields elements", func(t *testcase.T) {
		assert.NotEmpty(t, iterkit.Collect(subject.Get(t).Values()))
	})

	s.Then("traversal yields the same elements on every pass", func(t *testcase.T) {
		assert.Equal(t,
			iterkit.Collect(subject.Get(t).Values()),
			iterkit.Collect(subject.Get(t).Values()))
	})

	s.Then("an abandoned traversal does not affect later passes", func(t *testcase.T) {
		exp := iterkit.Collect(subject.Get(t).Values())
		for range subject.Get(t).Values() {
			break
		}
		assert.Equal(t, exp, iterkit.Collect(subject.Get(t).Values()))
	})

	return s.AsSuite("Iterable")
}

// BackwardIterable asserts that the backward traversal is exactly the
// reverse of the forward one.
func BackwardIterable[V any](mk func(tb testing.TB) rangekit.BackwardIterable[V]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) rangekit.BackwardIterable[V] {
		return mk(t)
	})

	s.Then("backward is the reverse of forward", func(t *testcase.T) {
		assert.Equal(t,
			iterkit.Collect(iterkit.Reverse(subject.Get(t).Values())),
			iterkit.Collect(subject.Get(t).Backward()))
	})

	s.Then("backward traversal is repeatable", func(t *testcase.T) {
		assert.Equal(t,
			iterkit.Collect(subject.Get(t).Backward()),
			iterkit.Collect(subject.Get(t).Backward()))
	})

	return s.AsSuite("BackwardIterable")
}

// MutableContainer is the capability set the Mutable contract exercises.
type MutableContainer[V any] interface {
	rangekit.Iterable[V]
	rangekit.MutableIterable[V]
}

// Mutable asserts that writes through the pointer traversals are visible
// in later value traversals of the same container.
// update must change the received element to a different value.
func Mutable[V any](mk func(tb testing.TB) MutableContainer[V], update func(v *V)) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) MutableContainer[V] {
		return mk(t)
	})

	s.Then("writes through Refs land in the container", func(t *testcase.T) {
		var exp []V
		for p := range subject.Get(t).Refs() {
			update(p)
			exp = append(exp, *p)
		}
		assert.Equal(t, exp, iterkit.Collect(subject.Get(t).Values()))
	})

	s.Then("writes through BackwardRefs land in the container", func(t *testcase.T) {
		var exp []V
		for p := range subject.Get(t).BackwardRefs() {
			update(p)
			exp = append(exp, *p)
		}
		assert.Equal(t, exp, iterkit.Collect(iterkit.Reverse(subject.Get(t).Values())))
	})

	return s.AsSuite("Mutable")
}

// KeyValueIterable asserts that an associative container's pair traversal
// is order-stable and repeatable.
func KeyValueIterable[K, V any](mk func(tb testing.TB) rangekit.KeyValueIterable[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) rangekit.KeyValueIterable[K, V] {
		return mk(t)
	})

	s.Then("pair traversal yields entries", func(t *testcase.T) {
		assert.NotEmpty(t, iterkit.Collect2KV(subject.Get(t).Pairs()))
	})

	s.Then("pair traversal is order-stable across passes", func(t *testcase.T) {
		assert.Equal(t,
			iterkit.Collect2KV(subject.Get(t).Pairs()),
			iterkit.Collect2KV(subject.Get(t).Pairs()))
	})

	s.Then("an abandoned pair traversal does not affect later passes", func(t *testcase.T) {
		exp := iterkit.Collect2KV(subject.Get(t).Pairs())
		for range subject.Get(t).Pairs() {
			break
		}
		assert.Equal(t, exp, iterkit.Collect2KV(subject.Get(t).Pairs()))
	})

	return s.AsSuite("KeyValueIterable")
}
