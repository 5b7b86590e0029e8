package rangekit_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/rangekit"
	"go.llib.dev/rangekit/rangekitcontract"
)

var (
	_ rangekit.BackwardIterable[int] = rangekit.Slice[int]{}
	_ rangekit.MutableIterable[int]  = rangekit.Slice[int]{}
	_ rangekit.BackwardIterable[int] = rangekit.Snapshot[int]{}
)

func TestSlice_contracts(t *testing.T) {
	testcase.RunSuite(t,
		rangekitcontract.Iterable[int](func(tb testing.TB) rangekit.Iterable[int] {
			return rangekit.Slice[int]{1, 2, 3}
		}),
		rangekitcontract.BackwardIterable[int](func(tb testing.TB) rangekit.BackwardIterable[int] {
			return rangekit.Slice[int]{1, 2, 3}
		}),
		rangekitcontract.Mutable[int](func(tb testing.TB) rangekitcontract.MutableContainer[int] {
			return rangekit.Slice[int]{1, 2, 3}
		}, func(v *int) { *v *= 2 }),
	)
}

func TestSnapshot_contracts(t *testing.T) {
	testcase.RunSuite(t,
		rangekitcontract.Iterable[string](func(tb testing.TB) rangekit.Iterable[string] {
			return rangekit.SnapshotOf("a", "b", "c")
		}),
		rangekitcontract.BackwardIterable[string](func(tb testing.TB) rangekit.BackwardIterable[string] {
			return rangekit.SnapshotOf("a", "b", "c")
		}),
	)
}

func TestSlice(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("Values walks the slice in natural order", func(t *testcase.T) {
		assert.Equal(t, []int{1, 2, 3},
			iterkit.Collect(rangekit.Slice[int]{1, 2, 3}.Values()))
	})

	s.Test("Backward walks the slice in reverse order", func(t *testcase.T) {
		assert.Equal(t, []int{3, 2, 1},
			iterkit.Collect(rangekit.Slice[int]{1, 2, 3}.Backward()))
	})

	s.Test("the conversion shares the caller's backing array", func(t *testcase.T) {
		src := []int{1, 2, 3}
		view := rangekit.Slice[int](src)

		for p := range view.Refs() {
			*p += 10
		}

		assert.Equal(t, []int{11, 12, 13}, src)
	})

	s.Test("BackwardRefs addresses the same elements as Refs", func(t *testcase.T) {
		values := rangekit.Slice[int]{1, 2, 3}

		var backward []*int
		for p := range values.BackwardRefs() {
			backward = append(backward, p)
		}

		i := len(values) - 1
		for p := range values.Refs() {
			assert.True(t, p == backward[i])
			i--
		}
	})
}

func TestSnapshot(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("SnapshotOf copies the values it is given", func(t *testcase.T) {
		src := []int{1, 2, 3}
		snap := rangekit.SnapshotOf(src...)

		src[0] = 42

		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(snap.Values()))
		assert.Equal(t, 3, snap.Len())
	})

	s.Test("an empty snapshot yields empty traversals", func(t *testcase.T) {
		snap := rangekit.SnapshotOf[int]()
		assert.Empty(t, iterkit.Collect(snap.Values()))
		assert.Empty(t, iterkit.Collect(snap.Backward()))
		assert.Equal(t, 0, snap.Len())
	})

	s.Test("Backward is the reverse of Values", func(t *testcase.T) {
		n := t.Random.IntB(3, 10)
		var vs []int
		for i := 0; i < n; i++ {
			vs = append(vs, t.Random.Int())
		}
		snap := rangekit.SnapshotOf(vs...)

		assert.Equal(t,
			iterkit.Collect(iterkit.Reverse(snap.Values())),
			iterkit.Collect(snap.Backward()))
	})
}
