package rangekit_test

import (
	"fmt"
	"strings"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/pkg/iterkit"

	"go.llib.dev/rangekit"
)

func ExampleKeyValue() {
	digits := rangekit.SortedMap[int, string]{1: "one", 2: "two", 3: "three"}

	for k, v := range rangekit.KeyValue[int, string](digits).All() {
		fmt.Println(k, "->", v)
	}
	// Output:
	// 1 -> one
	// 2 -> two
	// 3 -> three
}

func ExampleMutableKeyValue() {
	digits := rangekit.SortedMap[int, string]{1: "one", 2: "two"}

	for _, p := range rangekit.MutableKeyValue[int, string](digits).All() {
		*p = strings.ToUpper(*p)
	}

	fmt.Println(digits[1], digits[2])
	// Output: ONE TWO
}

func TestKeyValue(t *testing.T) {
	s := testcase.NewSpec(t)

	digits := testcase.Let(s, func(t *testcase.T) rangekit.SortedMap[int, string] {
		return rangekit.SortedMap[int, string]{1: "one", 2: "two", 3: "three"}
	})

	s.Test("pairs traverse in the container's native key order", func(t *testcase.T) {
		got := iterkit.Collect2KV(rangekit.KeyValue[int, string](digits.Get(t)).All())

		assert.Equal(t, []iterkit.KV[int, string]{
			{K: 1, V: "one"},
			{K: 2, V: "two"},
			{K: 3, V: "three"},
		}, got)
	})

	s.Test("the view over a borrowed container sees entry changes on the next pass", func(t *testcase.T) {
		m := digits.Get(t)
		view := rangekit.KeyValue[int, string](m)

		_ = iterkit.Collect2KV(view.All())
		m[4] = "four"

		got := iterkit.Collect2KV(view.All())
		assert.Equal(t, 4, len(got))
		assert.Equal(t, iterkit.KV[int, string]{K: 4, V: "four"}, got[3])
	})

	s.Test("an owned pair snapshot is detached from its source map", func(t *testcase.T) {
		src := map[int]string{1: "one", 2: "two"}
		view := rangekit.KeyValue[int, string](rangekit.PairSnapshotOf(src))

		src[3] = "three"
		delete(src, 1)

		assert.Equal(t, []iterkit.KV[int, string]{
			{K: 1, V: "one"},
			{K: 2, V: "two"},
		}, iterkit.Collect2KV(view.All()))
	})

	s.Test("an empty container yields an empty pair traversal", func(t *testcase.T) {
		assert.Empty(t, iterkit.Collect2KV(
			rangekit.KeyValue[int, string](rangekit.SortedMap[int, string]{}).All()))
	})
}

func TestMutableKeyValue(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("value writes are visible in the original container after the loop", func(t *testcase.T) {
		digits := rangekit.SortedMap[int, string]{1: "one", 2: "two", 3: "three"}

		for k, p := range rangekit.MutableKeyValue[int, string](digits).All() {
			*p = fmt.Sprintf("%s(%d)", *p, k)
		}

		assert.Equal(t, rangekit.SortedMap[int, string]{
			1: "one(1)",
			2: "two(2)",
			3: "three(3)",
		}, digits)
	})

	s.Test("keys are passed by value, the traversal stays in key order", func(t *testcase.T) {
		digits := rangekit.SortedMap[int, string]{3: "c", 1: "a", 2: "b"}

		var keys []int
		for k := range rangekit.MutableKeyValue[int, string](digits).All() {
			keys = append(keys, k)
		}

		assert.Equal(t, []int{1, 2, 3}, keys)
	})

	s.Test("a write before an early break is kept", func(t *testcase.T) {
		digits := rangekit.SortedMap[int, string]{1: "one", 2: "two"}

		for _, p := range rangekit.MutableKeyValue[int, string](digits).All() {
			*p = "changed"
			break
		}

		assert.Equal(t, "changed", digits[1])
		assert.Equal(t, "two", digits[2])
	})
}
