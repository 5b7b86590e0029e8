package rangekit

import (
	"iter"

	"github.com/google/btree"
)

// BTree adapts a google/btree ordered tree into the key-value capability.
// pair extracts the key and the value from a stored item.
//
// The binding is read-only; item replacement stays with the tree's own API.
// As with every borrowing binding, the tree must not be modified while a
// traversal derived from it is in progress.
func BTree[T, K, V any](tree *btree.BTreeG[T], pair func(item T) (K, V)) BTreeKV[T, K, V] {
	return BTreeKV[T, K, V]{tree: tree, pair: pair}
}

// BTreeKV is a read-only key-value binding over *btree.BTreeG.
type BTreeKV[T, K, V any] struct {
	tree *btree.BTreeG[T]
	pair func(item T) (K, V)
}

// Pairs traverses the tree in ascending item order.
func (b BTreeKV[T, K, V]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if b.tree == nil {
			return
		}
		b.tree.Ascend(func(item T) bool {
			return yield(b.pair(item))
		})
	}
}

// PairsDescending traverses the tree in descending item order.
func (b BTreeKV[T, K, V]) PairsDescending() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if b.tree == nil {
			return
		}
		b.tree.Descend(func(item T) bool {
			return yield(b.pair(item))
		})
	}
}
