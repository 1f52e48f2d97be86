package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// Iterator is a position in a Tree: a thin wrapper around one node reference,
// so it's freely copyable and two iterators compare equal with == exactly
// when they refer to the same position. The one-past-the-end position wraps
// the tree's sentinel; Get, Next and Offset past either structural boundary
// on it are undefined, mirroring the navigation primitives underneath.
// Mutations of the tree other than removing the referenced element keep an
// Iterator valid.
type Iterator[T any, S constraints.Unsigned] struct {
	n *node[T, S]
}

// Ok reports whether u refers to a position at all. Navigation that runs past
// a boundary yields iterators for which Ok is false.
func (u Iterator[T, S]) Ok() bool {
	return u.n != nil
}

// Get the element at u. The tree orders elements by this value, so callers
// must not mutate it in a way that changes how it compares.
func (u Iterator[T, S]) Get() *T {
	return &u.n.v
}

// Next position in ascending order; from the last element this is End.
// Time: expected O(1), worst O(D)
func (u Iterator[T, S]) Next() Iterator[T, S] {
	return Iterator[T, S]{u.n.next()}
}

// Prev position in ascending order; from End this is the last element.
// Time: expected O(1), worst O(D)
func (u Iterator[T, S]) Prev() Iterator[T, S] {
	return Iterator[T, S]{u.n.previous()}
}

// Offset moves u by d ranks in one traversal, negative d toward the first
// element; d==Diff yields equality. Moving past End or before the first
// element yields an iterator with Ok()==false.
// Time: O(D) regardless of |d|
func (u Iterator[T, S]) Offset(d int) Iterator[T, S] {
	return Iterator[T, S]{u.n.offset(d)}
}

// Index is u's 0-based rank in sorted order; End's Index is the tree's size.
// Time: O(D)
func (u Iterator[T, S]) Index() uint {
	return uint(u.n.index())
}

// Diff is the signed rank distance from o to u, so u.Offset(-u.Diff(o)) == o.
func (u Iterator[T, S]) Diff(o Iterator[T, S]) int {
	return int(u.Index()) - int(o.Index())
}

// Cmp orders two positions in the same tree by rank. Identical references
// short-circuit without computing ranks, keeping End comparisons cheap; any
// two valid positions order correctly even when neither is reachable from
// the other in one step.
func (u Iterator[T, S]) Cmp(o Iterator[T, S]) int {
	if u.n == o.n {
		return 0
	}
	return cmp.Compare(u.Index(), o.Index())
}
