package RbstSet

import (
	"cmp"
	"github.com/g-m-twostay/rbst/Sets"
	"github.com/g-m-twostay/rbst/Trees"
	"golang.org/x/exp/constraints"
)

// RbstSet is an ordered set backed by a randomized binary search tree. On top
// of the usual set operations it offers positional access through
// Trees.Iterator: every element has a stable 0-based rank, and At/RankOf and
// iterator arithmetic run in expected O(log n). Elements live in individually
// allocated nodes, so pointers returned by Get/Min/Max stay valid until the
// element is removed, across Swap included.
// T is the element type, S the unsigned type storing subtree sizes; pick S as
// a wide upper bound for the set size. Not safe for concurrent mutation.
type RbstSet[T any, S constraints.Unsigned] struct {
	t *Trees.Tree[T, S]
}

// New RbstSet ordered by less, drawing structural randomness from src.
func New[T any, S constraints.Unsigned](less func(T, T) bool, src Trees.Source) *RbstSet[T, S] {
	return &RbstSet[T, S]{Trees.New[T, S](less, src)}
}

// NewOrdered is New with the natural ordering of T.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](src Trees.Source) *RbstSet[T, S] {
	return &RbstSet[T, S]{Trees.NewOrdered[T, S](src)}
}

// From builds a set holding vs; order is irrelevant and duplicates are
// dropped.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, src Trees.Source) *RbstSet[T, S] {
	u := NewOrdered[T, S](src)
	for _, v := range vs {
		u.t.Put(v)
	}
	return u
}

// Size of the set.
// Time: O(1)
func (u *RbstSet[T, S]) Size() uint {
	return u.t.Size()
}

func (u *RbstSet[T, S]) Empty() bool {
	return u.t.Empty()
}

// Put [Sets.Set.Put]. Returns false when v was already present.
// Time: expected O(log n)
func (u *RbstSet[T, S]) Put(v T) bool {
	_, ok := u.t.Put(v)
	return ok
}

// Insert is Put exposing the element's position: when v was already present
// the position refers to the pre-existing equal element and the flag is
// false.
func (u *RbstSet[T, S]) Insert(v T) (Trees.Iterator[T, S], bool) {
	return u.t.Put(v)
}

// InsertSlice puts each of vs, returning how many were newly added.
func (u *RbstSet[T, S]) InsertSlice(vs ...T) uint {
	n := uint(0)
	for _, v := range vs {
		if _, ok := u.t.Put(v); ok {
			n++
		}
	}
	return n
}

// Has [Sets.Set.Has]
// Time: expected O(log n); Space: O(1)
func (u *RbstSet[T, S]) Has(v T) bool {
	return u.t.Find(v) != u.t.End()
}

// Remove [Sets.Set.Remove]. Returns false when v wasn't present, so the
// number of elements removed is 0 or 1.
// Time: expected O(log n)
func (u *RbstSet[T, S]) Remove(v T) bool {
	return u.t.Remove(v)
}

// RemoveAt erases the element at it, which must be a valid non-End position
// in this set. Other positions stay valid.
func (u *RbstSet[T, S]) RemoveAt(it Trees.Iterator[T, S]) {
	u.t.RemoveAt(it)
}

// RemoveRange erases [first, last) and returns how many elements went. Both
// must be valid positions in this set with first not after last.
func (u *RbstSet[T, S]) RemoveRange(first, last Trees.Iterator[T, S]) uint {
	n := uint(0)
	for first != last {
		next := first.Next()
		u.t.RemoveAt(first)
		first = next
		n++
	}
	return n
}

// Take [Sets.Set.Take]. Removes and returns the least element; the set
// mustn't be empty.
func (u *RbstSet[T, S]) Take() T {
	it := u.t.Begin()
	v := *it.Get()
	u.t.RemoveAt(it)
	return v
}

// Clear drops every element.
// Time: O(1)
func (u *RbstSet[T, S]) Clear() {
	u.t.Clear()
}

// Find the position of v, End when absent.
func (u *RbstSet[T, S]) Find(v T) Trees.Iterator[T, S] {
	return u.t.Find(v)
}

// LowerBound is the position of the leftmost element not less than v.
func (u *RbstSet[T, S]) LowerBound(v T) Trees.Iterator[T, S] {
	return u.t.LowerBound(v)
}

// UpperBound is the position of the leftmost element strictly greater than v.
func (u *RbstSet[T, S]) UpperBound(v T) Trees.Iterator[T, S] {
	return u.t.UpperBound(v)
}

// EqualRange is the half-open run of elements equal to v, so it spans at most
// one element and equals (LowerBound(v), UpperBound(v)).
func (u *RbstSet[T, S]) EqualRange(v T) (Trees.Iterator[T, S], Trees.Iterator[T, S]) {
	lo := u.t.LowerBound(v)
	hi := lo
	if hi != u.t.End() && !u.t.Less()(v, *hi.Get()) {
		hi = hi.Next()
	}
	return lo, hi
}

// At returns the position of the element with rank i; i==Size() yields End.
// Time: expected O(log n)
func (u *RbstSet[T, S]) At(i uint) Trees.Iterator[T, S] {
	return u.t.At(i)
}

// RankOf returns how many elements compare less than v and whether v is
// present.
func (u *RbstSet[T, S]) RankOf(v T) (uint, bool) {
	return u.t.RankOf(v)
}

// Begin is the position of the least element, End when the set is empty.
func (u *RbstSet[T, S]) Begin() Trees.Iterator[T, S] {
	return u.t.Begin()
}

// End is the one-past-the-last position.
func (u *RbstSet[T, S]) End() Trees.Iterator[T, S] {
	return u.t.End()
}

// Min returns the least element, nil when empty. The pointee must not be
// mutated in a way that changes its ordering.
func (u *RbstSet[T, S]) Min() *T {
	if u.t.Empty() {
		return nil
	}
	return u.t.Begin().Get()
}

// Max returns the greatest element, nil when empty.
func (u *RbstSet[T, S]) Max() *T {
	if u.t.Empty() {
		return nil
	}
	return u.t.End().Prev().Get()
}

// Range [Sets.Set.Range]. Visits elements in ascending order until f returns
// false.
func (u *RbstSet[T, S]) Range(f func(T) bool) {
	u.t.InOrder(func(v *T) bool {
		return f(*v)
	})
}

// RangeR is Range in descending order.
func (u *RbstSet[T, S]) RangeR(f func(T) bool) {
	u.t.InOrderR(func(v *T) bool {
		return f(*v)
	})
}

// Swap exchanges the contents of u and o in O(1). Element pointers and
// iterators stay valid and afterwards read through the other set; the two End
// positions are the exception and don't migrate.
func (u *RbstSet[T, S]) Swap(o *RbstSet[T, S]) {
	if u != o {
		u.t.Swap(o.t)
	}
}

// Clone returns a deep copy: the copies share no nodes, so mutating one never
// changes the other's contents and pointers taken from one outlive mutations
// of the other.
// Time: O(n)
func (u *RbstSet[T, S]) Clone() *RbstSet[T, S] {
	return &RbstSet[T, S]{u.t.Clone()}
}

// PutAll [Sets.ExtendedSet.PutAll]
func (u *RbstSet[T, S]) PutAll(o Sets.Set[T]) uint {
	n := uint(0)
	o.Range(func(v T) bool {
		if u.Put(v) {
			n++
		}
		return true
	})
	return n
}

// RemoveAll [Sets.ExtendedSet.RemoveAll]
func (u *RbstSet[T, S]) RemoveAll(o Sets.Set[T]) uint {
	n := uint(0)
	o.Range(func(v T) bool {
		if u.t.Remove(v) {
			n++
		}
		return true
	})
	return n
}

// Eq [Sets.ExtendedSet.Eq]: same size and every element of u present in o,
// present as judged by o.
func (u *RbstSet[T, S]) Eq(o Sets.Set[T]) bool {
	if u.Size() != o.Size() {
		return false
	}
	eq := true
	u.t.InOrder(func(v *T) bool {
		eq = o.Has(*v)
		return eq
	})
	return eq
}

// Union [Sets.ExtendedSet.Union]
func (u *RbstSet[T, S]) Union(o Sets.Set[T]) {
	o.Range(func(v T) bool {
		u.Put(v)
		return true
	})
}

// Intersect [Sets.ExtendedSet.Intersect]: keeps only elements o also has.
func (u *RbstSet[T, S]) Intersect(o Sets.Set[T]) {
	var gone []T
	u.t.InOrder(func(v *T) bool {
		if !o.Has(*v) {
			gone = append(gone, *v)
		}
		return true
	})
	for _, v := range gone {
		u.t.Remove(v)
	}
}

// Filter [Sets.ExtendedSet.Filter]: a new set, ordered like u, holding the
// elements f accepts.
func (u *RbstSet[T, S]) Filter(f func(T) bool) Sets.ExtendedSet[T] {
	c := New[T, S](u.t.Less(), u.t.Rng())
	u.t.InOrder(func(v *T) bool {
		if f(*v) {
			c.t.Put(*v)
		}
		return true
	})
	return c
}

// Cmp orders two sets lexicographically by ascending element sequence under
// u's comparator: the first unequal pair decides, otherwise the shorter set
// compares less. Cmp(o)==0 is containment-style equality for sets sharing a
// comparator, since equal sequences mean equal contents.
func (u *RbstSet[T, S]) Cmp(o *RbstSet[T, S]) int {
	if u == o {
		return 0
	}
	less := u.t.Less()
	a, ae := u.t.Begin(), u.t.End()
	b, be := o.t.Begin(), o.t.End()
	for a != ae && b != be {
		if less(*a.Get(), *b.Get()) {
			return -1
		}
		if less(*b.Get(), *a.Get()) {
			return 1
		}
		a, b = a.Next(), b.Next()
	}
	if b != be {
		return -1
	}
	if a != ae {
		return 1
	}
	return 0
}
