package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
	"strconv"
)

// Source produces uniform random integers: Uintn(n) is uniformly distributed
// in [0, n) for n >= 1, so Uintn(1) must be 0. The bounds passed by the tree
// are subtree sizes. Implementations may be stateful seeded generators; the
// root package ships ready-made ones. Supplying a deterministic Source pins
// the tree to an exact shape, which tests use to assert structural outcomes.
type Source interface {
	Uintn(n uint) uint
}

// Tree is a binary search tree with no repeated values and no explicit
// balance metadata: every structural choice is a random draw weighted by
// subtree sizes, so the shape stays statistically equivalent to one built by
// randomized insertion and the expected depth D is O(log n). Every node
// carries its subtree size, which buys O(D) rank queries (At, RankOf,
// Iterator.Index/Offset) on top of the usual ordered-set operations.
// T is the element type, S the unsigned type storing subtree sizes; as with
// SBTree-style size annotations, S should be a wide upper bound for the tree
// size since narrow types overflow silently.
// The tree embeds its own end sentinel: a degenerate node whose left child is
// the real root, whose size is the element count plus one, and which doubles
// as the one-past-the-end position. Removing the boundary special cases this
// way means navigation off the last element lands on the sentinel naturally.
// A Tree therefore contains pointers into itself and must only be handled
// through the pointer returned by a constructor, never copied by value or
// created using a struct literal.
// A Tree is not safe for concurrent mutation. Read-only navigation may run
// concurrently with other reads, never with a mutation.
type Tree[T any, S constraints.Unsigned] struct {
	end  node[T, S] // sentinel; end.l owns the root, end.r and end.p stay nil.
	less func(T, T) bool
	rng  Source
}

// New Tree ordered by less, drawing structural randomness from src. less must
// be a strict weak ordering over T.
func New[T any, S constraints.Unsigned](less func(T, T) bool, src Source) *Tree[T, S] {
	u := &Tree[T, S]{less: less, rng: src}
	u.end.sz = 1
	return u
}

// NewOrdered is New with the natural ordering of T.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](src Source) *Tree[T, S] {
	return New[T, S](cmp.Less[T], src)
}

// From builds a Tree holding vs, which must be strictly ascending; this is
// faster than repeated Put. The slice contents are copied into nodes. The
// resulting shape is midpoint-balanced rather than a sample of the
// randomized-insertion distribution; later mutations re-randomize whatever
// they touch.
// Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, src Source) *Tree[T, S] {
	for i := 1; i < len(vs); i++ {
		if !(vs[i-1] < vs[i]) {
			panic(BadSliceError{i})
		}
	}
	u := NewOrdered[T, S](src)
	u.end.sz = S(len(vs)) + 1
	u.end.l = build[T, S](vs, &u.end)
	return u
}

func build[T any, S constraints.Unsigned](s []T, p *node[T, S]) *node[T, S] {
	if len(s) == 0 {
		return nil
	}
	mid := len(s) >> 1
	n := &node[T, S]{p: p, sz: S(len(s)), v: s[mid]}
	n.l = build(s[:mid], n)
	n.r = build(s[mid+1:], n)
	return n
}

// BadSliceError reports the first index at which a slice given to From isn't
// strictly ascending.
type BadSliceError struct {
	At int
}

func (e BadSliceError) Error() string {
	return "slice not strictly ascending at index " + strconv.Itoa(e.At)
}

// Size of the tree.
// Time: O(1)
func (u *Tree[T, S]) Size() uint {
	return uint(u.end.sz) - 1
}

func (u *Tree[T, S]) Empty() bool {
	return u.end.l == nil
}

// Less returns the ordering the tree was built with.
func (u *Tree[T, S]) Less() func(T, T) bool {
	return u.less
}

// Rng returns the tree's randomness source.
func (u *Tree[T, S]) Rng() Source {
	return u.rng
}

// search returns the node holding v, or the sentinel when absent.
func (u *Tree[T, S]) search(v T) *node[T, S] {
	for n := u.end.l; n != nil; {
		if u.less(v, n.v) {
			n = n.l
		} else if u.less(n.v, v) {
			n = n.r
		} else {
			return n
		}
	}
	return &u.end
}

// lowerBound returns the leftmost node not less than v, or the sentinel.
func (u *Tree[T, S]) lowerBound(v T) *node[T, S] {
	res := &u.end
	for n := u.end.l; n != nil; {
		if u.less(n.v, v) {
			n = n.r
		} else {
			res = n
			n = n.l
		}
	}
	return res
}

// upperBound returns the leftmost node strictly greater than v, or the sentinel.
func (u *Tree[T, S]) upperBound(v T) *node[T, S] {
	res := &u.end
	for n := u.end.l; n != nil; {
		if u.less(v, n.v) {
			res = n
			n = n.l
		} else {
			n = n.r
		}
	}
	return res
}

// Put v into the tree. When v is already present nothing changes and the
// returned position refers to the existing element; otherwise the new node's
// position is returned with true. The node is allocated before any linking,
// so a failed allocation can't leave the structure inconsistent.
// Time: expected O(D)
func (u *Tree[T, S]) Put(v T) (Iterator[T, S], bool) {
	if n := u.search(v); n != &u.end {
		return Iterator[T, S]{n}, false
	}
	n := &node[T, S]{v: v}
	u.end.sz++
	u.end.l = n.insert(u.end.l, &u.end, u.less, u.rng)
	return Iterator[T, S]{n}, true
}

// Remove the element equal to v. Returns false when v isn't present.
// Time: expected O(D)
func (u *Tree[T, S]) Remove(v T) bool {
	n := u.search(v)
	if n == &u.end {
		return false
	}
	n.erase(u.rng)
	return true
}

// RemoveAt erases the element at it, which must be a valid position in this
// tree other than End. Other iterators into the tree stay valid.
func (u *Tree[T, S]) RemoveAt(it Iterator[T, S]) {
	it.n.erase(u.rng)
}

// Find the position of v, End when absent.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Find(v T) Iterator[T, S] {
	return Iterator[T, S]{u.search(v)}
}

// LowerBound is the position of the leftmost element not less than v, End
// when every element is less.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) LowerBound(v T) Iterator[T, S] {
	return Iterator[T, S]{u.lowerBound(v)}
}

// UpperBound is the position of the leftmost element strictly greater than v,
// End when no element is.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) UpperBound(v T) Iterator[T, S] {
	return Iterator[T, S]{u.upperBound(v)}
}

// At returns the position holding the element of rank i; i==Size() yields
// End. i beyond that is undefined.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) At(i uint) Iterator[T, S] {
	return Iterator[T, S]{u.end.at(S(i))}
}

// RankOf returns how many elements compare less than v, and whether v itself
// is present. For an absent v the rank is where it would be inserted.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) RankOf(v T) (uint, bool) {
	n := u.lowerBound(v)
	return uint(n.index()), n != &u.end && !u.less(v, n.v)
}

// Begin is the position of the least element; End when the tree is empty.
func (u *Tree[T, S]) Begin() Iterator[T, S] {
	return Iterator[T, S]{u.end.first()}
}

// End is the one-past-the-last position. It stays valid across mutations.
func (u *Tree[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{&u.end}
}

// InOrder calls f on each element in ascending order until f returns false.
// The pointees must not be reordered under the tree's comparator.
// Time: amortized O(1) per element
func (u *Tree[T, S]) InOrder(f func(*T) bool) {
	for n := u.end.first(); n != &u.end; n = n.next() {
		if !f(&n.v) {
			return
		}
	}
}

// InOrderR is InOrder in descending order.
func (u *Tree[T, S]) InOrderR(f func(*T) bool) {
	for n := u.end.previous(); n != nil; n = n.previous() {
		if !f(&n.v) {
			return
		}
	}
}

// Clear drops every element. Outstanding iterators other than End become
// invalid.
// Time: O(1)
func (u *Tree[T, S]) Clear() {
	u.end.l = nil
	u.end.sz = 1
}

// Swap exchanges the contents, ordering and randomness source of u and o by
// re-homing the two roots. Iterators into either tree stay valid and refer
// into the other tree afterwards, except the two End positions, which don't
// migrate.
// Time: O(1)
func (u *Tree[T, S]) Swap(o *Tree[T, S]) {
	u.end.l, o.end.l = o.end.l, u.end.l
	u.end.sz, o.end.sz = o.end.sz, u.end.sz
	u.less, o.less = o.less, u.less
	u.rng, o.rng = o.rng, u.rng
	if u.end.l != nil {
		u.end.l.p = &u.end
	}
	if o.end.l != nil {
		o.end.l.p = &o.end
	}
}

// Clone returns a deep copy sharing the comparator and Source; the copies'
// nodes are disjoint, so mutating one tree never disturbs the other.
// Time: O(n)
func (u *Tree[T, S]) Clone() *Tree[T, S] {
	c := &Tree[T, S]{less: u.less, rng: u.rng}
	c.end.sz = u.end.sz
	c.end.l = u.end.l.clone(&c.end)
	return c
}
