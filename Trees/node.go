package Trees

import (
	"golang.org/x/exp/constraints"
)

// node is one stored key plus its place in the structural hierarchy. l and r
// are the owning links; p is a non-owning back reference used only for upward
// navigation and is nil only on a tree's sentinel. sz counts the nodes in the
// subtree rooted here, including itself. v never changes once the node exists.
type node[T any, S constraints.Unsigned] struct {
	l, r, p *node[T, S]
	sz      S
	v       T
}

// size of the subtree rooted at u, 0 when u is nil.
func (u *node[T, S]) size() S {
	if u == nil {
		return 0
	}
	return u.sz
}

func (u *node[T, S]) first() *node[T, S] {
	for u.l != nil {
		u = u.l
	}
	return u
}

func (u *node[T, S]) last() *node[T, S] {
	for u.r != nil {
		u = u.r
	}
	return u
}

// next node in sorted order. From the last real node the climb naturally ends
// at the sentinel; from the sentinel it yields nil.
// Time: O(D); Space: O(1)
func (u *node[T, S]) next() *node[T, S] {
	if u.r != nil {
		return u.r.first()
	}
	for u.p != nil && u == u.p.r {
		u = u.p
	}
	return u.p
}

// previous is the mirror of next; from the sentinel it yields the last real
// node, from the first real node nil.
// Time: O(D); Space: O(1)
func (u *node[T, S]) previous() *node[T, S] {
	if u.l != nil {
		return u.l.last()
	}
	for u.p != nil && u == u.p.l {
		u = u.p
	}
	return u.p
}

// index is u's 0-based rank among all nodes reachable from the ultimate root:
// its left subtree size plus, for every ancestor entered from the right, that
// ancestor's left-subtree-and-self count.
// Time: O(D); Space: O(1)
func (u *node[T, S]) index() S {
	i := u.l.size()
	for n := u; n.p != nil; n = n.p {
		if n == n.p.r {
			i += n.p.sz - n.sz
		}
	}
	return i
}

// offset returns the node d ranks away in sorted order, or nil when that rank
// falls outside the whole tree. d stays the target rank minus the current
// node's rank at every step: descending into a child re-biases it by the
// skipped portion of that child's subtree, climbing to the parent by the side
// u hangs off of. A d of exactly one past the last element lands on the
// sentinel.
// Time: O(D); Space: O(D)
func (u *node[T, S]) offset(d int) *node[T, S] {
	if d > 0 {
		if uint(d) <= uint(u.r.size()) {
			return u.r.offset(d - 1 - int(u.r.l.size()))
		}
	} else if d < 0 {
		if uint(-d) <= uint(u.l.size()) {
			return u.l.offset(d + 1 + int(u.l.r.size()))
		}
	} else {
		return u
	}
	if u.p == nil {
		return nil
	}
	if u == u.p.l {
		return u.p.offset(d - 1 - int(u.r.size()))
	}
	return u.p.offset(d + 1 + int(u.l.size()))
}

// at returns the node with rank i within the subtree rooted at u. i must be
// less than u.sz.
// Time: O(D); Space: O(1)
func (u *node[T, S]) at(i S) *node[T, S] {
	for {
		if n := u.l.size(); i < n {
			u = u.l
		} else if i > n {
			i -= n + 1
			u = u.r
		} else {
			return u
		}
	}
}

// split partitions the subtree rooted at t around u's key: keys comparing
// less than or equal end up under lesser.r, strictly greater ones under
// greater.l. At the top call lesser and greater are both u itself, building
// the two halves into u.r and u.l; insert swaps them into place afterwards.
// Sizes are rebuilt bottom up as the recursion returns. Equal keys going to
// the lesser side is never exercised because Put rejects duplicates before
// this runs.
func (u *node[T, S]) split(t, lesser, greater *node[T, S], less func(T, T) bool) {
	if less(u.v, t.v) {
		greater.l = t
		t.p = greater
		if t.l != nil {
			u.split(t.l, lesser, t, less)
		} else {
			lesser.r = nil
		}
	} else {
		lesser.r = t
		t.p = lesser
		if t.r != nil {
			u.split(t.r, t, greater, less)
		} else {
			greater.l = nil
		}
	}
	t.sz = 1 + t.l.size() + t.r.size()
}

// insert u into the subtree rooted at n, whose parent is p. With probability
// 1/(size(n)+1), u replaces n as the local root by splitting n's subtree
// around u's key, which is exactly what reproduces the canonical randomized
// insertion shape distribution. Otherwise the insertion recurses into a
// child and n's size grows by one. Returns the local root, either u or n.
func (u *node[T, S]) insert(n, p *node[T, S], less func(T, T) bool, rng Source) *node[T, S] {
	if n == nil || rng.Uintn(1+uint(n.sz)) == 0 {
		if n == nil {
			u.l, u.r, u.sz = nil, nil, 1
		} else {
			u.split(n, u, u, less)
			u.l, u.r = u.r, u.l
			u.sz = 1 + u.l.size() + u.r.size()
		}
		u.p = p
		return u
	}
	if less(u.v, n.v) {
		n.l = u.insert(n.l, n, less, rng)
	} else {
		n.r = u.insert(n.r, n, less, rng)
	}
	n.sz++
	return n
}

// join merges two subtrees where every key in lesser compares less than every
// key in greater, drawing the new root with probability proportional to
// subtree size. Sizes are updated incrementally as each level resolves.
func join[T any, S constraints.Unsigned](lesser, greater *node[T, S], rng Source) *node[T, S] {
	if lesser == nil {
		return greater
	}
	if greater == nil {
		return lesser
	}
	if rng.Uintn(uint(lesser.sz)+uint(greater.sz)) < uint(lesser.sz) {
		lesser.sz += greater.sz
		lesser.r = join(lesser.r, greater, rng)
		lesser.r.p = lesser
		return lesser
	}
	greater.sz += lesser.sz
	greater.l = join(lesser, greater.l, rng)
	greater.l.p = greater
	return greater
}

// erase unlinks u from its tree: its children are joined into a replacement
// subtree that takes u's place under its former parent, and every ancestor's
// size shrinks by one up to and including the sentinel. u itself is reset to
// an isolated singleton. Returns the topmost node reached, which is the new
// overall root when u had no parent.
func (u *node[T, S]) erase(rng Source) *node[T, S] {
	p, c := u.p, join(u.l, u.r, rng)
	u.p, u.l, u.r, u.sz = nil, nil, nil, 1
	if c != nil {
		c.p = p
	}
	if p == nil {
		return c
	}
	if p.l == u {
		p.l = c
	} else {
		p.r = c
	}
	for p.sz--; p.p != nil; p.sz-- {
		p = p.p
	}
	return p
}

// clone deep-copies the subtree rooted at u, attaching the copy under p.
func (u *node[T, S]) clone(p *node[T, S]) *node[T, S] {
	if u == nil {
		return nil
	}
	c := &node[T, S]{p: p, sz: u.sz, v: u.v}
	c.l = u.l.clone(c)
	c.r = u.r.clone(c)
	return c
}
