package Trees

import (
	"fmt"
	"golang.org/x/exp/constraints"
)

// Validate walks the whole tree read-only and reports the first bookkeeping
// violation: a node size that isn't 1 plus its children's sizes, a child
// whose parent link doesn't point back, a malformed sentinel, or keys that
// aren't strictly ascending in traversal order. The mutating operations
// maintain all of these themselves; Validate exists for tests, which run it
// after operation batches because a corrupted size or parent link still looks
// like a working BST until a rank query hits it.
func (u *Tree[T, S]) Validate() error {
	if u.end.r != nil || u.end.p != nil {
		return fmt.Errorf("sentinel has right child %p, parent %p", u.end.r, u.end.p)
	}
	if u.end.sz != u.end.l.size()+1 {
		return fmt.Errorf("sentinel size %d, want %d", u.end.sz, u.end.l.size()+1)
	}
	if err := validate(u.end.l, &u.end); err != nil {
		return err
	}
	var prev *T
	var err error
	u.InOrder(func(v *T) bool {
		if prev != nil && !u.less(*prev, *v) {
			err = fmt.Errorf("keys out of order: %v then %v", *prev, *v)
			return false
		}
		prev = v
		return true
	})
	return err
}

func validate[T any, S constraints.Unsigned](n, p *node[T, S]) error {
	if n == nil {
		return nil
	}
	if n.p != p {
		return fmt.Errorf("wrong parent at key %v", n.v)
	}
	if n.sz != 1+n.l.size()+n.r.size() {
		return fmt.Errorf("size %d at key %v, want %d", n.sz, n.v, 1+n.l.size()+n.r.size())
	}
	if err := validate(n.l, n); err != nil {
		return err
	}
	return validate(n.r, n)
}

// MaxDepth of any node, 0 for an empty tree. Diagnostic only; for a
// randomized shape it stays within a small multiple of log2(n) with
// overwhelming probability.
func (u *Tree[T, S]) MaxDepth() uint {
	return maxDepth(u.end.l)
}

func maxDepth[T any, S constraints.Unsigned](n *node[T, S]) uint {
	if n == nil {
		return 0
	}
	return 1 + max(maxDepth(n.l), maxDepth(n.r))
}

// TotalDepth is the sum of every node's depth with the root at depth 1, i.e.
// the cost of visiting each node from the root once. Diagnostic only.
func (u *Tree[T, S]) TotalDepth() uint {
	return totalDepth(u.end.l, 0)
}

func totalDepth[T any, S constraints.Unsigned](n *node[T, S], d uint) uint {
	if n == nil {
		return 0
	}
	return 1 + d + totalDepth(n.l, d+1) + totalDepth(n.r, d+1)
}
