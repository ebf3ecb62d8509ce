package rbtree

import (
	"fmt"

	strerrors "github.com/tamirms/strset/errors"
)

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(n int32) int {
	if n == nilIdx {
		return 0
	}
	return 1 + max(t.height(t.nodes[n].left), t.height(t.nodes[n].right))
}

// BlackHeight returns the number of black nodes on the leftmost
// root-to-leaf path. In a valid tree every such path has the same count.
func (t *Tree) BlackHeight() int {
	h := 0
	for n := t.root; n != nilIdx; n = t.nodes[n].left {
		if t.nodes[n].color == black {
			h++
		}
	}
	return h
}

// Validate checks the red-black and search-tree invariants:
//  1. the root is black
//  2. no red node has a red child
//  3. every root-to-leaf path has the same number of black nodes
//  4. values are strictly increasing in order
//
// It also checks that parent indices mirror child indices and that every
// arena node is reachable exactly once.
func (t *Tree) Validate() error {
	if t.root == nilIdx {
		if len(t.nodes) != 0 {
			return fmt.Errorf("%w: empty root with %d arena nodes", strerrors.ErrCorruptedTree, len(t.nodes))
		}
		return nil
	}
	if t.nodes[t.root].parent != nilIdx {
		return fmt.Errorf("%w: root %d has parent %d", strerrors.ErrCorruptedTree, t.root, t.nodes[t.root].parent)
	}
	if t.nodes[t.root].color != black {
		return fmt.Errorf("%w: root is red", strerrors.ErrCorruptedTree)
	}

	v := validator{t: t}
	if _, err := v.walk(t.root); err != nil {
		return err
	}
	if v.visited != len(t.nodes) {
		return fmt.Errorf("%w: reached %d of %d nodes", strerrors.ErrCorruptedTree, v.visited, len(t.nodes))
	}
	return nil
}

type validator struct {
	t       *Tree
	visited int
	prev    string
	hasPrev bool
}

// walk visits the subtree at n in order and returns its black height.
func (v *validator) walk(n int32) (int, error) {
	if n == nilIdx {
		return 1, nil
	}
	v.visited++
	if v.visited > len(v.t.nodes) {
		return 0, fmt.Errorf("%w: cycle through node %d", strerrors.ErrCorruptedTree, n)
	}

	nd := v.t.nodes[n]
	for _, c := range [2]int32{nd.left, nd.right} {
		if c == nilIdx {
			continue
		}
		if v.t.nodes[c].parent != n {
			return 0, fmt.Errorf("%w: node %d has parent %d, want %d",
				strerrors.ErrCorruptedTree, c, v.t.nodes[c].parent, n)
		}
		if nd.color == red && v.t.nodes[c].color == red {
			return 0, fmt.Errorf("%w: red node %q has red child %q",
				strerrors.ErrCorruptedTree, nd.value, v.t.nodes[c].value)
		}
	}

	lh, err := v.walk(nd.left)
	if err != nil {
		return 0, err
	}

	if v.hasPrev && v.prev >= nd.value {
		return 0, fmt.Errorf("%w: %q follows %q in order", strerrors.ErrCorruptedTree, nd.value, v.prev)
	}
	v.prev, v.hasPrev = nd.value, true

	rh, err := v.walk(nd.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black heights %d and %d below %q",
			strerrors.ErrCorruptedTree, lh, rh, nd.value)
	}
	if nd.color == black {
		lh++
	}
	return lh, nil
}
