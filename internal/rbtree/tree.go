// Package rbtree implements the balanced-tree dictionary engine: a red-black
// binary search tree of distinct strings ordered by byte-wise comparison.
//
// Nodes live in an arena slice and reference each other by int32 index.
// Child indices express ownership; the parent index is a navigation aid
// only and never participates in release.
package rbtree

import (
	"fmt"
	"math"
	"strings"

	strerrors "github.com/tamirms/strset/errors"
)

type color uint8

const (
	black color = iota
	red
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// nilIdx marks an absent child, an absent parent or an empty tree.
const nilIdx = int32(-1)

// maxNodes bounds the arena so every node is addressable by int32.
const maxNodes = math.MaxInt32

type node struct {
	value  string
	left   int32
	right  int32
	parent int32
	color  color
}

// Tree is a red-black tree of distinct strings.
//
// A Tree is NOT safe for concurrent use.
type Tree struct {
	nodes []node
	root  int32
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: nilIdx}
}

// Len returns the number of stored values.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Insert adds value to the tree and rebalances.
// Returns false without allocating if value is already present.
// The caller is responsible for rejecting empty values.
func (t *Tree) Insert(value string) (bool, error) {
	if t.root == nilIdx {
		t.nodes = append(t.nodes, node{
			value:  strings.Clone(value),
			left:   nilIdx,
			right:  nilIdx,
			parent: nilIdx,
			color:  black,
		})
		t.root = 0
		return true, nil
	}

	// Descend to the attachment point before allocating anything, so a
	// duplicate leaves no trace.
	cur := t.root
	var cmp int
	for {
		cmp = strings.Compare(value, t.nodes[cur].value)
		if cmp == 0 {
			return false, nil
		}
		next := t.nodes[cur].left
		if cmp > 0 {
			next = t.nodes[cur].right
		}
		if next == nilIdx {
			break
		}
		cur = next
	}

	if len(t.nodes) >= maxNodes {
		return false, fmt.Errorf("%w: tree holds %d nodes", strerrors.ErrCapacityExceeded, len(t.nodes))
	}

	n := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		value:  strings.Clone(value),
		left:   nilIdx,
		right:  nilIdx,
		parent: cur,
		color:  red,
	})
	if cmp < 0 {
		t.nodes[cur].left = n
	} else {
		t.nodes[cur].right = n
	}

	t.fixInsert(n)
	return true, nil
}

// Contains reports whether value is stored in the tree.
func (t *Tree) Contains(value string) bool {
	cur := t.root
	for cur != nilIdx {
		cmp := strings.Compare(value, t.nodes[cur].value)
		switch {
		case cmp == 0:
			return true
		case cmp < 0:
			cur = t.nodes[cur].left
		default:
			cur = t.nodes[cur].right
		}
	}
	return false
}

// Release drops every node and string. The tree is empty afterwards.
func (t *Tree) Release() {
	clear(t.nodes)
	t.nodes = nil
	t.root = nilIdx
}

// fixInsert restores the red-black invariants after n was attached as a red
// leaf. Each pass handles one of the cases:
//
//	n is root          -> paint black
//	parent black       -> balanced
//	aunt red           -> push blackness down from grandparent, continue at grandparent
//	aunt black/absent  -> rotate (straight chain: once, bent chain: twice)
func (t *Tree) fixInsert(n int32) {
	for {
		p := t.nodes[n].parent
		if p == nilIdx {
			t.nodes[n].color = black
			return
		}
		if t.nodes[p].color == black {
			return
		}

		// A red parent is never the root, so the grandparent exists.
		g := t.nodes[p].parent
		a := t.aunt(n)
		if a != nilIdx && t.nodes[a].color == red {
			t.nodes[p].color = black
			t.nodes[a].color = black
			t.nodes[g].color = red
			n = g
			continue
		}

		if p == t.nodes[g].left {
			if n == t.nodes[p].right {
				// Bent: straighten into a left-left chain.
				t.rotateLeft(p)
				p = n
			}
			t.rotateRight(g)
		} else {
			if n == t.nodes[p].left {
				t.rotateRight(p)
				p = n
			}
			t.rotateLeft(g)
		}
		t.nodes[g].color = red
		t.nodes[p].color = black
		return
	}
}

// aunt returns the sibling of n's parent, or nilIdx.
func (t *Tree) aunt(n int32) int32 {
	p := t.nodes[n].parent
	if p == nilIdx {
		return nilIdx
	}
	g := t.nodes[p].parent
	if g == nilIdx {
		return nilIdx
	}
	if t.nodes[g].left == p {
		return t.nodes[g].right
	}
	return t.nodes[g].left
}

// rotateLeft promotes n's right child c into n's position:
//
//	   (P)               (P)
//	    |                 |
//	   (N)      =>       (C)
//	   / \               / \
//	  1  (C)           (N)  3
//	     / \           / \
//	    2   3         1   2
func (t *Tree) rotateLeft(n int32) {
	c := t.nodes[n].right
	t.nodes[n].right = t.nodes[c].left
	if l := t.nodes[c].left; l != nilIdx {
		t.nodes[l].parent = n
	}
	t.replaceChild(t.nodes[n].parent, n, c)
	t.nodes[c].left = n
	t.nodes[n].parent = c
}

// rotateRight is the mirror of rotateLeft: n's left child c takes n's place.
func (t *Tree) rotateRight(n int32) {
	c := t.nodes[n].left
	t.nodes[n].left = t.nodes[c].right
	if r := t.nodes[c].right; r != nilIdx {
		t.nodes[r].parent = n
	}
	t.replaceChild(t.nodes[n].parent, n, c)
	t.nodes[c].right = n
	t.nodes[n].parent = c
}

// replaceChild makes c occupy old's slot under p. With no parent, c becomes
// the black root.
func (t *Tree) replaceChild(p, old, c int32) {
	t.nodes[c].parent = p
	switch {
	case p == nilIdx:
		t.root = c
		t.nodes[c].color = black
	case t.nodes[p].left == old:
		t.nodes[p].left = c
	default:
		t.nodes[p].right = c
	}
}
