// Package rbtree implements a red-black tree over unique integer keys
// with insertion, search and ordered traversal.
//
// Nodes live in an arena and address each other through stable indices,
// so a deep copy is a copy of the arena and teardown is dropping it.
// There is no delete operation; keys only leave the tree when the whole
// tree is cleared.
package rbtree

import "errors"

var (
	ErrDuplicateKey = errors.New("rbtree: duplicate key")
	ErrEmptyTree    = errors.New("rbtree: empty tree")
)

type color uint8

const (
	red   color = 0
	black color = 1
)

// String returns the single-letter tag used by the serialized forms.
// "D" is reserved for a double-black marker that no current operation
// produces.
func (c color) String() string {
	switch c {
	case red:
		return "R"
	case black:
		return "B"
	default:
		return "D"
	}
}

// ref addresses a node inside a tree's arena. nilRef marks an absent
// child or parent.
type ref int32

const nilRef ref = -1

type node struct {
	key    int
	color  color
	left   ref
	right  ref
	parent ref
}

// Tree is a red-black tree of unique int keys. The zero value is not
// usable; construct with New or NewWithKey. A Tree is for exclusive
// single-owner use: no method is safe for concurrent callers.
type Tree struct {
	nodes    []node
	root     ref
	numItems int
}

// New constructs an empty tree.
func New() *Tree {
	return &Tree{root: nilRef}
}

// NewWithKey constructs a tree holding exactly one key. The single
// root node is black.
func NewWithKey(key int) *Tree {
	return &Tree{
		nodes: []node{{
			key:    key,
			color:  black,
			left:   nilRef,
			right:  nilRef,
			parent: nilRef,
		}},
		root:     0,
		numItems: 1,
	}
}

// Clone returns an independent deep copy. Nodes reference each other by
// arena index, so copying the arena copies the whole graph; the clone's
// parent links can only point into the clone.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		root:     t.root,
		numItems: t.numItems,
	}
	if len(t.nodes) > 0 {
		c.nodes = make([]node, len(t.nodes))
		copy(c.nodes, t.nodes)
	}
	return c
}

// Clear drops every node at once.
func (t *Tree) Clear() {
	t.nodes = nil
	t.root = nilRef
	t.numItems = 0
}

// Size returns the number of keys in the tree.
func (t *Tree) Size() int { return t.numItems }

// at resolves a ref to its node. The returned pointer is valid until
// the next arena allocation.
func (t *Tree) at(r ref) *node {
	return &t.nodes[r]
}

// alloc appends a fresh red node to the arena and returns its ref.
func (t *Tree) alloc(key int) ref {
	t.nodes = append(t.nodes, node{
		key:    key,
		color:  red,
		left:   nilRef,
		right:  nilRef,
		parent: nilRef,
	})
	return ref(len(t.nodes) - 1)
}
