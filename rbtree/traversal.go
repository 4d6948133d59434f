package rbtree

import (
	"strconv"
	"strings"
)

// ForEachAscending calls fn for every key in ascending order until fn
// returns false. The tree must not be mutated during the walk.
func (t *Tree) ForEachAscending(fn func(key int) bool) {
	if t.root == nilRef {
		return
	}
	for n := t.minNode(t.root); n != nilRef; n = t.next(n) {
		if !fn(t.at(n).key) {
			return
		}
	}
}

// ForEachDescending is ForEachAscending in reverse.
func (t *Tree) ForEachDescending(fn func(key int) bool) {
	if t.root == nilRef {
		return
	}
	for n := t.maxNode(t.root); n != nilRef; n = t.prev(n) {
		if !fn(t.at(n).key) {
			return
		}
	}
}

// Keys collects every key in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.numItems)
	t.ForEachAscending(func(key int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// ToInfixString renders the tree in-order: keys ascending, each node
// as " C<key> " where C is the color letter.
func (t *Tree) ToInfixString() string {
	var sb strings.Builder
	t.infix(t.root, &sb)
	return sb.String()
}

// ToPrefixString renders the tree pre-order: node, left, right.
func (t *Tree) ToPrefixString() string {
	var sb strings.Builder
	t.prefix(t.root, &sb)
	return sb.String()
}

// ToPostfixString renders the tree post-order: left, right, node.
func (t *Tree) ToPostfixString() string {
	var sb strings.Builder
	t.postfix(t.root, &sb)
	return sb.String()
}

// String is the infix rendering.
func (t *Tree) String() string {
	return t.ToInfixString()
}

func (t *Tree) infix(n ref, sb *strings.Builder) {
	if n == nilRef {
		return
	}
	t.infix(t.at(n).left, sb)
	t.writeNode(n, sb)
	t.infix(t.at(n).right, sb)
}

func (t *Tree) prefix(n ref, sb *strings.Builder) {
	if n == nilRef {
		return
	}
	t.writeNode(n, sb)
	t.prefix(t.at(n).left, sb)
	t.prefix(t.at(n).right, sb)
}

func (t *Tree) postfix(n ref, sb *strings.Builder) {
	if n == nilRef {
		return
	}
	t.postfix(t.at(n).left, sb)
	t.postfix(t.at(n).right, sb)
	t.writeNode(n, sb)
}

// writeNode emits exactly " C<key> ". Neighboring renderings supply
// their own spaces; traversals add no separators of their own.
func (t *Tree) writeNode(n ref, sb *strings.Builder) {
	nd := t.at(n)
	sb.WriteByte(' ')
	sb.WriteString(nd.color.String())
	sb.WriteString(strconv.Itoa(nd.key))
	sb.WriteByte(' ')
}
