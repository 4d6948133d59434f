package rbtree

// Insert adds key to the tree, rebalancing as needed. It returns
// ErrDuplicateKey and leaves the tree untouched if the key is already
// present.
func (t *Tree) Insert(key int) error {
	if t.search(key) != nilRef {
		return ErrDuplicateKey
	}

	z := t.alloc(key)
	t.basicInsert(z)
	t.fixInsert(z)
	t.at(t.root).color = black
	t.numItems++
	return nil
}

// basicInsert places z as a leaf by ordinary BST descent. Duplicates
// are rejected before this runs, so the equal branch is never taken.
func (t *Tree) basicInsert(z ref) {
	y := nilRef
	x := t.root
	for x != nilRef {
		y = x
		if t.at(z).key < t.at(x).key {
			x = t.at(x).left
		} else {
			x = t.at(x).right
		}
	}

	t.at(z).parent = y
	if y == nilRef {
		t.root = z
	} else if t.at(z).key < t.at(y).key {
		t.at(y).left = z
	} else {
		t.at(y).right = z
	}
}

// fixInsert restores the red-black properties after basicInsert. z is
// the freshly placed red node; the only possible violation is a red
// parent. Red uncle: recolor and climb. Black or absent uncle: the
// straight-line shapes rotate the grandparent and recolor, while the
// zig-zag shapes rotate the parent only and reassign z so the next
// iteration sees a straight-line shape.
func (t *Tree) fixInsert(z ref) {
	for {
		p := t.at(z).parent
		if p == nilRef || t.at(p).color != red {
			break
		}
		u := t.uncle(z)
		g := t.at(p).parent

		if u != nilRef && t.at(u).color == red {
			t.at(p).color = black
			t.at(u).color = black
			t.at(g).color = red
			z = g
			continue
		}

		switch {
		case t.isLeftChild(z) && t.isLeftChild(p):
			t.rightRotate(g)
			t.at(p).color = black
			t.at(g).color = red
		case t.isRightChild(z) && t.isRightChild(p):
			t.leftRotate(g)
			t.at(p).color = black
			t.at(g).color = red
		case t.isLeftChild(z) && t.isRightChild(p):
			t.rightRotate(p)
			z = t.at(z).right
		default:
			t.leftRotate(p)
			z = t.at(z).left
		}
	}
	if t.root != nilRef {
		t.at(t.root).color = black
	}
}

// leftRotate pivots x's right child up into x's position, with x
// becoming its left child. Parent refs stay the exact inverse of the
// child refs throughout.
func (t *Tree) leftRotate(x ref) {
	nx := t.at(x)
	y := nx.right
	ny := t.at(y)

	nx.right = ny.left
	if ny.left != nilRef {
		t.at(ny.left).parent = x
	}
	ny.parent = nx.parent
	if nx.parent == nilRef {
		t.root = y
	} else if t.at(nx.parent).left == x {
		t.at(nx.parent).left = y
	} else {
		t.at(nx.parent).right = y
	}
	ny.left = x
	nx.parent = y
}

// rightRotate is the mirror of leftRotate.
func (t *Tree) rightRotate(y ref) {
	ny := t.at(y)
	x := ny.left
	nx := t.at(x)

	ny.left = nx.right
	if nx.right != nilRef {
		t.at(nx.right).parent = y
	}
	nx.parent = ny.parent
	if ny.parent == nilRef {
		t.root = x
	} else if t.at(ny.parent).right == y {
		t.at(ny.parent).right = x
	} else {
		t.at(ny.parent).left = x
	}
	nx.right = y
	ny.parent = x
}

// uncle returns the sibling of z's parent, or nilRef without a
// grandparent.
func (t *Tree) uncle(z ref) ref {
	p := t.at(z).parent
	if p == nilRef {
		return nilRef
	}
	g := t.at(p).parent
	if g == nilRef {
		return nilRef
	}
	if t.at(g).left == p {
		return t.at(g).right
	}
	return t.at(g).left
}

func (t *Tree) isLeftChild(n ref) bool {
	p := t.at(n).parent
	return p != nilRef && t.at(p).left == n
}

func (t *Tree) isRightChild(n ref) bool {
	p := t.at(n).parent
	return p != nilRef && t.at(p).right == n
}
