package rbtree

// Contains reports whether key is in the tree.
func (t *Tree) Contains(key int) bool {
	return t.search(key) != nilRef
}

// Get looks key up and reports whether it was found.
func (t *Tree) Get(key int) (int, bool) {
	n := t.search(key)
	if n == nilRef {
		return 0, false
	}
	return t.at(n).key, true
}

// Min returns the smallest key, or ErrEmptyTree.
func (t *Tree) Min() (int, error) {
	if t.root == nilRef {
		return 0, ErrEmptyTree
	}
	return t.at(t.minNode(t.root)).key, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t *Tree) Max() (int, error) {
	if t.root == nilRef {
		return 0, ErrEmptyTree
	}
	return t.at(t.maxNode(t.root)).key, nil
}

// Successor returns the smallest key strictly greater than key.
func (t *Tree) Successor(key int) (int, bool) {
	n := t.root
	succ := nilRef
	for n != nilRef {
		if key < t.at(n).key {
			succ = n
			n = t.at(n).left
		} else {
			n = t.at(n).right
		}
	}
	if succ == nilRef {
		return 0, false
	}
	return t.at(succ).key, true
}

// Predecessor returns the largest key strictly less than key.
func (t *Tree) Predecessor(key int) (int, bool) {
	n := t.root
	pred := nilRef
	for n != nilRef {
		if key > t.at(n).key {
			pred = n
			n = t.at(n).right
		} else {
			n = t.at(n).left
		}
	}
	if pred == nilRef {
		return 0, false
	}
	return t.at(pred).key, true
}

func (t *Tree) search(key int) ref {
	n := t.root
	for n != nilRef {
		if key < t.at(n).key {
			n = t.at(n).left
		} else if key > t.at(n).key {
			n = t.at(n).right
		} else {
			return n
		}
	}
	return nilRef
}

func (t *Tree) minNode(n ref) ref {
	for t.at(n).left != nilRef {
		n = t.at(n).left
	}
	return n
}

func (t *Tree) maxNode(n ref) ref {
	for t.at(n).right != nilRef {
		n = t.at(n).right
	}
	return n
}

// next returns the in-order successor of n via parent refs.
func (t *Tree) next(n ref) ref {
	if t.at(n).right != nilRef {
		return t.minNode(t.at(n).right)
	}
	p := t.at(n).parent
	for p != nilRef && t.at(p).right == n {
		n = p
		p = t.at(p).parent
	}
	return p
}

// prev returns the in-order predecessor of n via parent refs.
func (t *Tree) prev(n ref) ref {
	if t.at(n).left != nilRef {
		return t.maxNode(t.at(n).left)
	}
	p := t.at(n).parent
	for p != nilRef && t.at(p).left == n {
		n = p
		p = t.at(p).parent
	}
	return p
}
