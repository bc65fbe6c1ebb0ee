package vart

import "bytes"

// Tree is an immutable snapshot of a versioned Adaptive Radix Tree. Every
// node reachable from a published Tree is never mutated again; Insert and
// Delete produce a new Tree that shares every subtree the edit did not
// touch (§4.7).
type Tree struct {
	root node
	size int
}

// New returns an empty Tree.
func New() *Tree { return &Tree{} }

// Len returns the number of keys in this version.
func (t *Tree) Len() int { return t.size }

// Snapshot returns an independent handle to this version. Because a Tree
// is never mutated after Insert/Delete returns it, this costs nothing
// beyond copying the (root, size) pair: the O(1) snapshot the single-owner
// art package cannot offer.
func (t *Tree) Snapshot() *Tree {
	s := *t
	return &s
}

// Get looks up key against this version.
func (t *Tree) Get(key Key) (any, bool) {
	n := t.root
	depth := 0
	for n != nil {
		if l, ok := n.(*leaf); ok {
			if bytes.Equal(l.key, key) {
				return l.value, true
			}
			return nil, false
		}
		in := n.(inner)
		p := in.prefixPtr()
		if p.prefixLen > 0 {
			matched, full := matchPrefix(p, key, depth, n)
			if !full {
				return nil, false
			}
			depth += matched
		}
		n = in.findChild(key.charAt(depth))
		depth++
	}
	return nil, false
}

// isRealPrefix reports whether stored (a full encoded key, terminator
// included) is the proper byte-prefix of probe once its trailing
// terminator is accounted for.
func isRealPrefix(stored, probe Key) bool {
	if len(stored) == 0 || len(stored) > len(probe) {
		return false
	}
	if stored[len(stored)-1] != 0 {
		return false
	}
	return bytes.Equal(stored[:len(stored)-1], probe[:len(stored)-1])
}

// LongestPrefixMatch finds the stored key that is the longest prefix of
// key, or the exact key itself. A shorter stored key only ever branches
// off its longer siblings under the terminator byte 0x00, so that branch
// is checked at every level on the way down.
func (t *Tree) LongestPrefixMatch(key Key) (Key, any, bool) {
	n := t.root
	depth := 0
	var best *leaf
	for n != nil {
		if l, ok := n.(*leaf); ok {
			if bytes.Equal(l.key, key) || isRealPrefix(l.key, key) {
				best = l
			}
			break
		}
		in := n.(inner)
		p := in.prefixPtr()
		if p.prefixLen > 0 {
			matched, full := matchPrefix(p, key, depth, n)
			if !full {
				break
			}
			depth += matched
		}
		if term := in.findChild(0); term != nil {
			if lf, ok := term.(*leaf); ok {
				best = lf
			} else {
				logger.Warn("vart: terminator edge led to a non-leaf node")
			}
		}
		if !key.valid(depth) {
			break
		}
		n = in.findChild(key.charAt(depth))
		depth++
	}
	if best == nil {
		return nil, nil, false
	}
	return best.key, best.value, true
}

// Insert returns a new Tree with key set to value, plus the value it
// replaced if any. t itself is unchanged and remains valid.
func (t *Tree) Insert(key Key, value any) (*Tree, any, bool) {
	tx := t.Txn()
	old, had := tx.Insert(key, value)
	return tx.Commit(), old, had
}

// Delete returns a new Tree with key removed, plus its former value if
// present. t itself is unchanged and remains valid.
func (t *Tree) Delete(key Key) (*Tree, any, bool) {
	tx := t.Txn()
	val, removed := tx.Delete(key)
	return tx.Commit(), val, removed
}

// Txn is a mutable builder bound to one base Tree (§4.7, modeled on the
// write-transaction pattern immutable radix trees use to batch several
// edits behind a single Commit). Edits clone each node they touch rather
// than mutating it, so the base Tree stays valid throughout.
type Txn struct {
	root node
	size int
}

// Txn opens a transaction rooted at t's current version.
func (t *Tree) Txn() *Txn {
	return &Txn{root: t.root, size: t.size}
}

// Get reads against the transaction's current working tree.
func (tx *Txn) Get(key Key) (any, bool) {
	return (&Tree{root: tx.root, size: tx.size}).Get(key)
}

// Insert applies one edit within the transaction.
func (tx *Txn) Insert(key Key, value any) (any, bool) {
	newRoot, old, had := insertNode(tx.root, key, 0, value)
	tx.root = newRoot
	if !had {
		tx.size++
	}
	return old, had
}

// Delete applies one removal within the transaction.
func (tx *Txn) Delete(key Key) (any, bool) {
	newRoot, val, removed := deleteNode(tx.root, key, 0)
	tx.root = newRoot
	if removed {
		tx.size--
	}
	return val, removed
}

// Commit freezes the transaction's working tree into a new immutable Tree.
func (tx *Txn) Commit() *Tree {
	return &Tree{root: tx.root, size: tx.size}
}

func insertNode(n node, key Key, depth int, value any) (node, any, bool) {
	if n == nil {
		return newLeaf(key, value), nil, false
	}
	if l, ok := n.(*leaf); ok {
		if bytes.Equal(l.key, key) {
			return newLeaf(key, value), l.value, true
		}
		lcp := commonPrefixLen(l.key, key, depth)
		nn := newNode4()
		nn.setPrefix(append([]byte{}, key[depth:depth+lcp]...))
		oldByte := l.key.charAt(depth + lcp)
		newByte := key.charAt(depth + lcp)
		nn.addChild(oldByte, l)
		nn.addChild(newByte, newLeaf(key, value))
		return nn, nil, false
	}

	orig := n.(inner)
	clone := orig.clone()
	p := clone.prefixPtr()
	if p.prefixLen > 0 {
		matched, full := matchPrefix(p, key, depth, clone)
		if !full {
			return splitPrefix(clone, p, matched, key, depth, value), nil, false
		}
		depth += matched
	}

	b := key.charAt(depth)
	child := clone.findChild(b)
	newChild, old, had := insertNode(child, key, depth+1, value)
	if child == nil {
		clone = addChildWithGrowth(clone, b, newChild)
	} else {
		clone.replaceChild(b, newChild)
	}
	return clone, old, had
}

func splitPrefix(in inner, p *prefixHeader, matched int, key Key, depth int, value any) node {
	full := fullPrefixBytes(p, depth, in)
	var splitByte byte
	if matched < len(full) {
		splitByte = full[matched]
	}
	nn := newNode4()
	nn.setPrefix(append([]byte{}, full[:matched]...))
	if matched+1 <= len(full) {
		p.setPrefix(append([]byte{}, full[matched+1:]...))
	} else {
		p.setPrefix(nil)
	}
	nn.addChild(splitByte, in)
	nn.addChild(key.charAt(depth+matched), newLeaf(key, value))
	return nn
}

func commonPrefixLen(a, b Key, depth int) int {
	n := 0
	for a.valid(depth+n) && b.valid(depth+n) && a[depth+n] == b[depth+n] {
		n++
	}
	return n
}

func deleteNode(n node, key Key, depth int) (node, any, bool) {
	if n == nil {
		return nil, nil, false
	}
	if l, ok := n.(*leaf); ok {
		if bytes.Equal(l.key, key) {
			return nil, l.value, true
		}
		return n, nil, false
	}

	orig := n.(inner)
	p0 := orig.prefixPtr()
	nodeDepth := depth
	if p0.prefixLen > 0 {
		matched, full := matchPrefix(p0, key, depth, orig)
		if !full {
			return n, nil, false
		}
		depth += matched
	}
	b := key.charAt(depth)
	child := orig.findChild(b)
	if child == nil {
		return n, nil, false
	}
	newChild, val, removed := deleteNode(child, key, depth+1)
	if !removed {
		return n, nil, false
	}

	clone := orig.clone()
	var in inner = clone
	if newChild == nil {
		in = deleteChildWithShrink(clone, b)
	} else {
		clone.replaceChild(b, newChild)
	}
	p := in.prefixPtr()

	if in.count() == 0 {
		return nil, val, true
	}
	if in.count() == 1 {
		onlyByte, onlyChild := in.min()
		if _, ok := onlyChild.(*leaf); ok {
			return onlyChild, val, true
		}
		childInner := onlyChild.(inner)
		ownBytes := fullPrefixBytes(p, nodeDepth, in)
		childBytes := fullPrefixBytes(childInner.prefixPtr(), depth+1, childInner)
		merged := make([]byte, 0, len(ownBytes)+1+len(childBytes))
		merged = append(merged, ownBytes...)
		merged = append(merged, onlyByte)
		merged = append(merged, childBytes...)
		mergedClone := childInner.clone()
		mergedClone.prefixPtr().setPrefix(merged)
		return mergedClone, val, true
	}
	return in, val, true
}
