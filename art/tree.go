package art

import "bytes"

// Tree is a single-owner Adaptive Radix Tree (§3, §4.5). The zero value is
// not ready to use; create one with New.
type Tree struct {
	root node
	size int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of keys currently stored.
func (t *Tree) Len() int { return t.size }

// Get looks up key and reports whether it is present.
func (t *Tree) Get(key Key) (any, bool) {
	n := t.root
	depth := 0
	for n != nil {
		if isLeaf(n) {
			l := asLeaf(n)
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

// Insert adds or overwrites key's value, returning the previous value and
// whether one existed (§4.5 "Insert").
func (t *Tree) Insert(key Key, value any) (any, bool) {
	newRoot, old, had := insertNode(t.root, key, 0, value)
	t.root = newRoot
	if !had {
		t.size++
	}
	return old, had
}

func insertNode(n node, key Key, depth int, value any) (node, any, bool) {
	if n == nil {
		return newLeaf(key, value), nil, false
	}
	if l, ok := n.(*leaf); ok {
		if bytes.Equal(l.key, key) {
			old := l.value
			l.value = value
			return l, old, true
		}
		lcp := commonPrefixLen(l.key, key, depth)
		nn := newNode4()
		nn.setPrefix(append([]byte{}, key[depth:depth+lcp]...))
		oldByte := l.key.charAt(depth + lcp)
		newByte := key.charAt(depth + lcp)
		// Keys are prefix-free (keycodec appends a terminator), so one key
		// running out here while the other continues cannot happen: it
		// would mean one key is a byte-prefix of the other.
		nn.addChild(oldByte, l)
		nn.addChild(newByte, newLeaf(key, value))
		return nn, nil, false
	}

	in := n.(inner)
	p := in.prefixPtr()
	if p.prefixLen > 0 {
		matched, full := matchPrefix(p, key, depth, n)
		if !full {
			return splitPrefix(in, p, matched, key, depth, value), nil, false
		}
		depth += matched
	}

	b := key.charAt(depth)
	child := in.findChild(b)
	if child == nil {
		newChild, _, _ := insertNode(nil, key, depth+1, value)
		grown, _ := addChildWithGrowth(in, b, newChild)
		return grown, nil, false
	}
	newChild, old, had := insertNode(child, key, depth+1, value)
	if newChild != child {
		in.replaceChild(b, newChild)
	}
	return in, old, had
}

// splitPrefix handles an insert whose key diverges partway through an
// inner node's compressed prefix (§4.5 "Insert", step 3): it carves off the
// matched portion into a new parent and reattaches the original node and a
// fresh leaf as siblings under it.
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

// Delete removes key, returning its value and whether it was present
// (§4.5 "Delete"), collapsing single-child nodes (I5) and demoting
// under-occupied layouts (§3) as it unwinds.
func (t *Tree) Delete(key Key) (any, bool) {
	newRoot, val, removed := deleteNode(t.root, key, 0)
	t.root = newRoot
	if removed {
		t.size--
	}
	return val, removed
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

	in := n.(inner)
	p := in.prefixPtr()
	nodeDepth := depth
	if p.prefixLen > 0 {
		matched, full := matchPrefix(p, key, depth, n)
		if !full {
			return n, nil, false
		}
		depth += matched
	}
	b := key.charAt(depth)
	child := in.findChild(b)
	if child == nil {
		return n, nil, false
	}
	newChild, val, removed := deleteNode(child, key, depth+1)
	if !removed {
		return n, nil, false
	}
	if newChild == nil {
		shrunk, _ := deleteChildWithShrink(in, b)
		in = shrunk
	} else if newChild != child {
		in.replaceChild(b, newChild)
	}
	p = in.prefixPtr()

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
		childInner.prefixPtr().setPrefix(merged)
		return childInner, val, true
	}
	return in, val, true
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
// key, or the exact key itself (§4.5 "LongestPrefixMatch", P6). Because
// stored keys are terminator-suffixed (§4.1), a shorter stored key only
// ever branches off its longer siblings under the terminator byte 0x00, so
// that branch is checked at every level on the way down.
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
				logger.Warn("art: terminator edge led to a non-leaf node")
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

// Stats reports the node-layout population of the tree, a supplemental
// diagnostic for understanding how keys are distributed across the four
// child-table shapes.
type Stats struct {
	Leaves, Node4, Node16, Node48, Node256 int
	PrefixBytes                            int
}

func (t *Tree) Stats() Stats {
	var s Stats
	var walk func(n node)
	walk = func(n node) {
		if n == nil {
			return
		}
		switch x := n.(type) {
		case *leaf:
			s.Leaves++
		case *node4:
			s.Node4++
			s.PrefixBytes += int(x.prefixLen)
			for i := 0; i < int(x.numChildren); i++ {
				walk(x.children[i])
			}
		case *node16:
			s.Node16++
			s.PrefixBytes += int(x.prefixLen)
			for i := 0; i < int(x.numChildren); i++ {
				walk(x.children[i])
			}
		case *node48:
			s.Node48++
			s.PrefixBytes += int(x.prefixLen)
			for b := x.present.nextSet(0); b >= 0; b = x.present.nextSet(b + 1) {
				walk(x.children[x.index[b]-1])
			}
		case *node256:
			s.Node256++
			s.PrefixBytes += int(x.prefixLen)
			for b := x.present.nextSet(0); b >= 0; b = x.present.nextSet(b + 1) {
				walk(x.children[b])
			}
		}
	}
	walk(t.root)
	return s
}
