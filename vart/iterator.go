package vart

// Iterator walks one immutable Tree version's keys in ascending order,
// unaffected by any Insert/Delete that happens on other versions after the
// iterator was created, since the nodes it holds are never mutated in
// place.
type Iterator struct {
	stack        []frame
	cur          *leaf
	start, end   Bound
	exhausted    bool
	startEngaged bool
}

type frame struct {
	n        inner
	next     int
	leafOnly *leaf
}

// Iter returns an iterator over every key in this version, ascending.
func (t *Tree) Iter() *Iterator {
	return t.Range(Unbounded(), Unbounded())
}

// Range returns an iterator restricted to [start, end) as the bounds'
// kinds dictate. A start that sorts after end yields no elements.
func (t *Tree) Range(start, end Bound) *Iterator {
	it := &Iterator{start: start, end: end}
	if t.root == nil {
		it.exhausted = true
		return it
	}
	if start.kind == boundUnbounded {
		if l, ok := t.root.(*leaf); ok {
			it.stack = []frame{{leafOnly: l}}
		} else {
			it.stack = []frame{{n: t.root.(inner), next: 0}}
		}
	} else {
		it.stack = seekStart(t.root, start.key)
	}
	return it
}

// PrefixIter returns an iterator over every key that starts with prefix.
func (t *Tree) PrefixIter(prefix []byte) *Iterator {
	upper, unbounded := prefixUpperBound(prefix)
	if unbounded {
		return t.Range(Included(prefix), Unbounded())
	}
	return t.Range(Included(prefix), Excluded(upper))
}

func prefixUpperBound(prefix []byte) ([]byte, bool) {
	up := make([]byte, len(prefix))
	copy(up, prefix)
	for i := len(up) - 1; i >= 0; i-- {
		if up[i] != 0xFF {
			up[i]++
			return up[:i+1], false
		}
	}
	return nil, true
}

func seekStart(root node, start Key) []frame {
	var stack []frame
	n := root
	depth := 0
	for {
		if n == nil {
			return stack
		}
		if l, ok := n.(*leaf); ok {
			stack = append(stack, frame{leafOnly: l})
			return stack
		}
		in := n.(inner)
		p := in.prefixPtr()
		if p.prefixLen > 0 {
			matched, full := matchPrefix(p, start, depth, n)
			if !full {
				fb := fullPrefixBytes(p, depth, n)
				nodeByte, haveNodeByte := -1, matched < len(fb)
				if haveNodeByte {
					nodeByte = int(fb[matched])
				}
				startByte, haveStartByte := -1, start.valid(depth+matched)
				if haveStartByte {
					startByte = int(start[depth+matched])
				}
				if !haveStartByte || (haveNodeByte && nodeByte > startByte) {
					stack = append(stack, frame{n: in, next: 0})
				}
				return stack
			}
			depth += matched
		}
		if !start.valid(depth) {
			stack = append(stack, frame{n: in, next: 0})
			return stack
		}
		b := start.charAt(depth)
		stack = append(stack, frame{n: in, next: int(b) + 1})
		child := in.findChild(b)
		if child == nil {
			return stack
		}
		n = child
		depth++
	}
}

func (it *Iterator) advance() {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.leafOnly != nil {
			lf := top.leafOnly
			it.stack = it.stack[:len(it.stack)-1]
			it.cur = lf
			return
		}
		b, child := top.n.childAtOrAfter(top.next)
		if child == nil {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		top.next = int(b) + 1
		if lf, ok := child.(*leaf); ok {
			it.cur = lf
			return
		}
		it.stack = append(it.stack, frame{n: child.(inner), next: 0})
	}
	it.cur = nil
}

// Next advances the iterator and reports whether a key is available.
//
// The start bound is only checked until the first key that satisfies it is
// emitted; ascending order guarantees every later key also satisfies it,
// so admitsAsStart is skipped from then on.
func (it *Iterator) Next() bool {
	if it.exhausted {
		return false
	}
	for {
		it.advance()
		if it.cur == nil {
			it.exhausted = true
			return false
		}
		if !it.startEngaged {
			if !it.start.admitsAsStart(it.cur.key) {
				continue
			}
			it.startEngaged = true
		}
		if !it.end.admitsAsEnd(it.cur.key) {
			it.exhausted = true
			it.cur = nil
			return false
		}
		return true
	}
}

func (it *Iterator) Key() Key     { return it.cur.key }
func (it *Iterator) Value() any   { return it.cur.value }
