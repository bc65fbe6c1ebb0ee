package art

// firstLeaf descends via min() until it reaches a leaf, giving a
// representative leaf anywhere in n's subtree. Used for pessimistic
// restoration (§4.2) of an optimistic prefix's bytes beyond maxPrefixLen.
func firstLeaf(n node) *leaf {
	for {
		if l, ok := n.(*leaf); ok {
			return l
		}
		in := n.(inner)
		_, child := in.min()
		if child == nil {
			return nil
		}
		n = child
	}
}

// matchPrefix compares p's logical prefix against key[depth:], restoring
// the true bytes beyond the inline capacity from a representative leaf
// (via owner) when the prefix is optimistic. It returns the number of
// matching bytes and whether the whole logical prefix matched.
func matchPrefix(p *prefixHeader, key Key, depth int, owner node) (matched int, full bool) {
	limit := p.inlineLen()
	i := 0
	for ; i < limit; i++ {
		if !key.valid(depth+i) || p.prefix[i] != key[depth+i] {
			return i, false
		}
	}
	if !p.optimistic() {
		return i, true
	}
	// Inline bytes matched in full; the logical prefix is longer than what
	// is stored inline, so recover the rest from a representative leaf.
	rep := firstLeaf(owner)
	if rep == nil {
		return i, i == int(p.prefixLen)
	}
	for ; i < int(p.prefixLen); i++ {
		if !key.valid(depth+i) || !rep.key.valid(depth+i) || rep.key[depth+i] != key[depth+i] {
			return i, false
		}
	}
	return i, true
}

// fullPrefixBytes returns the complete logical prefix bytes of p, starting
// at depth in owner's subtree, restoring from a representative leaf when
// the prefix exceeds the inline capacity.
func fullPrefixBytes(p *prefixHeader, depth int, owner node) []byte {
	if !p.optimistic() {
		return p.prefix[:p.prefixLen]
	}
	rep := firstLeaf(owner)
	if rep == nil || !rep.key.valid(depth+int(p.prefixLen)-1) {
		return p.prefix[:maxPrefixLen]
	}
	return rep.key[depth : depth+int(p.prefixLen)]
}
