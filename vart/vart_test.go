package vart

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artindex/go-art/keycodec"
)

func k(s string) Key { return Key(keycodec.Bytes([]byte(s))) }

func TestInsertReturnsNewVersionLeavingOldIntact(t *testing.T) {
	v1 := New()
	v2, old, had := v1.Insert(k("a"), 1)
	assert.False(t, had)
	assert.Nil(t, old)
	assert.Equal(t, 0, v1.Len())
	assert.Equal(t, 1, v2.Len())

	_, ok := v1.Get(k("a"))
	assert.False(t, ok)
	val, ok := v2.Get(k("a"))
	require.True(t, ok)
	assert.Equal(t, 1, val)
}

func TestSnapshotIsUnaffectedByLaterWrites(t *testing.T) {
	tree := New()
	tree, _, _ = tree.Insert(k("a"), 1)
	tree, _, _ = tree.Insert(k("b"), 2)

	snap := tree.Snapshot()

	tree, _, _ = tree.Insert(k("c"), 3)
	tree, _, _ = tree.Delete(k("a"))

	assert.Equal(t, 2, snap.Len())
	_, ok := snap.Get(k("a"))
	assert.True(t, ok)
	_, ok = snap.Get(k("c"))
	assert.False(t, ok)

	assert.Equal(t, 2, tree.Len())
	_, ok = tree.Get(k("a"))
	assert.False(t, ok)
	v, ok := tree.Get(k("c"))
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestTxnBatchesEditsBehindOneCommit(t *testing.T) {
	base := New()
	tx := base.Txn()
	tx.Insert(k("apple"), 1)
	tx.Insert(k("app"), 2)
	tx.Insert(k("application"), 3)
	v, had := tx.Insert(k("apple"), 10)
	assert.True(t, had)
	assert.Equal(t, 1, v)

	committed := tx.Commit()
	assert.Equal(t, 3, committed.Len())
	assert.Equal(t, 0, base.Len())

	val, ok := committed.Get(k("apple"))
	require.True(t, ok)
	assert.Equal(t, 10, val)
}

func TestDeleteProducesIndependentVersion(t *testing.T) {
	v := New()
	v, _, _ = v.Insert(k("apple"), 1)
	v, _, _ = v.Insert(k("applesauce"), 2)

	before := v.Snapshot()
	after, val, removed := v.Delete(k("applesauce"))
	assert.True(t, removed)
	assert.Equal(t, 2, val)

	assert.Equal(t, 2, before.Len())
	_, ok := before.Get(k("applesauce"))
	assert.True(t, ok)

	assert.Equal(t, 1, after.Len())
	_, ok = after.Get(k("applesauce"))
	assert.False(t, ok)
	_, ok = after.Get(k("apple"))
	assert.True(t, ok)
}

func TestIterAscendingOrderAcrossVersions(t *testing.T) {
	v := New()
	for _, w := range []string{"banana", "apple", "app", "cherry"} {
		v, _, _ = v.Insert(k(w), w)
	}
	want := []string{"app", "apple", "banana", "cherry"}
	var got []string
	it := v.Iter()
	for it.Next() {
		got = append(got, string(it.Key()[:len(it.Key())-1]))
	}
	assert.Equal(t, want, got)
}

// TestNode16HighBitOrdering mirrors art's regression test for the
// unsigned-comparison bug class called out in §4.3/P9: byte ordering
// across the 0x80 boundary must stay correct in node16's child lookup.
func TestNode16HighBitOrdering(t *testing.T) {
	bytesSpanningHighBit := []byte{0x01, 0x7f, 0x80, 0x81, 0xfe, 0xff}

	v := New()
	for i, b := range bytesSpanningHighBit {
		v, _, _ = v.Insert(Key{b, 0}, i)
	}
	_, ok := v.root.(*node16)
	require.True(t, ok)

	for i, b := range bytesSpanningHighBit {
		val, ok := v.Get(Key{b, 0})
		require.True(t, ok)
		assert.Equal(t, i, val)
	}

	want := append([]byte{}, bytesSpanningHighBit...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	var got []byte
	it := v.Iter()
	for it.Next() {
		got = append(got, it.Key()[0])
	}
	assert.Equal(t, want, got)
}

func TestPrefixIterOnSnapshot(t *testing.T) {
	v := New()
	for i, w := range []string{"apple", "app", "application", "banana"} {
		v, _, _ = v.Insert(k(w), i)
	}
	snap := v.Snapshot()
	v, _, _ = v.Insert(k("apply"), 99)

	var got []string
	it := snap.PrefixIter([]byte("app"))
	for it.Next() {
		got = append(got, string(it.Key()[:len(it.Key())-1]))
	}
	assert.Equal(t, []string{"app", "apple", "application"}, got)
}
