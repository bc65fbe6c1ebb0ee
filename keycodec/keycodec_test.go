package keycodec

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesIsNeverAPrefixOfAnother(t *testing.T) {
	a := Bytes([]byte("a"))
	ab := Bytes([]byte("ab"))
	require.False(t, bytes.HasPrefix(ab, a) && !bytes.Equal(a, ab))
	assert.Less(t, bytes.Compare(a, ab), 0)
}

func TestUint64PreservesOrder(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 1 << 40, math64Max}
	encoded := make([][]byte, len(values))
	for i, v := range values {
		encoded[i] = Uint64(v)
	}
	sorted := append([][]byte{}, encoded...)
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i], sorted[j]) < 0 })
	assert.Equal(t, encoded, sorted)
}

const math64Max = ^uint64(0)

func TestInt64PreservesSignedOrder(t *testing.T) {
	values := []int64{-1 << 40, -1, 0, 1, 1 << 40}
	var encoded [][]byte
	for _, v := range values {
		encoded = append(encoded, Int64(v))
	}
	for i := 1; i < len(encoded); i++ {
		assert.Less(t, bytes.Compare(encoded[i-1], encoded[i]), 0)
	}
}

func TestFloat64PreservesOrderAcrossSign(t *testing.T) {
	values := []float64{-100.5, -1.0, -0.0001, 0, 0.0001, 1.0, 100.5}
	var encoded [][]byte
	for _, v := range values {
		encoded = append(encoded, Float64(v))
	}
	for i := 1; i < len(encoded); i++ {
		assert.Less(t, bytes.Compare(encoded[i-1], encoded[i]), 0)
	}
}
