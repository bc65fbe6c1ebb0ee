// Package keycodec turns host values into the prefix-free, order-preserving
// byte sequences the art and vart packages index (§4.1, "Key encoding").
//
// The tree only ever compares raw bytes; it has no notion of integers or
// strings. Producing a byte sequence whose unsigned lexicographic order
// matches the host value's natural order, and that is never a byte-prefix
// of another encoded key, is this package's job.
package keycodec

import "math"

// Bytes appends a terminator to a raw byte string so that no encoded key is
// ever a byte-prefix of another: two strings "a" and "ab" encode to
// {0x61, 0x00} and {0x61, 0x62, 0x00}, which diverge at index 1 instead of
// one being a prefix of the other.
//
// The input must not itself contain a 0x00 byte; callers indexing
// arbitrary binary strings must first escape 0x00 into a byte sequence
// that contains no 0x00, so the terminator stays unambiguous.
func Bytes(s []byte) []byte {
	out := make([]byte, len(s)+1)
	copy(out, s)
	out[len(s)] = 0
	return out
}

// Uint64 encodes v as 8 big-endian bytes. Big-endian byte order makes
// unsigned lexicographic byte comparison agree with numeric comparison.
func Uint64(v uint64) []byte {
	return []byte{
		byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
		byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
	}
}

// Uint32 encodes v as 4 big-endian bytes.
func Uint32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

// Int64 encodes v as 8 bytes whose unsigned lexicographic order matches
// v's signed numeric order: flipping the sign bit maps the signed range
// [-2^63, 2^63-1] onto the unsigned range [0, 2^64-1] order-preservingly,
// since every negative value (sign bit set) must sort below every
// non-negative one once reinterpreted as unsigned.
func Int64(v int64) []byte {
	u := uint64(v) ^ (1 << 63)
	return Uint64(u)
}

// Int32 encodes v the same way as Int64, flipping the 32-bit sign bit.
func Int32(v int32) []byte {
	u := uint32(v) ^ (1 << 31)
	return Uint32(u)
}

// Float64 encodes v so that unsigned lexicographic byte order matches
// IEEE-754 total order for non-NaN values: flip the sign bit always, and
// for negative values also flip every other bit, which reverses their
// otherwise-backwards magnitude ordering.
func Float64(v float64) []byte {
	bits := math.Float64bits(v)
	if bits&(1<<63) != 0 {
		bits = ^bits
	} else {
		bits |= 1 << 63
	}
	return Uint64(bits)
}
