// Package art implements a single-owner Adaptive Radix Tree: an in-memory,
// ordered associative index keyed by byte strings.
//
// The tree adapts the physical layout of each inner node's child table
// between four shapes (node4, node16, node48, node256) as the number of
// children grows or shrinks, and compresses shared key prefixes onto edges
// rather than storing them once per level. Callers own the tree exclusively;
// concurrent readers are only safe while no writer is active. See the vart
// package for a versioned, copy-on-write variant that supports O(1)
// snapshots for concurrent readers.
package art
