// Command artbench is a small runnable harness exercising Insert, Get and
// Range against a random key set, in the spirit of the teacher's
// throwaway BenchmarkReadAfterWriteArt-style helpers, but as a standalone
// program rather than a go test benchmark.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/artindex/go-art/art"
	"github.com/artindex/go-art/keycodec"
)

func main() {
	n := flag.Int("n", 100000, "number of keys to insert")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	keys := make([]art.Key, *n)
	for i := range keys {
		keys[i] = art.Key(keycodec.Uint64(rng.Uint64()))
	}

	tree := art.New()
	start := time.Now()
	for i, k := range keys {
		tree.Insert(k, i)
	}
	insertElapsed := time.Since(start)

	start = time.Now()
	hits := 0
	for _, k := range keys {
		if _, ok := tree.Get(k); ok {
			hits++
		}
	}
	getElapsed := time.Since(start)

	stats := tree.Stats()
	fmt.Fprintf(os.Stdout, "inserted %d keys in %s (%d in tree)\n", *n, insertElapsed, tree.Len())
	fmt.Fprintf(os.Stdout, "looked up %d keys in %s (%d hits)\n", *n, getElapsed, hits)
	fmt.Fprintf(os.Stdout, "node4=%d node16=%d node48=%d node256=%d leaves=%d\n",
		stats.Node4, stats.Node16, stats.Node48, stats.Node256, stats.Leaves)

	it := tree.Iter()
	count := 0
	for it.Next() {
		count++
	}
	fmt.Fprintf(os.Stdout, "full ascending scan visited %d keys\n", count)
}
