// Package fastperm generates uniformly random permutations of small index
// sets {0, ..., n-1} with 1 <= n <= 64.
//
// Four interchangeable strategies implement the Permutation interface:
//   - Shuffle: Fisher-Yates over a slice, reshuffled every n draws
//   - ShuffleArray: the same over a fixed 64 slot array
//   - ShuffleArrayIncremental: an inside-out shuffle doing O(1) work per draw
//   - BitScatter: sampling without replacement from a single uint64 mask
//
// Every strategy draws indices cyclically: once a permutation has been fully
// consumed, the next draw silently starts a new one. Any n consecutive draws
// taken right after a reset form a permutation of {0, ..., n-1}.
//
// Generators are deterministic for a deterministic Source and are not safe
// for concurrent use. Each generator owns its Source; sharing a Source or a
// generator between goroutines without external locking is a data race.
//
// This package does not provide cryptographic randomness, and the range
// reduction from random words to indices has a small, accepted bias.
//
// Example usage:
//
//	src := rand.New(rand.NewSource(42)) // golang.org/x/exp/rand
//	p := fastperm.NewBitScatter(src, 52)
//	for idx := range fastperm.Cycle(p) {
//	    // idx visits every value in [0, 52) exactly once
//	}
package fastperm

import (
	"fmt"
	"iter"
)

// MaxPeriod is the largest supported period.
const MaxPeriod = 64

// Source is the randomness a generator draws from. It is satisfied by
// *rand.Rand from golang.org/x/exp/rand, math/rand and math/rand/v2.
type Source interface {
	// Uint32 returns a pseudo-random 32-bit value.
	Uint32() uint32
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// Permutation is the operation set shared by every strategy.
type Permutation interface {
	// Period returns n, the size of the permuted index set.
	Period() uint8
	// NextIndex returns the next index in [0, n) of the current cycle,
	// starting a new cycle first when the current one is exhausted.
	NextIndex() uint8
	// Reset discards the current cycle. The next n calls to NextIndex
	// return a permutation of [0, n).
	Reset()
}

// Cycle returns an iterator over exactly one period of p. p is reset each
// time the iterator is ranged over.
func Cycle(p Permutation) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		p.Reset()
		for range p.Period() {
			if !yield(p.NextIndex()) {
				return
			}
		}
	}
}

// Forever returns an iterator that draws from p until the caller stops.
// p is reset each time the iterator is ranged over.
func Forever(p Permutation) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		p.Reset()
		for yield(p.NextIndex()) {
		}
	}
}

// identity is copied into every array backed generator.
var identity = func() (a [MaxPeriod]uint8) {
	for i := range a {
		a[i] = uint8(i)
	}
	return a
}()

func checkPeriod(n uint8) {
	if n == 0 || n > MaxPeriod {
		panic(fmt.Sprintf("fastperm: period %d out of range [1, %d]", n, MaxPeriod))
	}
}

// indexMask returns a mask with the low n bits set, 1 <= n <= 64.
func indexMask(n uint8) uint64 {
	return ^uint64(0) >> (MaxPeriod - uint(n))
}

// fastmap32 maps x into [0, n) with a multiply and shift instead of a
// modulo. It is slightly biased when n is not a power of two, which is
// negligible for n <= 64.
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func fastmap32(x, n uint32) uint32 {
	return uint32((uint64(x) * uint64(n)) >> 32)
}
