// Package permtest holds helpers shared by the permutation and bit primitive
// tests.
package permtest

import (
	"iter"
	"math/bits"
	"testing"

	"golang.org/x/exp/rand"
)

// Seed is the default seed for tests that need one fixed stream.
const Seed = 0xDEAD_BEEF_F000_BA55

// Seeded returns a deterministic generator seeded with seed.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// FillMask folds idxs into a mask with bit i set for every index i, and
// returns it with the number of indices seen.
func FillMask(idxs iter.Seq[uint8]) (mask uint64, count int) {
	for idx := range idxs {
		mask |= 1 << idx
		count++
	}
	return mask, count
}

// Slice returns an iterator over s.
func Slice(s []uint8) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// AssertPermutation fails t unless idxs is exactly a permutation of [0, n).
func AssertPermutation(t testing.TB, n uint8, idxs iter.Seq[uint8]) {
	t.Helper()
	mask, count := FillMask(idxs)
	if count != int(n) {
		t.Errorf("expected %d indices, got %d", n, count)
	}
	want := ^uint64(0) >> (64 - uint(n))
	if mask != want {
		t.Errorf("indices do not cover [0, %d): mask %064b, missing %d", n, mask, bits.OnesCount64(want&^mask))
	}
}
