// Package select64 provides the bit primitives used by the bit scattering
// permutation: parallel bit deposit (pdep) and select, which finds the
// position of the k'th set bit of a 64-bit word.
//
// On amd64 and 386 CPUs with BMI2 the primitives run on the PDEP
// instruction; 386 composes the 64-bit select from two 32-bit deposits. The
// feature is detected once at process start through golang.org/x/sys/cpu;
// everywhere else, or when built with the purego tag, portable bit
// arithmetic produces identical results.
//
// Example:
//
//	select64.Select(0, 0b10110) // 1
//	select64.Select(1, 0b10110) // 2
//	select64.Select(2, 0b10110) // 4
package select64

import (
	"math/bits"

	"github.com/lanrat/fastperm/internal/debug"
)

// HasBMI2 reports whether the hardware deposit instruction is used.
func HasBMI2() bool {
	return hasBMI2
}

// Select returns the position of the idx'th set bit (counting from zero,
// least significant bit first) in mask.
//
// The result is unspecified when idx >= bits.OnesCount64(mask). Builds with
// the debug tag panic on that input instead.
func Select(idx uint8, mask uint64) uint8 {
	if debug.Enabled {
		assertSelectable(idx, mask)
	}
	if hasBMI2 {
		return selectBMI2(idx, mask)
	}
	return SelectFallback(idx, mask)
}

// SelectViaPdep32 computes Select with two 32-bit deposits, one per half of
// mask.
func SelectViaPdep32(idx uint8, mask uint64) uint8 {
	if debug.Enabled {
		assertSelectable(idx, mask)
	}
	lo := uint32(mask)
	hi := uint32(mask >> 32)
	loCount := uint8(bits.OnesCount32(lo))
	if idx < loCount {
		return uint8(bits.TrailingZeros32(Pdep32(1<<idx, lo)))
	}
	return uint8(bits.TrailingZeros32(Pdep32(1<<(idx-loCount), hi))) + 32
}

// SelectFallback computes Select without any special instructions.
//
// It builds the partial population counts of mask at 32, 16, 8, 4, 2 and 1
// bit granularity and then descends them like a binary search, narrowing the
// window that holds the idx'th set bit by half on every step.
func SelectFallback(idx uint8, mask uint64) uint8 {
	if debug.Enabled {
		assertSelectable(idx, mask)
	}
	b0 := mask
	b1 := (b0 & 0x5555_5555_5555_5555) + ((b0 >> 1) & 0x5555_5555_5555_5555)
	b2 := (b1 & 0x3333_3333_3333_3333) + ((b1 >> 2) & 0x3333_3333_3333_3333)
	b3 := (b2 + (b2 >> 4)) & 0x0F0F_0F0F_0F0F_0F0F
	b4 := (b3 + (b3 >> 8)) & 0x00FF_00FF_00FF_00FF
	b5 := (b4 + (b4 >> 16)) & 0x0000_FFFF_0000_FFFF
	// b5 + (b5 >> 32) would be the full popcount, which the descent never needs

	i := uint64(idx)
	var r uint

	if b := (b5 >> r) & 0xFFFF_FFFF; i >= b {
		i -= b
		r += 32
	}
	if b := (b4 >> r) & 0xFFFF; i >= b {
		i -= b
		r += 16
	}
	if b := (b3 >> r) & 0xFF; i >= b {
		i -= b
		r += 8
	}
	if b := (b2 >> r) & 0xF; i >= b {
		i -= b
		r += 4
	}
	if b := (b1 >> r) & 0x3; i >= b {
		i -= b
		r += 2
	}
	if b := (b0 >> r) & 0x1; i >= b {
		r++
	}
	return uint8(r)
}

// Pdep32Fallback deposits the low bits of src into the set bit positions of
// mask, in ascending order, one mask bit at a time.
func Pdep32Fallback(src, mask uint32) uint32 {
	var r uint32
	for bit := uint32(1); mask != 0; bit <<= 1 {
		if src&bit != 0 {
			// lowest set bit of mask
			r |= mask & -mask
		}
		mask &= mask - 1
	}
	return r
}

// Pdep64Fallback is the 64-bit form of Pdep32Fallback.
func Pdep64Fallback(src, mask uint64) uint64 {
	var r uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		if src&bit != 0 {
			r |= mask & -mask
		}
		mask &= mask - 1
	}
	return r
}

func assertSelectable(idx uint8, mask uint64) {
	debug.Assert(bits.OnesCount64(mask) > int(idx),
		"select is undefined when the index is greater than or equal to the number of set bits in the mask: index: %d, mask: %064b",
		idx, mask)
}
