//go:build 386 && !purego

package select64

import "golang.org/x/sys/cpu"

// hasBMI2 is read on every call; x/sys/cpu fills it in once during init.
var hasBMI2 = cpu.X86.HasBMI2

// pdep32 is implemented in pdep_386.s. It must only be called when hasBMI2
// is set.
func pdep32(src, mask uint32) uint32

// Pdep32 deposits the low bits of src into the set bit positions of mask,
// using the PDEP instruction when the CPU supports it.
func Pdep32(src, mask uint32) uint32 {
	if hasBMI2 {
		return pdep32(src, mask)
	}
	return Pdep32Fallback(src, mask)
}

// Pdep64 is the 64-bit form of Pdep32. There is no 64-bit PDEP on 386.
func Pdep64(src, mask uint64) uint64 {
	return Pdep64Fallback(src, mask)
}

func selectBMI2(idx uint8, mask uint64) uint8 {
	return SelectViaPdep32(idx, mask)
}
