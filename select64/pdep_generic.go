//go:build !(amd64 || 386) || purego

package select64

const hasBMI2 = false

func selectBMI2(idx uint8, mask uint64) uint8 {
	return SelectFallback(idx, mask)
}

// Pdep32 deposits the low bits of src into the set bit positions of mask.
// Without hardware support it is Pdep32Fallback.
func Pdep32(src, mask uint32) uint32 {
	return Pdep32Fallback(src, mask)
}

// Pdep64 is the 64-bit form of Pdep32.
func Pdep64(src, mask uint64) uint64 {
	return Pdep64Fallback(src, mask)
}
