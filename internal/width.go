package internal

// Minimal-width little-endian integers.
// A value is stored in the fewest bytes that hold it exactly; the
// dropped bytes are the high-order zero bytes. Zero still takes one byte.

// MaxWidth is the widest value PutLE and LE handle.
const MaxWidth = 4

// MinWidth returns the smallest byte count (1..4) that represents v.
func MinWidth(v uint32) int {
	switch {
	case v <= 0xFF:
		return 1
	case v <= 0xFFFF:
		return 2
	case v <= 0xFFFFFF:
		return 3
	default:
		return 4
	}
}

// PutLE writes the low n bytes of v into dst in little-endian order and
// returns n. dst must have length >= n.
func PutLE(dst []byte, v uint32, n int) int {
	for i := 0; i < n; i++ {
		dst[i] = byte(v >> (8 * i))
	}
	return n
}

// LE reads a little-endian value of len(src) bytes, zero-extending it to 32
// bits. It returns false when src is longer than MaxWidth.
func LE(src []byte) (uint32, bool) {
	if len(src) > MaxWidth {
		return 0, false
	}
	var v uint32
	for i, b := range src {
		v |= uint32(b) << (8 * i)
	}
	return v, true
}
