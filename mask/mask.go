// Package mask provides the bit counting primitives used to locate a segment
// within a 32-bit half.
//
// A mask describes a segment by its set bits. Only masks whose set bits form a
// single contiguous run are meaningful:
//
//  | 31 ............................ 0 | Width | Shift |
//  |-----------------------------------|-------|-------|
//  | 1111 0000 0000 0000 0000 0000 0000 |     4 |    28 |
//  | 0000 0000 0000 0000 0000 0000 0001 |     1 |     0 |
//  | 0111 1111 1111 1111 1111 1111 1110 |    30 |     1 |
//  | 0000 0000 0000 0000 0000 0000 0000 |     0 |    32 | (invalid)
//  | 0000 0000 0000 0000 0000 0000 0101 |     2 |     0 | (invalid)
package mask

import "math/bits"

// TrailingZeros returns the number of zero bits below the lowest set bit of
// x. It returns 32 when x is zero.
func TrailingZeros(x uint32) int {
	return bits.TrailingZeros32(x)
}

// LeadingZeros returns the number of zero bits above the highest set bit of
// x. It returns 32 when x is zero.
func LeadingZeros(x uint32) int {
	return bits.LeadingZeros32(x)
}

// Width returns the number of set bits in x.
func Width(x uint32) int {
	return bits.OnesCount32(x)
}

// Single returns true if exactly one bit is set in x.
func Single(x uint32) bool {
	return TrailingZeros(x)+LeadingZeros(x) == 31
}

// Contiguous returns true if x is non-zero and its set bits form one run.
func Contiguous(x uint32) bool {
	if x == 0 {
		return false
	}

	// Shifting the run down to bit 0 must leave a value of the form 2^n-1.
	v := x >> TrailingZeros(x)

	return v&(v+1) == 0
}

// Span returns the positions of the highest and lowest set bits of x. Both
// are -1 when x is zero.
func Span(x uint32) (hi, lo int) {
	if x == 0 {
		return -1, -1
	}

	return 31 - LeadingZeros(x), TrailingZeros(x)
}

// Extract returns the bits of word selected by m shifted down to bit 0.
func Extract(word, m uint32) uint32 {
	if m == 0 {
		return 0
	}

	return (word & m) >> TrailingZeros(m)
}

// Insert shifts v up to the position of m. Bits of v that do not fit in m
// are dropped.
func Insert(v, m uint32) uint32 {
	if m == 0 {
		return 0
	}

	return (v << TrailingZeros(m)) & m
}
