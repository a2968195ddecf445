/*

Packed bit segment manipulation routines.

A bit sequence of length n is stored least significant bit first in
ceil(n/8) bytes, its segments. Bits at positions >= n in the final
segment are padding. The predicates below treat padding bits as zero
whatever their stored value; the mutators always leave padding zeroed.

*/

package bitseg

import "math/bits"

// SegmentCount returns the number of segment bytes needed to store n bits.
func SegmentCount(n int) int {
	return (n + 7) / 8
}

// partialMask is the mask of the valid bits in a final, partially used
// segment. Only meaningful when n%8 != 0.
func partialMask(n int) byte {
	return byte(1<<(n%8)) - 1
}

// Mask clears the padding bits of a sequence of n bits stored in p.
func Mask(p []byte, n int) {
	if n%8 != 0 {
		p[len(p)-1] &= partialMask(n)
	}
}

// Fill sets the first n bits of p to value and clears the padding bits.
func Fill(p []byte, n int, value bool) {
	var seg byte
	if value {
		seg = 0xff
	}
	for i := range p {
		p[i] = seg
	}
	Mask(p, n)
}

// Get reports the bit at position i. The position must be within the
// segments of p.
func Get(p []byte, i int) bool {
	return p[i/8]>>(i%8)&1 != 0
}

// Set sets the bit at position i to value. The position must be within
// the segments of p.
func Set(p []byte, i int, value bool) {
	if value {
		p[i/8] |= 1 << (i % 8)
	} else {
		p[i/8] &^= 1 << (i % 8)
	}
}

// And stores a AND b into dst, segment-wise. All three must have equal length.
func And(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// Or stores a OR b into dst, segment-wise. All three must have equal length.
func Or(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// Xor stores a XOR b into dst, segment-wise. All three must have equal length.
func Xor(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// Not stores the complement of the first n bits of src into dst and
// clears the padding bits. dst and src must have equal length and may alias.
func Not(dst, src []byte, n int) {
	for i := range dst {
		dst[i] = ^src[i]
	}
	Mask(dst, n)
}

// All reports whether the first n bits of p are all set.
func All(p []byte, n int) bool {
	for i := 0; i < n/8; i++ {
		if p[i] != 0xff {
			return false
		}
	}
	if n%8 != 0 {
		m := partialMask(n)
		return p[len(p)-1]&m == m
	}
	return true
}

// None reports whether none of the first n bits of p are set.
func None(p []byte, n int) bool {
	for i := 0; i < n/8; i++ {
		if p[i] != 0 {
			return false
		}
	}
	if n%8 != 0 {
		return p[len(p)-1]&partialMask(n) == 0
	}
	return true
}

// Count returns the number of set bits among the first n bits of p.
func Count(p []byte, n int) int {
	c := 0
	for i := 0; i < n/8; i++ {
		c += bits.OnesCount8(p[i])
	}
	if n%8 != 0 {
		c += bits.OnesCount8(p[len(p)-1] & partialMask(n))
	}
	return c
}
