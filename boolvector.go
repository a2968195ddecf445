/*

Packed boolean vectors

*/

package gmath

import (
	"fmt"

	"github.com/soypat/gmath/internal/bitseg"
)

// errIndex describes an out of range component access.
func errIndex(i, size int) error {
	return fmt.Errorf("gmath: bit index %d out of range with length %d", i, size)
}

// BoolVector2 is a vector of two booleans packed into a single byte
// segment, component i in bit i. The zero value has all components
// false. Values compare with ==.
type BoolVector2 struct {
	data [1]byte
}

// NewBoolVector2 returns a vector with both components set to value.
func NewBoolVector2(value bool) BoolVector2 {
	var v BoolVector2
	bitseg.Fill(v.data[:], 2, value)
	return v
}

// BoolVector2FromSegment builds a vector from the low 2 bits of seg.
// Higher bits are discarded.
func BoolVector2FromSegment(seg byte) BoolVector2 {
	var v BoolVector2
	v.data[0] = seg
	bitseg.Mask(v.data[:], 2)
	return v
}

// Len returns the number of components, 2.
func (v BoolVector2) Len() int { return 2 }

// Segment returns the packed bit storage.
func (v BoolVector2) Segment() byte { return v.data[0] }

// Get returns component i. It panics if i is out of range.
func (v BoolVector2) Get(i int) bool {
	if i < 0 || i >= 2 {
		panic(errIndex(i, 2))
	}
	return bitseg.Get(v.data[:], i)
}

// Set sets component i to value. It panics if i is out of range.
func (v *BoolVector2) Set(i int, value bool) {
	if i < 0 || i >= 2 {
		panic(errIndex(i, 2))
	}
	bitseg.Set(v.data[:], i, value)
}

// Bool reports whether the vector is non-zero. Equivalent to Any.
func (v BoolVector2) Bool() bool { return v.Any() }

// All reports whether every component is true.
func (v BoolVector2) All() bool { return bitseg.All(v.data[:], 2) }

// None reports whether every component is false.
func (v BoolVector2) None() bool { return bitseg.None(v.data[:], 2) }

// Any reports whether at least one component is true.
func (v BoolVector2) Any() bool { return !bitseg.None(v.data[:], 2) }

// Count returns the number of true components.
func (v BoolVector2) Count() int { return bitseg.Count(v.data[:], 2) }

// Not returns the component-wise complement of v.
func (v BoolVector2) Not() BoolVector2 {
	bitseg.Not(v.data[:], v.data[:], 2)
	return v
}

// And returns the component-wise AND of v and w.
func (v BoolVector2) And(w BoolVector2) BoolVector2 {
	bitseg.And(v.data[:], v.data[:], w.data[:])
	return v
}

// Or returns the component-wise OR of v and w.
func (v BoolVector2) Or(w BoolVector2) BoolVector2 {
	bitseg.Or(v.data[:], v.data[:], w.data[:])
	return v
}

// Xor returns the component-wise XOR of v and w.
func (v BoolVector2) Xor(w BoolVector2) BoolVector2 {
	bitseg.Xor(v.data[:], v.data[:], w.data[:])
	return v
}

// String implements fmt.Stringer.
func (v BoolVector2) String() string {
	return fmt.Sprintf("BoolVector2(0b%02b)", v.data[0])
}

// BoolVector3 is a vector of three booleans packed into a single byte
// segment, component i in bit i. The zero value has all components
// false. Values compare with ==.
type BoolVector3 struct {
	data [1]byte
}

// NewBoolVector3 returns a vector with all three components set to value.
func NewBoolVector3(value bool) BoolVector3 {
	var v BoolVector3
	bitseg.Fill(v.data[:], 3, value)
	return v
}

// BoolVector3FromSegment builds a vector from the low 3 bits of seg.
// Higher bits are discarded.
func BoolVector3FromSegment(seg byte) BoolVector3 {
	var v BoolVector3
	v.data[0] = seg
	bitseg.Mask(v.data[:], 3)
	return v
}

// Len returns the number of components, 3.
func (v BoolVector3) Len() int { return 3 }

// Segment returns the packed bit storage.
func (v BoolVector3) Segment() byte { return v.data[0] }

// Get returns component i. It panics if i is out of range.
func (v BoolVector3) Get(i int) bool {
	if i < 0 || i >= 3 {
		panic(errIndex(i, 3))
	}
	return bitseg.Get(v.data[:], i)
}

// Set sets component i to value. It panics if i is out of range.
func (v *BoolVector3) Set(i int, value bool) {
	if i < 0 || i >= 3 {
		panic(errIndex(i, 3))
	}
	bitseg.Set(v.data[:], i, value)
}

// Bool reports whether the vector is non-zero. Equivalent to Any.
func (v BoolVector3) Bool() bool { return v.Any() }

// All reports whether every component is true.
func (v BoolVector3) All() bool { return bitseg.All(v.data[:], 3) }

// None reports whether every component is false.
func (v BoolVector3) None() bool { return bitseg.None(v.data[:], 3) }

// Any reports whether at least one component is true.
func (v BoolVector3) Any() bool { return !bitseg.None(v.data[:], 3) }

// Count returns the number of true components.
func (v BoolVector3) Count() int { return bitseg.Count(v.data[:], 3) }

// Not returns the component-wise complement of v.
func (v BoolVector3) Not() BoolVector3 {
	bitseg.Not(v.data[:], v.data[:], 3)
	return v
}

// And returns the component-wise AND of v and w.
func (v BoolVector3) And(w BoolVector3) BoolVector3 {
	bitseg.And(v.data[:], v.data[:], w.data[:])
	return v
}

// Or returns the component-wise OR of v and w.
func (v BoolVector3) Or(w BoolVector3) BoolVector3 {
	bitseg.Or(v.data[:], v.data[:], w.data[:])
	return v
}

// Xor returns the component-wise XOR of v and w.
func (v BoolVector3) Xor(w BoolVector3) BoolVector3 {
	bitseg.Xor(v.data[:], v.data[:], w.data[:])
	return v
}

// String implements fmt.Stringer.
func (v BoolVector3) String() string {
	return fmt.Sprintf("BoolVector3(0b%03b)", v.data[0])
}

// BoolVector4 is a vector of four booleans packed into a single byte
// segment, component i in bit i. The zero value has all components
// false. Values compare with ==.
type BoolVector4 struct {
	data [1]byte
}

// NewBoolVector4 returns a vector with all four components set to value.
func NewBoolVector4(value bool) BoolVector4 {
	var v BoolVector4
	bitseg.Fill(v.data[:], 4, value)
	return v
}

// BoolVector4FromSegment builds a vector from the low 4 bits of seg.
// Higher bits are discarded.
func BoolVector4FromSegment(seg byte) BoolVector4 {
	var v BoolVector4
	v.data[0] = seg
	bitseg.Mask(v.data[:], 4)
	return v
}

// Len returns the number of components, 4.
func (v BoolVector4) Len() int { return 4 }

// Segment returns the packed bit storage.
func (v BoolVector4) Segment() byte { return v.data[0] }

// Get returns component i. It panics if i is out of range.
func (v BoolVector4) Get(i int) bool {
	if i < 0 || i >= 4 {
		panic(errIndex(i, 4))
	}
	return bitseg.Get(v.data[:], i)
}

// Set sets component i to value. It panics if i is out of range.
func (v *BoolVector4) Set(i int, value bool) {
	if i < 0 || i >= 4 {
		panic(errIndex(i, 4))
	}
	bitseg.Set(v.data[:], i, value)
}

// Bool reports whether the vector is non-zero. Equivalent to Any.
func (v BoolVector4) Bool() bool { return v.Any() }

// All reports whether every component is true.
func (v BoolVector4) All() bool { return bitseg.All(v.data[:], 4) }

// None reports whether every component is false.
func (v BoolVector4) None() bool { return bitseg.None(v.data[:], 4) }

// Any reports whether at least one component is true.
func (v BoolVector4) Any() bool { return !bitseg.None(v.data[:], 4) }

// Count returns the number of true components.
func (v BoolVector4) Count() int { return bitseg.Count(v.data[:], 4) }

// Not returns the component-wise complement of v.
func (v BoolVector4) Not() BoolVector4 {
	bitseg.Not(v.data[:], v.data[:], 4)
	return v
}

// And returns the component-wise AND of v and w.
func (v BoolVector4) And(w BoolVector4) BoolVector4 {
	bitseg.And(v.data[:], v.data[:], w.data[:])
	return v
}

// Or returns the component-wise OR of v and w.
func (v BoolVector4) Or(w BoolVector4) BoolVector4 {
	bitseg.Or(v.data[:], v.data[:], w.data[:])
	return v
}

// Xor returns the component-wise XOR of v and w.
func (v BoolVector4) Xor(w BoolVector4) BoolVector4 {
	bitseg.Xor(v.data[:], v.data[:], w.data[:])
	return v
}

// String implements fmt.Stringer.
func (v BoolVector4) String() string {
	return fmt.Sprintf("BoolVector4(0b%04b)", v.data[0])
}
