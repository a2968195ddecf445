package bitseg

import "testing"

var testWidths = []int{1, 3, 8, 9, 13, 64}

func TestSegmentCount(t *testing.T) {
	for n, want := range map[int]int{1: 1, 3: 1, 7: 1, 8: 1, 9: 2, 13: 2, 16: 2, 17: 3, 64: 8} {
		if got := SegmentCount(n); got != want {
			t.Errorf("SegmentCount(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestFill(t *testing.T) {
	for _, n := range testWidths {
		p := make([]byte, SegmentCount(n))
		Fill(p, n, true)
		if !All(p, n) {
			t.Errorf("n=%d: Fill(true) does not satisfy All", n)
		}
		if c := Count(p, n); c != n {
			t.Errorf("n=%d: Count after Fill(true) = %d, want %d", n, c, n)
		}
		// padding must stay zero so segment readback is clean.
		if n%8 != 0 && p[len(p)-1]&^partialMask(n) != 0 {
			t.Errorf("n=%d: Fill(true) left padding bits set: %#x", n, p[len(p)-1])
		}
		Fill(p, n, false)
		if !None(p, n) {
			t.Errorf("n=%d: Fill(false) does not satisfy None", n)
		}
		if c := Count(p, n); c != 0 {
			t.Errorf("n=%d: Count after Fill(false) = %d, want 0", n, c)
		}
	}
}

func TestGetSet(t *testing.T) {
	for _, n := range testWidths {
		p := make([]byte, SegmentCount(n))
		for i := 0; i < n; i++ {
			Set(p, i, true)
			if !Get(p, i) {
				t.Fatalf("n=%d: bit %d not set after Set(true)", n, i)
			}
			if c := Count(p, n); c != 1 {
				t.Fatalf("n=%d: Count = %d after setting single bit %d", n, c, i)
			}
			Set(p, i, false)
			if Get(p, i) {
				t.Fatalf("n=%d: bit %d still set after Set(false)", n, i)
			}
		}
		if !None(p, n) {
			t.Errorf("n=%d: sequence not empty after set/clear sweep", n)
		}
	}
}

func TestSetCrossSegment(t *testing.T) {
	p := make([]byte, SegmentCount(13))
	Set(p, 2, true)
	Set(p, 8, true)
	Set(p, 12, true)
	if p[0] != 0b00000100 || p[1] != 0b00010001 {
		t.Errorf("segments = %#08b %#08b, want 0b00000100 0b00010001", p[0], p[1])
	}
	for i, want := range []bool{false, false, true, false, false, false, false, false, true, false, false, false, true} {
		if Get(p, i) != want {
			t.Errorf("Get(%d) = %v, want %v", i, Get(p, i), want)
		}
	}
	if c := Count(p, 13); c != 3 {
		t.Errorf("Count = %d, want 3", c)
	}
}

func TestNotMasksPadding(t *testing.T) {
	for _, n := range testWidths {
		p := make([]byte, SegmentCount(n))
		Not(p, p, n)
		if !All(p, n) {
			t.Errorf("n=%d: Not of empty sequence does not satisfy All", n)
		}
		if n%8 != 0 && p[len(p)-1]&^partialMask(n) != 0 {
			t.Errorf("n=%d: Not left padding bits set: %#x", n, p[len(p)-1])
		}
		Not(p, p, n)
		if !None(p, n) {
			t.Errorf("n=%d: double Not is not identity", n)
		}
	}
}

func TestBinaryOps(t *testing.T) {
	const n = 13
	a := make([]byte, SegmentCount(n))
	b := make([]byte, SegmentCount(n))
	dst := make([]byte, SegmentCount(n))
	for _, i := range []int{0, 2, 8, 12} {
		Set(a, i, true)
	}
	for _, i := range []int{2, 3, 8} {
		Set(b, i, true)
	}
	And(dst, a, b)
	if dst[0] != 0b00000100 || dst[1] != 0b00000001 {
		t.Errorf("And = %#08b %#08b", dst[0], dst[1])
	}
	Or(dst, a, b)
	if dst[0] != 0b00001101 || dst[1] != 0b00010001 {
		t.Errorf("Or = %#08b %#08b", dst[0], dst[1])
	}
	Xor(dst, a, b)
	if dst[0] != 0b00001001 || dst[1] != 0b00010000 {
		t.Errorf("Xor = %#08b %#08b", dst[0], dst[1])
	}
}

// The predicates must not be confused by set padding bits, whatever
// upstream code stored there.
func TestDirtyPadding(t *testing.T) {
	for _, n := range testWidths {
		if n%8 == 0 {
			continue
		}
		p := make([]byte, SegmentCount(n))
		p[len(p)-1] = ^partialMask(n) // padding all ones, valid bits zero
		if !None(p, n) {
			t.Errorf("n=%d: None false with dirty padding", n)
		}
		if All(p, n) {
			t.Errorf("n=%d: All true with dirty padding", n)
		}
		if c := Count(p, n); c != 0 {
			t.Errorf("n=%d: Count = %d with dirty padding, want 0", n, c)
		}
		for i := range p {
			p[i] = 0xff
		}
		if !All(p, n) {
			t.Errorf("n=%d: All false with all bits and padding set", n)
		}
		if c := Count(p, n); c != n {
			t.Errorf("n=%d: Count = %d with dirty padding, want %d", n, c, n)
		}
		Mask(p, n)
		if p[len(p)-1] != partialMask(n) {
			t.Errorf("n=%d: Mask left %#08b, want %#08b", n, p[len(p)-1], partialMask(n))
		}
	}
}

func TestAllNoneBoundaries(t *testing.T) {
	for _, n := range testWidths {
		p := make([]byte, SegmentCount(n))
		Fill(p, n, true)
		Set(p, n-1, false) // drop only the last valid bit
		if All(p, n) {
			t.Errorf("n=%d: All true with last bit clear", n)
		}
		if None(p, n) && n > 1 {
			t.Errorf("n=%d: None true with %d bits set", n, n-1)
		}
		Fill(p, n, false)
		Set(p, 0, true)
		if None(p, n) {
			t.Errorf("n=%d: None true with first bit set", n)
		}
		if All(p, n) && n > 1 {
			t.Errorf("n=%d: All true with single bit set", n)
		}
	}
}
