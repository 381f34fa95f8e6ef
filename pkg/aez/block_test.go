package aez

import "testing"

func TestOneZeroPad(t *testing.T) {
	src := []byte{0x11, 0x22, 0x33, 0x44, 0x55}
	for n := 0; n <= len(src); n++ {
		blk := oneZeroPad(src, n)
		for i := 0; i < n; i++ {
			if blk[i] != src[i] {
				t.Fatalf("n=%d: byte %d = %#x, want %#x", n, i, blk[i], src[i])
			}
		}
		if n < 16 && blk[n] != 0x80 {
			t.Fatalf("n=%d: marker byte = %#x, want 0x80", n, blk[n])
		}
		for i := n + 1; i < 16; i++ {
			if blk[i] != 0 {
				t.Fatalf("n=%d: trailing byte %d = %#x, want 0", n, i, blk[i])
			}
		}
	}
}

func TestDoubleZeroIsZero(t *testing.T) {
	var z block16
	double(&z)
	if z != zeroBlock {
		t.Fatalf("double(0) = %x, want all zero", z)
	}
}

func TestDoubleLinear(t *testing.T) {
	a := block16{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10}
	b := block16{0xff, 0x00, 0xff, 0x00, 0xaa, 0x55, 0xaa, 0x55, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	ab := xor16(a, b)
	double(&ab)

	da, db := a, b
	double(&da)
	double(&db)
	want := xor16(da, db)

	if ab != want {
		t.Fatalf("double(a^b) = %x, want double(a)^double(b) = %x", ab, want)
	}
}

func TestDoubleCarry(t *testing.T) {
	p := block16{0x80}
	double(&p)
	want := block16{0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x87}
	if p != want {
		t.Fatalf("double of top-bit-set block = %x, want %x", p, want)
	}
}

func TestMultOne(t *testing.T) {
	src := block16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	got := mult(1, src)
	if got != src {
		t.Fatalf("mult(1, src) = %x, want %x", got, src)
	}
}

func TestMultTwoMatchesDouble(t *testing.T) {
	src := block16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	got := mult(2, src)
	want := doubled(src)
	if got != want {
		t.Fatalf("mult(2, src) = %x, want double(src) = %x", got, want)
	}
}

func TestIncrBECarries(t *testing.T) {
	ctr := block16{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff}
	incrBE(&ctr)
	want := block16{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0}
	if ctr != want {
		t.Fatalf("incrBE carry result = %x, want %x", ctr, want)
	}
}
