// Package aez implements the AEZ v5 wide-block authenticated cipher
// (Hoang, Krovetz, Rogaway), restricted to the single-AD, 4-byte-tag
// configuration used by the aezeed cipher-seed format.
//
// Only the Decipher direction is required by callers; Encipher is kept
// alongside it so the two remain mirror images of each other and so tests
// can exercise the round-trip invariant Decipher(Encipher(m)) == m.
package aez

// block16 is a single 16-byte AEZ block, treated as an element of GF(2^128)
// under double.
type block16 = [16]byte

var zeroBlock block16

// xor16 returns a ^ b.
func xor16(a, b block16) block16 {
	var out block16
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// xor16into XORs src into dst in place.
func xor16into(dst *block16, src block16) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// xor4 computes a ^ b ^ c ^ d in one pass.
func xor4(a, b, c, d block16) block16 {
	var out block16
	for i := range out {
		out[i] = a[i] ^ b[i] ^ c[i] ^ d[i]
	}
	return out
}

// double multiplies p by x in GF(2^128) using AEZ's big-endian bit
// convention: the MSB of byte 0 is the high bit of the field element.
func double(p *block16) {
	tmp := p[0]
	for i := 0; i < 15; i++ {
		p[i] = (p[i] << 1) | (p[i+1] >> 7)
	}
	p[15] <<= 1
	if tmp&0x80 != 0 {
		p[15] ^= 0x87
	}
}

// doubled returns a doubled copy of p, leaving p unchanged.
func doubled(p block16) block16 {
	double(&p)
	return p
}

// mult computes x * src in GF(2^128) via double-and-add, scanning x from
// its least significant bit to its most significant.
func mult(x int, src block16) block16 {
	var dst block16
	cur := src
	for x > 0 {
		if x&1 == 1 {
			xor16into(&dst, cur)
		}
		double(&cur)
		x >>= 1
	}
	return dst
}

// oneZeroPad packs src (n <= 16 bytes) into a 16-byte block followed by a
// single 0x80 byte and zeros: dst[0:n] = src[0:n], dst[n] = 0x80, the rest
// zero. For n == 16 the block is filled by src and no 0x80 marker is written.
func oneZeroPad(src []byte, n int) block16 {
	var dst block16
	copy(dst[:n], src[:n])
	if n < 16 {
		dst[n] = 0x80
	}
	return dst
}

// incrBE increments a 16-byte big-endian counter by one, propagating carry
// from byte 15 down to byte 0.
func incrBE(ctr *block16) {
	for i := 15; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}
