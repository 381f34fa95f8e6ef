package aez

// tinyRounds returns the Feistel round count for a tiny (1..31 byte)
// message, per AEZ v5: 24 rounds for n=1, 16 for n=2, 10 for 3..15, 8 for
// 16..31.
func tinyRounds(n int) int {
	switch {
	case n == 1:
		return 24
	case n == 2:
		return 16
	case n < 16:
		return 10
	default:
		return 8
	}
}

// tinyLIndex selects the L basis block the aez-tiny round function mixes
// in: L7 for messages under 16 bytes, L6 otherwise.
func tinyLIndex(n int) int {
	if n < 16 {
		return 7
	}
	return 6
}

// tinyWhiten computes the sign bit folded into the short-message
// ciphertext's top bit: the MSB of AES4(0, I1, L3, (buf zero-padded to 16
// bytes with bit 0x80 forced onto the first byte) XOR delta). It is called
// once before the Feistel rounds on decipher (folding the ciphertext's
// stored sign bit out of L[0]) and once after them on encipher (folding the
// freshly computed sign bit into the ciphertext's first byte), so the two
// directions exactly undo each other.
func (st *State) tinyWhiten(buf []byte, delta block16) byte {
	var blk block16
	copy(blk[:], buf)
	blk[0] |= 0x80
	blk = xor16(delta, blk)
	tmp := st.aes4(zeroBlock, st.i1, st.l[3], blk)
	return tmp[0] & 0x80
}

// tinyCrypt runs the aez-tiny balanced Feistel network over buf in place.
// dir selects encipher (0) or decipher (1); the two directions share this
// routine, replaying the identical per-round AES4 calls in reverse order so
// that decipher always undoes what encipher did.
//
// For an odd-length message the two halves L and R overlap by one byte: R's
// copy of that shared byte is shifted left by a nibble (and the tail of L
// shifted correspondingly on the way back out) so the low nibble is free for
// a 0x08 domain-separator pad, instead of the 0x80 byte used when the halves
// don't share a byte.
func (st *State) tinyCrypt(delta block16, buf []byte, dir int) {
	n := len(buf)
	rounds := tinyRounds(n)
	lIdx := tinyLIndex(n)

	leftLen := (n + 1) / 2
	rightStart := n / 2
	mid := n / 2

	var L, R block16
	copy(L[:leftLen], buf[:leftLen])
	copy(R[:leftLen], buf[rightStart:rightStart+leftLen])

	pad := byte(0x80)
	mask := byte(0x00)
	if n%2 == 1 {
		half := n / 2
		for k := 0; k < half; k++ {
			R[k] = (R[k] << 4) | (R[k+1] >> 4)
		}
		R[half] = R[half] << 4
		pad = 0x08
		mask = 0xF0
	}

	if dir != 0 && n < 16 {
		sign := st.tinyWhiten(buf, delta)
		L[0] ^= sign
	}

	var j, step int
	if dir != 0 {
		j = rounds - 1
		step = -1
	} else {
		j = 0
		step = 1
	}

	for r := 0; r < rounds/2; r++ {
		var blk block16
		copy(blk[:leftLen], R[:leftLen])
		blk[mid] = (blk[mid] & mask) | pad
		blk = xor16(blk, delta)
		blk[15] ^= byte(j)
		tmp := st.aes4(zeroBlock, st.i1, st.l[lIdx], blk)
		L = xor16(L, tmp)

		blk = block16{}
		copy(blk[:leftLen], L[:leftLen])
		blk[mid] = (blk[mid] & mask) | pad
		blk = xor16(blk, delta)
		blk[15] ^= byte(j + step)
		tmp = st.aes4(zeroBlock, st.i1, st.l[lIdx], blk)
		R = xor16(R, tmp)

		j += step * 2
	}

	half := n / 2
	out := make([]byte, n)
	copy(out[:half], R[:half])
	copy(out[half:half+leftLen], L[:leftLen])
	if n%2 == 1 {
		for k := n - 1; k > half; k-- {
			out[k] = (out[k] >> 4) | (out[k-1] << 4)
		}
		out[half] = ((L[0] >> 4) & 0x0F) | (R[half] & 0xF0)
	}
	copy(buf, out)

	if dir == 0 && n < 16 {
		sign := st.tinyWhiten(buf, delta)
		buf[0] ^= sign
	}
}
