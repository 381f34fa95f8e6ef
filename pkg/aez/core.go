package aez

// coreCrypt runs the two-pass aez-core wide-block construction over buf (at
// least 32 bytes) in place. dir selects encipher (0) or decipher (1); the
// two directions share nearly all of this routine and differ only in which
// of L[1] / L[2] is used for the "X" step versus the final-pair finish
// step, swapped between the two directions exactly as AEZ's own design
// intends (the construction is its own near-involution).
func (st *State) coreCrypt(delta block16, buf []byte, dir int) {
	n := len(buf)
	frag := n % 32
	initialLen := n - frag - 32

	pairs := buf[:initialLen]
	fragBytes := buf[initialLen : initialLen+frag]
	finalOff := initialLen + frag
	mFirst := toBlock(buf[finalOff : finalOff+16])
	mSecond := toBlock(buf[finalOff+16 : finalOff+32])

	var x block16
	if n >= 64 {
		x = st.corePass1(pairs)
	}

	switch {
	case frag >= 16:
		x = xor16(x, st.aes4(zeroBlock, st.i1, st.l[4], toBlock(fragBytes[:16])))
		x = xor16(x, st.aes4(zeroBlock, st.i1, st.l[5], oneZeroPad(fragBytes[16:], frag-16)))
	case frag > 0:
		x = xor16(x, st.aes4(zeroBlock, st.i1, st.l[4], oneZeroPad(fragBytes, frag)))
	}

	idx1 := (1 + dir) % 8
	firstDst := xor4(x, mFirst, delta, st.aes4(zeroBlock, st.i1, st.l[idx1], mSecond))
	secondDst := xor16(mSecond, st.aes10(st.l[idx1], firstDst))
	s := xor16(firstDst, secondDst)

	var y block16
	switch {
	case frag >= 16:
		first16 := fragBytes[:16]
		rest := fragBytes[16:]

		k1 := st.aes10(st.l[4], s)
		var enc1 block16
		for i := range first16 {
			enc1[i] = first16[i] ^ k1[i]
		}
		copy(first16, enc1[:])
		y = xor16(y, st.aes4(zeroBlock, st.i1, st.l[4], enc1))

		k2 := st.aes10(st.l[5], s)
		enc2 := make([]byte, len(rest))
		for i := range rest {
			enc2[i] = rest[i] ^ k2[i]
		}
		copy(rest, enc2)
		y = xor16(y, st.aes4(zeroBlock, st.i1, st.l[5], oneZeroPad(enc2, frag-16)))
	case frag > 0:
		k1 := st.aes10(st.l[4], s)
		enc1 := make([]byte, len(fragBytes))
		for i := range fragBytes {
			enc1[i] = fragBytes[i] ^ k1[i]
		}
		copy(fragBytes, enc1)
		y = xor16(y, st.aes4(zeroBlock, st.i1, st.l[4], oneZeroPad(enc1, frag)))
	}

	if n >= 64 {
		st.corePass2(pairs, s, &y)
	}

	idx2 := (2 - dir + 8) % 8
	newFirst := xor16(firstDst, st.aes10(st.l[idx2], secondDst))
	combined := xor4(st.aes4(zeroBlock, st.i1, st.l[idx2], newFirst), secondDst, delta, y)

	// The final pair's two slots are swapped: ciphertext layout is
	// (combined, updated-first-half).
	copy(buf[finalOff:finalOff+16], combined[:])
	copy(buf[finalOff+16:finalOff+32], newFirst[:])
}

// corePass1 processes pairs (a whole number of 32-byte blocks) in place,
// returning the accumulated X value. I' starts at I[1] and is doubled
// whenever the 1-indexed pair counter, after advancing, reaches a multiple of
// 8, so pairs 8, 16, ... are the first to see each new I' value (the
// doubling cadence here does not match aez-hash's: that walk doubles on the
// index it just finished with, this one doubles on the index it is about to
// use).
func (st *State) corePass1(pairs []byte) block16 {
	var x block16
	iPrime := st.i1
	i := 1
	for offset := 0; offset+32 <= len(pairs); offset += 32 {
		idx := i % 8
		first := pairs[offset : offset+16]
		second := pairs[offset+16 : offset+32]

		tmp := st.aes4(st.j0, iPrime, st.l[idx], toBlock(second))
		newFirst := xor16(toBlock(first), tmp)
		copy(first, newFirst[:])

		tmp2 := st.aes4(zeroBlock, st.i0, st.l[0], newFirst)
		newSecond := xor16(toBlock(second), tmp2)
		copy(second, newSecond[:])

		x = xor16(x, newSecond)

		i++
		if i%8 == 0 {
			double(&iPrime)
		}
	}
	return x
}

// corePass2 rewrites pairs using s, accumulating into y. Same I' cadence as
// corePass1.
func (st *State) corePass2(pairs []byte, s block16, y *block16) {
	iPrime := st.i1
	i := 1
	for offset := 0; offset+32 <= len(pairs); offset += 32 {
		idx := i % 8
		first := pairs[offset : offset+16]
		second := pairs[offset+16 : offset+32]

		w := st.aes4(st.j1, iPrime, st.l[idx], s)
		f := xor16(toBlock(first), w)
		sec := xor16(toBlock(second), w)
		*y = xor16(*y, f)

		f = xor16(f, st.aes4(zeroBlock, st.i0, st.l[0], sec))
		sec = xor16(sec, st.aes4(st.j0, iPrime, st.l[idx], f))

		// Swap the two slots, matching the pass-1 first/second naming.
		copy(first, sec[:])
		copy(second, f[:])

		i++
		if i%8 == 0 {
			double(&iPrime)
		}
	}
}

func toBlock(b []byte) block16 {
	var out block16
	copy(out[:], b)
	return out
}
