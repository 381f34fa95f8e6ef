package aez

// PRF fills out with AEZ's counter-mode pseudo-random stream derived from
// delta: out[i] comes from AES10(L3, delta ^ ctr) for a 16-byte big-endian
// counter starting at zero and incremented once per 16-byte block, with a
// final partial block truncated. It is used only to compute the integrity
// tag for zero-length plaintexts (tag-only ciphertexts).
func (st *State) PRF(delta block16, out []byte) {
	var ctr block16
	for offset := 0; offset < len(out); offset += 16 {
		in := xor16(delta, ctr)
		blk := st.aes10(st.l[3], in)
		n := copy(out[offset:], blk[:])
		_ = n
		incrBE(&ctr)
	}
}
