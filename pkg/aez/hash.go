package aez

import "encoding/binary"

// Hash implements AEZ-hash: a tweakable almost-XOR-universal hash of a
// nonce and an ordered sequence of associated-data strings, producing a
// 16-byte delta. tauBits is the tag length in bits, not bytes. Order of ad
// is significant; an empty string inside ad still contributes a nonzero
// term, while a nil or empty ad list contributes nothing.
func (st *State) Hash(nonce []byte, ad [][]byte, tauBits int) block16 {
	var initBlock block16
	binary.BigEndian.PutUint32(initBlock[12:16], uint32(tauBits))
	delta := st.aes4(xor16(st.j0, st.j1), st.i1, st.l[1], initBlock)

	delta = xor16(delta, st.hashWalk(st.j2, nonce))

	for k, a := range ad {
		jk := mult(5+k, st.j0)
		delta = xor16(delta, st.hashWalk(jk, a))
	}
	return delta
}

// hashWalk processes data in 16-byte blocks under tweak jx, doubling the
// nonce-side I' basis every 8 blocks, and folds in a padded tail block
// (using the fixed I0/L0 basis) for any remainder, or for empty data.
//
// The doubling check runs on the index just used, before it advances to the
// next block - the 8th block of a walk (index 0 mod 8) is processed under
// the not-yet-doubled I', and the double happens right after, so it is the
// 9th block that sees the doubled value. This is the opposite order from
// aez-core's pair walk, which advances its counter before checking it.
func (st *State) hashWalk(jx block16, data []byte) block16 {
	var acc block16
	cur := st.i1
	i := 1
	offset := 0
	for len(data)-offset >= 16 {
		var blk block16
		copy(blk[:], data[offset:offset+16])
		acc = xor16(acc, st.aes4(jx, cur, st.l[i%8], blk))
		offset += 16
		if i%8 == 0 {
			double(&cur)
		}
		i++
	}

	remainder := data[offset:]
	if len(remainder) > 0 || len(data) == 0 {
		padded := oneZeroPad(remainder, len(remainder))
		acc = xor16(acc, st.aes4(jx, st.i0, st.l[0], padded))
	}
	return acc
}
