package aez

import "golang.org/x/crypto/blake2b"

// ExtractedKeySize is the length of an AEZ extracted key in bytes.
const ExtractedKeySize = 48

// State holds one AEZ key schedule: the I/J/L tweak basis plus the derived
// AES round schedules. A State is built once per key via NewState and owns
// no state beyond that key; it may be reused across many Encipher/Decipher
// calls with different nonces and associated data, but must not be shared
// across goroutines performing concurrent decodes without external locking.
type State struct {
	i0, i1     block16
	j0, j1, j2 block16
	l          [8]block16
	keys10     keys10
	keys4      keys4
}

// ExtractKey derives the 48-byte AEZ extracted key from an arbitrary-length
// input key: the identity function when key is already 48 bytes, otherwise
// BLAKE2b with a 48-byte digest size.
func ExtractKey(key []byte) [ExtractedKeySize]byte {
	var out [ExtractedKeySize]byte
	if len(key) == ExtractedKeySize {
		copy(out[:], key)
		return out
	}
	h, err := blake2b.New(ExtractedKeySize, nil)
	if err != nil {
		// Only occurs for an out-of-range digest size, which
		// ExtractedKeySize never is.
		panic(err)
	}
	h.Write(key)
	sum := h.Sum(nil)
	copy(out[:], sum)
	return out
}

// NewState extracts key (any length) and builds the full AEZ key schedule.
func NewState(key []byte) *State {
	extracted := ExtractKey(key)
	st := &State{}

	copy(st.i0[:], extracted[0:16])
	st.i1 = doubled(st.i0)

	copy(st.j0[:], extracted[16:32])
	st.j1 = doubled(st.j0)
	st.j2 = doubled(st.j1)

	var l1 block16
	copy(l1[:], extracted[32:48])
	l2 := doubled(l1)
	l3 := xor16(l2, l1)
	l4 := doubled(l2)
	l5 := xor16(l4, l1)
	l6 := doubled(l3)
	l7 := xor16(l6, l1)

	st.l = [8]block16{zeroBlock, l1, l2, l3, l4, l5, l6, l7}
	st.keys10, st.keys4 = buildSchedules(extracted[:])

	return st
}

// Reset zeroizes the key schedule on a best-effort basis. Callers should
// invoke it once a State is no longer needed.
func (st *State) Reset() {
	st.i0 = zeroBlock
	st.i1 = zeroBlock
	st.j0 = zeroBlock
	st.j1 = zeroBlock
	st.j2 = zeroBlock
	for i := range st.l {
		st.l[i] = zeroBlock
	}
	for i := range st.keys10 {
		st.keys10[i] = 0
	}
	for i := range st.keys4 {
		st.keys4[i] = 0
	}
}
