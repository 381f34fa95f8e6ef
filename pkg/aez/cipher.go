package aez

import (
	"crypto/subtle"
	"errors"
)

// ErrAuthFailed is returned by Decrypt when the AEZ authentication tag does
// not verify. It carries no further detail, matching AEZ's design intent
// that a verifier cannot distinguish the many ways a ciphertext can be
// invalid.
var ErrAuthFailed = errors.New("aez: message authentication failed")

// Encipher applies the length-dispatched AEZ wide-block cipher to buf in
// place: aez-tiny for 1..31 bytes, aez-core for 32 bytes and up. It exists
// so tests can exercise the round-trip invariant Decipher(Encipher(m)) == m;
// it is not part of the decode pipeline's runtime surface.
func (st *State) Encipher(delta block16, buf []byte) {
	st.crypt(delta, buf, 0)
}

// Decipher applies the inverse of Encipher to buf in place.
func (st *State) Decipher(delta block16, buf []byte) {
	st.crypt(delta, buf, 1)
}

func (st *State) crypt(delta block16, buf []byte, dir int) {
	if len(buf) == 0 {
		return
	}
	if len(buf) < 32 {
		st.tinyCrypt(delta, buf, dir)
		return
	}
	st.coreCrypt(delta, buf, dir)
}

// Encrypt seals plaintext under key with associated data ad and a tau-byte
// expansion, returning ciphertext = Encipher(plaintext || 0^tau). It is
// provided only to exercise round-trip tests against Decrypt; the decode
// pipeline never calls it.
func Encrypt(key []byte, ad [][]byte, tau int, plaintext []byte) []byte {
	st := NewState(key)
	defer st.Reset()

	delta := st.Hash(nil, ad, tau*8)

	if len(plaintext) == 0 {
		out := make([]byte, tau)
		st.PRF(delta, out)
		return out
	}

	buf := make([]byte, len(plaintext)+tau)
	copy(buf, plaintext)
	st.Encipher(delta, buf)
	return buf
}

// Decrypt implements AEZ's decrypt driver: it dispatches on ciphertext
// length, verifies the tau-byte authentication tag using a constant-time
// OR-reduction, and returns the plaintext or ErrAuthFailed.
func Decrypt(key []byte, ad [][]byte, tau int, ciphertext []byte) ([]byte, error) {
	st := NewState(key)
	defer st.Reset()

	delta := st.Hash(nil, ad, tau*8)

	if len(ciphertext) < tau {
		return nil, ErrAuthFailed
	}
	if len(ciphertext) == tau {
		stream := make([]byte, tau)
		st.PRF(delta, stream)
		if subtle.ConstantTimeCompare(stream, ciphertext) != 1 {
			return nil, ErrAuthFailed
		}
		return []byte{}, nil
	}

	buf := make([]byte, len(ciphertext))
	copy(buf, ciphertext)
	st.Decipher(delta, buf)

	tagStart := len(buf) - tau
	if !tagIsZero(buf[tagStart:]) {
		return nil, ErrAuthFailed
	}
	return buf[:tagStart], nil
}

// tagIsZero reports whether tag is all-zero, using a single OR-reduction so
// no early-exit branch leaks which byte first differs from zero.
func tagIsZero(tag []byte) bool {
	var acc byte
	for _, b := range tag {
		acc |= b
	}
	return acc == 0
}
