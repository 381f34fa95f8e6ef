package aez

import (
	"bytes"
	"testing"
)

// TestEncipherDecipherRoundTrip locks in the core invariant from the AEZ
// design: Decipher(Encipher(m)) == m, for every length class the dispatch
// logic distinguishes (aez-tiny odd/even, under/over 16 bytes, and
// aez-core with no fragment, a short fragment and a long fragment).
func TestEncipherDecipherRoundTrip(t *testing.T) {
	lengths := []int{1, 2, 15, 16, 31, 32, 33, 47, 48, 64, 65}
	key := testKey()

	for _, n := range lengths {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i*31 + n)
		}

		st := NewState(key)
		delta := st.Hash([]byte("nonce"), [][]byte{[]byte("ad")}, 32)

		buf := make([]byte, n)
		copy(buf, msg)
		st.Encipher(delta, buf)

		if n >= 1 && bytes.Equal(buf, msg) {
			t.Fatalf("n=%d: Encipher produced identical output to input", n)
		}

		st2 := NewState(key)
		delta2 := st2.Hash([]byte("nonce"), [][]byte{[]byte("ad")}, 32)
		st2.Decipher(delta2, buf)

		if !bytes.Equal(buf, msg) {
			t.Fatalf("n=%d: Decipher(Encipher(m)) = %x, want %x", n, buf, msg)
		}
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := testKey()
	ad := [][]byte{{0x00}, []byte("salt-bytes")}
	const tau = 4

	for _, n := range []int{0, 1, 15, 19, 32, 100} {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i + 1)
		}

		ct := Encrypt(key, ad, tau, msg)
		if len(ct) != n+tau {
			t.Fatalf("n=%d: ciphertext length = %d, want %d", n, len(ct), n+tau)
		}

		pt, err := Decrypt(key, ad, tau, ct)
		if err != nil {
			t.Fatalf("n=%d: Decrypt failed: %v", n, err)
		}
		if !bytes.Equal(pt, msg) {
			t.Fatalf("n=%d: Decrypt(Encrypt(m)) = %x, want %x", n, pt, msg)
		}
	}
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	key := testKey()
	ad := [][]byte{[]byte("ad")}
	const tau = 4

	ct := Encrypt(key, ad, tau, []byte("hello world, aez"))
	ct[0] ^= 0x01

	if _, err := Decrypt(key, ad, tau, ct); err != ErrAuthFailed {
		t.Fatalf("Decrypt on tampered ciphertext = %v, want ErrAuthFailed", err)
	}
}

func TestDecryptRejectsWrongAD(t *testing.T) {
	key := testKey()
	const tau = 4

	ct := Encrypt(key, [][]byte{[]byte("correct")}, tau, []byte("payload"))
	if _, err := Decrypt(key, [][]byte{[]byte("wrong")}, tau, ct); err != ErrAuthFailed {
		t.Fatalf("Decrypt with mismatched AD = %v, want ErrAuthFailed", err)
	}
}

func TestDecryptEmptyMessageTagOnly(t *testing.T) {
	key := testKey()
	ad := [][]byte{[]byte("ad")}
	const tau = 4

	ct := Encrypt(key, ad, tau, nil)
	if len(ct) != tau {
		t.Fatalf("empty-message ciphertext length = %d, want %d", len(ct), tau)
	}
	pt, err := Decrypt(key, ad, tau, ct)
	if err != nil {
		t.Fatalf("Decrypt of tag-only ciphertext failed: %v", err)
	}
	if len(pt) != 0 {
		t.Fatalf("Decrypt of tag-only ciphertext returned %d bytes, want 0", len(pt))
	}

	ct[0] ^= 0xff
	if _, err := Decrypt(key, ad, tau, ct); err != ErrAuthFailed {
		t.Fatalf("Decrypt of tampered tag-only ciphertext = %v, want ErrAuthFailed", err)
	}
}
