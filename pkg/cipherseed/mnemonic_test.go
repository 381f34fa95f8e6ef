package cipherseed

import (
	"fmt"
	"testing"
)

// testWordList builds a synthetic but well-formed 2048-entry word list. This
// package does not load the canonical BIP39 English corpus (that's an
// explicitly out-of-scope collaborator, see WordList), so tests exercise the
// packing/unpacking and decode logic against this instead.
func testWordList(t *testing.T) *SliceWordList {
	t.Helper()
	words := make([]string, wordListSize)
	for i := range words {
		words[i] = fmt.Sprintf("word%04d", i)
	}
	wl, err := NewSliceWordList(words)
	if err != nil {
		t.Fatalf("NewSliceWordList: %v", err)
	}
	return wl
}

func TestMnemonicBytesRoundTrip(t *testing.T) {
	wl := testWordList(t)

	var raw [EncipheredCipherSeedSize]byte
	for i := range raw {
		raw[i] = byte(i*37 + 11)
	}

	words, err := bytesToMnemonic(raw, wl)
	if err != nil {
		t.Fatalf("bytesToMnemonic: %v", err)
	}
	if len(words) != WordCount {
		t.Fatalf("got %d words, want %d", len(words), WordCount)
	}

	got, err := mnemonicToBytes(words, wl)
	if err != nil {
		t.Fatalf("mnemonicToBytes: %v", err)
	}
	if got != raw {
		t.Fatalf("round trip mismatch: got %x, want %x", got, raw)
	}
}

func TestMnemonicToBytesRejectsWrongWordCount(t *testing.T) {
	wl := testWordList(t)
	words := make([]string, WordCount-1)
	for i := range words {
		words[i] = "word0000"
	}
	if _, err := mnemonicToBytes(words, wl); err == nil {
		t.Fatal("expected error for wrong word count")
	}
}

func TestMnemonicToBytesRejectsUnknownWord(t *testing.T) {
	wl := testWordList(t)
	words := make([]string, WordCount)
	for i := range words {
		words[i] = "word0000"
	}
	words[10] = "notaword"
	if _, err := mnemonicToBytes(words, wl); err == nil {
		t.Fatal("expected error for unknown word")
	}
}

func TestNewSliceWordListRejectsWrongSize(t *testing.T) {
	words := []string{"only-one-word"}
	wl, err := NewSliceWordList(words)
	if err == nil {
		t.Fatalf("expected NewSliceWordList to reject a short word list, got %v", wl)
	}
}
