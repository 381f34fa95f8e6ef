package cipherseed

import "fmt"

// WordCount is the number of words every aezeed mnemonic must contain.
const WordCount = 24

// wordListSize is the number of entries a WordList must expose.
const wordListSize = 2048

// WordList is the external collaborator this package relies on for mapping
// mnemonic words to and from their 11-bit index. Loading the canonical
// BIP39 English corpus from disk, and any prefix-completion tooling built
// on top of it, are out of scope here: callers construct whatever WordList
// implementation suits them (SliceWordList is a minimal adapter) and pass
// it into Decode, DecodeWithKDF and Encode.
type WordList interface {
	// Len returns the number of words in the list (always 2048 for a
	// conforming list).
	Len() int
	// Word returns the word at index i, or an error if i is out of range.
	Word(i int) (string, error)
	// Index returns the index of word and whether it was found.
	Index(word string) (int, bool)
}

// SliceWordList is a WordList backed by a caller-supplied ordered slice.
type SliceWordList struct {
	words []string
	index map[string]int
}

// NewSliceWordList builds a SliceWordList from an ordered 2048-entry word
// slice.
func NewSliceWordList(words []string) (*SliceWordList, error) {
	if len(words) != wordListSize {
		return nil, fmt.Errorf("cipherseed: word list must have %d entries, got %d", wordListSize, len(words))
	}
	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}
	return &SliceWordList{words: words, index: index}, nil
}

func (wl *SliceWordList) Len() int { return len(wl.words) }

func (wl *SliceWordList) Word(i int) (string, error) {
	if i < 0 || i >= len(wl.words) {
		return "", fmt.Errorf("cipherseed: word index %d out of range", i)
	}
	return wl.words[i], nil
}

func (wl *SliceWordList) Index(word string) (int, bool) {
	i, ok := wl.index[word]
	return i, ok
}

// mnemonicToBytes packs exactly WordCount words into the 33-byte envelope,
// shifting an accumulator left by BitsPerWord and ORing in each word's
// index, emitting a byte every time 8 or more bits are buffered.
func mnemonicToBytes(words []string, wl WordList) ([EncipheredCipherSeedSize]byte, error) {
	var out [EncipheredCipherSeedSize]byte
	if len(words) != WordCount {
		return out, invalidMnemonicf("expected %d words, got %d", WordCount, len(words))
	}

	var acc uint64
	bits := 0
	pos := 0
	for _, w := range words {
		idx, ok := wl.Index(w)
		if !ok {
			return out, invalidMnemonicf("unknown word %q", w)
		}
		acc = (acc << BitsPerWord) | uint64(idx)
		bits += BitsPerWord
		for bits >= 8 {
			bits -= 8
			out[pos] = byte(acc >> uint(bits))
			pos++
		}
	}
	return out, nil
}

// bytesToMnemonic is the inverse of mnemonicToBytes: it unpacks the 33-byte
// envelope back into WordCount words at BitsPerWord bits each. Composing
// mnemonicToBytes with bytesToMnemonic is a bijection on 24-word inputs
// drawn from wl.
func bytesToMnemonic(buf [EncipheredCipherSeedSize]byte, wl WordList) ([]string, error) {
	words := make([]string, 0, WordCount)
	var acc uint64
	bits := 0
	for _, b := range buf {
		acc = (acc << 8) | uint64(b)
		bits += 8
		for bits >= BitsPerWord {
			bits -= BitsPerWord
			idx := int((acc >> uint(bits)) & ((1 << BitsPerWord) - 1))
			w, err := wl.Word(idx)
			if err != nil {
				return nil, err
			}
			words = append(words, w)
		}
	}
	return words, nil
}
