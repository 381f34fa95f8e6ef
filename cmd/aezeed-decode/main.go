// aezeed-decode decodes a 24-word aezeed cipher seed mnemonic into its
// wallet entropy, birthday and internal version.
//
// Usage:
//
//	aezeed-decode [options] <word1> <word2> ... <word24>
//
// Options:
//
//	-passphrase  Optional passphrase used to encrypt the seed (default: "")
//	-wordlist    Path to a 2048-line word list file, one word per line
//
// Example:
//
//	aezeed-decode -wordlist english.txt able pulse ... zone
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/backkem/aezeed/pkg/cipherseed"
)

func main() {
	var passphrase string
	var wordlistPath string

	flag.StringVar(&passphrase, "passphrase", "", "passphrase used to encrypt the seed")
	flag.StringVar(&wordlistPath, "wordlist", "", "path to a 2048-line word list file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <word1> ... <word24>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	words := flag.Args()
	if len(words) != cipherseed.WordCount {
		log.Fatalf("expected %d mnemonic words, got %d", cipherseed.WordCount, len(words))
	}
	if wordlistPath == "" {
		log.Fatalf("missing -wordlist: this program does not ship a built-in word list")
	}

	wl, err := loadWordList(wordlistPath)
	if err != nil {
		log.Fatalf("failed to load word list: %v", err)
	}

	seed, err := cipherseed.Decode(words, passphrase, wl)
	if err != nil {
		log.Fatalf("failed to decode cipher seed: %v", err)
	}

	fmt.Printf("internal version: %d\n", seed.InternalVersion)
	fmt.Printf("birthday:         %d\n", seed.Birthday)
	fmt.Printf("entropy:          %x\n", seed.Entropy)
}

// loadWordList reads a 2048-line word list file, one word per line, in
// mnemonic index order. It is the caller's responsibility to supply a file
// matching the corpus the mnemonic was generated against; this program has
// no opinion on where that file comes from.
func loadWordList(path string) (*cipherseed.SliceWordList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cipherseed.NewSliceWordList(words)
}
