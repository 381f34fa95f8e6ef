package cipherseed

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/backkem/aezeed/pkg/aez"
)

// DefaultPassphrase is unconditionally prepended to whatever passphrase the
// caller supplies, even an empty one. This matches the upstream wallet's
// behavior and is not a bug to "fix": the KDF input is always
// "aezeed" + userPassphrase.
const DefaultPassphrase = "aezeed"

// Scrypt parameters from the aezeed format.
const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// KDF derives a key from a password and salt. ScryptKDF is the concrete
// backend Decode uses by default; callers needing a different backend can
// call DecodeWithKDF directly, keeping the KDF backend out of this
// package's concerns per its external-interface contract.
type KDF func(password, salt []byte) ([]byte, error)

// ScryptKDF derives a 32-byte key using scrypt with the aezeed format's
// fixed parameters (N=32768, r=8, p=1). Go's scrypt.Key takes no maxmem
// parameter; the ~2e9-byte ceiling some back-ends accept has no equivalent
// knob here and is not reproduced.
func ScryptKDF(password, salt []byte) ([]byte, error) {
	return scrypt.Key(password, salt, scryptN, scryptR, scryptP, scryptKeyLen)
}

// DecipheredCipherSeed is the 19-byte AEZ-decrypted plaintext, parsed into
// its fields.
type DecipheredCipherSeed struct {
	InternalVersion byte
	Birthday        uint16
	Entropy         [16]byte
}

// Decode validates and decrypts a 24-word mnemonic with the given
// passphrase (an empty string is valid), using ScryptKDF as the key
// derivation backend.
func Decode(words []string, passphrase string, wl WordList) (*DecipheredCipherSeed, error) {
	return DecodeWithKDF(words, passphrase, wl, ScryptKDF)
}

// DecodeWithKDF is Decode with an injectable KDF backend, for tests and
// alternate scrypt implementations.
func DecodeWithKDF(words []string, passphrase string, wl WordList, kdf KDF) (*DecipheredCipherSeed, error) {
	raw, err := mnemonicToBytes(words, wl)
	if err != nil {
		return nil, err
	}

	env, err := Validate(raw)
	if err != nil {
		return nil, err
	}

	password := append([]byte(DefaultPassphrase), []byte(passphrase)...)
	key, err := kdf(password, env.Salt[:])
	if err != nil {
		return nil, fmt.Errorf("cipherseed: key derivation failed: %w", err)
	}
	defer zeroBytes(key)

	ad := [][]byte{append([]byte{env.Version}, env.Salt[:]...)}
	plaintext, err := aez.Decrypt(key, ad, CipherTextExpansion, env.Ciphertext[:])
	if err != nil {
		return nil, &InvalidPassphraseError{Reason: "authentication failed"}
	}
	defer zeroBytes(plaintext)

	if len(plaintext) != DecipheredCipherSeedSize {
		return nil, &InvalidPassphraseError{
			Reason: fmt.Sprintf("unexpected plaintext length %d, want %d", len(plaintext), DecipheredCipherSeedSize),
		}
	}

	seed := &DecipheredCipherSeed{
		InternalVersion: plaintext[0],
		Birthday:        binary.BigEndian.Uint16(plaintext[1:3]),
	}
	copy(seed.Entropy[:], plaintext[3:19])
	return seed, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
