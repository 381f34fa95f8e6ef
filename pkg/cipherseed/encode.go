package cipherseed

import (
	"encoding/binary"

	"github.com/backkem/aezeed/pkg/aez"
)

// Encode is the mirror of Decode: it builds a 24-word mnemonic for seed
// under passphrase and salt. It exists to exercise the decode pipeline's
// round-trip invariant in tests and to build fixtures; the aezeed format
// has no runtime encode surface of its own.
func Encode(seed *DecipheredCipherSeed, passphrase string, salt [SaltSize]byte, wl WordList, kdf KDF) ([]string, error) {
	plaintext := make([]byte, DecipheredCipherSeedSize)
	plaintext[0] = seed.InternalVersion
	binary.BigEndian.PutUint16(plaintext[1:3], seed.Birthday)
	copy(plaintext[3:19], seed.Entropy[:])

	password := append([]byte(DefaultPassphrase), []byte(passphrase)...)
	key, err := kdf(password, salt[:])
	if err != nil {
		return nil, err
	}
	defer zeroBytes(key)

	ad := [][]byte{append([]byte{CipherSeedVersion}, salt[:]...)}
	ciphertext := aez.Encrypt(key, ad, CipherTextExpansion, plaintext)

	var env Envelope
	env.Version = CipherSeedVersion
	copy(env.Ciphertext[:], ciphertext)
	env.Salt = salt
	raw := env.Bytes()

	return bytesToMnemonic(raw, wl)
}
