package cipherseed

import "hash/crc32"

// Wire-exact sizes from the aezeed format.
const (
	// EncipheredCipherSeedSize is the size in bytes of the full encoded
	// envelope: version || ciphertext || salt || CRC32C.
	EncipheredCipherSeedSize = 33

	// DecipheredCipherSeedSize is the size in bytes of the AEZ-decrypted
	// plaintext: internal_version || birthday || entropy.
	DecipheredCipherSeedSize = 19

	// SaltSize is the size in bytes of the scrypt salt carried in the
	// envelope.
	SaltSize = 5

	// CipherTextExpansion is the AEZ tag length in bytes (tau) used for
	// this envelope's AD framing.
	CipherTextExpansion = 4

	// BitsPerWord is the number of bits each mnemonic word encodes.
	BitsPerWord = 11

	// CipherSeedVersion is the only envelope version this decoder
	// accepts.
	CipherSeedVersion = 0

	// cipherTextSize is the size in bytes of the AEZ ciphertext carried in
	// the envelope (DecipheredCipherSeedSize plaintext plus the tag).
	cipherTextSize = DecipheredCipherSeedSize + CipherTextExpansion
)

// castagnoliTable is the CRC32C (Castagnoli) table: polynomial 0x82F63B78
// in reflected form, matching the reflected-input/output, 0xFFFFFFFF
// init/final-xor convention this format requires.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// crc32c computes the CRC32C checksum of data.
func crc32c(data []byte) uint32 {
	return crc32.Checksum(data, castagnoliTable)
}

// Envelope is the parsed 33-byte encoded cipher seed:
// version (1) || ciphertext (23) || salt (5) || CRC32C (4, big-endian).
type Envelope struct {
	Version    byte
	Ciphertext [cipherTextSize]byte
	Salt       [SaltSize]byte
	CRC        uint32
}

// Bytes re-serializes the envelope to its 33-byte wire form, recomputing
// the CRC32C over bytes [0:29).
func (e *Envelope) Bytes() [EncipheredCipherSeedSize]byte {
	var out [EncipheredCipherSeedSize]byte
	out[0] = e.Version
	copy(out[1:1+cipherTextSize], e.Ciphertext[:])
	copy(out[1+cipherTextSize:1+cipherTextSize+SaltSize], e.Salt[:])
	crc := crc32c(out[:1+cipherTextSize+SaltSize])
	out[29] = byte(crc >> 24)
	out[30] = byte(crc >> 16)
	out[31] = byte(crc >> 8)
	out[32] = byte(crc)
	return out
}

// ParseEnvelope splits the 33-byte wire form into its fields without
// validating the version or CRC; use Validate for that.
func ParseEnvelope(buf [EncipheredCipherSeedSize]byte) Envelope {
	var e Envelope
	e.Version = buf[0]
	copy(e.Ciphertext[:], buf[1:1+cipherTextSize])
	copy(e.Salt[:], buf[1+cipherTextSize:1+cipherTextSize+SaltSize])
	e.CRC = uint32(buf[29])<<24 | uint32(buf[30])<<16 | uint32(buf[31])<<8 | uint32(buf[32])
	return e
}

// Validate checks the envelope's version byte and CRC32C, returning an
// InvalidMnemonicError describing the first problem found.
func Validate(buf [EncipheredCipherSeedSize]byte) (Envelope, error) {
	e := ParseEnvelope(buf)
	if e.Version != CipherSeedVersion {
		return e, invalidMnemonicf("unsupported cipher seed version %d", e.Version)
	}
	want := crc32c(buf[:29])
	if e.CRC != want {
		return e, invalidMnemonicf("crc32c mismatch: got %#08x, want %#08x", e.CRC, want)
	}
	return e, nil
}
