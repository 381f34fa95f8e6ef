// Package cipherseed decodes the 24-word aezeed mnemonic format into the
// wallet entropy, internal version and birthday it encodes. The envelope's
// salt is used for key derivation but is not part of the decoded result.
package cipherseed

import "fmt"

// InvalidMnemonicError reports a structural problem with the mnemonic
// itself: wrong word count, an unknown word, an unsupported version byte,
// or a CRC32C mismatch. It is always detected before any KDF work runs.
type InvalidMnemonicError struct {
	Reason string
}

func (e *InvalidMnemonicError) Error() string {
	return "cipherseed: invalid mnemonic: " + e.Reason
}

func invalidMnemonicf(format string, args ...any) *InvalidMnemonicError {
	return &InvalidMnemonicError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidPassphraseError reports that the AEZ authentication tag did not
// verify, or that the decrypted plaintext was the wrong length. Since AEZ
// only authenticates against (key, AD), this is the observable signal of a
// wrong passphrase.
type InvalidPassphraseError struct {
	Reason string
}

func (e *InvalidPassphraseError) Error() string {
	return "cipherseed: invalid passphrase: " + e.Reason
}
