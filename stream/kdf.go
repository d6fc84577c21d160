package stream

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Iterations and derivedKeySize are part of the wire contract: a
// stream encrypted under one value cannot be decrypted under another,
// so neither may change without also changing the framing the stream
// format advertises to readers of this package's doc comment.
const (
	pbkdf2Iterations = 100_000
	saltSize         = 16
	derivedKeySize   = 32
)

// DeriveKeyFromPassword stretches a password and a 16-byte salt into a
// 256-bit master key via PBKDF2-HMAC-SHA256. Callers that already hold a
// 256-bit key (rather than a password) should skip this and call
// EncryptStreamCtx/DecryptStreamCtx directly against a wavevortex cipher
// context.
func DeriveKeyFromPassword(password, salt []byte) [derivedKeySize]byte {
	derived := pbkdf2.Key(password, salt, pbkdf2Iterations, derivedKeySize, sha256.New)
	var key [derivedKeySize]byte
	copy(key[:], derived)
	return key
}
