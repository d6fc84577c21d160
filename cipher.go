package wavevortex

import (
	"github.com/1878580314/wave-vortex/blockcipher"
)

// CipherCtx holds a key schedule expanded once from a 256-bit master key.
// It is immutable after NewCipherCtx returns and may be shared freely
// across goroutines: encrypting or decrypting a block reads the schedule
// but never mutates it, so two concurrent calls on the same context
// produce independent results.
type CipherCtx struct {
	rounds [rounds]RoundKey
}

// NewCipherCtx derives the 24-round key schedule from a 256-bit master
// key. The schedule is computed once, eagerly, and then never touched
// again.
func NewCipherCtx(key [masterKeySize]byte) *CipherCtx {
	return &CipherCtx{rounds: deriveRoundKeys(key)}
}

// EncryptBlock loads a 32-byte plaintext block into the cipher state,
// applies all 24 forward rounds in order, and packs the result into its
// 36-byte wire form.
func (c *CipherCtx) EncryptBlock(pt [plaintextSize]byte) [ciphertextSize]byte {
	ensureTables()
	s := loadPlaintext(pt)
	for r := 0; r < rounds; r++ {
		encryptRound(&s, &c.rounds[r])
	}
	return packState(s)
}

// DecryptBlock unpacks a 36-byte ciphertext block, applies all 24 inverse
// rounds in reverse order, and extracts the recovered 32-byte plaintext.
func (c *CipherCtx) DecryptBlock(ct [ciphertextSize]byte) [plaintextSize]byte {
	ensureTables()
	s := unpackState(ct)
	for r := rounds - 1; r >= 0; r-- {
		decryptRound(&s, &c.rounds[r])
	}
	return extractPlaintext(s)
}

// Encrypt implements blockcipher.Cipher.
func (c *CipherCtx) Encrypt(pt blockcipher.PlainBlock) blockcipher.CipherBlock {
	return blockcipher.CipherBlock(c.EncryptBlock([plaintextSize]byte(pt)))
}

// Decrypt implements blockcipher.Cipher.
func (c *CipherCtx) Decrypt(ct blockcipher.CipherBlock) blockcipher.PlainBlock {
	return blockcipher.PlainBlock(c.DecryptBlock([ciphertextSize]byte(ct)))
}

var _ blockcipher.Cipher = (*CipherCtx)(nil)

// EncryptBlock builds a transient context from key and delegates.
func EncryptBlock(pt [plaintextSize]byte, key [masterKeySize]byte) [ciphertextSize]byte {
	return NewCipherCtx(key).EncryptBlock(pt)
}

// DecryptBlock builds a transient context from key and delegates.
func DecryptBlock(ct [ciphertextSize]byte, key [masterKeySize]byte) [plaintextSize]byte {
	return NewCipherCtx(key).DecryptBlock(ct)
}
