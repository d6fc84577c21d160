package blockcipher

// Cipher is implemented by anything that can encrypt a plaintext block to
// a ciphertext block and invert that operation. wavevortex.CipherCtx
// implements this interface so the stream package can chain blocks
// without depending on the cipher core's concrete type.
type Cipher interface {
	Encrypt(PlainBlock) CipherBlock
	Decrypt(CipherBlock) PlainBlock
}
