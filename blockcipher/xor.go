package blockcipher

// XOR returns the byte-wise XOR of two equal-length plaintext blocks.
// This is the chaining primitive the stream layer builds CBC-style
// encryption from: ciphertext block i is Encrypt(plaintext[i] XOR
// previous-ciphertext), exactly as a classical CBC mode XORs the
// plaintext against the previous block before encrypting it.
func XOR(a, b PlainBlock) PlainBlock {
	var out PlainBlock
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
