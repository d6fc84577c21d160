// Package blockcipher defines the block vocabulary shared by the
// Wave-Vortex cipher core and its streaming layer. Unlike a classical
// block cipher, encryption and decryption here operate on different-sized
// blocks (32-byte plaintext in, 36-byte ciphertext out), so a single
// symmetric Block type -- as a conventional block cipher package would
// use -- does not fit; PlainBlock and CipherBlock are kept distinct.
package blockcipher

import "fmt"

// PlainBlock is one 32-byte plaintext block.
type PlainBlock [32]byte

// CipherBlock is one 36-byte ciphertext block.
type CipherBlock [36]byte

// String returns a hexadecimal representation of a PlainBlock's bytes.
func (b PlainBlock) String() string {
	return fmt.Sprintf("%x", [32]byte(b))
}

// String returns a hexadecimal representation of a CipherBlock's bytes.
func (b CipherBlock) String() string {
	return fmt.Sprintf("%x", [36]byte(b))
}
