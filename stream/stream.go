// Package stream builds CBC-style streaming encryption on top of a
// blockcipher.Cipher. It owns the wire framing (an unauthenticated
// random IV up front, optionally a PBKDF2 salt ahead of that), the
// plaintext-to-ciphertext chaining, and the PKCS#7-style padding that
// lets a 32-byte-block cipher handle arbitrary-length input -- none of
// which the block cipher core in the parent package knows about.
package stream

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/1878580314/wave-vortex"
	"github.com/1878580314/wave-vortex/blockcipher"
)

const (
	plaintextBlockSize  = 32
	ciphertextBlockSize = 36
	ivSize              = plaintextBlockSize
)

// randomIV draws a fresh 32-byte IV. An RNG failure is reported to the
// caller rather than panicking: a stream cipher running inside a
// long-lived service should get a chance to retry or fail its caller's
// request, not bring the process down.
func randomIV() ([ivSize]byte, error) {
	var iv [ivSize]byte
	if _, err := rand.Read(iv[:]); err != nil {
		return iv, fmt.Errorf("wave-vortex: reading random IV: %w", err)
	}
	return iv, nil
}

func prevFromCipherBlock(cb blockcipher.CipherBlock) blockcipher.PlainBlock {
	var p blockcipher.PlainBlock
	copy(p[:], cb[:plaintextBlockSize])
	return p
}

// readChunk fills buf as far as the reader allows before hitting EOF.
// A short, non-zero read is only ever reported once the underlying
// reader is truly exhausted (io.ReadFull either fills buf completely
// or returns ErrUnexpectedEOF/EOF), so a short read here always means
// "this is the last chunk", never "the reader felt like stopping
// early" the way a single bare Read call could.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}
	return n, err
}

// readExactly fills buf or fails. Hitting EOF partway through (or
// before the first byte) is a truncated stream; any other read failure
// is the reader's own error and passes through verbatim.
func readExactly(r io.Reader, buf []byte, want string) error {
	_, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ErrTruncatedStream{Want: want}
	}
	if err != nil {
		return fmt.Errorf("wave-vortex: reading %s: %w", want, err)
	}
	return nil
}

// EncryptStreamCtx encrypts all of r under cipher, writing a random IV
// followed by one 36-byte ciphertext block per 32-byte plaintext chunk
// to w. Input of any length -- including zero -- is handled: a
// plaintext whose length is an exact multiple of 32 (zero included)
// always gets one extra, fully-padded block appended, so the
// ciphertext length alone never reveals whether the last real block
// happened to land on a boundary.
func EncryptStreamCtx(w io.Writer, r io.Reader, cipher blockcipher.Cipher) error {
	iv, err := randomIV()
	if err != nil {
		return err
	}
	if _, err := w.Write(iv[:]); err != nil {
		return fmt.Errorf("wave-vortex: writing iv: %w", err)
	}

	prev := blockcipher.PlainBlock(iv)
	var buf [plaintextBlockSize]byte
	hasData := false

	for {
		n, err := readChunk(r, buf[:])
		if err != nil {
			return fmt.Errorf("wave-vortex: reading plaintext: %w", err)
		}
		if n == 0 && !hasData {
			break
		}
		hasData = true

		var block blockcipher.PlainBlock
		if n == plaintextBlockSize {
			block = blockcipher.PlainBlock(buf)
		} else {
			padVal := byte(plaintextBlockSize - n)
			for i := range block {
				block[i] = padVal
			}
			copy(block[:n], buf[:n])
		}

		cipherBlock := cipher.Encrypt(blockcipher.XOR(block, prev))
		if _, err := w.Write(cipherBlock[:]); err != nil {
			return fmt.Errorf("wave-vortex: writing ciphertext block: %w", err)
		}
		prev = prevFromCipherBlock(cipherBlock)

		if n < plaintextBlockSize {
			break
		}
	}

	if !hasData {
		var padBlock blockcipher.PlainBlock
		for i := range padBlock {
			padBlock[i] = plaintextBlockSize
		}
		cipherBlock := cipher.Encrypt(blockcipher.XOR(padBlock, prev))
		if _, err := w.Write(cipherBlock[:]); err != nil {
			return fmt.Errorf("wave-vortex: writing ciphertext block: %w", err)
		}
	}

	return nil
}

// DecryptStreamCtx reverses EncryptStreamCtx: it reads the leading
// 32-byte IV, then one 36-byte ciphertext block at a time, decrypting
// and un-chaining each. Because the final plaintext block's padding
// can only be validated and stripped once it's known to BE the final
// block, blocks are held one behind: block i is written only once
// block i+1 has been read (or EOF confirms there is no block i+1).
func DecryptStreamCtx(w io.Writer, r io.Reader, cipher blockcipher.Cipher) error {
	var ivBytes [ivSize]byte
	if err := readExactly(r, ivBytes[:], "iv"); err != nil {
		return err
	}
	prev := blockcipher.PlainBlock(ivBytes)

	var pending blockcipher.PlainBlock
	havePending := false

	var frame [ciphertextBlockSize]byte
	for {
		_, err := io.ReadFull(r, frame[:])
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return &ErrTruncatedStream{Want: "ciphertext block"}
		}
		if err != nil {
			return fmt.Errorf("wave-vortex: reading ciphertext block: %w", err)
		}

		cipherBlock := blockcipher.CipherBlock(frame)
		current := blockcipher.XOR(cipher.Decrypt(cipherBlock), prev)

		if havePending {
			if _, err := w.Write(pending[:]); err != nil {
				return fmt.Errorf("wave-vortex: writing plaintext: %w", err)
			}
		}
		pending = current
		havePending = true
		prev = prevFromCipherBlock(cipherBlock)
	}

	if !havePending {
		return nil
	}

	padVal := pending[plaintextBlockSize-1]
	if padVal == 0 || int(padVal) > plaintextBlockSize {
		return &PaddingError{Value: padVal}
	}
	unpaddedLen := plaintextBlockSize - int(padVal)
	for i := unpaddedLen; i < plaintextBlockSize; i++ {
		if pending[i] != padVal {
			return &PaddingError{Value: padVal}
		}
	}
	if _, err := w.Write(pending[:unpaddedLen]); err != nil {
		return fmt.Errorf("wave-vortex: writing plaintext: %w", err)
	}
	return nil
}

// EncryptStream derives a key from password via a freshly generated
// salt, writes that salt ahead of the IV, and encrypts r under it.
func EncryptStream(w io.Writer, r io.Reader, password []byte) error {
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return fmt.Errorf("wave-vortex: reading random salt: %w", err)
	}
	if _, err := w.Write(salt[:]); err != nil {
		return fmt.Errorf("wave-vortex: writing salt: %w", err)
	}
	key := DeriveKeyFromPassword(password, salt[:])
	return EncryptStreamCtx(w, r, wavevortex.NewCipherCtx(key))
}

// DecryptStream reads the leading salt EncryptStream wrote, re-derives
// the same key from password, and decrypts the remainder of r.
func DecryptStream(w io.Writer, r io.Reader, password []byte) error {
	var salt [saltSize]byte
	if err := readExactly(r, salt[:], "salt"); err != nil {
		return err
	}
	key := DeriveKeyFromPassword(password, salt[:])
	return DecryptStreamCtx(w, r, wavevortex.NewCipherCtx(key))
}
