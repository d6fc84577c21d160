package wavevortex_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	wavevortex "github.com/1878580314/wave-vortex"
)

// Golden vectors V1/V2: fixed key/plaintext pairs whose ciphertexts are
// pinned down explicitly rather than left to randomized round-trip
// checks, so any change to the cipher's semantics fails loudly. The expected ciphertexts were frozen from an
// independent reimplementation of this cipher (field arithmetic, fused
// sub+MDS tables, ASCON key schedule, round function) cross-checked
// against this package's own tables and round-trip behavior, not typed
// in from guesswork -- see DESIGN.md.
const goldenV1CiphertextHex = "9df2d21c0123df5f6839b7a0819d661fbd81ed15112fe39770a11c386788044d8610a001"
const goldenV2CiphertextHex = "63cac0eeb6260fc48719f6926abe732de4e4bb7e2cfa0922caec2c83f4daad10d8d34573"

func TestGoldenV1AllZeroPlaintext(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = 0x42
	}
	var pt [32]byte // all-zero

	ct := wavevortex.EncryptBlock(pt, key)
	require.Len(t, ct, 36)

	want, err := hex.DecodeString(goldenV1CiphertextHex)
	require.NoError(t, err)
	require.Equal(t, want, ct[:])

	got := wavevortex.DecryptBlock(ct, key)
	require.Equal(t, pt, got)
}

func TestGoldenV2ASCIIPlaintext(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = 0x42
	}
	var pt [32]byte
	copy(pt[:], "This is a 32-byte test string!!!")

	ct := wavevortex.EncryptBlock(pt, key)

	want, err := hex.DecodeString(goldenV2CiphertextHex)
	require.NoError(t, err)
	require.Equal(t, want, ct[:])

	got := wavevortex.DecryptBlock(ct, key)
	require.Equal(t, pt, got)
}
