package wavevortex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	wavevortex "github.com/1878580314/wave-vortex"
)

func testKey(b byte) [32]byte {
	var key [32]byte
	for i := range key {
		key[i] = b + byte(i)
	}
	return key
}

func TestBlockRoundTrip(t *testing.T) {
	ctx := wavevortex.NewCipherCtx(testKey(1))

	var pt [32]byte
	for i := range pt {
		pt[i] = byte(i * 5)
	}

	ct := ctx.EncryptBlock(pt)
	got := ctx.DecryptBlock(ct)

	require.Equal(t, pt, got, "decrypt(encrypt(pt)) must recover pt")
}

func TestBlockRoundTripAllZero(t *testing.T) {
	ctx := wavevortex.NewCipherCtx(testKey(0))

	var pt [32]byte
	ct := ctx.EncryptBlock(pt)
	got := ctx.DecryptBlock(ct)

	require.Equal(t, pt, got)
}

func TestEncryptionIsDeterministicForFixedKey(t *testing.T) {
	key := testKey(9)
	var pt [32]byte
	for i := range pt {
		pt[i] = byte(i)
	}

	ct1 := wavevortex.NewCipherCtx(key).EncryptBlock(pt)
	ct2 := wavevortex.NewCipherCtx(key).EncryptBlock(pt)

	require.Equal(t, ct1, ct2)
}

func TestDifferentKeysProduceDifferentCiphertext(t *testing.T) {
	var pt [32]byte
	for i := range pt {
		pt[i] = byte(i * 11)
	}

	ctA := wavevortex.NewCipherCtx(testKey(1)).EncryptBlock(pt)
	ctB := wavevortex.NewCipherCtx(testKey(2)).EncryptBlock(pt)

	require.NotEqual(t, ctA, ctB, "changing the key must change the ciphertext")
}

func TestPackageLevelHelpersMatchContext(t *testing.T) {
	key := testKey(42)
	var pt [32]byte
	for i := range pt {
		pt[i] = byte(255 - i)
	}

	ct := wavevortex.EncryptBlock(pt, key)
	got := wavevortex.DecryptBlock(ct, key)

	require.Equal(t, pt, got)
	require.Equal(t, wavevortex.NewCipherCtx(key).EncryptBlock(pt), ct)
}

func TestCiphertextIsLargerThanPlaintext(t *testing.T) {
	ctx := wavevortex.NewCipherCtx(testKey(3))
	var pt [32]byte
	ct := ctx.EncryptBlock(pt)
	require.Len(t, ct, 36)
}
