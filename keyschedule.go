package wavevortex

import "encoding/binary"

// rounds is the number of cipher rounds (and the number of round keys the
// schedule produces).
const rounds = 24

// ascon sponge: a 320-bit (5x64-bit-lane) permutation absorbing the
// 256-bit master key and emitting the round-key material. The lane
// layout, round-constant handling, and diffusion rotations mirror a
// standard ASCON permutation; what differs from an AEAD use of ASCON is
// that nothing is ever absorbed beyond the master key -- the permutation
// is driven forward 24 times purely to harvest round keys, with no
// nonce, associated data, or tag.
const asconIV = 0x80400c0600000000

// roundConstants are ASCON's standard p12 round constants, in the order
// applied for a full 12-round permutation.
var roundConstants = [12]uint64{
	0xF0, 0xE1, 0xD2, 0xC3, 0xB4, 0xA5, 0x96, 0x87, 0x78, 0x69, 0x5A, 0x4B,
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// asconRound applies one ASCON round to the 5-lane state: constant
// addition, the 5-bit S-box (expressed as the standard
// XOR/AND-NOT/XOR/NOT sequence across all five lanes), and the linear
// diffusion layer of per-lane rotate-XORs.
func asconRound(s *[5]uint64, rc uint64) {
	s[2] ^= rc

	s[0] ^= s[4]
	s[4] ^= s[3]
	s[2] ^= s[1]

	t0, t1, t2, t3, t4 := s[0], s[1], s[2], s[3], s[4]
	s[0] = t0 ^ (^t1 & t2)
	s[1] = t1 ^ (^t2 & t3)
	s[2] = t2 ^ (^t3 & t4)
	s[3] = t3 ^ (^t4 & t0)
	s[4] = t4 ^ (^t0 & t1)

	s[1] ^= s[0]
	s[0] ^= s[4]
	s[3] ^= s[2]
	s[2] = ^s[2]

	s[0] ^= rotr64(s[0], 19) ^ rotr64(s[0], 28)
	s[1] ^= rotr64(s[1], 61) ^ rotr64(s[1], 39)
	s[2] ^= rotr64(s[2], 1) ^ rotr64(s[2], 6)
	s[3] ^= rotr64(s[3], 10) ^ rotr64(s[3], 17)
	s[4] ^= rotr64(s[4], 7) ^ rotr64(s[4], 41)
}

// asconPermute applies n rounds of the permutation (n <= 12), using round
// constants RC[12-n : 12) so that, e.g., a 6-round call uses the same
// trailing constants a 12-round call would end with.
func asconPermute(s *[5]uint64, n int) {
	start := 12 - n
	for i := start; i < 12; i++ {
		asconRound(s, roundConstants[i])
	}
}

// RoundKey is the per-round bundle the key schedule produces: a mask
// applied to every cell, a permutation of the 9 direction indices for the
// stream step, and a translation amount for the vortex shift.
type RoundKey struct {
	MaskCells State
	Perm      [9]int
	Shift     int
}

func initSpongeState(masterKey [masterKeySize]byte) [5]uint64 {
	var s [5]uint64
	s[0] = asconIV
	s[1] = binary.LittleEndian.Uint64(masterKey[0:8])
	s[2] = binary.LittleEndian.Uint64(masterKey[8:16])
	s[3] = binary.LittleEndian.Uint64(masterKey[16:24])
	s[4] = binary.LittleEndian.Uint64(masterKey[24:32])
	asconPermute(&s, 12)
	return s
}

// deriveRoundKeys runs the sponge forward once per round, each time
// extracting a shift, a direction permutation, and 36 bytes of mask
// material from the lane state.
func deriveRoundKeys(masterKey [masterKeySize]byte) [rounds]RoundKey {
	ensureTables()

	s := initSpongeState(masterKey)

	var keys [rounds]RoundKey
	for i := 0; i < rounds; i++ {
		asconPermute(&s, 12)

		shift := int(s[0] & 7)
		perm := generatePerm(s[0] ^ s[1])

		var laneBytes [40]byte
		for lane := 0; lane < 5; lane++ {
			binary.LittleEndian.PutUint64(laneBytes[lane*8:], s[lane])
		}
		var mask [ciphertextSize]byte
		copy(mask[:], laneBytes[:ciphertextSize])

		keys[i] = RoundKey{
			MaskCells: unpackState(mask),
			Perm:      perm,
			Shift:     shift,
		}
	}
	return keys
}
