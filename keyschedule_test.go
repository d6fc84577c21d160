package wavevortex

import "testing"

func TestDeriveRoundKeysIsDeterministic(t *testing.T) {
	var key [masterKeySize]byte
	for i := range key {
		key[i] = byte(i)
	}

	a := deriveRoundKeys(key)
	b := deriveRoundKeys(key)

	if a != b {
		t.Fatalf("deriveRoundKeys is not deterministic for a fixed key")
	}
}

func TestDeriveRoundKeysShiftInRange(t *testing.T) {
	var key [masterKeySize]byte
	for i := range key {
		key[i] = byte(i * 3)
	}

	keys := deriveRoundKeys(key)
	for i, rk := range keys {
		if rk.Shift < 0 || rk.Shift > 7 {
			t.Errorf("round %d: shift %d out of range [0,7]", i, rk.Shift)
		}
	}
}

func TestDeriveRoundKeysDifferByKey(t *testing.T) {
	var keyA, keyB [masterKeySize]byte
	for i := range keyA {
		keyA[i] = byte(i)
		keyB[i] = byte(i)
	}
	keyB[0] ^= 1

	a := deriveRoundKeys(keyA)
	b := deriveRoundKeys(keyB)

	if a == b {
		t.Fatalf("single-bit key difference produced identical round-key schedules")
	}
}

func TestAsconPermuteIsDeterministic(t *testing.T) {
	s1 := [5]uint64{1, 2, 3, 4, 5}
	s2 := s1
	asconPermute(&s1, 12)
	asconPermute(&s2, 12)
	if s1 != s2 {
		t.Fatalf("asconPermute is not deterministic")
	}
	if s1 == ([5]uint64{1, 2, 3, 4, 5}) {
		t.Fatalf("asconPermute left the state unchanged")
	}
}
