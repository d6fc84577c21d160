package wavevortex

// vec is the fixed 9-entry direction table used by the stream step: vec[d]
// gives the (row, col) displacement that bit-lane d migrates along.
var vec = [9][2]int{
	{0, 0},
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{1, -1},
	{-1, 1},
	{-1, -1},
}

// permMultiplier, together with the 31-bit right shift in generatePerm,
// is a frozen constant of the seeded Fisher-Yates shuffle used to turn a
// 64-bit sponge seed into a permutation of the 9 direction indices. Treat
// both as part of the wire contract: changing either changes every round
// key this cipher produces.
const permMultiplier = 0x517cc1b727220a95

// generatePerm derives a permutation of [0..9) from seed via a seeded
// Fisher-Yates shuffle: deterministic, and must match bit-for-bit with any
// other implementation of this cipher.
func generatePerm(seed uint64) [9]int {
	perm := [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	hash := seed
	for i := 8; i >= 1; i-- {
		hash = hash*permMultiplier ^ (hash >> 31)
		j := int(hash % uint64(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// addRoundKey XORs the round key's mask into every cell, in place.
func addRoundKey(s *State, rk *RoundKey) {
	for i := range s {
		s[i] ^= rk.MaskCells[i]
	}
}

// subMDSFused applies the fused substitution+MDS step: for each of the 8
// columns, the four row cells are each substituted and spread across the
// column via the precomputed fusedT tables in a single pass.
func subMDSFused(s *State) {
	var out State
	for col := 0; col < gridCols; col++ {
		c0 := s[cellIndex(0, col)]
		c1 := s[cellIndex(1, col)]
		c2 := s[cellIndex(2, col)]
		c3 := s[cellIndex(3, col)]

		t0 := fusedT[0][c0]
		t1 := fusedT[1][c1]
		t2 := fusedT[2][c2]
		t3 := fusedT[3][c3]

		for row := 0; row < 4; row++ {
			out[cellIndex(row, col)] = Cell(t0[row] ^ t1[row] ^ t2[row] ^ t3[row])
		}
	}
	*s = out
}

// invMDS inverts the MDS half of subMDSFused, given already-substituted
// input (i.e. it must be followed by invSubstituteCells, not preceded).
func invMDS(s *State) {
	var out State
	for col := 0; col < gridCols; col++ {
		a := s[cellIndex(0, col)]
		b := s[cellIndex(1, col)]
		d := s[cellIndex(2, col)]
		e := s[cellIndex(3, col)]

		out[cellIndex(0, col)] = Cell(mul119[a] ^ mul23[b])
		out[cellIndex(1, col)] = Cell(mul119[b] ^ mul23[d])
		out[cellIndex(2, col)] = Cell(mul119[d] ^ mul23[e])
		out[cellIndex(3, col)] = Cell(mul23[a] ^ mul119[e])
	}
	*s = out
}

// applyMDSForward is the non-fused forward MDS step: each column's four
// already-substituted cells are combined via the MDS circulant using the
// plain mul1/mul2/mul4/mul8 tables. Used by the bitsliced build, where
// substitution must run as its own constant-time pass before diffusion;
// the table build's hot path uses subMDSFused instead, which folds
// substitution and diffusion into one lookup per cell.
func applyMDSForward(s *State) {
	var out State
	for col := 0; col < gridCols; col++ {
		a := s[cellIndex(0, col)]
		b := s[cellIndex(1, col)]
		d := s[cellIndex(2, col)]
		e := s[cellIndex(3, col)]

		out[cellIndex(0, col)] = Cell(mul1[a] ^ mul2[b] ^ mul4[d] ^ mul8[e])
		out[cellIndex(1, col)] = Cell(mul8[a] ^ mul1[b] ^ mul2[d] ^ mul4[e])
		out[cellIndex(2, col)] = Cell(mul4[a] ^ mul8[b] ^ mul1[d] ^ mul2[e])
		out[cellIndex(3, col)] = Cell(mul2[a] ^ mul4[b] ^ mul8[d] ^ mul1[e])
	}
	*s = out
}

// rotateCells applies a 9-bit left circular rotation by 1 to every cell.
func rotateCells(s *State) {
	for i := range s {
		v := uint16(s[i])
		s[i] = Cell(((v << 1) | (v >> 8)) & mask9)
	}
}

// invRotateCells is the inverse of rotateCells: a 9-bit right rotation by 1.
func invRotateCells(s *State) {
	for i := range s {
		v := uint16(s[i])
		s[i] = Cell(((v >> 1) | (v << 8)) & mask9)
	}
}

// streamForward permutes bit-lanes across the grid: for each source cell
// and each of its 9 set bits d, that bit migrates to the cell displaced by
// vec[perm[d]]. Because perm is a bijection, this is itself a bit
// permutation -- no information is lost, and streamInverse reverses it.
func streamForward(s *State, perm *[9]int) {
	var out State
	for idx, v := range s {
		row, col := idx/gridCols, idx%gridCols
		for d := 0; d < 9; d++ {
			if (uint16(v)>>uint(d))&1 == 0 {
				continue
			}
			dr, dc := vec[perm[d]][0], vec[perm[d]][1]
			dst := cellIndex(row+dr, col+dc)
			out[dst] |= Cell(1 << uint(d))
		}
	}
	*s = out
}

// streamInverse undoes streamForward: each source bit moves along the
// negated displacement.
func streamInverse(s *State, perm *[9]int) {
	var out State
	for idx, v := range s {
		row, col := idx/gridCols, idx%gridCols
		for d := 0; d < 9; d++ {
			if (uint16(v)>>uint(d))&1 == 0 {
				continue
			}
			dr, dc := vec[perm[d]][0], vec[perm[d]][1]
			dst := cellIndex(row-dr, col-dc)
			out[dst] |= Cell(1 << uint(d))
		}
	}
	*s = out
}

// vortexShift translates the whole grid by (shift, shift) with wraparound:
// out[r,c] = in[r-shift, c-shift].
func vortexShift(s *State, shift int) {
	var out State
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			out[cellIndex(row, col)] = s[cellIndex(row-shift, col-shift)]
		}
	}
	*s = out
}

// invVortexShift is the inverse translation: out[r,c] = in[r+shift, c+shift].
func invVortexShift(s *State, shift int) {
	var out State
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			out[cellIndex(row, col)] = s[cellIndex(row+shift, col+shift)]
		}
	}
	*s = out
}

// encryptRound applies one forward round: add round key, substitute+MDS,
// rotate, stream, vortex shift.
func encryptRound(s *State, rk *RoundKey) {
	addRoundKey(s, rk)
	substituteAndMDS(s)
	rotateCells(s)
	streamForward(s, &rk.Perm)
	vortexShift(s, rk.Shift)
}

// decryptRound applies one inverse round, undoing encryptRound's five
// steps in reverse order.
func decryptRound(s *State, rk *RoundKey) {
	invVortexShift(s, rk.Shift)
	streamInverse(s, &rk.Perm)
	invRotateCells(s)
	invMDS(s)
	invSubstituteCells(s)
	addRoundKey(s, rk)
}
