// Package wavevortex implements the Wave-Vortex block cipher: a symmetric
// cipher built around a 9-bit cell algebra over a 4x8 grid, composed from
// GF(2^9) diffusion, an ASCON-style sponge key schedule, and a directional
// bit-lane permutation the package calls the "stream" step.
//
// The public surface mirrors the structure of the design: a CipherCtx holds
// an expanded round-key schedule derived once from a 256-bit master key,
// and its EncryptBlock/DecryptBlock methods (or the package-level functions
// of the same names, which build a transient context) apply the 24-round
// forward or inverse cipher to a single block.
//
// This package implements only the block primitive. File and stream
// encryption, password-based key derivation, and on-disk framing live in
// the sibling stream package.
//
// This package aims to be a faithful, readable translation of its design
// rather than a hardened cryptographic library. Do not use it to protect
// data you actually care about.
package wavevortex
