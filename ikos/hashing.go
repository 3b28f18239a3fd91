package ikos

import "golang.org/x/crypto/sha3"

// Keccak256 hashes data with Keccak-256, the same hash family the teacher's
// Lamport primitives use for public-key fingerprinting. It is exposed for
// driver-level statement binding — e.g. fingerprinting a circuit's public
// inputs alongside a proof — and is never used internally by the IKOS
// arithmetic itself, which commits views with SHA-256 (CommitView).
func Keccak256(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	h.Sum(out[:0])
	return out
}
