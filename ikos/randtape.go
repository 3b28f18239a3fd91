package ikos

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// RandTapeSeedSize is the fixed size, in bytes, of a randomness tape seed.
const RandTapeSeedSize = 16

// RandTapeSeed seeds the deterministic PRG that expands into a party's
// pre-generated randomness tape. It is immutable after construction and
// must be identical across the prover's and verifier's executions of the
// same gate sequence.
type RandTapeSeed [RandTapeSeedSize]byte

// NewRandTapeSeed draws a fresh seed from random. Passing a nil reader
// defaults to crypto/rand.Reader, mirroring the teacher library's
// GenerateKeyPair/GenerateKeyPairFromReader split.
func NewRandTapeSeed(random io.Reader) (RandTapeSeed, error) {
	if random == nil {
		random = rand.Reader
	}
	var seed RandTapeSeed
	if _, err := io.ReadFull(random, seed[:]); err != nil {
		return RandTapeSeed{}, fmt.Errorf("ikos: generating random tape seed: %w", err)
	}
	return seed, nil
}

// ExpandRandTape deterministically expands seed into the party's
// pre-generated randomness tape: ceil(randTapeLenBytes*8/32) 32-bit words,
// per the wire format in the spec's External Interfaces section.
//
// The expansion uses SHAKE256 (golang.org/x/crypto/sha3) as the seed-to-tape
// PRG. SHAKE256 is an extendable-output function, so the tape can be grown
// to any length the circuit needs without re-deriving anything — the same
// sha3 package the rest of this module already depends on for Keccak-256,
// just used in its XOF form instead of its fixed-digest form.
func ExpandRandTape(seed RandTapeSeed, randTapeLenBytes int) []uint32 {
	if randTapeLenBytes <= 0 {
		return nil
	}
	wordCount := (randTapeLenBytes*8 + 31) / 32
	buf := make([]byte, wordCount*4)

	xof := sha3.NewShake256()
	xof.Write(seed[:])
	xof.Read(buf)

	words := make([]uint32, wordCount)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}
	return words
}
