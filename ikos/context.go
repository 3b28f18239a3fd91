package ikos

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Context bundles one party's randomness tape, output view, and the two
// cursors that track consumption against both: UsedRandCtr (randomness)
// and ReplayCursor (the verifier's replay position into the committed
// view). A Context has exactly one owner for its whole lifetime — the
// driver threading it through a proof execution — and is never cloned:
// shared variables hold a *Context, not a copy, so every gate advances
// the same cursors exactly once. See the spec's design note on context
// sharing for why the alternative (clone-on-inherit) is unsound.
type Context struct {
	view         *View
	randomness   []uint32
	usedRandCtr  int
	outViewCtr32 int
	isVerifyMode bool
}

// NewContext creates a fresh prover- or verifier-side context with a
// randomly drawn seed, expanding randTapeLenBytes worth of randomness.
func NewContext(randTapeLenBytes int, isVerifyMode bool) (*Context, error) {
	seed, err := NewRandTapeSeed(nil)
	if err != nil {
		return nil, err
	}
	return NewContextWithSeed(seed, randTapeLenBytes, isVerifyMode), nil
}

// NewContextWithSeed creates a context from a caller-supplied seed. The
// prover and the verifier must construct their respective contexts with
// identical seeds and identical randTapeLenBytes for a replay to line up.
func NewContextWithSeed(seed RandTapeSeed, randTapeLenBytes int, isVerifyMode bool) *Context {
	return &Context{
		view:         newView(seed),
		randomness:   ExpandRandTape(seed, randTapeLenBytes),
		isVerifyMode: isVerifyMode,
	}
}

// NewContextWithRandomness constructs a context from an already-expanded
// randomness tape, bypassing ExpandRandTape. This is how the spec's
// deterministic test scenarios (an all-zeros tape of a given length) are
// built, and is equally usable by a driver that expands randomness by
// some other means.
func NewContextWithRandomness(seed RandTapeSeed, randomness []uint32, isVerifyMode bool) *Context {
	return &Context{
		view:         newView(seed),
		randomness:   randomness,
		isVerifyMode: isVerifyMode,
	}
}

// NewContextFromView builds a verify-mode context around an already
// committed view — used by the verifier for each party whose view was
// disclosed by the driver. The view's committed OutData32 entries are
// read back via ReplayCursor/OutAt; a reconstruct-side gate appends its
// derived output to the same view.
func NewContextFromView(view *View, randTapeLenBytes int) *Context {
	return &Context{
		view:         view,
		randomness:   ExpandRandTape(view.RandTapeSeed, randTapeLenBytes),
		isVerifyMode: true,
	}
}

// NewContextFromViewWithRandomness is NewContextFromView with an
// explicit randomness tape instead of one derived via ExpandRandTape —
// used where a test or driver needs the verifier's tape to match a
// prover's tape that was itself built with NewContextWithRandomness.
func NewContextFromViewWithRandomness(view *View, randomness []uint32) *Context {
	return &Context{
		view:         view,
		randomness:   randomness,
		isVerifyMode: true,
	}
}

// NextRandom returns the next unconsumed tape word and advances the
// randomness cursor. It is the sole point of randomness consumption in
// the whole core; determinism given the seed is the key soundness
// property this guards.
func (c *Context) NextRandom() (uint32, error) {
	if c.usedRandCtr >= len(c.randomness) {
		return 0, ErrRandomnessExhausted
	}
	r := c.randomness[c.usedRandCtr]
	c.usedRandCtr++
	return r, nil
}

// IsVerifyMode reports whether this context replays (true) or records
// (false) non-linear gate outputs. It is fixed at construction.
func (c *Context) IsVerifyMode() bool {
	return c.isVerifyMode
}

// UsedRandCtr returns the number of tape words consumed so far.
func (c *Context) UsedRandCtr() int {
	return c.usedRandCtr
}

// ReplayCursor returns the verifier's current position into OutData32.
func (c *Context) ReplayCursor() int {
	return c.outViewCtr32
}

// AdvanceReplay advances the replay cursor by one. Non-linear verifier
// gates call this exactly once per gate, for every context they touch,
// regardless of which reconstruct/check sub-case applied.
func (c *Context) AdvanceReplay() {
	c.outViewCtr32++
}

// OutLen returns the number of output entries recorded so far. This is
// also what the reconstruction predicate compares across parties 0 and 1.
func (c *Context) OutLen() int {
	return len(c.view.OutData32)
}

// AppendOutput appends word to this party's output transcript.
func (c *Context) AppendOutput(word uint32) {
	c.view.OutData32 = append(c.view.OutData32, word)
}

// OutAt reads a previously committed output entry, bounds-checked.
func (c *Context) OutAt(i int) (uint32, error) {
	if i < 0 || i >= len(c.view.OutData32) {
		return 0, fmt.Errorf("ikos: reading output entry %d of %d: %w", i, len(c.view.OutData32), ErrViewTooShort)
	}
	return c.view.OutData32[i], nil
}

// View exposes the underlying View, e.g. so a driver can attach InData or
// hand the committed view to the verifier.
func (c *Context) View() *View {
	return c.view
}

// CommitView returns the SHA-256 digest over seed || little-endian bytes
// of OutData32. An empty OutData32 commits to the seed alone. This is the
// value the outer protocol binds into its Fiat–Shamir transcript.
func (c *Context) CommitView() [32]byte {
	h := sha256.New()
	h.Write(c.view.RandTapeSeed[:])
	if n := len(c.view.OutData32); n > 0 {
		buf := make([]byte, n*4)
		for i, w := range c.view.OutData32 {
			binary.LittleEndian.PutUint32(buf[i*4:i*4+4], w)
		}
		h.Write(buf)
	}
	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// CommitViewHex returns CommitView as 64 lowercase hex characters, the
// wire form named in the spec's view commitment format.
func (c *Context) CommitViewHex() string {
	digest := c.CommitView()
	return hex.EncodeToString(digest[:])
}
