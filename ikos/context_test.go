package ikos

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func TestExpandRandTapeLength(t *testing.T) {
	var seed RandTapeSeed
	tape := ExpandRandTape(seed, 128)
	want := (128*8 + 31) / 32
	if len(tape) != want {
		t.Fatalf("tape length = %d, want %d", len(tape), want)
	}
}

func TestExpandRandTapeDeterministic(t *testing.T) {
	seed := RandTapeSeed{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	a := ExpandRandTape(seed, 64)
	b := ExpandRandTape(seed, 64)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("word %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestExpandRandTapeSeedSensitivity(t *testing.T) {
	seedA := RandTapeSeed{}
	seedB := RandTapeSeed{0xFF}
	a := ExpandRandTape(seedA, 64)
	b := ExpandRandTape(seedB, 64)
	identical := true
	for i := range a {
		if a[i] != b[i] {
			identical = false
			break
		}
	}
	if identical {
		t.Fatalf("different seeds produced identical tapes")
	}
}

func TestContextNextRandomExhaustion(t *testing.T) {
	ctx := NewContextWithSeed(RandTapeSeed{}, 4, false) // 1 word of tape
	if _, err := ctx.NextRandom(); err != nil {
		t.Fatalf("first draw: unexpected error %v", err)
	}
	if _, err := ctx.NextRandom(); err != ErrRandomnessExhausted {
		t.Fatalf("second draw: got %v, want ErrRandomnessExhausted", err)
	}
}

func TestContextNextRandomMonotonic(t *testing.T) {
	ctx := NewContextWithSeed(RandTapeSeed{}, 16, false)
	for i := 0; i < 4; i++ {
		if ctx.UsedRandCtr() != i {
			t.Fatalf("UsedRandCtr = %d, want %d", ctx.UsedRandCtr(), i)
		}
		if _, err := ctx.NextRandom(); err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
	}
}

func TestCommitViewEmptyOutData(t *testing.T) {
	seed := RandTapeSeed{9, 9, 9}
	ctx := NewContextWithSeed(seed, 16, false)
	digest := ctx.CommitView()

	// An empty OutData32 must commit to the seed alone.
	want := shaSeedOnly(seed)
	if digest != want {
		t.Fatalf("commit with empty OutData32 != sha256(seed)")
	}
}

func TestCommitViewDeterministic(t *testing.T) {
	seed := RandTapeSeed{1, 2, 3}
	ctxA := NewContextWithSeed(seed, 16, false)
	ctxB := NewContextWithSeed(seed, 16, false)

	for _, w := range []uint32{1, 2, 3, 0xDEADBEEF} {
		ctxA.AppendOutput(w)
		ctxB.AppendOutput(w)
	}

	if ctxA.CommitView() != ctxB.CommitView() {
		t.Fatalf("two contexts with identical seed and gate sequence committed to different digests")
	}
}

func TestCommitViewHexLength(t *testing.T) {
	ctx := NewContextWithSeed(RandTapeSeed{}, 16, false)
	ctx.AppendOutput(42)
	hexStr := ctx.CommitViewHex()
	if len(hexStr) != 64 {
		t.Fatalf("commit hex length = %d, want 64", len(hexStr))
	}
}

func TestOutAtBounds(t *testing.T) {
	ctx := NewContextWithSeed(RandTapeSeed{}, 16, false)
	ctx.AppendOutput(7)
	if _, err := ctx.OutAt(0); err != nil {
		t.Fatalf("unexpected error reading entry 0: %v", err)
	}
	if _, err := ctx.OutAt(1); err == nil {
		t.Fatalf("expected error reading past the end of OutData32")
	}
}

func shaSeedOnly(seed RandTapeSeed) [32]byte {
	return sha256.Sum256(seed[:])
}

func TestViewSetInData(t *testing.T) {
	v := newView(RandTapeSeed{})
	v.SetInData([]byte("hello"))
	if !bytes.Equal(v.InData, []byte("hello")) {
		t.Fatalf("InData not set")
	}
}
