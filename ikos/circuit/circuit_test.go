package circuit

import (
	"testing"

	"github.com/luxfi/ikos/ikos"
)

func mustConfig(t *testing.T, randTapeLenBytes int) *Config {
	t.Helper()
	cfg, err := NewConfig(randTapeLenBytes)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return cfg
}

func TestProveCommitVerifyRoundTrip(t *testing.T) {
	cfg := mustConfig(t, 64)

	prover, err := NewProverCircuit(cfg)
	if err != nil {
		t.Fatalf("NewProverCircuit: %v", err)
	}

	x := [3]uint32{0xDEAD, 0, 0}
	y := [3]uint32{0xBEEF, 0, 0}

	if _, err := prover.Example32BitAdderAnd(x, y); err != nil {
		t.Fatalf("Example32BitAdderAnd: %v", err)
	}

	digests := prover.Commit()
	views := prover.Views()

	verifier := NewVerifierCircuit(cfg, views)
	if err := verifier.Verify([2]uint32{x[0], x[1]}, [2]uint32{y[0], y[1]}); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	// Committing again after verification must not have mutated the
	// prover's own views (VerifierCircuit clones before replay).
	if again := prover.Commit(); again != digests {
		t.Fatalf("prover commitments changed after verification: %v -> %v", digests, again)
	}
}

func TestVerifyDetectsTamperedView(t *testing.T) {
	cfg := mustConfig(t, 64)

	prover, err := NewProverCircuit(cfg)
	if err != nil {
		t.Fatalf("NewProverCircuit: %v", err)
	}

	x := [3]uint32{7, 0, 0}
	y := [3]uint32{3, 0, 0}

	if _, err := prover.Example32BitAdderAnd(x, y); err != nil {
		t.Fatalf("Example32BitAdderAnd: %v", err)
	}

	views := prover.Views()

	// Index 0 belongs to the circuit's first non-linear gate, which the
	// verifier always reconstructs rather than checks (its committed
	// entry is never read back); tamper index 1, the second gate's
	// entry, which the check branch does read.
	tampered := cloneView(views[0])
	tampered.OutData32[1] ^= 1

	verifier := NewVerifierCircuit(cfg, [3]*ikos.View{tampered, views[1], views[2]})
	if err := verifier.Verify([2]uint32{x[0], x[1]}, [2]uint32{y[0], y[1]}); err == nil {
		t.Fatalf("Verify with tampered view: expected an error, got nil")
	}
}

func TestProverCommitmentDeterminismAcrossRuns(t *testing.T) {
	cfg := mustConfig(t, 64)
	seeds := [3]ikos.RandTapeSeed{{1}, {2}, {3}}

	proverA := NewProverCircuitWithSeeds(cfg, seeds)
	proverB := NewProverCircuitWithSeeds(cfg, seeds)

	x := [3]uint32{42, 0, 0}
	y := [3]uint32{9, 0, 0}

	if _, err := proverA.Example32BitAdderAnd(x, y); err != nil {
		t.Fatalf("proverA: %v", err)
	}
	if _, err := proverB.Example32BitAdderAnd(x, y); err != nil {
		t.Fatalf("proverB: %v", err)
	}

	if proverA.Commit() != proverB.Commit() {
		t.Fatalf("identical seeds and inputs produced different commitments")
	}
}

func TestNewConfigRejectsNonPositiveLength(t *testing.T) {
	if _, err := NewConfig(0); err != ErrInvalidRandTapeLen {
		t.Fatalf("NewConfig(0) = %v, want ErrInvalidRandTapeLen", err)
	}
	if _, err := NewConfig(-1); err != ErrInvalidRandTapeLen {
		t.Fatalf("NewConfig(-1) = %v, want ErrInvalidRandTapeLen", err)
	}
}
