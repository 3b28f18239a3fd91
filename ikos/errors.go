// Package ikos implements the per-party randomness tape, output view, and
// commitment scheme that underlie the IKOS three-party MPC-in-the-head
// arithmetic core. See the sibling package ikos/share for the share type
// and gate algebra built on top of this one.
package ikos

import "errors"

var (
	// ErrRandomnessExhausted is returned by Context.NextRandom when the
	// pre-expanded tape has no words left. It indicates the caller sized
	// the tape too small for the circuit being executed.
	ErrRandomnessExhausted = errors.New("ikos: all pre-generated randomness is exhausted")

	// ErrAndCheckMismatch is returned by the verifier's AND gate when a
	// recomputed output disagrees with the committed transcript entry.
	ErrAndCheckMismatch = errors.New("ikos: AND operation check failed")

	// ErrAddCheckMismatch is returned by the verifier's ADD gate when the
	// carry recurrence disagrees with the committed transcript.
	ErrAddCheckMismatch = errors.New("ikos: ADD operation check failed")

	// ErrContextCountMismatch is returned when a shared variable is bound
	// to something other than exactly three party contexts.
	ErrContextCountMismatch = errors.New("ikos: shared variable must bind exactly three party contexts")

	// ErrViewTooShort is returned when a gate tries to replay an output
	// entry past the end of a committed view.
	ErrViewTooShort = errors.New("ikos: committed view has fewer output entries than the replay requires")

	// ErrInstRandomExhausted is returned when a simulated (non-verify
	// mode) V-var runs out of injected third-party randomness.
	ErrInstRandomExhausted = errors.New("ikos: simulated party randomness is exhausted")
)
