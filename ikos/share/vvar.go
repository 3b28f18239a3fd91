package share

import "github.com/luxfi/ikos/ikos"

// VVar is a verifier-side shared 32-bit word. Like PVar it carries three
// shares and (if bound) three party contexts, but a verifier never checks
// party 2's output: its non-linear gates either reconstruct party 0's
// output from the recurrence (and compare nothing) or check party 0's
// output against the committed view, while party 1's output is always
// read from its committed view. The verify-mode AND gate leaves party 2's
// share as it was; the ADD gate reads party 2's carry from its committed
// view. The invariant that the three shares XOR to the cleartext is a
// property of the prover's run, not something the verifier reconstructs
// for itself.
//
// InstRandom and instRandomCtr exist only for VVar's "simulation" role:
// before the challenge is drawn, the outer ZKBoo driver runs all three
// MPC-in-the-head executions through VVar in non-verify mode, injecting
// randomness for the not-yet-determined hidden party. instRandomCtr is a
// dedicated cursor, not — unlike the source this is grounded on —
// overlaid on InstRandom[0]; it starts at 0 and InstRandom holds pure
// data from index 0 onward.
type VVar struct {
	Value         [3]uint32
	Ctx           []*ikos.Context
	InstRandom    []uint32
	instRandomCtr int
}

// NewVVar returns the zero shared variable, unbound.
func NewVVar() VVar {
	return VVar{}
}

// NewVVarValue returns an unbound public constant, broadcast to all three
// shares.
func NewVVarValue(w uint32) VVar {
	return VVar{Value: [3]uint32{w, w, w}}
}

// NewVVarShare wraps an already-shared value with its party contexts.
// len(ctx) must be 0 or 3.
func NewVVarShare(value [3]uint32, ctx []*ikos.Context) VVar {
	return VVar{Value: value, Ctx: ctx}
}

// NewVVarShareWithRandom is like NewVVarShare but also supplies the
// injected randomness stream used in non-verify (simulation) mode. The
// cursor into instRandom starts at 0.
func NewVVarShareWithRandom(value [3]uint32, ctx []*ikos.Context, instRandom []uint32) VVar {
	return VVar{Value: value, Ctx: ctx, InstRandom: instRandom}
}

func (v VVar) isEmptyContext() bool {
	return len(v.Ctx) == 0
}

func (v *VVar) inheritContext(rhsCtx []*ikos.Context) {
	if v.isEmptyContext() {
		v.Ctx = rhsCtx
	}
}

// nextInstRandom consumes the next word of the simulated third party's
// injected randomness.
func (v *VVar) nextInstRandom() (uint32, error) {
	if v.instRandomCtr >= len(v.InstRandom) {
		return 0, ikos.ErrInstRandomExhausted
	}
	val := v.InstRandom[v.instRandomCtr]
	v.instRandomCtr++
	return val, nil
}

// requireReconstruct decides, for a given gate, whether the verifier must
// reconstruct party 0's output (true) or check it against a committed
// entry (false). The decision is driven entirely by transcript length:
// whenever party 0's and party 1's transcripts are the same length, party
// 0's output for this gate is derived and appended; otherwise it is
// checked against party 0's committed entry at the replay cursor. Party
// 2's transcript length plays no part.
func requireReconstruct(ctx []*ikos.Context) bool {
	return ctx[0].OutLen() == ctx[1].OutLen()
}

// nextRandomForParty draws party i's tape word. Party 2's randomness is
// always 0 — it is the hidden party in verify mode, and its tape is
// never drawn from.
func nextRandomForParty(ctx []*ikos.Context, i int) (uint32, error) {
	if i < 2 {
		return ctx[i].NextRandom()
	}
	return 0, nil
}

// Negate computes the bitwise complement of every share. Linear.
func (v VVar) Negate() VVar {
	for i := range v.Value {
		v.Value[i] = ^v.Value[i]
	}
	return v
}

// Xor computes the share-wise XOR of v and rhs. Linear.
func (v VVar) Xor(rhs *VVar) VVar {
	v.inheritContext(rhs.Ctx)
	for i := range v.Value {
		v.Value[i] ^= rhs.Value[i]
	}
	return v
}

// Shl shifts every share left by n bits. Linear.
func (v VVar) Shl(n uint32) VVar {
	for i := range v.Value {
		v.Value[i] <<= n
	}
	return v
}

// Shr shifts every share right by n bits. Linear.
func (v VVar) Shr(n uint32) VVar {
	for i := range v.Value {
		v.Value[i] >>= n
	}
	return v
}
