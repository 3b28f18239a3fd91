package share

import "github.com/luxfi/ikos/ikos"

// PVar is a prover-side shared 32-bit word: three 32-bit shares, one per
// party, plus the three party contexts it is bound to. A PVar with a nil
// or empty Ctx is unbound — it represents a public constant, identical
// across all three shares, and gates over it touch no context state.
type PVar struct {
	Value [3]uint32
	Ctx   []*ikos.Context
}

// NewPVar returns the zero shared variable, unbound.
func NewPVar() PVar {
	return PVar{}
}

// NewPVarValue returns an unbound public constant, broadcast to all three
// shares.
func NewPVarValue(w uint32) PVar {
	return PVar{Value: [3]uint32{w, w, w}}
}

// NewPVarShare wraps an already-shared value with its three party
// contexts. len(ctx) must be 0 or 3.
func NewPVarShare(value [3]uint32, ctx []*ikos.Context) PVar {
	return PVar{Value: value, Ctx: ctx}
}

func (p PVar) isEmptyContext() bool {
	return len(p.Ctx) == 0
}

// inheritContext adopts rhsCtx if the receiver is unbound. Contexts are
// shared by reference, never cloned — see ikos.Context's doc comment.
func (p *PVar) inheritContext(rhsCtx []*ikos.Context) {
	if p.isEmptyContext() {
		p.Ctx = rhsCtx
	}
}

// Negate computes the bitwise complement of every share. Linear, free of
// randomness and view entries.
func (p PVar) Negate() PVar {
	for i := range p.Value {
		p.Value[i] = ^p.Value[i]
	}
	return p
}

// Xor computes the share-wise XOR of p and rhs — the secret-sharing
// addition over GF(2). Linear: consumes no randomness, appends nothing to
// any view.
func (p PVar) Xor(rhs *PVar) PVar {
	p.inheritContext(rhs.Ctx)
	for i := range p.Value {
		p.Value[i] ^= rhs.Value[i]
	}
	return p
}

// Shl shifts every share left by n bits. Linear.
func (p PVar) Shl(n uint32) PVar {
	for i := range p.Value {
		p.Value[i] <<= n
	}
	return p
}

// Shr shifts every share right by n bits. Linear.
func (p PVar) Shr(n uint32) PVar {
	for i := range p.Value {
		p.Value[i] >>= n
	}
	return p
}
