package share

import "github.com/luxfi/ikos/ikos"

// And computes the share-wise AND of p and rhs. For each party i, one
// fresh tape word is drawn and one output word is appended to that
// party's view — this is the non-linear gate at the heart of the circuit
// (spec §4.3's prover path).
//
// If both operands are unbound (public constants), the gate is a plain
// machine AND with no tape or view effect.
func (p PVar) And(rhs *PVar) (PVar, error) {
	if p.isEmptyContext() && rhs.isEmptyContext() {
		for i := range p.Value {
			p.Value[i] &= rhs.Value[i]
		}
		return p, nil
	}
	p.inheritContext(rhs.Ctx)
	if len(p.Ctx) != 3 {
		return PVar{}, ikos.ErrContextCountMismatch
	}

	var rnd [3]uint32
	for i := 0; i < 3; i++ {
		r, err := p.Ctx[i].NextRandom()
		if err != nil {
			return PVar{}, err
		}
		rnd[i] = r
	}

	var out [3]uint32
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		out[i] = (p.Value[i] & rhs.Value[j]) ^ (p.Value[j] & rhs.Value[i]) ^ (p.Value[i] & rhs.Value[i]) ^ rnd[i] ^ rnd[j]
	}
	for i := 0; i < 3; i++ {
		p.Value[i] = out[i]
		p.Ctx[i].AppendOutput(p.Value[i])
	}
	return p, nil
}

// Add computes the share-wise sum of p and rhs via a bit-serial
// ripple-carry adder expressed over the three shares (spec §4.4). Each of
// the 31 carry steps reuses the three tape words drawn once at the start
// of the gate; the low bit of the carry is implicitly zero. One carry
// word is appended per party.
//
// If both operands are unbound, the gate is a plain machine addition with
// no tape or view effect.
func (p PVar) Add(rhs *PVar) (PVar, error) {
	if p.isEmptyContext() && rhs.isEmptyContext() {
		for i := range p.Value {
			p.Value[i] += rhs.Value[i]
		}
		return p, nil
	}
	p.inheritContext(rhs.Ctx)
	if len(p.Ctx) != 3 {
		return PVar{}, ikos.ErrContextCountMismatch
	}

	var rnd [3]uint32
	for i := 0; i < 3; i++ {
		r, err := p.Ctx[i].NextRandom()
		if err != nil {
			return PVar{}, err
		}
		rnd[i] = r
	}

	var carry [3]uint32
	for i := 0; i < 31; i++ {
		var a, b [3]uint32
		for j := 0; j < 3; j++ {
			a[j] = getBit(p.Value[j]^carry[j], i)
			b[j] = getBit(rhs.Value[j]^carry[j], i)
		}
		for j := 0; j < 3; j++ {
			k := (j + 1) % 3
			c := (a[j] & b[k]) ^ (a[k] & b[j]) ^ getBit(rnd[k], i)
			bit := c ^ (a[j] & b[j]) ^ getBit(carry[j], i) ^ getBit(rnd[j], i)
			setBit(&carry[j], i+1, bit)
		}
	}

	for i := 0; i < 3; i++ {
		p.Value[i] = p.Value[i] ^ rhs.Value[i] ^ carry[i]
		p.Ctx[i].AppendOutput(carry[i])
	}
	return p, nil
}

// BitOr computes the share-wise OR of p and rhs as (p^rhs) ^ (p&rhs),
// routing the AND sub-term through the real non-linear AND gate. The
// source this module is grounded on treats OR as a free linear gate,
// which is not sound under secret sharing (OR is not linear over GF(2));
// this implementation does not inherit that bug.
func (p PVar) BitOr(rhs *PVar) (PVar, error) {
	xored := p.Xor(rhs)
	anded, err := p.And(rhs)
	if err != nil {
		return PVar{}, err
	}
	return xored.Xor(&anded), nil
}
