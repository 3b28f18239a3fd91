package share

import (
	"fmt"

	"github.com/luxfi/ikos/ikos"
)

// And verifies or reconstructs party 0's share of the AND gate, reading
// party 1's share from its committed view, per spec §4.3. If both
// operands are unbound, this is a plain machine AND. In non-verify
// (simulation) mode, party 1's share is instead the next InstRandom word,
// and all three shares are appended to their views.
//
// Reconstruct side (requireReconstruct true): party 0's output is
// computed with the same formula the prover uses and appended to its
// view (there is nothing yet to check it against).
//
// Check side: party 0's output is computed and compared against the
// already-committed entry; a mismatch is ErrAndCheckMismatch.
//
// In both sub-cases every context's replay cursor advances by one.
func (v VVar) And(rhs *VVar) (VVar, error) {
	if v.isEmptyContext() && rhs.isEmptyContext() {
		for i := range v.Value {
			v.Value[i] &= rhs.Value[i]
		}
		return v, nil
	}
	v.inheritContext(rhs.Ctx)
	if len(v.Ctx) != 3 {
		return VVar{}, ikos.ErrContextCountMismatch
	}

	var rnd [3]uint32
	for i := 0; i < 3; i++ {
		r, err := nextRandomForParty(v.Ctx, i)
		if err != nil {
			return VVar{}, err
		}
		rnd[i] = r
	}

	out := (v.Value[0] & rhs.Value[1]) ^ (v.Value[1] & rhs.Value[0]) ^ (v.Value[0] & rhs.Value[0]) ^ rnd[0] ^ rnd[1]

	if v.Ctx[0].IsVerifyMode() {
		if requireReconstruct(v.Ctx) {
			v.Ctx[0].AppendOutput(out)
		} else {
			want, err := v.Ctx[0].OutAt(v.Ctx[0].ReplayCursor())
			if err != nil {
				return VVar{}, err
			}
			if out != want {
				return VVar{}, fmt.Errorf("ikos/share: AND gate at replay index %d: %w", v.Ctx[0].ReplayCursor(), ikos.ErrAndCheckMismatch)
			}
		}
		v.Value[0] = out

		party1, err := v.Ctx[1].OutAt(v.Ctx[1].ReplayCursor())
		if err != nil {
			return VVar{}, err
		}
		v.Value[1] = party1

		for i := 0; i < 3; i++ {
			v.Ctx[i].AdvanceReplay()
		}
	} else {
		v.Value[0] = out

		party1, err := v.nextInstRandom()
		if err != nil {
			return VVar{}, err
		}
		v.Value[1] = party1

		for i := 0; i < 3; i++ {
			v.Ctx[i].AppendOutput(v.Value[i])
		}
	}

	return v, nil
}

// Add mirrors And's reconstruct/check branching over the 31-step carry
// recurrence (spec §4.4). On the reconstruct side, carry[1] and carry[2]
// are read from their committed views and carry[0] is derived bit by
// bit; on the check side all three carries are read from their views,
// bit 0 of party 0's carry must be zero (there is no carry in), and every
// recurrence step is cross-checked, failing with ErrAddCheckMismatch on
// the first disagreement.
func (v VVar) Add(rhs *VVar) (VVar, error) {
	if v.isEmptyContext() && rhs.isEmptyContext() {
		for i := range v.Value {
			v.Value[i] += rhs.Value[i]
		}
		return v, nil
	}
	v.inheritContext(rhs.Ctx)
	if len(v.Ctx) != 3 {
		return VVar{}, ikos.ErrContextCountMismatch
	}

	var rnd [3]uint32
	for i := 0; i < 3; i++ {
		r, err := nextRandomForParty(v.Ctx, i)
		if err != nil {
			return VVar{}, err
		}
		rnd[i] = r
	}

	var carry [3]uint32

	if v.Ctx[0].IsVerifyMode() {
		required := requireReconstruct(v.Ctx)
		for i := 0; i < 3; i++ {
			if !required || i != 0 {
				word, err := v.Ctx[i].OutAt(v.Ctx[i].ReplayCursor())
				if err != nil {
					return VVar{}, err
				}
				carry[i] = word
			}
			v.Ctx[i].AdvanceReplay()
		}

		if !required && getBit(carry[0], 0) != 0 {
			return VVar{}, fmt.Errorf("ikos/share: ADD gate carry bit 0 is set: %w", ikos.ErrAddCheckMismatch)
		}

		for i := 0; i < 31; i++ {
			var a, b [3]uint32
			for j := 0; j < 3; j++ {
				a[j] = getBit(v.Value[j]^carry[j], i)
				b[j] = getBit(rhs.Value[j]^carry[j], i)
			}
			c := (a[0] & b[1]) ^ (a[1] & b[0]) ^ getBit(rnd[1], i)
			rhsBit := c ^ (a[0] & b[0]) ^ getBit(carry[0], i) ^ getBit(rnd[0], i)

			if !required {
				if rhsBit != getBit(carry[0], i+1) {
					return VVar{}, fmt.Errorf("ikos/share: ADD gate at carry bit %d: %w", i, ikos.ErrAddCheckMismatch)
				}
			} else {
				setBit(&carry[0], i+1, rhsBit)
			}
		}

		if required {
			v.Ctx[0].AppendOutput(carry[0])
		}

		for i := 0; i < 3; i++ {
			v.Value[i] = v.Value[i] ^ rhs.Value[i] ^ carry[i]
		}
	} else {
		simulated, err := v.nextInstRandom()
		if err != nil {
			return VVar{}, err
		}
		carry[1] = simulated
		setBit(&carry[1], 0, 0)

		for i := 0; i < 31; i++ {
			var a, b [3]uint32
			for j := 0; j < 3; j++ {
				a[j] = getBit(v.Value[j]^carry[j], i)
				b[j] = getBit(rhs.Value[j]^carry[j], i)
			}
			c := (a[0] & b[1]) ^ (a[1] & b[0]) ^ getBit(rnd[1], i)
			setBit(&carry[0], i+1, c^(a[0]&b[0])^getBit(carry[0], i)^getBit(rnd[0], i))
		}

		for i := 0; i < 3; i++ {
			v.Value[i] = v.Value[i] ^ rhs.Value[i] ^ carry[i]
			v.Ctx[i].AppendOutput(carry[i])
		}
	}

	return v, nil
}

// BitOr computes the share-wise OR of v and rhs as (v^rhs) ^ (v&rhs), the
// same non-linear-OR fix applied to PVar.BitOr.
func (v VVar) BitOr(rhs *VVar) (VVar, error) {
	xored := v.Xor(rhs)
	anded, err := v.And(rhs)
	if err != nil {
		return VVar{}, err
	}
	return xored.Xor(&anded), nil
}
