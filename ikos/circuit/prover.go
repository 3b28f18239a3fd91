package circuit

import (
	"github.com/luxfi/ikos/ikos"
	"github.com/luxfi/ikos/ikos/share"
)

// ProverCircuit owns one prove-mode Context per party — the three-way
// analogue of threshold.Coordinator collecting a signing round's
// per-party state — and exposes a small fixed computation exercising
// every gate kind.
type ProverCircuit struct {
	config *Config
	ctx    []*ikos.Context
}

// NewProverCircuit creates a prover circuit with freshly drawn, randomly
// seeded party contexts.
func NewProverCircuit(config *Config) (*ProverCircuit, error) {
	ctx := make([]*ikos.Context, 3)
	for i := range ctx {
		c, err := ikos.NewContext(config.RandTapeLenBytes, false)
		if err != nil {
			return nil, err
		}
		ctx[i] = c
	}
	return &ProverCircuit{config: config, ctx: ctx}, nil
}

// NewProverCircuitWithSeeds builds a prover circuit from caller-supplied
// seeds, letting a test reconstruct an identical tape for two independent
// Context sets (spec §8 scenario 6).
func NewProverCircuitWithSeeds(config *Config, seeds [3]ikos.RandTapeSeed) *ProverCircuit {
	ctx := make([]*ikos.Context, 3)
	for i := range ctx {
		ctx[i] = ikos.NewContextWithSeed(seeds[i], config.RandTapeLenBytes, false)
	}
	return &ProverCircuit{config: config, ctx: ctx}
}

// Seeds returns the three parties' randomness-tape seeds.
func (c *ProverCircuit) Seeds() [3]ikos.RandTapeSeed {
	var seeds [3]ikos.RandTapeSeed
	for i, ctx := range c.ctx {
		seeds[i] = ctx.View().RandTapeSeed
	}
	return seeds
}

// Example32BitAdderAnd runs a small fixed computation over two
// secret-shared 32-bit inputs, composing every gate kind: XOR, AND, ADD,
// and the AND-routed BitOr. It computes
// ((x XOR y) ADD (x AND y)) BITOR (x ADD y).
func (c *ProverCircuit) Example32BitAdderAnd(x, y [3]uint32) (share.PVar, error) {
	xv := share.NewPVarShare(x, c.ctx)
	yv := share.NewPVarShare(y, c.ctx)

	xored := xv.Xor(&yv)
	anded, err := xv.And(&yv)
	if err != nil {
		return share.PVar{}, err
	}
	combined, err := xored.Add(&anded)
	if err != nil {
		return share.PVar{}, err
	}
	summed, err := xv.Add(&yv)
	if err != nil {
		return share.PVar{}, err
	}
	return combined.BitOr(&summed)
}

// Commit returns the three parties' committed view digests (spec §4.1,
// §6) — the prover-side counterpart of threshold.Aggregate collecting
// per-party contributions into one artifact.
func (c *ProverCircuit) Commit() [3][32]byte {
	var digests [3][32]byte
	for i, ctx := range c.ctx {
		digests[i] = ctx.CommitView()
	}
	return digests
}

// Views exposes the three parties' committed views so a driver can hand
// them to a VerifierCircuit.
func (c *ProverCircuit) Views() [3]*ikos.View {
	var views [3]*ikos.View
	for i, ctx := range c.ctx {
		views[i] = ctx.View()
	}
	return views
}
