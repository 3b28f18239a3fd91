package ikos

// View records one party's execution trace: the seed that determined its
// randomness tape, the (optional) committed inputs, and the ordered output
// words emitted by every non-linear gate this party executed. It is the
// object the driver serializes and binds into the outer Fiat–Shamir
// transcript via Context.CommitView.
type View struct {
	// RandTapeSeed is immutable once the view is constructed.
	RandTapeSeed RandTapeSeed

	// InData holds whatever committed input bytes the driver associates
	// with this party. The IKOS arithmetic never reads or writes it; it
	// is carried purely for interface completeness with the data model.
	InData []byte

	// OutData32 is the append-only transcript: one entry per non-linear
	// gate this party executed, in program order.
	OutData32 []uint32
}

func newView(seed RandTapeSeed) *View {
	return &View{RandTapeSeed: seed}
}

// SetInData attaches driver-committed input bytes to the view.
func (v *View) SetInData(data []byte) {
	v.InData = data
}
