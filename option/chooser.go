package option

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cornzx/Quantitative-Project/montecarlo"
)

// ChooserSide records which leg a chooser evaluation selected.
type ChooserSide int

const (
	// SideCall means the aggregate call payoff won.
	SideCall ChooserSide = iota
	// SidePut means the aggregate put payoff won.
	SidePut
)

func (s ChooserSide) String() string {
	if s == SidePut {
		return "put"
	}
	return "call"
}

// ChooserResult is the outcome of a batch chooser evaluation.
type ChooserResult struct {
	// Price is the mean payoff of the winning leg, max(Σcall, Σput)/N.
	// No discounting is applied: the selection convention prices the raw
	// winning average.
	Price float64
	// Side is the leg that won.
	Side ChooserSide
	// CallPayoffs and PutPayoffs are the two candidate vectors, exposed so
	// callers can re-aggregate or inspect them.
	CallPayoffs PayoffVector
	PutPayoffs  PayoffVector
}

// Chooser evaluates a chooser option by batch selection: terminal call and
// put payoff vectors are computed over the whole matrix, their aggregate
// sums compared once, and the winning leg's mean taken as the price. The
// choice is made over the entire batch of simulations, not per path, so the
// result is exactly reproducible from the same matrix.
func Chooser(paths *montecarlo.PathMatrix, p montecarlo.Params) ChooserResult {
	call := EuropeanCall(paths, p)
	put := EuropeanPut(paths, p)

	sumCall := floats.Sum(call)
	sumPut := floats.Sum(put)
	n := float64(paths.Rows())

	res := ChooserResult{
		Side:        SideCall,
		Price:       sumCall / n,
		CallPayoffs: call,
		PutPayoffs:  put,
	}
	if sumPut > sumCall {
		res.Side = SidePut
		res.Price = sumPut / n
	}
	return res
}
