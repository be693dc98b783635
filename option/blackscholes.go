package option

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cornzx/Quantitative-Project/montecarlo"
)

var stdNormal = distuv.UnitNormal

// BlackScholesCall returns the closed-form Black-Scholes price of a European
// call under p. It serves as the analytic anchor for Monte Carlo estimates.
//
// With zero volatility the price degenerates to the discounted intrinsic
// value on the forward, max(0, S − K·exp(−r·T)).
func BlackScholesCall(p montecarlo.Params) float64 {
	if p.Vol == 0 {
		return math.Max(0, p.Spot-p.Strike*p.DiscountFactor())
	}
	d1, d2 := dTerms(p)
	return p.Spot*stdNormal.CDF(d1) - p.Strike*p.DiscountFactor()*stdNormal.CDF(d2)
}

// BlackScholesPut returns the closed-form Black-Scholes price of a European
// put under p.
func BlackScholesPut(p montecarlo.Params) float64 {
	if p.Vol == 0 {
		return math.Max(0, p.Strike*p.DiscountFactor()-p.Spot)
	}
	d1, d2 := dTerms(p)
	return p.Strike*p.DiscountFactor()*stdNormal.CDF(-d2) - p.Spot*stdNormal.CDF(-d1)
}

func dTerms(p montecarlo.Params) (float64, float64) {
	volT := p.Vol * math.Sqrt(p.Maturity)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate+0.5*p.Vol*p.Vol)*p.Maturity) / volT
	return d1, d1 - volT
}

// ImpliedVolResult is the output of ImpliedCallVolatility.
type ImpliedVolResult struct {
	// Vol is the annualised volatility (decimal) reproducing the market
	// price.
	Vol float64
	// Iterations is the number of Newton-Raphson steps taken.
	Iterations int
}

// ---------------------------------------------------------------------------
// Newton-Raphson solver (unexported constants)
// ---------------------------------------------------------------------------

const (
	volTolerance = 1e-10
	volMaxIter   = 100
	volFloor     = 1e-4
	volCeiling   = 5.0
)

// ImpliedCallVolatility solves for the volatility σ such that the
// Black-Scholes call price under p (with its Vol field replaced by σ) equals
// marketPrice.
//
// The solver uses Newton-Raphson with the analytic vega as derivative.
func ImpliedCallVolatility(p montecarlo.Params, marketPrice float64) (ImpliedVolResult, error) {
	if err := p.Validate(); err != nil {
		return ImpliedVolResult{}, err
	}

	intrinsic := math.Max(0, p.Spot-p.Strike*p.DiscountFactor())
	if marketPrice < intrinsic {
		return ImpliedVolResult{}, fmt.Errorf("ImpliedCallVolatility: price %v below intrinsic value %v", marketPrice, intrinsic)
	}
	if marketPrice >= p.Spot {
		return ImpliedVolResult{}, fmt.Errorf("ImpliedCallVolatility: price %v at or above spot %v", marketPrice, p.Spot)
	}

	// Initial guess: mid-range (20 %).
	sigma := clamp(0.2, volFloor, volCeiling)

	for iter := 0; iter < volMaxIter; iter++ {
		trial := p
		trial.Vol = sigma

		f := BlackScholesCall(trial) - marketPrice
		if math.Abs(f) < volTolerance {
			return ImpliedVolResult{Vol: sigma, Iterations: iter + 1}, nil
		}

		vega := callVega(trial)
		if math.Abs(vega) < 1e-15 {
			return ImpliedVolResult{}, fmt.Errorf("ImpliedCallVolatility: vega too small at iter %d", iter)
		}

		sigma = clamp(sigma-f/vega, volFloor, volCeiling)
	}

	return ImpliedVolResult{}, fmt.Errorf("ImpliedCallVolatility: did not converge after %d iterations", volMaxIter)
}

// callVega returns dPrice/dVol, the Newton derivative.
func callVega(p montecarlo.Params) float64 {
	d1, _ := dTerms(p)
	return p.Spot * math.Sqrt(p.Maturity) * stdNormal.Prob(d1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
