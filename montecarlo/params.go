package montecarlo

import (
	"fmt"
	"math"
)

// Params holds the inputs of a simulation run.
//
// A Params value is treated as immutable once a run begins: every component
// receives it by value and nothing in this module mutates it.
type Params struct {
	// Spot is the current price of the underlying.
	Spot float64
	// Strike is the exercise price used by the payoff evaluators.
	Strike float64
	// Maturity is the time to expiry in years.
	Maturity float64
	// Rate is the continuously compounded risk-free rate (decimal, e.g. 0.05).
	Rate float64
	// Vol is the annualised volatility (decimal). Zero is allowed and
	// produces deterministic paths.
	Vol float64
	// Simulations is the number of independent paths (N).
	Simulations int
	// Steps is the number of discrete time steps per path (M).
	Steps int
}

// Validate rejects parameter sets that cannot be simulated. It is called
// before any randomness is consumed.
func (p Params) Validate() error {
	if !(p.Spot > 0) {
		return fmt.Errorf("Validate: spot must be positive, got %v", p.Spot)
	}
	if !(p.Strike > 0) {
		return fmt.Errorf("Validate: strike must be positive, got %v", p.Strike)
	}
	if !(p.Maturity > 0) {
		return fmt.Errorf("Validate: maturity must be positive, got %v", p.Maturity)
	}
	if math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0) {
		return fmt.Errorf("Validate: rate must be finite, got %v", p.Rate)
	}
	if p.Vol < 0 || math.IsNaN(p.Vol) {
		return fmt.Errorf("Validate: volatility must be non-negative, got %v", p.Vol)
	}
	if p.Simulations <= 0 {
		return fmt.Errorf("Validate: simulation count must be positive, got %d", p.Simulations)
	}
	if p.Steps <= 0 {
		return fmt.Errorf("Validate: step count must be positive, got %d", p.Steps)
	}
	return nil
}

// Dt returns the step size in years.
func (p Params) Dt() float64 {
	return p.Maturity / float64(p.Steps)
}

// DiscountFactor returns exp(-r·T), the present-value factor for a cash flow
// at maturity.
func (p Params) DiscountFactor() float64 {
	return math.Exp(-p.Rate * p.Maturity)
}
