package option

import (
	"fmt"
	"math"
)

// Basket blends already-priced components with fixed weights:
//
//	price = Σ wᵢ · priceᵢ
//
// This is a post-hoc linear combination of option prices, not a
// joint-diffusion basket: components are priced independently and no
// cross-asset correlation is modeled. Standard errors combine under the same
// independence assumption, se = sqrt(Σ (wᵢ·seᵢ)²).
func Basket(weights []float64, components []Result) (Result, error) {
	if len(weights) == 0 {
		return Result{}, fmt.Errorf("Basket: at least one component is required")
	}
	if len(weights) != len(components) {
		return Result{}, fmt.Errorf("Basket: %d weights for %d components", len(weights), len(components))
	}

	var price, variance, se2 float64
	for i, w := range weights {
		price += w * components[i].Price
		variance += w * w * components[i].Variance
		se2 += w * w * components[i].StdError * components[i].StdError
	}

	return Result{
		Price:    price,
		Variance: variance,
		StdError: math.Sqrt(se2),
	}, nil
}
