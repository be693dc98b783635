package main

import (
	"fmt"
	"log"

	"github.com/cornzx/Quantitative-Project/montecarlo"
	"github.com/cornzx/Quantitative-Project/option"
)

func main() {
	params := montecarlo.Params{
		Spot:        100,
		Strike:      105,
		Maturity:    1,
		Rate:        0.05,
		Vol:         0.2,
		Simulations: 100000,
		Steps:       100,
	}

	paths, err := montecarlo.Simulate(params, 42)
	if err != nil {
		log.Fatal(err)
	}

	asian, err := option.Price(option.AsianCall(paths, params), params)
	if err != nil {
		log.Fatal(err)
	}
	lookback, err := option.Price(option.LookbackCall(paths, params), params)
	if err != nil {
		log.Fatal(err)
	}
	binary, err := option.Price(option.BinaryAverageCall(paths, params), params)
	if err != nil {
		log.Fatal(err)
	}

	barrierPayoffs, err := option.Barrier(paths, params, option.BarrierSpec{
		Level:     90,
		Direction: option.DirectionDown,
		Knock:     option.KnockOut,
	})
	if err != nil {
		log.Fatal(err)
	}
	barrier, err := option.Price(barrierPayoffs, params)
	if err != nil {
		log.Fatal(err)
	}

	chooser := option.Chooser(paths, params)
	basket, err := option.Basket([]float64{0.5, 0.5}, []option.Result{asian, barrier})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Asian call:      %.4f (se %.4f)\n", asian.Price, asian.StdError)
	fmt.Printf("Lookback call:   %.4f (se %.4f)\n", lookback.Price, lookback.StdError)
	fmt.Printf("Down-and-out:    %.4f (se %.4f)\n", barrier.Price, barrier.StdError)
	fmt.Printf("Binary (avg):    %.4f (se %.4f)\n", binary.Price, binary.StdError)
	fmt.Printf("Chooser (%s):  %.4f\n", chooser.Side, chooser.Price)
	fmt.Printf("Basket 50/50:    %.4f\n", basket.Price)

	stats := montecarlo.NewRangeStats(paths)
	fmt.Printf("P(95 < S <= 115) = %.4f\n", stats.ProbabilityWithin(95, 115))
}
