package option_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cornzx/Quantitative-Project/montecarlo"
	"github.com/cornzx/Quantitative-Project/option"
)

// referenceParams is the documented end-to-end scenario:
// spot 100, strike 105, T=1, r=5%, σ=20%, 100k paths of 100 steps.
func referenceParams() montecarlo.Params {
	return montecarlo.Params{
		Spot:        100,
		Strike:      105,
		Maturity:    1,
		Rate:        0.05,
		Vol:         0.2,
		Simulations: 100000,
		Steps:       100,
	}
}

func TestReferenceScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k-path scenario in short mode")
	}
	t.Parallel()

	p := referenceParams()
	paths, err := montecarlo.Simulate(p, 42)
	require.NoError(t, err)

	european, err := option.Price(option.EuropeanCall(paths, p), p)
	require.NoError(t, err)

	// The terminal-payoff Monte Carlo estimate must agree with the
	// closed-form Black-Scholes price within sampling tolerance.
	analytic := option.BlackScholesCall(p)
	require.InDelta(t, analytic, european.Price, 4*european.StdError,
		"European MC %.4f vs Black-Scholes %.4f", european.Price, analytic)

	asian, err := option.Price(option.AsianCall(paths, p), p)
	require.NoError(t, err)
	lookback, err := option.Price(option.LookbackCall(paths, p), p)
	require.NoError(t, err)

	// The running maximum dominates both the running mean and the terminal
	// price, so the lookback call is the most expensive of the three.
	require.True(t, lookback.Price >= asian.Price)
	require.True(t, lookback.Price >= european.Price)
	require.True(t, asian.Price > 0)

	binary, err := option.Price(option.BinaryAverageCall(paths, p), p)
	require.NoError(t, err)
	require.True(t, binary.Price > 0 && binary.Price < 1)

	barrierPayoffs, err := option.Barrier(paths, p, option.BarrierSpec{
		Level:     90,
		Direction: option.DirectionDown,
		Knock:     option.KnockOut,
	})
	require.NoError(t, err)
	barrier, err := option.Price(barrierPayoffs, p)
	require.NoError(t, err)
	require.True(t, barrier.Price > 0)
}

func TestReferenceScenario_Reproducible(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k-path scenario in short mode")
	}
	t.Parallel()

	p := referenceParams()

	run := func() option.Result {
		paths, err := montecarlo.Simulate(p, 42)
		require.NoError(t, err)
		res, err := option.Price(option.AsianCall(paths, p), p)
		require.NoError(t, err)
		return res
	}

	first := run()
	second := run()
	require.Equal(t, first, second)
}

func TestStandardErrorShrinksWithPathCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping multi-run scenario in short mode")
	}
	t.Parallel()

	small := referenceParams()
	small.Simulations = 25000
	large := referenceParams()

	price := func(p montecarlo.Params, seed uint64) option.Result {
		paths, err := montecarlo.Simulate(p, seed)
		require.NoError(t, err)
		res, err := option.Price(option.AsianCall(paths, p), p)
		require.NoError(t, err)
		return res
	}

	smallRes := price(small, 42)
	largeRes := price(large, 42)

	// Quadrupling the path count roughly halves the standard error.
	ratio := smallRes.StdError / largeRes.StdError
	require.InDelta(t, 2.0, ratio, 0.3)
}
