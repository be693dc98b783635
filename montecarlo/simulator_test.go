package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cornzx/Quantitative-Project/montecarlo"
)

func validParams() montecarlo.Params {
	return montecarlo.Params{
		Spot:        100,
		Strike:      105,
		Maturity:    1,
		Rate:        0.05,
		Vol:         0.2,
		Simulations: 500,
		Steps:       50,
	}
}

func TestSimulate_AllEntriesPositiveAndFinite(t *testing.T) {
	t.Parallel()

	paths, err := montecarlo.Simulate(validParams(), 7)
	require.NoError(t, err)

	for _, v := range paths.Flatten() {
		require.True(t, v > 0, "expected strictly positive price, got %v", v)
		require.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
}

func TestSimulate_Dimensions(t *testing.T) {
	t.Parallel()

	p := validParams()
	paths, err := montecarlo.Simulate(p, 7)
	require.NoError(t, err)

	require.Equal(t, p.Simulations, paths.Rows())
	require.Equal(t, p.Steps, paths.Steps())
	require.Len(t, paths.Row(0), p.Steps)
	require.Equal(t, paths.At(3, p.Steps-1), paths.Final(3))
}

func TestSimulate_ZeroVolIsDeterministic(t *testing.T) {
	t.Parallel()

	p := validParams()
	p.Vol = 0
	p.Simulations = 10
	p.Steps = 12

	paths, err := montecarlo.Simulate(p, 99)
	require.NoError(t, err)

	// With σ=0 every step multiplies by the same exp(r·dt) factor, with no
	// dependence on the randomness source.
	factor := math.Exp(p.Rate * p.Dt())
	for i := 0; i < paths.Rows(); i++ {
		expected := p.Spot
		for j := 0; j < paths.Steps(); j++ {
			expected *= factor
			require.Equal(t, expected, paths.At(i, j), "row %d step %d", i, j)
		}
	}

	other, err := montecarlo.Simulate(p, 12345)
	require.NoError(t, err)
	require.Equal(t, paths.Flatten(), other.Flatten())
}

func TestSimulate_Reproducible(t *testing.T) {
	t.Parallel()

	p := validParams()
	first, err := montecarlo.Simulate(p, 42)
	require.NoError(t, err)
	second, err := montecarlo.Simulate(p, 42)
	require.NoError(t, err)

	require.Equal(t, first.Flatten(), second.Flatten())

	different, err := montecarlo.Simulate(p, 43)
	require.NoError(t, err)
	require.NotEqual(t, first.Flatten(), different.Flatten())
}

func TestSimulate_WorkerCountDoesNotChangeOutput(t *testing.T) {
	t.Parallel()

	p := validParams()
	cfg := montecarlo.Config{ChunkRows: 64, Workers: 1}
	serial, err := montecarlo.SimulateWithConfig(p, 42, cfg)
	require.NoError(t, err)

	cfg.Workers = 8
	parallel, err := montecarlo.SimulateWithConfig(p, 42, cfg)
	require.NoError(t, err)

	require.Equal(t, serial.Flatten(), parallel.Flatten())
}

func TestSimulate_SingleStepDegeneratesToTerminalMC(t *testing.T) {
	t.Parallel()

	p := validParams()
	p.Steps = 1

	paths, err := montecarlo.Simulate(p, 11)
	require.NoError(t, err)
	require.Equal(t, 1, paths.Steps())
	require.Equal(t, p.Maturity, p.Dt())
}

func TestSimulate_RejectsInvalidParams(t *testing.T) {
	t.Parallel()

	base := validParams()
	cases := map[string]func(*montecarlo.Params){
		"zero spot":          func(p *montecarlo.Params) { p.Spot = 0 },
		"negative spot":      func(p *montecarlo.Params) { p.Spot = -1 },
		"zero strike":        func(p *montecarlo.Params) { p.Strike = 0 },
		"zero maturity":      func(p *montecarlo.Params) { p.Maturity = 0 },
		"negative maturity":  func(p *montecarlo.Params) { p.Maturity = -0.5 },
		"negative vol":       func(p *montecarlo.Params) { p.Vol = -0.1 },
		"nan rate":           func(p *montecarlo.Params) { p.Rate = math.NaN() },
		"zero simulations":   func(p *montecarlo.Params) { p.Simulations = 0 },
		"zero steps":         func(p *montecarlo.Params) { p.Steps = 0 },
		"negative sim count": func(p *montecarlo.Params) { p.Simulations = -3 },
	}

	for name, mutate := range cases {
		p := base
		mutate(&p)
		_, err := montecarlo.Simulate(p, 1)
		require.Error(t, err, name)
	}
}

func TestSimulate_DetectsNonFinitePaths(t *testing.T) {
	t.Parallel()

	p := validParams()
	p.Rate = 1e300 // drift overflows exp

	_, err := montecarlo.Simulate(p, 1)
	require.ErrorIs(t, err, montecarlo.ErrNonFinitePath)
}
