package montecarlo

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNonFinitePath is returned when a simulated price overflows to a
// non-finite value (pathological parameter combinations, e.g. very large
// σ²·T). The matrix is discarded rather than priced.
var ErrNonFinitePath = errors.New("non-finite value in simulated paths")

// chunkSeedIncrement spreads per-chunk seeds across the source's seed space
// (64-bit golden ratio increment).
const chunkSeedIncrement = 0x9e3779b97f4a7c15

// Simulate generates the price-path matrix for p with the default
// configuration. The seed fully determines the output: two runs with
// identical parameters and seed produce bit-identical matrices, regardless
// of worker count.
func Simulate(p Params, seed uint64) (*PathMatrix, error) {
	return SimulateWithConfig(p, seed, DefaultConfig)
}

// SimulateWithConfig generates the price-path matrix for p.
//
// Each path applies the exact lognormal transition
//
//	S(t+dt) = S(t) · exp((r − σ²/2)·dt + σ·√dt·Z)
//
// per step, with Z i.i.d. standard normal. This simulates geometric Brownian
// motion through its closed-form transition density, so there is no
// discretization bias at any step count.
//
// Rows are generated in fixed-size chunks, each from its own source seeded
// by the run seed and the chunk index. Chunks are distributed over workers,
// but chunk boundaries and seeds do not depend on cfg.Workers.
func SimulateWithConfig(p Params, seed uint64, cfg Config) (*PathMatrix, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n, m := p.Simulations, p.Steps
	dt := p.Dt()
	drift := (p.Rate - 0.5*p.Vol*p.Vol) * dt
	volStep := p.Vol * math.Sqrt(dt)

	chunk := cfg.ChunkRows
	if chunk <= 0 {
		chunk = DefaultConfig.ChunkRows
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := (n + chunk - 1) / chunk
	if workers > chunks {
		workers = chunks
	}

	start := time.Now()
	data := make([]float64, n*m)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				fillChunk(data, p, c, chunk, drift, volStep, seed)
			}
		}()
	}
	for c := 0; c < chunks; c++ {
		jobs <- c
	}
	close(jobs)
	wg.Wait()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrNonFinitePath, "SimulateWithConfig: row %d step %d", i/m, i%m)
		}
	}

	log.WithFields(log.Fields{
		"simulations": n,
		"steps":       m,
		"seed":        seed,
		"elapsed":     time.Since(start),
	}).Debug("generated price paths")

	return &PathMatrix{dense: mat.NewDense(n, m, data)}, nil
}

// fillChunk writes rows [c·chunk, min((c+1)·chunk, N)) of data. The chunk
// owns its random source, so no synchronization is needed: chunks never
// write overlapping regions.
func fillChunk(data []float64, p Params, c, chunk int, drift, volStep float64, seed uint64) {
	normal := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewSource(seed + uint64(c)*chunkSeedIncrement),
	}

	lo := c * chunk
	hi := lo + chunk
	if hi > p.Simulations {
		hi = p.Simulations
	}

	m := p.Steps
	for i := lo; i < hi; i++ {
		price := p.Spot
		row := data[i*m : (i+1)*m]
		for j := range row {
			price *= math.Exp(drift + volStep*normal.Rand())
			row[j] = price
		}
	}
}
