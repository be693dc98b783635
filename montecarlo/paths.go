package montecarlo

import "gonum.org/v1/gonum/mat"

// PathMatrix is the N×M matrix of simulated prices. Row i is one
// simulation's trajectory; column j holds the price after j+1 steps (the
// initial spot is not stored). All entries are strictly positive under the
// lognormal model.
//
// A PathMatrix is produced once per parameter set and then read-only: every
// payoff evaluator and range query consumes it without mutation.
type PathMatrix struct {
	dense *mat.Dense
}

// NewPathMatrix wraps raw row-major data as a path matrix. len(data) must
// equal rows*steps. Intended for tests and for replaying recorded paths.
func NewPathMatrix(rows, steps int, data []float64) *PathMatrix {
	return &PathMatrix{dense: mat.NewDense(rows, steps, data)}
}

// Rows returns the number of simulations N.
func (pm *PathMatrix) Rows() int {
	r, _ := pm.dense.Dims()
	return r
}

// Steps returns the number of time steps M.
func (pm *PathMatrix) Steps() int {
	_, c := pm.dense.Dims()
	return c
}

// At returns the price of simulation i after j+1 steps.
func (pm *PathMatrix) At(i, j int) float64 {
	return pm.dense.At(i, j)
}

// Row returns simulation i's trajectory as a view into the matrix. Callers
// must not modify the returned slice.
func (pm *PathMatrix) Row(i int) []float64 {
	return pm.dense.RawRowView(i)
}

// Final returns simulation i's terminal price.
func (pm *PathMatrix) Final(i int) float64 {
	return pm.dense.At(i, pm.Steps()-1)
}

// Flatten returns a copy of every simulated price across all rows and steps,
// in row-major order.
func (pm *PathMatrix) Flatten() []float64 {
	raw := pm.dense.RawMatrix()
	out := make([]float64, len(raw.Data))
	copy(out, raw.Data)
	return out
}
