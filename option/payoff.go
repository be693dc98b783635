package option

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cornzx/Quantitative-Project/montecarlo"
)

// AsianCall reduces each path to max(0, mean(path) − strike).
func AsianCall(paths *montecarlo.PathMatrix, p montecarlo.Params) PayoffVector {
	out := make(PayoffVector, paths.Rows())
	steps := float64(paths.Steps())
	for i := range out {
		avg := floats.Sum(paths.Row(i)) / steps
		out[i] = math.Max(0, avg-p.Strike)
	}
	return out
}

// LookbackCall reduces each path to max(0, max(path) − strike).
func LookbackCall(paths *montecarlo.PathMatrix, p montecarlo.Params) PayoffVector {
	out := make(PayoffVector, paths.Rows())
	for i := range out {
		out[i] = math.Max(0, floats.Max(paths.Row(i))-p.Strike)
	}
	return out
}

// LookbackPut reduces each path to max(0, strike − min(path)).
func LookbackPut(paths *montecarlo.PathMatrix, p montecarlo.Params) PayoffVector {
	out := make(PayoffVector, paths.Rows())
	for i := range out {
		out[i] = math.Max(0, p.Strike-floats.Min(paths.Row(i)))
	}
	return out
}

// EuropeanCall reduces each path to max(0, terminal − strike).
func EuropeanCall(paths *montecarlo.PathMatrix, p montecarlo.Params) PayoffVector {
	out := make(PayoffVector, paths.Rows())
	for i := range out {
		out[i] = math.Max(0, paths.Final(i)-p.Strike)
	}
	return out
}

// EuropeanPut reduces each path to max(0, strike − terminal).
func EuropeanPut(paths *montecarlo.PathMatrix, p montecarlo.Params) PayoffVector {
	out := make(PayoffVector, paths.Rows())
	for i := range out {
		out[i] = math.Max(0, p.Strike-paths.Final(i))
	}
	return out
}

// BinaryAverageCall is a cash-or-nothing call paying one unit when the path
// average exceeds the strike.
//
// Conditioning on the path average rather than the terminal price keeps the
// binary in the same path-statistic pipeline as the Asian evaluator. This is
// the default binary variant; BinaryTerminalCall provides the textbook
// terminal-price digital.
func BinaryAverageCall(paths *montecarlo.PathMatrix, p montecarlo.Params) PayoffVector {
	out := make(PayoffVector, paths.Rows())
	steps := float64(paths.Steps())
	for i := range out {
		if floats.Sum(paths.Row(i))/steps > p.Strike {
			out[i] = 1
		}
	}
	return out
}

// BinaryTerminalCall is a cash-or-nothing call paying one unit when the
// terminal price exceeds the strike.
func BinaryTerminalCall(paths *montecarlo.PathMatrix, p montecarlo.Params) PayoffVector {
	out := make(PayoffVector, paths.Rows())
	for i := range out {
		if paths.Final(i) > p.Strike {
			out[i] = 1
		}
	}
	return out
}
