package option

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cornzx/Quantitative-Project/montecarlo"
)

// Barrier evaluates a single-barrier option over the path matrix.
//
// A path "touches" a down barrier when any step trades at or below the
// level, and an up barrier when any step trades at or above it. Under
// KnockOut a touching path pays nothing; under KnockIn only touching paths
// pay. Knockout is path-wide: a single touch anywhere voids the whole path,
// so this is the one evaluator that must inspect every step of a row.
//
// The barrier level doubles as the strike of the surviving payoff: a down
// barrier pays max(0, terminal − level) and an up barrier mirrors it as
// max(0, level − terminal). The down-and-out case reproduces the classic
// floor rule where the per-step series max(0, price − level) knocks the path
// out on its first zero and a survivor pays the series' final value. The up
// and knock-in variants generalize that rule symmetrically; only the
// down-and-out form is a market-standard quote.
func Barrier(paths *montecarlo.PathMatrix, p montecarlo.Params, spec BarrierSpec) (PayoffVector, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := make(PayoffVector, paths.Rows())
	for i := range out {
		row := paths.Row(i)

		var touched bool
		if spec.Direction == DirectionDown {
			touched = floats.Min(row) <= spec.Level
		} else {
			touched = floats.Max(row) >= spec.Level
		}

		if spec.Knock == KnockOut && touched {
			continue
		}
		if spec.Knock == KnockIn && !touched {
			continue
		}

		terminal := row[len(row)-1]
		if spec.Direction == DirectionDown {
			out[i] = math.Max(0, terminal-spec.Level)
		} else {
			out[i] = math.Max(0, spec.Level-terminal)
		}
	}
	return out, nil
}
