package montecarlo

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// RangeStats answers percentile and rank-based probability queries over the
// empirical distribution of all simulated prices (the path matrix flattened
// across simulations and steps). It is read-only and has no side effects.
type RangeStats struct {
	sorted []float64
}

// NewRangeStats builds the empirical distribution from a path matrix.
func NewRangeStats(paths *PathMatrix) *RangeStats {
	s := paths.Flatten()
	sort.Float64s(s)
	return &RangeStats{sorted: s}
}

// PercentileOf returns the percentile rank of level: the fraction of
// simulated prices at or below it, in [0, 1].
func (rs *RangeStats) PercentileOf(level float64) float64 {
	n := sort.Search(len(rs.sorted), func(i int) bool {
		return rs.sorted[i] > level
	})
	return float64(n) / float64(len(rs.sorted))
}

// LevelAt returns the price level at percentile pct of the distribution.
// pct outside [0, 1] is clamped.
func (rs *RangeStats) LevelAt(pct float64) float64 {
	if pct < 0 {
		pct = 0
	} else if pct > 1 {
		pct = 1
	}
	return stat.Quantile(pct, stat.Empirical, rs.sorted, nil)
}

// ProbabilityWithin estimates the probability that the underlying trades
// within (low, high], measured over every simulated price. Bounds may be
// given in either order.
func (rs *RangeStats) ProbabilityWithin(low, high float64) float64 {
	if high < low {
		low, high = high, low
	}
	return rs.PercentileOf(high) - rs.PercentileOf(low)
}
