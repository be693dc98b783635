// Package option implements payoff evaluation and pricing for path-dependent
// options over simulated price paths.
//
// Every evaluator is a pure reduction from a montecarlo.PathMatrix to a
// PayoffVector; Price then discounts a vector to present value and attaches
// sampling statistics. Evaluators never mutate the matrix.
package option

import (
	"errors"
	"fmt"
)

// ErrDegenerateSample is returned when fewer than two simulations make the
// sample variance undefined.
var ErrDegenerateSample = errors.New("variance undefined for fewer than two simulations")

// PayoffVector holds one non-negative undiscounted payoff per simulation.
type PayoffVector []float64

// Result is the priced outcome of a payoff vector.
type Result struct {
	// Price is the discounted mean payoff.
	Price float64
	// Variance is the sample variance of the payoffs, centered on the
	// discounted price (see Price for the convention).
	Variance float64
	// StdError is sqrt(Variance / N), the Monte Carlo estimation
	// uncertainty.
	StdError float64
}

// BarrierDirection selects which side of the barrier knocks.
type BarrierDirection int

const (
	// DirectionDown triggers when the price touches or falls below the
	// barrier level.
	DirectionDown BarrierDirection = iota
	// DirectionUp triggers when the price touches or rises above the
	// barrier level.
	DirectionUp
)

// KnockType selects knock-out or knock-in semantics.
type KnockType int

const (
	// KnockOut voids every path that touches the barrier.
	KnockOut KnockType = iota
	// KnockIn pays only on paths that touch the barrier.
	KnockIn
)

// BarrierSpec describes a single-barrier feature.
type BarrierSpec struct {
	Level     float64
	Direction BarrierDirection
	Knock     KnockType
}

// Validate rejects unusable barrier specifications.
func (s BarrierSpec) Validate() error {
	if !(s.Level > 0) {
		return fmt.Errorf("Validate: barrier level must be positive, got %v", s.Level)
	}
	if s.Direction != DirectionDown && s.Direction != DirectionUp {
		return fmt.Errorf("Validate: unknown barrier direction %d", s.Direction)
	}
	if s.Knock != KnockOut && s.Knock != KnockIn {
		return fmt.Errorf("Validate: unknown knock type %d", s.Knock)
	}
	return nil
}
