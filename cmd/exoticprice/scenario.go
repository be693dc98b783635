package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cornzx/Quantitative-Project/montecarlo"
	"github.com/cornzx/Quantitative-Project/option"
)

// Scenario is the YAML description of a pricing run.
type Scenario struct {
	Spot        float64 `yaml:"spot"`
	Strike      float64 `yaml:"strike"`
	Maturity    float64 `yaml:"maturity"`
	Rate        float64 `yaml:"rate"`
	Vol         float64 `yaml:"vol"`
	Simulations int     `yaml:"simulations"`
	Steps       int     `yaml:"steps"`
	Seed        uint64  `yaml:"seed"`

	Barrier *barrierScenario `yaml:"barrier,omitempty"`
	Basket  *basketScenario  `yaml:"basket,omitempty"`
}

type barrierScenario struct {
	Level     float64 `yaml:"level"`
	Direction string  `yaml:"direction"` // "down" or "up"
	Knock     string  `yaml:"knock"`     // "out" or "in"
}

type basketScenario struct {
	Weights    []float64 `yaml:"weights"`
	Components []string  `yaml:"components"` // variant names, e.g. [asian, barrier]
}

func loadScenario(path string) (Scenario, error) {
	var s Scenario
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "loadScenario")
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, errors.Wrapf(err, "loadScenario: %s", path)
	}
	return s, nil
}

func (s Scenario) params() montecarlo.Params {
	return montecarlo.Params{
		Spot:        s.Spot,
		Strike:      s.Strike,
		Maturity:    s.Maturity,
		Rate:        s.Rate,
		Vol:         s.Vol,
		Simulations: s.Simulations,
		Steps:       s.Steps,
	}
}

func (b barrierScenario) spec() (option.BarrierSpec, error) {
	spec := option.BarrierSpec{Level: b.Level}

	switch b.Direction {
	case "", "down":
		spec.Direction = option.DirectionDown
	case "up":
		spec.Direction = option.DirectionUp
	default:
		return spec, fmt.Errorf("spec: unknown barrier direction %q", b.Direction)
	}

	switch b.Knock {
	case "", "out":
		spec.Knock = option.KnockOut
	case "in":
		spec.Knock = option.KnockIn
	default:
		return spec, fmt.Errorf("spec: unknown knock type %q", b.Knock)
	}

	return spec, nil
}
