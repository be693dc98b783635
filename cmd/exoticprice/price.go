package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cornzx/Quantitative-Project/montecarlo"
	"github.com/cornzx/Quantitative-Project/option"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price the exotic option family for one parameter set",

	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := scenarioFromFlags(cmd)
		if err != nil {
			return err
		}

		params := scenario.params()
		paths, err := montecarlo.Simulate(params, scenario.Seed)
		if err != nil {
			return err
		}

		results := make(map[string]option.Result)
		order := []string{}
		addResult := func(name string, payoffs option.PayoffVector) error {
			res, err := option.Price(payoffs, params)
			if err != nil {
				return errors.Wrap(err, name)
			}
			results[name] = res
			order = append(order, name)
			return nil
		}

		evaluators := []struct {
			name string
			fn   func(*montecarlo.PathMatrix, montecarlo.Params) option.PayoffVector
		}{
			{"asian", option.AsianCall},
			{"lookback-call", option.LookbackCall},
			{"lookback-put", option.LookbackPut},
			{"european-call", option.EuropeanCall},
			{"european-put", option.EuropeanPut},
			{"binary-average", option.BinaryAverageCall},
			{"binary-terminal", option.BinaryTerminalCall},
		}
		for _, ev := range evaluators {
			if err := addResult(ev.name, ev.fn(paths, params)); err != nil {
				return err
			}
		}

		if scenario.Barrier != nil {
			spec, err := scenario.Barrier.spec()
			if err != nil {
				return err
			}
			payoffs, err := option.Barrier(paths, params, spec)
			if err != nil {
				return err
			}
			if err := addResult("barrier", payoffs); err != nil {
				return err
			}
		}

		if scenario.Basket != nil {
			components := make([]option.Result, 0, len(scenario.Basket.Components))
			for _, name := range scenario.Basket.Components {
				res, ok := results[name]
				if !ok {
					return fmt.Errorf("price: unknown basket component %q", name)
				}
				components = append(components, res)
			}
			res, err := option.Basket(scenario.Basket.Weights, components)
			if err != nil {
				return err
			}
			results["basket"] = res
			order = append(order, "basket")
		}

		chooser := option.Chooser(paths, params)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Variant", "Price", "Std Error", "Variance"})
		for _, name := range order {
			res := results[name]
			t.AppendRow(table.Row{
				name,
				fmt.Sprintf("%.6f", res.Price),
				fmt.Sprintf("%.6f", res.StdError),
				fmt.Sprintf("%.6f", res.Variance),
			})
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("chooser (%s)", chooser.Side),
			fmt.Sprintf("%.6f", chooser.Price),
			"-",
			"-",
		})
		t.Render()

		fmt.Printf("\nBlack-Scholes reference: call %.6f, put %.6f\n",
			option.BlackScholesCall(params), option.BlackScholesPut(params))
		return nil
	},
}

func init() {
	addParamFlags(priceCmd)
	priceCmd.Flags().String("scenario", "", "YAML scenario file (flags are ignored when set)")
	priceCmd.Flags().Float64("barrier-level", 0, "barrier level (enables the barrier variant)")
	priceCmd.Flags().String("barrier-direction", "down", "barrier direction: down or up")
	priceCmd.Flags().String("barrier-knock", "out", "knock semantics: out or in")
	rootCmd.AddCommand(priceCmd)
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("spot", 100, "spot price")
	cmd.Flags().Float64("strike", 105, "strike price")
	cmd.Flags().Float64("maturity", 1, "time to maturity in years")
	cmd.Flags().Float64("rate", 0.05, "risk-free rate (decimal)")
	cmd.Flags().Float64("vol", 0.2, "volatility (decimal)")
	cmd.Flags().Int("simulations", 100000, "number of simulated paths")
	cmd.Flags().Int("steps", 100, "time steps per path")
	cmd.Flags().Uint64("seed", 42, "random seed")
}

func scenarioFromFlags(cmd *cobra.Command) (Scenario, error) {
	if path, _ := cmd.Flags().GetString("scenario"); path != "" {
		return loadScenario(path)
	}

	var s Scenario
	s.Spot, _ = cmd.Flags().GetFloat64("spot")
	s.Strike, _ = cmd.Flags().GetFloat64("strike")
	s.Maturity, _ = cmd.Flags().GetFloat64("maturity")
	s.Rate, _ = cmd.Flags().GetFloat64("rate")
	s.Vol, _ = cmd.Flags().GetFloat64("vol")
	s.Simulations, _ = cmd.Flags().GetInt("simulations")
	s.Steps, _ = cmd.Flags().GetInt("steps")
	s.Seed, _ = cmd.Flags().GetUint64("seed")

	if cmd.Flags().Lookup("barrier-level") != nil {
		if level, _ := cmd.Flags().GetFloat64("barrier-level"); level > 0 {
			direction, _ := cmd.Flags().GetString("barrier-direction")
			knock, _ := cmd.Flags().GetString("barrier-knock")
			s.Barrier = &barrierScenario{Level: level, Direction: direction, Knock: knock}
		}
	}
	return s, nil
}
