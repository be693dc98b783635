package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cornzx/Quantitative-Project/montecarlo"
)

var rangeProbCmd = &cobra.Command{
	Use:   "rangeprob",
	Short: "Estimate the probability that the underlying trades within a band",

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

		low, _ := cmd.Flags().GetFloat64("low")
		high, _ := cmd.Flags().GetFloat64("high")

		stats := montecarlo.NewRangeStats(paths)
		fmt.Printf("P(%.4f < S <= %.4f) = %.4f\n", low, high, stats.ProbabilityWithin(low, high))
		fmt.Printf("percentile of %.4f: %.4f\n", low, stats.PercentileOf(low))
		fmt.Printf("percentile of %.4f: %.4f\n", high, stats.PercentileOf(high))
		fmt.Printf("median simulated price: %.4f\n", stats.LevelAt(0.5))
		return nil
	},
}

func init() {
	addParamFlags(rangeProbCmd)
	rangeProbCmd.Flags().String("scenario", "", "YAML scenario file (flags are ignored when set)")
	rangeProbCmd.Flags().Float64("low", 90, "lower band bound")
	rangeProbCmd.Flags().Float64("high", 110, "upper band bound")
	rootCmd.AddCommand(rangeProbCmd)
}
