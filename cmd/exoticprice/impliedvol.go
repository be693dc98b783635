package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cornzx/Quantitative-Project/option"
)

var impliedVolCmd = &cobra.Command{
	Use:   "impliedvol",
	Short: "Solve the Black-Scholes implied volatility of a call price",

	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := scenarioFromFlags(cmd)
		if err != nil {
			return err
		}

		marketPrice, _ := cmd.Flags().GetFloat64("price")
		res, err := option.ImpliedCallVolatility(scenario.params(), marketPrice)
		if err != nil {
			return err
		}

		fmt.Printf("implied volatility: %.6f (%d iterations)\n", res.Vol, res.Iterations)
		return nil
	},
}

func init() {
	addParamFlags(impliedVolCmd)
	impliedVolCmd.Flags().String("scenario", "", "YAML scenario file (flags are ignored when set)")
	impliedVolCmd.Flags().Float64("price", 8.0, "observed call price")
	rootCmd.AddCommand(impliedVolCmd)
}
