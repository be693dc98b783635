package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "exoticprice",
	Short: "Monte Carlo pricing of path-dependent options",
	Long: "exoticprice simulates lognormal price paths and prices exotic option\n" +
		"structures (Asian, lookback, barrier, binary, chooser, basket) over them.",

	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetLevel(log.DebugLevel)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
