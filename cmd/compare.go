package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/epidemic-sim/epidemic-sim/sim"
	"github.com/epidemic-sim/epidemic-sim/sim/observed"
)

var (
	observedPath   string // Path to the observed cumulative-deaths CSV
	observedOffset int    // Day offset of the observed series relative to day 0
)

// compareCmd runs the simulation and scores it against an observed series.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run the simulation and compare deaths against an observed CSV",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if observedPath == "" {
			logrus.Fatalf("Observed series not provided. Use --observed.")
		}

		params, err := buildParams(cmd)
		if err != nil {
			logrus.Fatalf("Invalid parameters: %v", err)
		}

		series, err := observed.LoadSeries(observedPath)
		if err != nil {
			logrus.Fatalf("Failed to load observed series: %v", err)
		}

		s := sim.NewSimulator(params)
		tr := s.Run()

		stats, err := observed.CompareDeaths(tr, series, observedOffset)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}

		s.Metrics.Print()
		stats.Print()
	},
}

func init() {
	compareCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	addModelFlags(compareCmd)

	compareCmd.Flags().StringVar(&observedPath, "observed", "", "Path to observed cumulative-deaths CSV (date,deaths)")
	compareCmd.Flags().IntVar(&observedOffset, "observed-offset", 0, "Day of the simulation at which the observed series begins")

	rootCmd.AddCommand(compareCmd)
}
