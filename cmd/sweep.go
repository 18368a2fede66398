package cmd

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/epidemic-sim/epidemic-sim/sim"
)

var (
	sweepR0Min  float64 // Lowest reproduction number in the sweep
	sweepR0Max  float64 // Highest reproduction number in the sweep
	sweepR0Step float64 // Increment between sweep points
)

// sweepResult pairs one sweep point with its run summary.
type sweepResult struct {
	R0      float64
	Metrics *sim.Metrics
}

// sweepCmd runs the simulation across a range of R0 values. Runs share no
// state, so each point executes on its own goroutine and writes into its
// preallocated result slot.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the simulation across a range of R0 values",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if sweepR0Step <= 0 {
			logrus.Fatalf("Sweep step must be positive, got %v", sweepR0Step)
		}
		if sweepR0Max < sweepR0Min {
			logrus.Fatalf("Sweep range is empty: max %v < min %v", sweepR0Max, sweepR0Min)
		}

		base, err := buildParams(cmd)
		if err != nil {
			logrus.Fatalf("Invalid parameters: %v", err)
		}

		var points []float64
		for v := sweepR0Min; v <= sweepR0Max+sweepR0Step/2; v += sweepR0Step {
			points = append(points, v)
		}
		logrus.Infof("Sweeping %d R0 values in [%.2f, %.2f]", len(points), sweepR0Min, sweepR0Max)

		results := make([]sweepResult, len(points))
		var wg sync.WaitGroup
		for i, v := range points {
			wg.Add(1)
			go func(i int, v float64) {
				defer wg.Done()
				s := sim.NewSimulator(base.WithR0(v))
				s.Run()
				results[i] = sweepResult{R0: v, Metrics: s.Metrics}
			}(i, v)
		}
		wg.Wait()

		fmt.Println("=== R0 Sweep ===")
		fmt.Println("r0,peak_infectious,peak_day,attack_rate,final_deaths")
		for _, r := range results {
			fmt.Printf("%.2f,%.4f,%d,%.4f,%d\n",
				r.R0, r.Metrics.PeakInfectious, r.Metrics.PeakDay, r.Metrics.AttackRate, r.Metrics.FinalDeaths)
		}
	},
}

func init() {
	sweepCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	addModelFlags(sweepCmd)

	sweepCmd.Flags().Float64Var(&sweepR0Min, "r0-min", 1.0, "Lowest reproduction number in the sweep")
	sweepCmd.Flags().Float64Var(&sweepR0Max, "r0-max", 4.0, "Highest reproduction number in the sweep")
	sweepCmd.Flags().Float64Var(&sweepR0Step, "r0-step", 0.25, "Increment between sweep points")

	rootCmd.AddCommand(sweepCmd)
}
