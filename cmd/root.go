package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/epidemic-sim/epidemic-sim/sim"
	"github.com/epidemic-sim/epidemic-sim/sim/observed"
)

var (
	// CLI flags for model parameters
	inverseSigma float64 // Mean infectious duration in days (1/sigma)
	theta        float64 // Fatality risk given severe disease
	rho          float64 // Severe-disease rate
	r0           float64 // Basic reproduction number (beta/sigma)
	psy          float64 // Days between recovery and recorded death
	population   int64   // Total population size
	timeSpan     int     // Number of days to simulate
	firstCase    int     // Day index of the index infection
	logLevel     string  // Log verbosity level

	// CLI flags for scenario presets and output
	scenarioFile string // Path to scenario presets YAML
	scenarioName string // Named preset within the scenario file
	outputPath   string // Optional CSV path for the simulated trajectories
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "epidemic-sim",
	Short: "Discrete-time SIR epidemic simulator with lagged death reporting",
}

// buildParams resolves the effective parameter set: scenario preset first
// (when requested), then explicit CLI flags on top.
func buildParams(cmd *cobra.Command) (sim.Params, error) {
	if scenarioName != "" {
		preset, err := GetScenario(scenarioFile, scenarioName)
		if err != nil {
			return sim.Params{}, err
		}
		ApplyScenario(cmd, preset)
	}
	return sim.NewParams(inverseSigma, theta, rho, r0, psy, population, timeSpan, firstCase)
}

// runCmd executes one simulation using parameters from CLI flags.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the epidemic simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		params, err := buildParams(cmd)
		if err != nil {
			logrus.Fatalf("Invalid parameters: %v", err)
		}

		logrus.Infof("Starting simulation with R0=%.2f, infectious duration=%.1fd, IFR=%.4f, horizon=%dd",
			params.R0, 1/params.Sigma, params.Rho*params.Theta, params.TimeSpan)

		startTime := time.Now()

		s := sim.NewSimulator(params)
		tr := s.Run()
		s.Metrics.Print()

		if outputPath != "" {
			if err := observed.ExportTrajectory(tr, outputPath); err != nil {
				logrus.Fatalf("Failed to export trajectory: %v", err)
			}
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addModelFlags registers the SIR parameter and scenario-preset flags shared
// by every subcommand that runs the model.
func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&inverseSigma, "infectious-days", sim.DefaultInverseSigma, "Mean infectious duration in days")
	cmd.Flags().Float64Var(&theta, "theta", sim.DefaultTheta, "Fatality risk given severe disease")
	cmd.Flags().Float64Var(&rho, "rho", sim.DefaultRho, "Severe-disease rate")
	cmd.Flags().Float64Var(&r0, "r0", sim.DefaultR0, "Basic reproduction number")
	cmd.Flags().Float64Var(&psy, "death-lag", sim.DefaultPsy, "Days between recovery and recorded death")
	cmd.Flags().Int64Var(&population, "population", sim.DefaultPopulation, "Total population size")
	cmd.Flags().IntVar(&timeSpan, "days", sim.DefaultTimeSpan, "Number of days to simulate")
	cmd.Flags().IntVar(&firstCase, "first-case", sim.DefaultFirstCase, "Day the index infection appears")

	cmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "Path to scenario presets YAML")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset to load before applying flags")
}

// init sets up CLI flags and subcommands.
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	addModelFlags(runCmd)

	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the simulated trajectories to this CSV path")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
