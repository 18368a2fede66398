package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Scenario describes a preset parameter set in a scenarios YAML file.
// Zero fields fall back to the flag defaults when applied.
type Scenario struct {
	InfectiousDays float64 `yaml:"infectious_days"`
	Theta          float64 `yaml:"theta"`
	Rho            float64 `yaml:"rho"`
	R0             float64 `yaml:"r0"`
	DeathLag       float64 `yaml:"death_lag"`
	Population     int64   `yaml:"population"`
	Days           int     `yaml:"days"`
	FirstCase      int     `yaml:"first_case"`
}

// ScenarioConfig represents the full scenarios YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioConfig struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// GetScenario loads the named preset from a scenarios YAML file.
func GetScenario(path, name string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario file: %w", err)
	}

	// Parse YAML with strict field checking so typos cause errors
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	preset, ok := cfg.Scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario %q not found in %s", name, path)
	}
	return preset, nil
}

// ApplyScenario copies preset values into the flag variables, keeping any
// value the user set explicitly on the command line. Zero preset fields are
// skipped so partial presets inherit flag defaults.
func ApplyScenario(cmd *cobra.Command, preset Scenario) {
	flags := cmd.Flags()
	if preset.InfectiousDays != 0 && !flags.Changed("infectious-days") {
		inverseSigma = preset.InfectiousDays
	}
	if preset.Theta != 0 && !flags.Changed("theta") {
		theta = preset.Theta
	}
	if preset.Rho != 0 && !flags.Changed("rho") {
		rho = preset.Rho
	}
	if preset.R0 != 0 && !flags.Changed("r0") {
		r0 = preset.R0
	}
	if preset.DeathLag != 0 && !flags.Changed("death-lag") {
		psy = preset.DeathLag
	}
	if preset.Population != 0 && !flags.Changed("population") {
		population = preset.Population
	}
	if preset.Days != 0 && !flags.Changed("days") {
		timeSpan = preset.Days
	}
	if preset.FirstCase != 0 && !flags.Changed("first-case") {
		firstCase = preset.FirstCase
	}
}
