// Package config loads holdem-odds configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete tool configuration. The block pointers let a file
// omit a block entirely and pick up the defaults.
type Config struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Log        *LogSettings        `hcl:"log,block"`
}

// SimulationSettings configures the Monte Carlo simulator
type SimulationSettings struct {
	Trials        int  `hcl:"trials,optional"`
	Workers       int  `hcl:"workers,optional"`
	CompleteBoard bool `hcl:"complete_board,optional"`
}

// LogSettings configures logging output
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: &SimulationSettings{
			Trials:        10000,
			Workers:       0, // 0 = one per CPU, capped by the simulator
			CompleteBoard: false,
		},
		Log: &LogSettings{
			Level: "info",
			File:  "holdem-odds.log",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	defaults := Default()
	if cfg.Simulation == nil {
		cfg.Simulation = defaults.Simulation
	} else if cfg.Simulation.Trials == 0 {
		cfg.Simulation.Trials = defaults.Simulation.Trials
	}
	if cfg.Log == nil {
		cfg.Log = defaults.Log
	} else {
		if cfg.Log.Level == "" {
			cfg.Log.Level = defaults.Log.Level
		}
		if cfg.Log.File == "" {
			cfg.Log.File = defaults.Log.File
		}
	}

	return &cfg, nil
}
