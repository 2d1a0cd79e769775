package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/bot"
)

// DefaultFile is the configuration file looked up when none is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete blackjack configuration
type Config struct {
	Player     PlayerSettings
	Game       GameSettings
	Logging    LoggingSettings
	Simulation SimulationSettings
}

// PlayerSettings contains player-specific settings. Empty values are
// prompted for when an interactive game starts.
type PlayerSettings struct {
	Name            string `hcl:"name,optional"`
	StartingBalance int    `hcl:"starting_balance,optional"`
}

// GameSettings contains table settings
type GameSettings struct {
	Seed int64 `hcl:"seed,optional"`
}

// LoggingSettings controls the debug log written beside the console
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// SimulationSettings are the defaults for the simulate command
type SimulationSettings struct {
	Sessions int    `hcl:"sessions,optional"`
	Rounds   int    `hcl:"rounds,optional"`
	Balance  int    `hcl:"balance,optional"`
	Bet      int    `hcl:"bet,optional"`
	Bot      string `hcl:"bot,optional"`
	Workers  int    `hcl:"workers,optional"`
}

// fileConfig mirrors the HCL layout; every block may be omitted
type fileConfig struct {
	Player     *PlayerSettings     `hcl:"player,block"`
	Game       *GameSettings       `hcl:"game,block"`
	Logging    *LoggingSettings    `hcl:"logging,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Logging: LoggingSettings{
			Level: "info",
			File:  "blackjack.log",
		},
		Simulation: SimulationSettings{
			Sessions: 1000,
			Rounds:   100,
			Balance:  100,
			Bet:      10,
			Bot:      "chart",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values with defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if fc.Player != nil {
		config.Player.Name = fc.Player.Name
		if fc.Player.StartingBalance != 0 {
			config.Player.StartingBalance = fc.Player.StartingBalance
		}
	}
	if fc.Game != nil {
		config.Game = *fc.Game
	}
	if fc.Logging != nil {
		if fc.Logging.Level != "" {
			config.Logging.Level = fc.Logging.Level
		}
		if fc.Logging.File != "" {
			config.Logging.File = fc.Logging.File
		}
	}
	if s := fc.Simulation; s != nil {
		if s.Sessions != 0 {
			config.Simulation.Sessions = s.Sessions
		}
		if s.Rounds != 0 {
			config.Simulation.Rounds = s.Rounds
		}
		if s.Balance != 0 {
			config.Simulation.Balance = s.Balance
		}
		if s.Bet != 0 {
			config.Simulation.Bet = s.Bet
		}
		if s.Bot != "" {
			config.Simulation.Bot = s.Bot
		}
		config.Simulation.Workers = s.Workers
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Player.StartingBalance < 0 {
		return fmt.Errorf("starting balance cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Simulation.Sessions <= 0 {
		return fmt.Errorf("simulation sessions must be positive")
	}
	if c.Simulation.Rounds <= 0 {
		return fmt.Errorf("simulation rounds must be positive")
	}
	if c.Simulation.Balance <= 0 {
		return fmt.Errorf("simulation balance must be positive")
	}
	if c.Simulation.Bet <= 0 {
		return fmt.Errorf("simulation bet must be positive")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation workers cannot be negative")
	}
	if _, err := bot.Lookup(c.Simulation.Bot); err != nil {
		return err
	}
	return nil
}
