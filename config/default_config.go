// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package config gathers command line flags and distribution files into
// the configuration of a generator run.
package config

import (
	"github.com/0xsoniclabs/aida-randomgen/logger"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// DefaultIterations is the number of draws of a demo run.
const DefaultIterations = 100

// Config is the configuration of a command.
type Config struct {
	AppName     string
	CommandName string

	Distribution string  // distribution file
	Iterations   int     // draws per run or trial
	RandomSeed   int64   // negative for a random seed
	Breakdown    bool    // list every outcome in reports
	Pretty       bool    // box-drawn reports
	Output       string  // report file
	DrawDb       string  // run database
	Label        string  // label of recorded runs
	Trials       int     // independent trials
	Significance float64 // significance of goodness-of-fit tests
	Workers      int     // trial workers
	ChartFile    string  // chart HTML file
	Port         string  // chart web server port
	LogLevel     string
}

// NewConfig creates and validates the configuration of the current command.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HasRandomSeed reports whether the user asked for a fixed seed.
func (cfg *Config) HasRandomSeed() bool {
	return cfg.RandomSeed >= 0
}

func (cfg *Config) validate() error {
	if cfg.Iterations < 1 {
		return errors.Newf("number of iterations must be positive, got %d", cfg.Iterations)
	}
	if cfg.Trials < 1 {
		return errors.Newf("number of trials must be positive, got %d", cfg.Trials)
	}
	if cfg.Significance <= 0 || cfg.Significance >= 1 {
		return errors.Newf("significance must lie in (0,1), got %v", cfg.Significance)
	}
	if cfg.Workers < 1 {
		return errors.Newf("number of workers must be positive, got %d", cfg.Workers)
	}
	return nil
}

// createConfigFromFlags returns Config instance with user specified values or the default ones
func createConfigFromFlags(ctx *cli.Context) *Config {
	cfg := &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,

		Distribution: getFlagValue(ctx, DistributionFlag).(string),
		Iterations:   getFlagValue(ctx, IterationsFlag).(int),
		RandomSeed:   getFlagValue(ctx, RandomSeedFlag).(int64),
		Breakdown:    getFlagValue(ctx, BreakdownFlag).(bool),
		Pretty:       getFlagValue(ctx, PrettyFlag).(bool),
		Output:       getFlagValue(ctx, OutputFlag).(string),
		DrawDb:       getFlagValue(ctx, DrawDbFlag).(string),
		Label:        getFlagValue(ctx, LabelFlag).(string),
		Trials:       getFlagValue(ctx, TrialsFlag).(int),
		Significance: getFlagValue(ctx, SignificanceFlag).(float64),
		Workers:      getFlagValue(ctx, WorkersFlag).(int),
		ChartFile:    getFlagValue(ctx, ChartFileFlag).(string),
		Port:         getFlagValue(ctx, PortFlag).(string),
		LogLevel:     getFlagValue(ctx, logger.LogLevelFlag).(string),
	}
	return cfg
}

// getFlagValue returns value specified by user if flag is present in cli context, otherwise return default flag value
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}

		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}

		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}

		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}

		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}

		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// If flag not found, return the default value of the flag
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	}
	return nil
}
