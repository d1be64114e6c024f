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

package config

import "github.com/urfave/cli/v2"

var (
	DistributionFlag = cli.PathFlag{
		Name:  "distribution",
		Usage: "JSON file (optionally gzipped) with outcomes and probabilities; the built-in example if empty",
	}
	IterationsFlag = cli.IntFlag{
		Name:    "iterations",
		Aliases: []string{"n"},
		Usage:   "number of random values drawn",
		Value:   DefaultIterations,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "seed of the uniform source; a negative seed selects a random one",
		Value: -1,
	}
	BreakdownFlag = cli.BoolFlag{
		Name:  "breakdown",
		Usage: "list every outcome in the report",
	}
	PrettyFlag = cli.BoolFlag{
		Name:  "pretty",
		Usage: "print the report as a box-drawn table",
	}
	OutputFlag = cli.PathFlag{
		Name:  "output",
		Usage: "append the report to the given file",
	}
	DrawDbFlag = cli.PathFlag{
		Name:  "db",
		Usage: "sqlite3 database recording the runs",
	}
	LabelFlag = cli.StringFlag{
		Name:  "label",
		Usage: "label of the recorded run",
		Value: "draw",
	}
	TrialsFlag = cli.IntFlag{
		Name:  "trials",
		Usage: "number of independent trials",
		Value: 100,
	}
	SignificanceFlag = cli.Float64Flag{
		Name:  "significance",
		Usage: "significance level of the goodness-of-fit test",
		Value: 0.05,
	}
	WorkersFlag = cli.IntFlag{
		Name:  "workers",
		Usage: "number of worker threads running trials",
		Value: 4,
	}
	ChartFileFlag = cli.PathFlag{
		Name:  "chart-file",
		Usage: "write the chart into the given HTML file instead of serving it",
	}
	PortFlag = cli.StringFlag{
		Name:  "port",
		Usage: "port of the chart web server",
		Value: "8080",
	}
)
