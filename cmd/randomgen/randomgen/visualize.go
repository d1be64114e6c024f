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

package randomgen

import (
	"github.com/0xsoniclabs/aida-randomgen/config"
	"github.com/0xsoniclabs/aida-randomgen/logger"
	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/0xsoniclabs/aida-randomgen/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand renders the drawn frequencies as charts.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "draw random numbers and chart their frequencies",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&config.DistributionFlag,
		&config.IterationsFlag,
		&config.RandomSeedFlag,
		&config.ChartFileFlag,
		&config.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command writes a frequency chart into --chart-file, or serves
all charts on a local web server listening on --port.`,
}

func visualizeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "RandomGenVisualize")

	s, err := newSampler(cfg, log)
	if err != nil {
		return err
	}
	drawValues(s, cfg.Iterations)
	sum, err := summary.New(s)
	if err != nil {
		return err
	}
	rows, err := sum.Rows()
	if err != nil {
		return err
	}

	if cfg.ChartFile != "" {
		chart, err := visualizer.NewFrequencyChart("Expected and observed frequencies", rows)
		if err != nil {
			return err
		}
		log.Noticef("Write chart to %v", cfg.ChartFile)
		return visualizer.RenderFile(cfg.ChartFile, chart)
	}
	log.Noticef("Open http://localhost:%v to see the charts", cfg.Port)
	return visualizer.FireUpWeb(rows, cfg.Port)
}
