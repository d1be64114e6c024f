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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/0xsoniclabs/aida-randomgen/config"
	"github.com/0xsoniclabs/aida-randomgen/logger"
	"github.com/0xsoniclabs/aida-randomgen/recorder"
	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/0xsoniclabs/aida-randomgen/utils"
	"github.com/0xsoniclabs/aida-randomgen/weighted"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// DrawCommand draws random numbers and prints their summary.
var DrawCommand = cli.Command{
	Action:    drawAction,
	Name:      "draw",
	Usage:     "draw random numbers from a weighted distribution",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&config.DistributionFlag,
		&config.IterationsFlag,
		&config.RandomSeedFlag,
		&config.BreakdownFlag,
		&config.PrettyFlag,
		&config.OutputFlag,
		&config.DrawDbFlag,
		&config.LabelFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The draw command draws the given number of random values, prints them
together with a chi-squared summary and optionally records the run.`,
}

func drawAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "RandomGenDraw")

	s, err := newSampler(cfg, log)
	if err != nil {
		return err
	}
	start := time.Now()
	values := drawValues(s, cfg.Iterations)
	h, m, sec := logger.ParseTime(time.Since(start))
	log.Info(numbers.Sprintf("Drew %d values with seed %d in %dh %dm %ds", len(values), s.Seed(), h, m, sec))

	sum, err := summary.New(s)
	if err != nil {
		return err
	}
	report, err := renderReport(cfg, sum)
	if err != nil {
		return err
	}

	printers := utils.NewPrinters().
		AddPrinterToWriter(ctx.App.Writer, func() string { return drawHeader(s, values) + report }).
		AddPrinterToFile(cfg.Output, func() string { return report })
	err = errors.Join(printers.Print(), printers.Close())
	if err != nil {
		return err
	}

	if cfg.DrawDb == "" {
		return nil
	}
	run, err := recorder.NewRun(cfg.Label, s.Seed(), sum)
	if err != nil {
		return err
	}
	db, err := recorder.NewDrawDB(cfg.DrawDb)
	if err != nil {
		return err
	}
	log.Noticef("Record run %q in %v", cfg.Label, cfg.DrawDb)
	return storeRun(db, run)
}

func renderReport(cfg *config.Config, sum *summary.Summarizer) (string, error) {
	if cfg.Pretty {
		table, err := sum.Table(cfg.Breakdown)
		if err != nil {
			return "", err
		}
		return table + "\n", nil
	}
	return sum.Report(cfg.Breakdown)
}

func drawHeader(s *weighted.Sampler, values []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weighted random generator with numbers %v and probabilities %v\n", s.Outcomes(), s.Probabilities())
	fmt.Fprintf(&b, "Drawn %d times: ", len(values))
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('\n')
	return b.String()
}

// storeRun adds a run to the database and closes it.
func storeRun(db recorder.DrawDB, run recorder.Run) (err error) {
	defer func() {
		err = errors.Join(err, db.Close())
	}()
	return db.Add(run)
}
