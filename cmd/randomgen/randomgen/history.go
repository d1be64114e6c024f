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
	"io"

	"github.com/0xsoniclabs/aida-randomgen/config"
	"github.com/0xsoniclabs/aida-randomgen/logger"
	"github.com/0xsoniclabs/aida-randomgen/recorder"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// HistoryCommand lists the runs recorded by the draw command.
var HistoryCommand = cli.Command{
	Action:    historyAction,
	Name:      "history",
	Usage:     "list recorded runs",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&config.DrawDbFlag,
		&config.BreakdownFlag,
		&logger.LogLevelFlag,
	},
}

func historyAction(ctx *cli.Context) (err error) {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.DrawDb == "" {
		return errors.Newf("missing run database; set --%v", config.DrawDbFlag.Name)
	}
	log := logger.NewLogger(cfg.LogLevel, "RandomGenHistory")

	db, err := recorder.NewDrawDB(cfg.DrawDb)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, db.Close())
	}()
	runs, err := db.Runs()
	if err != nil {
		return err
	}
	log.Infof("Found %d runs in %v", len(runs), cfg.DrawDb)
	return printHistory(ctx.App.Writer, db, runs, cfg.Breakdown)
}

// printHistory writes the runs table followed, with a breakdown, by one
// table of outcomes per run.
func printHistory(w io.Writer, db recorder.DrawDB, runs []recorder.RunRecord, showBreakdown bool) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Recorded runs")
	tw.AppendHeader(table.Row{"ID", "Created", "Label", "Seed", "k", "n", "Chi squared", "Deviation", "SEM"})
	for _, r := range runs {
		tw.AppendRow(table.Row{
			r.ID,
			r.Created.Format("2006-01-02 15:04:05"),
			r.Label,
			r.Seed,
			r.Outcomes,
			r.Draws,
			fmt.Sprintf("%.4f", r.ChiSquared),
			fmt.Sprintf("%.4f", r.TotalDeviation),
			fmt.Sprintf("%.4f", r.StandardErrorOfMean),
		})
	}
	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return err
	}
	if !showBreakdown {
		return nil
	}

	for _, r := range runs {
		outcomes, err := db.Outcomes(r.ID)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, outcomeTable(r, outcomes)); err != nil {
			return err
		}
	}
	return nil
}

func outcomeTable(r recorder.RunRecord, outcomes []recorder.OutcomeRecord) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("Run %d (%v)", r.ID, r.Label))
	tw.AppendHeader(table.Row{"Value", "Probability", "Occurrences", "Chi squared", "Deviation"})
	for _, o := range outcomes {
		tw.AppendRow(table.Row{
			o.Value,
			fmt.Sprintf("%.4f", o.Probability),
			o.Occurrences,
			fmt.Sprintf("%.4f", o.ChiSquared),
			fmt.Sprintf("%.4f", o.Deviation),
		})
	}
	return tw.Render()
}
