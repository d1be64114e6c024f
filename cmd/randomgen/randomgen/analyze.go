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
	"github.com/0xsoniclabs/aida-randomgen/statistics"
	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/0xsoniclabs/aida-randomgen/weighted"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// ErrHypothesisRejected is returned if the drawn values do not follow the
// distribution at the given significance.
var ErrHypothesisRejected = errors.New("null hypothesis rejected")

// AnalyzeCommand runs goodness-of-fit trials on the generator.
var AnalyzeCommand = cli.Command{
	Action:    analyzeAction,
	Name:      "analyze",
	Usage:     "test the generator with independent chi-squared trials",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&config.DistributionFlag,
		&config.IterationsFlag,
		&config.RandomSeedFlag,
		&config.TrialsFlag,
		&config.SignificanceFlag,
		&config.WorkersFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The analyze command runs independent trials of --iterations draws each and
compares their mean chi-squared statistic with the critical value at the given
significance. It also shows how the standard error of mean shrinks with 1, 100
and 10,000 times the number of iterations. The command fails if the null
hypothesis is rejected.`,
}

func analyzeAction(ctx *cli.Context) error {
	cfg, err := config.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "RandomGenAnalyze")

	dist, err := cfg.LoadDistribution()
	if err != nil {
		return err
	}
	seed := cfg.RandomSeed
	if !cfg.HasRandomSeed() {
		if seed, err = weighted.NewRandomSeed(); err != nil {
			return err
		}
	}

	log.Notice(numbers.Sprintf("Run %d trials of %d draws with %d workers", cfg.Trials, cfg.Iterations, cfg.Workers))
	chi2s, err := statistics.RunTrials(ctx.Context, statistics.TrialConfig{
		Outcomes:      dist.Outcomes,
		Probabilities: dist.Probabilities,
		Draws:         cfg.Iterations,
		Trials:        cfg.Trials,
		Seed:          seed,
		Workers:       cfg.Workers,
		Log:           log,
	})
	if err != nil {
		return err
	}

	s, err := weighted.NewWithSeed(dist.Outcomes, dist.Probabilities, seed, weighted.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info(numbers.Sprintf("Draw up to %d values for the convergence series", 10_000*cfg.Iterations))
	points, err := statistics.Convergence(s, []int{cfg.Iterations, 100 * cfg.Iterations, 10_000 * cfg.Iterations})
	if err != nil {
		return err
	}

	sum, err := summary.New(s)
	if err != nil {
		return err
	}
	single, err := statistics.TestSummary(sum, cfg.Significance)
	if err != nil {
		return err
	}

	df := len(dist.Outcomes) - 1
	res := statistics.Test(summary.Mean(chi2s), df, cfg.Significance)
	printAnalysis(ctx.App.Writer, cfg, seed, chi2s, res, points)
	// a single long run is informative only; the verdict is taken over all trials
	fmt.Fprintf(ctx.App.Writer, "Single sampler at n=%d: chi squared statistic= %.4f, p-value= %.4f, %v\n",
		sum.Count(), single.ChiSquared, single.PValue, single)
	if res.Reject {
		return errors.Wrapf(ErrHypothesisRejected, "%v", res)
	}
	return nil
}

func printAnalysis(w io.Writer, cfg *config.Config, seed int64, chi2s []float64, res statistics.Result, points []statistics.Point) {
	fmt.Fprintf(w, "Trials: %d x %d draws, seed %d\n", len(chi2s), cfg.Iterations, seed)
	fmt.Fprintf(w, "Mean chi squared statistic: %.4f (std deviation %.4f)\n", res.ChiSquared, summary.StandardDeviation(chi2s))
	fmt.Fprintf(w, "Goodness of fit: %v\n", res)
	fmt.Fprintf(w, "Rejected trials: %.1f%% (expected %.1f%%)\n",
		100*statistics.RejectionRate(chi2s, res.DegreesOfFreedom, cfg.Significance), 100*cfg.Significance)
	for _, p := range points {
		fmt.Fprintf(w, "n=%d: chi squared statistic= %.4f, total deviation= %.4f, std error of mean= %.6f\n",
			p.Draws, p.ChiSquared, p.TotalDeviation, p.StandardErrorOfMean)
	}
}
