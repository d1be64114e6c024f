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

package statistics

import (
	"context"
	"runtime"

	"github.com/0xsoniclabs/aida-randomgen/logger"
	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/0xsoniclabs/aida-randomgen/weighted"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidTrials is returned for a trial configuration without trials or draws.
var ErrInvalidTrials = errors.New("invalid trial configuration")

// TrialConfig describes a batch of independent sampling trials.
type TrialConfig struct {
	Outcomes      []int
	Probabilities []float64
	Draws         int   // draws per trial
	Trials        int   // number of trials
	Seed          int64 // trial i is seeded with Seed+i
	Workers       int   // defaults to the number of CPUs
	Log           logger.Logger
}

// RunTrials draws Draws values in each of Trials independent samplers and
// returns the chi-squared statistic of every trial. Each trial has its own
// sampler, so results do not depend on the number of workers.
func RunTrials(ctx context.Context, cfg TrialConfig) ([]float64, error) {
	if cfg.Trials < 1 || cfg.Draws < 1 {
		return nil, errors.Wrapf(ErrInvalidTrials, "trials=%d, draws=%d", cfg.Trials, cfg.Draws)
	}
	if _, err := weighted.BuildTable(cfg.Outcomes, cfg.Probabilities); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	var opts []weighted.Option
	if cfg.Log != nil {
		opts = append(opts, weighted.WithLogger(cfg.Log))
	}

	results := make([]float64, cfg.Trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cfg.Trials {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chi2, err := trial(cfg, cfg.Seed+int64(i), opts)
			if err != nil {
				return errors.Wrapf(err, "trial %d", i)
			}
			results[i] = chi2
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "trials interrupted")
	}
	return results, nil
}

func trial(cfg TrialConfig, seed int64, opts []weighted.Option) (float64, error) {
	s, err := weighted.NewWithSeed(cfg.Outcomes, cfg.Probabilities, seed, opts...)
	if err != nil {
		return 0, err
	}
	for range cfg.Draws {
		s.Draw()
	}
	sum, err := summary.New(s)
	if err != nil {
		return 0, err
	}
	return sum.TotalChiSquared()
}
