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

// Package randomgen implements the commands of the randomgen tool.
package randomgen

import (
	"github.com/0xsoniclabs/aida-randomgen/config"
	"github.com/0xsoniclabs/aida-randomgen/logger"
	"github.com/0xsoniclabs/aida-randomgen/weighted"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numbers formats counts with thousands separators in log lines.
var numbers = message.NewPrinter(language.English)

// newSampler builds a sampler for the configured distribution. Without a
// fixed seed the sampler is seeded randomly.
func newSampler(cfg *config.Config, log logger.Logger) (*weighted.Sampler, error) {
	dist, err := cfg.LoadDistribution()
	if err != nil {
		return nil, err
	}
	if cfg.HasRandomSeed() {
		return weighted.NewWithSeed(dist.Outcomes, dist.Probabilities, cfg.RandomSeed, weighted.WithLogger(log))
	}
	return weighted.New(dist.Outcomes, dist.Probabilities, weighted.WithLogger(log))
}

func drawValues(s *weighted.Sampler, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = s.Draw()
	}
	return values
}
