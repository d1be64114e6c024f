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
	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/0xsoniclabs/aida-randomgen/weighted"
	"github.com/cockroachdb/errors"
)

// ErrInvalidCheckpoints is returned if checkpoints are not strictly
// increasing or lie before the sampler's current draw count.
var ErrInvalidCheckpoints = errors.New("invalid convergence checkpoints")

// Point is the state of a sampler after a number of draws.
type Point struct {
	Draws               int
	ChiSquared          float64
	TotalDeviation      float64
	StandardErrorOfMean float64
}

// Convergence keeps drawing from s and records its statistics at every
// checkpoint. The standard error of mean is expected to shrink as the
// number of draws grows.
func Convergence(s *weighted.Sampler, checkpoints []int) ([]Point, error) {
	last := s.Count()
	for _, c := range checkpoints {
		if c <= last {
			return nil, errors.Wrapf(ErrInvalidCheckpoints, "checkpoint %d does not follow %d", c, last)
		}
		last = c
	}

	points := make([]Point, 0, len(checkpoints))
	for _, c := range checkpoints {
		for s.Count() < c {
			s.Draw()
		}
		sum, err := summary.New(s)
		if err != nil {
			return nil, err
		}
		chi2, err := sum.TotalChiSquared()
		if err != nil {
			return nil, err
		}
		points = append(points, Point{
			Draws:               c,
			ChiSquared:          chi2,
			TotalDeviation:      sum.TotalDeviation(),
			StandardErrorOfMean: sum.StandardErrorOfMean(),
		})
	}
	return points, nil
}
