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

// Package statistics runs goodness-of-fit tests on weighted samplers.
package statistics

import (
	"fmt"

	"github.com/0xsoniclabs/aida-randomgen/summary"
	"gonum.org/v1/gonum/stat/distuv"
)

// Result is the outcome of a chi-squared goodness-of-fit test.
type Result struct {
	ChiSquared       float64
	DegreesOfFreedom int
	Significance     float64
	Critical         float64
	PValue           float64
	// Reject is set if the null hypothesis, that the observations follow
	// the distribution, is rejected at the given significance.
	Reject bool
}

func (r Result) String() string {
	verdict := "accepted"
	if r.Reject {
		verdict = "rejected"
	}
	return fmt.Sprintf("chi2=%.4f df=%d critical(%.3f)=%.4f p=%.4f: %v",
		r.ChiSquared, r.DegreesOfFreedom, r.Significance, r.Critical, r.PValue, verdict)
}

// CriticalValue returns the chi-squared value above which the null
// hypothesis is rejected at the given significance. A distribution without
// degrees of freedom has critical value zero.
func CriticalValue(df int, significance float64) float64 {
	if df < 1 {
		return 0.0
	}
	return distuv.ChiSquared{K: float64(df), Src: nil}.Quantile(1.0 - significance)
}

// PValue returns the probability of a chi-squared statistic at least as
// large as chi2 under the null hypothesis.
func PValue(chi2 float64, df int) float64 {
	if df < 1 {
		return 1.0
	}
	return distuv.ChiSquared{K: float64(df), Src: nil}.Survival(chi2)
}

// Test checks a chi-squared statistic against the critical value.
func Test(chi2 float64, df int, significance float64) Result {
	critical := CriticalValue(df, significance)
	return Result{
		ChiSquared:       chi2,
		DegreesOfFreedom: df,
		Significance:     significance,
		Critical:         critical,
		PValue:           PValue(chi2, df),
		Reject:           chi2 > critical,
	}
}

// TestSummary runs the test on the total chi-squared of a snapshot.
func TestSummary(s *summary.Summarizer, significance float64) (Result, error) {
	chi2, err := s.TotalChiSquared()
	if err != nil {
		return Result{}, err
	}
	return Test(chi2, s.Len()-1, significance), nil
}

// RejectionRate returns the fraction of statistics above the critical value.
// For a sound sampler it approaches the significance level.
func RejectionRate(chi2s []float64, df int, significance float64) float64 {
	if len(chi2s) == 0 {
		return 0.0
	}
	critical := CriticalValue(df, significance)
	rejected := 0
	for _, v := range chi2s {
		if v > critical {
			rejected++
		}
	}
	return float64(rejected) / float64(len(chi2s))
}
