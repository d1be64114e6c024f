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

// Package summary analyses the occurrences drawn by a weighted sampler.
//
// The chi-squared statistic tests whether observed frequencies differ
// significantly from the expected ones. The standard error of mean (SEM)
// estimates how far the mean of the deviations |o_i/n - p_i| is likely to be
// from the population mean.
package summary

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat"
)

// ErrImpossibleObservation is returned when an outcome with probability zero
// has been drawn, so the chi-squared statistic is undefined.
var ErrImpossibleObservation = errors.New("observation of an outcome with probability zero")

// ErrInvalidSnapshot is returned for a snapshot without outcomes or with
// inconsistent lengths.
var ErrInvalidSnapshot = errors.New("invalid sampler snapshot")

// Snapshotter is the read-only view of a sampler the summarizer needs.
// *weighted.Sampler implements it.
type Snapshotter interface {
	Outcomes() []int
	Probabilities() []float64
	Occurrences() []int
	Count() int
}

// Row holds the statistics of a single outcome.
type Row struct {
	Value       int
	Probability float64
	Occurrences int
	Expected    float64
	ChiSquared  float64
	Deviation   float64
}

type entry struct {
	value       int
	probability float64
	occurrences int
}

// Summarizer is a snapshot of a sampler at a given number of draws. Later
// draws on the sampler do not change it.
type Summarizer struct {
	data  []entry
	count int
}

// New takes a snapshot of the sampler's outcomes, probabilities,
// occurrences and draw count.
func New(s Snapshotter) (*Summarizer, error) {
	outcomes := s.Outcomes()
	probabilities := s.Probabilities()
	occurrences := s.Occurrences()
	k := len(outcomes)
	if k < 1 || len(probabilities) != k || len(occurrences) != k {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "expecting at least one outcome and equal lengths, got %d outcomes, %d probabilities, %d occurrences",
			k, len(probabilities), len(occurrences))
	}
	data := make([]entry, k)
	for i := range k {
		data[i] = entry{outcomes[i], probabilities[i], occurrences[i]}
	}
	return &Summarizer{data: data, count: s.Count()}, nil
}

// Len returns the number of outcomes k.
func (s *Summarizer) Len() int {
	return len(s.data)
}

// Count returns the number of draws n at snapshot time.
func (s *Summarizer) Count() int {
	return s.count
}

// Deviation returns |o_i/n - p_i|, or p_i if nothing has been drawn yet.
func (s *Summarizer) Deviation(i int) float64 {
	e := s.data[i]
	if s.count > 0 {
		return math.Abs(float64(e.occurrences)/float64(s.count) - e.probability)
	}
	return e.probability
}

// Deviations returns the deviation of every outcome.
func (s *Summarizer) Deviations() []float64 {
	res := make([]float64, len(s.data))
	for i := range s.data {
		res[i] = s.Deviation(i)
	}
	return res
}

// TotalDeviation is the sum of all deviations.
func (s *Summarizer) TotalDeviation() float64 {
	total := 0.0
	for _, d := range s.Deviations() {
		total += d
	}
	return total
}

// Expected returns the expected number of occurrences p_i * n.
func (s *Summarizer) Expected(i int) float64 {
	return s.data[i].probability * float64(s.count)
}

// ChiSquared returns (o_i - E_i)^2 / E_i for outcome i. If E_i is zero the
// contribution is zero, unless the outcome has been observed.
func (s *Summarizer) ChiSquared(i int) (float64, error) {
	e := s.data[i]
	expected := s.Expected(i)
	if expected > 0 {
		diff := float64(e.occurrences) - expected
		return diff * diff / expected, nil
	}
	if e.occurrences > 0 && s.count > 0 {
		return 0, errors.Wrapf(ErrImpossibleObservation,
			"random number %d has probability zero, but %d occurrences were generated; unable to calculate chi squared statistic",
			e.value, e.occurrences)
	}
	return 0, nil
}

// TotalChiSquared is the chi-squared statistic over all outcomes.
func (s *Summarizer) TotalChiSquared() (float64, error) {
	total := 0.0
	for i := range s.data {
		chi2, err := s.ChiSquared(i)
		if err != nil {
			return 0, err
		}
		total += chi2
	}
	return total, nil
}

// StandardDeviation returns the sample standard deviation of the deviations.
func (s *Summarizer) StandardDeviation() float64 {
	return StandardDeviation(s.Deviations())
}

// StandardErrorOfMean returns SEM = sd / sqrt(k), where sd is the standard
// deviation of the deviations |p_i - o_i/n|.
func (s *Summarizer) StandardErrorOfMean() float64 {
	return s.StandardDeviation() / math.Sqrt(float64(len(s.data)))
}

// Rows returns the per-outcome statistics in insertion order.
func (s *Summarizer) Rows() ([]Row, error) {
	rows := make([]Row, len(s.data))
	for i, e := range s.data {
		chi2, err := s.ChiSquared(i)
		if err != nil {
			return nil, err
		}
		rows[i] = Row{
			Value:       e.value,
			Probability: e.probability,
			Occurrences: e.occurrences,
			Expected:    s.Expected(i),
			ChiSquared:  chi2,
			Deviation:   s.Deviation(i),
		}
	}
	return rows, nil
}

// String implements fmt.Stringer with the short report.
func (s *Summarizer) String() string {
	report, err := s.Report(false)
	if err != nil {
		return fmt.Sprintf("summary unavailable; %v", err)
	}
	return report
}

// Mean returns the arithmetic mean, or 0 for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return stat.Mean(values, nil)
}

// StandardDeviation returns the sample standard deviation with divisor k-1,
// or 0 for fewer than two values.
func StandardDeviation(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	return stat.StdDev(values, nil)
}
