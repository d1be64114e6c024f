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
	"testing"

	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	exampleOutcomes      = []int{-1, 0, 1, 2, 3}
	exampleProbabilities = []float64{0.01, 0.3, 0.58, 0.1, 0.01}
)

type snapshot struct {
	occurrences []int
	count       int
}

func (s snapshot) Outcomes() []int          { return exampleOutcomes }
func (s snapshot) Probabilities() []float64 { return exampleProbabilities }
func (s snapshot) Occurrences() []int       { return s.occurrences }
func (s snapshot) Count() int               { return s.count }

func TestChiSquared_CriticalValue(t *testing.T) {
	tests := []struct {
		df           int
		significance float64
		want         float64
	}{
		{1, 0.05, 3.841459},
		{1, 0.01, 6.634897},
		{4, 0.05, 9.487729},
		{4, 0.01, 13.276704},
		{10, 0.05, 18.307038},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, CriticalValue(test.df, test.significance), 1e-5,
			"df=%d significance=%v", test.df, test.significance)
	}
	assert.Zero(t, CriticalValue(0, 0.05))
}

func TestChiSquared_PValue(t *testing.T) {
	assert.InDelta(t, 0.05, PValue(3.841459, 1), 1e-6)
	assert.InDelta(t, 0.01, PValue(13.276704, 4), 1e-6)
	assert.InDelta(t, 1.0, PValue(0.0, 4), 1e-12)
	assert.Equal(t, 1.0, PValue(0.0, 0))
}

func TestChiSquared_Test(t *testing.T) {
	res := Test(5.9757, 4, 0.05)
	assert.False(t, res.Reject)
	assert.InDelta(t, 9.487729, res.Critical, 1e-5)
	assert.Greater(t, res.PValue, 0.05)
	assert.Contains(t, res.String(), "accepted")

	res = Test(20.0, 4, 0.01)
	assert.True(t, res.Reject)
	assert.Less(t, res.PValue, 0.01)
	assert.Contains(t, res.String(), "rejected")

	// a trivial distribution can never be rejected
	assert.False(t, Test(0.0, 0, 0.05).Reject)
}

func TestChiSquared_TestSummary(t *testing.T) {
	sum, err := summary.New(snapshot{occurrences: []int{12, 322, 570, 83, 13}, count: 1000})
	require.NoError(t, err)
	res, err := TestSummary(sum, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 4, res.DegreesOfFreedom)
	assert.InDelta(t, 5.975747, res.ChiSquared, 1e-5)
	assert.False(t, res.Reject)

	skewed, err := summary.New(snapshot{occurrences: []int{100, 300, 400, 100, 100}, count: 1000})
	require.NoError(t, err)
	res, err = TestSummary(skewed, 0.01)
	require.NoError(t, err)
	assert.True(t, res.Reject)
}

func TestChiSquared_RejectionRate(t *testing.T) {
	assert.Zero(t, RejectionRate(nil, 4, 0.05))
	chi2s := []float64{1.0, 2.0, 10.0, 3.0}
	assert.Equal(t, 0.25, RejectionRate(chi2s, 4, 0.05))
	assert.Equal(t, 0.0, RejectionRate(chi2s, 4, 0.01))
}
