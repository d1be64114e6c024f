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

package weighted

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	exampleOutcomes      = []int{-1, 0, 1, 2, 3}
	exampleProbabilities = []float64{0.01, 0.3, 0.58, 0.1, 0.01}
)

func TestTable_BuildRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name          string
		outcomes      []int
		probabilities []float64
		want          error
	}{
		{"nil inputs", nil, nil, ErrShapeMismatch},
		{"nil outcomes", nil, exampleProbabilities, ErrShapeMismatch},
		{"nil probabilities", exampleOutcomes, nil, ErrShapeMismatch},
		{"zero length", []int{}, []float64{}, ErrShapeMismatch},
		{"different length", []int{1, 2, 3}, []float64{0.5, 0.5}, ErrShapeMismatch},
		{"negative and greater one", []int{1, 2}, []float64{-0.001, 1.001}, ErrOutOfRange},
		{"invalid pair", []int{1, 2}, []float64{-0.5, 1.5}, ErrOutOfRange},
		{"tiny negative", []int{1, 2}, []float64{-0.1 * AcceptableError, 1.0 - 0.1*AcceptableError}, ErrOutOfRange},
		{"NaN", []int{1, 2}, []float64{math.NaN(), 0.99}, ErrOutOfRange},
		{"infinite", []int{1, 2, 3, 4}, []float64{math.Inf(1), math.Inf(1), 0.5, 0.5}, ErrOutOfRange},
		{"slightly above one", []int{1, 2}, []float64{AcceptableError, 1.0 + 6.0*AcceptableError}, ErrOutOfRange},
		{"sum above one", []int{1, 2}, []float64{0.6, 0.5}, ErrProbabilitySumInvalid},
		{"sum below one", []int{1, 2}, []float64{0.7 - 3.0*AcceptableError, 0.3 - AcceptableError}, ErrProbabilitySumInvalid},
		{"one plus residue", []int{1, 2, 3}, []float64{6.0 * AcceptableError, 1.0, 6.0 * AcceptableError}, ErrProbabilitySumInvalid},
		{"single below one", []int{1}, []float64{0.99999}, ErrProbabilitySumInvalid},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table, err := BuildTable(test.outcomes, test.probabilities)
			assert.Nil(t, table)
			require.Error(t, err)
			assert.ErrorIs(t, err, test.want)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, test.want, verr.Kind)
		})
	}
}

func TestTable_OutOfRangeNamesIndex(t *testing.T) {
	_, err := BuildTable([]int{1, 2, 3}, []float64{0.5, 0.5, -1})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 2, verr.Index)
	assert.Equal(t, -1.0, verr.Value)
	assert.Contains(t, err.Error(), "index 2")
}

func TestTable_SumToleranceScalesWithLength(t *testing.T) {
	k := 10
	probs := make([]float64, k)
	for i := range k {
		probs[i] = 0.1
	}
	probs[0] += 5 * AcceptableError
	_, err := BuildTable(make([]int, k), probs)
	assert.NoError(t, err, "deviation below k*AcceptableError must pass")

	probs[0] += 10 * AcceptableError
	_, err = BuildTable(make([]int, k), probs)
	assert.ErrorIs(t, err, ErrProbabilitySumInvalid)
}

func TestTable_Cumulative(t *testing.T) {
	table, err := BuildTable(exampleOutcomes, exampleProbabilities)
	require.NoError(t, err)

	want := []float64{0.01, 0.31, 0.89, 0.99, 1.0}
	require.Equal(t, len(want), len(table.cumulative))
	for i := range want {
		assert.InDelta(t, want[i], table.cumulative[i], 1e-12)
	}
	_, trivial := table.Trivial()
	assert.False(t, trivial)
	assert.Equal(t, 5, table.Len())
}

func TestTable_CopiesInput(t *testing.T) {
	outcomes := []int{1, 2}
	probs := []float64{0.5, 0.5}
	table, err := BuildTable(outcomes, probs)
	require.NoError(t, err)

	outcomes[0] = 7
	probs[0] = 0.9
	assert.Equal(t, []int{1, 2}, table.Outcomes())
	assert.Equal(t, []float64{0.5, 0.5}, table.Probabilities())
}

func TestTable_TrivialDetection(t *testing.T) {
	t.Run("single outcome", func(t *testing.T) {
		table, err := BuildTable([]int{6}, []float64{1.0})
		require.NoError(t, err)
		idx, ok := table.Trivial()
		assert.True(t, ok)
		assert.Equal(t, 0, idx)
	})
	t.Run("one of many", func(t *testing.T) {
		probs := make([]float64, 100)
		probs[50] = 1.0
		table, err := BuildTable(make([]int, 100), probs)
		require.NoError(t, err)
		idx, ok := table.Trivial()
		assert.True(t, ok)
		assert.Equal(t, 50, idx)
	})
	t.Run("almost one is not trivial", func(t *testing.T) {
		table, err := BuildTable([]int{10, 20}, []float64{0.5e-8, 1.0 - 2e-8})
		require.NoError(t, err)
		_, ok := table.Trivial()
		assert.False(t, ok)
	})
}

func TestTable_SearchPrefersLowerSegmentOnBoundary(t *testing.T) {
	table, err := BuildTable([]int{1, 2}, []float64{0.5, 0.5})
	require.NoError(t, err)

	assert.Equal(t, 0, table.Search(0.5))
	assert.Equal(t, 0, table.Search(0.25))
	assert.Equal(t, 1, table.Search(math.Nextafter(0.5, 1)))
	assert.Equal(t, 1, table.Search(0.999999))
}

func TestTable_SearchSegments(t *testing.T) {
	table, err := BuildTable([]int{10, 20, 30}, []float64{0.2, 0.3, 0.5})
	require.NoError(t, err)

	tests := []struct {
		u    float64
		want int
	}{
		{0.0, 0},
		{0.1, 0},
		{0.2, 0},
		{0.2000001, 1},
		{0.49, 1},
		{0.50001, 2},
		{0.99, 2},
		{1.0, 2},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, table.Search(test.u), "u=%v", test.u)
	}
}

func TestTable_SearchSkipsZeroProbabilities(t *testing.T) {
	table, err := BuildTable([]int{1, 2, 3, 4, 5}, []float64{0.0, 0.4, 0.0, 0.6, 0.0})
	require.NoError(t, err)

	assert.Equal(t, 1, table.Search(0.0), "u=0 must not select a leading zero-probability outcome")
	assert.Equal(t, 1, table.Search(0.4))
	assert.Equal(t, 3, table.Search(0.41))
	assert.Equal(t, 3, table.Search(1.0), "values above the total must not select a trailing zero-probability outcome")
}
