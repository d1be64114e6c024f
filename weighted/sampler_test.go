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
	"math"
	"testing"

	"github.com/0xsoniclabs/aida-randomgen/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/stat/distuv"
)

func runSampler(s *Sampler, n int) {
	for range n {
		s.Draw()
	}
}

func TestSampler_TrivialSingleOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	src := NewMockSource(ctrl)

	// the source must never be consulted in the trivial case
	log.EXPECT().Infof(gomock.Any(), 1, 6).Times(1)
	s, err := NewWithSeed([]int{6}, []float64{1.0}, 19, WithLogger(log), WithSource(src))
	require.NoError(t, err)
	assert.True(t, s.IsTrivial())

	for range 100 {
		assert.Equal(t, 6, s.Draw())
	}
	assert.Equal(t, []int{100}, s.Occurrences())
	assert.Equal(t, 100, s.Count())
	assert.Equal(t, 0, s.DegreesOfFreedom())
}

func TestSampler_TrivialAmongMany(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().Infof(gomock.Any(), 100, 50).Times(1)

	n := 100
	outcomes := make([]int, n)
	for i := range n {
		outcomes[i] = i
	}
	probs := make([]float64, n)
	probs[n/2] = 1.0

	s, err := New(outcomes, probs, WithLogger(log))
	require.NoError(t, err)
	runSampler(s, 1000)

	occurrences := s.Occurrences()
	require.Len(t, occurrences, n)
	for i, o := range occurrences {
		if i == n/2 {
			assert.Equal(t, 1000, o)
		} else {
			assert.Equal(t, 0, o, "occurrences of %d", outcomes[i])
		}
	}
}

func TestSampler_DegreesOfFreedom(t *testing.T) {
	for k := 1; k <= 20; k++ {
		probs := make([]float64, k)
		for i := range k {
			probs[i] = 1.0 / float64(k)
		}
		s, err := NewWithSeed(make([]int, k), probs, 1, WithLogger(logger.NewLogger("ERROR", "Test")))
		require.NoError(t, err)
		assert.Equal(t, k-1, s.DegreesOfFreedom())
		assert.Equal(t, k, s.Len())
	}
}

func TestSampler_Getters(t *testing.T) {
	s, err := NewWithSeed(exampleOutcomes, exampleProbabilities, 25)
	require.NoError(t, err)
	runSampler(s, 1000)

	assert.Equal(t, 1000, s.Count())
	assert.Equal(t, exampleOutcomes, s.Outcomes())
	assert.Equal(t, exampleProbabilities, s.Probabilities())
	assert.Equal(t, int64(25), s.Seed())
	assert.False(t, s.IsTrivial())

	total := 0
	for _, o := range s.Occurrences() {
		total += o
	}
	assert.Equal(t, 1000, total)

	// accessors hand out copies
	s.Occurrences()[0] = -5
	s.Outcomes()[0] = 42
	s.Probabilities()[0] = 0.9
	assert.NotEqual(t, -5, s.Occurrences()[0])
	assert.Equal(t, -1, s.Outcomes()[0])
	assert.Equal(t, 0.01, s.Probabilities()[0])
}

func TestSampler_RejectsInvalidTable(t *testing.T) {
	s, err := New([]int{1, 2}, []float64{0.6, 0.5})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrProbabilitySumInvalid)

	s, err = NewWithSeed([]int{1, 2, 3}, []float64{0.5, 0.5}, 3)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSampler_BoundarySelectsLowerIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	src.EXPECT().Float64().Return(0.5)

	s, err := NewWithSeed([]int{7, 8}, []float64{0.5, 0.5}, 0, WithSource(src))
	require.NoError(t, err)
	assert.Equal(t, 7, s.Draw())
	assert.Equal(t, []int{1, 0}, s.Occurrences())
}

func TestSampler_MapsUniformValuesToSegments(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Float64().Return(0.005),
		src.EXPECT().Float64().Return(0.2),
		src.EXPECT().Float64().Return(0.5),
		src.EXPECT().Float64().Return(0.95),
		src.EXPECT().Float64().Return(0.995),
		src.EXPECT().Float64().Return(0.0),
	)

	s, err := NewWithSeed(exampleOutcomes, exampleProbabilities, 0, WithSource(src))
	require.NoError(t, err)
	got := []int{}
	for range 6 {
		got = append(got, s.Draw())
	}
	assert.Equal(t, []int{-1, 0, 1, 2, 3, -1}, got)
	assert.Equal(t, []int{2, 1, 1, 1, 1}, s.Occurrences())
	assert.Equal(t, 6, s.Count())
}

func TestSampler_SeededDrawsAreReproducible(t *testing.T) {
	s1, err := NewWithSeed(exampleOutcomes, exampleProbabilities, 25)
	require.NoError(t, err)
	s2, err := NewWithSeed(exampleOutcomes, exampleProbabilities, 25)
	require.NoError(t, err)
	other, err := NewWithSeed(exampleOutcomes, exampleProbabilities, 24)
	require.NoError(t, err)

	differs := false
	for i := range 10_000 {
		a, b, c := s1.Draw(), s2.Draw(), other.Draw()
		require.Equal(t, a, b, "draw %d", i)
		differs = differs || a != c
	}
	assert.Equal(t, s1.Occurrences(), s2.Occurrences())
	assert.True(t, differs, "different seeds should produce different sequences")
}

func TestSampler_RandomSeedCanBeReplayed(t *testing.T) {
	s, err := New(exampleOutcomes, exampleProbabilities)
	require.NoError(t, err)
	require.GreaterOrEqual(t, s.Seed(), int64(0))

	replay, err := NewWithSeed(exampleOutcomes, exampleProbabilities, s.Seed())
	require.NoError(t, err)
	for i := range 1_000 {
		require.Equal(t, s.Draw(), replay.Draw(), "draw %d", i)
	}
}

func TestSampler_ZeroProbabilityIsNeverDrawn(t *testing.T) {
	s, err := NewWithSeed([]int{0, 1, 2, 3, 4}, []float64{0.0, 0.5, 0.0, 0.5, 0.0}, 7)
	require.NoError(t, err)
	runSampler(s, 100_000)

	occurrences := s.Occurrences()
	assert.Zero(t, occurrences[0])
	assert.Zero(t, occurrences[2])
	assert.Zero(t, occurrences[4])
	assert.Equal(t, 100_000, occurrences[1]+occurrences[3])
}

func TestSampler_LargeNumberOfDuplicates(t *testing.T) {
	n := 10_000
	numValues := 4
	outcomes := make([]int, n)
	probs := make([]float64, n)
	for i := range n {
		// 1 and 3 are three times more likely than 0 and 2
		outcomes[i] = i % numValues
		if i%2 == 0 {
			probs[i] = 0.5 / float64(n)
		} else {
			probs[i] = 1.5 / float64(n)
		}
	}

	s, err := NewWithSeed(outcomes, probs, 11)
	require.NoError(t, err)
	drawn := make([]int, numValues)
	for range n {
		v := s.Draw()
		require.True(t, v >= 0 && v < numValues)
		drawn[v]++
	}

	occurrences := s.Occurrences()
	require.Len(t, occurrences, n)
	perValue := make([]int, numValues)
	for i, o := range occurrences {
		perValue[outcomes[i]] += o
	}
	assert.Equal(t, drawn, perValue)
	ratio := float64(perValue[1]) / float64(perValue[0])
	assert.Equal(t, 3.0, math.Round(ratio))
}

// testUnbiased draws from a seeded sampler and checks the chi-squared
// statistic of the occurrences against the critical value.
func testUnbiased(t *testing.T, outcomes []int, probs []float64) {
	s, err := NewWithSeed(outcomes, probs, 999)
	require.NoError(t, err)

	numSteps := 100_000
	runSampler(s, numSteps)

	chi2 := 0.0
	for i, o := range s.Occurrences() {
		expected := float64(numSteps) * probs[i]
		if expected == 0 {
			require.Zero(t, o)
			continue
		}
		diff := expected - float64(o)
		chi2 += diff * diff / expected
	}

	alpha := 0.001
	df := float64(s.DegreesOfFreedom())
	critical := distuv.ChiSquared{K: df, Src: nil}.Quantile(1.0 - alpha)
	if chi2 > critical {
		t.Fatalf("the weighted selection is biased; chi2 %v > critical %v", chi2, critical)
	}
}

func TestSampler_Statistical(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		testUnbiased(t, exampleOutcomes, exampleProbabilities)
	})
	t.Run("Uniform", func(t *testing.T) {
		n := 51
		probs := make([]float64, n)
		outcomes := make([]int, n)
		for i := range n {
			outcomes[i] = i
			probs[i] = 1.0 / float64(n)
		}
		testUnbiased(t, outcomes, probs)
	})
	t.Run("Skewed", func(t *testing.T) {
		testUnbiased(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			[]float64{0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.92})
	})
}
