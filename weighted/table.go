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
	"sort"
)

// AcceptableError is the tolerance used for the range check, the sum check
// and the detection of an outcome with probability one.
const AcceptableError = 1e-8

// Table is a validated discrete distribution over integer outcomes. The
// interval [0,1] is split into one segment per outcome whose length is the
// outcome's probability; the segment boundaries are kept as cumulative sums.
// A Table is immutable after BuildTable returns.
type Table struct {
	outcomes      []int
	probabilities []float64
	cumulative    []float64 // cumulative[i] = p_0 + ... + p_i
	trivial       int       // index of an outcome with probability one, or -1
	lastPositive  int       // last index with a non-zero probability
}

// BuildTable checks that outcomes and probabilities have the same non-zero
// length, that every probability lies in [0,1] and that the probabilities sum
// to one within AcceptableError per outcome. The input slices are copied.
func BuildTable(outcomes []int, probabilities []float64) (*Table, error) {
	k := len(outcomes)
	if k == 0 || k != len(probabilities) {
		return nil, shapeMismatch(len(outcomes), len(probabilities))
	}

	cumulative := make([]float64, k)
	trivial := -1
	lastPositive := 0
	sum := 0.0 // Kahan's summation algorithm for probability sum
	c := 0.0   // compensation term of Kahan's algorithm
	for i, p := range probabilities {
		if p < 0.0 || p > 1.0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, outOfRange(i, p)
		}
		if math.Abs(p-1.0) < AcceptableError {
			trivial = i
		}
		if p > 0.0 {
			lastPositive = i
		}
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		cumulative[i] = sum
	}
	if diff := sum - 1.0; math.Abs(diff) > AcceptableError*float64(k) {
		return nil, sumInvalid(diff)
	}

	t := &Table{
		outcomes:      make([]int, k),
		probabilities: make([]float64, k),
		cumulative:    cumulative,
		trivial:       trivial,
		lastPositive:  lastPositive,
	}
	copy(t.outcomes, outcomes)
	copy(t.probabilities, probabilities)
	return t, nil
}

// Len returns the number of outcomes k.
func (t *Table) Len() int {
	return len(t.outcomes)
}

// Outcome returns the value at index i.
func (t *Table) Outcome(i int) int {
	return t.outcomes[i]
}

// Probability returns the probability at index i.
func (t *Table) Probability(i int) float64 {
	return t.probabilities[i]
}

// Outcomes returns a copy of the outcomes in insertion order.
func (t *Table) Outcomes() []int {
	res := make([]int, len(t.outcomes))
	copy(res, t.outcomes)
	return res
}

// Probabilities returns a copy of the probabilities in insertion order.
func (t *Table) Probabilities() []float64 {
	res := make([]float64, len(t.probabilities))
	copy(res, t.probabilities)
	return res
}

// Trivial reports the index of the outcome that carries all probability mass.
func (t *Table) Trivial() (int, bool) {
	return t.trivial, t.trivial >= 0
}

// Search returns the smallest index i such that u <= cumulative[i]. A value
// on a segment boundary belongs to the lower segment, so index 0 covers
// (0, c_0] and index i covers (c_{i-1}, c_i]. The result never exceeds the
// last outcome with a non-zero probability, and u = 0 is treated as the
// smallest positive value, so zero-probability outcomes are never returned.
func (t *Table) Search(u float64) int {
	if u <= 0.0 {
		u = math.SmallestNonzeroFloat64
	}
	return sort.Search(t.lastPositive, func(i int) bool {
		return u <= t.cumulative[i]
	})
}
