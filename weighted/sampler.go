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

// Package weighted draws integers from a finite discrete distribution. When
// Draw is called many times the outcomes occur with roughly the configured
// probabilities.
//
// To draw, [0,1] is divided into k segments whose lengths are the outcome
// probabilities. A uniform value from the Source is located among the
// segment boundaries (the cumulative probabilities) by binary search.
package weighted

import (
	"github.com/0xsoniclabs/aida-randomgen/logger"
)

// strategy selects an outcome index. It is chosen once at construction.
type strategy interface {
	pick(src Source) int
}

// trivialStrategy always returns the outcome with probability one
// without consulting the source.
type trivialStrategy struct {
	index int
}

func (s trivialStrategy) pick(Source) int {
	return s.index
}

// searchStrategy locates a uniform value in the cumulative table.
type searchStrategy struct {
	table *Table
}

func (s searchStrategy) pick(src Source) int {
	return s.table.Search(src.Float64())
}

// Sampler draws outcomes of a Table and counts how often each was drawn.
// A Sampler is not safe for concurrent use; give each goroutine its own.
type Sampler struct {
	table       *Table
	strategy    strategy
	source      Source
	seed        int64
	occurrences []int // number of draws per outcome index
	count       int   // number of calls of Draw
	log         logger.Logger
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the logger reporting construction details.
func WithLogger(log logger.Logger) Option {
	return func(s *Sampler) {
		s.log = log
	}
}

// WithSource replaces the seeded PCG source.
func WithSource(src Source) Option {
	return func(s *Sampler) {
		s.source = src
	}
}

// New creates a Sampler for the given outcomes and probabilities, seeded
// from crypto/rand.
func New(outcomes []int, probabilities []float64, opts ...Option) (*Sampler, error) {
	table, err := BuildTable(outcomes, probabilities)
	if err != nil {
		return nil, err
	}
	seed, err := NewRandomSeed()
	if err != nil {
		return nil, err
	}
	return newSampler(table, seed, opts), nil
}

// NewWithSeed creates a Sampler whose sequence of draws is fully determined
// by the seed.
func NewWithSeed(outcomes []int, probabilities []float64, seed int64, opts ...Option) (*Sampler, error) {
	table, err := BuildTable(outcomes, probabilities)
	if err != nil {
		return nil, err
	}
	return newSampler(table, seed, opts), nil
}

func newSampler(table *Table, seed int64, opts []Option) *Sampler {
	s := &Sampler{
		table:       table,
		seed:        seed,
		occurrences: make([]int, table.Len()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.NewLogger("INFO", "RandomGen")
	}
	if s.source == nil {
		s.source = NewSource(seed)
	}

	if idx, ok := table.Trivial(); ok {
		s.strategy = trivialStrategy{index: idx}
		s.log.Infof("For an array of %d random numbers, all have probability zero except one which has probability 1; "+
			"random value %d will always be returned with certainty", table.Len(), table.Outcome(idx))
	} else {
		s.strategy = searchStrategy{table: table}
	}
	return s
}

// Draw returns one of the outcomes and records the occurrence.
func (s *Sampler) Draw() int {
	idx := s.strategy.pick(s.source)
	s.occurrences[idx]++
	s.count++
	return s.table.Outcome(idx)
}

// Occurrences returns how many times each outcome has been drawn, indexed
// like Outcomes.
func (s *Sampler) Occurrences() []int {
	res := make([]int, len(s.occurrences))
	copy(res, s.occurrences)
	return res
}

// Count returns the number of calls of Draw.
func (s *Sampler) Count() int {
	return s.count
}

// Outcomes returns the outcomes in insertion order.
func (s *Sampler) Outcomes() []int {
	return s.table.Outcomes()
}

// Probabilities returns the probabilities in insertion order.
func (s *Sampler) Probabilities() []float64 {
	return s.table.Probabilities()
}

// DegreesOfFreedom is one less than the number of outcomes, since the
// probabilities are bound to sum to one.
func (s *Sampler) DegreesOfFreedom() int {
	return s.table.Len() - 1
}

// Len returns the number of outcomes.
func (s *Sampler) Len() int {
	return s.table.Len()
}

// IsTrivial reports whether every draw returns the same outcome.
func (s *Sampler) IsTrivial() bool {
	_, ok := s.strategy.(trivialStrategy)
	return ok
}

// Seed returns the seed of the default source.
func (s *Sampler) Seed() int64 {
	return s.seed
}
