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
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors of the table validation. A *ValidationError unwraps to one of them.
var (
	ErrShapeMismatch         = errors.New("outcomes and probabilities must be non-empty and of the same length")
	ErrOutOfRange            = errors.New("probability out of range")
	ErrProbabilitySumInvalid = errors.New("probabilities do not sum to one")
)

// ValidationError describes why a distribution table was rejected.
type ValidationError struct {
	Kind  error   // ErrShapeMismatch, ErrOutOfRange or ErrProbabilitySumInvalid
	Index int     // offending position; -1 if the error concerns the whole input
	Value float64 // offending probability, or the deviation of the sum from one
	msg   string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func shapeMismatch(numOutcomes, numProbabilities int) error {
	return &ValidationError{
		Kind:  ErrShapeMismatch,
		Index: -1,
		msg: fmt.Sprintf("expecting outcomes and probabilities of the same non-zero length, got %d and %d",
			numOutcomes, numProbabilities),
	}
}

func outOfRange(idx int, p float64) error {
	return &ValidationError{
		Kind:  ErrOutOfRange,
		Index: idx,
		Value: p,
		msg:   fmt.Sprintf("expecting probabilities between 0 and 1, probability at index %d has illegal value %v", idx, p),
	}
}

func sumInvalid(diff float64) error {
	return &ValidationError{
		Kind:  ErrProbabilitySumInvalid,
		Index: -1,
		Value: diff,
		msg:   fmt.Sprintf("expecting probabilities to total 1.0, however total differs by %.8f", diff),
	}
}
