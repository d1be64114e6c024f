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
	crand "crypto/rand"
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
)

// Source provides uniformly distributed values in [0,1).
//
//go:generate mockgen -source source.go -destination source_mock.go -package weighted
type Source interface {
	Float64() float64
}

// NewSource returns a PCG generator seeded with the given seed. Two sources
// with the same seed produce the same sequence.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(uint64(seed)))
}

// NewRandomSeed generates a non-negative seed using crypto/rand.
func NewRandomSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}
