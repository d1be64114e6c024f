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

package visualizer

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/cockroachdb/errors"
)

type outcomeDatum struct {
	label      string
	expected   float64 // p_i
	observed   float64 // o_i/n
	chiSquared float64
	deviation  float64
}

type viewState struct {
	draws    int
	outcomes []outcomeDatum
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(rows []summary.Row) error {
	derived, err := buildViewState(rows)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func buildViewState(rows []summary.Row) (*viewState, error) {
	if len(rows) == 0 {
		return nil, errors.New("visualizer: no outcomes to show")
	}
	draws := 0
	for _, r := range rows {
		draws += r.Occurrences
	}
	data := make([]outcomeDatum, len(rows))
	for i, r := range rows {
		observed := 0.0
		if draws > 0 {
			observed = float64(r.Occurrences) / float64(draws)
		}
		data[i] = outcomeDatum{
			label:      strconv.Itoa(r.Value),
			expected:   r.Probability,
			observed:   observed,
			chiSquared: r.ChiSquared,
			deviation:  r.Deviation,
		}
	}
	return &viewState{draws: draws, outcomes: data}, nil
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: statistics not initialised")
	}
	return currentState, nil
}
