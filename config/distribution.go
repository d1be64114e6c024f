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

package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/0xsoniclabs/aida-randomgen/weighted"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

const distributionFileId = "distribution"

// Distribution is the on-disk form of a weighted distribution. Files ending
// in ".gz" are gzip compressed.
type Distribution struct {
	FileId        string    `json:"FileId"`
	Outcomes      []int     `json:"outcomes"`
	Probabilities []float64 `json:"probabilities"`
}

// DefaultDistribution returns the example distribution of the demo.
func DefaultDistribution() Distribution {
	return Distribution{
		FileId:        distributionFileId,
		Outcomes:      []int{-1, 0, 1, 2, 3},
		Probabilities: []float64{0.01, 0.3, 0.58, 0.1, 0.01},
	}
}

// LoadDistribution reads the configured distribution file, or returns the
// example distribution if none is configured.
func (cfg *Config) LoadDistribution() (Distribution, error) {
	if cfg.Distribution == "" {
		return DefaultDistribution(), nil
	}
	return ReadDistribution(cfg.Distribution)
}

// Validate checks that the distribution forms a valid table.
func (d Distribution) Validate() error {
	_, err := weighted.BuildTable(d.Outcomes, d.Probabilities)
	return err
}

// ReadDistribution reads a distribution in JSON format.
func ReadDistribution(filename string) (d Distribution, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return d, errors.Wrapf(err, "failed opening distribution file %v", filename)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)

	var reader io.Reader = file
	if isCompressed(filename) {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			return d, errors.Wrapf(err, "could not create gzip reader for distribution file %v", filename)
		}
		defer func() {
			err = errors.Join(err, gzipReader.Close())
		}()
		reader = gzipReader
	}
	contents, err := io.ReadAll(reader)
	if err != nil {
		return d, errors.Wrap(err, "failed reading distribution file")
	}
	if err = json.Unmarshal(contents, &d); err != nil {
		return d, errors.Wrap(err, "cannot unmarshal distribution")
	}
	if d.FileId != distributionFileId {
		return d, errors.Newf("file %v is not a distribution file", filename)
	}
	if err = d.Validate(); err != nil {
		return d, errors.Wrapf(err, "invalid distribution in %v", filename)
	}
	return d, nil
}

// WriteDistribution writes a distribution in JSON format.
func WriteDistribution(filename string, d Distribution) (err error) {
	d.FileId = distributionFileId
	contents, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot marshal distribution")
	}
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "cannot open for writing JSON file")
	}
	defer func(f *os.File) {
		err = errors.Join(err, f.Close())
	}(f)

	var writer io.Writer = f
	if isCompressed(filename) {
		gzipWriter := gzip.NewWriter(f)
		defer func() {
			err = errors.Join(err, gzipWriter.Close())
		}()
		writer = gzipWriter
	}
	_, err = writer.Write(contents)
	return err
}

func isCompressed(filename string) bool {
	return strings.HasSuffix(filename, ".gz")
}
