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

// Package recorder stores summaries of sampling runs in an SQLite database.
package recorder

import (
	"database/sql"
	"time"

	"github.com/0xsoniclabs/aida-randomgen/summary"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	// registers the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

const (
	// bufferSize of the in-memory buffer for runs
	bufferSize = 100

	insertRunSQL = `
INSERT INTO run (
	label, seed, k, n, chi2, totalDeviation, sem
) VALUES (
	?, ?, ?, ?, ?, ?, ?
)
`
	insertOutcomeSQL = `
INSERT INTO outcome (
	run, idx, value, probability, occurrences, chi2, deviation
) VALUES (
	?, ?, ?, ?, ?, ?, ?
)
`
	selectRunsSQL = `
SELECT id, createTimestamp, label, seed, k, n, chi2, totalDeviation, sem
FROM run ORDER BY id
`
	selectOutcomesSQL = `
SELECT idx, value, probability, occurrences, chi2, deviation
FROM outcome WHERE run = ? ORDER BY idx
`

	createSQL = `
PRAGMA journal_mode = MEMORY;
CREATE TABLE IF NOT EXISTS run (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	createTimestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	label TEXT,
	seed INTEGER,
	k INTEGER,
	n INTEGER,
	chi2 FLOAT,
	totalDeviation FLOAT,
	sem FLOAT
);
CREATE TABLE IF NOT EXISTS outcome (
	run INTEGER,
	idx INTEGER,
	value INTEGER,
	probability FLOAT,
	occurrences INTEGER,
	chi2 FLOAT,
	deviation FLOAT
);
`
)

// Run is the summary of a sampling run waiting to be stored.
type Run struct {
	Label               string
	Seed                int64
	Draws               int
	ChiSquared          float64
	TotalDeviation      float64
	StandardErrorOfMean float64
	Rows                []summary.Row
}

// NewRun collects the statistics of a summarizer into a Run.
func NewRun(label string, seed int64, s *summary.Summarizer) (Run, error) {
	rows, err := s.Rows()
	if err != nil {
		return Run{}, err
	}
	run := Run{
		Label:               label,
		Seed:                seed,
		Draws:               s.Count(),
		TotalDeviation:      s.TotalDeviation(),
		StandardErrorOfMean: s.StandardErrorOfMean(),
		Rows:                rows,
	}
	for _, r := range rows {
		run.ChiSquared += r.ChiSquared
	}
	return run, nil
}

// RunRecord is a stored run.
type RunRecord struct {
	ID                  int64     `db:"id"`
	Created             time.Time `db:"createTimestamp"`
	Label               string    `db:"label"`
	Seed                int64     `db:"seed"`
	Outcomes            int       `db:"k"`
	Draws               int       `db:"n"`
	ChiSquared          float64   `db:"chi2"`
	TotalDeviation      float64   `db:"totalDeviation"`
	StandardErrorOfMean float64   `db:"sem"`
}

// OutcomeRecord is a stored per-outcome row of a run.
type OutcomeRecord struct {
	Index       int     `db:"idx"`
	Value       int     `db:"value"`
	Probability float64 `db:"probability"`
	Occurrences int     `db:"occurrences"`
	ChiSquared  float64 `db:"chi2"`
	Deviation   float64 `db:"deviation"`
}

//go:generate mockgen -source drawdb.go -destination drawdb_mock.go -package recorder
type DrawDB interface {
	Close() error
	Add(run Run) error
	Flush() error
	Runs() ([]RunRecord, error)
	Outcomes(runID int64) ([]OutcomeRecord, error)
}

// drawDB buffers runs and writes them in a single transaction.
type drawDB struct {
	sql         *sql.DB
	x           *sqlx.DB
	runStmt     *sql.Stmt
	outcomeStmt *sql.Stmt
	buffer      []Run
}

// NewDrawDB opens or creates the run database in dbFile.
func NewDrawDB(dbFile string) (DrawDB, error) {
	return newDrawDB(dbFile)
}

func newDrawDB(dbFile string) (*drawDB, error) {
	sqlDB, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %v", dbFile)
	}
	if _, err = sqlDB.Exec(createSQL); err != nil {
		return nil, errors.Join(errors.Wrap(err, "failed to create schema"), sqlDB.Close())
	}
	runStmt, err := sqlDB.Prepare(insertRunSQL)
	if err != nil {
		return nil, errors.Join(errors.Wrap(err, "failed to prepare a SQL statement for runs"), sqlDB.Close())
	}
	outcomeStmt, err := sqlDB.Prepare(insertOutcomeSQL)
	if err != nil {
		return nil, errors.Join(errors.Wrap(err, "failed to prepare a SQL statement for outcomes"), sqlDB.Close())
	}
	return &drawDB{
		sql:         sqlDB,
		x:           sqlx.NewDb(sqlDB, "sqlite3"),
		runStmt:     runStmt,
		outcomeStmt: outcomeStmt,
		buffer:      make([]Run, 0, bufferSize),
	}, nil
}

// Close flushes the buffer and closes the database.
func (db *drawDB) Close() error {
	err := db.Flush()
	return errors.Join(err, db.outcomeStmt.Close(), db.runStmt.Close(), db.sql.Close())
}

// Add a run to the buffer; a full buffer is flushed.
func (db *drawDB) Add(run Run) error {
	db.buffer = append(db.buffer, run)
	if len(db.buffer) == cap(db.buffer) {
		if err := db.Flush(); err != nil {
			return errors.Wrap(err, "unable to flush runs")
		}
	}
	return nil
}

// Flush writes the buffered runs.
func (db *drawDB) Flush() error {
	if len(db.buffer) == 0 {
		return nil
	}
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	for _, run := range db.buffer {
		res, err := tx.Stmt(db.runStmt).Exec(run.Label, run.Seed, len(run.Rows), run.Draws,
			run.ChiSquared, run.TotalDeviation, run.StandardErrorOfMean)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		for i, r := range run.Rows {
			_, err = tx.Stmt(db.outcomeStmt).Exec(id, i, r.Value, r.Probability, r.Occurrences, r.ChiSquared, r.Deviation)
			if err != nil {
				_ = tx.Rollback()
				return err
			}
		}
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	db.buffer = db.buffer[:0]
	return nil
}

// Runs lists all stored runs, including those still buffered.
func (db *drawDB) Runs() ([]RunRecord, error) {
	if err := db.Flush(); err != nil {
		return nil, err
	}
	var runs []RunRecord
	if err := db.x.Select(&runs, selectRunsSQL); err != nil {
		return nil, errors.Wrap(err, "failed to read runs")
	}
	return runs, nil
}

// Outcomes returns the per-outcome rows of a stored run.
func (db *drawDB) Outcomes(runID int64) ([]OutcomeRecord, error) {
	var outcomes []OutcomeRecord
	if err := db.x.Select(&outcomes, selectOutcomesSQL, runID); err != nil {
		return nil, errors.Wrapf(err, "failed to read outcomes of run %d", runID)
	}
	return outcomes, nil
}
