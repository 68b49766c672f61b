// SPDX-License-Identifier: MIT

package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Supported driver names.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Run is one recorded probe relaxation.
type Run struct {
	ID         int64 // assigned by Insert
	Session    string
	ProbeIndex int
	Dimension  int
	Seed       int64
	Bias       string
	Epochs     int
	Converged  bool
	Probe      string // "+-" form of the probe
	Recovered  string // "+-" form of the final state
	MatchIndex int    // stored pattern index, -1 when none
	Inverted   bool   // Recovered is the negation of pattern MatchIndex
	StartedAt  time.Time
	FinishedAt time.Time
}

// Store is a recall_runs table behind a *sql.DB. Insert, InsertAll and List
// are safe for concurrent use; Close is not.
type Store struct {
	db     *sql.DB
	driver string
}

const (
	schemaSQLite = `CREATE TABLE IF NOT EXISTS recall_runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session     TEXT    NOT NULL,
	probe_index INTEGER NOT NULL,
	dimension   INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	bias        TEXT    NOT NULL,
	epochs      INTEGER NOT NULL,
	converged   INTEGER NOT NULL,
	probe       TEXT    NOT NULL,
	recovered   TEXT    NOT NULL,
	match_index INTEGER NOT NULL,
	inverted    INTEGER NOT NULL,
	started_at  INTEGER NOT NULL,
	finished_at INTEGER NOT NULL
)`
	indexSQLite = `CREATE INDEX IF NOT EXISTS idx_recall_runs_session ON recall_runs(session)`

	schemaMySQL = `CREATE TABLE IF NOT EXISTS recall_runs (
	id          BIGINT       NOT NULL AUTO_INCREMENT PRIMARY KEY,
	session     VARCHAR(64)  NOT NULL,
	probe_index INT          NOT NULL,
	dimension   INT          NOT NULL,
	seed        BIGINT       NOT NULL,
	bias        VARCHAR(16)  NOT NULL,
	epochs      INT          NOT NULL,
	converged   BOOLEAN      NOT NULL,
	probe       LONGTEXT     NOT NULL,
	recovered   LONGTEXT     NOT NULL,
	match_index INT          NOT NULL,
	inverted    BOOLEAN      NOT NULL,
	started_at  BIGINT       NOT NULL,
	finished_at BIGINT       NOT NULL,
	INDEX idx_recall_runs_session (session)
)`

	insertRun = `INSERT INTO recall_runs (session, probe_index, dimension, seed, bias,
	epochs, converged, probe, recovered, match_index, inverted, started_at, finished_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectRuns = `SELECT id, session, probe_index, dimension, seed, bias, epochs, converged,
	probe, recovered, match_index, inverted, started_at, finished_at
	FROM recall_runs WHERE session = ? ORDER BY probe_index, id`
)

// Open connects to dsn with driver (DriverSQLite or DriverMySQL), checks the
// connection and creates the recall_runs table if missing.
//
// SQLite in-memory databases are private to a connection, so the pool is
// pinned to one connection for them.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	var schema []string
	switch driver {
	case DriverSQLite:
		schema = []string{schemaSQLite, indexSQLite}
	case DriverMySQL:
		schema = []string{schemaMySQL}
	default:
		return nil, fmt.Errorf("runstore: %q: %w", driver, ErrUnknownDriver)
	}
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("runstore: open %s: %w", driver, err)
	}
	if driver == DriverSQLite && strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("runstore: ping %s: %w", driver, err)
	}
	for _, stmt := range schema {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("runstore: create schema: %w", err)
		}
	}

	return &Store{db: db, driver: driver}, nil
}

// Driver reports the driver the store was opened with.
func (s *Store) Driver() string { return s.driver }

// Insert records run and returns its assigned id.
func (s *Store) Insert(ctx context.Context, run Run) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	res, err := s.db.ExecContext(ctx, insertRun, args(run)...)
	if err != nil {
		return 0, fmt.Errorf("runstore: insert probe %d: %w", run.ProbeIndex, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("runstore: insert probe %d: %w", run.ProbeIndex, err)
	}

	return id, nil
}

// InsertAll records runs in one transaction; either all rows land or none.
func (s *Store) InsertAll(ctx context.Context, runs []Run) error {
	if s.db == nil {
		return ErrClosed
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("runstore: begin: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, insertRun)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("runstore: prepare: %w", err)
	}
	defer stmt.Close()

	for _, run := range runs {
		if _, err = stmt.ExecContext(ctx, args(run)...); err != nil {
			tx.Rollback()
			return fmt.Errorf("runstore: insert probe %d: %w", run.ProbeIndex, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("runstore: commit: %w", err)
	}

	return nil
}

// List returns the runs of session ordered by probe index.
func (s *Store) List(ctx context.Context, session string) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, selectRuns, session)
	if err != nil {
		return nil, fmt.Errorf("runstore: list %q: %w", session, err)
	}
	defer rows.Close()

	var (
		out               []Run
		started, finished int64
	)
	for rows.Next() {
		var r Run
		if err = rows.Scan(&r.ID, &r.Session, &r.ProbeIndex, &r.Dimension, &r.Seed, &r.Bias,
			&r.Epochs, &r.Converged, &r.Probe, &r.Recovered, &r.MatchIndex, &r.Inverted,
			&started, &finished); err != nil {
			return nil, fmt.Errorf("runstore: scan: %w", err)
		}
		r.StartedAt = time.Unix(0, started)
		r.FinishedAt = time.Unix(0, finished)
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("runstore: list %q: %w", session, err)
	}

	return out, nil
}

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func args(r Run) []any {
	return []any{r.Session, r.ProbeIndex, r.Dimension, r.Seed, r.Bias,
		r.Epochs, r.Converged, r.Probe, r.Recovered, r.MatchIndex, r.Inverted,
		r.StartedAt.UnixNano(), r.FinishedAt.UnixNano()}
}
