// This file implements the runs and run_counts table accessors for the
// SQLite store: row hydration for types.Run and transactional persistence of
// a run together with its frequency table.
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/form-foundry/qarchitect/pkg/types"
)

// SaveRun persists a run and its outcome rows in one transaction and returns
// the generated run ID. The run is validated first; an inconsistent run is
// rejected before touching the database.
func (s *Store) SaveRun(run *types.Run) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", types.ErrStoreDetached
	}
	if err := run.Validate(); err != nil {
		return "", err
	}

	id := generateUUID()
	now := time.Now().UTC()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin save run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (run_id, rule, iterations, shots, seed, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, run.Rule, run.Iterations, run.Shots, run.Seed,
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, o := range run.Outcomes {
		_, err = tx.Exec(
			"INSERT INTO run_counts (run_id, bitstring, count, probability, valid) VALUES (?, ?, ?, ?, ?)",
			id, o.Bitstring, o.Count, o.Probability, boolToInt(o.Valid),
		)
		if err != nil {
			return "", fmt.Errorf("insert outcome %s: %w", o.Bitstring, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit save run: %w", err)
	}
	run.RunID = id
	return id, nil
}

// GetRun retrieves a run by ID with its full frequency table, outcome rows
// sorted by count descending as reports expect.
func (s *Store) GetRun(id string) (*types.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := s.db.QueryRow(
		"SELECT run_id, rule, iterations, shots, seed, created_at FROM runs WHERE run_id = ?",
		id,
	)
	run, err := hydrateRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrRunNotFound
		}
		return nil, fmt.Errorf("getting run %s: %w", id, err)
	}

	rows, err := s.db.Query(
		"SELECT bitstring, count, probability, valid FROM run_counts WHERE run_id = ?",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("getting outcomes for run %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o types.Outcome
		var valid int
		if err := rows.Scan(&o.Bitstring, &o.Count, &o.Probability, &valid); err != nil {
			return nil, fmt.Errorf("scanning outcome for run %s: %w", id, err)
		}
		o.Valid = valid != 0
		run.Outcomes = append(run.Outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading outcomes for run %s: %w", id, err)
	}

	sort.Slice(run.Outcomes, func(i, j int) bool {
		if run.Outcomes[i].Count != run.Outcomes[j].Count {
			return run.Outcomes[i].Count > run.Outcomes[j].Count
		}
		return run.Outcomes[i].Bitstring < run.Outcomes[j].Bitstring
	})
	return run, nil
}

// ListRuns returns all runs newest first, without outcome rows.
func (s *Store) ListRuns() ([]*types.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := s.db.Query(
		"SELECT run_id, rule, iterations, shots, seed, created_at FROM runs ORDER BY created_at DESC, run_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []*types.Run
	for rows.Next() {
		run, err := hydrateRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading runs: %w", err)
	}
	return runs, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateRun scans a runs row into a types.Run.
func hydrateRun(row rowScanner) (*types.Run, error) {
	var run types.Run
	var createdAt string
	if err := row.Scan(&run.RunID, &run.Rule, &run.Iterations, &run.Shots, &run.Seed, &createdAt); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	run.CreatedAt = ts
	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
