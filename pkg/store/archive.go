package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"algoviz/pkg/common"
	"algoviz/pkg/engine"
)

// Archive persists every completed run so benchmark statistics can be
// re-derived from raw results at any time. It implements engine.ResultSink.
type Archive struct {
	db *sql.DB
	mu sync.Mutex
}

func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT PRIMARY KEY,
		operation TEXT,
		algorithm TEXT,
		dataset_id TEXT,
		dataset_size INTEGER,
		variant TEXT,
		duration_ns INTEGER,
		comparisons INTEGER,
		swaps INTEGER,
		accesses INTEGER,
		nodes_visited INTEGER,
		found INTEGER,
		found_index INTEGER,
		presorted INTEGER,
		created_at INTEGER
	);`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("init results table: %w", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
	`); err != nil {
		log.Printf("Warning: Failed to set PRAGMA: %v", err)
	}

	return &Archive{db: db}, nil
}

func (a *Archive) Insert(res *engine.Result) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.db.Exec(`INSERT OR REPLACE INTO results
		(run_id, operation, algorithm, dataset_id, dataset_size, variant,
		 duration_ns, comparisons, swaps, accesses, nodes_visited,
		 found, found_index, presorted, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.RunID, res.Operation, res.Algorithm, res.DatasetID, res.DatasetSize,
		string(res.Variant), res.DurationNS, res.Comparisons, res.Swaps,
		res.Accesses, res.NodesVisited, boolToInt(res.Found), res.FoundIndex,
		boolToInt(res.Presorted), res.CreatedAt.UnixNano())
	return err
}

// List returns the most recent results, newest first. limit <= 0 means all.
func (a *Archive) List(limit int) ([]engine.Result, error) {
	q := "SELECT " + resultColumns + " FROM results ORDER BY created_at DESC"
	args := []interface{}{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	return a.query(q, args...)
}

// ByAlgorithm returns all archived results for one algorithm, oldest first.
func (a *Archive) ByAlgorithm(algorithm string) ([]engine.Result, error) {
	q := "SELECT " + resultColumns + " FROM results WHERE algorithm = ? ORDER BY created_at ASC"
	return a.query(q, algorithm)
}

const resultColumns = `run_id, operation, algorithm, dataset_id, dataset_size, variant,
	duration_ns, comparisons, swaps, accesses, nodes_visited, found, found_index,
	presorted, created_at`

func (a *Archive) query(q string, args ...interface{}) ([]engine.Result, error) {
	rows, err := a.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []engine.Result
	for rows.Next() {
		var res engine.Result
		var variant string
		var found, presorted int
		var createdAt int64
		if err := rows.Scan(&res.RunID, &res.Operation, &res.Algorithm,
			&res.DatasetID, &res.DatasetSize, &variant, &res.DurationNS,
			&res.Comparisons, &res.Swaps, &res.Accesses, &res.NodesVisited,
			&found, &res.FoundIndex, &presorted, &createdAt); err != nil {
			return nil, err
		}
		res.Variant = common.Variant(variant)
		res.DurationMS = float64(res.DurationNS) / 1e6
		res.Found = found != 0
		res.Presorted = presorted != 0
		res.CreatedAt = time.Unix(0, createdAt)
		results = append(results, res)
	}
	return results, rows.Err()
}

func (a *Archive) Count() (int, error) {
	var n int
	err := a.db.QueryRow("SELECT COUNT(*) FROM results").Scan(&n)
	return n, err
}

func (a *Archive) Truncate() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err := a.db.Exec("DELETE FROM results")
	return err
}

func (a *Archive) Close() {
	a.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
