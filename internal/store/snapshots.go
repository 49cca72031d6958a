package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/codelens/internal/analyzer"
)

// Snapshot represents one persisted analysis run over a source tree.
type Snapshot struct {
	ID           int64     `json:"id"`
	RunID        string    `json:"run_id"`
	TakenAt      time.Time `json:"taken_at"`
	Root         string    `json:"root"`
	Version      string    `json:"version"`
	TotalFiles   int       `json:"total_files"`
	QualityScore float64   `json:"quality_score"`
}

// SaveSnapshot inserts a snapshot with all its per-file results in one
// transaction and returns the snapshot ID. List-valued result fields
// are stored as JSON text columns.
func (db *DB) SaveSnapshot(root, version string, qualityScore float64, results []analyzer.Result) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO snapshots (run_id, taken_at, root, version, total_files, quality_score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), time.Now().UTC().Format(time.RFC3339), root, version,
		len(results), qualityScore,
	)
	if err != nil {
		return 0, err
	}
	snapshotID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO file_analyses
		 (snapshot_id, file_path, language, summary, complexity_score,
		  documentation_quality, key_functions, dependencies, suggestions)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, r := range results {
		functions, err := json.Marshal(r.KeyFunctions)
		if err != nil {
			return 0, err
		}
		deps, err := json.Marshal(r.Dependencies)
		if err != nil {
			return 0, err
		}
		suggestions, err := json.Marshal(r.Suggestions)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.Exec(
			snapshotID, r.FilePath, r.Language, r.Summary, r.ComplexityScore,
			r.DocumentationQuality, string(functions), string(deps), string(suggestions),
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return snapshotID, nil
}

// ListSnapshots returns all snapshots, most recent first.
func (db *DB) ListSnapshots() ([]Snapshot, error) {
	rows, err := db.conn.Query(
		`SELECT id, run_id, taken_at, root, version, total_files, quality_score
		 FROM snapshots ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		var takenAt string
		if err := rows.Scan(&s.ID, &s.RunID, &takenAt, &s.Root, &s.Version,
			&s.TotalFiles, &s.QualityScore); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// GetSnapshot returns a snapshot by ID, or nil if it does not exist.
func (db *DB) GetSnapshot(id int64) (*Snapshot, error) {
	row := db.conn.QueryRow(
		`SELECT id, run_id, taken_at, root, version, total_files, quality_score
		 FROM snapshots WHERE id = ?`, id,
	)

	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &s.RunID, &takenAt, &s.Root, &s.Version,
		&s.TotalFiles, &s.QualityScore)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// LoadResults returns the per-file results stored under a snapshot, in
// insertion order.
func (db *DB) LoadResults(snapshotID int64) ([]analyzer.Result, error) {
	rows, err := db.conn.Query(
		`SELECT file_path, language, summary, complexity_score,
		        documentation_quality, key_functions, dependencies, suggestions
		 FROM file_analyses WHERE snapshot_id = ? ORDER BY id`, snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []analyzer.Result
	for rows.Next() {
		var r analyzer.Result
		var functions, deps, suggestions string
		if err := rows.Scan(&r.FilePath, &r.Language, &r.Summary, &r.ComplexityScore,
			&r.DocumentationQuality, &functions, &deps, &suggestions); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(functions), &r.KeyFunctions); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(deps), &r.Dependencies); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(suggestions), &r.Suggestions); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
