package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        TEXT NOT NULL UNIQUE,
			taken_at      TEXT NOT NULL,
			root          TEXT NOT NULL,
			version       TEXT NOT NULL,
			total_files   INTEGER NOT NULL,
			quality_score REAL NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS file_analyses (
			id                    INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id           INTEGER NOT NULL REFERENCES snapshots(id),
			file_path             TEXT NOT NULL,
			language              TEXT NOT NULL,
			summary               TEXT NOT NULL,
			complexity_score      REAL NOT NULL,
			documentation_quality REAL NOT NULL,
			key_functions         TEXT NOT NULL,
			dependencies          TEXT NOT NULL,
			suggestions           TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_file_analyses_snapshot ON file_analyses(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_file_analyses_language ON file_analyses(language)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
