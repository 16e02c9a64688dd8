// Package sqlite stores artifact bundles in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ArtifactStore implements port.ArtifactStore on SQLite.
type ArtifactStore struct {
	db *sql.DB
}

// Open creates the database at dsn if needed, applies pragmas and creates
// the artifacts table.
func Open(dsn string) (*ArtifactStore, error) {
	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS model_artifacts (
			key        TEXT PRIMARY KEY,
			blob       BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &ArtifactStore{db: db}, nil
}

// Close closes the database connection.
func (s *ArtifactStore) Close() error {
	return s.db.Close()
}

// Save upserts blob under key.
func (s *ArtifactStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO model_artifacts (key, blob, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = CURRENT_TIMESTAMP`,
		key, blob)
	if err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	return nil
}

// Load returns the blob stored under key.
func (s *ArtifactStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM model_artifacts WHERE key = ?`, key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("key %q: %w", key, port.ErrArtifactNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load artifact: %w", err)
	}
	return blob, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
