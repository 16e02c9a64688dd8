package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soumya-12345678/Nutrition-Deficiency-Prediction/internal/domain/port"
	pkgpostgres "github.com/soumya-12345678/Nutrition-Deficiency-Prediction/pkg/postgres"
)

// ArtifactRepository implements port.ArtifactStore using PostgreSQL.
type ArtifactRepository struct {
	pool *pgxpool.Pool
}

// NewArtifactRepository creates a new PostgreSQL-backed artifact store.
func NewArtifactRepository(pool *pgxpool.Pool) *ArtifactRepository {
	return &ArtifactRepository{pool: pool}
}

// Save upserts the blob under key and appends a history row, in one
// transaction.
func (r *ArtifactRepository) Save(ctx context.Context, key string, blob []byte) error {
	sum := sha256.Sum256(blob)
	checksum := hex.EncodeToString(sum[:])

	return pkgpostgres.WithTransaction(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO model_artifacts (key, blob, checksum, size_bytes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			ON CONFLICT (key) DO UPDATE SET
				blob = EXCLUDED.blob,
				checksum = EXCLUDED.checksum,
				size_bytes = EXCLUDED.size_bytes,
				updated_at = NOW()
		`, key, blob, checksum, len(blob))
		if err != nil {
			return fmt.Errorf("failed to save artifact: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO model_artifact_history (key, checksum, size_bytes) VALUES ($1, $2, $3)`,
			key, checksum, len(blob),
		)
		if err != nil {
			return fmt.Errorf("failed to record artifact history: %w", err)
		}
		return nil
	})
}

// Load returns the blob stored under key.
func (r *ArtifactRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := r.pool.QueryRow(ctx, `SELECT blob FROM model_artifacts WHERE key = $1`, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("key %q: %w", key, port.ErrArtifactNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact: %w", err)
	}
	return blob, nil
}

// HistoryEntry is one recorded save.
type HistoryEntry struct {
	Checksum  string
	SizeBytes int
}

// History returns the saves recorded for key, newest first.
func (r *ArtifactRepository) History(ctx context.Context, key string) ([]HistoryEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT checksum, size_bytes FROM model_artifact_history WHERE key = $1 ORDER BY saved_at DESC, id DESC`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifact history: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(&h.Checksum, &h.SizeBytes); err != nil {
			return nil, fmt.Errorf("failed to scan artifact history: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
