// Package repositories holds the MySQL data access layer.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

type snapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new snapshot revision repository
func NewSnapshotRepository(db *sql.DB) *snapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Save persists a serialized snapshot as a new revision and returns its metadata
func (r *snapshotRepository) Save(ctx context.Context, payload []byte) (models.SnapshotRevision, error) {
	query := `
		INSERT INTO snapshot_revisions (payload, size_bytes)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, payload, len(payload))
	if err != nil {
		return models.SnapshotRevision{}, fmt.Errorf("failed to save snapshot revision: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.SnapshotRevision{}, fmt.Errorf("failed to read revision id: %w", err)
	}

	var rev models.SnapshotRevision
	err = r.db.QueryRowContext(ctx,
		`SELECT id, created_at, size_bytes FROM snapshot_revisions WHERE id = ?`, id).
		Scan(&rev.Revision, &rev.CreatedAt, &rev.SizeBytes)
	if err != nil {
		return models.SnapshotRevision{}, fmt.Errorf("failed to read saved revision: %w", err)
	}
	return rev, nil
}

// Load returns the serialized snapshot of one revision
func (r *snapshotRepository) Load(ctx context.Context, revision int) ([]byte, error) {
	query := `
		SELECT payload
		FROM snapshot_revisions
		WHERE id = ?
		LIMIT 1
	`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, revision).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot revision %d not found", revision)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot revision: %w", err)
	}
	return payload, nil
}

// List returns the metadata of all revisions, newest first
func (r *snapshotRepository) List(ctx context.Context) ([]models.SnapshotRevision, error) {
	query := `
		SELECT id, created_at, size_bytes
		FROM snapshot_revisions
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot revisions: %w", err)
	}
	defer rows.Close()

	var revisions []models.SnapshotRevision
	for rows.Next() {
		var rev models.SnapshotRevision
		if err := rows.Scan(&rev.Revision, &rev.CreatedAt, &rev.SizeBytes); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot revision: %w", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot revisions: %w", err)
	}

	return revisions, nil
}
