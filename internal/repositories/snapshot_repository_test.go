package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSnapshotTestRepository creates a snapshot repository with a mock database
func setupSnapshotTestRepository(t *testing.T) (*snapshotRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewSnapshotRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewSnapshotRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewSnapshotRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestSnapshotRepository_Save(t *testing.T) {
	payload := []byte(`{"modules":{}}`)
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO snapshot_revisions`).
					WithArgs(payload, len(payload)).
					WillReturnResult(sqlmock.NewResult(3, 1))
				rows := sqlmock.NewRows([]string{"id", "created_at", "size_bytes"}).
					AddRow(3, createdAt, len(payload))
				mock.ExpectQuery(`SELECT id, created_at, size_bytes FROM snapshot_revisions WHERE id = \?`).
					WithArgs(int64(3)).
					WillReturnRows(rows)
			},
			expectedError: false,
		},
		{
			name: "insert fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO snapshot_revisions`).
					WithArgs(payload, len(payload)).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to save snapshot revision",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSnapshotTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			rev, err := repo.Save(context.Background(), payload)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 3, rev.Revision)
				assert.Equal(t, createdAt, rev.CreatedAt)
				assert.Equal(t, len(payload), rev.SizeBytes)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSnapshotRepository_Load(t *testing.T) {
	tests := []struct {
		name          string
		revision      int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		errorContains string
	}{
		{
			name:     "success",
			revision: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`{"modules":{}}`))
				mock.ExpectQuery(`SELECT payload.*FROM snapshot_revisions.*WHERE id = \?`).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectedError: false,
		},
		{
			name:     "revision does not exist",
			revision: 9,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT payload.*FROM snapshot_revisions.*WHERE id = \?`).
					WithArgs(9).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: true,
			errorContains: "not found",
		},
		{
			name:     "database error",
			revision: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT payload.*FROM snapshot_revisions.*WHERE id = \?`).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			errorContains: "failed to load snapshot revision",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSnapshotTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			payload, err := repo.Load(context.Background(), tt.revision)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, []byte(`{"modules":{}}`), payload)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSnapshotRepository_List(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "returns revisions newest first",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "created_at", "size_bytes"}).
					AddRow(2, createdAt, 2048).
					AddRow(1, createdAt.Add(-time.Hour), 1024)
				mock.ExpectQuery(`SELECT id, created_at, size_bytes.*FROM snapshot_revisions.*ORDER BY id DESC`).
					WillReturnRows(rows)
			},
			expectedCount: 2,
		},
		{
			name: "empty table",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "created_at", "size_bytes"})
				mock.ExpectQuery(`SELECT id, created_at, size_bytes.*FROM snapshot_revisions`).
					WillReturnRows(rows)
			},
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, created_at, size_bytes.*FROM snapshot_revisions`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupSnapshotTestRepository(t)
			defer cleanup()
			tt.setupMock(mock)

			revisions, err := repo.List(context.Background())

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, revisions, tt.expectedCount)
				if tt.expectedCount == 2 {
					assert.Equal(t, 2, revisions[0].Revision)
					assert.Equal(t, 1, revisions[1].Revision)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
