package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/store"
)

// SnapshotRepository is the interface that wraps persistence of store snapshots
type SnapshotRepository interface {
	// Save persists a serialized snapshot as a new revision and returns its metadata
	Save(ctx context.Context, payload []byte) (models.SnapshotRevision, error)
	// Load returns the serialized snapshot of one revision
	Load(ctx context.Context, revision int) ([]byte, error)
	// List returns the metadata of all revisions, newest first
	List(ctx context.Context) ([]models.SnapshotRevision, error)
}

// snapshotService exports and rehydrates the canonical store, and keeps
// persisted revisions through the repository
type snapshotService struct {
	store  *store.Store
	repo   SnapshotRepository
	logger *zap.Logger
}

// NewSnapshotService creates a new snapshot service
func NewSnapshotService(s *store.Store, repo SnapshotRepository, logger *zap.Logger) *snapshotService {
	return &snapshotService{store: s, repo: repo, logger: logger}
}

// Export returns the full store state
func (s *snapshotService) Export() models.Snapshot {
	return s.store.Snapshot()
}

// Rehydrate replaces the store state with a snapshot after validating it
func (s *snapshotService) Rehydrate(snap models.Snapshot) error {
	if err := s.store.Restore(snap); err != nil {
		s.logger.Error("failed to rehydrate store", zap.Error(err))
		return err
	}
	return nil
}

// Audit reports every dangling reference in the current store state.
// An empty result means the state is internally consistent.
func (s *snapshotService) Audit() []string {
	return store.SnapshotProblems(s.store.Snapshot())
}

// SaveRevision persists the current store state as a new revision
func (s *snapshotService) SaveRevision(ctx context.Context) (models.SnapshotRevision, error) {
	payload, err := json.Marshal(s.store.Snapshot())
	if err != nil {
		s.logger.Error("failed to serialize snapshot", zap.Error(err))
		return models.SnapshotRevision{}, err
	}

	rev, err := s.repo.Save(ctx, payload)
	if err != nil {
		s.logger.Error("failed to save snapshot revision", zap.Error(err))
		return models.SnapshotRevision{}, err
	}
	s.logger.Info("snapshot revision saved",
		zap.Int("revision", rev.Revision),
		zap.Int("size_bytes", rev.SizeBytes))
	return rev, nil
}

// LoadRevision rehydrates the store from a persisted revision
func (s *snapshotService) LoadRevision(ctx context.Context, revision int) error {
	payload, err := s.repo.Load(ctx, revision)
	if err != nil {
		s.logger.Error("failed to load snapshot revision", zap.Int("revision", revision), zap.Error(err))
		return err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.logger.Error("failed to parse snapshot revision", zap.Int("revision", revision), zap.Error(err))
		return err
	}
	if err := s.store.Restore(snap); err != nil {
		s.logger.Error("failed to rehydrate from revision", zap.Int("revision", revision), zap.Error(err))
		return err
	}
	s.logger.Info("store rehydrated from revision", zap.Int("revision", revision))
	return nil
}

// ListRevisions returns the metadata of all persisted revisions
func (s *snapshotService) ListRevisions(ctx context.Context) ([]models.SnapshotRevision, error) {
	revs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list snapshot revisions", zap.Error(err))
		return nil, err
	}
	return revs, nil
}
