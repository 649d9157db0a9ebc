package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/identity"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/store"
)

// mockSnapshotRepository is a mock implementation of SnapshotRepository
type mockSnapshotRepository struct {
	saved    [][]byte
	payload  []byte
	revs     []models.SnapshotRevision
	saveErr  error
	loadErr  error
	listErr  error
}

func (m *mockSnapshotRepository) Save(ctx context.Context, payload []byte) (models.SnapshotRevision, error) {
	if m.saveErr != nil {
		return models.SnapshotRevision{}, m.saveErr
	}
	m.saved = append(m.saved, payload)
	return models.SnapshotRevision{Revision: len(m.saved), CreatedAt: time.Now(), SizeBytes: len(payload)}, nil
}

func (m *mockSnapshotRepository) Load(ctx context.Context, revision int) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.payload, nil
}

func (m *mockSnapshotRepository) List(ctx context.Context) ([]models.SnapshotRevision, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.revs, nil
}

func newSnapshotFixture(t *testing.T, repo SnapshotRepository) (*store.Store, *snapshotService) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	s := store.New(identity.NewGenerator(), logger)
	return s, NewSnapshotService(s, repo, logger)
}

func populate(t *testing.T, s *store.Store) models.Topic {
	t.Helper()
	m, err := s.AddModule(models.AddModuleRequest{Name: "Navigation"})
	require.NoError(t, err)
	lo, err := s.AddLearningObjective(models.AddLearningObjectiveRequest{
		ModuleID: m.ID, Verb: "Plot", Description: "a coastal course",
	})
	require.NoError(t, err)
	topic, err := s.AddTopic(models.AddTopicRequest{LOID: lo.ID, Title: "Charts"})
	require.NoError(t, err)
	return topic
}

func TestSnapshotService_SaveRevision(t *testing.T) {
	repo := &mockSnapshotRepository{}
	s, svc := newSnapshotFixture(t, repo)
	populate(t, s)

	rev, err := svc.SaveRevision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rev.Revision)
	assert.Equal(t, len(repo.saved[0]), rev.SizeBytes)

	// the persisted payload is the serialized store state
	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(repo.saved[0], &snap))
	assert.Len(t, snap.Modules, 1)
	assert.Len(t, snap.Topics, 1)
}

func TestSnapshotService_SaveRevisionRepositoryError(t *testing.T) {
	repo := &mockSnapshotRepository{saveErr: errors.New("connection refused")}
	_, svc := newSnapshotFixture(t, repo)

	_, err := svc.SaveRevision(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestSnapshotService_LoadRevision(t *testing.T) {
	source, sourceSvc := newSnapshotFixture(t, &mockSnapshotRepository{})
	topic := populate(t, source)

	payload, err := json.Marshal(sourceSvc.Export())
	require.NoError(t, err)

	target, targetSvc := newSnapshotFixture(t, &mockSnapshotRepository{payload: payload})
	require.NoError(t, targetSvc.LoadRevision(context.Background(), 1))

	got, err := target.Topic(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, topic, got)
}

func TestSnapshotService_LoadRevisionRejectsBadPayloads(t *testing.T) {
	t.Run("unparseable payload", func(t *testing.T) {
		_, svc := newSnapshotFixture(t, &mockSnapshotRepository{payload: []byte("not json")})
		assert.Error(t, svc.LoadRevision(context.Background(), 1))
	})

	t.Run("inconsistent snapshot", func(t *testing.T) {
		broken := models.Snapshot{
			Topics: map[string]models.Topic{
				"topic-1": {ID: "topic-1", LOID: "lo-gone", Order: 1},
			},
		}
		payload, err := json.Marshal(broken)
		require.NoError(t, err)

		s, svc := newSnapshotFixture(t, &mockSnapshotRepository{payload: payload})
		var validation *store.ValidationError
		require.ErrorAs(t, svc.LoadRevision(context.Background(), 1), &validation)
		assert.Empty(t, s.AllTopics(), "a rejected revision leaves the store untouched")
	})

	t.Run("repository error", func(t *testing.T) {
		_, svc := newSnapshotFixture(t, &mockSnapshotRepository{loadErr: errors.New("revision not found")})
		assert.ErrorContains(t, svc.LoadRevision(context.Background(), 9), "revision not found")
	})
}

func TestSnapshotService_ExportRehydrateRoundTrip(t *testing.T) {
	source, sourceSvc := newSnapshotFixture(t, &mockSnapshotRepository{})
	populate(t, source)

	snap := sourceSvc.Export()

	_, targetSvc := newSnapshotFixture(t, &mockSnapshotRepository{})
	require.NoError(t, targetSvc.Rehydrate(snap))
	assert.Equal(t, snap, targetSvc.Export())
}

func TestSnapshotService_Audit(t *testing.T) {
	s, svc := newSnapshotFixture(t, &mockSnapshotRepository{})
	populate(t, s)

	assert.Empty(t, svc.Audit())
}

func TestSnapshotService_ListRevisions(t *testing.T) {
	revs := []models.SnapshotRevision{
		{Revision: 2, SizeBytes: 2048},
		{Revision: 1, SizeBytes: 1024},
	}
	_, svc := newSnapshotFixture(t, &mockSnapshotRepository{revs: revs})

	got, err := svc.ListRevisions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, revs, got)

	_, errSvc := newSnapshotFixture(t, &mockSnapshotRepository{listErr: errors.New("timeout")})
	_, err = errSvc.ListRevisions(context.Background())
	assert.ErrorContains(t, err, "timeout")
}
