package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/libs/handlers"
)

// SnapshotService is the interface that wraps snapshot export, rehydration and revisions
type SnapshotService interface {
	Export() models.Snapshot
	Rehydrate(snap models.Snapshot) error
	Audit() []string
	SaveRevision(ctx context.Context) (models.SnapshotRevision, error)
	LoadRevision(ctx context.Context, revision int) error
	ListRevisions(ctx context.Context) ([]models.SnapshotRevision, error)
}

// SnapshotHandler handles snapshot HTTP requests
type SnapshotHandler struct {
	handlers.BaseHandler
	service SnapshotService
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(service SnapshotService, logger *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all snapshot handler routes
func (h *SnapshotHandler) RegisterRoutes(r chi.Router) {
	r.Route("/snapshot", func(r chi.Router) {
		r.Get("/", h.Export)
		r.Post("/", h.Rehydrate)
		r.Get("/audit", h.Audit)
		r.Route("/revisions", func(r chi.Router) {
			r.Get("/", h.ListRevisions)
			r.Post("/", h.SaveRevision)
			r.Post("/{revision}/restore", h.RestoreRevision)
		})
	})
}

// Export handles GET /api/v1/snapshot
// @Summary Export the full canonical state
// @Tags snapshot
// @Produce json
// @Success 200 {object} models.Snapshot
// @Router /snapshot [get]
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Export())
}

// Rehydrate handles POST /api/v1/snapshot
// @Summary Replace the canonical state with a snapshot
// @Description The snapshot is validated first; an inconsistent snapshot is rejected and the state stays untouched.
// @Tags snapshot
// @Accept json
// @Produce json
// @Param request body models.Snapshot true "Snapshot to load"
// @Success 204 "Rehydrated"
// @Failure 400 {object} map[string]string "Inconsistent snapshot"
// @Router /snapshot [post]
func (h *SnapshotHandler) Rehydrate(w http.ResponseWriter, r *http.Request) {
	var snap models.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Rehydrate(snap); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Audit handles GET /api/v1/snapshot/audit
// @Summary Audit the canonical state for dangling references
// @Tags snapshot
// @Produce json
// @Success 200 {array} string
// @Router /snapshot/audit [get]
func (h *SnapshotHandler) Audit(w http.ResponseWriter, r *http.Request) {
	problems := h.service.Audit()
	if problems == nil {
		problems = []string{}
	}
	h.RespondJSON(w, http.StatusOK, problems)
}

// SaveRevision handles POST /api/v1/snapshot/revisions
// @Summary Persist the current state as a new revision
// @Tags snapshot
// @Produce json
// @Success 201 {object} models.SnapshotRevision
// @Failure 500 {object} map[string]string "Persistence failure"
// @Router /snapshot/revisions [post]
func (h *SnapshotHandler) SaveRevision(w http.ResponseWriter, r *http.Request) {
	rev, err := h.service.SaveRevision(r.Context())
	if err != nil {
		h.Logger.Error("failed to save snapshot revision", zap.Error(err))
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, rev)
}

// RestoreRevision handles POST /api/v1/snapshot/revisions/{revision}/restore
// @Summary Rehydrate the state from a persisted revision
// @Tags snapshot
// @Produce json
// @Param revision path int true "Revision number"
// @Success 204 "Restored"
// @Failure 400 {object} map[string]string "Invalid revision parameter"
// @Router /snapshot/revisions/{revision}/restore [post]
func (h *SnapshotHandler) RestoreRevision(w http.ResponseWriter, r *http.Request) {
	revision, err := strconv.Atoi(chi.URLParam(r, "revision"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid revision parameter")
		return
	}

	if err := h.service.LoadRevision(r.Context(), revision); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRevisions handles GET /api/v1/snapshot/revisions
// @Summary List persisted revisions, newest first
// @Tags snapshot
// @Produce json
// @Success 200 {array} models.SnapshotRevision
// @Router /snapshot/revisions [get]
func (h *SnapshotHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	revs, err := h.service.ListRevisions(r.Context())
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	if revs == nil {
		revs = []models.SnapshotRevision{}
	}
	h.RespondJSON(w, http.StatusOK, revs)
}
