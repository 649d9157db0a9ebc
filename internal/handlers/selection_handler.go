package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/libs/handlers"
)

// SelectionMachine is the interface that wraps the session selection state machine
type SelectionMachine interface {
	Current() models.Selection
	Select(nodeType models.NodeType, id string) (models.Selection, error)
	StartEditing(nodeType models.NodeType, id string) (models.Selection, error)
	Commit() error
	Cancel() error
	Clear() error
}

// SelectionHandler handles selection state HTTP requests
type SelectionHandler struct {
	handlers.BaseHandler
	machine SelectionMachine
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(machine SelectionMachine, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		machine:     machine,
	}
}

// RegisterRoutes registers all selection handler routes
func (h *SelectionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/selection", func(r chi.Router) {
		r.Get("/", h.Current)
		r.Post("/select", h.Select)
		r.Post("/edit", h.StartEditing)
		r.Post("/commit", h.Commit)
		r.Post("/cancel", h.Cancel)
		r.Delete("/", h.Clear)
	})
}

// Current handles GET /api/v1/selection
// @Summary Get the live selection
// @Tags selection
// @Produce json
// @Success 200 {object} models.Selection "Empty object when nothing is selected"
// @Router /selection [get]
func (h *SelectionHandler) Current(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.machine.Current())
}

// Select handles POST /api/v1/selection/select
// @Summary Select an entity, replacing any previous selection
// @Tags selection
// @Accept json
// @Produce json
// @Param request body models.SelectRequest true "Entity to select"
// @Success 200 {object} models.Selection
// @Failure 409 {object} map[string]string "Unknown entity type or missing id"
// @Router /selection/select [post]
func (h *SelectionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req models.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sel, err := h.machine.Select(req.Type, req.ID)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, sel)
}

// StartEditing handles POST /api/v1/selection/edit
// @Summary Open an edit on an entity
// @Tags selection
// @Accept json
// @Produce json
// @Param request body models.SelectRequest true "Entity to edit; must be the live selection when one exists"
// @Success 200 {object} models.Selection
// @Failure 409 {object} map[string]string "Entity is not the live selection"
// @Router /selection/edit [post]
func (h *SelectionHandler) StartEditing(w http.ResponseWriter, r *http.Request) {
	var req models.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sel, err := h.machine.StartEditing(req.Type, req.ID)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, sel)
}

// Commit handles POST /api/v1/selection/commit
// @Summary Close the open edit and clear the selection
// @Tags selection
// @Produce json
// @Success 204 "Committed"
// @Failure 409 {object} map[string]string "No edit is in progress"
// @Router /selection/commit [post]
func (h *SelectionHandler) Commit(w http.ResponseWriter, r *http.Request) {
	if err := h.machine.Commit(); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cancel handles POST /api/v1/selection/cancel
// @Summary Abandon the open edit and clear the selection
// @Tags selection
// @Produce json
// @Success 204 "Cancelled"
// @Failure 409 {object} map[string]string "No edit is in progress"
// @Router /selection/cancel [post]
func (h *SelectionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.machine.Cancel(); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/selection
// @Summary Drop the live selection
// @Tags selection
// @Produce json
// @Success 204 "Cleared"
// @Router /selection [delete]
func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.machine.Clear(); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
