package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/schedule"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/services"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/libs/handlers"
)

// ScheduleService is the interface that wraps weekly grid operations
type ScheduleService interface {
	// Place creates a lesson and auto-places it in the first free slot of a week
	Place(req models.PlaceLessonRequest) (services.PlacementResult, error)
	// PlaceExisting auto-places a library lesson in a week
	PlaceExisting(id string, week int) (services.PlacementResult, error)
	// Reposition moves a scheduled lesson to an explicit slot
	Reposition(id string, req models.RepositionRequest) (models.Lesson, error)
	// Resize changes a lesson's length from its trailing or leading edge
	Resize(id string, req models.ResizeRequest) (models.Lesson, error)
	// Unschedule lifts a lesson off the grid into the library
	Unschedule(id string) (models.Lesson, error)
	// Week returns the lessons of one week grouped by day
	Week(week int) ([]schedule.DayPlan, error)
}

// ScheduleHandler handles weekly grid HTTP requests
type ScheduleHandler struct {
	handlers.BaseHandler
	service ScheduleService
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(service ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all schedule handler routes
func (h *ScheduleHandler) RegisterRoutes(r chi.Router) {
	r.Route("/schedule", func(r chi.Router) {
		r.Post("/place", h.Place)
		r.Post("/lessons/{id}/place", h.PlaceExisting)
		r.Post("/lessons/{id}/reposition", h.Reposition)
		r.Post("/lessons/{id}/resize", h.Resize)
		r.Post("/lessons/{id}/unschedule", h.Unschedule)
		r.Get("/weeks/{week}", h.Week)
	})
}

// Place handles POST /api/v1/schedule/place
// @Summary Create a lesson and auto-place it in the first free slot of a week
// @Description Days are scanned in order; a partially free day takes a shrunk lesson. When the week is full the lesson stays in the library and "placed" is false.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body models.PlaceLessonRequest true "Lesson and target week"
// @Success 201 {object} services.PlacementResult
// @Failure 400 {object} map[string]string "Bad request"
// @Router /schedule/place [post]
func (h *ScheduleHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req models.PlaceLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Place(req)
	if err != nil {
		h.Logger.Error("failed to place lesson", zap.Error(err))
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, res)
}

// PlaceExisting handles POST /api/v1/schedule/lessons/{id}/place
// @Summary Auto-place a library lesson in a week
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body models.PlaceLessonRequest true "Target week"
// @Success 200 {object} services.PlacementResult
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /schedule/lessons/{id}/place [post]
func (h *ScheduleHandler) PlaceExisting(w http.ResponseWriter, r *http.Request) {
	var req models.PlaceLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.PlaceExisting(chi.URLParam(r, "id"), req.Week)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, res)
}

// Reposition handles POST /api/v1/schedule/lessons/{id}/reposition
// @Summary Move a lesson to an explicit day and start time
// @Description The start snaps to the five minute grid and the lesson has to fit inside the teaching window. Overlapping another lesson is allowed.
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body models.RepositionRequest true "Target slot"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string "Slot outside the grid"
// @Router /schedule/lessons/{id}/reposition [post]
func (h *ScheduleHandler) Reposition(w http.ResponseWriter, r *http.Request) {
	var req models.RepositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.Reposition(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, lesson)
}

// Resize handles POST /api/v1/schedule/lessons/{id}/resize
// @Summary Resize a lesson from its trailing edge (duration) or leading edge (start time)
// @Tags schedule
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body models.ResizeRequest true "New duration or new start time"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string "Neither edge given"
// @Router /schedule/lessons/{id}/resize [post]
func (h *ScheduleHandler) Resize(w http.ResponseWriter, r *http.Request) {
	var req models.ResizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.Resize(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, lesson)
}

// Unschedule handles POST /api/v1/schedule/lessons/{id}/unschedule
// @Summary Lift a lesson off the grid into the library
// @Tags schedule
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /schedule/lessons/{id}/unschedule [post]
func (h *ScheduleHandler) Unschedule(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.Unschedule(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, lesson)
}

// Week handles GET /api/v1/schedule/weeks/{week}
// @Summary Get the lessons of one week grouped by day in start order
// @Tags schedule
// @Produce json
// @Param week path int true "Week number, 1-based"
// @Success 200 {array} schedule.DayPlan
// @Failure 400 {object} map[string]string "Invalid week"
// @Router /schedule/weeks/{week} [get]
func (h *ScheduleHandler) Week(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid week parameter")
		return
	}

	plan, err := h.service.Week(week)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, plan)
}
