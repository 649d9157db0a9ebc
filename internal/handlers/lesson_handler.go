package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/views"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/libs/handlers"
)

// LessonService is the interface that wraps lesson content and slide deck operations
type LessonService interface {
	CreateLesson(req models.AddLessonRequest) (models.Lesson, error)
	UpdateLesson(id string, req models.UpdateLessonRequest) (models.Lesson, error)
	DuplicateLesson(id string) (models.Lesson, error)
	DeleteLesson(id string) error
	Lesson(id string) (models.Lesson, error)
	Library() []views.LessonItem

	CreateSlide(req models.AddSlideRequest) (models.Slide, error)
	UpdateSlide(id string, req models.UpdateSlideRequest) (models.Slide, error)
	UpdateSlideBlock(id string, req models.UpdateSlideBlockRequest) (models.Slide, error)
	MoveSlide(id string, newOrder int) error
	DeleteSlide(id string) error
	Slides(lessonID string) ([]models.Slide, error)
}

// LessonHandler handles lesson content and slide deck HTTP requests
type LessonHandler struct {
	handlers.BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(service LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Post("/", h.CreateLesson)
		r.Get("/{id}", h.GetLesson)
		r.Patch("/{id}", h.UpdateLesson)
		r.Delete("/{id}", h.DeleteLesson)
		r.Post("/{id}/duplicate", h.DuplicateLesson)
		r.Get("/{id}/slides", h.Slides)
	})
	r.Route("/slides", func(r chi.Router) {
		r.Post("/", h.CreateSlide)
		r.Patch("/{id}", h.UpdateSlide)
		r.Put("/{id}/blocks", h.UpdateSlideBlock)
		r.Post("/{id}/move", h.MoveSlide)
		r.Delete("/{id}", h.DeleteSlide)
	})
	r.Get("/library", h.Library)
}

// CreateLesson handles POST /api/v1/lessons
// @Summary Create an unscheduled lesson in the library
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body models.AddLessonRequest true "Lesson to create"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} map[string]string "Bad request"
// @Router /lessons [post]
func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req models.AddLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.CreateLesson(req)
	if err != nil {
		h.Logger.Error("failed to create lesson", zap.Error(err))
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, lesson)
}

// GetLesson handles GET /api/v1/lessons/{id}
// @Summary Get one lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /lessons/{id} [get]
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.Lesson(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, lesson)
}

// UpdateLesson handles PATCH /api/v1/lessons/{id}
// @Summary Update lesson content; scheduling fields go through the schedule API
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param request body models.UpdateLessonRequest true "Fields to update"
// @Success 200 {object} models.Lesson
// @Failure 422 {object} map[string]string "Immutable field in request"
// @Router /lessons/{id} [patch]
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.UpdateLesson(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, lesson)
}

// DeleteLesson handles DELETE /api/v1/lessons/{id}
// @Summary Delete a lesson and its slide deck
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /lessons/{id} [delete]
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLesson(chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DuplicateLesson handles POST /api/v1/lessons/{id}/duplicate
// @Summary Copy a lesson into the library, without its slot or deck
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 201 {object} models.Lesson
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /lessons/{id}/duplicate [post]
func (h *LessonHandler) DuplicateLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.DuplicateLesson(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, lesson)
}

// Slides handles GET /api/v1/lessons/{id}/slides
// @Summary Get the slide deck of a lesson in order
// @Tags slides
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {array} models.Slide
// @Failure 404 {object} map[string]string "Lesson not found"
// @Router /lessons/{id}/slides [get]
func (h *LessonHandler) Slides(w http.ResponseWriter, r *http.Request) {
	deck, err := h.service.Slides(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	if deck == nil {
		deck = []models.Slide{}
	}
	h.RespondJSON(w, http.StatusOK, deck)
}

// CreateSlide handles POST /api/v1/slides
// @Summary Append a slide to a lesson's deck
// @Tags slides
// @Accept json
// @Produce json
// @Param request body models.AddSlideRequest true "Slide to create"
// @Success 201 {object} models.Slide
// @Failure 422 {object} map[string]string "Lesson does not exist"
// @Router /slides [post]
func (h *LessonHandler) CreateSlide(w http.ResponseWriter, r *http.Request) {
	var req models.AddSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	slide, err := h.service.CreateSlide(req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, slide)
}

// UpdateSlide handles PATCH /api/v1/slides/{id}
// @Summary Update slide-level fields
// @Tags slides
// @Accept json
// @Produce json
// @Param id path string true "Slide ID"
// @Param request body models.UpdateSlideRequest true "Fields to update"
// @Success 200 {object} models.Slide
// @Failure 404 {object} map[string]string "Slide not found"
// @Router /slides/{id} [patch]
func (h *LessonHandler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	slide, err := h.service.UpdateSlide(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, slide)
}

// UpdateSlideBlock handles PUT /api/v1/slides/{id}/blocks
// @Summary Write one content block slot on a slide
// @Tags slides
// @Accept json
// @Produce json
// @Param id path string true "Slide ID"
// @Param request body models.UpdateSlideBlockRequest true "Block index and content"
// @Success 200 {object} models.Slide
// @Failure 400 {object} map[string]string "Block index out of range"
// @Router /slides/{id}/blocks [put]
func (h *LessonHandler) UpdateSlideBlock(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSlideBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	slide, err := h.service.UpdateSlideBlock(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, slide)
}

// MoveSlide handles POST /api/v1/slides/{id}/move
// @Summary Move a slide within its deck
// @Tags slides
// @Accept json
// @Produce json
// @Param id path string true "Slide ID"
// @Param request body models.MoveRequest true "Target position"
// @Success 204 "Moved"
// @Failure 404 {object} map[string]string "Slide not found"
// @Router /slides/{id}/move [post]
func (h *LessonHandler) MoveSlide(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NewOrder == nil {
		h.RespondError(w, http.StatusBadRequest, "newOrder is required")
		return
	}

	if err := h.service.MoveSlide(chi.URLParam(r, "id"), *req.NewOrder); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSlide handles DELETE /api/v1/slides/{id}
// @Summary Delete a slide
// @Tags slides
// @Produce json
// @Param id path string true "Slide ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Slide not found"
// @Router /slides/{id} [delete]
func (h *LessonHandler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSlide(chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Library handles GET /api/v1/library
// @Summary Get the unscheduled lesson library
// @Tags lessons
// @Produce json
// @Success 200 {array} views.LessonItem
// @Router /library [get]
func (h *LessonHandler) Library(w http.ResponseWriter, r *http.Request) {
	library := h.service.Library()
	if library == nil {
		library = []views.LessonItem{}
	}
	h.RespondJSON(w, http.StatusOK, library)
}
