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

// CurriculumService is the interface that wraps the hierarchy, criteria
// and view operations of the authoring core
type CurriculumService interface {
	CreateModule(req models.AddModuleRequest) (models.Module, error)
	UpdateModule(id string, req models.UpdateModuleRequest) (models.Module, error)
	MoveModule(id string, newOrder int) error
	DeleteModule(id string) error

	CreateObjective(req models.AddLearningObjectiveRequest) (models.LearningObjective, error)
	UpdateObjective(id string, req models.UpdateLearningObjectiveRequest) (models.LearningObjective, error)
	MoveObjective(id string, req models.MoveRequest) error
	DeleteObjective(id string) error

	CreateTopic(req models.AddTopicRequest) (models.Topic, error)
	UpdateTopic(id string, req models.UpdateTopicRequest) (models.Topic, error)
	MoveTopic(id string, req models.MoveRequest) error
	RelinkTopic(id string, req models.RelinkRequest) error
	DeleteTopic(id string) error

	CreateSubtopic(req models.AddSubtopicRequest) (models.Subtopic, error)
	UpdateSubtopic(id string, req models.UpdateSubtopicRequest) (models.Subtopic, error)
	MoveSubtopic(id string, req models.MoveRequest) error
	DeleteSubtopic(id string) error

	CreateCriteria(req models.AddPerformanceCriteriaRequest) (models.PerformanceCriteria, error)
	UpdateCriteria(id string, req models.UpdatePerformanceCriteriaRequest) (models.PerformanceCriteria, error)
	DeleteCriteria(id string) error
	Link(req models.LinkRequest) error
	Unlink(req models.LinkRequest) error
	CriteriaLinks(pcID string) ([]models.PCLink, error)
	LinkedCriteria(targetID string) []models.PCLink

	Tree() views.Tree
	Columns() views.Columns
	Legacy() views.LegacyDocument
	TopicSerial(id string) (string, error)
	SubtopicSerial(id string) (string, error)
}

// CurriculumHandler handles curriculum hierarchy HTTP requests
type CurriculumHandler struct {
	handlers.BaseHandler
	service CurriculumService
}

// NewCurriculumHandler creates a new curriculum handler
func NewCurriculumHandler(service CurriculumService, logger *zap.Logger) *CurriculumHandler {
	return &CurriculumHandler{
		BaseHandler: handlers.BaseHandler{Logger: logger},
		service:     service,
	}
}

// RegisterRoutes registers all curriculum handler routes
func (h *CurriculumHandler) RegisterRoutes(r chi.Router) {
	r.Route("/modules", func(r chi.Router) {
		r.Post("/", h.CreateModule)
		r.Patch("/{id}", h.UpdateModule)
		r.Post("/{id}/move", h.MoveModule)
		r.Delete("/{id}", h.DeleteModule)
	})
	r.Route("/objectives", func(r chi.Router) {
		r.Post("/", h.CreateObjective)
		r.Patch("/{id}", h.UpdateObjective)
		r.Post("/{id}/move", h.MoveObjective)
		r.Delete("/{id}", h.DeleteObjective)
	})
	r.Route("/topics", func(r chi.Router) {
		r.Post("/", h.CreateTopic)
		r.Patch("/{id}", h.UpdateTopic)
		r.Post("/{id}/move", h.MoveTopic)
		r.Post("/{id}/relink", h.RelinkTopic)
		r.Delete("/{id}", h.DeleteTopic)
		r.Get("/{id}/serial", h.TopicSerial)
	})
	r.Route("/subtopics", func(r chi.Router) {
		r.Post("/", h.CreateSubtopic)
		r.Patch("/{id}", h.UpdateSubtopic)
		r.Post("/{id}/move", h.MoveSubtopic)
		r.Delete("/{id}", h.DeleteSubtopic)
		r.Get("/{id}/serial", h.SubtopicSerial)
	})
	r.Route("/criteria", func(r chi.Router) {
		r.Post("/", h.CreateCriteria)
		r.Patch("/{id}", h.UpdateCriteria)
		r.Delete("/{id}", h.DeleteCriteria)
		r.Get("/{id}/links", h.CriteriaLinks)
	})
	r.Route("/links", func(r chi.Router) {
		r.Post("/", h.Link)
		r.Delete("/", h.Unlink)
		r.Get("/to/{id}", h.LinkedCriteria)
	})
	r.Route("/views", func(r chi.Router) {
		r.Get("/tree", h.Tree)
		r.Get("/columns", h.Columns)
		r.Get("/legacy", h.Legacy)
	})
}

// CreateModule handles POST /api/v1/modules
// @Summary Create a module
// @Tags curriculum
// @Accept json
// @Produce json
// @Param request body models.AddModuleRequest true "Module to create"
// @Success 201 {object} models.Module
// @Failure 400 {object} map[string]string "Bad request"
// @Router /modules [post]
func (h *CurriculumHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	var req models.AddModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.service.CreateModule(req)
	if err != nil {
		h.Logger.Error("failed to create module", zap.Error(err))
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, m)
}

// UpdateModule handles PATCH /api/v1/modules/{id}
// @Summary Update a module
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param request body models.UpdateModuleRequest true "Fields to update"
// @Success 200 {object} models.Module
// @Failure 404 {object} map[string]string "Module not found"
// @Failure 422 {object} map[string]string "Immutable field in request"
// @Router /modules/{id} [patch]
func (h *CurriculumHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateModuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.service.UpdateModule(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, m)
}

// MoveModule handles POST /api/v1/modules/{id}/move
// @Summary Move a module to a new position
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param request body models.MoveRequest true "Target position"
// @Success 204 "Moved"
// @Failure 404 {object} map[string]string "Module not found"
// @Router /modules/{id}/move [post]
func (h *CurriculumHandler) MoveModule(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.NewOrder == nil {
		h.RespondError(w, http.StatusBadRequest, "newOrder is required")
		return
	}

	if err := h.service.MoveModule(chi.URLParam(r, "id"), *req.NewOrder); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteModule handles DELETE /api/v1/modules/{id}
// @Summary Delete a module and everything under it
// @Tags curriculum
// @Produce json
// @Param id path string true "Module ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Module not found"
// @Router /modules/{id} [delete]
func (h *CurriculumHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteModule(chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateObjective handles POST /api/v1/objectives
// @Summary Create a learning objective
// @Tags curriculum
// @Accept json
// @Produce json
// @Param request body models.AddLearningObjectiveRequest true "Objective to create"
// @Success 201 {object} models.LearningObjective
// @Failure 422 {object} map[string]string "Module does not exist"
// @Router /objectives [post]
func (h *CurriculumHandler) CreateObjective(w http.ResponseWriter, r *http.Request) {
	var req models.AddLearningObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lo, err := h.service.CreateObjective(req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, lo)
}

// UpdateObjective handles PATCH /api/v1/objectives/{id}
// @Summary Update a learning objective
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Objective ID"
// @Param request body models.UpdateLearningObjectiveRequest true "Fields to update"
// @Success 200 {object} models.LearningObjective
// @Failure 422 {object} map[string]string "Immutable field in request"
// @Router /objectives/{id} [patch]
func (h *CurriculumHandler) UpdateObjective(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLearningObjectiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lo, err := h.service.UpdateObjective(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, lo)
}

// MoveObjective handles POST /api/v1/objectives/{id}/move
// @Summary Move a learning objective into another module
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Objective ID"
// @Param request body models.MoveRequest true "Destination module and position"
// @Success 204 "Moved"
// @Failure 422 {object} map[string]string "Destination module does not exist"
// @Router /objectives/{id}/move [post]
func (h *CurriculumHandler) MoveObjective(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.MoveObjective(chi.URLParam(r, "id"), req); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteObjective handles DELETE /api/v1/objectives/{id}
// @Summary Delete a learning objective; its topics move to the unlinked group
// @Tags curriculum
// @Produce json
// @Param id path string true "Objective ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Objective not found"
// @Router /objectives/{id} [delete]
func (h *CurriculumHandler) DeleteObjective(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteObjective(chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateTopic handles POST /api/v1/topics
// @Summary Create a topic, linked to an objective or unlinked
// @Tags curriculum
// @Accept json
// @Produce json
// @Param request body models.AddTopicRequest true "Topic to create"
// @Success 201 {object} models.Topic
// @Failure 422 {object} map[string]string "Objective does not exist"
// @Router /topics [post]
func (h *CurriculumHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req models.AddTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topic, err := h.service.CreateTopic(req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, topic)
}

// UpdateTopic handles PATCH /api/v1/topics/{id}
// @Summary Update a topic
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param request body models.UpdateTopicRequest true "Fields to update"
// @Success 200 {object} models.Topic
// @Failure 422 {object} map[string]string "Immutable field in request"
// @Router /topics/{id} [patch]
func (h *CurriculumHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topic, err := h.service.UpdateTopic(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, topic)
}

// MoveTopic handles POST /api/v1/topics/{id}/move
// @Summary Move a topic into another objective's group at a position
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param request body models.MoveRequest true "Destination group and position"
// @Success 204 "Moved"
// @Failure 422 {object} map[string]string "Destination objective does not exist"
// @Router /topics/{id}/move [post]
func (h *CurriculumHandler) MoveTopic(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.MoveTopic(chi.URLParam(r, "id"), req); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RelinkTopic handles POST /api/v1/topics/{id}/relink
// @Summary Relink a topic to an objective, or detach it with an empty loId
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param request body models.RelinkRequest true "Target objective"
// @Success 204 "Relinked"
// @Failure 422 {object} map[string]string "Objective does not exist"
// @Router /topics/{id}/relink [post]
func (h *CurriculumHandler) RelinkTopic(w http.ResponseWriter, r *http.Request) {
	var req models.RelinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.RelinkTopic(chi.URLParam(r, "id"), req); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTopic handles DELETE /api/v1/topics/{id}
// @Summary Delete a topic and its subtopics
// @Tags curriculum
// @Produce json
// @Param id path string true "Topic ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Topic not found"
// @Router /topics/{id} [delete]
func (h *CurriculumHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTopic(chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TopicSerial handles GET /api/v1/topics/{id}/serial
// @Summary Get the derived display serial of a topic
// @Tags curriculum
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {object} map[string]string "Serial, e.g. {\"serial\": \"2.1\"}"
// @Failure 404 {object} map[string]string "Topic not found"
// @Router /topics/{id}/serial [get]
func (h *CurriculumHandler) TopicSerial(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.TopicSerial(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]string{"serial": s})
}

// CreateSubtopic handles POST /api/v1/subtopics
// @Summary Create a subtopic under a topic
// @Tags curriculum
// @Accept json
// @Produce json
// @Param request body models.AddSubtopicRequest true "Subtopic to create"
// @Success 201 {object} models.Subtopic
// @Failure 422 {object} map[string]string "Topic does not exist"
// @Router /subtopics [post]
func (h *CurriculumHandler) CreateSubtopic(w http.ResponseWriter, r *http.Request) {
	var req models.AddSubtopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.service.CreateSubtopic(req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, st)
}

// UpdateSubtopic handles PATCH /api/v1/subtopics/{id}
// @Summary Update a subtopic
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Subtopic ID"
// @Param request body models.UpdateSubtopicRequest true "Fields to update"
// @Success 200 {object} models.Subtopic
// @Failure 422 {object} map[string]string "Immutable field in request"
// @Router /subtopics/{id} [patch]
func (h *CurriculumHandler) UpdateSubtopic(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSubtopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := h.service.UpdateSubtopic(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, st)
}

// MoveSubtopic handles POST /api/v1/subtopics/{id}/move
// @Summary Move a subtopic under another topic
// @Tags curriculum
// @Accept json
// @Produce json
// @Param id path string true "Subtopic ID"
// @Param request body models.MoveRequest true "Destination topic and position"
// @Success 204 "Moved"
// @Failure 422 {object} map[string]string "Destination topic does not exist"
// @Router /subtopics/{id}/move [post]
func (h *CurriculumHandler) MoveSubtopic(w http.ResponseWriter, r *http.Request) {
	var req models.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.MoveSubtopic(chi.URLParam(r, "id"), req); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSubtopic handles DELETE /api/v1/subtopics/{id}
// @Summary Delete a subtopic
// @Tags curriculum
// @Produce json
// @Param id path string true "Subtopic ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Subtopic not found"
// @Router /subtopics/{id} [delete]
func (h *CurriculumHandler) DeleteSubtopic(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSubtopic(chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubtopicSerial handles GET /api/v1/subtopics/{id}/serial
// @Summary Get the derived display serial of a subtopic
// @Tags curriculum
// @Produce json
// @Param id path string true "Subtopic ID"
// @Success 200 {object} map[string]string "Serial, e.g. {\"serial\": \"2.1.3\"}"
// @Failure 404 {object} map[string]string "Subtopic not found"
// @Router /subtopics/{id}/serial [get]
func (h *CurriculumHandler) SubtopicSerial(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.SubtopicSerial(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]string{"serial": s})
}

// CreateCriteria handles POST /api/v1/criteria
// @Summary Create a performance criteria
// @Tags criteria
// @Accept json
// @Produce json
// @Param request body models.AddPerformanceCriteriaRequest true "Criteria to create"
// @Success 201 {object} models.PerformanceCriteria
// @Failure 400 {object} map[string]string "Bad request"
// @Router /criteria [post]
func (h *CurriculumHandler) CreateCriteria(w http.ResponseWriter, r *http.Request) {
	var req models.AddPerformanceCriteriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pc, err := h.service.CreateCriteria(req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusCreated, pc)
}

// UpdateCriteria handles PATCH /api/v1/criteria/{id}
// @Summary Update a performance criteria
// @Tags criteria
// @Accept json
// @Produce json
// @Param id path string true "Criteria ID"
// @Param request body models.UpdatePerformanceCriteriaRequest true "Fields to update"
// @Success 200 {object} models.PerformanceCriteria
// @Failure 404 {object} map[string]string "Criteria not found"
// @Router /criteria/{id} [patch]
func (h *CurriculumHandler) UpdateCriteria(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePerformanceCriteriaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pc, err := h.service.UpdateCriteria(chi.URLParam(r, "id"), req)
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, pc)
}

// DeleteCriteria handles DELETE /api/v1/criteria/{id}
// @Summary Delete a performance criteria and its links
// @Tags criteria
// @Produce json
// @Param id path string true "Criteria ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Criteria not found"
// @Router /criteria/{id} [delete]
func (h *CurriculumHandler) DeleteCriteria(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCriteria(chi.URLParam(r, "id")); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CriteriaLinks handles GET /api/v1/criteria/{id}/links
// @Summary List the links of a performance criteria
// @Tags criteria
// @Produce json
// @Param id path string true "Criteria ID"
// @Success 200 {array} models.PCLink
// @Failure 404 {object} map[string]string "Criteria not found"
// @Router /criteria/{id}/links [get]
func (h *CurriculumHandler) CriteriaLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.CriteriaLinks(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	if links == nil {
		links = []models.PCLink{}
	}
	h.RespondJSON(w, http.StatusOK, links)
}

// LinkedCriteria handles GET /api/v1/links/to/{id}
// @Summary List the criteria links pointing at an entity
// @Tags criteria
// @Produce json
// @Param id path string true "Target entity ID"
// @Success 200 {array} models.PCLink
// @Router /links/to/{id} [get]
func (h *CurriculumHandler) LinkedCriteria(w http.ResponseWriter, r *http.Request) {
	links := h.service.LinkedCriteria(chi.URLParam(r, "id"))
	if links == nil {
		links = []models.PCLink{}
	}
	h.RespondJSON(w, http.StatusOK, links)
}

// Link handles POST /api/v1/links
// @Summary Link a performance criteria to an objective, topic, subtopic or lesson
// @Tags criteria
// @Accept json
// @Produce json
// @Param request body models.LinkRequest true "Link to create"
// @Success 204 "Linked"
// @Failure 409 {object} map[string]string "Link already exists"
// @Router /links [post]
func (h *CurriculumHandler) Link(w http.ResponseWriter, r *http.Request) {
	var req models.LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Link(req); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Unlink handles DELETE /api/v1/links
// @Summary Remove a performance criteria link; removing a missing link succeeds
// @Tags criteria
// @Accept json
// @Produce json
// @Param request body models.LinkRequest true "Link to remove"
// @Success 204 "Unlinked"
// @Router /links [delete]
func (h *CurriculumHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	var req models.LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Unlink(req); err != nil {
		h.RespondError(w, statusOf(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Tree handles GET /api/v1/views/tree
// @Summary Get the outline tree view
// @Tags views
// @Produce json
// @Success 200 {object} views.Tree
// @Router /views/tree [get]
func (h *CurriculumHandler) Tree(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Tree())
}

// Columns handles GET /api/v1/views/columns
// @Summary Get the parallel editing columns view
// @Tags views
// @Produce json
// @Success 200 {object} views.Columns
// @Router /views/columns [get]
func (h *CurriculumHandler) Columns(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Columns())
}

// Legacy handles GET /api/v1/views/legacy
// @Summary Get the legacy flat document for older clients
// @Tags views
// @Produce json
// @Success 200 {object} views.LegacyDocument
// @Router /views/legacy [get]
func (h *CurriculumHandler) Legacy(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Legacy())
}
