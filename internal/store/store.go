// Package store holds the canonical curriculum graph: modules, learning
// objectives, topics, subtopics, lessons, slides and performance criteria,
// plus the links between criteria and content. It is the single writer for
// all of them; every derived shape (trees, columns, serials, timetables) is
// recomputed from this store and never written back.
package store

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/identity"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

// Store is the in-memory canonical entity store. All mutations validate
// first and mutate only on success, so a failed call leaves the store
// untouched. Sibling orders within a group are kept contiguous 1..N at
// all times.
type Store struct {
	mu     sync.Mutex
	ids    *identity.Generator
	logger *zap.Logger

	modules   map[string]*models.Module
	los       map[string]*models.LearningObjective
	topics    map[string]*models.Topic
	subtopics map[string]*models.Subtopic
	lessons   map[string]*models.Lesson
	slides    map[string]*models.Slide
	pcs       map[string]*models.PerformanceCriteria
	links     []models.PCLink
}

// New creates an empty store
func New(ids *identity.Generator, logger *zap.Logger) *Store {
	return &Store{
		ids:       ids,
		logger:    logger,
		modules:   make(map[string]*models.Module),
		los:       make(map[string]*models.LearningObjective),
		topics:    make(map[string]*models.Topic),
		subtopics: make(map[string]*models.Subtopic),
		lessons:   make(map[string]*models.Lesson),
		slides:    make(map[string]*models.Slide),
		pcs:       make(map[string]*models.PerformanceCriteria),
	}
}

// Modules returns all modules ordered by their sibling order
func (s *Store) Modules() []models.Module {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Module, 0, len(s.modules))
	for _, m := range s.modules {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Module returns a single module by id
func (s *Store) Module(id string) (models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.modules[id]
	if !ok {
		return models.Module{}, &NotFoundError{Kind: "module", ID: id}
	}
	return *m, nil
}

// LearningObjectives returns the objectives of one module ordered by sibling order
func (s *Store) LearningObjectives(moduleID string) []models.LearningObjective {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.losOfLocked(moduleID)
}

// AllLearningObjectives returns every learning objective, grouped by module
// order and then sibling order
func (s *Store) AllLearningObjectives() []models.LearningObjective {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LearningObjective, 0, len(s.los))
	for _, lo := range s.los {
		out = append(out, *lo)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ModuleID != out[j].ModuleID {
			return s.moduleOrderLocked(out[i].ModuleID) < s.moduleOrderLocked(out[j].ModuleID)
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// LearningObjective returns a single learning objective by id
func (s *Store) LearningObjective(id string) (models.LearningObjective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lo, ok := s.los[id]
	if !ok {
		return models.LearningObjective{}, &NotFoundError{Kind: "learning objective", ID: id}
	}
	return *lo, nil
}

// Topics returns the topics of one group ordered by sibling order. An
// empty loID selects the unlinked group.
func (s *Store) Topics(loID string) []models.Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topicsOfLocked(loID)
}

// AllTopics returns every topic, linked groups first in objective order,
// then the unlinked group
func (s *Store) AllTopics() []models.Topic {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Topic, 0, len(s.topics))
	for _, t := range s.topics {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LOID != out[j].LOID {
			// unlinked sorts last
			if out[i].LOID == "" {
				return false
			}
			if out[j].LOID == "" {
				return true
			}
			return out[i].LOID < out[j].LOID
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// Topic returns a single topic by id
func (s *Store) Topic(id string) (models.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.topics[id]
	if !ok {
		return models.Topic{}, &NotFoundError{Kind: "topic", ID: id}
	}
	return *t, nil
}

// Subtopics returns the subtopics of one topic ordered by sibling order
func (s *Store) Subtopics(topicID string) []models.Subtopic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtopicsOfLocked(topicID)
}

// AllSubtopics returns every subtopic grouped by topic
func (s *Store) AllSubtopics() []models.Subtopic {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Subtopic, 0, len(s.subtopics))
	for _, st := range s.subtopics {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TopicID != out[j].TopicID {
			return out[i].TopicID < out[j].TopicID
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// Subtopic returns a single subtopic by id
func (s *Store) Subtopic(id string) (models.Subtopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.subtopics[id]
	if !ok {
		return models.Subtopic{}, &NotFoundError{Kind: "subtopic", ID: id}
	}
	return *st, nil
}

// Lessons returns every lesson, scheduled and unscheduled
func (s *Store) Lessons() []models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Lesson, 0, len(s.lessons))
	for _, l := range s.lessons {
		out = append(out, copyLesson(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lesson returns a single lesson by id
func (s *Store) Lesson(id string) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lessons[id]
	if !ok {
		return models.Lesson{}, &NotFoundError{Kind: "lesson", ID: id}
	}
	return copyLesson(l), nil
}

// Slides returns the deck of one lesson ordered by slide order
func (s *Store) Slides(lessonID string) []models.Slide {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slidesOfLocked(lessonID)
}

// Slide returns a single slide by id
func (s *Store) Slide(id string) (models.Slide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slides[id]
	if !ok {
		return models.Slide{}, &NotFoundError{Kind: "slide", ID: id}
	}
	return *sl, nil
}

// PerformanceCriteria returns every performance criteria
func (s *Store) PerformanceCriteria() []models.PerformanceCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.PerformanceCriteria, 0, len(s.pcs))
	for _, pc := range s.pcs {
		out = append(out, *pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// locked helpers; callers hold s.mu

func (s *Store) losOfLocked(moduleID string) []models.LearningObjective {
	var out []models.LearningObjective
	for _, lo := range s.los {
		if lo.ModuleID == moduleID {
			out = append(out, *lo)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *Store) topicsOfLocked(loID string) []models.Topic {
	var out []models.Topic
	for _, t := range s.topics {
		if t.LOID == loID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *Store) subtopicsOfLocked(topicID string) []models.Subtopic {
	var out []models.Subtopic
	for _, st := range s.subtopics {
		if st.TopicID == topicID {
			out = append(out, *st)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *Store) slidesOfLocked(lessonID string) []models.Slide {
	var out []models.Slide
	for _, sl := range s.slides {
		if sl.LessonID == lessonID {
			out = append(out, *sl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *Store) moduleOrderLocked(moduleID string) int {
	if m, ok := s.modules[moduleID]; ok {
		return m.Order
	}
	return 0
}

func copyLesson(l *models.Lesson) models.Lesson {
	out := *l
	out.Topics = append([]string(nil), l.Topics...)
	out.LearningObjectives = append([]string(nil), l.LearningObjectives...)
	out.PerformanceCriteria = append([]string(nil), l.PerformanceCriteria...)
	return out
}
