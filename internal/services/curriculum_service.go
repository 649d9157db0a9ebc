package services

import (
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/serial"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/store"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/views"
)

// curriculumService owns the authoring operations on the curriculum
// graph: hierarchy mutations, lesson content, criteria links, and the
// derived read views. It delegates the mutation contract to the store
// and never caches derived state.
type curriculumService struct {
	store   *store.Store
	deriver *views.Deriver
	logger  *zap.Logger
}

// NewCurriculumService creates a new curriculum service
func NewCurriculumService(s *store.Store, deriver *views.Deriver, logger *zap.Logger) *curriculumService {
	return &curriculumService{store: s, deriver: deriver, logger: logger}
}

// CreateModule creates a module at the end of the course
func (s *curriculumService) CreateModule(req models.AddModuleRequest) (models.Module, error) {
	m, err := s.store.AddModule(req)
	if err != nil {
		s.logger.Error("failed to create module", zap.Error(err))
		return models.Module{}, err
	}
	return m, nil
}

// UpdateModule applies a partial module update
func (s *curriculumService) UpdateModule(id string, req models.UpdateModuleRequest) (models.Module, error) {
	m, err := s.store.UpdateModule(id, req)
	if err != nil {
		s.logger.Error("failed to update module", zap.String("module_id", id), zap.Error(err))
		return models.Module{}, err
	}
	return m, nil
}

// MoveModule moves a module to a new position in the course
func (s *curriculumService) MoveModule(id string, newOrder int) error {
	if err := s.store.MoveModule(id, newOrder); err != nil {
		s.logger.Error("failed to move module", zap.String("module_id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteModule deletes a module and everything under it
func (s *curriculumService) DeleteModule(id string) error {
	if err := s.store.DeleteModule(id); err != nil {
		s.logger.Error("failed to delete module", zap.String("module_id", id), zap.Error(err))
		return err
	}
	return nil
}

// CreateObjective creates a learning objective in a module
func (s *curriculumService) CreateObjective(req models.AddLearningObjectiveRequest) (models.LearningObjective, error) {
	lo, err := s.store.AddLearningObjective(req)
	if err != nil {
		s.logger.Error("failed to create learning objective", zap.Error(err))
		return models.LearningObjective{}, err
	}
	return lo, nil
}

// UpdateObjective applies a partial learning objective update
func (s *curriculumService) UpdateObjective(id string, req models.UpdateLearningObjectiveRequest) (models.LearningObjective, error) {
	lo, err := s.store.UpdateLearningObjective(id, req)
	if err != nil {
		s.logger.Error("failed to update learning objective", zap.String("lo_id", id), zap.Error(err))
		return models.LearningObjective{}, err
	}
	return lo, nil
}

// MoveObjective re-parents a learning objective into another module
func (s *curriculumService) MoveObjective(id string, req models.MoveRequest) error {
	if err := s.store.MoveLearningObjective(id, req); err != nil {
		s.logger.Error("failed to move learning objective", zap.String("lo_id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteObjective deletes a learning objective; its topics survive unlinked
func (s *curriculumService) DeleteObjective(id string) error {
	if err := s.store.DeleteLearningObjective(id); err != nil {
		s.logger.Error("failed to delete learning objective", zap.String("lo_id", id), zap.Error(err))
		return err
	}
	return nil
}

// CreateTopic creates a topic, linked or unlinked
func (s *curriculumService) CreateTopic(req models.AddTopicRequest) (models.Topic, error) {
	topic, err := s.store.AddTopic(req)
	if err != nil {
		s.logger.Error("failed to create topic", zap.Error(err))
		return models.Topic{}, err
	}
	return topic, nil
}

// UpdateTopic applies a partial topic update
func (s *curriculumService) UpdateTopic(id string, req models.UpdateTopicRequest) (models.Topic, error) {
	topic, err := s.store.UpdateTopic(id, req)
	if err != nil {
		s.logger.Error("failed to update topic", zap.String("topic_id", id), zap.Error(err))
		return models.Topic{}, err
	}
	return topic, nil
}

// MoveTopic moves a topic into another objective's group at a position
func (s *curriculumService) MoveTopic(id string, req models.MoveRequest) error {
	if err := s.store.MoveTopic(id, req.NewParentID, req.NewOrder); err != nil {
		s.logger.Error("failed to move topic", zap.String("topic_id", id), zap.Error(err))
		return err
	}
	return nil
}

// RelinkTopic attaches a topic to an objective, or detaches it when the
// objective id is empty. The topic lands at the end of the target group.
func (s *curriculumService) RelinkTopic(id string, req models.RelinkRequest) error {
	if err := s.store.RelinkTopic(id, req.LOID); err != nil {
		s.logger.Error("failed to relink topic", zap.String("topic_id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteTopic deletes a topic and its subtopics
func (s *curriculumService) DeleteTopic(id string) error {
	if err := s.store.DeleteTopic(id); err != nil {
		s.logger.Error("failed to delete topic", zap.String("topic_id", id), zap.Error(err))
		return err
	}
	return nil
}

// CreateSubtopic creates a subtopic under a topic
func (s *curriculumService) CreateSubtopic(req models.AddSubtopicRequest) (models.Subtopic, error) {
	st, err := s.store.AddSubtopic(req)
	if err != nil {
		s.logger.Error("failed to create subtopic", zap.Error(err))
		return models.Subtopic{}, err
	}
	return st, nil
}

// UpdateSubtopic applies a partial subtopic update
func (s *curriculumService) UpdateSubtopic(id string, req models.UpdateSubtopicRequest) (models.Subtopic, error) {
	st, err := s.store.UpdateSubtopic(id, req)
	if err != nil {
		s.logger.Error("failed to update subtopic", zap.String("subtopic_id", id), zap.Error(err))
		return models.Subtopic{}, err
	}
	return st, nil
}

// MoveSubtopic moves a subtopic under another topic
func (s *curriculumService) MoveSubtopic(id string, req models.MoveRequest) error {
	if err := s.store.MoveSubtopic(id, req); err != nil {
		s.logger.Error("failed to move subtopic", zap.String("subtopic_id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteSubtopic deletes a subtopic
func (s *curriculumService) DeleteSubtopic(id string) error {
	if err := s.store.DeleteSubtopic(id); err != nil {
		s.logger.Error("failed to delete subtopic", zap.String("subtopic_id", id), zap.Error(err))
		return err
	}
	return nil
}

// CreateCriteria creates a performance criteria
func (s *curriculumService) CreateCriteria(req models.AddPerformanceCriteriaRequest) (models.PerformanceCriteria, error) {
	pc, err := s.store.AddPerformanceCriteria(req)
	if err != nil {
		s.logger.Error("failed to create performance criteria", zap.Error(err))
		return models.PerformanceCriteria{}, err
	}
	return pc, nil
}

// UpdateCriteria applies a partial performance criteria update
func (s *curriculumService) UpdateCriteria(id string, req models.UpdatePerformanceCriteriaRequest) (models.PerformanceCriteria, error) {
	pc, err := s.store.UpdatePerformanceCriteria(id, req)
	if err != nil {
		s.logger.Error("failed to update performance criteria", zap.String("pc_id", id), zap.Error(err))
		return models.PerformanceCriteria{}, err
	}
	return pc, nil
}

// DeleteCriteria deletes a performance criteria and its links
func (s *curriculumService) DeleteCriteria(id string) error {
	if err := s.store.DeletePerformanceCriteria(id); err != nil {
		s.logger.Error("failed to delete performance criteria", zap.String("pc_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Link attaches a performance criteria to a target entity
func (s *curriculumService) Link(req models.LinkRequest) error {
	if err := s.store.Link(req); err != nil {
		s.logger.Error("failed to link performance criteria",
			zap.String("pc_id", req.PCID),
			zap.String("target_id", req.TargetID),
			zap.Error(err))
		return err
	}
	return nil
}

// Unlink removes a performance criteria link; a missing link is a no-op
func (s *curriculumService) Unlink(req models.LinkRequest) error {
	return s.store.Unlink(req)
}

// CriteriaLinks returns the links of one performance criteria
func (s *curriculumService) CriteriaLinks(pcID string) ([]models.PCLink, error) {
	return s.store.LinksFor(pcID)
}

// LinkedCriteria returns the links pointing at one target entity, for
// badge counts on tree and column nodes
func (s *curriculumService) LinkedCriteria(targetID string) []models.PCLink {
	return s.store.LinksTo(targetID)
}

// CreateLesson creates an unscheduled lesson in the library
func (s *curriculumService) CreateLesson(req models.AddLessonRequest) (models.Lesson, error) {
	l, err := s.store.AddLesson(req)
	if err != nil {
		s.logger.Error("failed to create lesson", zap.Error(err))
		return models.Lesson{}, err
	}
	return l, nil
}

// UpdateLesson applies a partial lesson update
func (s *curriculumService) UpdateLesson(id string, req models.UpdateLessonRequest) (models.Lesson, error) {
	l, err := s.store.UpdateLesson(id, req)
	if err != nil {
		s.logger.Error("failed to update lesson", zap.String("lesson_id", id), zap.Error(err))
		return models.Lesson{}, err
	}
	return l, nil
}

// DuplicateLesson copies a lesson into the library
func (s *curriculumService) DuplicateLesson(id string) (models.Lesson, error) {
	l, err := s.store.DuplicateLesson(id)
	if err != nil {
		s.logger.Error("failed to duplicate lesson", zap.String("lesson_id", id), zap.Error(err))
		return models.Lesson{}, err
	}
	return l, nil
}

// DeleteLesson deletes a lesson and its deck
func (s *curriculumService) DeleteLesson(id string) error {
	if err := s.store.DeleteLesson(id); err != nil {
		s.logger.Error("failed to delete lesson", zap.String("lesson_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Lesson returns one lesson
func (s *curriculumService) Lesson(id string) (models.Lesson, error) {
	return s.store.Lesson(id)
}

// CreateSlide appends a slide to a lesson's deck
func (s *curriculumService) CreateSlide(req models.AddSlideRequest) (models.Slide, error) {
	sl, err := s.store.AddSlide(req)
	if err != nil {
		s.logger.Error("failed to create slide", zap.Error(err))
		return models.Slide{}, err
	}
	return sl, nil
}

// UpdateSlide applies a partial slide update
func (s *curriculumService) UpdateSlide(id string, req models.UpdateSlideRequest) (models.Slide, error) {
	sl, err := s.store.UpdateSlide(id, req)
	if err != nil {
		s.logger.Error("failed to update slide", zap.String("slide_id", id), zap.Error(err))
		return models.Slide{}, err
	}
	return sl, nil
}

// UpdateSlideBlock writes one content block slot on a slide
func (s *curriculumService) UpdateSlideBlock(id string, req models.UpdateSlideBlockRequest) (models.Slide, error) {
	sl, err := s.store.UpdateSlideBlock(id, req)
	if err != nil {
		s.logger.Error("failed to update slide block", zap.String("slide_id", id), zap.Error(err))
		return models.Slide{}, err
	}
	return sl, nil
}

// MoveSlide moves a slide within its deck
func (s *curriculumService) MoveSlide(id string, newOrder int) error {
	if err := s.store.MoveSlide(id, newOrder); err != nil {
		s.logger.Error("failed to move slide", zap.String("slide_id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteSlide deletes a slide
func (s *curriculumService) DeleteSlide(id string) error {
	if err := s.store.DeleteSlide(id); err != nil {
		s.logger.Error("failed to delete slide", zap.String("slide_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Slides returns the deck of one lesson
func (s *curriculumService) Slides(lessonID string) ([]models.Slide, error) {
	if _, err := s.store.Lesson(lessonID); err != nil {
		return nil, err
	}
	return s.store.Slides(lessonID), nil
}

// Tree returns the outline view
func (s *curriculumService) Tree() views.Tree {
	return s.deriver.Tree()
}

// Columns returns the editing view
func (s *curriculumService) Columns() views.Columns {
	return s.deriver.Columns()
}

// Library returns the unscheduled lesson library
func (s *curriculumService) Library() []views.LessonItem {
	return s.deriver.Library()
}

// Legacy returns the flat document older clients consume
func (s *curriculumService) Legacy() views.LegacyDocument {
	return s.deriver.Legacy()
}

// TopicSerial returns the display serial of one topic
func (s *curriculumService) TopicSerial(id string) (string, error) {
	topic, err := s.store.Topic(id)
	if err != nil {
		return "", err
	}
	return serial.TopicSerial(topic, s.store.AllLearningObjectives(), s.store.AllTopics()), nil
}

// SubtopicSerial returns the display serial of one subtopic
func (s *curriculumService) SubtopicSerial(id string) (string, error) {
	st, err := s.store.Subtopic(id)
	if err != nil {
		return "", err
	}
	return serial.SubtopicSerial(st, s.store.AllSubtopics(), s.store.AllTopics(), s.store.AllLearningObjectives()), nil
}
