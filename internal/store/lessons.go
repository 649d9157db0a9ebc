package store

import (
	"strings"

	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/schedule"
)

// AddLesson creates an unscheduled lesson in the library
func (s *Store) AddLesson(req models.AddLessonRequest) (models.Lesson, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Lesson{}, &ValidationError{Message: "lesson title is required"}
	}
	if !req.Type.IsValid() {
		return models.Lesson{}, &ValidationError{Message: "unknown lesson type " + string(req.Type)}
	}
	duration := req.Type.DefaultDuration()
	if req.Duration != nil {
		if *req.Duration < 1 {
			return models.Lesson{}, &ValidationError{Message: "lesson duration must be positive"}
		}
		duration = *req.Duration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l := &models.Lesson{
		ID:                  s.ids.NewID("lesson"),
		Title:               title,
		Type:                req.Type,
		Duration:            duration,
		Topics:              []string{},
		LearningObjectives:  []string{},
		PerformanceCriteria: []string{},
	}
	s.lessons[l.ID] = l
	return copyLesson(l), nil
}

// UpdateLesson applies a partial update. Scheduling fields change only
// through Schedule and Unschedule; criteria references only through links.
func (s *Store) UpdateLesson(id string, req models.UpdateLessonRequest) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lessons[id]
	if !ok {
		return models.Lesson{}, &NotFoundError{Kind: "lesson", ID: id}
	}
	if req.ID != nil {
		return models.Lesson{}, &ImmutableFieldError{Kind: "lesson", Field: "id"}
	}
	if req.Type != nil {
		return models.Lesson{}, &ImmutableFieldError{Kind: "lesson", Field: "type"}
	}
	if req.LessonType != nil && !req.LessonType.IsValid() {
		return models.Lesson{}, &ValidationError{Message: "unknown lesson type " + string(*req.LessonType)}
	}
	if req.Duration != nil && *req.Duration < 1 {
		return models.Lesson{}, &ValidationError{Message: "lesson duration must be positive"}
	}
	if req.Topics != nil {
		for _, topicID := range *req.Topics {
			if _, ok := s.topics[topicID]; !ok {
				return models.Lesson{}, &NotFoundError{Kind: "topic", ID: topicID}
			}
		}
	}
	if req.LearningObjectives != nil {
		for _, loID := range *req.LearningObjectives {
			if _, ok := s.los[loID]; !ok {
				return models.Lesson{}, &NotFoundError{Kind: "learning objective", ID: loID}
			}
		}
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return models.Lesson{}, &ValidationError{Message: "lesson title is required"}
		}
		l.Title = title
	}
	if req.LessonType != nil {
		l.Type = *req.LessonType
	}
	if req.Duration != nil {
		l.Duration = *req.Duration
	}
	if req.Topics != nil {
		l.Topics = append([]string{}, *req.Topics...)
	}
	if req.LearningObjectives != nil {
		l.LearningObjectives = append([]string{}, *req.LearningObjectives...)
	}
	return copyLesson(l), nil
}

// DuplicateLesson copies a lesson into the unscheduled library. The copy
// keeps the content references but not the deck or the grid slot.
func (s *Store) DuplicateLesson(id string) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.lessons[id]
	if !ok {
		return models.Lesson{}, &NotFoundError{Kind: "lesson", ID: id}
	}

	dup := copyLesson(src)
	dup.ID = s.ids.NewID("lesson")
	dup.Title = src.Title + " (Copy)"
	dup.Scheduled = false
	dup.Day = 0
	dup.Week = 0
	dup.StartTime = ""
	s.lessons[dup.ID] = &dup
	return copyLesson(&dup), nil
}

// ScheduleLesson puts a lesson on the weekly grid. Fit is the caller's
// concern; the store only records the slot.
func (s *Store) ScheduleLesson(id string, day, week int, startTime string) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lessons[id]
	if !ok {
		return models.Lesson{}, &NotFoundError{Kind: "lesson", ID: id}
	}
	if day < 1 || day > schedule.DaysPerWeek || week < 1 {
		return models.Lesson{}, &ValidationError{Message: "a scheduled lesson needs a week and a day between 1 and 5"}
	}
	if _, err := schedule.TimeToMinutes(startTime); err != nil {
		return models.Lesson{}, &ValidationError{Message: err.Error()}
	}
	l.Scheduled = true
	l.Day = day
	l.Week = week
	l.StartTime = startTime
	s.logger.Debug("lesson scheduled",
		zap.String("lesson_id", id),
		zap.Int("day", day),
		zap.Int("week", week),
		zap.String("start_time", startTime))
	return copyLesson(l), nil
}

// UnscheduleLesson returns a lesson to the library, clearing its slot
func (s *Store) UnscheduleLesson(id string) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lessons[id]
	if !ok {
		return models.Lesson{}, &NotFoundError{Kind: "lesson", ID: id}
	}
	l.Scheduled = false
	l.Day = 0
	l.Week = 0
	l.StartTime = ""
	return copyLesson(l), nil
}

// DeleteLesson removes a lesson, its deck, and its criteria links
func (s *Store) DeleteLesson(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lessons[id]; !ok {
		return &NotFoundError{Kind: "lesson", ID: id}
	}
	for _, sl := range s.slidesOfLocked(id) {
		delete(s.slides, sl.ID)
	}
	delete(s.lessons, id)
	s.links = filterLinks(s.links, func(l models.PCLink) bool { return l.TargetID != id })

	s.logger.Debug("lesson deleted", zap.String("lesson_id", id))
	return nil
}

// AddSlide appends a slide to a lesson's deck
func (s *Store) AddSlide(req models.AddSlideRequest) (models.Slide, error) {
	if !req.Type.IsValid() {
		return models.Slide{}, &ValidationError{Message: "unknown slide type " + string(req.Type)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lessons[req.LessonID]; !ok {
		return models.Slide{}, &InvalidParentError{Kind: "slide", ParentID: req.LessonID, Reason: "lesson does not exist"}
	}

	sl := &models.Slide{
		ID:       s.ids.NewID("slide"),
		LessonID: req.LessonID,
		Type:     req.Type,
		Order:    len(s.slidesOfLocked(req.LessonID)) + 1,
	}
	s.slides[sl.ID] = sl
	return *sl, nil
}

// UpdateSlide applies a partial update to slide-level fields
func (s *Store) UpdateSlide(id string, req models.UpdateSlideRequest) (models.Slide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slides[id]
	if !ok {
		return models.Slide{}, &NotFoundError{Kind: "slide", ID: id}
	}
	if req.ID != nil {
		return models.Slide{}, &ImmutableFieldError{Kind: "slide", Field: "id"}
	}
	if req.Type != nil {
		return models.Slide{}, &ImmutableFieldError{Kind: "slide", Field: "type"}
	}
	if req.SlideType != nil {
		if !req.SlideType.IsValid() {
			return models.Slide{}, &ValidationError{Message: "unknown slide type " + string(*req.SlideType)}
		}
		sl.Type = *req.SlideType
	}
	if req.InstructorNotes != nil {
		sl.InstructorNotes = *req.InstructorNotes
	}
	return *sl, nil
}

// UpdateSlideBlock writes one content block slot on a slide. A block may
// bind a subtopic, carry free text, or both; an empty subtopicId clears
// the binding.
func (s *Store) UpdateSlideBlock(id string, req models.UpdateSlideBlockRequest) (models.Slide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slides[id]
	if !ok {
		return models.Slide{}, &NotFoundError{Kind: "slide", ID: id}
	}
	if req.Index < 0 || req.Index >= models.SlideContentBlocks {
		return models.Slide{}, &ValidationError{Message: "content block index out of range"}
	}
	if req.SubtopicID != nil && *req.SubtopicID != "" {
		if _, ok := s.subtopics[*req.SubtopicID]; !ok {
			return models.Slide{}, &NotFoundError{Kind: "subtopic", ID: *req.SubtopicID}
		}
	}

	if req.SubtopicID != nil {
		sl.ContentBlocks[req.Index].SubtopicID = *req.SubtopicID
	}
	if req.Text != nil {
		sl.ContentBlocks[req.Index].Text = *req.Text
	}
	return *sl, nil
}

// MoveSlide moves a slide to a 1-based position within its deck
func (s *Store) MoveSlide(id string, newOrder int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slides[id]
	if !ok {
		return &NotFoundError{Kind: "slide", ID: id}
	}

	deck := s.slidesOfLocked(sl.LessonID)
	target := clampOrder(newOrder, len(deck))
	pos := 1
	for _, other := range deck {
		if other.ID == id {
			continue
		}
		if pos == target {
			pos++
		}
		s.slides[other.ID].Order = pos
		pos++
	}
	sl.Order = target
	return nil
}

// DeleteSlide removes a slide and closes the gap in its deck
func (s *Store) DeleteSlide(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slides[id]
	if !ok {
		return &NotFoundError{Kind: "slide", ID: id}
	}
	lessonID := sl.LessonID
	delete(s.slides, id)
	for i, rest := range s.slidesOfLocked(lessonID) {
		s.slides[rest.ID].Order = i + 1
	}
	return nil
}
