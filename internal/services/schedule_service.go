package services

import (
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/schedule"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/store"
)

// PlacementResult is the outcome of an auto-placement. When Placed is
// false the lesson exists in the library but no day had room, and the
// author has to position it by hand.
type PlacementResult struct {
	Lesson models.Lesson `json:"lesson"`
	Placed bool          `json:"placed"`
}

// scheduleService places, moves and resizes lessons on the weekly grid
type scheduleService struct {
	store  *store.Store
	window schedule.Window
	logger *zap.Logger
}

// NewScheduleService creates a new schedule service working inside the
// given daily teaching window
func NewScheduleService(s *store.Store, window schedule.Window, logger *zap.Logger) *scheduleService {
	return &scheduleService{store: s, window: window, logger: logger}
}

// Place creates a lesson and drops it into the first free slot of the
// week: days in order, each lesson right after the previous one. When
// only part of a day remains the lesson shrinks into it; when the whole
// week is full the lesson stays in the library unplaced.
func (s *scheduleService) Place(req models.PlaceLessonRequest) (PlacementResult, error) {
	if req.Week < 1 {
		return PlacementResult{}, &store.ValidationError{Message: "week must be positive"}
	}

	lesson, err := s.store.AddLesson(models.AddLessonRequest{Title: req.Title, Type: req.Type})
	if err != nil {
		s.logger.Error("failed to create lesson for placement", zap.Error(err))
		return PlacementResult{}, err
	}
	return s.placeExisting(lesson, req.Week)
}

// PlaceExisting drops a library lesson into the first free slot of a week
func (s *scheduleService) PlaceExisting(id string, week int) (PlacementResult, error) {
	if week < 1 {
		return PlacementResult{}, &store.ValidationError{Message: "week must be positive"}
	}
	lesson, err := s.store.Lesson(id)
	if err != nil {
		return PlacementResult{}, err
	}
	return s.placeExisting(lesson, week)
}

func (s *scheduleService) placeExisting(lesson models.Lesson, week int) (PlacementResult, error) {
	placement, ok := schedule.FirstFit(s.store.Lessons(), week, lesson.Duration, s.window)
	if !ok {
		s.logger.Warn("no room left in week, lesson needs manual placement",
			zap.String("lesson_id", lesson.ID),
			zap.Int("week", week))
		return PlacementResult{Lesson: lesson, Placed: false}, nil
	}

	if placement.Duration != lesson.Duration {
		lesson, _ = s.store.UpdateLesson(lesson.ID, models.UpdateLessonRequest{Duration: &placement.Duration})
	}
	placed, err := s.store.ScheduleLesson(lesson.ID, placement.Day, placement.Week, placement.StartTime)
	if err != nil {
		return PlacementResult{}, err
	}
	return PlacementResult{Lesson: placed, Placed: true}, nil
}

// Reposition moves a scheduled lesson to an explicit slot. The start
// snaps to the grid and must leave the lesson inside the teaching
// window. Overlaps are allowed; the grid shows them and the author
// resolves them.
func (s *scheduleService) Reposition(id string, req models.RepositionRequest) (models.Lesson, error) {
	if req.Day < 1 || req.Day > schedule.DaysPerWeek {
		return models.Lesson{}, &store.ValidationError{Message: "day must be between 1 and 5"}
	}
	if req.Week < 1 {
		return models.Lesson{}, &store.ValidationError{Message: "week must be positive"}
	}
	lesson, err := s.store.Lesson(id)
	if err != nil {
		return models.Lesson{}, err
	}

	start, err := schedule.TimeToMinutes(req.StartTime)
	if err != nil {
		return models.Lesson{}, &store.ValidationError{Message: err.Error()}
	}
	start = schedule.Snap(start)
	if start < s.window.StartMinutes() || start+lesson.Duration > s.window.EndMinutes() {
		return models.Lesson{}, &store.ValidationError{Message: "lesson does not fit inside the teaching window"}
	}
	return s.store.ScheduleLesson(id, req.Day, req.Week, schedule.MinutesToTime(start))
}

// Resize changes a lesson's length. A duration resizes the trailing
// edge; a start time resizes the leading edge, keeping the end fixed.
// Either way the result snaps to the grid and never drops under the
// minimum lesson length.
func (s *scheduleService) Resize(id string, req models.ResizeRequest) (models.Lesson, error) {
	lesson, err := s.store.Lesson(id)
	if err != nil {
		return models.Lesson{}, err
	}

	switch {
	case req.Duration != nil:
		duration := schedule.ResizeTrailing(*req.Duration)
		if lesson.Scheduled {
			start, err := schedule.TimeToMinutes(lesson.StartTime)
			if err == nil && start+duration > s.window.EndMinutes() {
				duration = s.window.EndMinutes() - start
			}
		}
		return s.store.UpdateLesson(id, models.UpdateLessonRequest{Duration: &duration})

	case req.StartTime != nil:
		if !lesson.Scheduled {
			return models.Lesson{}, &store.ValidationError{Message: "only a scheduled lesson can be resized from its start"}
		}
		start, duration, err := schedule.ResizeLeading(lesson.StartTime, lesson.Duration, *req.StartTime, s.window)
		if err != nil {
			return models.Lesson{}, &store.ValidationError{Message: err.Error()}
		}
		if _, err := s.store.UpdateLesson(id, models.UpdateLessonRequest{Duration: &duration}); err != nil {
			return models.Lesson{}, err
		}
		return s.store.ScheduleLesson(id, lesson.Day, lesson.Week, start)

	default:
		return models.Lesson{}, &store.ValidationError{Message: "a resize needs a duration or a start time"}
	}
}

// Unschedule lifts a lesson off the grid and back into the library
func (s *scheduleService) Unschedule(id string) (models.Lesson, error) {
	lesson, err := s.store.UnscheduleLesson(id)
	if err != nil {
		s.logger.Error("failed to unschedule lesson", zap.String("lesson_id", id), zap.Error(err))
		return models.Lesson{}, err
	}
	return lesson, nil
}

// Week returns the lessons of one week grouped by day in start order
func (s *scheduleService) Week(week int) ([]schedule.DayPlan, error) {
	if week < 1 {
		return nil, &store.ValidationError{Message: "week must be positive"}
	}
	return schedule.WeekPlan(s.store.Lessons(), week), nil
}
