package models

// LessonType classifies a lesson on the timetable
type LessonType string

const (
	LessonTypeInstructorLed LessonType = "instructor-led"
	LessonTypePractical     LessonType = "practical"
	LessonTypeDiscussion    LessonType = "discussion"
	LessonTypeAssessment    LessonType = "assessment"
	LessonTypeSelfStudy     LessonType = "self-study"
	LessonTypeWorkshop      LessonType = "workshop"
	LessonTypeSimulation    LessonType = "simulation"
	LessonTypePresentation  LessonType = "presentation"
	LessonTypeBreak         LessonType = "break"
	LessonTypeOther         LessonType = "other"
)

// IsValid reports whether the lesson type is one of the known values
func (t LessonType) IsValid() bool {
	switch t {
	case LessonTypeInstructorLed, LessonTypePractical, LessonTypeDiscussion,
		LessonTypeAssessment, LessonTypeSelfStudy, LessonTypeWorkshop,
		LessonTypeSimulation, LessonTypePresentation, LessonTypeBreak, LessonTypeOther:
		return true
	}
	return false
}

// DefaultDuration returns the slot length in minutes a lesson of this
// type gets when none is specified: 30 for breaks, 60 for everything else.
func (t LessonType) DefaultDuration() int {
	if t == LessonTypeBreak {
		return 30
	}
	return 60
}

// Lesson represents a lesson, either scheduled on the weekly grid or
// waiting in the unscheduled library
type Lesson struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Type                LessonType `json:"type"`
	Duration            int        `json:"duration"` // minutes
	Scheduled           bool       `json:"scheduled"`
	Day                 int        `json:"day,omitempty"`  // 1-5
	Week                int        `json:"week,omitempty"` // 1-based
	StartTime           string     `json:"startTime,omitempty"` // "0900"
	Topics              []string   `json:"topics"`
	LearningObjectives  []string   `json:"learningObjectives"`
	PerformanceCriteria []string   `json:"performanceCriteria"`
}

// MissingObjectives reports whether the lesson violates the editorial rule
// that every lesson should reference at least one learning objective.
// Break lessons are exempt.
func (l *Lesson) MissingObjectives() bool {
	return l.Type != LessonTypeBreak && len(l.LearningObjectives) == 0
}
