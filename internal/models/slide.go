package models

// SlideType classifies a slide within a lesson's slide deck
type SlideType string

const (
	SlideTypeAgenda       SlideType = "agenda"
	SlideTypeSummary      SlideType = "summary"
	SlideTypeLessonTitle  SlideType = "lesson_title"
	SlideTypeUserDefined1 SlideType = "user_defined_1"
	SlideTypeUserDefined2 SlideType = "user_defined_2"
	SlideTypeUserDefined3 SlideType = "user_defined_3"
)

// IsValid reports whether the slide type is one of the known values
func (t SlideType) IsValid() bool {
	switch t {
	case SlideTypeAgenda, SlideTypeSummary, SlideTypeLessonTitle,
		SlideTypeUserDefined1, SlideTypeUserDefined2, SlideTypeUserDefined3:
		return true
	}
	return false
}

// SlideContentBlocks is the fixed number of content block slots per slide:
// three primary slots followed by two optional slots.
const (
	SlideContentBlocks        = 5
	SlidePrimaryContentBlocks = 3
)

// ContentBlock is one content slot on a slide, optionally anchored to a subtopic
type ContentBlock struct {
	SubtopicID string `json:"subtopicId,omitempty"`
	Text       string `json:"text"`
}

// Slide represents one slide in a lesson's ordered deck
type Slide struct {
	ID              string                           `json:"id"`
	LessonID        string                           `json:"lessonId"`
	Type            SlideType                        `json:"type"`
	Order           int                              `json:"order"`
	ContentBlocks   [SlideContentBlocks]ContentBlock `json:"contentBlocks"`
	InstructorNotes string                           `json:"instructorNotes"`
}
