package models

// AddModuleRequest represents a request to create a module
type AddModuleRequest struct {
	Name string `json:"name"`
}

// AddLearningObjectiveRequest represents a request to create a learning objective
type AddLearningObjectiveRequest struct {
	ModuleID    string `json:"moduleId"`
	Verb        string `json:"verb"`
	Description string `json:"description"`
}

// AddTopicRequest represents a request to create a topic.
// An empty loId creates the topic in the unlinked group.
type AddTopicRequest struct {
	LOID  string `json:"loId,omitempty"`
	Title string `json:"title"`
}

// AddSubtopicRequest represents a request to create a subtopic
type AddSubtopicRequest struct {
	TopicID string `json:"topicId"`
	Title   string `json:"title"`
}

// AddLessonRequest represents a request to create an unscheduled lesson
type AddLessonRequest struct {
	Title    string     `json:"title"`
	Type     LessonType `json:"type"`
	Duration *int       `json:"duration,omitempty"`
}

// AddSlideRequest represents a request to append a slide to a lesson's deck
type AddSlideRequest struct {
	LessonID string    `json:"lessonId"`
	Type     SlideType `json:"type"`
}

// AddPerformanceCriteriaRequest represents a request to create a performance criteria
type AddPerformanceCriteriaRequest struct {
	Description string `json:"description"`
}

// UpdateModuleRequest represents a partial update of a module.
// ID and Type are present only so that attempts to change them can be
// rejected; Order changes go through move.
type UpdateModuleRequest struct {
	ID    *string `json:"id,omitempty"`
	Type  *string `json:"type,omitempty"`
	Order *int    `json:"order,omitempty"`
	Name  *string `json:"name,omitempty"`
}

// UpdateLearningObjectiveRequest represents a partial update of a learning objective
type UpdateLearningObjectiveRequest struct {
	ID          *string `json:"id,omitempty"`
	Type        *string `json:"type,omitempty"`
	ModuleID    *string `json:"moduleId,omitempty"`
	Order       *int    `json:"order,omitempty"`
	Verb        *string `json:"verb,omitempty"`
	Description *string `json:"description,omitempty"`
	Expanded    *bool   `json:"expanded,omitempty"`
}

// UpdateTopicRequest represents a partial update of a topic
type UpdateTopicRequest struct {
	ID       *string `json:"id,omitempty"`
	Type     *string `json:"type,omitempty"`
	LOID     *string `json:"loId,omitempty"`
	Order    *int    `json:"order,omitempty"`
	Title    *string `json:"title,omitempty"`
	Expanded *bool   `json:"expanded,omitempty"`
}

// UpdateSubtopicRequest represents a partial update of a subtopic
type UpdateSubtopicRequest struct {
	ID      *string `json:"id,omitempty"`
	Type    *string `json:"type,omitempty"`
	TopicID *string `json:"topicId,omitempty"`
	Order   *int    `json:"order,omitempty"`
	Title   *string `json:"title,omitempty"`
}

// UpdateLessonRequest represents a partial update of a lesson.
// Scheduling fields (day, week, startTime, scheduled) go through the
// scheduling API, not through update.
type UpdateLessonRequest struct {
	ID                  *string     `json:"id,omitempty"`
	Type                *string     `json:"type,omitempty"`
	Title               *string     `json:"title,omitempty"`
	LessonType          *LessonType `json:"lessonType,omitempty"`
	Duration            *int        `json:"duration,omitempty"`
	Topics              *[]string   `json:"topics,omitempty"`
	LearningObjectives  *[]string   `json:"learningObjectives,omitempty"`
}

// UpdateSlideRequest represents a partial update of a slide
type UpdateSlideRequest struct {
	ID              *string    `json:"id,omitempty"`
	Type            *string    `json:"type,omitempty"`
	SlideType       *SlideType `json:"slideType,omitempty"`
	InstructorNotes *string    `json:"instructorNotes,omitempty"`
}

// UpdateSlideBlockRequest represents an update of one content block slot on a slide
type UpdateSlideBlockRequest struct {
	Index      int     `json:"index"` // 0-4
	SubtopicID *string `json:"subtopicId,omitempty"`
	Text       *string `json:"text,omitempty"`
}

// UpdatePerformanceCriteriaRequest represents a partial update of a performance criteria
type UpdatePerformanceCriteriaRequest struct {
	ID          *string `json:"id,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
}

// MoveRequest represents a request to re-parent an entity.
// NewOrder inserts at the given 1-based position in the destination
// group; when omitted the entity is appended at the end.
type MoveRequest struct {
	NewParentID string `json:"newParentId"`
	NewOrder    *int   `json:"newOrder,omitempty"`
}

// RelinkRequest represents a request to relink a topic to a learning
// objective. An empty loId moves the topic to the unlinked group.
type RelinkRequest struct {
	LOID string `json:"loId"`
}

// LinkRequest represents a performance criteria link or unlink request
type LinkRequest struct {
	PCID       string   `json:"pcId"`
	TargetType NodeType `json:"targetType"`
	TargetID   string   `json:"targetId"`
}

// PlaceLessonRequest represents a request to auto-place a new lesson on the weekly grid
type PlaceLessonRequest struct {
	Title string     `json:"title"`
	Type  LessonType `json:"type"`
	Week  int        `json:"week"`
}

// ResizeRequest represents a lesson resize. Duration resizes the
// trailing edge; StartTime resizes the leading edge, adjusting start
// and duration together so the end stays fixed.
type ResizeRequest struct {
	Duration  *int    `json:"duration,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
}

// RepositionRequest represents a lesson drag to a new day/time
type RepositionRequest struct {
	Day       int    `json:"day"`
	Week      int    `json:"week"`
	StartTime string `json:"startTime"`
}

// SelectRequest represents a selection or start-editing request
type SelectRequest struct {
	Type NodeType `json:"type"`
	ID   string   `json:"id"`
}
