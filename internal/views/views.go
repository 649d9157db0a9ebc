// Package views derives the read shapes of the authoring surface from
// the canonical store: the outline tree, the parallel editing columns,
// and the legacy flat document older clients still consume. Every view
// is recomputed on read; nothing here is cached or written back.
package views

import (
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

// SubtopicNode is a subtopic with its derived serial
type SubtopicNode struct {
	models.Subtopic
	Serial string `json:"serial"`
}

// TopicNode is a topic with its derived serial and nested subtopics
type TopicNode struct {
	models.Topic
	Serial    string         `json:"serial"`
	Subtopics []SubtopicNode `json:"subtopics"`
}

// ObjectiveNode is a learning objective with its nested topics
type ObjectiveNode struct {
	models.LearningObjective
	Topics []TopicNode `json:"topics"`
}

// ModuleNode is a module with its nested objectives
type ModuleNode struct {
	models.Module
	LearningObjectives []ObjectiveNode `json:"learningObjectives"`
}

// Tree is the outline view: modules down to subtopics, with unlinked
// topics in their own group after the modules
type Tree struct {
	Modules        []ModuleNode `json:"modules"`
	UnlinkedTopics []TopicNode  `json:"unlinkedTopics"`
}

// LessonItem is a lesson with its derived editorial flag
type LessonItem struct {
	models.Lesson
	MissingObjectives bool `json:"missingObjectives"`
}

// Columns is the editing view: one flat ordered list per entity kind.
// The lessons column carries only scheduled lessons; the unscheduled
// library is served separately.
type Columns struct {
	Modules             []models.Module              `json:"modules"`
	LearningObjectives  []models.LearningObjective   `json:"learningObjectives"`
	Topics              []TopicNode                  `json:"topics"`
	Subtopics           []SubtopicNode               `json:"subtopics"`
	Lessons             []LessonItem                 `json:"lessons"`
	PerformanceCriteria []models.PerformanceCriteria `json:"performanceCriteria"`
}

// Legacy shapes mirror the flat document older clients consume. Serials
// are baked into the payload because those clients cannot derive them.

// LegacySubtopic is a subtopic in the legacy document
type LegacySubtopic struct {
	ID     string `json:"id"`
	Serial string `json:"serial"`
	Title  string `json:"title"`
}

// LegacyTopic is a topic in the legacy document
type LegacyTopic struct {
	ID        string           `json:"id"`
	Serial    string           `json:"serial"`
	Title     string           `json:"title"`
	Subtopics []LegacySubtopic `json:"subtopics"`
}

// LegacyObjective is a learning objective in the legacy document; the
// verb and description collapse into a single display text
type LegacyObjective struct {
	ID     string        `json:"id"`
	Text   string        `json:"text"`
	Topics []LegacyTopic `json:"topics"`
}

// LegacyModule is a module in the legacy document
type LegacyModule struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	LearningObjectives []LegacyObjective `json:"learningObjectives"`
}

// LegacyCriteria is a performance criteria in the legacy document with
// the ids of everything it links to
type LegacyCriteria struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	LinkedTo    []string `json:"linkedTo"`
}

// LegacyDocument is the legacy flat document
type LegacyDocument struct {
	Modules             []LegacyModule   `json:"modules"`
	UnlinkedTopics      []LegacyTopic    `json:"unlinkedTopics"`
	PerformanceCriteria []LegacyCriteria `json:"performanceCriteria"`
}
