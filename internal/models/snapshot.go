package models

import "time"

// Snapshot is the serializable state of the whole canonical store.
// Exporting and rehydrating a snapshot round-trips losslessly: same
// entities, same order values, same links, and therefore identical
// derived serials.
type Snapshot struct {
	Modules             map[string]Module              `json:"modules"`
	LearningObjectives  map[string]LearningObjective   `json:"learningObjectives"`
	Topics              map[string]Topic               `json:"topics"`
	Subtopics           map[string]Subtopic            `json:"subtopics"`
	Lessons             map[string]Lesson              `json:"lessons"`
	Slides              map[string]Slide               `json:"slides"`
	PerformanceCriteria map[string]PerformanceCriteria `json:"performanceCriteria"`
	Links               []PCLink                       `json:"links"`
}

// SnapshotRevision describes one persisted snapshot revision
type SnapshotRevision struct {
	Revision  int       `json:"revision"`
	CreatedAt time.Time `json:"createdAt"`
	SizeBytes int       `json:"sizeBytes"`
}
