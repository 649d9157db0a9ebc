package models

// Module represents a top-level course module
type Module struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// LearningObjective represents a learning objective within a module
type LearningObjective struct {
	ID          string `json:"id"`
	ModuleID    string `json:"moduleId"`
	Verb        string `json:"verb"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Expanded    bool   `json:"expanded"`
}

// Topic represents a topic, optionally linked to a learning objective.
// An empty LOID means the topic is unlinked and numbered in the "x.N" namespace.
type Topic struct {
	ID       string `json:"id"`
	LOID     string `json:"loId,omitempty"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
	Expanded bool   `json:"expanded"`
}

// Subtopic represents a subtopic belonging to exactly one topic
type Subtopic struct {
	ID      string `json:"id"`
	TopicID string `json:"topicId"`
	Title   string `json:"title"`
	Order   int    `json:"order"`
}

// PerformanceCriteria represents an assessable statement linkable to
// learning objectives, topics, subtopics and lessons
type PerformanceCriteria struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// PCLink is one many-to-many link between a performance criteria and a target entity
type PCLink struct {
	PCID       string   `json:"pcId"`
	TargetType NodeType `json:"targetType"`
	TargetID   string   `json:"targetId"`
}
