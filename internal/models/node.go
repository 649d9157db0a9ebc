package models

// NodeType identifies an entity kind in the canonical store
type NodeType string

const (
	NodeTypeModule              NodeType = "module"
	NodeTypeLearningObjective   NodeType = "lo"
	NodeTypeTopic               NodeType = "topic"
	NodeTypeSubtopic            NodeType = "subtopic"
	NodeTypeLesson              NodeType = "lesson"
	NodeTypeSlide               NodeType = "slide"
	NodeTypePerformanceCriteria NodeType = "pc"
)

// IsValid reports whether the node type is one of the known kinds
func (t NodeType) IsValid() bool {
	switch t {
	case NodeTypeModule, NodeTypeLearningObjective, NodeTypeTopic,
		NodeTypeSubtopic, NodeTypeLesson, NodeTypeSlide, NodeTypePerformanceCriteria:
		return true
	}
	return false
}

// IsLinkTarget reports whether a performance criteria link may point at this kind
func (t NodeType) IsLinkTarget() bool {
	switch t {
	case NodeTypeLearningObjective, NodeTypeTopic, NodeTypeSubtopic, NodeTypeLesson:
		return true
	}
	return false
}
