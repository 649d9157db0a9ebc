package views

import (
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/serial"
)

// Source is the slice of the canonical store the deriver reads from
type Source interface {
	Modules() []models.Module
	AllLearningObjectives() []models.LearningObjective
	AllTopics() []models.Topic
	AllSubtopics() []models.Subtopic
	Lessons() []models.Lesson
	PerformanceCriteria() []models.PerformanceCriteria
	Links() []models.PCLink
}

// Deriver computes view shapes from the canonical store
type Deriver struct {
	src    Source
	logger *zap.Logger
}

// NewDeriver creates a new view deriver
func NewDeriver(src Source, logger *zap.Logger) *Deriver {
	return &Deriver{src: src, logger: logger}
}

// Tree derives the outline view
func (d *Deriver) Tree() Tree {
	los := d.src.AllLearningObjectives()
	topics := d.src.AllTopics()
	subtopics := d.src.AllSubtopics()

	modules := lo.Map(d.src.Modules(), func(m models.Module, _ int) ModuleNode {
		objectives := lo.FilterMap(los, func(l models.LearningObjective, _ int) (ObjectiveNode, bool) {
			if l.ModuleID != m.ID {
				return ObjectiveNode{}, false
			}
			return ObjectiveNode{
				LearningObjective: l,
				Topics:            d.topicNodes(l.ID, los, topics, subtopics),
			}, true
		})
		return ModuleNode{Module: m, LearningObjectives: objectives}
	})

	return Tree{
		Modules:        modules,
		UnlinkedTopics: d.topicNodes("", los, topics, subtopics),
	}
}

// Columns derives the editing view. Lessons appear only when scheduled.
func (d *Deriver) Columns() Columns {
	los := d.src.AllLearningObjectives()
	topics := d.src.AllTopics()
	subtopics := d.src.AllSubtopics()

	topicNodes := lo.Map(topics, func(t models.Topic, _ int) TopicNode {
		return d.topicNode(t, los, topics, subtopics)
	})
	subtopicNodes := lo.Map(subtopics, func(st models.Subtopic, _ int) SubtopicNode {
		return SubtopicNode{Subtopic: st, Serial: serial.SubtopicSerial(st, subtopics, topics, los)}
	})
	lessons := lo.FilterMap(d.src.Lessons(), func(l models.Lesson, _ int) (LessonItem, bool) {
		if !l.Scheduled {
			return LessonItem{}, false
		}
		return LessonItem{Lesson: l, MissingObjectives: l.MissingObjectives()}, true
	})

	return Columns{
		Modules:             d.src.Modules(),
		LearningObjectives:  los,
		Topics:              topicNodes,
		Subtopics:           subtopicNodes,
		Lessons:             lessons,
		PerformanceCriteria: d.src.PerformanceCriteria(),
	}
}

// Library derives the unscheduled lesson library with editorial flags
func (d *Deriver) Library() []LessonItem {
	return lo.FilterMap(d.src.Lessons(), func(l models.Lesson, _ int) (LessonItem, bool) {
		if l.Scheduled {
			return LessonItem{}, false
		}
		return LessonItem{Lesson: l, MissingObjectives: l.MissingObjectives()}, true
	})
}

// Legacy derives the flat document older clients consume. The read is
// logged so remaining legacy traffic stays visible while those clients
// are migrated off.
func (d *Deriver) Legacy() LegacyDocument {
	los := d.src.AllLearningObjectives()
	topics := d.src.AllTopics()
	subtopics := d.src.AllSubtopics()
	links := d.src.Links()

	modules := lo.Map(d.src.Modules(), func(m models.Module, _ int) LegacyModule {
		objectives := lo.FilterMap(los, func(l models.LearningObjective, _ int) (LegacyObjective, bool) {
			if l.ModuleID != m.ID {
				return LegacyObjective{}, false
			}
			return LegacyObjective{
				ID:     l.ID,
				Text:   objectiveText(l),
				Topics: d.legacyTopics(l.ID, los, topics, subtopics),
			}, true
		})
		return LegacyModule{ID: m.ID, Name: m.Name, LearningObjectives: objectives}
	})

	criteria := lo.Map(d.src.PerformanceCriteria(), func(pc models.PerformanceCriteria, _ int) LegacyCriteria {
		linked := lo.FilterMap(links, func(l models.PCLink, _ int) (string, bool) {
			return l.TargetID, l.PCID == pc.ID
		})
		return LegacyCriteria{ID: pc.ID, Description: pc.Description, LinkedTo: linked}
	})

	doc := LegacyDocument{
		Modules:             modules,
		UnlinkedTopics:      d.legacyTopics("", los, topics, subtopics),
		PerformanceCriteria: criteria,
	}
	d.logger.Info("legacy_read",
		zap.Int("modules", len(doc.Modules)),
		zap.Int("unlinked_topics", len(doc.UnlinkedTopics)),
		zap.Int("performance_criteria", len(doc.PerformanceCriteria)))
	return doc
}

func (d *Deriver) topicNodes(loID string, los []models.LearningObjective, topics []models.Topic, subtopics []models.Subtopic) []TopicNode {
	return lo.FilterMap(topics, func(t models.Topic, _ int) (TopicNode, bool) {
		if t.LOID != loID {
			return TopicNode{}, false
		}
		return d.topicNode(t, los, topics, subtopics), true
	})
}

func (d *Deriver) topicNode(t models.Topic, los []models.LearningObjective, topics []models.Topic, subtopics []models.Subtopic) TopicNode {
	children := lo.FilterMap(subtopics, func(st models.Subtopic, _ int) (SubtopicNode, bool) {
		if st.TopicID != t.ID {
			return SubtopicNode{}, false
		}
		return SubtopicNode{Subtopic: st, Serial: serial.SubtopicSerial(st, subtopics, topics, los)}, true
	})
	return TopicNode{
		Topic:     t,
		Serial:    serial.TopicSerial(t, los, topics),
		Subtopics: children,
	}
}

func (d *Deriver) legacyTopics(loID string, los []models.LearningObjective, topics []models.Topic, subtopics []models.Subtopic) []LegacyTopic {
	return lo.FilterMap(topics, func(t models.Topic, _ int) (LegacyTopic, bool) {
		if t.LOID != loID {
			return LegacyTopic{}, false
		}
		children := lo.FilterMap(subtopics, func(st models.Subtopic, _ int) (LegacySubtopic, bool) {
			if st.TopicID != t.ID {
				return LegacySubtopic{}, false
			}
			return LegacySubtopic{
				ID:     st.ID,
				Serial: serial.SubtopicSerial(st, subtopics, topics, los),
				Title:  st.Title,
			}, true
		})
		return LegacyTopic{
			ID:        t.ID,
			Serial:    serial.TopicSerial(t, los, topics),
			Title:     t.Title,
			Subtopics: children,
		}, true
	})
}

func objectiveText(l models.LearningObjective) string {
	return strings.TrimSpace(l.Verb + " " + l.Description)
}
