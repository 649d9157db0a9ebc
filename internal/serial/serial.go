// Package serial derives display serial numbers for topics and subtopics.
// Serials are never stored; they are recomputed from the canonical orders
// on every read, so a renumbering mutation is automatically reflected
// everywhere a serial is shown.
package serial

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

// Unlinked is the serial prefix of topics that belong to no learning objective
const Unlinked = "x"

// Unknown is the serial segment shown when a parent reference cannot be
// resolved, which only happens on inconsistent imported data
const Unknown = "?"

// TopicSerial returns the display serial of a topic.
//
// A linked topic is numbered "{objective order}.{rank}" where rank is the
// topic's 1-based position among its siblings ordered by their order
// field. An unlinked topic is numbered "x.{rank}" within the unlinked
// group. A topic whose objective cannot be found falls back to
// "?.{order}" using its stored order verbatim.
func TopicSerial(topic models.Topic, los []models.LearningObjective, topics []models.Topic) string {
	if topic.LOID == "" {
		return fmt.Sprintf("%s.%d", Unlinked, rankOfTopic(topic, topics))
	}
	parent, found := lo.Find(los, func(l models.LearningObjective) bool { return l.ID == topic.LOID })
	if !found {
		return fmt.Sprintf("%s.%d", Unknown, topic.Order)
	}
	return fmt.Sprintf("%d.%d", parent.Order, rankOfTopic(topic, topics))
}

// SubtopicSerial returns the display serial of a subtopic:
// "{topic serial}.{rank}" within its topic, or "?.?.{order}" when the
// topic cannot be found.
func SubtopicSerial(st models.Subtopic, subtopics []models.Subtopic, topics []models.Topic, los []models.LearningObjective) string {
	parent, found := lo.Find(topics, func(t models.Topic) bool { return t.ID == st.TopicID })
	if !found {
		return fmt.Sprintf("%s.%s.%d", Unknown, Unknown, st.Order)
	}
	return fmt.Sprintf("%s.%d", TopicSerial(parent, los, topics), rankOfSubtopic(st, subtopics))
}

// rankOfTopic is the 1-based position of a topic among the siblings of
// its group, ordered by the order field. Ranks close gaps: a group with
// orders 2 and 5 still yields ranks 1 and 2.
func rankOfTopic(topic models.Topic, topics []models.Topic) int {
	siblings := lo.Filter(topics, func(t models.Topic, _ int) bool { return t.LOID == topic.LOID })
	sort.Slice(siblings, func(i, j int) bool { return siblings[i].Order < siblings[j].Order })
	for i, sib := range siblings {
		if sib.ID == topic.ID {
			return i + 1
		}
	}
	return topic.Order
}

func rankOfSubtopic(st models.Subtopic, subtopics []models.Subtopic) int {
	siblings := lo.Filter(subtopics, func(s models.Subtopic, _ int) bool { return s.TopicID == st.TopicID })
	sort.Slice(siblings, func(i, j int) bool { return siblings[i].Order < siblings[j].Order })
	for i, sib := range siblings {
		if sib.ID == st.ID {
			return i + 1
		}
	}
	return st.Order
}
