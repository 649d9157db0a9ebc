package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

func TestTopicSerial(t *testing.T) {
	los := []models.LearningObjective{
		{ID: "lo-1", ModuleID: "module-1", Order: 1},
		{ID: "lo-2", ModuleID: "module-1", Order: 2},
	}
	topics := []models.Topic{
		{ID: "topic-a", LOID: "lo-1", Order: 1},
		{ID: "topic-b", LOID: "lo-1", Order: 2},
		{ID: "topic-c", LOID: "lo-2", Order: 1},
		{ID: "topic-d", LOID: "", Order: 1},
		{ID: "topic-e", LOID: "", Order: 2},
		{ID: "topic-f", LOID: "lo-gone", Order: 4},
	}

	tests := []struct {
		name     string
		topic    models.Topic
		expected string
	}{
		{name: "first topic of first objective", topic: topics[0], expected: "1.1"},
		{name: "second topic of first objective", topic: topics[1], expected: "1.2"},
		{name: "first topic of second objective", topic: topics[2], expected: "2.1"},
		{name: "unlinked topics use the x prefix", topic: topics[3], expected: "x.1"},
		{name: "unlinked rank follows group order", topic: topics[4], expected: "x.2"},
		{name: "missing objective falls back to stored order", topic: topics[5], expected: "?.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TopicSerial(tt.topic, los, topics))
		})
	}
}

func TestTopicSerial_RankClosesOrderGaps(t *testing.T) {
	los := []models.LearningObjective{{ID: "lo-1", Order: 3}}
	topics := []models.Topic{
		{ID: "topic-a", LOID: "lo-1", Order: 2},
		{ID: "topic-b", LOID: "lo-1", Order: 5},
	}

	assert.Equal(t, "3.1", TopicSerial(topics[0], los, topics))
	assert.Equal(t, "3.2", TopicSerial(topics[1], los, topics))
}

func TestSubtopicSerial(t *testing.T) {
	los := []models.LearningObjective{{ID: "lo-1", Order: 2}}
	topics := []models.Topic{
		{ID: "topic-a", LOID: "lo-1", Order: 1},
		{ID: "topic-u", LOID: "", Order: 1},
	}
	subtopics := []models.Subtopic{
		{ID: "st-1", TopicID: "topic-a", Order: 1},
		{ID: "st-2", TopicID: "topic-a", Order: 2},
		{ID: "st-3", TopicID: "topic-u", Order: 1},
		{ID: "st-4", TopicID: "topic-gone", Order: 3},
	}

	tests := []struct {
		name     string
		subtopic models.Subtopic
		expected string
	}{
		{name: "extends the topic serial", subtopic: subtopics[0], expected: "2.1.1"},
		{name: "ranks within the topic", subtopic: subtopics[1], expected: "2.1.2"},
		{name: "inherits the unlinked prefix", subtopic: subtopics[2], expected: "x.1.1"},
		{name: "missing topic falls back to stored order", subtopic: subtopics[3], expected: "?.?.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubtopicSerial(tt.subtopic, subtopics, topics, los))
		})
	}
}

// Serials are pure functions of the canonical state: the same input
// always yields the same output.
func TestSerialsAreDeterministic(t *testing.T) {
	los := []models.LearningObjective{{ID: "lo-1", Order: 1}}
	topics := []models.Topic{
		{ID: "topic-a", LOID: "lo-1", Order: 1},
		{ID: "topic-b", LOID: "lo-1", Order: 2},
	}

	first := TopicSerial(topics[1], los, topics)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, TopicSerial(topics[1], los, topics))
	}
}
