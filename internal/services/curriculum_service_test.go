package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/identity"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/store"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/views"
)

func newCurriculumFixture(t *testing.T) (*store.Store, *curriculumService) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	s := store.New(identity.NewGenerator(), logger)
	return s, NewCurriculumService(s, views.NewDeriver(s, logger), logger)
}

func TestCurriculumService_HierarchyRoundTrip(t *testing.T) {
	_, svc := newCurriculumFixture(t)

	m, err := svc.CreateModule(models.AddModuleRequest{Name: "Navigation"})
	require.NoError(t, err)
	lo, err := svc.CreateObjective(models.AddLearningObjectiveRequest{
		ModuleID: m.ID, Verb: "Plot", Description: "a coastal course",
	})
	require.NoError(t, err)
	topic, err := svc.CreateTopic(models.AddTopicRequest{LOID: lo.ID, Title: "Charts"})
	require.NoError(t, err)
	st, err := svc.CreateSubtopic(models.AddSubtopicRequest{TopicID: topic.ID, Title: "Symbols"})
	require.NoError(t, err)

	topicSerial, err := svc.TopicSerial(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.1", topicSerial)

	subSerial, err := svc.SubtopicSerial(st.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.1.1", subSerial)

	tree := svc.Tree()
	require.Len(t, tree.Modules, 1)
	require.Len(t, tree.Modules[0].LearningObjectives, 1)

	cols := svc.Columns()
	assert.Len(t, cols.Topics, 1)
	assert.Len(t, cols.Subtopics, 1)
}

func TestCurriculumService_ErrorsPassThroughTyped(t *testing.T) {
	_, svc := newCurriculumFixture(t)

	var notFound *store.NotFoundError
	_, err := svc.UpdateTopic("topic-missing", models.UpdateTopicRequest{})
	require.ErrorAs(t, err, &notFound)

	var invalidParent *store.InvalidParentError
	_, err = svc.CreateTopic(models.AddTopicRequest{LOID: "lo-missing", Title: "Charts"})
	require.ErrorAs(t, err, &invalidParent)

	_, err = svc.TopicSerial("topic-missing")
	assert.ErrorAs(t, err, &notFound)
}

func TestCurriculumService_RelinkChangesSerials(t *testing.T) {
	_, svc := newCurriculumFixture(t)

	m, err := svc.CreateModule(models.AddModuleRequest{Name: "Navigation"})
	require.NoError(t, err)
	lo1, err := svc.CreateObjective(models.AddLearningObjectiveRequest{ModuleID: m.ID, Verb: "Plot", Description: "a course"})
	require.NoError(t, err)
	lo2, err := svc.CreateObjective(models.AddLearningObjectiveRequest{ModuleID: m.ID, Verb: "Read", Description: "the weather"})
	require.NoError(t, err)
	topic, err := svc.CreateTopic(models.AddTopicRequest{LOID: lo1.ID, Title: "Charts"})
	require.NoError(t, err)

	require.NoError(t, svc.RelinkTopic(topic.ID, models.RelinkRequest{LOID: lo2.ID}))
	got, err := svc.TopicSerial(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "2.1", got)

	require.NoError(t, svc.RelinkTopic(topic.ID, models.RelinkRequest{}))
	got, err = svc.TopicSerial(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "x.1", got)
}

func TestCurriculumService_LinkedCriteriaByTarget(t *testing.T) {
	_, svc := newCurriculumFixture(t)

	lesson, err := svc.CreateLesson(models.AddLessonRequest{Title: "Coastal passage", Type: models.LessonTypeInstructorLed})
	require.NoError(t, err)
	pc, err := svc.CreateCriteria(models.AddPerformanceCriteriaRequest{Description: "Plots a fix"})
	require.NoError(t, err)
	require.NoError(t, svc.Link(models.LinkRequest{PCID: pc.ID, TargetType: models.NodeTypeLesson, TargetID: lesson.ID}))

	links := svc.LinkedCriteria(lesson.ID)
	require.Len(t, links, 1)
	assert.Equal(t, pc.ID, links[0].PCID)

	// an entity with no links reads as empty, not as an error
	assert.Empty(t, svc.LinkedCriteria("lesson-missing"))
}

func TestCurriculumService_SlidesAndLibrary(t *testing.T) {
	_, svc := newCurriculumFixture(t)

	lesson, err := svc.CreateLesson(models.AddLessonRequest{Title: "Coastal passage", Type: models.LessonTypeInstructorLed})
	require.NoError(t, err)

	slide, err := svc.CreateSlide(models.AddSlideRequest{LessonID: lesson.ID, Type: models.SlideTypeAgenda})
	require.NoError(t, err)
	notes := "Hand out the worked example first"
	updated, err := svc.UpdateSlide(slide.ID, models.UpdateSlideRequest{InstructorNotes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.InstructorNotes)

	deck, err := svc.Slides(lesson.ID)
	require.NoError(t, err)
	require.Len(t, deck, 1)

	library := svc.Library()
	require.Len(t, library, 1)
	assert.True(t, library[0].MissingObjectives)

	_, err = svc.Slides("lesson-missing")
	var notFound *store.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
