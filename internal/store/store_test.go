package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/identity"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	return New(identity.NewGenerator(), logger)
}

func mustModule(t *testing.T, s *Store, name string) models.Module {
	t.Helper()
	m, err := s.AddModule(models.AddModuleRequest{Name: name})
	require.NoError(t, err)
	return m
}

func mustLO(t *testing.T, s *Store, moduleID, description string) models.LearningObjective {
	t.Helper()
	lo, err := s.AddLearningObjective(models.AddLearningObjectiveRequest{
		ModuleID:    moduleID,
		Verb:        "Describe",
		Description: description,
	})
	require.NoError(t, err)
	return lo
}

func mustTopic(t *testing.T, s *Store, loID, title string) models.Topic {
	t.Helper()
	topic, err := s.AddTopic(models.AddTopicRequest{LOID: loID, Title: title})
	require.NoError(t, err)
	return topic
}

func mustSubtopic(t *testing.T, s *Store, topicID, title string) models.Subtopic {
	t.Helper()
	st, err := s.AddSubtopic(models.AddSubtopicRequest{TopicID: topicID, Title: title})
	require.NoError(t, err)
	return st
}

func mustLesson(t *testing.T, s *Store, title string) models.Lesson {
	t.Helper()
	l, err := s.AddLesson(models.AddLessonRequest{Title: title, Type: models.LessonTypeInstructorLed})
	require.NoError(t, err)
	return l
}

func TestStore_AddAssignsContiguousOrders(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")

	a := mustTopic(t, s, lo.ID, "Charts")
	b := mustTopic(t, s, lo.ID, "Compass work")
	c := mustTopic(t, s, lo.ID, "Tides")

	assert.Equal(t, 1, a.Order)
	assert.Equal(t, 2, b.Order)
	assert.Equal(t, 3, c.Order)
}

func TestStore_DeleteReflowsSiblingOrders(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	a := mustTopic(t, s, lo.ID, "Charts")
	b := mustTopic(t, s, lo.ID, "Compass work")
	c := mustTopic(t, s, lo.ID, "Tides")

	require.NoError(t, s.DeleteTopic(b.ID))

	topics := s.Topics(lo.ID)
	require.Len(t, topics, 2)
	assert.Equal(t, a.ID, topics[0].ID)
	assert.Equal(t, 1, topics[0].Order)
	assert.Equal(t, c.ID, topics[1].ID)
	assert.Equal(t, 2, topics[1].Order)
}

func TestStore_MoveTopicAppendsAndRenumbersBothGroups(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo1 := mustLO(t, s, m.ID, "Plot a course")
	lo2 := mustLO(t, s, m.ID, "Read the weather")
	a := mustTopic(t, s, lo1.ID, "Charts")
	b := mustTopic(t, s, lo1.ID, "Compass work")
	c := mustTopic(t, s, lo2.ID, "Fronts")

	require.NoError(t, s.RelinkTopic(a.ID, lo2.ID))

	// a lands at the end of the destination group
	dst := s.Topics(lo2.ID)
	require.Len(t, dst, 2)
	assert.Equal(t, c.ID, dst[0].ID)
	assert.Equal(t, 1, dst[0].Order)
	assert.Equal(t, a.ID, dst[1].ID)
	assert.Equal(t, 2, dst[1].Order)

	// the source group closes the gap
	src := s.Topics(lo1.ID)
	require.Len(t, src, 1)
	assert.Equal(t, b.ID, src[0].ID)
	assert.Equal(t, 1, src[0].Order)
}

func TestStore_MoveTopicToUnlinkedGroup(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	a := mustTopic(t, s, lo.ID, "Charts")
	loose := mustTopic(t, s, "", "Orphaned notes")

	require.NoError(t, s.RelinkTopic(a.ID, ""))

	unlinked := s.Topics("")
	require.Len(t, unlinked, 2)
	assert.Equal(t, loose.ID, unlinked[0].ID)
	assert.Equal(t, a.ID, unlinked[1].ID)
	assert.Equal(t, 2, unlinked[1].Order)
}

func TestStore_MoveWithExplicitPosition(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	a := mustTopic(t, s, lo.ID, "Charts")
	mustTopic(t, s, lo.ID, "Compass work")
	c := mustTopic(t, s, lo.ID, "Tides")

	first := 1
	require.NoError(t, s.MoveTopic(c.ID, lo.ID, &first))

	topics := s.Topics(lo.ID)
	require.Len(t, topics, 3)
	assert.Equal(t, c.ID, topics[0].ID)
	assert.Equal(t, a.ID, topics[1].ID)
	for i, topic := range topics {
		assert.Equal(t, i+1, topic.Order)
	}
}

func TestStore_UpdateRejectsImmutableFields(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	topic := mustTopic(t, s, lo.ID, "Charts")

	newID := "topic-forged"
	newGroup := lo.ID
	newOrder := 7

	tests := []struct {
		name  string
		req   models.UpdateTopicRequest
		field string
	}{
		{name: "id", req: models.UpdateTopicRequest{ID: &newID}, field: "id"},
		{name: "loId", req: models.UpdateTopicRequest{LOID: &newGroup}, field: "loId"},
		{name: "order", req: models.UpdateTopicRequest{Order: &newOrder}, field: "order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.UpdateTopic(topic.ID, tt.req)
			var immutable *ImmutableFieldError
			require.ErrorAs(t, err, &immutable)
			assert.Equal(t, tt.field, immutable.Field)
		})
	}

	// the failed updates left the topic untouched
	got, err := s.Topic(topic.ID)
	require.NoError(t, err)
	assert.Equal(t, topic, got)
}

func TestStore_UpdateAppliesMutableFields(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	topic := mustTopic(t, s, lo.ID, "Charts")

	title := "Paper charts"
	expanded := true
	got, err := s.UpdateTopic(topic.ID, models.UpdateTopicRequest{Title: &title, Expanded: &expanded})
	require.NoError(t, err)
	assert.Equal(t, "Paper charts", got.Title)
	assert.True(t, got.Expanded)
	assert.Equal(t, topic.Order, got.Order)
}

func TestStore_UpdateFailureLeavesEntityUntouched(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")

	// a patch with a valid verb and a blank description fails as a whole
	verb := "Explain"
	blank := "   "
	_, err := s.UpdateLearningObjective(lo.ID, models.UpdateLearningObjectiveRequest{
		Verb:        &verb,
		Description: &blank,
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	got, err := s.LearningObjective(lo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Describe", got.Verb)
	assert.Equal(t, "Plot a course", got.Description)
}

func TestStore_DeleteLearningObjectiveDetachesTopics(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo1 := mustLO(t, s, m.ID, "Plot a course")
	lo2 := mustLO(t, s, m.ID, "Read the weather")
	a := mustTopic(t, s, lo1.ID, "Charts")
	loose := mustTopic(t, s, "", "Orphaned notes")

	lesson := mustLesson(t, s, "Coastal passage")
	_, err := s.UpdateLesson(lesson.ID, models.UpdateLessonRequest{
		LearningObjectives: &[]string{lo1.ID},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteLearningObjective(lo1.ID))

	// topics survive in the unlinked group, after the existing ones
	unlinked := s.Topics("")
	require.Len(t, unlinked, 2)
	assert.Equal(t, loose.ID, unlinked[0].ID)
	assert.Equal(t, a.ID, unlinked[1].ID)

	// the surviving objective list closes the gap
	los := s.LearningObjectives(m.ID)
	require.Len(t, los, 1)
	assert.Equal(t, lo2.ID, los[0].ID)
	assert.Equal(t, 1, los[0].Order)

	// the lesson no longer claims the deleted objective
	got, err := s.Lesson(lesson.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LearningObjectives)
}

func TestStore_DeleteTopicCascades(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	topic := mustTopic(t, s, lo.ID, "Charts")
	st := mustSubtopic(t, s, topic.ID, "Symbols")

	lesson := mustLesson(t, s, "Coastal passage")
	_, err := s.UpdateLesson(lesson.ID, models.UpdateLessonRequest{Topics: &[]string{topic.ID}})
	require.NoError(t, err)

	pc, err := s.AddPerformanceCriteria(models.AddPerformanceCriteriaRequest{Description: "Identifies chart symbols"})
	require.NoError(t, err)
	require.NoError(t, s.Link(models.LinkRequest{PCID: pc.ID, TargetType: models.NodeTypeTopic, TargetID: topic.ID}))
	require.NoError(t, s.Link(models.LinkRequest{PCID: pc.ID, TargetType: models.NodeTypeSubtopic, TargetID: st.ID}))

	slide, err := s.AddSlide(models.AddSlideRequest{LessonID: lesson.ID, Type: models.SlideTypeAgenda})
	require.NoError(t, err)
	_, err = s.UpdateSlideBlock(slide.ID, models.UpdateSlideBlockRequest{Index: 0, SubtopicID: &st.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTopic(topic.ID))

	_, err = s.Subtopic(st.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	got, err := s.Lesson(lesson.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Topics)

	links, err := s.LinksFor(pc.ID)
	require.NoError(t, err)
	assert.Empty(t, links)

	gotSlide, err := s.Slide(slide.ID)
	require.NoError(t, err)
	assert.Empty(t, gotSlide.ContentBlocks[0].SubtopicID)
}

func TestStore_AddRejectsMissingParent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddTopic(models.AddTopicRequest{LOID: "lo-missing", Title: "Charts"})
	var invalid *InvalidParentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "lo-missing", invalid.ParentID)

	_, err = s.AddSubtopic(models.AddSubtopicRequest{TopicID: "topic-missing", Title: "Symbols"})
	assert.ErrorAs(t, err, &invalid)
}

func TestStore_DuplicateLesson(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	topic := mustTopic(t, s, lo.ID, "Charts")

	lesson := mustLesson(t, s, "Coastal passage")
	_, err := s.UpdateLesson(lesson.ID, models.UpdateLessonRequest{
		Topics:             &[]string{topic.ID},
		LearningObjectives: &[]string{lo.ID},
	})
	require.NoError(t, err)
	_, err = s.ScheduleLesson(lesson.ID, 2, 1, "0900")
	require.NoError(t, err)
	_, err = s.AddSlide(models.AddSlideRequest{LessonID: lesson.ID, Type: models.SlideTypeLessonTitle})
	require.NoError(t, err)

	dup, err := s.DuplicateLesson(lesson.ID)
	require.NoError(t, err)

	assert.NotEqual(t, lesson.ID, dup.ID)
	assert.Equal(t, "Coastal passage (Copy)", dup.Title)
	assert.False(t, dup.Scheduled)
	assert.Zero(t, dup.Day)
	assert.Empty(t, dup.StartTime)
	assert.Equal(t, []string{topic.ID}, dup.Topics)
	assert.Equal(t, []string{lo.ID}, dup.LearningObjectives)
	assert.Empty(t, s.Slides(dup.ID))
}

func TestStore_ScheduleAndUnschedule(t *testing.T) {
	s := newTestStore(t)
	lesson := mustLesson(t, s, "Coastal passage")

	scheduled, err := s.ScheduleLesson(lesson.ID, 3, 2, "1030")
	require.NoError(t, err)
	assert.True(t, scheduled.Scheduled)
	assert.Equal(t, 3, scheduled.Day)
	assert.Equal(t, 2, scheduled.Week)
	assert.Equal(t, "1030", scheduled.StartTime)

	unscheduled, err := s.UnscheduleLesson(lesson.ID)
	require.NoError(t, err)
	assert.False(t, unscheduled.Scheduled)
	assert.Zero(t, unscheduled.Day)
	assert.Empty(t, unscheduled.StartTime)
}

func TestStore_ScheduleLessonRejectsBadSlots(t *testing.T) {
	s := newTestStore(t)
	lesson := mustLesson(t, s, "Coastal passage")

	tests := []struct {
		name      string
		day, week int
		startTime string
	}{
		{name: "day past the teaching week", day: 6, week: 1, startTime: "0800"},
		{name: "day zero", day: 0, week: 1, startTime: "0800"},
		{name: "week zero", day: 1, week: 0, startTime: "0800"},
		{name: "malformed time", day: 1, week: 1, startTime: "8am"},
		{name: "out of range time", day: 1, week: 1, startTime: "2460"},
		{name: "empty time", day: 1, week: 1, startTime: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ScheduleLesson(lesson.ID, tt.day, tt.week, tt.startTime)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}

	got, err := s.Lesson(lesson.ID)
	require.NoError(t, err)
	assert.False(t, got.Scheduled)
}

func TestStore_LinkLifecycle(t *testing.T) {
	s := newTestStore(t)
	lesson := mustLesson(t, s, "Coastal passage")
	pc, err := s.AddPerformanceCriteria(models.AddPerformanceCriteriaRequest{Description: "Plots a fix"})
	require.NoError(t, err)

	req := models.LinkRequest{PCID: pc.ID, TargetType: models.NodeTypeLesson, TargetID: lesson.ID}
	require.NoError(t, s.Link(req))

	// linking twice fails and leaves a single link
	err = s.Link(req)
	var dup *DuplicateLinkError
	require.ErrorAs(t, err, &dup)
	links, err := s.LinksFor(pc.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	got, err := s.Lesson(lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{pc.ID}, got.PerformanceCriteria)

	// the target side reads the same link
	toLesson := s.LinksTo(lesson.ID)
	require.Len(t, toLesson, 1)
	assert.Equal(t, pc.ID, toLesson[0].PCID)

	// unlink removes the link and the lesson reference; repeating is a no-op
	require.NoError(t, s.Unlink(req))
	require.NoError(t, s.Unlink(req))
	links, err = s.LinksFor(pc.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
	assert.Empty(t, s.LinksTo(lesson.ID))
	got, err = s.Lesson(lesson.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PerformanceCriteria)
}

func TestStore_LinkRejectsBadTargets(t *testing.T) {
	s := newTestStore(t)
	pc, err := s.AddPerformanceCriteria(models.AddPerformanceCriteriaRequest{Description: "Plots a fix"})
	require.NoError(t, err)

	err = s.Link(models.LinkRequest{PCID: pc.ID, TargetType: models.NodeTypeModule, TargetID: "module-x"})
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)

	err = s.Link(models.LinkRequest{PCID: pc.ID, TargetType: models.NodeTypeLesson, TargetID: "lesson-missing"})
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	topic := mustTopic(t, s, lo.ID, "Charts")
	st := mustSubtopic(t, s, topic.ID, "Symbols")
	lesson := mustLesson(t, s, "Coastal passage")
	_, err := s.ScheduleLesson(lesson.ID, 1, 1, "0800")
	require.NoError(t, err)
	slide, err := s.AddSlide(models.AddSlideRequest{LessonID: lesson.ID, Type: models.SlideTypeAgenda})
	require.NoError(t, err)
	_, err = s.UpdateSlideBlock(slide.ID, models.UpdateSlideBlockRequest{Index: 1, SubtopicID: &st.ID})
	require.NoError(t, err)
	pc, err := s.AddPerformanceCriteria(models.AddPerformanceCriteriaRequest{Description: "Plots a fix"})
	require.NoError(t, err)
	require.NoError(t, s.Link(models.LinkRequest{PCID: pc.ID, TargetType: models.NodeTypeTopic, TargetID: topic.ID}))

	snap := s.Snapshot()

	other := newTestStore(t)
	require.NoError(t, other.Restore(snap))

	assert.Equal(t, snap, other.Snapshot())
	topics := other.Topics(lo.ID)
	require.Len(t, topics, 1)
	assert.Equal(t, topic.ID, topics[0].ID)
}

func TestStore_RestoreRejectsBrokenReferences(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	mustTopic(t, s, lo.ID, "Charts")

	snap := s.Snapshot()
	delete(snap.LearningObjectives, lo.ID)

	other := newTestStore(t)
	err := other.Restore(snap)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	// the failed restore left the target store empty
	assert.Empty(t, other.Modules())
	assert.Empty(t, other.AllTopics())
}

func TestSnapshotProblems_ListsEveryDanglingReference(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	topic := mustTopic(t, s, lo.ID, "Charts")
	lesson := mustLesson(t, s, "Coastal passage")
	_, err := s.UpdateLesson(lesson.ID, models.UpdateLessonRequest{
		Topics:             &[]string{topic.ID},
		LearningObjectives: &[]string{lo.ID},
	})
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Empty(t, SnapshotProblems(snap))

	// sever the objective: the topic and the lesson both dangle
	delete(snap.LearningObjectives, lo.ID)

	problems := SnapshotProblems(snap)
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0], "missing objective")
	assert.Contains(t, problems[1], "missing objective")
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := newTestStore(t)
	m := mustModule(t, s, "Navigation")
	lo := mustLO(t, s, m.ID, "Plot a course")
	topic := mustTopic(t, s, lo.ID, "Charts")

	snap := s.Snapshot()
	require.NoError(t, s.DeleteTopic(topic.ID))

	// mutations after the export do not leak into the snapshot
	assert.Contains(t, snap.Topics, topic.ID)
	assert.Len(t, snap.Modules, 1)
	assert.Contains(t, snap.Modules, m.ID)
}
