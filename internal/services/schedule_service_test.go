package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/identity"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/schedule"
	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/store"
)

func newScheduleFixture(t *testing.T) (*store.Store, *scheduleService) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	s := store.New(identity.NewGenerator(), logger)
	svc := NewScheduleService(s, schedule.Window{StartHour: 8, EndHour: 17}, logger)
	return s, svc
}

func TestScheduleService_PlaceFillsWeekInOrder(t *testing.T) {
	_, svc := newScheduleFixture(t)

	first, err := svc.Place(models.PlaceLessonRequest{Title: "Charts", Type: models.LessonTypeInstructorLed, Week: 1})
	require.NoError(t, err)
	require.True(t, first.Placed)
	assert.Equal(t, 1, first.Lesson.Day)
	assert.Equal(t, "0800", first.Lesson.StartTime)
	assert.Equal(t, 60, first.Lesson.Duration)

	second, err := svc.Place(models.PlaceLessonRequest{Title: "Morning break", Type: models.LessonTypeBreak, Week: 1})
	require.NoError(t, err)
	require.True(t, second.Placed)
	assert.Equal(t, 1, second.Lesson.Day)
	assert.Equal(t, "0900", second.Lesson.StartTime)
	assert.Equal(t, 30, second.Lesson.Duration, "breaks default to half a slot")

	third, err := svc.Place(models.PlaceLessonRequest{Title: "Tides", Type: models.LessonTypeWorkshop, Week: 1})
	require.NoError(t, err)
	require.True(t, third.Placed)
	assert.Equal(t, "0930", third.Lesson.StartTime)
}

func TestScheduleService_PlaceShrinksIntoRemainder(t *testing.T) {
	s, svc := newScheduleFixture(t)

	// leave 45 minutes on day 1 and fill days 2-5
	long, err := s.AddLesson(models.AddLessonRequest{Title: "Long block", Type: models.LessonTypePractical})
	require.NoError(t, err)
	d := 495
	_, err = s.UpdateLesson(long.ID, models.UpdateLessonRequest{Duration: &d})
	require.NoError(t, err)
	_, err = s.ScheduleLesson(long.ID, 1, 1, "0800")
	require.NoError(t, err)

	res, err := svc.Place(models.PlaceLessonRequest{Title: "Squeezed in", Type: models.LessonTypeDiscussion, Week: 1})
	require.NoError(t, err)
	require.True(t, res.Placed)
	assert.Equal(t, 1, res.Lesson.Day)
	assert.Equal(t, "1615", res.Lesson.StartTime)
	assert.Equal(t, 45, res.Lesson.Duration)
}

func TestScheduleService_PlaceReportsFullWeek(t *testing.T) {
	s, svc := newScheduleFixture(t)

	full := 540
	for day := 1; day <= schedule.DaysPerWeek; day++ {
		l, err := s.AddLesson(models.AddLessonRequest{Title: "Block", Type: models.LessonTypePractical, Duration: &full})
		require.NoError(t, err)
		_, err = s.ScheduleLesson(l.ID, day, 1, "0800")
		require.NoError(t, err)
	}

	res, err := svc.Place(models.PlaceLessonRequest{Title: "No room", Type: models.LessonTypeDiscussion, Week: 1})
	require.NoError(t, err)
	assert.False(t, res.Placed)

	// the lesson still exists, unscheduled, in the library
	got, err := s.Lesson(res.Lesson.ID)
	require.NoError(t, err)
	assert.False(t, got.Scheduled)
}

func TestScheduleService_PlaceExisting(t *testing.T) {
	s, svc := newScheduleFixture(t)
	l, err := s.AddLesson(models.AddLessonRequest{Title: "From the library", Type: models.LessonTypeDiscussion})
	require.NoError(t, err)

	res, err := svc.PlaceExisting(l.ID, 2)
	require.NoError(t, err)
	require.True(t, res.Placed)
	assert.Equal(t, 1, res.Lesson.Day)
	assert.Equal(t, 2, res.Lesson.Week)
	assert.Equal(t, "0800", res.Lesson.StartTime)
}

func TestScheduleService_Reposition(t *testing.T) {
	s, svc := newScheduleFixture(t)
	l, err := s.AddLesson(models.AddLessonRequest{Title: "Charts", Type: models.LessonTypeInstructorLed})
	require.NoError(t, err)

	moved, err := svc.Reposition(l.ID, models.RepositionRequest{Day: 3, Week: 1, StartTime: "1012"})
	require.NoError(t, err)
	assert.Equal(t, 3, moved.Day)
	assert.Equal(t, "1010", moved.StartTime, "starts snap to the grid")

	var validation *store.ValidationError
	_, err = svc.Reposition(l.ID, models.RepositionRequest{Day: 6, Week: 1, StartTime: "0900"})
	require.ErrorAs(t, err, &validation)

	_, err = svc.Reposition(l.ID, models.RepositionRequest{Day: 1, Week: 1, StartTime: "1645"})
	require.ErrorAs(t, err, &validation, "the lesson would run past the window close")
}

func TestScheduleService_ResizeTrailing(t *testing.T) {
	s, svc := newScheduleFixture(t)
	l, err := s.AddLesson(models.AddLessonRequest{Title: "Charts", Type: models.LessonTypeInstructorLed})
	require.NoError(t, err)

	d := 47
	resized, err := svc.Resize(l.ID, models.ResizeRequest{Duration: &d})
	require.NoError(t, err)
	assert.Equal(t, 45, resized.Duration)

	tiny := 2
	resized, err = svc.Resize(l.ID, models.ResizeRequest{Duration: &tiny})
	require.NoError(t, err)
	assert.Equal(t, schedule.MinLessonMinutes, resized.Duration)
}

func TestScheduleService_ResizeTrailingClampsToWindow(t *testing.T) {
	s, svc := newScheduleFixture(t)
	l, err := s.AddLesson(models.AddLessonRequest{Title: "Charts", Type: models.LessonTypeInstructorLed})
	require.NoError(t, err)
	_, err = s.ScheduleLesson(l.ID, 1, 1, "1600")
	require.NoError(t, err)

	d := 180
	resized, err := svc.Resize(l.ID, models.ResizeRequest{Duration: &d})
	require.NoError(t, err)
	assert.Equal(t, 60, resized.Duration, "the lesson cannot run past the window close")
}

func TestScheduleService_ResizeLeading(t *testing.T) {
	s, svc := newScheduleFixture(t)
	l, err := s.AddLesson(models.AddLessonRequest{Title: "Charts", Type: models.LessonTypeInstructorLed})
	require.NoError(t, err)
	_, err = s.ScheduleLesson(l.ID, 2, 1, "0900")
	require.NoError(t, err)

	start := "0830"
	resized, err := svc.Resize(l.ID, models.ResizeRequest{StartTime: &start})
	require.NoError(t, err)
	assert.Equal(t, "0830", resized.StartTime)
	assert.Equal(t, 90, resized.Duration, "the end of the lesson stays fixed")

	// a library lesson has no leading edge
	library, err := s.AddLesson(models.AddLessonRequest{Title: "Unscheduled", Type: models.LessonTypeDiscussion})
	require.NoError(t, err)
	var validation *store.ValidationError
	_, err = svc.Resize(library.ID, models.ResizeRequest{StartTime: &start})
	require.ErrorAs(t, err, &validation)
}

func TestScheduleService_ResizeNeedsOneEdge(t *testing.T) {
	s, svc := newScheduleFixture(t)
	l, err := s.AddLesson(models.AddLessonRequest{Title: "Charts", Type: models.LessonTypeInstructorLed})
	require.NoError(t, err)

	var validation *store.ValidationError
	_, err = svc.Resize(l.ID, models.ResizeRequest{})
	require.ErrorAs(t, err, &validation)
}

func TestScheduleService_UnscheduleAndWeek(t *testing.T) {
	_, svc := newScheduleFixture(t)

	placed, err := svc.Place(models.PlaceLessonRequest{Title: "Charts", Type: models.LessonTypeInstructorLed, Week: 1})
	require.NoError(t, err)
	require.True(t, placed.Placed)

	week, err := svc.Week(1)
	require.NoError(t, err)
	require.Len(t, week, schedule.DaysPerWeek)
	require.Len(t, week[0].Lessons, 1)

	lifted, err := svc.Unschedule(placed.Lesson.ID)
	require.NoError(t, err)
	assert.False(t, lifted.Scheduled)

	week, err = svc.Week(1)
	require.NoError(t, err)
	assert.Empty(t, week[0].Lessons)
}
