package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

var testWindow = Window{StartHour: 8, EndHour: 17}

func scheduledLesson(id string, day, week int, start string, duration int) models.Lesson {
	return models.Lesson{
		ID:        id,
		Type:      models.LessonTypeInstructorLed,
		Duration:  duration,
		Scheduled: true,
		Day:       day,
		Week:      week,
		StartTime: start,
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in        string
		expected  int
		expectErr bool
	}{
		{in: "0800", expected: 480},
		{in: "0000", expected: 0},
		{in: "1730", expected: 1050},
		{in: "2359", expected: 1439},
		{in: "2400", expectErr: true},
		{in: "1261", expectErr: true},
		{in: "900", expectErr: true},
		{in: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := TimeToMinutes(tt.in)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "0800", MinutesToTime(480))
	assert.Equal(t, "0905", MinutesToTime(545))
	assert.Equal(t, "0000", MinutesToTime(0))
}

func TestSnap(t *testing.T) {
	tests := []struct {
		in       int
		expected int
	}{
		{in: 60, expected: 60},
		{in: 62, expected: 60},
		{in: 63, expected: 65},
		{in: 4, expected: 5},
		{in: 2, expected: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Snap(tt.in), "snap %d", tt.in)
	}
}

func TestFirstFit_FillsDayFrontToBack(t *testing.T) {
	var placed []models.Lesson
	for i, expected := range []string{"0800", "0900", "1000"} {
		p, ok := FirstFit(placed, 1, 60, testWindow)
		require.True(t, ok)
		assert.Equal(t, 1, p.Day)
		assert.Equal(t, expected, p.StartTime)
		assert.Equal(t, 60, p.Duration)
		placed = append(placed, scheduledLesson(string(rune('a'+i)), p.Day, p.Week, p.StartTime, p.Duration))
	}
}

func TestFirstFit_RollsOverToNextDay(t *testing.T) {
	// day 1 is packed to the close of the window
	full := []models.Lesson{scheduledLesson("a", 1, 1, "0800", 540)}

	p, ok := FirstFit(full, 1, 60, testWindow)
	require.True(t, ok)
	assert.Equal(t, 2, p.Day)
	assert.Equal(t, "0800", p.StartTime)
}

func TestFirstFit_ShrinksIntoPartialRemainder(t *testing.T) {
	// 45 minutes remain on day 1
	almost := []models.Lesson{scheduledLesson("a", 1, 1, "0800", 495)}

	p, ok := FirstFit(almost, 1, 60, testWindow)
	require.True(t, ok)
	assert.Equal(t, 1, p.Day)
	assert.Equal(t, "1615", p.StartTime)
	assert.Equal(t, 45, p.Duration)
}

func TestFirstFit_SignalsWhenWeekIsFull(t *testing.T) {
	var full []models.Lesson
	for day := 1; day <= DaysPerWeek; day++ {
		full = append(full, scheduledLesson(string(rune('a'+day)), day, 1, "0800", 540))
	}

	_, ok := FirstFit(full, 1, 30, testWindow)
	assert.False(t, ok)
}

func TestFirstFit_IgnoresOtherWeeks(t *testing.T) {
	other := []models.Lesson{scheduledLesson("a", 1, 2, "0800", 540)}

	p, ok := FirstFit(other, 1, 60, testWindow)
	require.True(t, ok)
	assert.Equal(t, 1, p.Day)
	assert.Equal(t, "0800", p.StartTime)
}

func TestResizeTrailing(t *testing.T) {
	tests := []struct {
		in       int
		expected int
	}{
		{in: 60, expected: 60},
		{in: 58, expected: 60},
		{in: 52, expected: 50},
		{in: 3, expected: 5},
		{in: 0, expected: 5},
		{in: -10, expected: 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ResizeTrailing(tt.in), "resize to %d", tt.in)
	}
}

func TestResizeLeading(t *testing.T) {
	tests := []struct {
		name             string
		currentStart     string
		currentDuration  int
		newStart         string
		expectedStart    string
		expectedDuration int
	}{
		{
			name:             "pulling the start earlier grows the lesson",
			currentStart:     "0900",
			currentDuration:  60,
			newStart:         "0830",
			expectedStart:    "0830",
			expectedDuration: 90,
		},
		{
			name:             "pushing the start later shrinks the lesson",
			currentStart:     "0900",
			currentDuration:  60,
			newStart:         "0930",
			expectedStart:    "0930",
			expectedDuration: 30,
		},
		{
			name:             "start snaps to the grid",
			currentStart:     "0900",
			currentDuration:  60,
			newStart:         "0913",
			expectedStart:    "0915",
			expectedDuration: 45,
		},
		{
			name:             "start never leaves the window",
			currentStart:     "0830",
			currentDuration:  60,
			newStart:         "0700",
			expectedStart:    "0800",
			expectedDuration: 90,
		},
		{
			name:             "the lesson never shrinks past the minimum",
			currentStart:     "0900",
			currentDuration:  60,
			newStart:         "1000",
			expectedStart:    "0955",
			expectedDuration: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, duration, err := ResizeLeading(tt.currentStart, tt.currentDuration, tt.newStart, testWindow)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedDuration, duration)
		})
	}
}

func TestWeekPlan(t *testing.T) {
	lessons := []models.Lesson{
		scheduledLesson("b", 1, 1, "0900", 60),
		scheduledLesson("a", 1, 1, "0800", 60),
		scheduledLesson("c", 3, 1, "0800", 30),
		scheduledLesson("d", 1, 2, "0800", 60), // other week
		{ID: "e", Duration: 60},                // unscheduled
	}

	plan := WeekPlan(lessons, 1)
	require.Len(t, plan, DaysPerWeek)
	require.Len(t, plan[0].Lessons, 2)
	assert.Equal(t, "a", plan[0].Lessons[0].ID)
	assert.Equal(t, "b", plan[0].Lessons[1].ID)
	require.Len(t, plan[2].Lessons, 1)
	assert.Equal(t, "c", plan[2].Lessons[0].ID)
	assert.Empty(t, plan[1].Lessons)
	assert.Empty(t, plan[3].Lessons)
	assert.Empty(t, plan[4].Lessons)
}

func TestDefaultDurations(t *testing.T) {
	assert.Equal(t, 30, models.LessonTypeBreak.DefaultDuration())
	assert.Equal(t, 60, models.LessonTypeInstructorLed.DefaultDuration())
	assert.Equal(t, 60, models.LessonTypeWorkshop.DefaultDuration())
}
