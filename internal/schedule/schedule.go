// Package schedule places lessons on the weekly timetable grid. The grid
// has five teaching days inside a configurable daily window; times are
// carried as "HHMM" strings and minutes-since-midnight internally.
package schedule

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/PrometheusDevCreator/Prometheus2.0-sub000/internal/models"
)

const (
	// DaysPerWeek is the number of teaching days on the grid
	DaysPerWeek = 5
	// SnapMinutes is the grid resolution: starts and durations snap to it
	SnapMinutes = 5
	// MinLessonMinutes is the shortest a lesson can get through resizing
	MinLessonMinutes = 5
)

// Window is the teaching window of one day, in whole hours
type Window struct {
	StartHour int
	EndHour   int
}

// StartMinutes returns the window opening in minutes since midnight
func (w Window) StartMinutes() int { return w.StartHour * 60 }

// EndMinutes returns the window close in minutes since midnight
func (w Window) EndMinutes() int { return w.EndHour * 60 }

// Placement is a resolved grid slot for a lesson. Duration can be
// shorter than requested when only part of a day remained.
type Placement struct {
	Day       int    `json:"day"`
	Week      int    `json:"week"`
	StartTime string `json:"startTime"`
	Duration  int    `json:"duration"`
}

// TimeToMinutes parses a "HHMM" grid time into minutes since midnight
func TimeToMinutes(t string) (int, error) {
	if len(t) != 4 {
		return 0, fmt.Errorf("invalid grid time %q: want HHMM", t)
	}
	var hh, mm int
	if _, err := fmt.Sscanf(t, "%2d%2d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid grid time %q: %w", t, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid grid time %q: out of range", t)
	}
	return hh*60 + mm, nil
}

// MinutesToTime formats minutes since midnight as a "HHMM" grid time
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d%02d", m/60, m%60)
}

// Snap rounds minutes to the nearest grid step
func Snap(minutes int) int {
	return ((minutes + SnapMinutes/2) / SnapMinutes) * SnapMinutes
}

// FirstFit finds the first slot for a new lesson of the given duration
// in a week: days are scanned in order, and on each day the lesson goes
// right after the last scheduled lesson. A day whose remaining window is
// shorter than the requested duration but not empty still takes the
// lesson, shrunk to what remains. When every day is full the second
// return is false and the lesson needs manual placement.
func FirstFit(scheduled []models.Lesson, week int, duration int, win Window) (Placement, bool) {
	for day := 1; day <= DaysPerWeek; day++ {
		start := win.StartMinutes()
		for _, l := range scheduled {
			if !l.Scheduled || l.Week != week || l.Day != day {
				continue
			}
			lessonStart, err := TimeToMinutes(l.StartTime)
			if err != nil {
				continue
			}
			if end := lessonStart + l.Duration; end > start {
				start = end
			}
		}
		remaining := win.EndMinutes() - start
		if remaining <= 0 {
			continue
		}
		placed := duration
		if remaining < duration {
			placed = remaining
		}
		return Placement{Day: day, Week: week, StartTime: MinutesToTime(start), Duration: placed}, true
	}
	return Placement{}, false
}

// ResizeTrailing resolves a trailing-edge resize: the new duration snaps
// to the grid and never drops under the minimum.
func ResizeTrailing(duration int) int {
	d := Snap(duration)
	if d < MinLessonMinutes {
		return MinLessonMinutes
	}
	return d
}

// ResizeLeading resolves a leading-edge resize: the end of the lesson
// stays fixed while the start moves. The start snaps to the grid and is
// kept inside the window and at least the minimum duration before the
// fixed end. Returns the new start time and duration.
func ResizeLeading(currentStart string, currentDuration int, newStart string, win Window) (string, int, error) {
	oldStart, err := TimeToMinutes(currentStart)
	if err != nil {
		return "", 0, err
	}
	start, err := TimeToMinutes(newStart)
	if err != nil {
		return "", 0, err
	}
	end := oldStart + currentDuration

	start = Snap(start)
	if start < win.StartMinutes() {
		start = win.StartMinutes()
	}
	if start > end-MinLessonMinutes {
		start = end - MinLessonMinutes
	}
	return MinutesToTime(start), end - start, nil
}

// DayPlan is the ordered list of lessons on one day of a week
type DayPlan struct {
	Day     int             `json:"day"`
	Lessons []models.Lesson `json:"lessons"`
}

// WeekPlan lists the lessons of one week grouped by day, each day in
// start time order
func WeekPlan(scheduled []models.Lesson, week int) []DayPlan {
	plan := make([]DayPlan, DaysPerWeek)
	for day := 1; day <= DaysPerWeek; day++ {
		lessons := lo.Filter(scheduled, func(l models.Lesson, _ int) bool {
			return l.Scheduled && l.Week == week && l.Day == day
		})
		sort.Slice(lessons, func(i, j int) bool { return lessons[i].StartTime < lessons[j].StartTime })
		plan[day-1] = DayPlan{Day: day, Lessons: lessons}
	}
	return plan
}
