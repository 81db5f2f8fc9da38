// Package stats derives streak and aggregate figures from a user's study
// session history. Every function is pure: given the same sessions and the
// same reference time, the result is always the same.
package stats

import (
	"math"
	"time"

	"studytrack/api/internal/models"
)

const dayKeyLayout = "2006-01-02"

// Summary holds the dashboard aggregates. Minutes are exact; rendering to
// hours happens at the edge.
type Summary struct {
	TodayMinutes  int
	TotalMinutes  int
	TotalSessions int
	CurrentStreak int
}

// DayKey truncates a timestamp to its UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// Compute builds the full summary relative to now.
func Compute(sessions []models.StudySession, now time.Time) Summary {
	today := DayKey(now)

	s := Summary{TotalSessions: len(sessions)}
	for _, session := range sessions {
		s.TotalMinutes += session.Duration
		if DayKey(session.Date) == today {
			s.TodayMinutes += session.Duration
		}
	}
	s.CurrentStreak = CurrentStreak(sessions, now)
	return s
}

// CurrentStreak counts consecutive calendar days with at least one session,
// walking backward from today. A day without a session stops the walk, so a
// session yesterday but none today yields 0. Multiple sessions on one day
// count once; a future-dated session counts on whatever day its date says.
func CurrentStreak(sessions []models.StudySession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(sessions))
	for _, session := range sessions {
		days[DayKey(session.Date)] = struct{}{}
	}

	streak := 0
	day := now
	for {
		if _, ok := days[DayKey(day)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// Hours renders minutes as hours with one decimal, the display convention
// used on the dashboard.
func Hours(minutes int) float64 {
	return math.Round(float64(minutes)/60.0*10) / 10
}
