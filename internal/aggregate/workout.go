// ABOUTME: Workout rollups over date ranges for dashboard cards.
// ABOUTME: Session counts against a weekly goal plus a fixed Monday-start 7-day grid.
package aggregate

import "github.com/harperreed/fittrack/internal/models"

// WeekRollup summarizes workout activity for one Monday-start week.
type WeekRollup struct {
	WeekStart    string
	SessionCount int
	Goal         int
	GoalMet      bool
	// Days marks which days of the week have a session, Monday first.
	Days [7]bool
}

// RollupWeek computes the rollup for the week containing date. Sessions
// outside the week are ignored, so callers may pass a broader range.
func RollupWeek(sessions []*models.WorkoutSession, date string, goal int) WeekRollup {
	start := models.MondayOf(date)
	end := models.AddDays(start, 6)

	r := WeekRollup{WeekStart: start, Goal: goal}
	for _, s := range sessions {
		if s.Date < start || s.Date > end {
			continue
		}
		r.SessionCount++
		for i := 0; i < 7; i++ {
			if s.Date == models.AddDays(start, i) {
				r.Days[i] = true
				break
			}
		}
	}
	r.GoalMet = goal > 0 && r.SessionCount >= goal
	return r
}

// SessionCountInRange counts sessions with start <= date <= end.
func SessionCountInRange(sessions []*models.WorkoutSession, start, end string) int {
	n := 0
	for _, s := range sessions {
		if s.Date >= start && s.Date <= end {
			n++
		}
	}
	return n
}

// TotalVolume sums weight x reps across sets.
func TotalVolume(sets []*models.WorkoutSet) float64 {
	var v float64
	for _, s := range sets {
		v += s.Weight * float64(s.Reps)
	}
	return v
}
