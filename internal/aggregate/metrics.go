// ABOUTME: Metric delta computations for summary cards.
// ABOUTME: Pure functions over repository query results; absence of data yields nil, never an error.
package aggregate

import "github.com/harperreed/fittrack/internal/models"

// MetricDelta computes the change between the latest entry and the
// entry closest on-or-before the date `days` back from it. Entries must
// be sorted by (date asc, createdAt asc), the MetricRepository.ListByType
// ordering. Returns nil when no baseline entry exists.
func MetricDelta(entries []*models.MetricEntry, days int) *float64 {
	if len(entries) == 0 {
		return nil
	}

	latest := entries[len(entries)-1]
	target := models.AddDays(latest.Date, -days)

	// Entries are sorted ascending, so the last one at or before the
	// target date is the closest baseline.
	var baseline *models.MetricEntry
	for _, e := range entries {
		if e.Date > target {
			break
		}
		baseline = e
	}
	if baseline == nil {
		return nil
	}

	delta := latest.Value - baseline.Value
	return &delta
}

// WeeklyDelta is MetricDelta over a 7-day offset.
func WeeklyDelta(entries []*models.MetricEntry) *float64 {
	return MetricDelta(entries, 7)
}

// MonthlyDelta is MetricDelta over a 30-day offset.
func MonthlyDelta(entries []*models.MetricEntry) *float64 {
	return MetricDelta(entries, 30)
}
