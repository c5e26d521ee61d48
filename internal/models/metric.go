// ABOUTME: Metric entry model for body measurements like weight and body fat.
// ABOUTME: Entries are append-only; "latest" means max by (date, then createdAt).
package models

import "github.com/google/uuid"

// MetricType represents the type of body metric being recorded.
type MetricType string

const (
	MetricWeight  MetricType = "weight"
	MetricBodyFat MetricType = "bodyFat"
)

// MetricUnits maps metric types to their default units.
var MetricUnits = map[MetricType]string{
	MetricWeight:  "kg",
	MetricBodyFat: "%",
}

// AllMetricTypes returns all valid metric types.
var AllMetricTypes = []MetricType{MetricWeight, MetricBodyFat}

// IsValidMetricType checks if a string is a valid metric type.
func IsValidMetricType(s string) bool {
	for _, mt := range AllMetricTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// MetricEntry is a single recorded measurement. Multiple entries per
// (date, type) are permitted.
type MetricEntry struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	Type      MetricType `json:"type"`
	Value     float64    `json:"value"`
	Unit      string     `json:"unit"`
	CreatedAt int64      `json:"createdAt"`
	UpdatedAt int64      `json:"updatedAt"`
}

// NewMetricEntry creates a metric entry with the type's default unit.
func NewMetricEntry(date string, metricType MetricType, value float64) *MetricEntry {
	now := NowMillis()
	return &MetricEntry{
		ID:        uuid.NewString(),
		Date:      date,
		Type:      metricType,
		Value:     value,
		Unit:      MetricUnits[metricType],
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithUnit overrides the default unit.
func (m *MetricEntry) WithUnit(unit string) *MetricEntry {
	m.Unit = unit
	return m
}
