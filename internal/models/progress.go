package models

import "time"

type Satisfaction string

const (
	SatisfactionGreat Satisfaction = "great"
	SatisfactionGood  Satisfaction = "good"
	SatisfactionOkay  Satisfaction = "okay"
	SatisfactionPoor  Satisfaction = "poor"
)

// StopwatchSession is one timed effort session within a day.
type StopwatchSession struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
	DurationMin int       `json:"duration_min"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DailyProgress is the per-calendar-day log entry for a goal.
// EffortTimeMin is the denormalized sum of session durations, recomputed
// whenever a session is added or removed rather than on read.
type DailyProgress struct {
	Date          string             `json:"date"` // YYYY-MM-DD format
	Satisfaction  Satisfaction       `json:"satisfaction,omitempty"`
	Note          string             `json:"note,omitempty"`
	EffortTimeMin int                `json:"effort_time_min"`
	Sessions      []StopwatchSession `json:"sessions"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
