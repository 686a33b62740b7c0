package models

import "time"

// RoutineIcon is a closed enumeration of presentation glyphs for schedule
// items, resolved at compile time rather than by free-form string lookup.
type RoutineIcon string

const (
	IconBath     RoutineIcon = "bath"
	IconExercise RoutineIcon = "exercise"
	IconMeal     RoutineIcon = "meal"
	IconTeeth    RoutineIcon = "teeth"
	IconNap      RoutineIcon = "nap"
	IconWater    RoutineIcon = "water"
)

// Valid reports whether the icon is one of the known glyphs.
func (i RoutineIcon) Valid() bool {
	switch i {
	case IconBath, IconExercise, IconMeal, IconTeeth, IconNap, IconWater:
		return true
	}
	return false
}

// RoutineCategory identifies one of the per-goal schedule lists.
type RoutineCategory string

const (
	RoutineBath     RoutineCategory = "bath"
	RoutineExercise RoutineCategory = "exercise"
	RoutineMeal     RoutineCategory = "meal"
	RoutineTeeth    RoutineCategory = "teeth"
	RoutineNap      RoutineCategory = "nap"
)

// Categories lists every schedule category in display order.
func Categories() []RoutineCategory {
	return []RoutineCategory{RoutineBath, RoutineExercise, RoutineMeal, RoutineTeeth, RoutineNap}
}

// ScheduledRoutine is one recurring daily task within a routine category.
// Completed is meaningful only for "today": the daily reset clears it before
// the next day's occurrences are considered outstanding. There is no per-day
// history.
type ScheduledRoutine struct {
	ID          string      `json:"id"`
	Label       string      `json:"label"`
	Time        string      `json:"time"` // HH:MM, re-interpreted against "today" on every read
	DurationMin int         `json:"duration_min"`
	Icon        RoutineIcon `json:"icon"`
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// WaterTracker counts glasses of water for the current day.
type WaterTracker struct {
	Goal      int `json:"goal"`      // glasses per day
	Completed int `json:"completed"` // glasses drunk today, reset daily
}

// SleepSettings holds the target sleep window.
type SleepSettings struct {
	Bedtime  string `json:"bedtime,omitempty"`   // HH:MM format
	WakeTime string `json:"wake_time,omitempty"` // HH:MM format
}

// RoutineSettings holds every routine schedule list for one goal, plus the
// per-goal date guard for the daily reset.
type RoutineSettings struct {
	Bath     []ScheduledRoutine `json:"bath"`
	Exercise []ScheduledRoutine `json:"exercise"`
	Meals    []ScheduledRoutine `json:"meals"`
	Teeth    []ScheduledRoutine `json:"teeth"`
	Naps     []ScheduledRoutine `json:"naps"`
	Sleep    SleepSettings      `json:"sleep"`
	Water    WaterTracker       `json:"water"`

	// LastResetDate is the YYYY-MM-DD date the daily reset last ran for
	// this goal. Empty until the first reset.
	LastResetDate string `json:"last_reset_date,omitempty"`
}

// List returns the schedule list for the given category.
func (rs *RoutineSettings) List(cat RoutineCategory) []ScheduledRoutine {
	switch cat {
	case RoutineBath:
		return rs.Bath
	case RoutineExercise:
		return rs.Exercise
	case RoutineMeal:
		return rs.Meals
	case RoutineTeeth:
		return rs.Teeth
	case RoutineNap:
		return rs.Naps
	}
	return nil
}

// SetList replaces the schedule list for the given category.
func (rs *RoutineSettings) SetList(cat RoutineCategory, items []ScheduledRoutine) {
	switch cat {
	case RoutineBath:
		rs.Bath = items
	case RoutineExercise:
		rs.Exercise = items
	case RoutineMeal:
		rs.Meals = items
	case RoutineTeeth:
		rs.Teeth = items
	case RoutineNap:
		rs.Naps = items
	}
}

// All returns every schedule item across all categories.
func (rs *RoutineSettings) All() []ScheduledRoutine {
	var all []ScheduledRoutine
	for _, cat := range Categories() {
		all = append(all, rs.List(cat)...)
	}
	return all
}
