package validation

import (
	"fmt"
	"strings"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/constants"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// ValidateRecord checks a loaded or imported record against the expected
// schema. It returns a ValidationFailed error listing every problem found,
// or nil if the record is well-formed. Malformed records are surfaced, never
// silently discarded.
func ValidateRecord(rec models.UserRecord) error {
	var problems []string

	if rec.UserID == "" {
		problems = append(problems, "record has no user_id")
	}

	for id, goal := range rec.Goals {
		if goal.ID != id {
			problems = append(problems, fmt.Sprintf("goal %q keyed under %q", goal.ID, id))
		}
		if goal.Name == "" {
			problems = append(problems, fmt.Sprintf("goal %s has no name", id))
		}
		switch goal.Status {
		case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusArchived:
		default:
			problems = append(problems, fmt.Sprintf("goal %s has unknown status %q", id, goal.Status))
		}
		if goal.StartDate != "" && !timeutil.ValidateDateFormat(goal.StartDate) {
			problems = append(problems, fmt.Sprintf("goal %s has invalid start_date %q", id, goal.StartDate))
		}
		if goal.EndDate != "" && !timeutil.ValidateDateFormat(goal.EndDate) {
			problems = append(problems, fmt.Sprintf("goal %s has invalid end_date %q", id, goal.EndDate))
		}

		for _, cat := range models.Categories() {
			for _, item := range goal.Routines.List(cat) {
				if item.ID == "" {
					problems = append(problems, fmt.Sprintf("goal %s has a %s schedule with no id", id, cat))
				}
				if !timeutil.ValidateTimeFormat(item.Time) {
					problems = append(problems, fmt.Sprintf("goal %s schedule %s has invalid time %q", id, item.ID, item.Time))
				}
				if item.DurationMin <= 0 {
					problems = append(problems, fmt.Sprintf("goal %s schedule %s has non-positive duration", id, item.ID))
				}
			}
		}
		if goal.Routines.LastResetDate != "" && !timeutil.ValidateDateFormat(goal.Routines.LastResetDate) {
			problems = append(problems, fmt.Sprintf("goal %s has invalid last_reset_date %q", id, goal.Routines.LastResetDate))
		}

		for date := range goal.DailyProgress {
			if !timeutil.ValidateDateFormat(date) {
				problems = append(problems, fmt.Sprintf("goal %s has progress keyed by invalid date %q", id, date))
			}
		}

		for _, tx := range goal.Finance.Transactions {
			if tx.Type != models.TransactionIncome && tx.Type != models.TransactionExpense {
				problems = append(problems, fmt.Sprintf("goal %s transaction %s has unknown type %q", id, tx.ID, tx.Type))
			}
		}
	}

	if len(problems) > 0 {
		return apperr.ValidationFailed(nil, "record failed validation: %s", strings.Join(problems, "; "))
	}
	return nil
}

// NormalizeRecord fills defaults for unknown or missing fields so that
// records imported from older or partial exports load cleanly. Unknown
// fields are dropped by JSON decoding; missing ones are defaulted here.
func NormalizeRecord(rec *models.UserRecord) {
	if rec.Goals == nil {
		rec.Goals = make(map[string]models.Goal)
	}
	if rec.Version < 1 {
		rec.Version = 1
	}

	for id, goal := range rec.Goals {
		if goal.ID == "" {
			goal.ID = id
		}
		if goal.Status == "" {
			goal.Status = models.GoalStatusActive
		}
		if goal.DailyProgress == nil {
			goal.DailyProgress = make(map[string]models.DailyProgress)
		}
		if goal.Routines.Water.Goal <= 0 {
			goal.Routines.Water.Goal = constants.DefaultWaterGoal
		}
		for _, cat := range models.Categories() {
			items := goal.Routines.List(cat)
			for i := range items {
				if items[i].DurationMin <= 0 {
					items[i].DurationMin = constants.DefaultRoutineDuration
				}
				if !items[i].Icon.Valid() {
					items[i].Icon = defaultIcon(cat)
				}
			}
			goal.Routines.SetList(cat, items)
		}
		rec.Goals[id] = goal
	}
}

func defaultIcon(cat models.RoutineCategory) models.RoutineIcon {
	switch cat {
	case models.RoutineBath:
		return models.IconBath
	case models.RoutineExercise:
		return models.IconExercise
	case models.RoutineMeal:
		return models.IconMeal
	case models.RoutineTeeth:
		return models.IconTeeth
	case models.RoutineNap:
		return models.IconNap
	}
	return models.IconExercise
}
