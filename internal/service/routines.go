package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/constants"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// AddScheduleInput carries the fields for a new schedule item.
type AddScheduleInput struct {
	Label       string
	Time        string // HH:MM
	DurationMin int
	Icon        models.RoutineIcon
}

// AddSchedule adds a recurring daily task to one of the goal's routine
// lists.
func (s *Service) AddSchedule(userID, goalID string, cat models.RoutineCategory, in AddScheduleInput) (models.ScheduledRoutine, error) {
	if in.Label == "" {
		return models.ScheduledRoutine{}, apperr.InvalidInput("schedule label is required")
	}
	if !timeutil.ValidateTimeFormat(in.Time) {
		return models.ScheduledRoutine{}, apperr.InvalidInput("schedule time must be HH:MM")
	}
	if in.DurationMin <= 0 {
		in.DurationMin = constants.DefaultRoutineDuration
	}
	if !in.Icon.Valid() {
		return models.ScheduledRoutine{}, apperr.InvalidInput("unknown icon: %s", in.Icon)
	}
	if categoryValid(cat) != nil {
		return models.ScheduledRoutine{}, categoryValid(cat)
	}

	now := time.Now().UTC()
	item := models.ScheduledRoutine{
		ID:          uuid.New().String(),
		Label:       in.Label,
		Time:        in.Time,
		DurationMin: in.DurationMin,
		Icon:        in.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.Routines.SetList(cat, append(goal.Routines.List(cat), item))
		return nil
	})
	if err != nil {
		return models.ScheduledRoutine{}, err
	}
	return item, nil
}

func categoryValid(cat models.RoutineCategory) error {
	for _, c := range models.Categories() {
		if c == cat {
			return nil
		}
	}
	return apperr.InvalidInput("unknown routine category: %s", cat)
}

// UpdateScheduleInput carries partial schedule updates; nil fields are left
// as-is.
type UpdateScheduleInput struct {
	Label       *string
	Time        *string
	DurationMin *int
	Icon        *models.RoutineIcon
}

// UpdateSchedule edits a schedule item in place.
func (s *Service) UpdateSchedule(userID, goalID string, cat models.RoutineCategory, itemID string, in UpdateScheduleInput) error {
	if err := categoryValid(cat); err != nil {
		return err
	}

	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		items := goal.Routines.List(cat)
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			if in.Label != nil {
				if *in.Label == "" {
					return apperr.InvalidInput("schedule label cannot be empty")
				}
				items[i].Label = *in.Label
			}
			if in.Time != nil {
				if !timeutil.ValidateTimeFormat(*in.Time) {
					return apperr.InvalidInput("schedule time must be HH:MM")
				}
				items[i].Time = *in.Time
			}
			if in.DurationMin != nil {
				if *in.DurationMin <= 0 {
					return apperr.InvalidInput("schedule duration must be positive")
				}
				items[i].DurationMin = *in.DurationMin
			}
			if in.Icon != nil {
				if !in.Icon.Valid() {
					return apperr.InvalidInput("unknown icon: %s", *in.Icon)
				}
				items[i].Icon = *in.Icon
			}
			items[i].UpdatedAt = time.Now().UTC()
			goal.Routines.SetList(cat, items)
			return nil
		}
		return apperr.NotFound("schedule not found: %s", itemID)
	})
}

// ToggleSchedule flips a schedule item's completion for today.
func (s *Service) ToggleSchedule(userID, goalID string, cat models.RoutineCategory, itemID string) error {
	if err := categoryValid(cat); err != nil {
		return err
	}

	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		items := goal.Routines.List(cat)
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			now := time.Now().UTC()
			items[i].Completed = !items[i].Completed
			if items[i].Completed {
				items[i].CompletedAt = &now
			} else {
				items[i].CompletedAt = nil
			}
			items[i].UpdatedAt = now
			goal.Routines.SetList(cat, items)
			return nil
		}
		return apperr.NotFound("schedule not found: %s", itemID)
	})
}

// DeleteSchedule removes a schedule item from its category list.
func (s *Service) DeleteSchedule(userID, goalID string, cat models.RoutineCategory, itemID string) error {
	if err := categoryValid(cat); err != nil {
		return err
	}

	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		items := goal.Routines.List(cat)
		filtered := items[:0:0]
		found := false
		for _, item := range items {
			if item.ID == itemID {
				found = true
				continue
			}
			filtered = append(filtered, item)
		}
		if !found {
			return apperr.NotFound("schedule not found: %s", itemID)
		}
		goal.Routines.SetList(cat, filtered)
		return nil
	})
}

// SetSleep sets the goal's target sleep window.
func (s *Service) SetSleep(userID, goalID, bedtime, wakeTime string) error {
	if bedtime != "" && !timeutil.ValidateTimeFormat(bedtime) {
		return apperr.InvalidInput("bedtime must be HH:MM")
	}
	if wakeTime != "" && !timeutil.ValidateTimeFormat(wakeTime) {
		return apperr.InvalidInput("wake time must be HH:MM")
	}

	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		if bedtime != "" {
			goal.Routines.Sleep.Bedtime = bedtime
		}
		if wakeTime != "" {
			goal.Routines.Sleep.WakeTime = wakeTime
		}
		return nil
	})
}

// LogWater adjusts today's water count by delta glasses, clamped at zero.
func (s *Service) LogWater(userID, goalID string, delta int) (models.WaterTracker, error) {
	var water models.WaterTracker
	err := s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.Routines.Water.Completed += delta
		if goal.Routines.Water.Completed < 0 {
			goal.Routines.Water.Completed = 0
		}
		if goal.Routines.Water.Goal <= 0 {
			goal.Routines.Water.Goal = constants.DefaultWaterGoal
		}
		water = goal.Routines.Water
		return nil
	})
	if err != nil {
		return models.WaterTracker{}, err
	}
	return water, nil
}

// SetWaterGoal changes the daily water target.
func (s *Service) SetWaterGoal(userID, goalID string, glasses int) error {
	if glasses <= 0 {
		return apperr.InvalidInput("water goal must be positive")
	}
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		goal.Routines.Water.Goal = glasses
		return nil
	})
}
