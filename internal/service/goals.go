package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// CreateGoalInput carries the fields for a new goal.
type CreateGoalInput struct {
	Name        string
	Description string
	StartDate   string // YYYY-MM-DD, defaults to today
	EndDate     string // YYYY-MM-DD, optional deadline
}

// CreateGoal creates a new active goal. Only one goal may be active at a
// time; creating a second one fails until the first is completed or
// archived.
func (s *Service) CreateGoal(userID string, in CreateGoalInput) (models.Goal, error) {
	if in.Name == "" {
		return models.Goal{}, apperr.InvalidInput("goal name is required")
	}
	if in.StartDate != "" && !timeutil.ValidateDateFormat(in.StartDate) {
		return models.Goal{}, apperr.InvalidInput("invalid start date: %s", in.StartDate)
	}
	if in.EndDate != "" && !timeutil.ValidateDateFormat(in.EndDate) {
		return models.Goal{}, apperr.InvalidInput("invalid end date: %s", in.EndDate)
	}

	if in.StartDate == "" {
		today, err := timeutil.Today(s.timezone)
		if err != nil {
			return models.Goal{}, apperr.InvalidInput("invalid timezone: %v", err)
		}
		in.StartDate = today
	}

	now := time.Now().UTC()
	goal := models.Goal{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Status:        models.GoalStatusActive,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		DailyProgress: make(map[string]models.DailyProgress),
		Routines: models.RoutineSettings{
			Water: models.WaterTracker{Goal: s.waterGoal},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutate(userID, func(rec *models.UserRecord) error {
		if existing, ok := rec.ActiveGoal(); ok {
			return apperr.InvalidInput("goal %q is already active; complete or archive it first", existing.Name)
		}
		rec.Goals[goal.ID] = goal
		return nil
	})
	if err != nil {
		return models.Goal{}, err
	}

	return goal, nil
}

// UpdateGoalInput carries partial goal updates; nil fields are left as-is.
type UpdateGoalInput struct {
	Name        *string
	Description *string
	EndDate     *string
}

// UpdateGoal applies partial updates to a goal.
func (s *Service) UpdateGoal(userID, goalID string, in UpdateGoalInput) error {
	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		if in.Name != nil {
			if *in.Name == "" {
				return apperr.InvalidInput("goal name cannot be empty")
			}
			goal.Name = *in.Name
		}
		if in.Description != nil {
			goal.Description = *in.Description
		}
		if in.EndDate != nil {
			if *in.EndDate != "" && !timeutil.ValidateDateFormat(*in.EndDate) {
				return apperr.InvalidInput("invalid end date: %s", *in.EndDate)
			}
			goal.EndDate = *in.EndDate
		}
		return nil
	})
}

// SetGoalStatus transitions a goal between active, completed, and archived.
// Activating a goal fails while another goal is active.
func (s *Service) SetGoalStatus(userID, goalID string, status models.GoalStatus) error {
	switch status {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusArchived:
	default:
		return apperr.InvalidInput("unknown goal status: %s", status)
	}

	return s.mutate(userID, func(rec *models.UserRecord) error {
		goal, ok := rec.Goals[goalID]
		if !ok {
			return apperr.NotFound("goal not found: %s", goalID)
		}

		if status == models.GoalStatusActive {
			if active, ok := rec.ActiveGoal(); ok && active.ID != goalID {
				return apperr.InvalidInput("goal %q is already active", active.Name)
			}
		}

		goal.Status = status
		goal.UpdatedAt = time.Now().UTC()
		rec.Goals[goalID] = goal
		return nil
	})
}

// DeleteGoal removes a goal and everything it owns.
func (s *Service) DeleteGoal(userID, goalID string) error {
	return s.mutate(userID, func(rec *models.UserRecord) error {
		if _, ok := rec.Goals[goalID]; !ok {
			return apperr.NotFound("goal not found: %s", goalID)
		}
		delete(rec.Goals, goalID)
		return nil
	})
}

// ListGoals returns every goal sorted by creation time, newest first.
func (s *Service) ListGoals(userID string) ([]models.Goal, error) {
	rec, err := s.Record(userID)
	if err != nil {
		return nil, err
	}

	goals := make([]models.Goal, 0, len(rec.Goals))
	for _, g := range rec.Goals {
		goals = append(goals, g)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}
