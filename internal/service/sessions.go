package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/constants"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// recomputeEffort refreshes the day's denormalized effort aggregate from its
// sessions. Stored on write rather than summed on read.
func recomputeEffort(day *models.DailyProgress) {
	total := 0
	for _, sess := range day.Sessions {
		total += sess.DurationMin
	}
	day.EffortTimeMin = total
}

// dayEntry returns the progress entry for date, creating it if absent.
func dayEntry(goal *models.Goal, date string) models.DailyProgress {
	if goal.DailyProgress == nil {
		goal.DailyProgress = make(map[string]models.DailyProgress)
	}
	day, ok := goal.DailyProgress[date]
	if !ok {
		now := time.Now().UTC()
		day = models.DailyProgress{Date: date, CreatedAt: now, UpdatedAt: now}
	}
	return day
}

// AddSession records a stopwatch session against a day's progress entry and
// recomputes the day's effort total in the same write.
func (s *Service) AddSession(userID, goalID string, startedAt, endedAt time.Time, note string) (models.StopwatchSession, error) {
	if endedAt.Before(startedAt) {
		return models.StopwatchSession{}, apperr.InvalidInput("session end must not precede its start")
	}

	loc, err := timeutil.LoadLocation(s.timezone)
	if err != nil {
		return models.StopwatchSession{}, apperr.InvalidInput("invalid timezone: %v", err)
	}
	date := startedAt.In(loc).Format(constants.DateFormat)

	sess := models.StopwatchSession{
		ID:          uuid.New().String(),
		StartedAt:   startedAt,
		EndedAt:     endedAt,
		DurationMin: int(endedAt.Sub(startedAt).Minutes()),
		Note:        note,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		day := dayEntry(goal, date)
		day.Sessions = append(day.Sessions, sess)
		recomputeEffort(&day)
		day.UpdatedAt = time.Now().UTC()
		goal.DailyProgress[date] = day
		return nil
	})
	if err != nil {
		return models.StopwatchSession{}, err
	}
	return sess, nil
}

// DeleteSession removes a stopwatch session from a day and recomputes the
// day's effort total.
func (s *Service) DeleteSession(userID, goalID, date, sessionID string) error {
	if !timeutil.ValidateDateFormat(date) {
		return apperr.InvalidInput("invalid date: %s", date)
	}

	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		day, ok := goal.DailyProgress[date]
		if !ok {
			return apperr.NotFound("no progress logged for %s", date)
		}

		filtered := day.Sessions[:0:0]
		found := false
		for _, sess := range day.Sessions {
			if sess.ID == sessionID {
				found = true
				continue
			}
			filtered = append(filtered, sess)
		}
		if !found {
			return apperr.NotFound("session not found: %s", sessionID)
		}

		day.Sessions = filtered
		recomputeEffort(&day)
		day.UpdatedAt = time.Now().UTC()
		goal.DailyProgress[date] = day
		return nil
	})
}

// LogProgress upserts the satisfaction and note for a day, preserving any
// sessions already recorded against it.
func (s *Service) LogProgress(userID, goalID, date string, satisfaction models.Satisfaction, note string) error {
	if date == "" {
		today, err := timeutil.Today(s.timezone)
		if err != nil {
			return apperr.InvalidInput("invalid timezone: %v", err)
		}
		date = today
	} else if !timeutil.ValidateDateFormat(date) {
		return apperr.InvalidInput("invalid date: %s", date)
	}

	switch satisfaction {
	case "", models.SatisfactionGreat, models.SatisfactionGood, models.SatisfactionOkay, models.SatisfactionPoor:
	default:
		return apperr.InvalidInput("unknown satisfaction level: %s", satisfaction)
	}

	return s.mutateGoal(userID, goalID, func(goal *models.Goal) error {
		day := dayEntry(goal, date)
		if satisfaction != "" {
			day.Satisfaction = satisfaction
		}
		if note != "" {
			day.Note = note
		}
		day.UpdatedAt = time.Now().UTC()
		goal.DailyProgress[date] = day
		return nil
	})
}
