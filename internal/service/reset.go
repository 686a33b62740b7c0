package service

import (
	"time"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/logger"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// ResetResult reports what a daily reset pass changed.
type ResetResult struct {
	// GoalsReset lists the IDs of goals whose routines were reset
	GoalsReset []string
	// ItemsCleared counts schedule items whose completion was cleared
	ItemsCleared int
	// WaterReset counts goals whose water counter was zeroed
	WaterReset int
}

// Changed reports whether the pass wrote anything.
func (r ResetResult) Changed() bool {
	return len(r.GoalsReset) > 0
}

// DailyReset clears stale completion state once per calendar day. It runs on
// every record load boundary (not on every read): for each active goal whose
// LastResetDate differs from today in the configured timezone, every
// completed schedule item is cleared and a non-zero water counter is zeroed,
// then LastResetDate is set to today. Everything lands in one batched write;
// when no goal is due the write is skipped entirely, which makes repeated
// runs on the same day no-ops.
func (s *Service) DailyReset(userID string) (ResetResult, error) {
	today, err := timeutil.Today(s.timezone)
	if err != nil {
		return ResetResult{}, apperr.InvalidInput("invalid timezone: %v", err)
	}

	// mutate re-runs applyReset on the fresh record when a concurrent writer
	// forces a retry, so the result always reflects what was persisted
	var result ResetResult
	err = s.mutate(userID, func(rec *models.UserRecord) error {
		result = applyReset(rec, today)
		if !result.Changed() {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return ResetResult{}, err
	}
	if !result.Changed() {
		return result, nil
	}

	logger.Info("Daily reset applied",
		"user", userID,
		"goals", len(result.GoalsReset),
		"items_cleared", result.ItemsCleared,
		"water_reset", result.WaterReset)

	return result, nil
}

// applyReset mutates rec in place and reports what changed. Split out so the
// reset semantics are testable without a store.
func applyReset(rec *models.UserRecord, today string) ResetResult {
	var result ResetResult
	now := time.Now().UTC()

	for id, goal := range rec.Goals {
		// Archived and completed goals keep their state frozen
		if goal.Status != models.GoalStatusActive {
			continue
		}
		if goal.Routines.LastResetDate == today {
			continue
		}

		changed := false
		for _, cat := range models.Categories() {
			items := goal.Routines.List(cat)
			for i := range items {
				// Items already incomplete are left untouched: no
				// UpdatedAt churn
				if !items[i].Completed {
					continue
				}
				items[i].Completed = false
				items[i].CompletedAt = nil
				items[i].UpdatedAt = now
				result.ItemsCleared++
				changed = true
			}
			goal.Routines.SetList(cat, items)
		}

		if goal.Routines.Water.Completed != 0 {
			goal.Routines.Water.Completed = 0
			result.WaterReset++
			changed = true
		}

		// A goal with nothing to clear is skipped outright; the guard
		// date only advances alongside a real change so the pass never
		// writes needlessly
		if !changed {
			continue
		}

		goal.Routines.LastResetDate = today
		goal.UpdatedAt = now
		rec.Goals[id] = goal
		result.GoalsReset = append(result.GoalsReset, id)
	}

	return result
}
