// Package service implements the per-domain update functions over the
// per-user record. Every mutation follows the same pattern: load the record,
// verify the target goal exists, modify in memory, and write back
// conditionally on the version that was loaded, retrying once if a
// concurrent writer got there first.
package service

import (
	"errors"
	"time"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/constants"
	"github.com/goalpost/goalpost/internal/logger"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/storage"
)

// Service exposes all domain operations against one storage provider.
type Service struct {
	store     storage.Provider
	timezone  string
	waterGoal int
}

// New creates a Service. timezone is an IANA name or "Local" and determines
// calendar-day boundaries for the daily reset. waterGoal seeds the daily
// water target of new goals; non-positive values fall back to the default.
func New(store storage.Provider, timezone string, waterGoal int) *Service {
	if waterGoal <= 0 {
		waterGoal = constants.DefaultWaterGoal
	}
	return &Service{
		store:     store,
		timezone:  timezone,
		waterGoal: waterGoal,
	}
}

// Record returns the user's record, creating an empty one on first use.
func (s *Service) Record(userID string) (models.UserRecord, error) {
	if userID == "" {
		return models.UserRecord{}, apperr.InvalidInput("user id is required")
	}

	rec, err := s.store.GetRecord(userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			rec = models.NewUserRecord(userID)
			if saveErr := s.store.SaveRecord(userID, rec); saveErr != nil {
				return models.UserRecord{}, apperr.OperationFailed(saveErr, "failed to create record for %s", userID)
			}
			return s.store.GetRecord(userID)
		}
		return models.UserRecord{}, err
	}
	return rec, nil
}

// errUnchanged signals that fn left the record as-is so no write is needed.
var errUnchanged = errors.New("record unchanged")

// mutate loads the record, applies fn, and writes back conditionally on the
// loaded version. A single retry covers the common case of one concurrent
// writer; persistent conflicts surface as OperationFailed. fn may return
// errUnchanged to skip the write.
func (s *Service) mutate(userID string, fn func(rec *models.UserRecord) error) error {
	if userID == "" {
		return apperr.InvalidInput("user id is required")
	}

	for attempt := 0; attempt < 2; attempt++ {
		rec, err := s.Record(userID)
		if err != nil {
			return err
		}

		loadedVersion := rec.Version
		if err := fn(&rec); err != nil {
			if errors.Is(err, errUnchanged) {
				return nil
			}
			return err
		}

		err = s.store.SaveRecordIf(userID, rec, loadedVersion)
		if err == nil {
			return nil
		}
		if errors.Is(err, storage.ErrVersionConflict) {
			logger.Debug("Record version conflict, retrying", "user", userID, "version", loadedVersion)
			continue
		}
		return apperr.OperationFailed(err, "failed to save record for %s", userID)
	}

	return apperr.OperationFailed(storage.ErrVersionConflict, "record for %s kept changing under us", userID)
}

// mutateGoal is mutate scoped to one goal, with the NotFound check applied.
func (s *Service) mutateGoal(userID, goalID string, fn func(goal *models.Goal) error) error {
	if goalID == "" {
		return apperr.InvalidInput("goal id is required")
	}

	return s.mutate(userID, func(rec *models.UserRecord) error {
		goal, ok := rec.Goals[goalID]
		if !ok {
			return apperr.NotFound("goal not found: %s", goalID)
		}
		if err := fn(&goal); err != nil {
			return err
		}
		goal.UpdatedAt = time.Now().UTC()
		rec.Goals[goalID] = goal
		return nil
	})
}

// Goal returns one goal from the user's record.
func (s *Service) Goal(userID, goalID string) (models.Goal, error) {
	rec, err := s.Record(userID)
	if err != nil {
		return models.Goal{}, err
	}
	goal, ok := rec.Goals[goalID]
	if !ok {
		return models.Goal{}, apperr.NotFound("goal not found: %s", goalID)
	}
	return goal, nil
}
