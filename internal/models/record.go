package models

import "time"

// UserRecord is the full per-user account record: every goal and all tracked
// data hangs off this one document. It is loaded wholesale, mutated in
// memory, and written back through the storage provider.
type UserRecord struct {
	// Version is the optimistic-concurrency token. Conditional writes
	// compare it against the stored value and fail on mismatch instead of
	// silently losing a concurrent update.
	Version   int64           `json:"version"`
	UserID    string          `json:"user_id"`
	Goals     map[string]Goal `json:"goals"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewUserRecord returns an empty record for the given user.
func NewUserRecord(userID string) UserRecord {
	now := time.Now().UTC()
	return UserRecord{
		Version:   1,
		UserID:    userID,
		Goals:     make(map[string]Goal),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ActiveGoal returns the single active goal, if any.
func (r UserRecord) ActiveGoal() (Goal, bool) {
	for _, g := range r.Goals {
		if g.Status == GoalStatusActive {
			return g, true
		}
	}
	return Goal{}, false
}
