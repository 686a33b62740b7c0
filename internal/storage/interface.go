package storage

import (
	"errors"

	"github.com/goalpost/goalpost/internal/models"
)

// ErrVersionConflict is returned by SaveRecordIf when the stored record's
// version no longer matches the version the caller loaded. The caller should
// re-fetch and retry.
var ErrVersionConflict = errors.New("record version conflict")

// Provider is the persistence layer for per-user records. Each user owns one
// hierarchical record; mutations load it, modify it in memory, and write it
// back conditionally on the version loaded.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// GetRecord returns the record for userID. A missing user yields an
	// error satisfying apperr.IsNotFound.
	GetRecord(userID string) (models.UserRecord, error)

	// SaveRecord writes the record unconditionally, bumping its version.
	SaveRecord(userID string, rec models.UserRecord) error

	// SaveRecordIf writes the record only if the stored version equals
	// expectedVersion, bumping the version on success. Returns
	// ErrVersionConflict on mismatch.
	SaveRecordIf(userID string, rec models.UserRecord, expectedVersion int64) error

	// ListUsers returns every user ID with a stored record.
	ListUsers() ([]string, error)

	// Utils
	GetConfigPath() string
}
