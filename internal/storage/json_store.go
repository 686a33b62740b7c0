package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/models"
)

// Store is the on-disk shape of the JSON store: one record per user.
type Store struct {
	Version int                          `json:"version"`
	Users   map[string]models.UserRecord `json:"users"`
}

// JSONStore persists all user records in a single pretty-printed JSON file.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Users:   make(map[string]models.UserRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'goalpost init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Malformed persisted data surfaces as a validation failure; the
		// store is never silently reinitialized.
		return apperr.ValidationFailed(err, "failed to parse storage at %s", s.path)
	}

	// Ensure maps are initialized
	if s.store.Users == nil {
		s.store.Users = make(map[string]models.UserRecord)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetRecord(userID string) (models.UserRecord, error) {
	if s.store == nil {
		return models.UserRecord{}, fmt.Errorf("storage not loaded")
	}

	rec, ok := s.store.Users[userID]
	if !ok {
		return models.UserRecord{}, apperr.NotFound("user record not found: %s", userID)
	}
	if rec.Goals == nil {
		rec.Goals = make(map[string]models.Goal)
	}

	return rec, nil
}

func (s *JSONStore) SaveRecord(userID string, rec models.UserRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	rec.UserID = userID
	rec.Version++
	rec.UpdatedAt = time.Now().UTC()
	s.store.Users[userID] = rec
	return s.save()
}

func (s *JSONStore) SaveRecordIf(userID string, rec models.UserRecord, expectedVersion int64) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if existing, ok := s.store.Users[userID]; ok && existing.Version != expectedVersion {
		return ErrVersionConflict
	}

	return s.SaveRecord(userID, rec)
}

func (s *JSONStore) ListUsers() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	users := make([]string, 0, len(s.store.Users))
	for id := range s.store.Users {
		users = append(users, id)
	}
	return users, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
