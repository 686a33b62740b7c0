package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
	user_id    TEXT PRIMARY KEY,
	version    INTEGER NOT NULL DEFAULT 1,
	doc        TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLiteStore persists each user record as a JSON document in a versioned
// row, giving conditional writes through UPDATE ... WHERE version = ?.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'goalpost init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Schema creation is idempotent; running it on load covers stores
	// created by older versions.
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetRecord(userID string) (models.UserRecord, error) {
	row := s.db.QueryRow(`SELECT version, doc FROM records WHERE user_id = ?`, userID)

	var version int64
	var doc string
	if err := row.Scan(&version, &doc); err != nil {
		if err == sql.ErrNoRows {
			return models.UserRecord{}, apperr.NotFound("user record not found: %s", userID)
		}
		return models.UserRecord{}, fmt.Errorf("failed to read record: %w", err)
	}

	var rec models.UserRecord
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return models.UserRecord{}, apperr.ValidationFailed(err, "stored record for %s is malformed", userID)
	}
	// The row version is authoritative over whatever the document carries
	rec.Version = version
	rec.UserID = userID
	if rec.Goals == nil {
		rec.Goals = make(map[string]models.Goal)
	}

	return rec, nil
}

func (s *SQLiteStore) SaveRecord(userID string, rec models.UserRecord) error {
	rec.UserID = userID
	rec.Version++
	rec.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO records (user_id, version, doc, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			version = excluded.version,
			doc = excluded.doc,
			updated_at = excluded.updated_at`,
		userID, rec.Version, string(doc), rec.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return nil
}

func (s *SQLiteStore) SaveRecordIf(userID string, rec models.UserRecord, expectedVersion int64) error {
	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM records WHERE user_id = ?`, userID).Scan(&count); err != nil {
		return fmt.Errorf("failed to check record: %w", err)
	}
	if count == 0 {
		// First write for this user; no version to conflict with
		return s.SaveRecord(userID, rec)
	}

	rec.UserID = userID
	rec.Version = expectedVersion + 1
	rec.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE records SET version = ?, doc = ?, updated_at = ?
		WHERE user_id = ? AND version = ?`,
		rec.Version, string(doc), rec.UpdatedAt.Format(time.RFC3339), userID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check write result: %w", err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

func (s *SQLiteStore) ListUsers() ([]string, error) {
	rows, err := s.db.Query(`SELECT user_id FROM records ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		users = append(users, id)
	}
	return users, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection. Returns nil if the
// database has not been initialized or loaded.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
