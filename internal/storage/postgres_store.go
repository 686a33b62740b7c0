package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS records (
	user_id    TEXT PRIMARY KEY,
	version    BIGINT NOT NULL DEFAULT 1,
	doc        JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`

// IsPostgresConnString reports whether the storage string is a PostgreSQL
// connection string rather than a file path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Passwords belong in the OS keyring, the environment, or
// .pgpass, never in the config file.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

// PostgresStore persists each user record as a JSONB document in a versioned
// row.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetRecord(userID string) (models.UserRecord, error) {
	row := s.db.QueryRow(`SELECT version, doc FROM records WHERE user_id = $1`, userID)

	var version int64
	var doc []byte
	if err := row.Scan(&version, &doc); err != nil {
		if err == sql.ErrNoRows {
			return models.UserRecord{}, apperr.NotFound("user record not found: %s", userID)
		}
		return models.UserRecord{}, fmt.Errorf("failed to read record: %w", err)
	}

	var rec models.UserRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return models.UserRecord{}, apperr.ValidationFailed(err, "stored record for %s is malformed", userID)
	}
	rec.Version = version
	rec.UserID = userID
	if rec.Goals == nil {
		rec.Goals = make(map[string]models.Goal)
	}

	return rec, nil
}

func (s *PostgresStore) SaveRecord(userID string, rec models.UserRecord) error {
	rec.UserID = userID
	rec.Version++
	rec.UpdatedAt = time.Now().UTC()

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO records (user_id, version, doc, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			version = EXCLUDED.version,
			doc = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at`,
		userID, rec.Version, doc, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return nil
}

func (s *PostgresStore) SaveRecordIf(userID string, rec models.UserRecord, expectedVersion int64) error {
	var count int
	if err := s.db.QueryRow(`SELECT count(*) FROM records WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return fmt.Errorf("failed to check record: %w", err)
	}
	if count == 0 {
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
		UPDATE records SET version = $1, doc = $2, updated_at = $3
		WHERE user_id = $4 AND version = $5`,
		rec.Version, doc, rec.UpdatedAt, userID, expectedVersion)
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

func (s *PostgresStore) ListUsers() ([]string, error) {
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

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
