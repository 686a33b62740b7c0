// Package export writes and restores portable JSON snapshots of a user
// record. All temporal values serialize as RFC 3339 strings so a snapshot
// round-trips across stores and machines.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goalpost/goalpost/internal/apperr"
	"github.com/goalpost/goalpost/internal/constants"
	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/validation"
)

const (
	// ExportDirName is the name of the export directory
	ExportDirName = "exports"
	// ExportFilePrefix is the prefix for export files
	ExportFilePrefix = "goalpost-"
	// ExportFileSuffix is the suffix for export files
	ExportFileSuffix = ".json"
)

// Info describes one export file on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles export and import operations rooted next to the store.
type Manager struct {
	exportDir string
}

// NewManager creates a Manager whose export directory sits beside the
// storage path.
func NewManager(storagePath string) *Manager {
	configDir := filepath.Dir(storagePath)
	return &Manager{
		exportDir: filepath.Join(configDir, ExportDirName),
	}
}

// GetExportDir returns the export directory path.
func (m *Manager) GetExportDir() string {
	return m.exportDir
}

func (m *Manager) ensureExportDir() error {
	return os.MkdirAll(m.exportDir, 0700)
}

// Export writes rec to a timestamped JSON file and rotates old exports.
func (m *Manager) Export(rec models.UserRecord) (string, error) {
	if err := m.ensureExportDir(); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-1504")
	name := fmt.Sprintf("%s%s%s", ExportFilePrefix, timestamp, ExportFileSuffix)
	path := filepath.Join(m.exportDir, name)

	// Add second precision, then a counter, if the minute slot is taken
	if _, err := os.Stat(path); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		name = fmt.Sprintf("%s%s%s", ExportFilePrefix, timestamp, ExportFileSuffix)
		path = filepath.Join(m.exportDir, name)

		counter := 1
		for {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				break
			}
			name = fmt.Sprintf("%s%s-%d%s", ExportFilePrefix, timestamp, counter, ExportFileSuffix)
			path = filepath.Join(m.exportDir, name)
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique export filename")
			}
		}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize record: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	if err := m.rotate(); err != nil {
		// Rotation failure should not fail the export itself
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old exports: %v\n", err)
	}

	return path, nil
}

// Import parses the JSON document at path into a record, defaulting missing
// fields and validating the result. A malformed document surfaces a
// ValidationFailed error; it is never silently replaced with an empty state.
func (m *Manager) Import(path string) (models.UserRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.UserRecord{}, apperr.OperationFailed(err, "failed to read import file %s", path)
	}

	var rec models.UserRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.UserRecord{}, apperr.ValidationFailed(err, "import file %s is not a valid record", path)
	}

	validation.NormalizeRecord(&rec)
	if err := validation.ValidateRecord(rec); err != nil {
		return models.UserRecord{}, err
	}

	return rec, nil
}

// List returns available exports, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.exportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read export directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), ExportFilePrefix) || !strings.HasSuffix(entry.Name(), ExportFileSuffix) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Path:      filepath.Join(m.exportDir, entry.Name()),
			Timestamp: fi.ModTime(),
			Size:      fi.Size(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Timestamp.After(infos[j].Timestamp)
	})
	return infos, nil
}

// rotate removes the oldest exports beyond the retention cap.
func (m *Manager) rotate() error {
	infos, err := m.List()
	if err != nil {
		return err
	}
	if len(infos) <= constants.MaxExports {
		return nil
	}

	for _, info := range infos[constants.MaxExports:] {
		if err := os.Remove(info.Path); err != nil {
			return fmt.Errorf("failed to remove old export %s: %w", info.Path, err)
		}
	}
	return nil
}
