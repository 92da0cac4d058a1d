package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

// FSStore keeps results on disk under <baseDir>/runs/<id>/.
// Writes go through a temp file and rename, so readers never see a partial result.
type FSStore struct {
	baseDir string
}

// NewFSStore creates a filesystem store, creating baseDir if needed
func NewFSStore(baseDir string) (*FSStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	return &FSStore{baseDir: baseDir}, nil
}

// checkID accepts only canonical UUIDs, the form NewResult mints, so an ID
// can never name a path outside the runs directory.
func checkID(id string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != id {
		return &InvalidIDError{ID: id}
	}
	return nil
}

func (fs *FSStore) runDir(id string) string {
	return filepath.Join(fs.baseDir, "runs", id)
}

func (fs *FSStore) resultPath(id string) string {
	return filepath.Join(fs.runDir(id), "result.json")
}

// TracePath returns where the restart trace of run id is kept
func (fs *FSStore) TracePath(id string) string {
	return filepath.Join(fs.runDir(id), "trace.jsonl")
}

// SaveResult atomically writes result.json for the result's ID
func (fs *FSStore) SaveResult(result *Result) error {
	if result == nil {
		return fmt.Errorf("result cannot be nil")
	}
	if err := result.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid result: %w", err)
	}
	if err := checkID(result.ID); err != nil {
		return err
	}

	dir := fs.runDir(result.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	finalPath := fs.resultPath(result.ID)
	tempPath := finalPath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp result file: %w", err)
	}
	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename result file: %w", err)
	}

	slog.Debug("Result saved", "id", result.ID, "path", finalPath)
	return nil
}

// LoadResult reads the result with the given ID
func (fs *FSStore) LoadResult(id string) (*Result, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fs.resultPath(id))
	if os.IsNotExist(err) {
		return nil, &NotFoundError{ID: id}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to deserialize result: %w", err)
	}
	return &result, nil
}

// ListResults returns every readable result, oldest first.
// Unreadable entries are logged and skipped.
func (fs *FSStore) ListResults() ([]ResultInfo, error) {
	entries, err := os.ReadDir(filepath.Join(fs.baseDir, "runs"))
	if os.IsNotExist(err) {
		return []ResultInfo{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read runs directory: %w", err)
	}

	infos := []ResultInfo{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		result, err := fs.LoadResult(entry.Name())
		if err != nil {
			slog.Warn("Skipping unreadable result", "id", entry.Name(), "error", err)
			continue
		}
		infos = append(infos, result.ToInfo())
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Timestamp.Before(infos[j].Timestamp)
	})
	return infos, nil
}

// DeleteResult removes the run directory, including its trace
func (fs *FSStore) DeleteResult(id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	dir := fs.runDir(id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return &NotFoundError{ID: id}
	} else if err != nil {
		return fmt.Errorf("failed to stat run directory: %w", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove run directory: %w", err)
	}

	slog.Debug("Result deleted", "id", id)
	return nil
}
