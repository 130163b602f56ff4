// Package store persists per-version project logs as JSON documents.
//
// One document exists per interpreter version, at <dir>/<version>.json.
// Every operation is synchronous and reloads from disk; nothing is cached
// and nothing guards against concurrent writers (last writer wins).
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Project is a named unit of work recorded under one version.
type Project struct {
	Name         string `json:"name"`
	CreatedAt    uint64 `json:"created_at"`
	LastAccessed uint64 `json:"last_accessed"`
}

// ProjectLog is the persisted document holding all projects for one version.
type ProjectLog struct {
	Version  string    `json:"version"`
	Projects []Project `json:"projects"`
}

// Store reads and writes ProjectLog documents under a base directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily on
// the first Save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the document path for a version.
func (s *Store) Path(version string) string {
	return filepath.Join(s.dir, version+".json")
}

// Load reads the log for a version. A missing file yields an empty log for
// that version without touching disk. A read or parse failure is an error;
// there is no recovery path.
func (s *Store) Load(version string) (*ProjectLog, error) {
	data, err := os.ReadFile(s.Path(version))
	if errors.Is(err, os.ErrNotExist) {
		return &ProjectLog{Version: version, Projects: []Project{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read project log for %s: %w", version, err)
	}

	var log ProjectLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to parse project log for %s: %w", version, err)
	}
	return &log, nil
}

// Save writes the log to its version-derived path, creating the base
// directory if needed. The write is a plain overwrite.
func (s *Store) Save(log *ProjectLog) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", s.dir, err)
	}

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("failed to serialize project log for %s: %w", log.Version, err)
	}

	if err := os.WriteFile(s.Path(log.Version), data, 0o644); err != nil {
		return fmt.Errorf("failed to write project log for %s: %w", log.Version, err)
	}
	return nil
}

// AddProject appends a project to a version's log and persists it. Both
// timestamps are set to the current wall-clock epoch second. If a project
// with the same name already exists the call is a pure no-op: nothing is
// written and last_accessed is left untouched. The returned bool reports
// whether the project was added.
func (s *Store) AddProject(version, name string) (bool, error) {
	log, err := s.Load(version)
	if err != nil {
		return false, err
	}

	for _, p := range log.Projects {
		if p.Name == name {
			return false, nil
		}
	}

	now := uint64(time.Now().Unix())
	log.Projects = append(log.Projects, Project{
		Name:         name,
		CreatedAt:    now,
		LastAccessed: now,
	})

	if err := s.Save(log); err != nil {
		return false, err
	}
	return true, nil
}
