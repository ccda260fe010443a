// Package cache persists per-candidate scoring results on disk so rescoring a
// document against the same job can be skipped. One JSON file per
// (document, job) pair; writes are idempotent and last-writer-wins, so no
// locking is needed — each pair is only ever written by the worker that
// scored it.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lil-jrg/cv-sorter/internal/candidate"
)

// Record is one cached scoring result.
type Record struct {
	Profile  *candidate.Profile `json:"perfil"`
	Score    float64            `json:"score"`
	Suitable bool               `json:"apto"`
}

// Store is a directory of cache records.
type Store struct {
	dir string
}

// New creates the cache directory if needed.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("cache directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Load returns the cached record for the pair, or false on a miss. Corrupt
// records count as misses: the candidate is simply rescored.
func (s *Store) Load(docID, jobID string) (*Record, bool) {
	data, err := os.ReadFile(s.path(docID, jobID))
	if err != nil {
		return nil, false
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil || rec.Profile == nil {
		return nil, false
	}

	rec.Profile.SourceFile = docID
	return &rec, true
}

// Save writes the record for the pair, replacing any previous one.
func (s *Store) Save(docID, jobID string, rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache record: %w", err)
	}

	if err := os.WriteFile(s.path(docID, jobID), data, 0o644); err != nil {
		return fmt.Errorf("write cache record: %w", err)
	}
	return nil
}

// Purge removes all records of the given job, keeping other jobs' entries.
// Used before a fresh run so stale profiles do not leak in.
func (s *Store) Purge(jobID string) error {
	suffix := fmt.Sprintf("_%s_cache.json", sanitize(jobID))

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), suffix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("remove cache record %s: %w", entry.Name(), err)
		}
	}
	return nil
}

func (s *Store) path(docID, jobID string) string {
	name := fmt.Sprintf("%s_%s_cache.json", sanitize(docID), sanitize(jobID))
	return filepath.Join(s.dir, name)
}

// sanitize turns an identifier into a safe lowercase file name fragment.
func sanitize(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.TrimSuffix(id, ".pdf")
	repl := strings.NewReplacer("/", "-", "\\", "-", " ", "_", "..", "-")
	return repl.Replace(id)
}
