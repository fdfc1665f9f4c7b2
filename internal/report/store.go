// Package report implements the incident report document lifecycle:
// identifier generation, the on-disk JSON store with atomic writes,
// schema defaults and forward migration, listing, and the editing
// session.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fireline-tools/fireline/internal/logger"
	"github.com/fireline-tools/fireline/pkg/types"
)

// Store persists one JSON document per report under a single directory.
// Attachments for a report live in a sibling directory named after the
// sanitized identifier.
type Store struct {
	dir string
}

// NewStore opens the store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report store: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store root.
func (s *Store) Dir() string {
	return s.dir
}

// DocPath returns the document path for a report identifier.
func (s *Store) DocPath(id string) string {
	return filepath.Join(s.dir, SanitizeKey(id)+".json")
}

// AttachmentsDir returns the attachments directory for a report
// identifier. The directory is created on first attachment write, not
// here.
func (s *Store) AttachmentsDir(id string) string {
	return filepath.Join(s.dir, SanitizeKey(id))
}

// Read loads and migrates the document for id. A missing document and an
// unparsable one both report ok=false; callers fall back to a fresh
// skeleton. Corruption is logged so it stays distinguishable from plain
// absence.
func (s *Store) Read(id string) (*types.Report, bool) {
	raw, err := os.ReadFile(s.DocPath(id))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("unreadable report document %s: %v", id, err)
		}
		return nil, false
	}

	rep, err := Migrate(raw, timeNow())
	if err != nil {
		logger.Warn("corrupt report document %s: %v", id, err)
		return nil, false
	}
	if rep.Meta.ID == "" {
		rep.Meta.ID = id
	}
	return rep, true
}

// Write serializes rep and persists it atomically: the document is
// written to a temp file in the store directory, synced, and renamed
// onto the final path. A reader never observes a partial document and a
// crash mid-write leaves the previous version intact.
func (s *Store) Write(rep *types.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report %s: %w", rep.Meta.ID, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing report %s: %w", rep.Meta.ID, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing report %s: %w", rep.Meta.ID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.DocPath(rep.Meta.ID)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("committing report %s: %w", rep.Meta.ID, err)
	}
	return nil
}

// Delete removes the document and the attachments directory for id.
// Attachment removal is best-effort: individual failures are logged and
// skipped so the bulk delete proceeds. Only failure to remove the main
// document is reported; once it is gone the report no longer exists from
// the index's perspective.
func (s *Store) Delete(id string) error {
	docErr := os.Remove(s.DocPath(id))
	if docErr != nil && os.IsNotExist(docErr) {
		docErr = nil
	}

	attDir := s.AttachmentsDir(id)
	if entries, err := os.ReadDir(attDir); err == nil {
		for _, e := range entries {
			if err := os.Remove(filepath.Join(attDir, e.Name())); err != nil {
				logger.Warn("leaving attachment %s/%s: %v", id, e.Name(), err)
			}
		}
		if err := os.Remove(attDir); err != nil {
			logger.Debug("attachments directory for %s not removed: %v", id, err)
		}
	}

	if docErr != nil {
		return fmt.Errorf("deleting report %s: %w", id, docErr)
	}
	return nil
}
