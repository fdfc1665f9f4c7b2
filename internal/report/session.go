package report

import (
	"encoding/json"
	"fmt"

	"github.com/fireline-tools/fireline/pkg/types"
)

// EditingSession is the in-memory working copy of one report bound to one
// open editor. It is owned by the caller and never ambient state. One
// session per report at a time is assumed; with two concurrent sessions
// the last save wins silently.
type EditingSession struct {
	store  *Store
	report *types.Report
	closed bool
}

// Create generates a new report for ownerID, writes the skeleton
// immediately so the record shows up in listings before any edit, and
// returns an open session on it.
func Create(store *Store, ownerID string) (*EditingSession, error) {
	if err := types.ValidateOwnerID(ownerID); err != nil {
		return nil, err
	}
	rep := Empty(GenerateID(ownerID), ownerID, timeNow())
	if err := store.Write(rep); err != nil {
		return nil, err
	}
	return &EditingSession{store: store, report: rep}, nil
}

// Open loads the report with the given id into a session, migrated to
// the current schema. A missing or unreadable document falls back to a
// fresh skeleton for the same id; it becomes durable on first save.
func Open(store *Store, id, ownerID string) (*EditingSession, error) {
	if err := types.ValidateOwnerID(ownerID); err != nil {
		return nil, err
	}
	rep, ok := store.Read(id)
	if !ok {
		rep = Empty(id, ownerID, timeNow())
	}
	return &EditingSession{store: store, report: rep}, nil
}

// Report returns the working copy. Nil once the session is closed.
func (s *EditingSession) Report() *types.Report {
	return s.report
}

// Closed reports whether the session has been closed.
func (s *EditingSession) Closed() bool {
	return s.closed
}

// SetField assigns a single field of a named section on the working copy
// only; nothing is persisted until Save. The section and field must exist
// in the current schema and the value must fit the field's type;
// violations are rejected and the working copy stays untouched.
func (s *EditingSession) SetField(section, field string, value any) error {
	if s.closed {
		return types.ErrSessionClosed
	}
	if !types.IsSection(section) {
		return fmt.Errorf("%w: %q", types.ErrUnknownSection, section)
	}

	doc, err := toDocument(s.report)
	if err != nil {
		return err
	}
	sec, ok := doc[section].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownSection, section)
	}
	if _, ok := sec[field]; !ok {
		return fmt.Errorf("%w: %s.%s", types.ErrUnknownField, section, field)
	}
	sec[field] = value

	buf, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s.%s: %w", section, field, err)
	}
	var rep types.Report
	if err := json.Unmarshal(buf, &rep); err != nil {
		return fmt.Errorf("value does not fit %s.%s: %w", section, field, err)
	}
	*s.report = rep
	return nil
}

// Save stamps the modification time and persists the working copy. Safe
// to call repeatedly. On failure the in-memory copy is left exactly as it
// was, so no edit is lost and the caller may retry.
func (s *EditingSession) Save() error {
	if s.closed {
		return types.ErrSessionClosed
	}
	prev := s.report.Meta.UpdatedAt
	s.report.Touch(timeNow())
	if err := s.store.Write(s.report); err != nil {
		s.report.Meta.UpdatedAt = prev
		return err
	}
	return nil
}

// Close discards the working copy without saving. The persisted document
// is unaffected. Closed is terminal: reopening the same report takes a
// new session, which re-reads the last committed write.
func (s *EditingSession) Close() {
	s.closed = true
	s.report = nil
}

// SaveAndClose persists and then closes as one logical step. If the save
// fails the session stays open with its edits intact.
func (s *EditingSession) SaveAndClose() error {
	if err := s.Save(); err != nil {
		return err
	}
	s.Close()
	return nil
}
