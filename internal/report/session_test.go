package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fireline-tools/fireline/pkg/types"
)

// pinTime fixes the package clock for the duration of one test.
func pinTime(t *testing.T, at time.Time) {
	t.Helper()
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = time.Now })
}

func TestCreateWritesSkeletonImmediately(t *testing.T) {
	s := newTestStore(t)
	sess, err := Create(s, "123456")
	if err != nil {
		t.Fatal(err)
	}

	sums, err := s.Summaries("123456")
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 1 || sums[0].ID != sess.Report().Meta.ID {
		t.Fatalf("new report not visible in listing before first edit: %v", sums)
	}
}

func TestCreateRejectsInvalidOwner(t *testing.T) {
	s := newTestStore(t)
	for _, owner := range []string{"", "12345", "12345a"} {
		if _, err := Create(s, owner); !errors.Is(err, types.ErrInvalidOwnerID) {
			t.Fatalf("Create(%q): expected ErrInvalidOwnerID, got %v", owner, err)
		}
	}
}

func TestEditSaveReload(t *testing.T) {
	s := newTestStore(t)

	pinTime(t, time.Date(2025, 8, 11, 14, 5, 0, 0, time.UTC))
	sess, err := Create(s, "123456")
	if err != nil {
		t.Fatal(err)
	}
	id := sess.Report().Meta.ID

	if err := sess.SetField("conditions", "weather", "deštivo"); err != nil {
		t.Fatal(err)
	}

	pinTime(t, time.Date(2025, 8, 11, 14, 7, 0, 0, time.UTC))
	if err := sess.SaveAndClose(); err != nil {
		t.Fatal(err)
	}
	if !sess.Closed() {
		t.Fatal("session must be closed after SaveAndClose")
	}

	reopened, err := Open(s, id, "123456")
	if err != nil {
		t.Fatal(err)
	}
	rep := reopened.Report()
	if rep.Conditions.Weather != "deštivo" {
		t.Fatalf("edit lost across reload: %q", rep.Conditions.Weather)
	}
	if !(rep.Meta.UpdatedAt > rep.Meta.CreatedAt) {
		t.Fatalf("updated_at (%s) must be after created_at (%s)", rep.Meta.UpdatedAt, rep.Meta.CreatedAt)
	}
}

func TestSetFieldValidation(t *testing.T) {
	s := newTestStore(t)
	sess, err := Create(s, "123456")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("unknown section", func(t *testing.T) {
		if err := sess.SetField("meta", "title", "x"); !errors.Is(err, types.ErrUnknownSection) {
			t.Fatalf("expected ErrUnknownSection, got %v", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		if err := sess.SetField("conditions", "humidity", 40); !errors.Is(err, types.ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("mistyped value leaves copy untouched", func(t *testing.T) {
		if err := sess.SetField("conditions", "temperature_c", "mráz"); err == nil {
			t.Fatal("expected type error")
		}
		if sess.Report().Conditions.TemperatureC != 0 {
			t.Fatal("failed edit mutated the working copy")
		}
	})

	t.Run("valid edit applies in memory only", func(t *testing.T) {
		if err := sess.SetField("findings", "cause", "technická závada"); err != nil {
			t.Fatal(err)
		}
		if sess.Report().Findings.Cause != "technická závada" {
			t.Fatal("edit not applied")
		}
		persisted, _ := s.Read(sess.Report().Meta.ID)
		if persisted.Findings.Cause != "" {
			t.Fatal("SetField must not persist")
		}
	})
}

func TestCloseWithoutSavingDiscardsEdits(t *testing.T) {
	s := newTestStore(t)
	sess, err := Create(s, "123456")
	if err != nil {
		t.Fatal(err)
	}
	id := sess.Report().Meta.ID

	if err := sess.SetField("notes", "text", "neuloženo"); err != nil {
		t.Fatal(err)
	}
	sess.Close()

	reopened, err := Open(s, id, "123456")
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Report().Notes.Text != "" {
		t.Fatal("discarded edit leaked to storage")
	}
}

func TestFailedSaveKeepsSessionOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	s, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	sess, err := Create(s, "123456")
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.SetField("notes", "text", "rozpracováno"); err != nil {
		t.Fatal(err)
	}

	// Make the next write fail: the store directory becomes a plain file.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, []byte("in the way"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := sess.SaveAndClose(); err == nil {
		t.Fatal("expected save failure")
	}
	if sess.Closed() {
		t.Fatal("failed save must not close the session")
	}
	if sess.Report().Notes.Text != "rozpracováno" {
		t.Fatal("unsaved edit lost on failed save")
	}
}

func TestOperationsOnClosedSession(t *testing.T) {
	s := newTestStore(t)
	sess, err := Create(s, "123456")
	if err != nil {
		t.Fatal(err)
	}
	sess.Close()

	if err := sess.SetField("notes", "text", "x"); !errors.Is(err, types.ErrSessionClosed) {
		t.Fatalf("SetField after close: %v", err)
	}
	if err := sess.Save(); !errors.Is(err, types.ErrSessionClosed) {
		t.Fatalf("Save after close: %v", err)
	}
	if _, err := sess.AddAttachment("photo", "whatever"); !errors.Is(err, types.ErrSessionClosed) {
		t.Fatalf("AddAttachment after close: %v", err)
	}
}

func TestAddAttachment(t *testing.T) {
	s := newTestStore(t)
	sess, err := Create(s, "123456")
	if err != nil {
		t.Fatal(err)
	}
	id := sess.Report().Meta.ID

	src := filepath.Join(t.TempDir(), "nacrtek.png")
	if err := os.WriteFile(src, []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	att, err := sess.AddAttachment(types.AttachmentSketch, src)
	if err != nil {
		t.Fatal(err)
	}
	if att.OriginalName != "nacrtek.png" || att.Kind != types.AttachmentSketch {
		t.Fatalf("unexpected attachment entry: %+v", att)
	}
	data, err := os.ReadFile(att.StoredPath)
	if err != nil || string(data) != "png-bytes" {
		t.Fatalf("attachment content not copied: %v %q", err, data)
	}

	if err := sess.SaveAndClose(); err != nil {
		t.Fatal(err)
	}
	reopened, err := Open(s, id, "123456")
	if err != nil {
		t.Fatal(err)
	}
	atts := reopened.Report().Attachments
	if len(atts) != 1 || atts[0].OriginalName != "nacrtek.png" {
		t.Fatalf("attachment entry not persisted: %v", atts)
	}
}
