package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fireline-tools/fireline/pkg/types"
)

// AddAttachment copies the file at src into the report's attachments
// directory and appends the metadata entry to the working copy. The
// attachments list is append-only; entries are never edited afterwards.
// The new entry becomes durable on the next Save.
func (s *EditingSession) AddAttachment(kind, src string) (types.Attachment, error) {
	if s.closed {
		return types.Attachment{}, types.ErrSessionClosed
	}
	if kind == "" {
		kind = types.AttachmentFile
	}

	dir := s.store.AttachmentsDir(s.report.Meta.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.Attachment{}, fmt.Errorf("creating attachments directory: %w", err)
	}

	name := filepath.Base(src)
	dst := filepath.Join(dir, name)
	if err := copyFile(src, dst); err != nil {
		return types.Attachment{}, fmt.Errorf("storing attachment %s: %w", name, err)
	}

	att := types.Attachment{
		Kind:         kind,
		OriginalName: name,
		StoredPath:   dst,
		UploadedAt:   types.Timestamp(timeNow()),
	}
	s.report.Attachments = append(s.report.Attachments, att)
	return att, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
