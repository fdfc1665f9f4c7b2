package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fireline-tools/fireline/internal/logger"
	"github.com/fireline-tools/fireline/pkg/types"
)

// Summaries scans every document in the store and returns listing
// metadata, most recent creation first; ties keep scan order. One corrupt
// document never fails the listing, it is logged and skipped. With a
// non-empty ownerID only that owner's reports are returned.
func (s *Store) Summaries(ownerID string) ([]types.Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var out []types.Summary
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			logger.Warn("skipping unreadable document %s: %v", e.Name(), err)
			continue
		}

		var doc struct {
			Meta types.Meta `json:"meta"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			logger.Warn("skipping corrupt document %s: %v", e.Name(), err)
			continue
		}

		id := doc.Meta.ID
		if id == "" {
			// Identity falls back to the filename stem for documents
			// written before meta carried the id.
			id = strings.TrimSuffix(e.Name(), ".json")
		}
		if ownerID != "" && doc.Meta.OwnerID != ownerID {
			continue
		}
		title := doc.Meta.Title
		if title == "" {
			title = id
		}
		out = append(out, types.Summary{
			ID:        id,
			Title:     title,
			OwnerID:   doc.Meta.OwnerID,
			CreatedAt: doc.Meta.CreatedAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}
