package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fireline-tools/fireline/pkg/types"
)

// CurrentSchemaVersion is stamped into new documents and onto every
// document that passes through Migrate.
const CurrentSchemaVersion = 4

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
	titleLayout = "02.01.2006 15:04"
)

// DefaultTitle composes the human-readable default report title from the
// creation time and the owner's personal number.
func DefaultTitle(ownerID string, created time.Time) string {
	return fmt.Sprintf("%s — OEČ %s", created.Format(titleLayout), ownerID)
}

// Empty builds the skeleton document for a new report: every section
// present, every field at its default. String fields default to "",
// numerics to 0, GPS coordinates to null, lists to empty.
func Empty(id, ownerID string, now time.Time) *types.Report {
	stamp := types.Timestamp(now)
	today := now.Format(dateLayout)

	rep := &types.Report{
		Meta: types.Meta{
			ID:            id,
			OwnerID:       ownerID,
			CreatedAt:     stamp,
			UpdatedAt:     stamp,
			Title:         DefaultTitle(ownerID, now),
			SchemaVersion: CurrentSchemaVersion,
		},
		Event: types.Event{
			DateOccurrence: today,
			TimeOccurrence: "00:00:00",
			DateObserved:   today,
			TimeObserved:   "00:00:00",
			DateReported:   today,
			TimeReported:   "00:00:00",
		},
		Participants: types.Participants{
			Investigators: []string{},
			Owners:        []types.Party{},
			Users:         []types.Party{},
		},
		Witnesses: types.Witnesses{
			People: []types.Witness{},
		},
		Attachments: []types.Attachment{},
	}
	if ownerID != "" {
		rep.Participants.Investigators = append(rep.Participants.Investigators, ownerID)
	}
	return rep
}

// Migrate completes a parsed but possibly older or partial document with
// current-schema defaults. Existing values win over defaults; defaults
// win over absence. No value is discarded, no versioned upgrade scripts
// run. Idempotent: migrating an already migrated document changes
// nothing. The schema version is always lifted to current.
func Migrate(raw []byte, now time.Time) (*types.Report, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing report document: %w", err)
	}

	meta, _ := doc["meta"].(map[string]any)
	id, _ := meta["id"].(string)
	owner, _ := meta["owner_id"].(string)

	defaults, err := toDocument(Empty(id, owner, now))
	if err != nil {
		return nil, err
	}
	merged := fillMissing(defaults, doc)
	if m, ok := merged["meta"].(map[string]any); ok {
		m["schema_version"] = CurrentSchemaVersion
	}

	buf, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("re-encoding migrated document: %w", err)
	}
	var rep types.Report
	if err := json.Unmarshal(buf, &rep); err != nil {
		return nil, fmt.Errorf("decoding migrated document: %w", err)
	}
	return &rep, nil
}

// toDocument converts a report to its generic JSON form so defaults and
// the raw document can be merged key by key.
func toDocument(rep *types.Report) (map[string]any, error) {
	buf, err := json.Marshal(rep)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// fillMissing overlays raw onto defaults: keys present in raw win, keys
// present only in defaults are kept, nested objects merge recursively.
// Lists and scalars from raw are taken wholesale, except that an explicit
// null carries no value and the default is kept for it, so a stored
// "attachments": null comes back as the empty list.
func fillMissing(defaults, raw map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(raw))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range raw {
		if v == nil {
			if _, ok := out[k]; ok {
				continue
			}
		}
		rawObj, rawIsObj := v.(map[string]any)
		defObj, defIsObj := out[k].(map[string]any)
		if rawIsObj && defIsObj {
			out[k] = fillMissing(defObj, rawObj)
			continue
		}
		out[k] = v
	}
	return out
}
