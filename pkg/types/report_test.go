package types

import (
	"testing"
	"time"
)

func TestTouchUpdatesTimestamp(t *testing.T) {
	r := &Report{}
	r.Meta.CreatedAt = Timestamp(time.Date(2025, 8, 11, 14, 5, 0, 0, time.UTC))
	r.Touch(time.Date(2025, 8, 11, 14, 6, 30, 0, time.UTC))

	if r.Meta.UpdatedAt != "2025-08-11T14:06:30" {
		t.Fatalf("unexpected updated_at: %s", r.Meta.UpdatedAt)
	}
	if !(r.Meta.UpdatedAt > r.Meta.CreatedAt) {
		t.Fatal("updated_at must sort after created_at")
	}
}

func TestIsSection(t *testing.T) {
	for _, name := range SectionNames {
		if !IsSection(name) {
			t.Fatalf("section %q not recognized", name)
		}
	}
	for _, name := range []string{"meta", "attachments", "", "Event"} {
		if IsSection(name) {
			t.Fatalf("%q must not be an editable section", name)
		}
	}
}

func TestTableHasColumn(t *testing.T) {
	tbl := &Table{Columns: []string{"Název", "Popis"}}
	if !tbl.HasColumn("Název") {
		t.Fatal("expected column Název")
	}
	if tbl.HasColumn("nazev") {
		t.Fatal("column match must be exact")
	}
}
