package reference

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fireline-tools/fireline/pkg/types"
)

func seedTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.db")
	if err := Seed(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSeedAndLoadMaterials(t *testing.T) {
	path := seedTestDB(t)

	tbl, err := Load(path, TableMaterials)
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != len(seedMaterials) {
		t.Fatalf("expected %d materials, got %d", len(seedMaterials), len(tbl.Rows))
	}
	if !tbl.HasColumn("Název") {
		t.Fatalf("missing name column: %v", tbl.Columns)
	}
	if tbl.Rows[0]["Název"] != "Dřevěný hranol" {
		t.Fatalf("seed order not preserved: %v", tbl.Rows[0])
	}
}

func TestSeedAndLoadInitiators(t *testing.T) {
	path := seedTestDB(t)

	tbl, err := Load(path, TableInitiators)
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != len(seedInitiators) {
		t.Fatalf("expected %d initiators, got %d", len(seedInitiators), len(tbl.Rows))
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	path := seedTestDB(t)
	if err := Seed(path); err != nil {
		t.Fatal(err)
	}
	tbl, err := Load(path, TableMaterials)
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows) != len(seedMaterials) {
		t.Fatalf("re-seed duplicated rows: %d", len(tbl.Rows))
	}
}

func TestLoadUnknownTable(t *testing.T) {
	path := seedTestDB(t)
	if _, err := Load(path, "normy"); !errors.Is(err, types.ErrTableUnknown) {
		t.Fatalf("expected ErrTableUnknown, got %v", err)
	}
}

func TestLoadMissingDatabaseIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.db"), TableMaterials); err == nil {
		t.Fatal("missing reference database must be reported to the caller")
	}
}

func TestLoadedTableFilters(t *testing.T) {
	path := seedTestDB(t)
	tbl, err := Load(path, TableMaterials)
	if err != nil {
		t.Fatal(err)
	}
	got := Filter(tbl, "dřev", "Název")
	if len(got.Rows) == 0 {
		t.Fatal("expected at least one wood material")
	}
	for _, row := range got.Rows {
		if !strings.Contains(row["Název"], "řev") {
			t.Fatalf("unexpected match: %v", row)
		}
	}
}
