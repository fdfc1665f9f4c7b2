package reference

import (
	"testing"

	"github.com/fireline-tools/fireline/pkg/types"
)

func sampleTable() *types.Table {
	return &types.Table{
		Name:    TableMaterials,
		Columns: []string{"Název", "Popis"},
		Rows: []map[string]string{
			{"Název": "Dřevěný hranol", "Popis": "stavební dřevo"},
			{"Název": "Kabel", "Popis": "PVC izolace"},
		},
	}
}

func TestFilterColumnScoped(t *testing.T) {
	got := Filter(sampleTable(), "dREv", "Název")
	if len(got.Rows) != 1 || got.Rows[0]["Název"] != "Dřevěný hranol" {
		t.Fatalf("column-scoped filter: %v", got.Rows)
	}
}

func TestFilterGlobal(t *testing.T) {
	got := Filter(sampleTable(), "KABEL", "")
	if len(got.Rows) != 1 || got.Rows[0]["Název"] != "Kabel" {
		t.Fatalf("global filter: %v", got.Rows)
	}
}

func TestFilterEmptyQueryReturnsAllRowsInOrder(t *testing.T) {
	tbl := sampleTable()
	got := Filter(tbl, "", "Název")
	if len(got.Rows) != 2 {
		t.Fatalf("expected all rows, got %d", len(got.Rows))
	}
	if got.Rows[0]["Název"] != "Dřevěný hranol" || got.Rows[1]["Název"] != "Kabel" {
		t.Fatalf("row order changed: %v", got.Rows)
	}
}

func TestFilterUnknownColumnFallsBackToGlobal(t *testing.T) {
	got := Filter(sampleTable(), "izolace", "Neexistuje")
	if len(got.Rows) != 1 || got.Rows[0]["Název"] != "Kabel" {
		t.Fatalf("fallback to global search: %v", got.Rows)
	}
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	tbl := &types.Table{
		Columns: []string{"Název"},
		Rows: []map[string]string{
			{"Název": "Seno"},
			{"Název": "Dřevo"},
			{"Název": "Dřevěný hranol"},
			{"Název": "Papír"},
		},
	}
	got := Filter(tbl, "dřev", "Název")
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got.Rows))
	}
	if got.Rows[0]["Název"] != "Dřevo" || got.Rows[1]["Název"] != "Dřevěný hranol" {
		t.Fatalf("match order not stable: %v", got.Rows)
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	tbl := sampleTable()
	Filter(tbl, "kabel", "")
	if len(tbl.Rows) != 2 {
		t.Fatal("input table was modified")
	}
}
