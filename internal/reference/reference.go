// Package reference provides the read-only lookup tables (fire-technical
// characteristics of materials, ignition initiators) backed by a local
// SQLite database, and the normalized substring filter applied to them.
package reference

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/fireline-tools/fireline/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Reference table names as exposed to callers.
const (
	TableMaterials  = "ptch"
	TableInitiators = "initiators"
)

// TableNames lists the available reference tables.
var TableNames = []string{TableMaterials, TableInitiators}

// tableSpec maps a reference table to its SQLite shape and the display
// column headers the search surface shows. The first column is always the
// free-text name column.
type tableSpec struct {
	sqlTable string
	columns  []columnSpec
}

type columnSpec struct {
	db      string
	display string
}

var tableSpecs = map[string]tableSpec{
	TableMaterials: {
		sqlTable: "materials",
		columns: []columnSpec{
			{"name", "Název"},
			{"description", "Popis"},
			{"ignition_c", "Teplota vznícení [°C]"},
			{"flash_point_c", "Teplota vzplanutí [°C]"},
		},
	},
	TableInitiators: {
		sqlTable: "initiators",
		columns: []columnSpec{
			{"name", "Název"},
			{"description", "Popis"},
			{"category", "Kategorie"},
		},
	},
}

// Load reads one reference table into memory. A missing database is an
// error the caller surfaces to the user; reference data is not defaulted
// the way report documents are.
func Load(path, table string) (*types.Table, error) {
	spec, ok := tableSpecs[table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrTableUnknown, table)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reference database %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening reference database: %w", err)
	}
	defer db.Close()

	query := "SELECT "
	for i, c := range spec.columns {
		if i > 0 {
			query += ", "
		}
		query += c.db
	}
	query += " FROM " + spec.sqlTable + " ORDER BY rowid"

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	out := &types.Table{Name: table}
	for _, c := range spec.columns {
		out.Columns = append(out.Columns, c.display)
	}

	for rows.Next() {
		values := make([]string, len(spec.columns))
		dest := make([]any, len(spec.columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		row := make(map[string]string, len(spec.columns))
		for i, c := range spec.columns {
			row[c.display] = values[i]
		}
		out.Rows = append(out.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}
	return out, nil
}
