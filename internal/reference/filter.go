package reference

import (
	"strings"

	"github.com/fireline-tools/fireline/internal/textnorm"
	"github.com/fireline-tools/fireline/pkg/types"
)

// Filter applies a normalized substring query to a table. With a column
// name that exists in the table the match is scoped to that column;
// otherwise every cell of a row is searched. An empty query returns the
// table unchanged. Matching is accent- and case-insensitive, never fuzzy.
// Row order is preserved; the result is a new table, the input is not
// modified.
func Filter(tbl *types.Table, query, column string) *types.Table {
	out := &types.Table{Name: tbl.Name, Columns: tbl.Columns}
	if query == "" {
		out.Rows = append(out.Rows, tbl.Rows...)
		return out
	}

	q := textnorm.Normalize(query)
	scoped := column != "" && tbl.HasColumn(column)

	for _, row := range tbl.Rows {
		if scoped {
			if strings.Contains(textnorm.Normalize(row[column]), q) {
				out.Rows = append(out.Rows, row)
			}
			continue
		}
		for _, cell := range row {
			if strings.Contains(textnorm.Normalize(cell), q) {
				out.Rows = append(out.Rows, row)
				break
			}
		}
	}
	return out
}
