package types

// Table is an in-memory reference dataset with named columns. Rows keep
// their load order; the filter in internal/reference preserves it.
type Table struct {
	Name    string              `json:"name"`
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// HasColumn reports whether the table defines the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
