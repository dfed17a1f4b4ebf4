// internal/table/table.go
package table

// ColumnKind is the fixed per-column type. Any non-string scalar in the
// first record yields an integer column, so float-valued fields are
// truncated throughout the table.
type ColumnKind int

const (
	ColString ColumnKind = iota
	ColInt
)

// Column is one typed table column.
type Column struct {
	Name string
	Kind ColumnKind

	strs []string
	ints []int64
}

// String returns the cell at row i of a string column.
func (c *Column) String(i int) string {
	return c.strs[i]
}

// Int returns the cell at row i of an integer column.
func (c *Column) Int(i int) int64 {
	return c.ints[i]
}

// Table is a rectangular flattening result. Query is attached out-of-band
// by the search layer: it is the exact query string the server saw, not a
// column.
type Table struct {
	Query string

	columns []*Column
	byName  map[string]*Column
	rows    int
}

// Columns returns the column names in output order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return t.rows
}
