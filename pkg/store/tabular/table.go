package tabular

// Table is an in-memory tabular file: a header plus rows in file order.
// Cells are kept as strings; interpretation is left to the adapters.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable builds a table from a header and a row set. Rows shorter than the
// header are padded on access, longer ones keep their extra cells unreachable.
func NewTable(columns []string, rows [][]string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, exists := index[c]; !exists {
			index[c] = i
		}
	}
	return &Table{columns: columns, index: index, rows: rows}
}

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Get returns the cell at (row, column), or "" when the column is absent or
// the row is too short to reach it.
func (t *Table) Get(row int, column string) string {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	cells := t.rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}

// Row returns the raw cells of one row.
func (t *Table) Row(row int) []string {
	return t.rows[row]
}
