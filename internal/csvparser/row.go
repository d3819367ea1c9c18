package csvparser

// Row is one data record in header order. Rows created from the same Schema
// share its column index and must not be modified after creation.
type Row struct {
	index  map[string]int
	values []string
}

// NewRow builds a Row from parallel column and value slices.
// It is meant for callers that assemble rows outside of a Reader, such as
// tests and the spreadsheet reader.
func NewRow(columns, values []string) Row {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}
	return Row{index: index, values: values}
}

// Lookup returns the value stored under name and whether the column exists.
func (r Row) Lookup(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok || i >= len(r.values) {
		return "", false
	}
	return r.values[i], true
}

// Get returns the value stored under name, or "" when the column is absent.
func (r Row) Get(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// Field implements csvwriter.Record so raw rows can be written back out.
func (r Row) Field(name string) (string, bool) {
	return r.Lookup(name)
}

// Columns returns the column names in header order.
func (r Row) Columns() []string {
	cols := make([]string, len(r.values))
	for name, i := range r.index {
		if i < len(cols) {
			cols[i] = name
		}
	}
	return cols
}

// Values returns the raw values in header order.
func (r Row) Values() []string {
	return r.values
}
