package minidb

import (
	"database/sql/driver"
	"fmt"
	"io"

	"github.com/RichardKnop/minidb/internal/minidb"
)

type Rows struct {
	columns []string
	rows    []minidb.Row
	idx     int
}

// Columns returns the names of the columns.
func (r *Rows) Columns() []string {
	return r.columns
}

// Close closes the rows iterator.
func (r *Rows) Close() error {
	r.rows = nil
	return nil
}

// Next is called to populate the next row of data into
// the provided slice. The provided slice will be the same
// size as the Columns() are wide.
//
// Next should return io.EOF when there are no more rows.
func (r *Rows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}

	if len(dest) != len(minidb.RowColumns) {
		return fmt.Errorf("expected %d values, got %d", len(minidb.RowColumns), len(dest))
	}

	for i, value := range r.rows[r.idx].Values() {
		dest[i] = toDriverValue(value)
	}
	r.idx += 1

	return nil
}

var _ driver.Rows = (*Rows)(nil)

// toDriverValue widens unsigned ids to int64, the integer type database/sql expects
func toDriverValue(value any) driver.Value {
	if v, ok := value.(uint32); ok {
		return int64(v)
	}
	return value
}
