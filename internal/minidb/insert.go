package minidb

import (
	"context"
)

// Insert appends a row at index NumRows. The table is left untouched
// when the row is rejected.
func (t *Table) Insert(ctx context.Context, aRow Row) error {
	if t.IsFull() {
		return ErrTableFull
	}

	buf := make([]byte, RowSize)
	if err := aRow.Marshal(buf); err != nil {
		return err
	}

	if err := t.pager.WriteRow(ctx, t.numRows, buf); err != nil {
		return err
	}

	t.logger.Sugar().With(
		"row_index", t.numRows,
		"id", aRow.ID,
	).Debug("inserted row")

	t.numRows += 1

	return nil
}

func (d *Database) executeInsert(ctx context.Context, stmt Statement) (StatementResult, error) {
	if err := d.table.Insert(ctx, stmt.Row); err != nil {
		return StatementResult{}, err
	}
	return StatementResult{RowsAffected: 1}, nil
}
