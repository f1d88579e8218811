package minidb

import (
	"context"
	"fmt"
)

// Iterator returns the next row on each call and ErrNoMoreRows once exhausted
type Iterator func(ctx context.Context) (Row, error)

// Select scans rows in insertion order. The number of rows is fixed when
// Select is called, call Select again to restart the scan.
func (t *Table) Select(ctx context.Context) Iterator {
	var (
		rowIdx  uint32
		numRows = t.numRows
	)

	t.logger.Sugar().With("num_rows", numRows).Debug("starting table scan")

	return func(ctx context.Context) (Row, error) {
		if err := ctx.Err(); err != nil {
			return Row{}, err
		}
		if rowIdx >= numRows {
			return Row{}, ErrNoMoreRows
		}

		buf, err := t.pager.ReadRow(ctx, rowIdx)
		if err != nil {
			return Row{}, fmt.Errorf("error reading row %d: %w", rowIdx, err)
		}

		var aRow Row
		if err := UnmarshalRow(buf, &aRow); err != nil {
			return Row{}, fmt.Errorf("error unmarshaling row %d: %w", rowIdx, err)
		}
		rowIdx += 1

		return aRow, nil
	}
}

// Collect drains the iterator
func (it Iterator) Collect(ctx context.Context) ([]Row, error) {
	var rows []Row
	aRow, err := it(ctx)
	for ; err == nil; aRow, err = it(ctx) {
		rows = append(rows, aRow)
	}
	if err != ErrNoMoreRows {
		return nil, err
	}
	return rows, nil
}

func (d *Database) executeSelect(ctx context.Context, stmt Statement) (StatementResult, error) {
	return StatementResult{
		Columns: RowColumns,
		Rows:    d.table.Select(ctx),
	}, nil
}
