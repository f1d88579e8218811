package minidb

import (
	"go.uber.org/zap"
)

// Table is an append only sequence of rows addressed by position.
// It is not safe for concurrent use.
type Table struct {
	pager   Pager
	numRows uint32
	logger  *zap.Logger
}

func NewTable(logger *zap.Logger, pager Pager) *Table {
	return &Table{
		pager:  pager,
		logger: logger,
	}
}

func (t *Table) NumRows() uint32 {
	return t.numRows
}

func (t *Table) IsFull() bool {
	return t.numRows >= MaxRows
}

func (t *Table) TotalPages() uint32 {
	return t.pager.TotalPages()
}
