package minidb

import (
	"errors"
	"fmt"
)

const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	RowSize = IDSize + UsernameSize + EmailSize // 291 bytes

	PageSize    = 4096 // 4 kilobytes
	MaxPages    = 100
	RowsPerPage = PageSize / RowSize // 14, rows never span pages
	MaxRows     = RowsPerPage * MaxPages
)

var (
	// Prepare errors
	ErrUnrecognizedStatement = errors.New("unrecognized statement")
	ErrSyntax                = errors.New("syntax error")
	ErrFieldTooLong          = errors.New("field too long")

	// Execute errors
	ErrTableFull  = errors.New("table full")
	ErrNoMoreRows = errors.New("no more rows")

	// Page store contract violations
	ErrPageNotAllocated = errors.New("page not allocated")
	ErrRowOutOfRange    = errors.New("row index out of range")

	errUnrecognizedStatementType = fmt.Errorf("unrecognised statement type")
)

// RowColumns lists column names in the order they are serialized
var RowColumns = []string{"id", "username", "email"}
