package minidb

import (
	"context"
)

type Parser interface {
	Parse(context.Context, string) (Statement, error)
}

// Pager stores fixed width rows in fixed size pages
type Pager interface {
	WriteRow(ctx context.Context, rowIdx uint32, buf []byte) error
	ReadRow(ctx context.Context, rowIdx uint32) ([]byte, error)
	TotalPages() uint32
}
