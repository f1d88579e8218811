package minidb

import (
	"context"
	"database/sql/driver"

	"github.com/RichardKnop/minidb/internal/minidb"
)

type Stmt struct {
	conn      *Conn
	statement minidb.Statement
}

// Close closes the statement.
func (s *Stmt) Close() error {
	return nil
}

// NumInput returns the number of placeholder parameters, statements
// carry their values inline so there are never any.
func (s *Stmt) NumInput() int {
	return 0
}

// Exec executes a query that doesn't return rows, such
// as an INSERT.
//
// Deprecated: Drivers should implement StmtExecContext instead (or additionally).
func (s *Stmt) Exec(args []driver.Value) (driver.Result, error) {
	if len(args) > 0 {
		return nil, errArgumentsNotSupported
	}
	return s.ExecContext(context.Background(), nil)
}

func (s *Stmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	if len(args) > 0 {
		return nil, errArgumentsNotSupported
	}

	result, _, err := s.conn.executeStatement(ctx, s.statement)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Query executes a query that may return rows, such as a
// SELECT.
//
// Deprecated: Drivers should implement StmtQueryContext instead (or additionally).
func (s *Stmt) Query(args []driver.Value) (driver.Rows, error) {
	if len(args) > 0 {
		return nil, errArgumentsNotSupported
	}
	return s.QueryContext(context.Background(), nil)
}

func (s *Stmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	if len(args) > 0 {
		return nil, errArgumentsNotSupported
	}

	_, rows, err := s.conn.executeStatement(ctx, s.statement)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

var _ driver.Stmt = (*Stmt)(nil)
var _ driver.StmtExecContext = (*Stmt)(nil)
var _ driver.StmtQueryContext = (*Stmt)(nil)
