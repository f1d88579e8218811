package minidb

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/RichardKnop/minidb/pkg/lrucache"
)

const (
	DefaultMaxCachedStatements = 100
)

type Database struct {
	Name      string
	parser    Parser
	table     *Table
	stmtCache *lrucache.Cache[string, Statement]
	logger    *zap.Logger

	maxCachedStatements int
}

type DatabaseOption func(*Database)

func WithMaxCachedStatements(maxStatements int) DatabaseOption {
	return func(d *Database) {
		d.maxCachedStatements = maxStatements
	}
}

// NewDatabase creates a new database with a single table backed by aPager
func NewDatabase(ctx context.Context, logger *zap.Logger, name string, aParser Parser, aPager Pager, opts ...DatabaseOption) (*Database, error) {
	if aParser == nil {
		return nil, errors.New("parser is required")
	}
	if aPager == nil {
		return nil, errors.New("pager is required")
	}

	db := &Database{
		Name:                name,
		parser:              aParser,
		table:               NewTable(logger, aPager),
		logger:              logger,
		maxCachedStatements: DefaultMaxCachedStatements,
	}

	for _, opt := range opts {
		opt(db)
	}

	db.stmtCache = lrucache.New[string, Statement](db.maxCachedStatements)

	logger.Sugar().With(
		"name", name,
		"row_size", RowSize,
		"rows_per_page", RowsPerPage,
		"max_rows", MaxRows,
	).Debug("initialized database")

	return db, nil
}

// PrepareStatement parses a single command line into a statement
func (d *Database) PrepareStatement(ctx context.Context, line string) (Statement, error) {
	if stmt, ok := d.stmtCache.Get(line); ok {
		d.logger.Sugar().With("line", line).Debug("statement cache hit")
		return stmt, nil
	}

	stmt, err := d.parser.Parse(ctx, line)
	if err != nil {
		return Statement{}, err
	}

	if evicted, ok := d.stmtCache.Put(line, stmt); ok {
		d.logger.Sugar().With("line", evicted).Debug("evicted statement from cache")
	}

	return stmt, nil
}

// ExecuteStatement will eventually become virtual machine
func (d *Database) ExecuteStatement(ctx context.Context, stmt Statement) (StatementResult, error) {
	d.logger.Sugar().With("kind", stmt.Kind.String()).Debug("executing statement")

	switch stmt.Kind {
	case Insert:
		return d.executeInsert(ctx, stmt)
	case Select:
		return d.executeSelect(ctx, stmt)
	}
	return StatementResult{}, errUnrecognizedStatementType
}

type Stats struct {
	NumRows             uint32
	MaxRows             uint32
	TotalPages          uint32
	MaxPages            uint32
	CachedStatements    int
	MaxCachedStatements int
}

func (d *Database) Stats() Stats {
	return Stats{
		NumRows:             d.table.NumRows(),
		MaxRows:             MaxRows,
		TotalPages:          d.table.TotalPages(),
		MaxPages:            MaxPages,
		CachedStatements:    d.stmtCache.Len(),
		MaxCachedStatements: d.maxCachedStatements,
	}
}
