package minidb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/RichardKnop/minidb/internal/minidb"
	"github.com/RichardKnop/minidb/internal/parser"
	"github.com/RichardKnop/minidb/internal/pkg/logging"
)

const (
	driverName = "minidb"
)

// Errors returned by statements, usable with errors.Is
var (
	ErrUnrecognizedStatement = minidb.ErrUnrecognizedStatement
	ErrSyntax                = minidb.ErrSyntax
	ErrFieldTooLong          = minidb.ErrFieldTooLong
	ErrTableFull             = minidb.ErrTableFull

	errTransactionsNotSupported = errors.New("transactions are not supported")
	errArgumentsNotSupported    = errors.New("query arguments are not supported")
)

func init() {
	sql.Register(driverName, &Driver{})
}

// Driver implements the database/sql/driver.Driver interface.
// Databases live in memory for the lifetime of the process.
type Driver struct {
	mu        sync.Mutex
	databases map[string]*database
}

// database serializes access to the single threaded engine
type database struct {
	*minidb.Database
	mu     sync.Mutex
	logger *zap.Logger
}

// flush writes out buffered log entries. Syncing stderr fails on
// terminals and pipes, there is nothing to act on in that case.
func (db *database) flush() {
	_ = db.logger.Sync()
}

// Open returns a new connection to the database.
// The name is a connection string, see ParseConnectionString.
func (d *Driver) Open(name string) (driver.Conn, error) {
	config, err := ParseConnectionString(name)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.databases == nil {
		d.databases = make(map[string]*database)
	}

	db, exists := d.databases[config.Name]
	if !exists {
		logConf := logging.DefaultConfig()
		logConf.Level = config.GetZapLevel()
		logger, err := logConf.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}

		aDatabase, err := minidb.NewDatabase(
			context.Background(),
			logger,
			config.Name,
			parser.New(logger),
			minidb.NewPager(logger),
			minidb.WithMaxCachedStatements(config.MaxCachedStatements),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		db = &database{Database: aDatabase, logger: logger}
		d.databases[config.Name] = db

		logger.Info("opened database", zap.String("name", config.Name))
	}

	return &Conn{db: db}, nil
}

// Conn implements the database/sql/driver.Conn interface.
type Conn struct {
	db *database
}

func (c *Conn) Ping(ctx context.Context) error {
	return nil
}

// Close flushes the database logger, the in-memory table outlives
// its connections.
func (c *Conn) Close() error {
	c.db.flush()
	return nil
}

// Prepare returns a prepared statement, bound to this connection.
func (c *Conn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

// PrepareContext returns a prepared statement, bound to this connection.
func (c *Conn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	stmt, err := c.prepare(ctx, query)
	if err != nil {
		return nil, err
	}

	return &Stmt{
		conn:      c,
		statement: stmt,
	}, nil
}

// Begin starts and returns a new transaction.
//
// Deprecated: Drivers should implement ConnBeginTx instead (or additionally).
func (c *Conn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

// BeginTx always fails, there are no transactions.
func (c *Conn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	return nil, errTransactionsNotSupported
}

// ExecContext executes a query that doesn't return rows.
func (c *Conn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	if len(args) > 0 {
		return nil, errArgumentsNotSupported
	}

	stmt, err := c.prepare(ctx, query)
	if err != nil {
		return nil, err
	}

	result, _, err := c.executeStatement(ctx, stmt)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// QueryContext executes a query that may return rows.
func (c *Conn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	if len(args) > 0 {
		return nil, errArgumentsNotSupported
	}

	stmt, err := c.prepare(ctx, query)
	if err != nil {
		return nil, err
	}

	_, rows, err := c.executeStatement(ctx, stmt)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *Conn) prepare(ctx context.Context, query string) (minidb.Statement, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	return c.db.PrepareStatement(ctx, query)
}

// executeStatement runs the statement and drains any rows while holding
// the database lock, the engine must not be touched by two goroutines.
func (c *Conn) executeStatement(ctx context.Context, stmt minidb.Statement) (Result, *Rows, error) {
	c.db.mu.Lock()
	defer c.db.mu.Unlock()

	aResult, err := c.db.ExecuteStatement(ctx, stmt)
	if err != nil {
		return Result{}, nil, err
	}

	rows := &Rows{columns: aResult.Columns}
	if aResult.Rows != nil {
		rows.rows, err = aResult.Rows.Collect(ctx)
		if err != nil {
			return Result{}, nil, err
		}
	}

	return Result{rowsAffected: int64(aResult.RowsAffected)}, rows, nil
}

// Ensure interfaces are implemented
var _ driver.Driver = (*Driver)(nil)
var _ driver.Conn = (*Conn)(nil)
var _ driver.Pinger = (*Conn)(nil)
var _ driver.ConnPrepareContext = (*Conn)(nil)
var _ driver.ConnBeginTx = (*Conn)(nil)
var _ driver.ExecerContext = (*Conn)(nil)
var _ driver.QueryerContext = (*Conn)(nil)
