package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/RichardKnop/minidb/internal/minidb"
)

const (
	Prompt  = "db > "
	Goodbye = "Closing down Pipi Database"
)

var (
	ErrUnrecognizedMetaCommand = errors.New("unrecognized meta command")
	// ErrReadInput is fatal, the shell cannot make progress without input
	ErrReadInput = errors.New("error reading input")
)

type metaCommand int

const (
	Unknown metaCommand = iota + 1
	Help
	Exit
	Constants
	Stats
)

type Shell struct {
	db     *minidb.Database
	reader *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

func New(logger *zap.Logger, db *minidb.Database, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		db:     db,
		reader: bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run reads and executes commands until .exit, returning nil, or until
// reading input fails, returning an error wrapping ErrReadInput.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printPrompt()

		line, err := s.readLine()
		if err != nil {
			return err
		}

		if line == "" {
			continue
		}

		if isMetaCommand(line) {
			if done := s.handleMetaCommand(line); done {
				return nil
			}
			continue
		}

		s.handleStatement(ctx, line)
	}
}

func (s *Shell) printPrompt() {
	fmt.Fprint(s.out, Prompt)
}

// readLine strips the line terminator, both \n and \r\n are accepted.
// A final line without a terminator is returned before EOF is reported.
func (s *Shell) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isMetaCommand(line string) bool {
	return len(line) > 0 && line[:1] == "."
}

func doMetaCommand(line string) metaCommand {
	switch line {
	case ".help":
		return Help
	case ".exit":
		return Exit
	case ".constants":
		return Constants
	case ".stats":
		return Stats
	default:
		return Unknown
	}
}

func (s *Shell) handleMetaCommand(line string) bool {
	switch doMetaCommand(line) {
	case Help:
		fmt.Fprintln(s.out, ".help       - Show available commands")
		fmt.Fprintln(s.out, ".exit       - Closes program")
		fmt.Fprintln(s.out, ".constants  - Show row and page layout constants")
		fmt.Fprintln(s.out, ".stats      - Show rows, allocated pages and cached statements")
	case Exit:
		fmt.Fprintln(s.out, Goodbye)
		return true
	case Constants:
		fmt.Fprintln(s.out, "Constants:")
		fmt.Fprintf(s.out, "ROW_SIZE: %d\n", minidb.RowSize)
		fmt.Fprintf(s.out, "PAGE_SIZE: %d\n", minidb.PageSize)
		fmt.Fprintf(s.out, "ROWS_PER_PAGE: %d\n", minidb.RowsPerPage)
		fmt.Fprintf(s.out, "TABLE_MAX_PAGES: %d\n", minidb.MaxPages)
		fmt.Fprintf(s.out, "TABLE_MAX_ROWS: %d\n", minidb.MaxRows)
	case Stats:
		stats := s.db.Stats()
		fmt.Fprintf(s.out, "Rows: %d/%d\n", stats.NumRows, stats.MaxRows)
		fmt.Fprintf(s.out, "Pages: %d/%d\n", stats.TotalPages, stats.MaxPages)
		fmt.Fprintf(s.out, "Cached statements: %d/%d\n", stats.CachedStatements, stats.MaxCachedStatements)
	case Unknown:
		s.logger.Debug("meta command failed", zap.String("line", line), zap.Error(ErrUnrecognizedMetaCommand))
		fmt.Fprintf(s.out, "Unrecognized command '%s'.\n", line)
	}
	return false
}

func (s *Shell) handleStatement(ctx context.Context, line string) {
	stmt, err := s.db.PrepareStatement(ctx, line)
	if err != nil {
		switch {
		case errors.Is(err, minidb.ErrFieldTooLong):
			fmt.Fprintln(s.out, "String is too long.")
		case errors.Is(err, minidb.ErrSyntax):
			fmt.Fprintln(s.out, "Syntax error. Could not parse statement.")
		default:
			fmt.Fprintf(s.out, "Unrecognized keyword at start of '%s'.\n", line)
		}
		return
	}

	aResult, err := s.db.ExecuteStatement(ctx, stmt)
	if err != nil {
		if errors.Is(err, minidb.ErrTableFull) {
			fmt.Fprintln(s.out, "Error: Table full.")
			return
		}
		s.logger.Error("error executing statement", zap.Error(err))
		fmt.Fprintf(s.out, "Error executing statement: %s\n", err)
		return
	}

	if stmt.Kind == minidb.Select {
		aRow, err := aResult.Rows(ctx)
		for ; err == nil; aRow, err = aResult.Rows(ctx) {
			fmt.Fprintln(s.out, aRow.String())
		}
		if !errors.Is(err, minidb.ErrNoMoreRows) {
			s.logger.Error("error reading rows", zap.Error(err))
			fmt.Fprintf(s.out, "Error executing statement: %s\n", err)
			return
		}
	}

	fmt.Fprintln(s.out, "Executed.")
}
