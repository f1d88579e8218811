package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/RichardKnop/minidb/internal/minidb"
	"github.com/RichardKnop/minidb/internal/parser"
	"github.com/RichardKnop/minidb/internal/pkg/logging"
	"github.com/RichardKnop/minidb/internal/repl"
)

const defaultDbName = "db"

var (
	logLevelFlag string
)

func init() {
	flag.StringVar(&logLevelFlag, "log-level", "warn", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, err := logging.New(logLevelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %s\n", err)
		return 1
	}
	defer logger.Sync() // flushes buffer, if any

	aDatabase, err := minidb.NewDatabase(ctx, logger, defaultDbName, parser.New(logger), minidb.NewPager(logger))
	if err != nil {
		logger.Error("error initializing database", zap.Error(err))
		return 1
	}

	aShell := repl.New(logger, aDatabase, os.Stdin, os.Stdout)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return runShell(ctx, logger, aShell, os.Stdout, sigChan)
}

// runShell runs the shell until it stops or a signal arrives and maps the
// outcome to an exit code: 0 after .exit, 1 on input failure or signal.
func runShell(ctx context.Context, logger *zap.Logger, aShell *repl.Shell, out io.Writer, sigChan <-chan os.Signal) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- aShell.Run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Error reading input")
			logger.Error("shell stopped", zap.Error(err))
			return 1
		}
		return 0
	case sig := <-sigChan:
		logger.Debug("received signal", zap.String("signal", sig.String()))
		return 1
	}
}
