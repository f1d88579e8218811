package minidb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/RichardKnop/minidb/internal/minidb"
)

const defaultDatabaseName = "default"

// ConnectionConfig holds parsed connection string parameters
type ConnectionConfig struct {
	Name                string // In-memory database name, connections with the same name share a table
	LogLevel            string // Log level: debug, info, warn, error (default: warn)
	MaxCachedStatements int    // Maximum number of parsed statements to cache (default: 100)
}

// DefaultConnectionConfig returns default configuration
func DefaultConnectionConfig(name string) *ConnectionConfig {
	if name == "" {
		name = defaultDatabaseName
	}
	return &ConnectionConfig{
		Name:                name,
		LogLevel:            "warn",
		MaxCachedStatements: minidb.DefaultMaxCachedStatements,
	}
}

// ParseConnectionString parses a connection string with optional query parameters.
//
// Format: name?param1=value1&param2=value2
//
// Supported parameters:
//   - log_level=debug|info|warn|error : Set logging level (default: warn)
//   - max_cached_statements=N         : Size of the parsed statement cache (default: 100)
//
// Examples:
//   - "users"                                   : Default settings
//   - "users?log_level=debug"                   : Enable debug logging
//   - "users?log_level=info&max_cached_statements=10" : Both settings
func ParseConnectionString(connStr string) (*ConnectionConfig, error) {
	// Split on first '?' to separate name from query params
	parts := strings.SplitN(connStr, "?", 2)

	config := DefaultConnectionConfig(parts[0])

	if len(parts) == 1 {
		return config, nil
	}

	queryParams, err := url.ParseQuery(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid connection string query parameters: %w", err)
	}

	if logLevel := queryParams.Get("log_level"); logLevel != "" {
		logLevel = strings.ToLower(logLevel)
		switch logLevel {
		case "debug", "info", "warn", "error":
			config.LogLevel = logLevel
		default:
			return nil, fmt.Errorf("invalid log_level parameter: must be 'debug', 'info', 'warn', or 'error', got %q", logLevel)
		}
	}

	if maxStr := queryParams.Get("max_cached_statements"); maxStr != "" {
		maxStatements, err := strconv.Atoi(maxStr)
		if err != nil {
			return nil, fmt.Errorf("invalid max_cached_statements parameter: must be a positive integer, got %q", maxStr)
		}
		if maxStatements < 1 {
			return nil, fmt.Errorf("invalid max_cached_statements parameter: must be positive, got %d", maxStatements)
		}
		config.MaxCachedStatements = maxStatements
	}

	return config, nil
}

// GetZapLevel converts log level string to zap.Level
func (c *ConnectionConfig) GetZapLevel() zap.AtomicLevel {
	switch c.LogLevel {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	}
}
