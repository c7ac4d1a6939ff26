package util

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Config holds runtime settings and flags.
type Config struct {
	SeedText    string
	DSN         string
	Dialect     string // postgres|sqlite
	EventsPath  string
	TextDensity string // concise|standard|rich
	LogFile     string
	LogLevel    string
	Theme       string
	Version     string
}

// Env returns the value of key, or def when unset or blank.
func Env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// DetectDialect guesses the dialect from a DSN when none was given.
func DetectDialect(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") || strings.Contains(lower, "host=") {
		return DialectPostgres
	}
	return DialectSQLite
}

// NewLogger opens path for appending and returns a zerolog logger writing to
// it. The terminal belongs to the TUI, so an empty path discards output.
func NewLogger(path, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if strings.TrimSpace(path) == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	log := zerolog.New(f).Level(lvl).With().Timestamp().Str("app", "devlife").Logger()
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
