// Package log builds [slog.Logger] values from level and format strings.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"

	LevelEnv  = "GOTHREAD_LOG_LEVEL"
	FormatEnv = "GOTHREAD_LOG_FORMAT"
)

// NewWithCurrentConfig creates a [slog.Logger] writing to stderr, configured
// from the GOTHREAD_LOG_LEVEL and GOTHREAD_LOG_FORMAT environment variables.
// An unknown format falls back to text.
func NewWithCurrentConfig() *slog.Logger {
	h, err := CreateHandler(os.Stderr, os.Getenv(LevelEnv), os.Getenv(FormatEnv))
	if err != nil {
		h, _ = CreateHandler(os.Stderr, os.Getenv(LevelEnv), TextFormat)
	}

	return slog.New(h)
}

// CreateHandler creates a [slog.Handler] by strings. Records are rendered by
// charmbracelet/log in the requested format.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	var formatter charmlog.Formatter

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		formatter = charmlog.JSONFormatter
	case LogfmtFormat:
		formatter = charmlog.LogfmtFormatter
	case TextFormat, "":
		formatter = charmlog.TextFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", logFormat)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(GetLevel(logLevel)),
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "panic", "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
