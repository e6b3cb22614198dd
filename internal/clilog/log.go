// Package clilog configures structured logging for cmd/strictjson: a small
// Format enum plus a constructor that turns level/format strings (as set by
// CLI flags) into a log/slog.Handler. The codec packages themselves never
// log — this is CLI-only.
package clilog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format is the log output format.
type Format string

const (
	// FormatText outputs logs in slog's default human-readable format.
	FormatText Format = "text"
	// FormatJSON outputs logs as JSON objects, one per line.
	FormatJSON Format = "json"
)

// ErrUnknownLevel indicates an unrecognized log level string.
var ErrUnknownLevel = errors.New("clilog: unknown log level")

// ErrUnknownFormat indicates an unrecognized log format string.
var ErrUnknownFormat = errors.New("clilog: unknown log format")

// NewHandler builds a slog.Handler writing to w at the given level and
// format, parsed from CLI flag strings.
func NewHandler(w io.Writer, levelStr, formatStr string) (slog.Handler, error) {
	level, err := parseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	format, err := parseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts), nil
	}
	return slog.NewTextHandler(w, opts), nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

func parseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
