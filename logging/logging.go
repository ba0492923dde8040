// Package logging builds the leveled zap logger each run writes its results
// to.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultLevel logs everything, debug messages included.
const DefaultLevel = zapcore.DebugLevel

// Options describes how New builds a logger.
type Options struct {
	// Level is a zap level name: debug, info, warn, error, dpanic, panic or
	// fatal. "verbose" is accepted as an alias for debug. Empty means
	// DefaultLevel.
	Level string

	// Format is FormatConsole or FormatJSON. Empty means FormatConsole.
	Format string

	// NoColor disables ANSI colored levels in console output.
	NoColor bool
}

// ValidFormats lists the encodings New accepts.
var ValidFormats = []string{FormatConsole, FormatJSON}

// IsValidFormat reports whether format names a supported encoding.
// Comparison is case-insensitive.
func IsValidFormat(format string) bool {
	format = strings.ToLower(format)
	for _, valid := range ValidFormats {
		if format == valid {
			return true
		}
	}
	return false
}

// ParseLevel converts a level name into a zapcore.Level.
//
// Returns DefaultLevel and an error if the name isn't recognized.
func ParseLevel(level string) (zapcore.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "":
		return DefaultLevel, nil
	case "verbose":
		return zapcore.DebugLevel, nil
	}

	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// New returns a logger writing entries to w.
//
// An invalid Options.Level doesn't fail; New writes a warning to w and uses
// DefaultLevel so the misconfiguration is visible. An invalid Options.Format
// returns an error.
func New(w io.Writer, opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		_, _ = io.WriteString(w, "WARNING: "+err.Error()+
			"; valid levels are: verbose, debug, info, warn, error, dpanic, "+
			"panic, fatal. Defaulting to \""+DefaultLevel.String()+"\".\n")
	}

	enc, err := newEncoder(opts)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(w))), nil
}

func newEncoder(opts Options) (zapcore.Encoder, error) {
	switch strings.ToLower(opts.Format) {
	case "", FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		if !opts.NoColor {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatJSON:
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	}
	const errFmt = "invalid log format %q: must be one of: %s"
	return nil, fmt.Errorf(errFmt, opts.Format, strings.Join(ValidFormats, ", "))
}

// Close flushes any buffered entries from logger.
//
// Terminals and pipes can't be fsync'd, so ENOTTY and EINVAL from Sync are
// dropped.
func Close(logger *zap.Logger) error {
	err := logger.Sync()
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) {
		return nil
	}
	return err
}
