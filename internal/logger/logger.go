// Package logger provides structured logging for the esmap CLI
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with esmap-specific helpers
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // console output instead of JSON lines
	Output io.Writer
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a logger. Output defaults to stderr so that command output on
// stdout stays machine-readable.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}
	zlog := zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "esmap").
		Logger()
	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything.
func Nop() *Logger { return &Logger{zlog: zerolog.Nop()} }

// Zerolog returns the underlying zerolog logger
func (l *Logger) Zerolog() *zerolog.Logger { return &l.zlog }

// Debug logs a debug message
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }

// Info logs an info message
func (l *Logger) Info() *zerolog.Event { return l.zlog.Info() }

// Warn logs a warning message
func (l *Logger) Warn() *zerolog.Event { return l.zlog.Warn() }

// Error logs an error message
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }

// Component returns a sub-logger tagged with a component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{zlog: l.zlog.With().Str("component", name).Logger()}
}

// LogWarnings logs ingestion warnings of one mapping file.
func (l *Logger) LogWarnings(source string, warnings []string) {
	for _, w := range warnings {
		l.zlog.Warn().
			Str("event", "mapping_warning").
			Str("mapping", source).
			Msg(w)
	}
}

// LogUnknownFields logs flat field names a query uses but the mapping lacks.
func (l *Logger) LogUnknownFields(fields []string) {
	for _, f := range fields {
		l.zlog.Warn().
			Str("event", "unknown_field").
			Str("field", f).
			Msg("query uses a field that is not in the mapping")
	}
}

// LogProjected logs a finished projection.
func (l *Logger) LogProjected(typeName string, types int, duration time.Duration) {
	l.zlog.Debug().
		Str("event", "projected").
		Str("type", typeName).
		Int("types", types).
		Dur("duration_ms", duration).
		Msg("mapping projected")
}
