package logging

// Leveled logging for the j1587 CLI, backed by zerolog. The console gets
// human-readable output on stderr; an optional log file additionally
// receives the structured JSON stream.

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// Logger provides leveled logging
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// NewLogger creates a new logger
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	writers := []io.Writer{console}

	l := &Logger{}
	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		writers = append(writers, file)
	}

	l.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Logger().
		Level(zerologLevel(level))
	return l, nil
}

func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LogLevelSilent:
		return zerolog.Disabled
	case LogLevelError:
		return zerolog.ErrorLevel
	case LogLevelInfo:
		return zerolog.InfoLevel
	case LogLevelVerbose:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Trace().Msgf(format, v...)
}
