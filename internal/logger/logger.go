// Package logger provides leveled logging for the corpus pipeline. Output
// goes to a file under ~/.corpus-mcp by default, or to stderr when running
// in a container. Stdout stays reserved for the advisory split diagnostics
// and stdio MCP framing.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level represents the logging level
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Logger is the interface for logging operations
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
	Fatal(format string, v ...any)
	SetLevel(level Level)
}

// LogConfig holds configuration for the logger. Unset fields fall back to
// the LOG_OUTPUT, LOG_LEVEL and LOG_FILE_PATH environment variables.
type LogConfig struct {
	// Output destination: "file" or "stderr"
	Output string
	// Log level: "debug", "info", "warn", "error", "fatal"
	Level string
	// FilePath for file output (only used when Output is "file")
	FilePath string
}

type standardLogger struct {
	logger *log.Logger
	level  Level
}

// NewLogger creates a new logger based on the provided configuration
func NewLogger(config LogConfig) (Logger, error) {
	output := config.Output
	if output == "" {
		output = os.Getenv("LOG_OUTPUT")
	}
	if output == "" {
		output = detectEnvironment()
	}

	var writer io.Writer
	switch output {
	case "stderr":
		writer = os.Stderr
	case "file":
		filePath := config.FilePath
		if filePath == "" {
			filePath = os.Getenv("LOG_FILE_PATH")
		}
		if filePath == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get user home directory: %w", err)
			}
			logDir := filepath.Join(homeDir, ".corpus-mcp")
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
			filePath = filepath.Join(logDir, "corpus.log")
		}
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		writer = file
	default:
		return nil, fmt.Errorf("invalid log output: %s (expected 'file' or 'stderr')", output)
	}

	levelStr := config.Level
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}
	if levelStr == "" {
		levelStr = "info"
	}

	return &standardLogger{
		logger: log.New(writer, "", log.LstdFlags),
		level:  parseLevel(levelStr),
	}, nil
}

// NewNoOpLogger creates a logger that discards all output (useful for tests)
func NewNoOpLogger() Logger {
	return &standardLogger{
		logger: log.New(io.Discard, "", 0),
		level:  FatalLevel,
	}
}

// detectEnvironment picks stderr inside containers, a file otherwise.
func detectEnvironment() string {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return "stderr"
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return "stderr"
	}
	return "file"
}

func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

func (l *standardLogger) SetLevel(level Level) {
	l.level = level
}

func (l *standardLogger) Debug(format string, v ...any) {
	if l.level <= DebugLevel {
		l.log(DebugLevel, format, v...)
	}
}

func (l *standardLogger) Info(format string, v ...any) {
	if l.level <= InfoLevel {
		l.log(InfoLevel, format, v...)
	}
}

func (l *standardLogger) Warn(format string, v ...any) {
	if l.level <= WarnLevel {
		l.log(WarnLevel, format, v...)
	}
}

func (l *standardLogger) Error(format string, v ...any) {
	if l.level <= ErrorLevel {
		l.log(ErrorLevel, format, v...)
	}
}

func (l *standardLogger) Fatal(format string, v ...any) {
	l.log(FatalLevel, format, v...)
	os.Exit(1)
}

func (l *standardLogger) log(level Level, format string, v ...any) {
	l.logger.Printf("[%s] %s", level.String(), fmt.Sprintf(format, v...))
}
