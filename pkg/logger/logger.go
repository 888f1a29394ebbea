// Package logger provides the small leveled logger used by the CLI.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Level represents log level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	globalLevel   = LevelInfo
	globalColored = true
	globalMu      sync.RWMutex
)

var (
	styleDebug = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Logger provides leveled logging with a fixed prefix
type Logger struct {
	prefix string
}

// New creates a new logger with the given prefix
func New(prefix string) *Logger {
	return &Logger{prefix: prefix}
}

// SetGlobalLevel sets the global log level
func SetGlobalLevel(level Level) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLevel = level
}

// SetColored toggles ANSI styling of the level tags
func SetColored(colored bool) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalColored = colored
}

// ParseLevel converts a string to a Level. The empty string defaults to
// info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", s)
	}
}

func (l *Logger) log(level Level, style lipgloss.Style, tag, format string, args ...any) {
	globalMu.RLock()
	min, colored := globalLevel, globalColored
	globalMu.RUnlock()
	if level < min {
		return
	}
	if colored {
		tag = style.Render(tag)
	}
	fmt.Fprintf(os.Stderr, "%s %s %s\n", tag, l.prefix, fmt.Sprintf(format, args...))
}

// Debugf logs at debug level
func (l *Logger) Debugf(format string, args ...any) {
	l.log(LevelDebug, styleDebug, "DBG", format, args...)
}

// Infof logs at info level
func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, styleInfo, "INF", format, args...)
}

// Warnf logs at warn level
func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, styleWarn, "WRN", format, args...)
}

// Errorf logs at error level
func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, styleError, "ERR", format, args...)
}
