package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var labels = map[Level]*color.Color{
	LevelDebug: color.New(color.Faint),
	LevelInfo:  color.New(color.FgGreen),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

func (l Level) label() string {
	switch l {
	case LevelDebug:
		return "[DBUG] "
	case LevelInfo:
		return "[INFO] "
	case LevelWarn:
		return "[WARN] "
	default:
		return "[EROR] " // 4 chars align
	}
}

// ParseLevel accepts debug, info, warn and error (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger writes diagnostic lines for the operator. The VPN daemon captures
// the helper's stderr into its own log, so this is the place for backend
// errors that must not influence the login decision. A nil *Logger discards
// everything.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	min Level
	now func() time.Time
}

func New(out io.Writer, min Level) *Logger {
	return &Logger{out: out, min: min, now: time.Now}
}

// Stderr returns a logger writing to os.Stderr.
func Stderr(min Level) *Logger {
	return New(os.Stderr, min)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(lvl Level, format string, args ...interface{}) {
	if l == nil || l.out == nil || lvl < l.min {
		return
	}
	now := l.now().Format("2006/01/02 15:04:05")
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s lumauth[%d]: %s%s\n", now, os.Getpid(), labels[lvl].Sprint(lvl.label()), msg)
}
