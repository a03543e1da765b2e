// Package audit writes the per-day authentication log.
//
// Each login attempt appends exactly one line to <dir>/DD-MM-YYYY.log:
//
//	14:03:59: Successfully authenticated alice.\r\n
//
// Lines are UTF-8 with CRLF endings so the files open cleanly in Windows
// log viewers as well.
package audit

import (
	"path/filepath"
	"time"

	"github.com/hnrobert/lumauth/internal/hostfs"
)

const (
	LineEnding     = "\r\n"
	FileDateLayout = "02-01-2006"
	TimeLayout     = "15:04:05"
)

// Logger appends audit records. A disabled Logger never touches the
// filesystem.
type Logger struct {
	Dir     string
	Enabled bool
	// RedactPasswords replaces attempted passwords with asterisks. Off by
	// default: operators rely on the plaintext to diagnose failed logins.
	RedactPasswords bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// FilePath returns the log file used for records written at t.
func (l *Logger) FilePath(t time.Time) string {
	dir := l.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, t.Format(FileDateLayout)+".log")
}

// Line renders m as it is written at t, including the line ending.
func (l *Logger) Line(t time.Time, m Message) string {
	return t.Format(TimeLayout) + ": " + m.Render(l.RedactPasswords) + LineEnding
}

// Log appends m to today's file. It is a no-op when the logger is disabled.
func (l *Logger) Log(m Message) error {
	if l == nil || !l.Enabled {
		return nil
	}
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	t := now().Local()
	return hostfs.AppendFile(l.FilePath(t), []byte(l.Line(t, m)), 0o644)
}
