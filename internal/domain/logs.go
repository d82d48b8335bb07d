package domain

import (
	"log/slog"
	"strings"
	"time"
)

// DefaultLogCap is the number of log entries kept in memory.
const DefaultLogCap = 1000

// LogEntry is one timestamped, leveled status line.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Fields  string
}

// String renders the entry as a single line.
func (e LogEntry) String() string {
	var b strings.Builder
	b.WriteString(e.Time.Format("15:04:05"))
	b.WriteByte(' ')
	b.WriteString(e.Level.String())
	b.WriteByte(' ')
	b.WriteString(e.Message)
	if e.Fields != "" {
		b.WriteByte(' ')
		b.WriteString(e.Fields)
	}
	return b.String()
}
