package mmdc

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger with "HH:MM:SS.ms" timestamps writing to w.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "mmdc",
	})
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// since formats the elapsed time for log fields.
func since(start time.Time) time.Duration {
	return time.Since(start).Round(time.Millisecond)
}
