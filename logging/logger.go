package logging

import (
	"os"
	"time"

	"github.com/op/go-logging"
)

var logFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module} ▶ %{level:.4s}%{color:reset} %{message}`,
)

// NewLogger returns a logger for module, leveled at level (one of
// op/go-logging's CRITICAL/ERROR/WARNING/NOTICE/INFO/DEBUG, case
// sensitive per that package's own LogLevel parser). An unrecognized
// level falls back to INFO rather than failing the caller.
func NewLogger(level, module string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logFormat)
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)

	logger := logging.MustGetLogger(module)
	logger.SetBackend(leveled)

	return logger
}

// ParseTime decomposes d into whole hours, minutes, and seconds, for
// reporting a search's wall-clock duration.
func ParseTime(d time.Duration) (hours, minutes, seconds uint32) {
	total := uint32(d.Seconds())
	hours = total / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60

	return hours, minutes, seconds
}
