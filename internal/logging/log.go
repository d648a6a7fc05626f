// Package logging is a thin helper around "github.com/op/go-logging"
// so every other package can get a preconfigured *logging.Logger with
// a single call instead of repeating backend/formatter setup.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/navigill7/chess/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger
	bookLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
	bookLog = logging.MustGetLogger("book")
}

// GetLog returns the standard logger configured from config.LogLevel.
func GetLog() *logging.Logger {
	return configure(standardLog, config.LogLevel)
}

// GetSearchLog returns the search-trace logger configured from
// config.SearchLogLevel. Search emits most of its traffic at DEBUG so
// this logger is normally left quiet in production.
func GetSearchLog() *logging.Logger {
	return configure(searchLog, config.SearchLogLevel)
}

// GetTestLog returns a logger for use in _test.go files.
func GetTestLog() *logging.Logger {
	return configure(testLog, config.TestLogLevel)
}

// GetBookLog returns the opening book logger.
func GetBookLog() *logging.Logger {
	return configure(bookLog, config.LogLevel)
}

func configure(l *logging.Logger, level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}
