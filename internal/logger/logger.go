// Package logger configures the op/go-logging backend shared by the
// command-line tools.
package logger

import (
	"io"

	"github.com/op/go-logging"
)

const (
	LOG_FORMAT       = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{module} %{message}"
	LOG_COLOR_FORMAT = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{module} %{message}"
)

// InitConsoleLog sends every module's log to out at levelString or above.
// Color codes are only written when color is set.
func InitConsoleLog(out io.Writer, levelString string, color bool) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return err
	}
	format := LOG_FORMAT
	if color {
		format = LOG_COLOR_FORMAT
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(out, "", 0),
			logging.MustStringFormatter(format),
		),
	)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
	return nil
}
