package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
)

const (
	LOG_FORMAT       = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{module} %{shortfile} %{message}"
	LOG_COLOR_FORMAT = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{module} %{shortfile} %{message}"
)

var log = logging.MustGetLogger("logger")

// InitConsoleLog routes every module logger to stderr with colours at the
// given level ("debug", "info", "warning", "error", ...).
func InitConsoleLog(levelString string) error {
	return InitLog(os.Stderr, levelString, true)
}

// InitLog routes every module logger to w at the given level. Colour codes
// are only emitted when color is set.
func InitLog(w io.Writer, levelString string, color bool) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return fmt.Errorf("InitLog(%q): %w", levelString, err)
	}

	format := LOG_FORMAT
	if color {
		format = LOG_COLOR_FORMAT
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(format),
		),
	)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
	log.Debugf("log level set to %s", level)

	return nil
}
