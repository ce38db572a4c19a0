package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger shared by services, controllers and commands.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "authdemo",
})

// SetLevel parses a level name ("debug", "info", "warn", "error").
// Unknown names leave the current level in place.
func SetLevel(name string) {
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		L.Warn("unknown log level, keeping current", "level", name)
		return
	}
	L.SetLevel(lvl)
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Fatalf logs an error-level formatted message and exits.
func Fatalf(format string, v ...interface{}) {
	L.Fatal(fmt.Sprintf(format, v...))
}
