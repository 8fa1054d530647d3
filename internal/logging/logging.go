// Package logging provides the shared application logger.
package logging

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	defaultLogger *log.Logger
	once          sync.Once
)

// Get returns the shared logger. Debug output is enabled when
// RESTFORGE_DEBUG is set; otherwise only warnings and errors surface,
// keeping generated-plan output on stdout clean.
func Get() *log.Logger {
	once.Do(func() {
		defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Prefix:          "restforge",
		})
		if os.Getenv("RESTFORGE_DEBUG") != "" {
			defaultLogger.SetLevel(log.DebugLevel)
			defaultLogger.SetReportCaller(true)
		} else {
			defaultLogger.SetLevel(log.WarnLevel)
		}
	})
	return defaultLogger
}

// Package-level convenience functions for quick logging
func Debug(msg string, keyvals ...interface{}) {
	Get().Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	Get().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	Get().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	Get().Error(msg, keyvals...)
}
