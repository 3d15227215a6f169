package logger

import (
	"sync"

	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *AppLogger
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance.
// If no logger is set, it returns a default logger.
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	if globalLogger != nil {
		defer mu.RUnlock()
		return globalLogger
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger = NewAppLogger("", models.LoggerConfig{Level: "info", Format: "json"})
	}
	return globalLogger
}

// Global logger convenience functions

// Info logs an info message using the global logger
func Info(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Warn(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Debug(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Error(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields logrus.Fields) {
	GetGlobalLogger().WithFields(fields).Fatal(msg)
}

// WithError returns a log entry with an error field using the global logger
func WithError(err error) *logrus.Entry {
	return GetGlobalLogger().WithError(err)
}
