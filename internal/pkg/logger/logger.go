package logger

import (
	"time"

	"github.com/arkhami/duitku/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger wraps logrus with application defaults
type AppLogger struct {
	*logrus.Logger
	serviceName string
}

// NewAppLogger creates a new application logger
func NewAppLogger(serviceName string, config models.LoggerConfig) *AppLogger {
	logger := logrus.New()

	// Set log level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set JSON formatter for structured logging
	if config.Format != "text" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	return &AppLogger{
		Logger:      logger,
		serviceName: serviceName,
	}
}

// WithFields adds custom fields to a log entry, always tagging the service name
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	entry := al.Logger.WithFields(fields)
	if al.serviceName != "" {
		entry = entry.WithField("service", al.serviceName)
	}
	return entry
}

// WithError adds an error field to a log entry
func (al *AppLogger) WithError(err error) *logrus.Entry {
	return al.WithFields(logrus.Fields{}).WithError(err)
}

// WithRequestContext adds request context fields
func (al *AppLogger) WithRequestContext(requestID, userID, method, path string) *logrus.Entry {
	return al.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"method":     method,
		"path":       path,
	})
}

// LogHTTPRequest logs a completed HTTP request with its outcome
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"client_ip":   clientIP,
		"user_id":     userID,
		"request_id":  requestID,
		"status_code": statusCode,
		"latency_ms":  latency.Milliseconds(),
	})

	switch {
	case err != nil:
		entry.WithError(err).Error("HTTP request failed")
	case statusCode >= 500:
		entry.Error("HTTP request completed with server error")
	case statusCode >= 400:
		entry.Warn("HTTP request completed with client error")
	default:
		entry.Info("HTTP request completed")
	}
}
