package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupLogger builds the service logger. Unknown levels fall back to info.
func SetupLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger.WithField("service", "eventbackend")
}

// LogEvent logs a module/action line with the request id attached.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(log *logrus.Entry, requestID, module, action, message string) {
	log.WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}
