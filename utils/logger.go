package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

var (
	// Log is the application logger. It writes to stdout until InitLogger
	// attaches the log directory.
	Log = newJSONLogger(os.Stdout)

	ErrorLogger *logrus.Logger
	PanicLogger *logrus.Logger
)

func newJSONLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return l
}

// InitLogger opens app.log, errors.log and panics.log under logsDir.
func InitLogger(logsDir, level string) error {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	appLogFile, err := openLogFile(logsDir, "app.log")
	if err != nil {
		return err
	}
	errorLogFile, err := openLogFile(logsDir, "errors.log")
	if err != nil {
		return err
	}
	panicLogFile, err := openLogFile(logsDir, "panics.log")
	if err != nil {
		return err
	}

	Log.SetOutput(io.MultiWriter(os.Stdout, appLogFile))
	if lvl, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	} else {
		Log.Warnf("unknown log level %q, keeping %s", level, Log.GetLevel())
	}

	ErrorLogger = newJSONLogger(errorLogFile)
	PanicLogger = newJSONLogger(panicLogFile)

	return nil
}

func openLogFile(dir, name string) (*os.File, error) {
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, nil
}

func LogError(err error, context string) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "unknown"
		line = 0
	}

	fields := logrus.Fields{
		"caller":  fmt.Sprintf("%s:%d", filepath.Base(file), line),
		"context": context,
	}
	Log.WithFields(fields).WithError(err).Error("request failed")
	if ErrorLogger != nil {
		ErrorLogger.WithFields(fields).WithError(err).Error("request failed")
	}
}

func LogPanic(recovered interface{}, context string) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	fields := logrus.Fields{
		"caller":    fmt.Sprintf("%s:%d", filepath.Base(file), line),
		"context":   context,
		"recovered": fmt.Sprint(recovered),
	}
	Log.WithFields(fields).Error("panic recovered")
	if PanicLogger != nil {
		PanicLogger.WithFields(fields).Error("panic recovered")
	}
}
