package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  = newLogger(os.Stdout, logrus.InfoLevel)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel)
)

func InitLogger() {
	InitLoggerWithLevel("info")
}

// InitLoggerWithLevel sets up both loggers; an unknown level falls back to info.
func InitLoggerWithLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	InfoLogger = newLogger(os.Stdout, lvl)
	ErrorLogger = newLogger(os.Stderr, logrus.ErrorLevel)

	if err != nil {
		InfoLogger.Warnf("unknown LOG_LEVEL %q, using info", level)
	}
}

// SilenceLoggers discards all output; used by tests.
func SilenceLoggers() {
	InfoLogger = newLogger(io.Discard, logrus.PanicLevel)
	ErrorLogger = newLogger(io.Discard, logrus.PanicLevel)
}

func newLogger(out io.Writer, lvl logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(lvl)
	return l
}
