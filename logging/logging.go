package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	mu     sync.Mutex
)

// InitLogger configures the process-wide logger at the given level.
// Calling it again only changes the level.
func InitLogger(level logrus.Level) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newLogger()
	}
	logger.SetLevel(level)
	return logger
}

// GetLogger returns the process-wide logger, creating it at info level if
// InitLogger has not run yet.
func GetLogger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newLogger()
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	// Messages are written raw so multi-line bodies stay readable.
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableQuote:    true,
	})
	return l
}
