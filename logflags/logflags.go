package logflags

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	verbose bool
	out     io.Writer = os.Stderr
)

// Setup enables debug-level logging for all layers. Output goes to stderr so
// it never mixes with the dump on stdout.
func Setup(v bool) {
	verbose = v
}

// SetOutput redirects log output, used by tests.
func SetOutput(w io.Writer) {
	out = w
}

func makeLogger(fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Out = out
	logger.Logger.Level = logrus.PanicLevel
	if verbose {
		logger.Logger.Level = logrus.DebugLevel
	}
	return logger
}

// LoaderLogger returns a logger for the binary loading layer.
func LoaderLogger() *logrus.Entry {
	return makeLogger(logrus.Fields{"layer": "loader"})
}

// SectionsLogger returns a logger for section resolution.
func SectionsLogger() *logrus.Entry {
	return makeLogger(logrus.Fields{"layer": "sections"})
}
