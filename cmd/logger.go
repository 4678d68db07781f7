package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// configureLogger sets the level from LOG_LEVEL, defaulting to info.
// --verbose always wins and enables debug output.
func configureLogger(log *logrus.Logger, logLevel string, verbose bool) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return
	}

	if logLevel == "" {
		logLevel = "info"
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}
