package logger

import (
	"github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger. Production gets JSON
// output at info level, everything else text at the configured level.
func Setup(env, level string) {
	if env == "production" {
		logrus.SetFormatter(new(logrus.JSONFormatter))
		logrus.SetLevel(logrus.InfoLevel)
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}
	logrus.SetLevel(lvl)
}
