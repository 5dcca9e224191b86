package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging(level string) (*logrus.Logger, error) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Hooks: make(logrus.LevelHooks),
		Out:   os.Stdout,
		Level: logLevel,
	}

	return &logger, nil
}
