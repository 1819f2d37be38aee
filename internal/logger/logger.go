package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New собирает логгер процесса. Режим берется из GIN_MODE: в release
// пишем JSON на уровне info, во всех остальных окружениях - читаемый
// текст с debug.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.InfoLevel)
		return l
	}

	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}
