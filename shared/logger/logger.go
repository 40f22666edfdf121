package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger - глобальный экземпляр логгера процесса
var Logger *logrus.Logger

// Init инициализирует структурированный логгер
func Init(serviceName, level string) *logrus.Logger {
	Logger = New(serviceName, level, os.Stdout)
	return Logger
}

// New создаёт JSON-логгер, который пишет в out
func New(serviceName, level string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	// Формат JSON для структурированного логирования
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	l.SetLevel(logrus.InfoLevel)
	if level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			l.SetLevel(lvl)
		}
	}

	// Поле service во всех записях
	l.AddHook(serviceHook{name: serviceName})

	return l
}

// WithRequestID добавляет request-id в контекст логгера
func WithRequestID(logger *logrus.Logger, requestID string) *logrus.Entry {
	if requestID == "" {
		return logrus.NewEntry(logger)
	}
	return logger.WithField("request_id", requestID)
}

type serviceHook struct {
	name string
}

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(e *logrus.Entry) error {
	if _, ok := e.Data["service"]; !ok {
		e.Data["service"] = h.name
	}
	return nil
}
