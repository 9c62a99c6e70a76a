package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log *logrus.Logger

// Init инициализирует глобальный логгер из переменных окружения.
// Вызывается один раз при старте (main.go, TestMain).
func Init() {
	Log = logrus.New()

	// По умолчанию - "info". Для отладки можно выставить LOG_LEVEL=debug.
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	Configure(logLevel, os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure применяет настройки из конфига поверх уже созданного логгера.
// Пустые значения не меняют текущую настройку.
func Configure(level, format string, out io.Writer) {
	if Log == nil {
		Log = logrus.New()
	}

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		Log.SetLevel(lvl)
	}

	// "json" - для сбора логов, "text" - для удобной разработки.
	switch strings.ToLower(format) {
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	if out != nil {
		Log.SetOutput(out)
	}
}
