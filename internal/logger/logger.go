package logger

import (
	"os"
	"time"

	"github.com/Perod122/SinkIt/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configura o logger global a partir da configuração da aplicação.
// Em development a saída é colorida no console; em production é JSON puro.
func Init(cfg *config.Config) {
	level := zerolog.InfoLevel
	var logger zerolog.Logger

	if cfg.App.Environment == "development" {
		level = zerolog.DebugLevel
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	log = logger.Level(level).With().Timestamp().Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
