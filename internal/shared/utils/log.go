package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global logger. Production emits plain JSON;
// everything else gets the human console writer.
func InitLogger(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func withFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}

func LogInfo(msg string, fields map[string]interface{}) {
	withFields(log.Info(), fields).Msg(msg)
}

func LogWarn(msg string, fields map[string]interface{}) {
	withFields(log.Warn(), fields).Msg(msg)
}

func LogError(msg string, err error, fields map[string]interface{}) {
	withFields(log.Error().Err(err), fields).Msg(msg)
}

// LogFatal logs and exits the process.
func LogFatal(msg string, err error, fields map[string]interface{}) {
	withFields(log.Fatal().Err(err), fields).Msg(msg)
}
