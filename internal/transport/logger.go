package transport

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// zerologAdapter routes resty's internal logging to the global zerolog logger.
type zerologAdapter struct{}

func (zerologAdapter) Errorf(format string, v ...interface{}) {
	log.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (zerologAdapter) Warnf(format string, v ...interface{}) {
	log.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (zerologAdapter) Debugf(format string, v ...interface{}) {
	log.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
