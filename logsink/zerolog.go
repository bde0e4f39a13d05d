// Package logsink writes advice output through zerolog.
package logsink

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/CherkashinEvgeny/gintonic/aspect"
)

// Zerolog implements aspect.Logger.
type Zerolog struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// NewZerolog logs every advice line at level.
func NewZerolog(logger zerolog.Logger, level zerolog.Level) *Zerolog {
	return &Zerolog{
		logger: logger,
		level:  level,
	}
}

// New builds a sink writing debug events to w. Events below level are
// dropped. format is "console" or "json".
func New(w io.Writer, level, format string) (*Zerolog, error) {
	threshold, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	logger := zerolog.New(w).Level(threshold).With().Timestamp().Logger()
	return NewZerolog(logger, zerolog.DebugLevel), nil
}

func (z *Zerolog) Log(tag, message string) {
	z.logger.WithLevel(z.level).Str("tag", tag).Msg(message)
}

var _ aspect.Logger = (*Zerolog)(nil)
