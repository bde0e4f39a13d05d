package aspect

import (
	"fmt"
	"time"
)

const DefaultTag = "TraceAspect"

// Logger is the only output channel of the package.
type Logger interface {
	Log(tag, message string)
}

type LoggerFunc func(tag, message string)

func (f LoggerFunc) Log(tag, message string) {
	f(tag, message)
}

var Discard Logger = LoggerFunc(func(string, string) {})

func BeforeMessage(identity string) string {
	return identity + ": before"
}

func AfterMessage(identity string) string {
	return identity + ": after"
}

func AroundMessage(identity string, elapsed time.Duration) string {
	return fmt.Sprintf("%s --> [%dms]", identity, elapsed.Milliseconds())
}

func LogBefore(logger Logger, tag string) Hook {
	return func(identity string) error {
		logger.Log(tag, BeforeMessage(identity))
		return nil
	}
}

func LogAfter(logger Logger, tag string) Hook {
	return func(identity string) error {
		logger.Log(tag, AfterMessage(identity))
		return nil
	}
}

func LogAround(logger Logger, tag string) TimingSink {
	return func(identity string, elapsed time.Duration) error {
		logger.Log(tag, AroundMessage(identity, elapsed))
		return nil
	}
}
