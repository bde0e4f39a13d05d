// Package aspect wraps operations with before, after and around advice.
//
// Advice is applied explicitly at the call site:
//
//	n, err := aspect.WrapAround("Map.Get", get, aspect.LogAround(logger, aspect.DefaultTag))
//
// or through a Container that binds advice to operation identities.
package aspect

import (
	"fmt"
	"time"
)

// Operation is a unit of work observed by advice.
type Operation[T any] func() (T, error)

// Void adapts an operation without a result.
func Void(fn func() error) Operation[struct{}] {
	return func() (struct{}, error) {
		return struct{}{}, fn()
	}
}

// Hook is called with the identity of the operation it observes.
type Hook func(identity string) error

// TimingSink receives the elapsed time of an operation.
type TimingSink func(identity string, elapsed time.Duration) error

type Kind int

const (
	KindBefore Kind = iota + 1
	KindAfter
	KindAround
)

func (k Kind) String() string {
	switch k {
	case KindBefore:
		return "before"
	case KindAfter:
		return "after"
	case KindAround:
		return "around"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Advice is one of Before, After or Around. Hook is set for the first two,
// Sink for Around.
type Advice struct {
	Kind Kind
	Name string
	Hook Hook
	Sink TimingSink
}

func Before(name string, hook Hook) Advice {
	return Advice{Kind: KindBefore, Name: name, Hook: hook}
}

func After(name string, hook Hook) Advice {
	return Advice{Kind: KindAfter, Name: name, Hook: hook}
}

func Around(name string, sink TimingSink) Advice {
	return Advice{Kind: KindAround, Name: name, Sink: sink}
}

// Invocation lives for a single around execution.
type Invocation struct {
	Identity string
	Start    time.Time
	Elapsed  time.Duration
}
