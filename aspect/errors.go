package aspect

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrBadPointcut = errors.New("bad pointcut")
	ErrNilAdvice   = errors.New("advice has no callback")
)

// HookError reports a failure raised by advice rather than by the operation.
type HookError struct {
	Identity string
	Kind     Kind
	Err      error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("%s: %s advice: %v", e.Identity, e.Kind, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

func (e *HookError) Cause() error {
	return e.Err
}

func hookFailure(identity string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &HookError{Identity: identity, Kind: kind, Err: err}
}
