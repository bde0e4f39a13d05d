package aspect

import (
	"path"
	"sync"

	"github.com/pkg/errors"
)

// Aspect selects the advice that applies to an operation.
type Aspect interface {
	Advice(identity string) []Advice
}

// Container is an ordered registry of aspects. Advice registered first
// runs outermost.
type Container struct {
	mu      sync.RWMutex
	aspects []Aspect
}

// Register binds advice to every operation whose identity matches pointcut.
// A pointcut is an identity such as "MainActivity.testAround" or a
// path.Match pattern such as "MainActivity.test*".
func (c *Container) Register(pointcut string, advice ...Advice) error {
	if pointcut == "" {
		return errors.Wrap(ErrBadPointcut, "empty pointcut")
	}
	if _, err := path.Match(pointcut, ""); err != nil {
		return errors.Wrapf(ErrBadPointcut, "pointcut='%s'", pointcut)
	}
	for _, a := range advice {
		if err := validate(a); err != nil {
			return errors.Wrapf(err, "pointcut='%s' advice='%s'", pointcut, a.Name)
		}
	}
	c.Add(&binding{pointcut: pointcut, advice: append([]Advice(nil), advice...)})
	return nil
}

// Add registers another aspect, for example a nested Container.
func (c *Container) Add(aspect Aspect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspects = append(c.aspects, aspect)
}

func (c *Container) Advice(identity string) []Advice {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var advice []Advice
	for _, aspect := range c.aspects {
		advice = append(advice, aspect.Advice(identity)...)
	}
	return advice
}

// Invoke runs op with every advice aspect selects for identity.
func Invoke[T any](aspect Aspect, identity string, op Operation[T]) (T, error) {
	advice := aspect.Advice(identity)
	for i := len(advice) - 1; i >= 0; i-- {
		op = bind(identity, op, advice[i])
	}
	return op()
}

func bind[T any](identity string, op Operation[T], advice Advice) Operation[T] {
	return func() (T, error) {
		return Wrap(identity, op, advice)
	}
}

type binding struct {
	pointcut string
	advice   []Advice
}

func (b *binding) Advice(identity string) []Advice {
	if !match(b.pointcut, identity) {
		return nil
	}
	return b.advice
}

func match(pointcut, identity string) bool {
	if pointcut == identity {
		return true
	}
	ok, err := path.Match(pointcut, identity)
	return err == nil && ok
}

func validate(a Advice) error {
	switch a.Kind {
	case KindBefore, KindAfter:
		if a.Hook == nil {
			return ErrNilAdvice
		}
	case KindAround:
		if a.Sink == nil {
			return ErrNilAdvice
		}
	default:
		return errors.Errorf("unknown advice kind %s", a.Kind)
	}
	return nil
}
