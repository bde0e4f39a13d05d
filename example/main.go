package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/CherkashinEvgeny/gintonic/aspect"
	"github.com/CherkashinEvgeny/gintonic/logsink"
)

func main() {
	logger := logsink.NewZerolog(zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}), zerolog.InfoLevel)

	container := &aspect.Container{}
	must(container.Register("LocalMap.*",
		aspect.Before("log", aspect.LogBefore(logger, "Map")),
		aspect.Around("timing", aspect.LogAround(logger, "Map")),
		aspect.After("log", aspect.LogAfter(logger, "Map")),
	))

	var m Map = MapAspect{Impl: &LocalMap{}, Aspect: container}
	ctx := context.Background()
	must(m.Set(ctx, "hehe", "haha"))
	if _, err := m.Get(ctx, "hehe"); err != nil {
		return
	}
	must(m.Delete(ctx, "hehe"))
	if _, err := m.Get(ctx, "hehe"); err != nil {
		logger.Log("Map", err.Error())
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

var ErrNotFound = errors.New("not found")

type Map interface {
	Set(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string) (any, error)
	Delete(ctx context.Context, key string) error
}

type LocalMap struct {
	items map[string]any
}

func (l *LocalMap) Set(_ context.Context, key string, value any) error {
	if l.items == nil {
		l.items = map[string]any{}
	}
	l.items[key] = value
	return nil
}

func (l *LocalMap) Get(_ context.Context, key string) (any, error) {
	value, found := l.items[key]
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "key='%s'", key)
	}
	return value, nil
}

func (l *LocalMap) Delete(_ context.Context, key string) error {
	delete(l.items, key)
	return nil
}

// MapAspect routes every Map method through Aspect.
type MapAspect struct {
	Impl   Map
	Aspect aspect.Aspect
}

func (m MapAspect) Set(ctx context.Context, key string, value any) error {
	_, err := aspect.Invoke(m.Aspect, "LocalMap.Set", aspect.Void(func() error {
		return m.Impl.Set(ctx, key, value)
	}))
	return err
}

func (m MapAspect) Get(ctx context.Context, key string) (any, error) {
	return aspect.Invoke(m.Aspect, "LocalMap.Get", func() (any, error) {
		return m.Impl.Get(ctx, key)
	})
}

func (m MapAspect) Delete(ctx context.Context, key string) error {
	_, err := aspect.Invoke(m.Aspect, "LocalMap.Delete", aspect.Void(func() error {
		return m.Impl.Delete(ctx, key)
	}))
	return err
}
