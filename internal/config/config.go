package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/CherkashinEvgeny/gintonic/aspect"
)

const (
	EnvPrefix = "GINTONIC"
	FileName  = "gintonic"
)

var ErrInvalid = errors.New("invalid config")

// Config is read by viper from an optional gintonic.yaml and GINTONIC_*
// environment variables.
type Config struct {
	Log   Log   `mapstructure:"log"`
	Trace Trace `mapstructure:"trace"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
	Tag    string `mapstructure:"tag"`
}

// Trace lists the pointcuts that receive logging advice.
type Trace struct {
	Before []string `mapstructure:"before"`
	After  []string `mapstructure:"after"`
	Around []string `mapstructure:"around"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.tag", aspect.DefaultTag)
	v.SetDefault("trace.before", []string{"MainActivity.testBefore"})
	v.SetDefault("trace.after", []string{"MainActivity.testAfter"})
	v.SetDefault("trace.around", []string{"MainActivity.testAround"})
}

// Load reads configuration from path, or from ./gintonic.yaml when path is
// empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log.format='%s'", c.Log.Format)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalid, "log.level='%s'", c.Log.Level)
	}
	if c.Log.Tag == "" {
		return errors.Wrap(ErrInvalid, "log.tag is empty")
	}
	return nil
}

// Container registers logging advice for every configured pointcut.
func (c *Config) Container(logger aspect.Logger) (*aspect.Container, error) {
	container := &aspect.Container{}
	tag := c.Log.Tag
	for _, p := range c.Trace.Before {
		if err := container.Register(p, aspect.Before("log", aspect.LogBefore(logger, tag))); err != nil {
			return nil, err
		}
	}
	for _, p := range c.Trace.After {
		if err := container.Register(p, aspect.After("log", aspect.LogAfter(logger, tag))); err != nil {
			return nil, err
		}
	}
	for _, p := range c.Trace.Around {
		if err := container.Register(p, aspect.Around("log", aspect.LogAround(logger, tag))); err != nil {
			return nil, err
		}
	}
	return container, nil
}
