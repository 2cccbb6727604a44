package field

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// EnvPrefix is prepended to every environment variable read by LoadConfig.
const EnvPrefix = "FORMKIT_"

// Config holds validator defaults and logging settings for a Registry.
type Config struct {
	validator.Config

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// DefaultConfig returns the same values as the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Config:    validator.DefaultConfig(),
		LogLevel:  "info",
		LogFormat: string(logger.FormatText),
	}
}

// LoadConfig reads a Config from FORMKIT_ prefixed environment variables.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds a logger writing to w with the configured level and
// format. extra options are applied last.
func (c Config) NewLogger(w io.Writer, extra ...logger.Option) *slog.Logger {
	opts := []logger.Option{logger.WithOutput(w), logger.WithLevelName(c.LogLevel)}
	if c.LogFormat == string(logger.FormatJSON) {
		opts = append(opts, logger.WithJSONFormatter())
	} else {
		opts = append(opts, logger.WithTextFormatter())
	}
	return logger.New(append(opts, extra...)...)
}
