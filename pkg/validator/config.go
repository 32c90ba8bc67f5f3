package validator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// EnvPrefix prefixes every environment variable of Config.
const EnvPrefix = "VALIDATOR_"

// Config holds environment-driven registry settings.
type Config struct {
	Language         string   `env:"LANGUAGE" envDefault:"en"`
	MessagesFiles    []string `env:"MESSAGES_FILES" envSeparator:","`
	PatternCacheSize int      `env:"PATTERN_CACHE_SIZE" envDefault:"128"`
}

// LoadConfig reads Config from VALIDATOR_* variables and .env files.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, errors.Join(ErrLoadingConfig, err)
	}
	return cfg, nil
}

// NewRegistryFromConfig builds a registry and, when cfg names message
// catalogs, replaces the built-in templates with the merged catalog's
// entries for cfg.Language. Later files override earlier ones.
func NewRegistryFromConfig(ctx context.Context, cfg Config, log *slog.Logger) (*Registry, error) {
	if log == nil {
		log = logger.Discard()
	}

	r := NewRegistry(WithPatternCacheSize(cfg.PatternCacheSize))
	if len(cfg.MessagesFiles) == 0 {
		return r, nil
	}

	cat, err := i18n.LoadFiles(ctx, cfg.MessagesFiles, i18n.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "failed to load validation messages", logger.Error(err))
		return nil, errors.Join(ErrLoadingMessages, err)
	}
	r.SetMessages(cat.Messages(cfg.Language))
	return r, nil
}
