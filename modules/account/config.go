package account

import (
	"fmt"
	"time"
)

// Config carries the account module's tunables, populated from environment
// variables via the config loader.
type Config struct {
	Strategy      string        `env:"ACCOUNT_VALIDATION_STRATEGY" envDefault:"accumulate"`
	NumberPrefix  string        `env:"ACCOUNT_NUMBER_PREFIX" envDefault:"AC"`
	NumberDigits  int           `env:"ACCOUNT_NUMBER_DIGITS" envDefault:"12"`
	MaxAttempts   int           `env:"ACCOUNT_NUMBER_MAX_ATTEMPTS" envDefault:"64"`
	StrictLookups bool          `env:"ACCOUNT_NUMBER_STRICT_LOOKUPS" envDefault:"false"`
	CacheEnabled  bool          `env:"ACCOUNT_CACHE_ENABLED" envDefault:"false"`
	CacheTTL      time.Duration `env:"ACCOUNT_CACHE_TTL" envDefault:"5m"`
}

// FactoryOptions translates the config into factory options.
func (c Config) FactoryOptions() ([]FactoryOption, error) {
	strategy, err := ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("account config: %w", err)
	}
	return []FactoryOption{WithStrategy(strategy)}, nil
}

// GeneratorOptions translates the config into number generator options.
func (c Config) GeneratorOptions() []GeneratorOption {
	opts := []GeneratorOption{
		WithNumberPrefix(c.NumberPrefix),
		WithNumberDigits(c.NumberDigits),
		WithMaxAttempts(c.MaxAttempts),
	}
	if c.StrictLookups {
		opts = append(opts, WithStrictLookups())
	}
	return opts
}
