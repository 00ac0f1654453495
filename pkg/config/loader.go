package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded = make(map[string]any)

	dotenvOnce sync.Once
)

// Load populates the configuration struct from environment variables, using
// the struct's `env` tags. The first call loads a .env file if one exists.
// Each configuration type is parsed once per process; later calls for the
// same type return the cached value, so every component sees an identical
// configuration.
//
// Example:
//
//	type GeneratorConfig struct {
//		Prefix      string `env:"ACCOUNT_NUMBER_PREFIX" envDefault:"AC"`
//		Digits      int    `env:"ACCOUNT_NUMBER_DIGITS" envDefault:"12"`
//		MaxAttempts int    `env:"ACCOUNT_NUMBER_MAX_ATTEMPTS" envDefault:"64"`
//	}
//
//	var cfg GeneratorConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; plain environment variables rule.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	loaded[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func typeName[T any]() string {
	t := reflect.TypeOf(*new(T))
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
