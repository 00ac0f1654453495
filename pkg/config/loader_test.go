package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkit/accountkit/pkg/config"
)

type generatorConfig struct {
	Prefix string `env:"TEST_NUMBER_PREFIX" envDefault:"AC"`
	Digits int    `env:"TEST_NUMBER_DIGITS" envDefault:"12"`
}

type requiredConfig struct {
	URL string `env:"TEST_REQUIRED_URL,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg generatorConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "AC", cfg.Prefix)
		assert.Equal(t, 12, cfg.Digits)
	})

	t.Run("reads environment overrides and caches per type", func(t *testing.T) {
		type overrideConfig struct {
			Prefix string `env:"TEST_OVERRIDE_PREFIX" envDefault:"AC"`
		}
		t.Setenv("TEST_OVERRIDE_PREFIX", "SB")

		var cfg overrideConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "SB", cfg.Prefix)

		// A changed variable must not leak into the cached type.
		t.Setenv("TEST_OVERRIDE_PREFIX", "XX")
		var again overrideConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "SB", again.Prefix)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		var cfg *generatorConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics when loading fails", func(t *testing.T) {
		type brokenConfig struct {
			Missing string `env:"TEST_MUSTLOAD_MISSING,required"`
		}
		assert.Panics(t, func() {
			var cfg brokenConfig
			config.MustLoad(&cfg)
		})
	})
}
