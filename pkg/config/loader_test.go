package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/config"
)

type testConfig struct {
	Addr       string        `env:"TEST_ADDR" envDefault:":8080"`
	StackLimit int           `env:"TEST_STACK_LIMIT" envDefault:"5"`
	Timeout    time.Duration `env:"TEST_TIMEOUT" envDefault:"30s"`
	Required   string        `env:"TEST_REQUIRED_VALUE"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5, cfg.StackLimit)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_ADDR", ":9090")
		t.Setenv("TEST_STACK_LIMIT", "3")
		t.Setenv("TEST_TIMEOUT", "250ms")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, 3, cfg.StackLimit)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	})

	t.Run("unparseable value fails with ErrParsingConfig", func(t *testing.T) {
		t.Setenv("TEST_STACK_LIMIT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns populated config", func(t *testing.T) {
		t.Setenv("TEST_ADDR", ":7070")

		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, ":7070", cfg.Addr)
	})

	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("TEST_TIMEOUT", "bogus")

		var cfg testConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
