package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/privatejar/core/config"
	"github.com/dmitrymomot/privatejar/core/cookie"
)

// Each subtest uses its own struct type: the loader caches per concrete type,
// so sharing a type across subtests would leak values between them.

func TestLoad(t *testing.T) {
	t.Run("parses env tags", func(t *testing.T) {
		type testConfig struct {
			Name  string `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
			Count int    `env:"CONFIG_TEST_COUNT" envDefault:"3"`
		}

		t.Setenv("CONFIG_TEST_NAME", "from-env")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
	})

	t.Run("caches per type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"CONFIG_TEST_CACHED" envDefault:""`
		}

		t.Setenv("CONFIG_TEST_CACHED", "first")

		var first cachedConfig
		require.NoError(t, config.Load(&first))

		// later environment changes don't affect the cached value
		t.Setenv("CONFIG_TEST_CACHED", "second")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
		assert.Equal(t, "first", second.Value)
	})

	t.Run("required variable missing", func(t *testing.T) {
		type strictConfig struct {
			Token string `env:"CONFIG_TEST_REQUIRED,required"`
		}

		var cfg strictConfig
		assert.Error(t, config.Load(&cfg))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type panicConfig struct {
			Token string `env:"CONFIG_TEST_PANIC,required"`
		}

		assert.Panics(t, func() {
			var cfg panicConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("loads cookie configuration", func(t *testing.T) {
		key := cookie.GenerateKey()
		t.Setenv("COOKIE_KEY", key.Base64())

		var cfg cookie.Config
		config.MustLoad(&cfg)

		resolved, err := cfg.ResolveKey()
		require.NoError(t, err)
		assert.True(t, key.Equal(resolved))
		assert.Equal(t, "/", cfg.Path)
		assert.True(t, cfg.HttpOnly)
	})
}
