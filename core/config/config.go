package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache stores loaded configurations keyed by their concrete type.
	cache sync.Map // reflect.Type -> struct value

	// dotenvOnce guards the one-time .env autoload.
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg based on its `env` struct tags.
// Each concrete type is parsed once per process: subsequent calls for the
// same type receive the cached value. A .env file in the working directory,
// if present, is loaded into the environment on first use.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// missing .env is not an error
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("load %s from environment: %w", typ, err)
	}

	cache.Store(typ, *cfg)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during application
// startup where a missing required variable should abort immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
