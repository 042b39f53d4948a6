package middleware

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/privatejar/core/cookie"
)

// PrivateCookiesConfig configures the private cookies middleware.
type PrivateCookiesConfig struct {
	// Key is the default jar key injected into every request context.
	// A zero key is treated as unset and skipped.
	Key cookie.Key
	// Keys holds named keys for requests that carry several independently
	// keyed jars (see cookie.FromRequestContextNamed).
	Keys map[string]cookie.Key
	// Skip defines a function to skip middleware execution for specific requests.
	Skip func(r *http.Request) bool
	// Logger for structured logging (default: slog with io.Discard).
	// Key material is never logged.
	Logger *slog.Logger
}

// PrivateCookies creates middleware that injects the jar key into every
// request context, so handlers can build jars with cookie.FromRequestContext
// without ever touching key material themselves.
//
// Usage:
//
//	key := cookie.GenerateKey()
//	mux := http.NewServeMux()
//	mux.Handle("/", middleware.PrivateCookies(key)(appHandler))
//
//	func appHandler(w http.ResponseWriter, r *http.Request) {
//		jar, err := cookie.FromRequestContext(r)
//		if err != nil {
//			http.Error(w, "misconfigured", http.StatusInternalServerError)
//			return
//		}
//		jar = jar.Add(&http.Cookie{Name: "session", Value: "user-42"})
//		jar.Write(w)
//	}
func PrivateCookies(key cookie.Key) func(http.Handler) http.Handler {
	return PrivateCookiesWithConfig(PrivateCookiesConfig{Key: key})
}

// PrivateCookiesWithConfig creates the middleware with custom configuration,
// supporting named keys, request skipping, and a custom logger.
//
//	cfg := middleware.PrivateCookiesConfig{
//		Keys: map[string]cookie.Key{
//			"auth":  authKey,
//			"prefs": prefsKey,
//		},
//		Skip: func(r *http.Request) bool { return r.URL.Path == "/healthz" },
//	}
//	mux.Handle("/", middleware.PrivateCookiesWithConfig(cfg)(appHandler))
func PrivateCookiesWithConfig(cfg PrivateCookiesConfig) func(http.Handler) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			if !cfg.Key.IsZero() {
				ctx = cookie.WithKey(ctx, cfg.Key)
			}
			for name, key := range cfg.Keys {
				if key.IsZero() {
					log.Warn("skipping zero-valued jar key", slog.String("jar", name))
					continue
				}
				ctx = cookie.WithNamedKey(ctx, name, key)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
