package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/privatejar/core/cookie"
	"github.com/dmitrymomot/privatejar/middleware"
)

func TestPrivateCookies(t *testing.T) {
	key := cookie.GenerateKey()

	t.Run("injects default key", func(t *testing.T) {
		var gotKey cookie.Key
		var found bool

		handler := middleware.PrivateCookies(key)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey, found = cookie.KeyFromContext(r.Context())
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		require.True(t, found)
		assert.True(t, key.Equal(gotKey))
	})

	t.Run("handler builds jar from injected key", func(t *testing.T) {
		handler := middleware.PrivateCookies(key)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jar, err := cookie.FromRequestContext(r)
			require.NoError(t, err)

			jar = jar.Add(&http.Cookie{Name: "session", Value: "user-42"})
			jar.Write(w)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session", cookies[0].Name)

		plain, ok := cookie.New(key).Decrypt(cookies[0])
		require.True(t, ok)
		assert.Equal(t, "user-42", plain.Value)
	})

	t.Run("zero key is not injected", func(t *testing.T) {
		handler := middleware.PrivateCookies(cookie.Key{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := cookie.FromRequestContext(r)
			assert.ErrorIs(t, err, cookie.ErrKeyNotFound)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	})
}

func TestPrivateCookiesWithConfig(t *testing.T) {
	t.Run("injects named keys", func(t *testing.T) {
		authKey, prefsKey := cookie.GenerateKey(), cookie.GenerateKey()
		cfg := middleware.PrivateCookiesConfig{
			Keys: map[string]cookie.Key{
				"auth":  authKey,
				"prefs": prefsKey,
			},
		}

		handler := middleware.PrivateCookiesWithConfig(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := cookie.NamedKeyFromContext(r.Context(), "auth")
			require.True(t, ok)
			assert.True(t, authKey.Equal(got))

			got, ok = cookie.NamedKeyFromContext(r.Context(), "prefs")
			require.True(t, ok)
			assert.True(t, prefsKey.Equal(got))

			// default slot stays empty
			_, ok = cookie.KeyFromContext(r.Context())
			assert.False(t, ok)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	})

	t.Run("skip bypasses injection", func(t *testing.T) {
		cfg := middleware.PrivateCookiesConfig{
			Key:  cookie.GenerateKey(),
			Skip: func(r *http.Request) bool { return r.URL.Path == "/healthz" },
		}

		handler := middleware.PrivateCookiesWithConfig(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := cookie.KeyFromContext(r.Context())
			assert.False(t, ok)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", nil))
	})

	t.Run("zero named key is skipped and logged without material", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := middleware.PrivateCookiesConfig{
			Keys:   map[string]cookie.Key{"broken": {}},
			Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		}

		handler := middleware.PrivateCookiesWithConfig(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := cookie.NamedKeyFromContext(r.Context(), "broken")
			assert.False(t, ok)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
		assert.Contains(t, buf.String(), "broken")
	})
}
