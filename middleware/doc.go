// Package middleware provides net/http middleware for the private cookie jar.
//
// The middleware injects jar keys into the request context so handlers can
// build jars with cookie.FromRequestContext without holding key material
// themselves. Key resolution failures stay with the caller: the middleware
// never writes a response, it only controls what keys a request can see.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/privatejar/core/cookie"
//		"github.com/dmitrymomot/privatejar/middleware"
//	)
//
//	key, err := cookie.KeyFromBase64(os.Getenv("COOKIE_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", appHandler)
//	http.ListenAndServe(":8080", middleware.PrivateCookies(key)(mux))
//
// Multiple independently keyed jars per request:
//
//	cfg := middleware.PrivateCookiesConfig{
//		Keys: map[string]cookie.Key{
//			"auth":  authKey,
//			"prefs": prefsKey,
//		},
//	}
//	handler := middleware.PrivateCookiesWithConfig(cfg)(mux)
//
// Handlers then pick their jar by name:
//
//	jar, err := cookie.FromRequestContextNamed(r, "auth")
package middleware
