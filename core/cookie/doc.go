// Package cookie provides a private cookie jar: a request-scoped collection
// of cookies whose values are transparently encrypted and integrity-protected
// with AES-256-GCM before they reach the client, and verified and decrypted
// when they come back. Forged or tampered cookies are silently dropped and
// are indistinguishable from absent ones.
//
// # Features
//
//   - AES-256-GCM authenticated encryption of cookie values
//   - Cookie name bound into the ciphertext, preventing cross-cookie substitution
//   - Fail-closed verification: invalid cookies look absent, never error
//   - Immutable jar values with explicit response emission
//   - Key derivation from a master secret via HKDF-SHA256
//   - Per-request key injection through the context, with named keys for
//     multiple independent jars
//   - Environment-based configuration
//   - Secure attribute defaults (HttpOnly, SameSite protection)
//
// # Basic Usage
//
// Build a jar from the inbound request, read and mutate it, then write it
// into the response:
//
//	import "github.com/dmitrymomot/privatejar/core/cookie"
//
//	key := cookie.GenerateKey() // persist with key.Base64(), don't regenerate per start
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		jar := cookie.FromRequest(r, key)
//
//		if c, ok := jar.Get("session"); ok {
//			// c.Value is plaintext, already authenticated
//		}
//
//		jar = jar.Add(&http.Cookie{Name: "session", Value: "user-42"})
//		jar.Write(w)
//	}
//
// Add and Remove return an updated jar and leave the receiver untouched.
// Discarding the returned jar discards the mutation, and only the jar passed
// to Write reaches the response.
//
// # Key Management
//
// Keys are exactly 32 bytes. Generate a fresh one, load one from
// configuration, or derive one from a longer-lived master secret:
//
//	key := cookie.GenerateKey()
//
//	key, err := cookie.KeyFromBase64(os.Getenv("COOKIE_KEY"))
//
//	key, err := cookie.DeriveKey([]byte(masterSecret))
//
// Keys never leak through logging: both fmt.Stringer and slog.LogValuer are
// implemented to redact the material.
//
// # Request Context Keys
//
// Middleware can inject the key once and handlers construct jars without
// touching key material:
//
//	r = r.WithContext(cookie.WithKey(r.Context(), key))
//
//	jar, err := cookie.FromRequestContext(r)
//	if errors.Is(err, cookie.ErrKeyNotFound) {
//		// key was never injected; the framework decides the response
//	}
//
// Named keys allow several independently keyed jars in one request:
//
//	ctx = cookie.WithNamedKey(ctx, "auth", authKey)
//	ctx = cookie.WithNamedKey(ctx, "prefs", prefsKey)
//
//	jar, err := cookie.FromRequestContextNamed(r, "auth")
//
// # Iteration
//
// All returns a restartable iterator that re-verifies each entry and skips
// anything no longer valid under the jar's key:
//
//	for c := range jar.All() {
//		fmt.Println(c.Name, c.Value)
//	}
//
// # Security Model
//
// Every value is sealed eagerly at Add time and re-verified on every read,
// so anything the application observes has passed authenticated decryption
// under the jar's fixed key. The cookie name is authenticated as additional
// data, so a ciphertext minted for one name fails verification under any
// other. Inbound cookies that fail verification are purged at construction:
// they are not readable, not iterable, and not re-emitted.
//
// Per-cookie failures are never surfaced as errors; the only construction
// failure is a missing key (ErrKeyNotFound), which the surrounding framework
// turns into its own error response.
package cookie
