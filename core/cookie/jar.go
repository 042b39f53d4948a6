package cookie

import (
	"fmt"
	"iter"
	"maps"
	"net/http"
)

// Jar is a request-scoped collection of authenticated-encrypted cookies.
// Values are sealed under the jar's Key before they are stored, and every
// read re-verifies the stored ciphertext, so a cookie surfaced by Get or All
// has always passed authenticated decryption.
//
// Jar is an immutable value: Add and Remove return an updated copy and leave
// the receiver untouched. Callers must thread the returned jar forward to the
// response for mutations to take effect:
//
//	jar = jar.Add(&http.Cookie{Name: "session", Value: userID})
//	jar.Write(w)
//
// A jar lives for exactly one request/response cycle and carries no internal
// synchronization; it must not be shared across concurrent requests.
type Jar struct {
	key      Key
	defaults Options
	entries  map[string]*http.Cookie // values sealed, at most one entry per name
}

// New creates an empty jar sealed under key.
func New(key Key, opts ...Option) Jar {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	defaults = applyOptions(defaults, opts)

	return Jar{
		key:      key,
		defaults: defaults,
		entries:  map[string]*http.Cookie{},
	}
}

// FromRequest builds a jar from the request's inbound cookies. Each inbound
// cookie is authenticated and decrypted under key; cookies that fail are
// dropped outright and are indistinguishable from absent ones. The survivors
// are re-sealed so the jar only ever holds ciphertext it produced itself.
func FromRequest(r *http.Request, key Key, opts ...Option) Jar {
	jar := New(key, opts...)
	for _, c := range r.Cookies() {
		plaintext, ok := open(key, c.Name, c.Value)
		if !ok {
			continue
		}
		jar = jar.Add(&http.Cookie{Name: c.Name, Value: plaintext})
	}
	return jar
}

// FromRequestContext builds a jar using the default key stored in the request
// context (see WithKey). Returns ErrKeyNotFound when no key was injected;
// this is the only failure that can prevent building a jar at all.
func FromRequestContext(r *http.Request, opts ...Option) (Jar, error) {
	key, ok := KeyFromContext(r.Context())
	if !ok {
		return Jar{}, ErrKeyNotFound
	}
	return FromRequest(r, key, opts...), nil
}

// FromRequestContextNamed is like FromRequestContext but resolves a named key
// (see WithNamedKey), allowing multiple independently keyed jars per request.
func FromRequestContextNamed(r *http.Request, keyName string, opts ...Option) (Jar, error) {
	key, ok := NamedKeyFromContext(r.Context(), keyName)
	if !ok {
		return Jar{}, fmt.Errorf("%w: %q", ErrKeyNotFound, keyName)
	}
	return FromRequest(r, key, opts...), nil
}

// Get returns the plaintext cookie stored under name. The stored ciphertext
// is re-verified on every call; a missing entry and one that fails decryption
// are both reported as absent.
func (j Jar) Get(name string) (*http.Cookie, bool) {
	stored, ok := j.entries[name]
	if !ok {
		return nil, false
	}

	plaintext, ok := open(j.key, name, stored.Value)
	if !ok {
		return nil, false
	}

	c := cloneCookie(stored)
	c.Value = plaintext
	return c, true
}

// Add seals the cookie's value under the jar's key and returns an updated jar
// with the sealed cookie replacing any existing entry under the same name.
// Encryption happens here, not at emission time, so a subsequent Get on the
// returned jar observes the cookie immediately.
//
// Unset attributes are filled from the jar's defaults.
func (j Jar) Add(c *http.Cookie) Jar {
	stored := cloneCookie(c)
	j.fillDefaults(stored)
	stored.Value = seal(j.key, stored.Name, stored.Value)

	entries := make(map[string]*http.Cookie, len(j.entries)+1)
	maps.Copy(entries, j.entries)
	entries[stored.Name] = stored

	j.entries = entries
	return j
}

// Remove returns an updated jar without any entry under name, whether or not
// the entry was ever decryptable. Removing an absent name is a no-op.
func (j Jar) Remove(name string) Jar {
	if _, ok := j.entries[name]; !ok {
		return j
	}

	entries := make(map[string]*http.Cookie, len(j.entries)-1)
	for n, c := range j.entries {
		if n != name {
			entries[n] = c
		}
	}

	j.entries = entries
	return j
}

// Decrypt authenticates and decrypts a cookie obtained out-of-band under the
// jar's key, without touching jar state. Returns false for anything that was
// not sealed under this key for this exact cookie name.
func (j Jar) Decrypt(c *http.Cookie) (*http.Cookie, bool) {
	plaintext, ok := open(j.key, c.Name, c.Value)
	if !ok {
		return nil, false
	}

	out := cloneCookie(c)
	out.Value = plaintext
	return out, true
}

// All returns an iterator over the plaintext cookies currently in the jar.
// Each step re-applies authenticated decryption and entries that fail are
// skipped, so only cookies valid under the jar's key are ever yielded.
// The sequence is finite, restartable, and yields at most one cookie per
// name, in no particular order.
func (j Jar) All() iter.Seq[*http.Cookie] {
	return func(yield func(*http.Cookie) bool) {
		for name := range j.entries {
			c, ok := j.Get(name)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Len returns the number of entries currently stored in the jar.
func (j Jar) Len() int {
	return len(j.entries)
}

// Write serializes every jar entry into the response, one Set-Cookie header
// per entry, ciphertext exactly as stored. It performs no decryption or
// validation and cannot fail.
func (j Jar) Write(w http.ResponseWriter) {
	for _, c := range j.entries {
		http.SetCookie(w, c)
	}
}

// String implements fmt.Stringer. The key is redacted.
func (j Jar) String() string {
	return fmt.Sprintf("cookie.Jar(%d entries, key %s)", len(j.entries), redactedKey)
}

func (j Jar) fillDefaults(c *http.Cookie) {
	if c.Path == "" {
		c.Path = j.defaults.Path
	}
	if c.Domain == "" {
		c.Domain = j.defaults.Domain
	}
	if c.MaxAge == 0 {
		c.MaxAge = j.defaults.MaxAge
	}
	if !c.Secure {
		c.Secure = j.defaults.Secure
	}
	if !c.HttpOnly {
		c.HttpOnly = j.defaults.HttpOnly
	}
	if c.SameSite == 0 {
		c.SameSite = j.defaults.SameSite
	}
}

func cloneCookie(c *http.Cookie) *http.Cookie {
	clone := *c
	return &clone
}
