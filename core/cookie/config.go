package cookie

import "net/http"

// Config provides environment-based configuration for private cookie jars.
// Exactly one of Key or MasterSecret must be set; Key takes precedence when
// both are present.
type Config struct {
	// Key is the jar key as produced by Key.Base64.
	Key string `env:"COOKIE_KEY" envDefault:""`
	// MasterSecret is an alternative to Key: a secret of at least 32 bytes
	// from which the jar key is derived via HKDF-SHA256.
	MasterSecret string `env:"COOKIE_MASTER_SECRET" envDefault:""`

	// Default cookie attributes applied by Add to unset fields.
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
}

// ResolveKey returns the jar key described by the configuration, decoding
// Key when set and deriving from MasterSecret otherwise. Returns
// ErrNoKeyConfigured when neither is present.
func (c Config) ResolveKey() (Key, error) {
	switch {
	case c.Key != "":
		return KeyFromBase64(c.Key)
	case c.MasterSecret != "":
		return DeriveKey([]byte(c.MasterSecret))
	default:
		return Key{}, ErrNoKeyConfigured
	}
}

// Options converts the configured attribute defaults into jar options.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 6)

	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		opts = append(opts, WithSecure(true))
	}
	if c.HttpOnly {
		opts = append(opts, WithHTTPOnly(true))
	}
	if c.SameSite != 0 {
		opts = append(opts, WithSameSite(c.SameSite))
	}

	return opts
}

// FromRequestWithConfig builds a jar for the request using the key and
// attribute defaults described by the configuration.
func FromRequestWithConfig(r *http.Request, cfg Config, opts ...Option) (Jar, error) {
	key, err := cfg.ResolveKey()
	if err != nil {
		return Jar{}, err
	}
	return FromRequest(r, key, append(cfg.Options(), opts...)...), nil
}
