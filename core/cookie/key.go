package cookie

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of a jar key in bytes (AES-256).
	KeySize = 32

	// minMasterSecretLength is the minimum master secret length for key derivation.
	minMasterSecretLength = 32

	// keyDerivationInfo binds derived keys to this package, so the same
	// master secret can safely feed unrelated derivations elsewhere.
	keyDerivationInfo = "privatejar cookie encryption v1"

	redactedKey = "REDACTED"
)

// Key is the symmetric secret used to encrypt and authenticate cookie values.
// A Key is fixed for the lifetime of a jar and is safe to share by value
// across concurrently handled requests since jars never mutate it.
//
// Key material is never exposed through String or structured logging; use
// Base64 explicitly when a key must be persisted to configuration.
type Key struct {
	material [KeySize]byte
}

// GenerateKey returns a new random key.
func GenerateKey() Key {
	var k Key
	if _, err := io.ReadFull(rand.Reader, k.material[:]); err != nil {
		// crypto/rand is documented to never fail on supported platforms
		panic(fmt.Sprintf("generate cookie key: %v", err))
	}
	return k
}

// KeyFromBytes builds a key from exactly KeySize bytes of key material.
func KeyFromBytes(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, fmt.Errorf("%w: got %d bytes, need %d", ErrInvalidKeySize, len(b), KeySize)
	}
	var k Key
	copy(k.material[:], b)
	return k, nil
}

// KeyFromBase64 decodes a base64url-encoded key, the encoding produced by
// Key.Base64. Typically used to load a key from environment configuration.
func KeyFromBase64(s string) (Key, error) {
	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrInvalidKeyEncoding, err)
	}
	return KeyFromBytes(raw)
}

// DeriveKey derives a jar key from a master secret of at least
// minMasterSecretLength bytes using HKDF-SHA256. Derivation is deterministic:
// the same master secret always yields the same key.
func DeriveKey(master []byte) (Key, error) {
	if len(master) < minMasterSecretLength {
		return Key{}, fmt.Errorf("%w: got %d bytes, need at least %d",
			ErrMasterSecretTooShort, len(master), minMasterSecretLength)
	}

	var k Key
	kdf := hkdf.New(sha256.New, master, nil, []byte(keyDerivationInfo))
	if _, err := io.ReadFull(kdf, k.material[:]); err != nil {
		return Key{}, fmt.Errorf("derive cookie key: %w", err)
	}
	return k, nil
}

// Base64 returns the base64url encoding of the key material for storage in
// configuration. Handle the result as a secret.
func (k Key) Base64() string {
	return base64.URLEncoding.EncodeToString(k.material[:])
}

// Equal reports whether both keys hold the same material, in constant time.
func (k Key) Equal(other Key) bool {
	return subtle.ConstantTimeCompare(k.material[:], other.material[:]) == 1
}

// IsZero reports whether the key is the zero value. A zero key is treated as
// "not configured" rather than as usable key material.
func (k Key) IsZero() bool {
	return k.Equal(Key{})
}

// String implements fmt.Stringer. Key material is never printed.
func (k Key) String() string {
	return redactedKey
}

// LogValue implements slog.LogValuer so keys cannot leak through logs.
func (k Key) LogValue() slog.Value {
	return slog.StringValue(redactedKey)
}
