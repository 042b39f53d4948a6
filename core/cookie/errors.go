package cookie

import "errors"

// Error variables define specific failure scenarios in jar construction and
// key handling. Per-cookie decryption failures are deliberately not errors:
// a forged cookie must be indistinguishable from an absent one, so the jar
// APIs report them as boolean misses instead.
var (
	// ErrKeyNotFound indicates no jar key was injected into the request
	// context for this jar.
	ErrKeyNotFound = errors.New("jar key not found in request context")

	// ErrInvalidKeySize indicates the provided key material is not exactly
	// KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid jar key size")

	// ErrInvalidKeyEncoding indicates the key string is not valid base64url.
	ErrInvalidKeyEncoding = errors.New("jar key is not valid base64")

	// ErrMasterSecretTooShort indicates the master secret doesn't meet the
	// minimum length required for key derivation.
	ErrMasterSecretTooShort = errors.New("master secret too short for key derivation")

	// ErrNoKeyConfigured indicates configuration supplied neither a key nor a
	// master secret to derive one from.
	ErrNoKeyConfigured = errors.New("no jar key configured")
)
