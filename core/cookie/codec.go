package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
)

// seal encrypts value with AES-256-GCM and authenticates the cookie name as
// additional data, so a ciphertext cannot be replayed under another name.
// The random nonce is prepended to the ciphertext before encoding.
//
// Unlike decryption, sealing has no failure mode: the key size is fixed at
// compile time and crypto/rand never fails on supported platforms.
func seal(key Key, name, value string) string {
	gcm := newGCM(key)

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		panic("encrypt cookie value: " + err.Error())
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(value), []byte(name))
	return base64.URLEncoding.EncodeToString(ciphertext)
}

// open reverses seal. It returns false for anything that is not a valid
// ciphertext produced under key for this exact cookie name: wrong key,
// tampered payload, relabeled name, or malformed encoding all look the same
// to the caller.
func open(key Key, name, value string) (string, bool) {
	ciphertext, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return "", false
	}

	gcm := newGCM(key)
	if len(ciphertext) < gcm.NonceSize() {
		return "", false
	}

	// Extract nonce from the beginning of ciphertext
	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, []byte(name))
	if err != nil {
		return "", false
	}
	return string(plaintext), true
}

func newGCM(key Key) cipher.AEAD {
	block, err := aes.NewCipher(key.material[:])
	if err != nil {
		// unreachable with a KeySize-byte key
		panic(err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		panic(err)
	}
	return gcm
}
