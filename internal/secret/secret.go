// Package secret generates the per-project authentication secret.
package secret

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Bytes is the entropy of a generated secret. 64 random bytes hex-encode to
// 128 characters, comfortably above what HMAC signing keys need.
const Bytes = 64

// Generate returns a fresh hex-encoded secret from the operating system's
// cryptographically secure random source. It is called once per run to
// replace the placeholder secret in the environment file.
func Generate() (string, error) {
	buf := make([]byte, Bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
