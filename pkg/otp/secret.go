package otp

import (
	"crypto/rand"
	"fmt"
	"io"
)

// SecretLength is the number of base32 characters in a generated secret.
const SecretLength = 16

// secretAlphabet is the RFC 4648 base32 alphabet: 32 symbols, 5 bits per
// character.
const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// GenerateSecret returns a new random shared secret for one account's
// enrollment: 16 characters drawn uniformly from the base32 alphabet.
//
// Randomness comes from crypto/rand.Reader, the process-wide secure
// generator, which is initialized by the runtime and safe for concurrent
// use. A read failure cannot occur on a correctly provisioned runtime;
// it is surfaced rather than masked.
func GenerateSecret() (string, error) {
	buf := make([]byte, SecretLength)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("otp: failed to generate random secret: %w", err)
	}

	// 256 is an exact multiple of the 32-symbol alphabet, so reducing a
	// byte modulo the alphabet size keeps the draw uniform.
	for i, b := range buf {
		buf[i] = secretAlphabet[int(b)%len(secretAlphabet)]
	}
	return string(buf), nil
}
