package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash"
	"strings"
)

// Digits is the number of decimal digits in every derived code.
const Digits = 6

// codeModulus is 10^Digits, derived so the modulus and the rendered
// code width cannot drift apart.
var codeModulus = func() uint32 {
	m := uint32(1)
	for i := 0; i < Digits; i++ {
		m *= 10
	}
	return m
}()

// DeriveCode computes the one-time code for a secret and challenge value
// using HMAC-SHA1 with dynamic truncation (RFC 4226). The challenge is a
// counter for HOTP or a time step index for TOTP; for a fixed secret and
// challenge the result is always the same 6-digit, zero-padded string.
//
// It returns ErrInvalidKey if the secret is not valid base32.
func DeriveCode(secret string, challenge uint64) (string, error) {
	return deriveCode(sha1.New, secret, challenge)
}

// deriveCode takes the HMAC hash constructor explicitly so a missing
// algorithm surfaces as ErrComputation instead of a panic.
func deriveCode(newHash func() hash.Hash, secret string, challenge uint64) (string, error) {
	if newHash == nil {
		return "", fmt.Errorf("%w: no HMAC hash algorithm configured", ErrComputation)
	}

	key, err := decodeKey(secret)
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], challenge)

	mac := hmac.New(newHash, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: the low nibble of the last digest byte selects
	// which four bytes become the code.
	offset := int(sum[len(sum)-1] & 0x0f)
	var truncated uint32
	for i := 0; i < 4; i++ {
		truncated = truncated<<8 | uint32(sum[offset+i])
	}
	truncated &= 0x7fffffff

	return fmt.Sprintf("%0*d", Digits, truncated%codeModulus), nil
}

// decodeKey decodes the base32 secret into raw key bytes. Secrets are
// upper-cased first. Keys shorter than the SHA-1 block size are zero
// padded on the right; longer keys are passed through untouched.
func decodeKey(secret string) ([]byte, error) {
	raw, err := base32.StdEncoding.DecodeString(strings.ToUpper(secret))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) >= sha1.BlockSize {
		return raw, nil
	}
	key := make([]byte, sha1.BlockSize)
	copy(key, raw)
	return key, nil
}
