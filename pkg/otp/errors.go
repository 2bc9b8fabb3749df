package otp

import "errors"

var (
	// ErrInvalidKey indicates the secret could not be decoded into usable
	// key bytes. The secret must be base32 text using the RFC 4648
	// alphabet (A-Z, 2-7).
	ErrInvalidKey = errors.New("otp: invalid key")

	// ErrComputation indicates the code could not be computed because the
	// HMAC primitive is unavailable. This is a configuration fault, not a
	// property of the secret or the presented code.
	ErrComputation = errors.New("otp: code computation failed")
)
