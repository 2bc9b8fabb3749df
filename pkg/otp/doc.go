// Package otp implements HOTP (RFC 4226) and TOTP (RFC 6238) one-time
// codes on top of a shared derivation core, for applications that need a
// second factor without an external verification service.
//
// The core is three operations: GenerateSecret produces a 16-character
// base32 secret for enrollment, DeriveCode turns a secret and a moving
// challenge value into a 6-digit code via HMAC-SHA1 dynamic truncation,
// and ConstantTimeEquals compares codes without leaking where they
// diverge. CounterAuthenticator and TimeAuthenticator compose these into
// the two standard variants behind the Authenticator interface.
//
// # TOTP Example
//
// Time-based codes for use with authenticator apps:
//
//	secret, err := otp.GenerateSecret()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	auth := otp.NewTimeAuthenticator(30*time.Second, 1)
//
//	// Validate a code presented by the user.
//	ok, err := auth.CheckCode(secret, "123456", "user@example.com")
//	if err != nil {
//	    log.Printf("cannot verify code: %v", err)
//	} else if !ok {
//	    log.Print("code rejected")
//	}
//
// # HOTP Example
//
// Counter-based codes for hardware tokens:
//
//	auth := otp.NewCounterAuthenticator(0, 5)
//
//	code, err := auth.GetCode(secret) // token side: derive and advance
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := auth.CheckCode(secret, code, "user@example.com")
//
// # Errors
//
// Verification fails in exactly two ways beyond a plain mismatch:
// ErrInvalidKey when the secret is not decodable base32, and
// ErrComputation when the HMAC primitive is unavailable. Callers must
// treat both as "cannot verify right now" and never fall back to
// accepting an unverified code.
//
// # Thread Safety
//
// DeriveCode, ConstantTimeEquals, and GenerateSecret are pure or backed
// by the process-wide secure generator and need no synchronization. Both
// authenticator variants guard their internal state and are safe for
// concurrent use.
package otp
