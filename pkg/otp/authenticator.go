package otp

// Authenticator is the contract implemented by every code variant. Each
// variant supplies the moving challenge value (a counter, or a time step
// derived from the clock) and its own acceptance window, and composes
// DeriveCode and ConstantTimeEquals for the actual work.
type Authenticator interface {
	// GetCode returns the code that is currently valid for the secret.
	GetCode(secret string) (string, error)

	// CheckCode reports whether the presented code is valid for the
	// secret and user identifier, applying the variant's window and
	// replay policy. An error means the code could not be verified at
	// all (bad key, missing primitive), never that it merely mismatched.
	CheckCode(secret, code, userIdentifier string) (bool, error)
}
