package otp

import "sync"

// DefaultLookAhead is the number of counter values past the current one
// that CheckCode will accept, tolerating a token that advanced without
// the verifier seeing the intermediate codes.
const DefaultLookAhead = 5

// CounterAuthenticator generates and verifies counter-based (HOTP,
// RFC 4226) codes. The counter is held in the authenticator and guarded
// by a mutex, so one instance serves one enrolled token and is safe for
// concurrent use.
type CounterAuthenticator struct {
	lookAhead uint64

	mu      sync.Mutex
	counter uint64
}

// NewCounterAuthenticator creates a counter-based authenticator starting
// at the given counter value. A zero lookAhead selects DefaultLookAhead.
func NewCounterAuthenticator(counter, lookAhead uint64) *CounterAuthenticator {
	if lookAhead == 0 {
		lookAhead = DefaultLookAhead
	}
	return &CounterAuthenticator{
		lookAhead: lookAhead,
		counter:   counter,
	}
}

// GetCode derives the code for the current counter value and advances
// the counter, mirroring what a hardware token does on a button press.
func (a *CounterAuthenticator) GetCode(secret string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	code, err := DeriveCode(secret, a.counter)
	if err != nil {
		return "", err
	}
	a.counter++
	return code, nil
}

// CheckCode verifies a presented code against the counter values in
// [counter, counter+lookAhead]. On a match the counter moves past the
// matched value, so an accepted code can never be replayed. The user
// identifier is unused here: counter monotonicity already ties
// acceptance to one-time use.
func (a *CounterAuthenticator) CheckCode(secret, code, _ string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := uint64(0); i <= a.lookAhead; i++ {
		candidate, err := DeriveCode(secret, a.counter+i)
		if err != nil {
			return false, err
		}
		if ConstantTimeEquals(candidate, code) {
			a.counter += i + 1
			return true, nil
		}
	}
	return false, nil
}

// Counter returns the counter value the next code will be derived from.
// Callers that persist token state between verifications read it here.
func (a *CounterAuthenticator) Counter() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counter
}
