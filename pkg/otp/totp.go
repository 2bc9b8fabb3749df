package otp

import (
	"sync"
	"time"
)

const (
	// DefaultStep is the time step size shared with common authenticator
	// apps.
	DefaultStep = 30 * time.Second

	// DefaultSkew is the number of adjacent time steps checked on either
	// side of the current one, tolerating clock drift between the
	// verifier and the token.
	DefaultSkew = 1
)

// TimeAuthenticator generates and verifies time-based (TOTP, RFC 6238)
// codes. It keeps a cache of accepted (user, code) pairs so a code
// observed in transit cannot be replayed while it is still inside the
// acceptance window. Safe for concurrent use.
type TimeAuthenticator struct {
	step time.Duration
	skew int
	now  func() time.Time

	mu   sync.Mutex
	used map[usedKey]uint64 // value is the step after which the entry is stale
}

type usedKey struct {
	user string
	code string
}

// NewTimeAuthenticator creates a time-based authenticator. Zero values
// select DefaultStep and DefaultSkew; steps are whole seconds, anything
// shorter falls back to the default. An exact-step-only policy (skew 0)
// is not offered: the zero value means "default", and a window of at
// least one step keeps codes minted near a step boundary usable.
func NewTimeAuthenticator(step time.Duration, skew int) *TimeAuthenticator {
	if step < time.Second {
		step = DefaultStep
	}
	if skew <= 0 {
		skew = DefaultSkew
	}
	return &TimeAuthenticator{
		step: step,
		skew: skew,
		now:  time.Now,
		used: make(map[usedKey]uint64),
	}
}

// GetCode derives the code for the current time step.
func (a *TimeAuthenticator) GetCode(secret string) (string, error) {
	return DeriveCode(secret, a.challenge(a.now()))
}

// CheckCode verifies a presented code against every time step within the
// skew window, then records it against the user identifier. A code the
// user already redeemed is rejected until it ages out of the window.
func (a *TimeAuthenticator) CheckCode(secret, code, userIdentifier string) (bool, error) {
	current := a.challenge(a.now())

	// Derive every candidate in the window; no early exit, each
	// comparison runs in full.
	matched := int64(-1)
	for delta := -a.skew; delta <= a.skew; delta++ {
		step := int64(current) + int64(delta)
		if step < 0 {
			continue
		}
		candidate, err := DeriveCode(secret, uint64(step))
		if err != nil {
			return false, err
		}
		if ConstantTimeEquals(candidate, code) {
			matched = step
		}
	}
	if matched < 0 {
		return false, nil
	}

	return a.markUsed(userIdentifier, code, current, uint64(matched)), nil
}

// challenge maps a wall-clock time to its step index.
func (a *TimeAuthenticator) challenge(t time.Time) uint64 {
	return uint64(t.Unix()) / uint64(a.step/time.Second)
}

// markUsed records an accepted (user, code) pair and reports whether it
// was fresh. Staleness is pinned to the step the code matched, not the
// step it was redeemed at: a code accepted early, while the token's
// clock ran ahead, stays cached until its own step has fallen out of
// the acceptance window.
func (a *TimeAuthenticator) markUsed(user, code string, current, matched uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for k, stale := range a.used {
		if stale <= current {
			delete(a.used, k)
		}
	}

	k := usedKey{user: user, code: code}
	if _, seen := a.used[k]; seen {
		return false
	}
	a.used[k] = matched + uint64(a.skew) + 1
	return true
}
