package otp

// ConstantTimeEquals reports whether a and b are equal without leaking
// timing information about where they first differ: the scan never exits
// early, so a mismatch at the first byte costs the same as one at the
// last.
//
// A length mismatch is folded into the accumulator rather than rejected
// up front, and the loop is bounded by the shorter input. Unequal-length
// inputs therefore cost time proportional to the shorter string, a
// residual channel that carries nothing at real call sites, where codes
// are fixed-length.
func ConstantTimeEquals(a, b string) bool {
	diff := len(a) ^ len(b)
	for i := 0; i < len(a) && i < len(b); i++ {
		diff |= int(a[i]) ^ int(b[i])
	}
	return diff == 0
}
