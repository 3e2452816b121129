package render

// DefaultLimit is the escape-time iteration bound used when a Job does not
// set one. The bound also caps the red-channel encoding, which stores the
// iteration count in a single byte.
const DefaultLimit = 255

// Once |z|² exceeds 4 the orbit is guaranteed to diverge, so 4 is the
// standard escape bound for z ← z² + c.
const escapeRadiusSq = 4.0

// EscapeTime iterates z ← z² + c from z = 0 for at most limit steps and
// returns the first step index at which the orbit leaves the disk of
// radius 2. The second return is false when the orbit stays bounded for all
// limit steps, in which case c is taken to be in the set.
//
// EscapeTime is pure and safe for unrestricted concurrent use.
func EscapeTime(c complex128, limit int) (int, bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > escapeRadiusSq {
			return i, true
		}
	}
	return 0, false
}
