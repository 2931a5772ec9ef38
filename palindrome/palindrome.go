package palindrome

// IsPalindrome reports whether the decimal digit sequence of v equals its
// own reverse. It reverses only the lower half of the digits and compares
// it against the remaining upper half, so no division by digit count is
// ever needed.
// Complexity: O(digits), allocation-free.
func IsPalindrome(v uint64) bool {
	// A non-zero value ending in 0 would need a leading 0 to mirror.
	if v%10 == 0 && v != 0 {
		return false
	}
	var rev uint64
	for v > rev {
		rev = rev*10 + v%10
		v /= 10
	}

	// Even width: halves match exactly. Odd width: rev carries the
	// middle digit, which drops out after one division.
	return v == rev || v == rev/10
}

// New wraps v as a Palindrome after validating the invariant.
// Returns ErrNotPalindrome when v's digits do not mirror.
// Complexity: O(digits).
func New(v uint64) (Palindrome, error) {
	if !IsPalindrome(v) {
		return Palindrome{}, ErrNotPalindrome
	}

	return Palindrome{v}, nil
}
