package palindrome

// Ge returns the smallest palindrome greater than or equal to n.
// Mirroring n's own half yields a candidate sharing n's digit count; if
// that candidate falls below n, one half-increment step (the same rule
// Next uses) mirrors to a value that dominates n digit by digit.
// Returns ErrOverflow when n exceeds Max(), the only gap with no
// palindrome above it in uint64.
// Complexity: O(digits).
func Ge(n uint64) (Palindrome, error) {
	if n > maxValue {
		return Palindrome{}, ErrOverflow
	}
	h := halfOf(n)
	v, err := mirror(h)
	if err != nil {
		return Palindrome{}, err
	}
	if v < n {
		// The incremented half cannot leave its bracket here: an
		// all-nines half mirrors to the bracket maximum, which is
		// never below n.
		if v, err = mirror(h.next()); err != nil {
			return Palindrome{}, err
		}
	}

	return Palindrome{v}, nil
}

// Le returns the largest palindrome less than or equal to n.
// Symmetric to Ge with a half-decrement step; total, since 0 is a
// palindromic floor for every uint64.
// Complexity: O(digits).
func Le(n uint64) Palindrome {
	if n >= maxValue {
		return Palindrome{maxValue}
	}
	h := halfOf(n)
	v, _ := mirror(h) // below maxValue a same-width mirror always fits
	if v > n {
		v, _ = mirror(h.prev())
	}

	return Palindrome{v}
}

// Closest returns the palindrome with the smallest absolute distance to
// n; an exact tie resolves to the lower candidate. Total: when no
// palindrome at or above n fits in uint64, the floor wins outright.
// Complexity: O(digits).
func Closest(n uint64) Palindrome {
	lo := Le(n)
	hi, err := Ge(n)
	if err != nil {
		return lo
	}
	if n-lo.n <= hi.n-n {
		return lo
	}

	return hi
}
