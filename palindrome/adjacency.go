package palindrome

// next advances h to the half generating the immediately following
// palindrome. Within a bracket this is a plain increment; when the half
// is all nines the total digit count grows by one and the new half is the
// smallest half of the wider bracket. Parity is re-derived from the new
// digit counts on every step, never toggled.
func (h digitHalf) next() digitHalf {
	if h.half == bracketMaxHalf(h.digits) {
		return digitHalf{half: bracketMinHalf(h.digits + 1), digits: h.digits + 1}
	}

	return digitHalf{half: h.half + 1, digits: h.digits}
}

// prev steps h to the half generating the immediately preceding
// palindrome: a plain decrement within the bracket, or the all-nines half
// of the next narrower bracket when h sits at its bracket's floor.
// Undefined for the half of 0, which has no predecessor.
func (h digitHalf) prev() digitHalf {
	if h.half == bracketMinHalf(h.digits) {
		return digitHalf{half: bracketMaxHalf(h.digits - 1), digits: h.digits - 1}
	}

	return digitHalf{half: h.half - 1, digits: h.digits}
}

// Next returns the smallest palindrome strictly greater than p.
// Digit-length boundaries carry exactly: Next(9)=11, Next(99)=101,
// Next(999)=1001. Returns ErrOverflow iff p == Max().
// Complexity: O(digits).
func Next(p Palindrome) (Palindrome, error) {
	if p.n == maxValue {
		return Palindrome{}, ErrOverflow
	}
	v, err := mirror(halfOf(p.n).next())
	if err != nil {
		return Palindrome{}, err
	}

	return Palindrome{v}, nil
}

// Prev returns the largest palindrome strictly smaller than p.
// Digit-length boundaries borrow exactly: Prev(11)=9, Prev(101)=99,
// Prev(1001)=999. Returns ErrUnderflow iff p == Min().
// Complexity: O(digits).
func Prev(p Palindrome) (Palindrome, error) {
	if p.n == minValue {
		return Palindrome{}, ErrUnderflow
	}
	v, err := mirror(halfOf(p.n).prev())
	if err != nil {
		return Palindrome{}, err
	}

	return Palindrome{v}, nil
}
