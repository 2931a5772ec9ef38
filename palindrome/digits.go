package palindrome

import "math"

// digitHalf is the transient half-representation every algorithm in this
// package computes with: the first ceil(digits/2) decimal digits of a
// value plus the value's total digit count. Parity (whether the middle
// digit is shared or duplicated) is always derived from digits, never
// tracked separately, so half and parity cannot drift apart.
type digitHalf struct {
	half   uint64 // first ceil(digits/2) digits, no leading zero except for the value 0
	digits int    // total decimal digit count of the full value
}

// odd reports whether the full value has an odd number of digits,
// i.e. whether the half's last digit sits alone in the middle.
func (h digitHalf) odd() bool { return h.digits%2 == 1 }

// digitsOf returns the number of decimal digits in v; 0 counts as one digit.
// Complexity: O(digits).
func digitsOf(v uint64) int {
	d := 1
	for v >= 10 {
		v /= 10
		d++
	}

	return d
}

// pow10 returns 10^k for 0 <= k <= 19.
func pow10(k int) uint64 {
	v := uint64(1)
	for ; k > 0; k-- {
		v *= 10
	}

	return v
}

// halfOf decodes v into its digit-half representation.
// Total: every uint64 has a well-defined half, including 0 → {0, 1}.
// Complexity: O(digits).
func halfOf(v uint64) digitHalf {
	d := digitsOf(v)

	return digitHalf{half: v / pow10(d/2), digits: d}
}

// mirror expands a digit-half into the full palindromic value by
// appending the digit-reverse of the half, skipping the reversed copy of
// the middle digit when the total digit count is odd:
//
//	{123, 5} → 12321
//	{123, 6} → 123321
//
// Returns ErrOverflow when the mirrored value does not fit in uint64,
// which can only happen in the 20-digit bracket above maxHalf.
// Complexity: O(digits).
func mirror(h digitHalf) (uint64, error) {
	v := h.half
	tail := h.half
	if h.odd() {
		tail /= 10 // the middle digit is shared, not duplicated
	}
	for tail > 0 {
		d := tail % 10
		if v > (math.MaxUint64-d)/10 {
			return 0, ErrOverflow
		}
		v = v*10 + d
		tail /= 10
	}

	return v, nil
}

// bracketMinHalf returns the smallest half generating a palindrome with
// exactly d total digits: 0 for the single-digit bracket, otherwise a
// leading 1 followed by zeros.
func bracketMinHalf(d int) uint64 {
	if d == 1 {
		return 0
	}

	return pow10((d+1)/2 - 1)
}

// bracketMaxHalf returns the largest half of the d-digit bracket:
// all nines at the half's width.
func bracketMaxHalf(d int) uint64 {
	return pow10((d+1)/2) - 1
}
