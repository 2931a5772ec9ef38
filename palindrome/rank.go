package palindrome

// bracketCount returns how many palindromes have exactly d decimal
// digits: 10 for d=1 (the values 0..9), otherwise 9*10^(ceil(d/2)-1),
// since the half's leading digit has nine choices and each further half
// digit ten, the second half being determined by mirroring. The widest
// bracket (d=20) is truncated at Max().
func bracketCount(d int) uint64 {
	if d == 1 {
		return 10
	}
	if d == maxDigits {
		return maxHalf - bracketMinHalf(maxDigits) + 1
	}

	return 9 * pow10((d+1)/2-1)
}

// Count returns the total number of palindromes representable in uint64,
// 11_844_674_406.
// Complexity: O(1) — a fixed 20-bracket sum.
func Count() uint64 {
	var total uint64
	for d := 1; d <= maxDigits; d++ {
		total += bracketCount(d)
	}

	return total
}

// Nth returns the palindrome at zero-based ordinal i in the ascending
// sequence of all palindromes: Nth(0)=0, Nth(10)=11, Nth(1000)=90109.
// Returns ErrIndexRange when i >= Count().
// Complexity: O(1) — walks at most 20 digit brackets.
func Nth(i uint64) (Palindrome, error) {
	rem := i
	for d := 1; d <= maxDigits; d++ {
		c := bracketCount(d)
		if rem < c {
			v, err := mirror(digitHalf{half: bracketMinHalf(d) + rem, digits: d})
			if err != nil {
				return Palindrome{}, err
			}

			return Palindrome{v}, nil
		}
		rem -= c
	}

	return Palindrome{}, ErrIndexRange
}

// ToN returns the zero-based ordinal of p in the ascending palindrome
// sequence: the counts of all narrower brackets plus the offset of p's
// half within its own bracket. Total — every Palindrome has a rank.
// Inverse of Nth: ToN(Nth(i)) == i and Nth(ToN(p)) == p.
// Complexity: O(1).
func ToN(p Palindrome) uint64 {
	h := halfOf(p.n)
	var rank uint64
	for d := 1; d < h.digits; d++ {
		rank += bracketCount(d)
	}

	return rank + (h.half - bracketMinHalf(h.digits))
}
