// Package palindrome defines the Palindrome value type, boundary
// constants, and sentinel errors for the palindrome engine of
// github.com/katalvlaran/palindra.
package palindrome

import (
	"errors"
	"strconv"
)

// Sentinel errors for palindrome operations.
var (
	// ErrOverflow indicates the requested palindrome exceeds the largest
	// palindromic value representable in uint64.
	ErrOverflow = errors.New("palindrome: result exceeds the largest uint64 palindrome")
	// ErrUnderflow indicates a predecessor of the minimum palindrome (0) was requested.
	ErrUnderflow = errors.New("palindrome: no palindrome precedes zero")
	// ErrIndexRange indicates a rank index beyond the count of representable palindromes.
	ErrIndexRange = errors.New("palindrome: rank index out of range")
	// ErrNotPalindrome indicates New was given a value whose digits are not palindromic.
	ErrNotPalindrome = errors.New("palindrome: value is not palindromic")
)

const (
	// minValue is the smallest palindrome: zero.
	minValue uint64 = 0
	// maxValue is the largest palindromic value that fits in uint64:
	// the half 1844674406 mirrored across 20 digits. Mirroring the next
	// half up (1844674407) lands above 2^64-1.
	maxValue uint64 = 18446744066044764481
	// maxHalf is the generator half of maxValue.
	maxHalf uint64 = 1844674406
	// maxDigits is the decimal width of maxValue, the widest bracket.
	maxDigits = 20
)

// Palindrome is an immutable uint64 whose decimal digit sequence equals
// its own reverse. The zero value is the palindrome 0. Instances are
// produced only by this package (New, Min, Max, Next, Prev, Ge, Le,
// Closest, Nth), so the invariant cannot be violated by callers.
type Palindrome struct {
	n uint64
}

// Min returns the smallest palindrome, 0.
func Min() Palindrome { return Palindrome{minValue} }

// Max returns the largest palindrome representable in uint64,
// 18446744066044764481.
func Max() Palindrome { return Palindrome{maxValue} }

// Uint64 returns the wrapped integer value.
// Arithmetic on the result happens outside the palindrome invariant;
// feed values back in through New or the locators.
func (p Palindrome) Uint64() uint64 { return p.n }

// String returns the decimal digit sequence of p.
// Complexity: O(digits).
func (p Palindrome) String() string { return strconv.FormatUint(p.n, 10) }

// Cmp compares two palindromes by their integer value:
// -1 if p < q, 0 if p == q, +1 if p > q.
func (p Palindrome) Cmp(q Palindrome) int {
	switch {
	case p.n < q.n:
		return -1
	case p.n > q.n:
		return 1
	default:
		return 0
	}
}

// Less reports whether p precedes q in the ascending palindrome sequence.
func (p Palindrome) Less(q Palindrome) bool { return p.n < q.n }
