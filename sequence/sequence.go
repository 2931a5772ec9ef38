package sequence

import (
	"github.com/katalvlaran/palindra/palindrome"
)

// Iterator is a restartable ascending cursor over palindromes. It is
// value-owned by a single consumer: independent iterators never share
// state, so concurrent use of distinct instances needs no coordination.
//
// Usage:
//
//	it := sequence.FirstN(5)
//	for it.Next() {
//	    fmt.Println(it.Value())
//	}
type Iterator struct {
	start  palindrome.Palindrome // first palindrome to produce
	upper  palindrome.Palindrome // inclusive upper bound
	cursor palindrome.Palindrome // last-produced palindrome, valid while active
	st     state
	empty  bool // true when the configured range holds no palindrome
}

// FromRange returns an iterator over every palindrome in [a, b],
// ascending. A range containing no palindrome yields a valid iterator
// with Len()==0. Returns ErrBadRange when a > b.
// Complexity: O(digits) construction.
func FromRange(a, b uint64) (*Iterator, error) {
	if a > b {
		return nil, ErrBadRange
	}
	lo, err := palindrome.Ge(a)
	if err != nil || lo.Uint64() > b {
		// a sits above Max(), or [a,b] fits between two adjacent palindromes
		return &Iterator{empty: true}, nil
	}

	return &Iterator{start: lo, upper: palindrome.Le(b)}, nil
}

// FirstN returns an iterator over the first n palindromes, 0 upward.
// Complexity: O(1) construction.
func FirstN(n uint64) *Iterator {
	return FirstNFrom(palindrome.Min(), n)
}

// FirstNFrom returns an iterator over n ascending palindromes starting at
// p inclusive. When fewer than n palindromes remain below Max(), the
// sequence stops at Max() and Len() reports the shorter length.
// Complexity: O(1) construction.
func FirstNFrom(p palindrome.Palindrome, n uint64) *Iterator {
	if n == 0 {
		return &Iterator{empty: true}
	}
	first := palindrome.ToN(p)
	last := first + n - 1
	if last >= palindrome.Count() || last < first { // capped, or n wrapped uint64
		last = palindrome.Count() - 1
	}
	upper, _ := palindrome.Nth(last) // last < Count() by construction

	return &Iterator{start: p, upper: upper}
}

// Next advances the cursor and reports whether a palindrome was produced.
// The first call yields the sequence's start; after the upper bound is
// produced the iterator transitions to exhausted and Next returns false
// permanently (until Reset).
// Complexity: O(digits) per step.
func (it *Iterator) Next() bool {
	switch it.st {
	case exhausted:
		return false
	case notStarted:
		if it.empty {
			it.st = exhausted

			return false
		}
		it.cursor = it.start
		it.st = active

		return true
	}

	succ, err := palindrome.Next(it.cursor)
	if err != nil || it.upper.Less(succ) {
		it.st = exhausted

		return false
	}
	it.cursor = succ

	return true
}

// Value returns the last palindrome produced by Next. It is meaningful
// only after Next has returned true for the current cursor position.
func (it *Iterator) Value() palindrome.Palindrome { return it.cursor }

// Exhausted reports whether the iterator has run past its bound.
func (it *Iterator) Exhausted() bool { return it.st == exhausted }

// Len returns the number of palindromes the full sequence produces,
// computed as the rank distance between the bounds — never by stepping.
// It is available before consumption and is not reduced by it.
// Complexity: O(1).
func (it *Iterator) Len() uint64 {
	if it.empty {
		return 0
	}

	return palindrome.ToN(it.upper) - palindrome.ToN(it.start) + 1
}

// Reset rewinds the iterator to its not-started state; the next call to
// Next produces the sequence's start palindrome again.
func (it *Iterator) Reset() {
	it.st = notStarted
	it.cursor = palindrome.Min()
}
