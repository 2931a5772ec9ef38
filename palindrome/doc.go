// Package palindrome computes with palindromic uint64 values through
// digit-half mirroring: every palindrome is generated by the first half
// of its digits, so testing, stepping, locating and ranking all reduce to
// O(digit-count) arithmetic on halves.
//
// What:
//
//   - Palindrome wraps a uint64 whose digits equal their reverse; Min()
//     is 0 and Max() is 18446744066044764481, the widest fit for uint64.
//   - IsPalindrome tests any uint64 by reversing only half its digits.
//   - Next / Prev step to the adjacent palindrome with exact carry and
//     borrow across digit-length boundaries (999 → 1001, 100 → 99).
//   - Le / Ge / Closest locate the nearest palindrome at or below, at or
//     above, or closest to an arbitrary uint64 (ties resolve low).
//   - Nth / ToN map between a palindrome's zero-based ordinal and its
//     value using closed-form per-digit-length counts — never by walking.
//
// Why:
//
//   - Puzzle & number-theory tooling: jump straight to the k-th palindrome.
//   - Test-data generation: dense palindromic fixtures around any point.
//   - Range queries: count palindromes in [a,b] without enumeration.
//
// Complexity:
//
//   - IsPalindrome, Next, Prev, Le, Ge, Closest: O(digits), ≤ 20 steps.
//   - Nth, ToN, Count: O(1) — at most 20 bracket terms.
//
// Errors:
//
//   - ErrOverflow: successor or ceiling beyond the largest uint64 palindrome.
//   - ErrUnderflow: predecessor of 0 requested.
//   - ErrIndexRange: rank index ≥ Count().
//   - ErrNotPalindrome: New called with a non-palindromic value.
//
// All values are immutable; every operation is a pure function, safe for
// unsynchronized concurrent use.
package palindrome
