// Package sequence provides lazy, boundable, restartable iteration over
// ascending palindromic uint64 values, built on the adjacency stepping
// and rank mapping of the palindrome package.
//
// What:
//
//   - Iterator is a single-owner cursor: Next advances, Value reads,
//     Reset rewinds, Exhausted reports the terminal state.
//   - FromRange(a, b) iterates every palindrome within [a, b].
//   - FirstN(n) iterates the first n palindromes from 0.
//   - FirstNFrom(p, n) iterates n palindromes starting at p.
//   - Len() is the exact sequence length in O(1), derived from rank
//     arithmetic before any element is produced.
//
// Why:
//
//   - Streaming enumeration without materializing slices.
//   - Counting palindromes in an interval without stepping through it.
//   - Deterministic, replayable fixtures via Reset.
//
// Complexity:
//
//   - Construction and Len: O(1) (O(digits) for FromRange bounds).
//   - Each Next: O(digits) — one half increment plus one mirror.
//
// Errors:
//
//   - ErrBadRange: FromRange called with a > b.
//
// A range with no palindromes in it is not an error: the factory returns
// an already-empty iterator whose Len is 0.
package sequence
