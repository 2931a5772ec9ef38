// Package palindra enumerates palindromic uint64 values — numbers whose
// decimal digits read the same forwards and backwards — without ever
// scanning the integer line.
//
// 🚀 What is palindra?
//
//	A small, thread-safe, zero-dependency library built on one idea:
//	every palindrome is fully determined by the first half of its digits,
//	so every question about palindromes reduces to arithmetic on halves
//	instead of search:
//		• Palindromicity test: IsPalindrome in O(digits)
//		• Nearest palindrome: Le / Ge / Closest for any uint64
//		• Stepping: Next / Prev with exact digit-length boundary carry
//		• Ranking: Nth / ToN map ordinal ↔ value in closed form
//		• Sequences: lazy bounded iterators with O(1) Len
//
// ✨ Why choose palindra?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, explicit sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Exact – no floating point, no probabilistic shortcuts
//
// Under the hood, everything is organized under two subpackages:
//
//	palindrome/ — the Palindrome value type, half-mirroring engine,
//	              locators (Le/Ge/Closest) and the rank mapper (Nth/ToN)
//	sequence/   — restartable bounded iterators over palindromes
//
// Quick ASCII example:
//
//	    1 2 3 2 1
//	    │ │ │ │ │
//	    └─┼─┼─┼─┘
//	      └─┼─┘
//
//	the half "123" generates the whole palindrome; palindra only ever
//	computes with halves.
//
//	go get github.com/katalvlaran/palindra
package palindra
