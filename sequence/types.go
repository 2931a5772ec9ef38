// Package sequence defines iterator state and sentinel errors for the
// sequence subpackage of github.com/katalvlaran/palindra.
package sequence

import "errors"

// Sentinel errors for sequence construction.
var (
	// ErrBadRange indicates a range factory was given a lower bound above its upper bound.
	ErrBadRange = errors.New("sequence: lower bound exceeds upper bound")
)

// state tracks the iterator cursor lifecycle.
type state int

const (
	// notStarted: no palindrome produced yet; Next yields the start value.
	notStarted state = iota
	// active: cursor holds the last-produced palindrome.
	active
	// exhausted: the successor would pass the bound or overflow uint64.
	exhausted
)
