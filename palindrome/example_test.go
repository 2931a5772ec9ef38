package palindrome_test

import (
	"fmt"

	"github.com/katalvlaran/palindra/palindrome"
)

// ExampleIsPalindrome demonstrates the O(digits) palindromicity test.
func ExampleIsPalindrome() {
	fmt.Println(palindrome.IsPalindrome(8008))
	fmt.Println(palindrome.IsPalindrome(69))
	// Output:
	// true
	// false
}

// ExampleClosest locates the nearest palindrome to an arbitrary value;
// 5335 wins over 5445 because it is 5 away instead of 105.
func ExampleClosest() {
	fmt.Println(palindrome.Closest(5340))
	// Output:
	// 5335
}

// ExampleNext steps across a digit-length boundary: after 99 the
// sequence continues at 101, not at a three-digit mirror of 10 padded
// with zeros.
func ExampleNext() {
	p, err := palindrome.New(99)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	succ, err := palindrome.Next(p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(succ)
	// Output:
	// 101
}

// ExampleNth jumps straight to the 1000th palindrome without enumerating
// the 999 before it.
func ExampleNth() {
	p, err := palindrome.Nth(1000)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	// Output:
	// 90109
}

// ExampleToN ranks a palindrome: 99 is the 19th palindrome, counting from
// zero (ten single-digit values, then 11..88).
func ExampleToN() {
	p, err := palindrome.New(99)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(palindrome.ToN(p))
	// Output:
	// 18
}
