package palindrome_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/palindra/palindrome"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsPalindrome_Fixtures covers the representative shapes: single
// digits, even and odd widths, trailing zeros, and both uint64 extremes.
func TestIsPalindrome_Fixtures(t *testing.T) {
	cases := map[uint64]bool{
		0:                    true,
		5:                    true,
		10:                   false,
		11:                   true,
		69:                   false,
		121:                  true,
		1000:                 false,
		8008:                 true,
		12321:                true,
		123321:               true,
		123421:               false,
		18446744066044764481: true,  // Max
		18446744073709551615: false, // MaxUint64
	}
	for v, want := range cases {
		assert.Equal(t, want, palindrome.IsPalindrome(v), "IsPalindrome(%d)", v)
	}
}

// TestIsPalindrome_AgainstStringReversal cross-checks the half-reversal
// trick against the naive textual definition over a dense range.
func TestIsPalindrome_AgainstStringReversal(t *testing.T) {
	for v := uint64(0); v <= 20000; v++ {
		s := strconv.FormatUint(v, 10)
		r := []byte(s)
		for l, h := 0, len(r)-1; l < h; l, h = l+1, h-1 {
			r[l], r[h] = r[h], r[l]
		}
		require.Equal(t, s == string(r), palindrome.IsPalindrome(v), "IsPalindrome(%d)", v)
	}
}

// TestNew_ValidatesInvariant ensures the checked constructor is the only
// gate values pass through.
func TestNew_ValidatesInvariant(t *testing.T) {
	p, err := palindrome.New(12321)
	require.NoError(t, err)
	assert.Equal(t, uint64(12321), p.Uint64())

	_, err = palindrome.New(12345)
	assert.ErrorIs(t, err, palindrome.ErrNotPalindrome, "New(12345) must be rejected")
}

// TestBounds pins the two boundary instances.
func TestBounds(t *testing.T) {
	assert.Equal(t, uint64(0), palindrome.Min().Uint64(), "Min is zero")
	assert.Equal(t, uint64(18446744066044764481), palindrome.Max().Uint64(), "Max is the widest uint64 palindrome")
	assert.True(t, palindrome.IsPalindrome(palindrome.Max().Uint64()), "Max must satisfy its own invariant")
}

// TestOrderingAndString verifies natural-order comparison and the decimal
// rendering of the wrapped value.
func TestOrderingAndString(t *testing.T) {
	a := mustPal(t, 121)
	b := mustPal(t, 131)

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, "121", a.String())
	assert.Equal(t, "0", palindrome.Min().String())
}

// TestPalindrome_ZeroValue confirms the zero value of the type is the
// palindrome 0, interchangeable with Min().
func TestPalindrome_ZeroValue(t *testing.T) {
	var p palindrome.Palindrome
	assert.Equal(t, palindrome.Min(), p)
}
