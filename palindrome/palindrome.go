package palindrome

import "github.com/katalvlaran/twopointer/trace"

// IsPalindrome reports whether s reads identically forward and backward.
//
// Elements are compared with ==. When E is an interface type, comparing two
// values whose dynamic type is not comparable (a slice, map or func) panics,
// as == does anywhere else in Go.
func IsPalindrome[E comparable](s []E, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	em := trace.NewEmitter(o.Tracer, OpName)

	left, right := 0, len(s)-1
	for left < right {
		if em.Enabled() {
			em.Emit(trace.Compare, trace.NoIndex, left, right, s[left], s[right])
		}
		if s[left] != s[right] {
			if em.Enabled() {
				em.Emit(trace.Mismatch, trace.NoIndex, left, right, s[left], s[right])
			}
			return false
		}
		left++
		right--
	}

	return true
}

// IsPalindromeString reports whether the characters of s read identically
// forward and backward. Characters are Unicode code points; no case folding
// or normalization is applied.
func IsPalindromeString(s string, opts ...Option) bool {
	return IsPalindrome([]rune(s), opts...)
}
