// Package palindrome checks whether a sequence reads the same forward and
// backward, using two pointers that walk toward each other.
//
// Algorithm
//
//  1. left = 0, right = len(s)-1.
//  2. While left < right:
//     s[left] == s[right] → left++, right--
//     otherwise           → return false (short-circuit)
//  3. Return true.
//
// Sequences of length 0 or 1 are palindromes: the loop body never runs.
//
// Usage
//
//	palindrome.IsPalindromeString("racecar") // true
//	palindrome.IsPalindromeString("levels")  // false
//	palindrome.IsPalindrome([]int{1, 2, 1})  // true
//
// IsPalindromeString compares characters (runes), not bytes, so "été" is a
// palindrome even though its UTF-8 encoding is not byte-symmetric.
//
// Complexity
//
//   - Time:   O(n), at most n/2 comparisons.
//   - Memory: O(1) for IsPalindrome, O(n) for the rune copy in IsPalindromeString.
package palindrome
