// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"strings"

	"github.com/samber/lo"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterLength keeps lowercase ASCII words of exactly n letters.
func FilterLength(n int) FilterFunc {
	return func(word string) bool {
		return len(word) == n && isLowerASCII(word)
	}
}

// Normalize lowercases and trims words, drops the ones rejected by keep and
// removes duplicates while preserving order.
func Normalize(words []string, keep FilterFunc) []string {
	out := lo.Map(words, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	return lo.Uniq(lo.Filter(out, func(w string, _ int) bool { return keep(w) }))
}

func isLowerASCII(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
