// Package widget implements the scrolling/input/selection primitives
// shared by every mode: Output, ReadLine, SelectMenu and Filter.
package widget

import "unicode"

// FuzzyMatches reports whether pattern is an ordered, case-insensitive
// subsequence of text, with one extra constraint: once a match has been
// made against an alphanumeric pattern character, the next alphanumeric
// match must be adjacent to it in text (immediately follow it) unless the
// previous matched character was not alphanumeric or the candidate starts
// a new alphanumeric run in text (it follows a non-alphanumeric
// character). So "cto" matches "Cargo.toml" (the 't' starts the run after
// '.'), while "ab" does not match "aXb" ('b' sits inside the same run
// as 'a' without being adjacent to it).
func FuzzyMatches(text, pattern string) bool {
	if pattern == "" {
		return true
	}

	patternRunes := []rune(pattern)
	pi := 0
	previousMatchedIndex := -1
	wasAlphanumeric := false
	previousTextAlphanumeric := false

	for i, r := range text {
		if pi >= len(patternRunes) {
			break
		}
		isAlphanumeric := isASCIIAlphanumeric(r)
		startsRun := !previousTextAlphanumeric
		previousTextAlphanumeric = isAlphanumeric
		if !equalFold(r, patternRunes[pi]) {
			continue
		}

		matched := !isAlphanumeric || !wasAlphanumeric || startsRun || previousMatchedIndex+1 == i
		if !matched {
			continue
		}

		previousMatchedIndex = i
		wasAlphanumeric = isAlphanumeric
		pi++
	}

	return pi >= len(patternRunes)
}

func equalFold(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

func isASCIIAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
