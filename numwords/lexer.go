// Word matching and separator handling.
package numwords

import (
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/numwords/internal/segment"
)

// matchStatus is the outcome of matching a single surface word.
type matchStatus int

const (
	matched    matchStatus = iota
	mismatched             // text differs
	unbounded              // text matches but is followed by a letter or other non-boundary rune
)

// matchWord matches surface at s[pos:] ignoring ASCII case and requires a
// boundary after it: end of input, whitespace, or separator punctuation.
// This keeps "ten" from matching inside "tenant" and "four" inside "fourteen".
//
// On success end is the offset just past the word and next is end advanced
// past any immediately-following separator run. A failed match consumes nothing.
func matchWord(s string, pos int, surface string) (end, next int, status matchStatus) {
	if !hasPrefixFold(s[pos:], surface) {
		return pos, pos, mismatched
	}
	end = pos + len(surface)
	if !atBoundary(s, end) {
		return pos, pos, unbounded
	}
	return end, skipSeparators(s, end), matched
}

// atBoundary reports whether a word ending at pos is properly terminated.
func atBoundary(s string, pos int) bool {
	if pos >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return segment.IsSeparator(r)
}

// hasPrefixFold reports whether s begins with prefix under ASCII case folding.
// prefix must be lowercase ASCII.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(s[i]) != prefix[i] {
			return false
		}
	}
	return true
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// skipSpace returns the offset of the first non-whitespace rune at or after pos.
func skipSpace(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

// skipSeparators returns the offset of the first rune at or after pos that is
// neither whitespace nor separator punctuation.
func skipSeparators(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !segment.IsSeparator(r) {
			break
		}
		pos += size
	}
	return pos
}

// gap consumes the separator between a multiplier and its magnitude word:
// a whitespace run or a hyphen with optional trailing whitespace.
func gap(s string, pos int) (int, bool) {
	if pos < len(s) && s[pos] == '-' {
		return skipSpace(s, pos+1), true
	}
	next := skipSpace(s, pos)
	return next, next > pos
}

// separator consumes ",?" followed by whitespace, or a hyphen with optional
// trailing whitespace.
func separator(s string, pos int) (int, bool) {
	if pos < len(s) && s[pos] == '-' {
		return skipSpace(s, pos+1), true
	}
	i := pos
	if i < len(s) && s[i] == ',' {
		i++
	}
	next := skipSpace(s, i)
	return next, next > i
}

// conjunction consumes the join before a trailing part of a number: an
// optional "and" preceded by whitespace, then a separator. Every layer that
// accepts an "and"-joined remainder goes through here.
//
//	"hundred and five", "billion, two", "forty-two", "score and seven"
func conjunction(s string, pos int) (int, bool) {
	if i := skipSpace(s, pos); i > pos {
		if end, _, st := matchWord(s, i, wordAnd.surface); st == matched {
			if next, ok := separator(s, end); ok {
				return next, true
			}
		}
	}
	return separator(s, pos)
}
