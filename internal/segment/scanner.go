package segment

import (
	"unicode"
	"unicode/utf8"
)

// next scans the single segment that begins at byte offset pos.
// The caller guarantees pos < len(s).
//
// Rule priority (highest first):
//   - Whitespace run
//   - Separator punctuation run
//   - Word run (everything else, including digits and other symbols)
func next(s string, pos int) Segment {
	r, _ := utf8.DecodeRuneInString(s[pos:])

	var (
		typ  Type
		keep func(rune) bool
	)
	switch {
	case unicode.IsSpace(r):
		typ, keep = Space, unicode.IsSpace
	case IsPunct(r):
		typ, keep = Punctuation, IsPunct
	default:
		typ, keep = Word, isWordRune
	}

	end := scanRun(s, pos, keep)
	return Segment{Text: s[pos:end], Start: pos, End: end, Type: typ}
}

// scanRun consumes runes from pos while keep reports true and returns the
// offset of the first rune that does not belong to the run.
// Invalid UTF-8 bytes decode as utf8.RuneError and are consumed one byte at a
// time, so the scan always advances.
func scanRun(s string, pos int, keep func(rune) bool) int {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !keep(r) {
			break
		}
		i += size
	}
	return i
}

// IsPunct reports whether r is one of the separator punctuation marks that may
// follow or join number words: - _ ' " ; : ! . , ? and the backtick.
func IsPunct(r rune) bool {
	switch r {
	case '-', '_', '\'', '"', ';', ':', '!', '.', ',', '?', '`':
		return true
	}
	return false
}

// IsSeparator reports whether r ends a word: whitespace or separator punctuation.
func IsSeparator(r rune) bool {
	return unicode.IsSpace(r) || IsPunct(r)
}

func isWordRune(r rune) bool {
	return !IsSeparator(r)
}
