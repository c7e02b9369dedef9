// Package numwords converts between integers and English number phrases.
//
// The package provides:
//
//   - Parse turns a complete phrase ("four score and seven") into an integer.
//   - ParsePrefix parses the number phrase at the start of a string and
//     reports how many bytes it consumed ("ten years" gives 10 and 3).
//   - Extract lazily finds every number phrase in running text.
//   - Convert renders an integer as the canonical phrase accepted by Parse.
//
// The grammar is place-value based. Magnitude words (hundred, thousand,
// million, billion) take a preceding multiplier and an optional remainder
// joined by "and", a comma, or a hyphen. Irregular forms are supported:
// teen-prefixed hundreds ("nineteen hundred and ninety nine"), dozen and
// score ("four score and seven"), and the article "a" standing in for one
// ("a billion", "a dozen"). Ill-formed combinations such as "fifty hundred"
// are rejected rather than guessed at. Word matching is case-insensitive.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Values are limited to 0 through 999,999,999,999; there is no "trillion".
//   - Ordinals, fractions, and negative numbers are not parsed.
//   - "Threescore and ten" style remainders above nine are not accepted after
//     dozen or score.
package numwords

import (
	"fmt"
	"iter"
)

// Match is a number phrase found in text by Extract.
type Match struct {
	Text   string `json:"text"`   // The matched substring
	Value  int64  `json:"value"`  // Parsed value
	Start  int    `json:"start"`  // Byte offset in the original string (inclusive)
	End    int    `json:"end"`    // Byte offset in the original string (exclusive)
	Line   int    `json:"line"`   // 1-based line of Start
	Column int    `json:"column"` // 1-based rune column of Start
}

// String returns a debug representation, e.g. 12("a dozen")[21:28].
func (m Match) String() string {
	return fmt.Sprintf("%d(%q)[%d:%d]", m.Value, m.Text, m.Start, m.End)
}

// Parse converts a complete English number phrase to an integer.
// Leading and trailing whitespace is ignored; any other unconsumed input is
// an error.
//
// Returns ErrEmptyInput for blank input and a *ParseError otherwise.
func Parse(s string) (int64, error) {
	return parse(s)
}

// ParsePrefix parses the longest number phrase at the start of s, after any
// leading whitespace, and returns its value and the byte offset just past its
// last word. Separators following the phrase are not counted as consumed.
//
// Returns ErrEmptyInput for blank input and a *ParseError when s does not
// begin with a number phrase.
func ParsePrefix(s string) (value int64, consumed int, err error) {
	return parsePrefix(s)
}

// Extract returns a lazy sequence of all non-overlapping number phrases in s,
// in order of occurrence. Words that do not begin a number phrase are skipped;
// malformed fragments never abort the scan.
func Extract(s string) iter.Seq[Match] {
	return extract(s)
}

// ExtractAll collects Extract into a slice. Returns nil when s contains no
// number phrases.
func ExtractAll(s string) []Match {
	var matches []Match
	for m := range extract(s) {
		matches = append(matches, m)
	}
	return matches
}

// Convert returns the canonical English phrase for n, e.g.
// "one thousand and two hundred and five" for 1205.
// Returns "" when n is negative or above 999,999,999,999.
func Convert(n int64) string {
	return convert(n)
}

func parse(s string) (int64, error) {
	start := skipSpace(s, 0)
	if start == len(s) {
		return 0, ErrEmptyInput
	}

	p := newParser(s)
	v, end, ok := p.number(start)
	if !ok {
		return 0, p.fail.err()
	}
	if rest := skipSpace(s, end); rest < len(s) {
		return 0, p.leftover(end, rest)
	}
	return v, nil
}

func parsePrefix(s string) (int64, int, error) {
	start := skipSpace(s, 0)
	if start == len(s) {
		return 0, 0, ErrEmptyInput
	}

	p := newParser(s)
	v, end, ok := p.number(start)
	if !ok {
		return 0, 0, p.fail.err()
	}
	return v, end, nil
}

// leftover builds the error for a full parse that stopped at end with input
// remaining at rest. A rejection recorded past the accepted phrase is more
// useful than "trailing input", so it takes precedence.
func (p *parser) leftover(end, rest int) *ParseError {
	if p.fail.offset >= end && p.fail.kind > TokenMismatch {
		return p.fail.err()
	}
	e := &ParseError{Kind: IncompleteInput, Offset: rest}
	if p.fail.offset == rest {
		e.Expected = append(e.Expected, p.fail.expected...)
	}
	return e
}
