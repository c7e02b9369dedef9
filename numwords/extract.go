// Number phrase extraction from running text.
package numwords

import (
	"iter"
	"unicode/utf8"

	"github.com/az-ai-labs/numwords/internal/segment"
)

// extract is the internal implementation of Extract.
//
// Each Word segment that could begin a number is handed to the top-level rule
// in prefix mode. On success the match is yielded and every segment starting
// inside it is skipped; on failure the scan moves on to the next segment.
// Punctuation and space segments never start a match.
func extract(s string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		loc := locator{src: s, line: 1, col: 1}
		resume := 0

		for seg := range segment.All(s) {
			if seg.Start < resume || seg.Type != segment.Word || !startsNumberWord(seg.Text[0]) {
				continue
			}

			p := newParser(s)
			v, end, ok := p.number(seg.Start)
			if !ok {
				continue
			}
			resume = end

			line, col := loc.advance(seg.Start)
			m := Match{
				Text:   s[seg.Start:end],
				Value:  v,
				Start:  seg.Start,
				End:    end,
				Line:   line,
				Column: col,
			}
			if !yield(m) {
				return
			}
		}
	}
}

// locator converts increasing byte offsets into 1-based line and rune column
// positions. Each byte of the source is examined at most once per scan.
type locator struct {
	src  string
	off  int
	line int
	col  int
}

// advance moves the locator forward to offset pos and returns its position.
// pos must not be less than any previously requested offset.
func (l *locator) advance(pos int) (line, col int) {
	for l.off < pos {
		r, size := utf8.DecodeRuneInString(l.src[l.off:])
		l.off += size
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
	return l.line, l.col
}
