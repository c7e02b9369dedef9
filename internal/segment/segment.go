// Package segment splits text into word, punctuation, and space runs with
// byte offsets.
//
// A Word is a maximal run of runes that are neither whitespace nor one of the
// separator punctuation marks reported by IsPunct. The offset invariant
// s[seg.Start:seg.End] == seg.Text holds for every segment, and concatenating
// all segment texts reconstructs the original string.
//
// All functions are safe for concurrent use by multiple goroutines.
package segment

import (
	"fmt"
	"iter"
)

// Type classifies a segment.
type Type int

const (
	Word        Type = iota // Run of non-space, non-separator runes
	Punctuation             // Run of separator punctuation: - _ ' " ; : ! . , ? `
	Space                   // Contiguous whitespace (spaces, tabs, newlines)
)

// String returns the name of the segment type.
func (t Type) String() string {
	switch t {
	case Word:
		return "Word"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Segment is a run of text with its position and classification.
type Segment struct {
	Text  string `json:"text"`  // The segment text
	Start int    `json:"start"` // Byte offset in the original string (inclusive)
	End   int    `json:"end"`   // Byte offset in the original string (exclusive)
	Type  Type   `json:"type"`  // Classification of the segment
}

// String returns a debug representation, e.g. Word("ten")[0:3].
func (s Segment) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", s.Type, s.Text, s.Start, s.End)
}

// All returns a lazy sequence of the segments of s in order.
// Each step scans only the next run, so callers that stop early never pay for
// the rest of the input.
func All(s string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 0; i < len(s); {
			seg := next(s, i)
			if !yield(seg) {
				return
			}
			i = seg.End
		}
	}
}

// Split returns all segments of s.
func Split(s string) []Segment {
	if s == "" {
		return nil
	}
	segs := make([]Segment, 0, len(s)/4+1)
	for seg := range All(s) {
		segs = append(segs, seg)
	}
	return segs
}

// Words returns only Word-type segment texts from s.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	var words []string
	for seg := range All(s) {
		if seg.Type == Word {
			words = append(words, seg.Text)
		}
	}
	return words
}
