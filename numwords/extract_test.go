package numwords

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []Match
	}{
		{"cats and eggs", "I have four cats and a dozen eggs", []Match{
			{Text: "four", Value: 4, Start: 7, End: 11, Line: 1, Column: 8},
			{Text: "a dozen", Value: 12, Start: 21, End: 28, Line: 1, Column: 22},
		}},
		{"no numbers", "nothing to see here", nil},
		{"tenant is not ten", "the tenant paid ten dollars", []Match{
			{Text: "ten", Value: 10, Start: 16, End: 19, Line: 1, Column: 17},
		}},
		{"multi word phrase", "Founded in nineteen hundred and ninety nine, closed in two thousand and one.", []Match{
			{Text: "nineteen hundred and ninety nine", Value: 1999, Start: 11, End: 43, Line: 1, Column: 12},
			{Text: "two thousand and one", Value: 2001, Start: 55, End: 75, Line: 1, Column: 56},
		}},
		{"quoted and punctuated", `"Four score and seven" years ago; ten-year-old`, []Match{
			{Text: "Four score and seven", Value: 87, Start: 1, End: 21, Line: 1, Column: 2},
			{Text: "ten", Value: 10, Start: 34, End: 37, Line: 1, Column: 35},
		}},
		{"multiple lines", "one\ntwo apples\n  and three", []Match{
			{Text: "one", Value: 1, Start: 0, End: 3, Line: 1, Column: 1},
			{Text: "two", Value: 2, Start: 4, End: 7, Line: 2, Column: 1},
			{Text: "three", Value: 3, Start: 21, End: 26, Line: 3, Column: 7},
		}},
		{"rejected hundred yields multiplier", "fifty hundred", []Match{
			{Text: "fifty", Value: 50, Start: 0, End: 5, Line: 1, Column: 1},
		}},
		{"adjacent numbers", "ten ten", []Match{
			{Text: "ten", Value: 10, Start: 0, End: 3, Line: 1, Column: 1},
			{Text: "ten", Value: 10, Start: 4, End: 7, Line: 1, Column: 5},
		}},
		{"multibyte column", "café: seven", []Match{
			{Text: "seven", Value: 7, Start: 7, End: 12, Line: 1, Column: 7},
		}},
		{"a hundred thousand", "a hundred thousand people came", []Match{
			{Text: "a hundred thousand", Value: 100_000, Start: 0, End: 18, Line: 1, Column: 1},
		}},
		{"zero", "zero, zilch", []Match{
			{Text: "zero", Value: 0, Start: 0, End: 4, Line: 1, Column: 1},
		}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractAll(tt.input)
			compareMatches(t, tt.want, got)
			for _, m := range got {
				if tt.input[m.Start:m.End] != m.Text {
					t.Errorf("offset invariant broken: input[%d:%d]=%q, Text=%q",
						m.Start, m.End, tt.input[m.Start:m.End], m.Text)
				}
			}
		})
	}
}

func TestExtractLazy(t *testing.T) {
	t.Parallel()

	var got []Match
	for m := range Extract("one two three four five") {
		got = append(got, m)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 || got[0].Value != 1 || got[1].Value != 2 {
		t.Errorf("early stop got %v, want values [1 2]", got)
	}
}

func TestExtractRestartable(t *testing.T) {
	t.Parallel()

	seq := Extract("a dozen eggs and four score and seven")
	first := collect(seq)
	second := collect(seq)
	compareMatches(t, first, second)
	if len(first) != 2 {
		t.Errorf("got %d matches, want 2", len(first))
	}
}

func TestExtractOrdered(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := range int64(200) {
		fmt.Fprintf(&b, "item %s; ", Convert(i*37))
	}
	matches := ExtractAll(b.String())
	if len(matches) != 200 {
		t.Fatalf("got %d matches, want 200", len(matches))
	}
	for i, m := range matches {
		if m.Value != int64(i)*37 {
			t.Errorf("match %d value = %d, want %d", i, m.Value, int64(i)*37)
		}
		if i > 0 && m.Start < matches[i-1].End {
			t.Errorf("match %d overlaps previous: %v after %v", i, m, matches[i-1])
		}
	}
}

func TestMatchString(t *testing.T) {
	t.Parallel()

	m := Match{Text: "a dozen", Value: 12, Start: 21, End: 28}
	if got, want := m.String(), `12("a dozen")[21:28]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func ExampleExtract() {
	for m := range Extract("I have four cats and a dozen eggs") {
		fmt.Println(m.Value, m.Text)
	}
	// Output:
	// 4 four
	// 12 a dozen
}

func BenchmarkExtract(b *testing.B) {
	text := strings.Repeat("I have four cats and a dozen eggs, nineteen hundred and ninety nine of them. ", 20)
	for b.Loop() {
		for range Extract(text) {
		}
	}
}

func collect(seq func(func(Match) bool)) []Match {
	var out []Match
	for m := range seq {
		out = append(out, m)
	}
	return out
}

func compareMatches(t *testing.T, want, got []Match) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("got %d matches, want %d\n  got:  %v\n  want: %v", len(got), len(want), got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d:\n  got:  %+v\n  want: %+v", i, got[i], want[i])
		}
	}
}
