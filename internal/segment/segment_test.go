package segment

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// verifyInvariants checks two invariants that must hold for every segmentation:
//   - Byte offset invariant: input[seg.Start:seg.End] == seg.Text for every segment.
//   - Reconstruction invariant: concatenating all segment texts reproduces the input.
func verifyInvariants(t *testing.T, input string, segs []Segment) {
	t.Helper()
	for i, seg := range segs {
		if got := input[seg.Start:seg.End]; got != seg.Text {
			t.Errorf("segment %d offset invariant broken: input[%d:%d]=%q, Text=%q",
				i, seg.Start, seg.End, got, seg.Text)
		}
	}
	var buf strings.Builder
	for _, seg := range segs {
		buf.WriteString(seg.Text)
	}
	if buf.String() != input {
		t.Errorf("reconstruction invariant broken:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{"single word", "ten", []Segment{
			{Text: "ten", Start: 0, End: 3, Type: Word},
		}},
		{"two words", "four cats", []Segment{
			{Text: "four", Start: 0, End: 4, Type: Word},
			{Text: " ", Start: 4, End: 5, Type: Space},
			{Text: "cats", Start: 5, End: 9, Type: Word},
		}},
		{"hyphen splits words", "forty-two", []Segment{
			{Text: "forty", Start: 0, End: 5, Type: Word},
			{Text: "-", Start: 5, End: 6, Type: Punctuation},
			{Text: "two", Start: 6, End: 9, Type: Word},
		}},
		{"punctuation run merges", "ten?!", []Segment{
			{Text: "ten", Start: 0, End: 3, Type: Word},
			{Text: "?!", Start: 3, End: 5, Type: Punctuation},
		}},
		{"comma then space", "billion, two", []Segment{
			{Text: "billion", Start: 0, End: 7, Type: Word},
			{Text: ",", Start: 7, End: 8, Type: Punctuation},
			{Text: " ", Start: 8, End: 9, Type: Space},
			{Text: "two", Start: 9, End: 12, Type: Word},
		}},
		{"quotes and backtick", "\"one\"`", []Segment{
			{Text: "\"", Start: 0, End: 1, Type: Punctuation},
			{Text: "one", Start: 1, End: 4, Type: Word},
			{Text: "\"`", Start: 4, End: 6, Type: Punctuation},
		}},
		{"parentheses stay in word", "(ten)", []Segment{
			{Text: "(ten)", Start: 0, End: 5, Type: Word},
		}},
		{"digits are words", "42 apples", []Segment{
			{Text: "42", Start: 0, End: 2, Type: Word},
			{Text: " ", Start: 2, End: 3, Type: Space},
			{Text: "apples", Start: 3, End: 9, Type: Word},
		}},
		{"whitespace merges", "a  \t\n b", []Segment{
			{Text: "a", Start: 0, End: 1, Type: Word},
			{Text: "  \t\n ", Start: 1, End: 6, Type: Space},
			{Text: "b", Start: 6, End: 7, Type: Word},
		}},
		{"multibyte word", "café one", []Segment{
			{Text: "café", Start: 0, End: 5, Type: Word},
			{Text: " ", Start: 5, End: 6, Type: Space},
			{Text: "one", Start: 6, End: 9, Type: Word},
		}},
		{"en-dash is not a separator", "one–two", []Segment{
			{Text: "one–two", Start: 0, End: 9, Type: Word},
		}},
		{"invalid utf8 is word", "\xff\xfe", []Segment{
			{Text: "\xff\xfe", Start: 0, End: 2, Type: Word},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Split(tt.input)
			verifyInvariants(t, tt.input, got)
			compareSegmentSlice(t, "Split", tt.want, got)
		})
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Errorf("Split(\"\") = %v, want nil", got)
	}
}

func TestAllStopsEarly(t *testing.T) {
	var got []Segment
	for seg := range All("one two three") {
		got = append(got, seg)
		if len(got) == 2 {
			break
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d segments, want 2", len(got))
	}
	if got[1].Type != Space {
		t.Errorf("second segment type = %v, want Space", got[1].Type)
	}
}

func TestWords(t *testing.T) {
	got := Words("I have four cats, and a dozen eggs.")
	want := []string{"I", "have", "four", "cats", "and", "a", "dozen", "eggs"}
	compareStringSlice(t, "Words", want, got)
}

func TestIsPunct(t *testing.T) {
	for _, r := range "-_'\";:!.,?`" {
		if !IsPunct(r) {
			t.Errorf("IsPunct(%q) = false, want true", r)
		}
	}
	for _, r := range "a1()[]$% \t’" {
		if IsPunct(r) {
			t.Errorf("IsPunct(%q) = true, want false", r)
		}
	}
}

func TestTypeString(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{Word, "Word"},
		{Punctuation, "Punctuation"},
		{Space, "Space"},
		{Type(99), "Type(99)"},
	}
	for _, tt := range cases {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestSegmentString(t *testing.T) {
	seg := Segment{Text: "ten", Start: 0, End: 3, Type: Word}
	if got, want := seg.String(), `Word("ten")[0:3]`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSplitLargeInput(t *testing.T) {
	input := strings.Repeat("one hundred and five, ", 10000)
	segs := Split(input)
	verifyInvariants(t, input, segs)
}

func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			segs := Split("nineteen hundred and ninety-nine")
			if len(segs) != 9 {
				t.Errorf("got %d segments, want 9", len(segs))
			}
		})
	}
	wg.Wait()
}

func ExampleSplit() {
	for _, seg := range Split("forty-two") {
		fmt.Println(seg)
	}
	// Output:
	// Word("forty")[0:5]
	// Punctuation("-")[5:6]
	// Word("two")[6:9]
}

func BenchmarkSplit(b *testing.B) {
	const text = "I have four cats and a dozen eggs, nineteen hundred and ninety-nine of them."
	for b.Loop() {
		Split(text)
	}
}

func FuzzSplit(f *testing.F) {
	f.Add("")
	f.Add("forty-two")
	f.Add("one billion, two hundred million and seven")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		verifyInvariants(t, s, Split(s))
	})
}
