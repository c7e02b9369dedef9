package numwords

import (
	"errors"
	"testing"
)

// FuzzConvert verifies that Convert never panics and stays in range.
func FuzzConvert(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(100))
	f.Add(int64(1000))
	f.Add(int64(999_999_999_999))
	f.Add(int64(1_000_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		s := Convert(n)
		if (s == "") != (n < 0 || n > maxValue) {
			t.Errorf("Convert(%d) = %q, range mismatch", n, s)
		}
	})
}

// FuzzParse verifies that Parse never panics and that every failure is
// either ErrEmptyInput or a *ParseError with an offset inside the input.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("zero")
	f.Add("four score and seven")
	f.Add("nineteen hundred and ninety-nine")
	f.Add("fifty hundred")
	f.Add("a billion, two hundred")
	f.Add("tenant")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		v, err := Parse(s)
		if err == nil {
			if v < 0 || v > maxValue {
				t.Errorf("Parse(%q) = %d, out of range", s, v)
			}
			return
		}
		if errors.Is(err, ErrEmptyInput) {
			return
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q) error %v is not a *ParseError", s, err)
		}
		if pe.Offset < 0 || pe.Offset > len(s) {
			t.Errorf("Parse(%q) error offset %d outside [0, %d]", s, pe.Offset, len(s))
		}
	})
}

// FuzzParsePrefix verifies that the consumed length lies within the input
// and that the consumed text parses to the same value on its own.
func FuzzParsePrefix(f *testing.F) {
	f.Add("ten years")
	f.Add("a dozen eggs")
	f.Add("forty-two, then")
	f.Add("fifty hundred")
	f.Add("  seven days")
	f.Add("\xff")

	f.Fuzz(func(t *testing.T, s string) {
		v, n, err := ParsePrefix(s)
		if err != nil {
			if n != 0 {
				t.Errorf("ParsePrefix(%q) consumed %d on error", s, n)
			}
			return
		}
		if n <= 0 || n > len(s) {
			t.Fatalf("ParsePrefix(%q) consumed %d, outside (0, %d]", s, n, len(s))
		}
		again, err := Parse(s[:n])
		if err != nil || again != v {
			t.Errorf("Parse(%q) = %d, %v; ParsePrefix gave %d", s[:n], again, err, v)
		}
	})
}

// FuzzRoundTrip verifies that Parse(Convert(n)) == n for all valid n.
func FuzzRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(1999))
	f.Add(int64(100_000))
	f.Add(int64(1_200_000_007))
	f.Add(int64(999_999_999_999))

	f.Fuzz(func(t *testing.T, n int64) {
		text := Convert(n)
		if text == "" {
			return // out of range, skip
		}
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(Convert(%d)) = %q, error: %v", n, text, err)
		}
		if got != n {
			t.Errorf("Parse(Convert(%d)) = %d, want %d (text: %q)", n, got, n, text)
		}
	})
}

// FuzzExtract verifies match offsets: each Text is the slice it claims,
// matches are ordered and never overlap.
func FuzzExtract(f *testing.F) {
	f.Add("I have four cats and a dozen eggs")
	f.Add("one\ntwo\nthree")
	f.Add("fifty hundred tenant ten")
	f.Add("\xffnine\x00")

	f.Fuzz(func(t *testing.T, s string) {
		prev := 0
		for m := range Extract(s) {
			if m.Start < prev || m.End <= m.Start || m.End > len(s) {
				t.Fatalf("Extract(%q) bad span %v after %d", s, m, prev)
			}
			if s[m.Start:m.End] != m.Text {
				t.Fatalf("Extract(%q) Text %q != s[%d:%d]", s, m.Text, m.Start, m.End)
			}
			if m.Line < 1 || m.Column < 1 {
				t.Errorf("Extract(%q) bad position %d:%d", s, m.Line, m.Column)
			}
			prev = m.End
		}
	})
}
