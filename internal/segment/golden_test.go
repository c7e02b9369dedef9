package segment

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase represents a single golden test case.
// Segments is optional: only for cases where offsets and types matter.
type goldenCase struct {
	Name     string    `json:"name"`
	Input    string    `json:"input"`
	Words    []string  `json:"words"`
	Segments []Segment `json:"segments,omitempty"`
}

const goldenPath = "../../data/golden/segment.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			segs := Split(tc.Input)
			verifyInvariants(t, tc.Input, segs)

			compareStringSlice(t, "Words", tc.Words, Words(tc.Input))

			if len(tc.Segments) > 0 {
				compareSegmentSlice(t, "Segments", tc.Segments, segs)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		tc.Words = Words(tc.Input)
		if len(tc.Segments) > 0 {
			tc.Segments = Split(tc.Input)
		}
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/segment.json")
}

func compareStringSlice(t *testing.T, label string, want, got []string) {
	t.Helper()

	if len(want) == 0 && len(got) == 0 {
		return
	}

	if len(got) != len(want) {
		t.Errorf("%s: got %d items, want %d\n  got:  %v\n  want: %v",
			label, len(got), len(want), got, want)
		return
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %q, want %q", label, i, got[i], want[i])
		}
	}
}

func compareSegmentSlice(t *testing.T, label string, want, got []Segment) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("%s: got %d segments, want %d", label, len(got), len(want))
		printSegmentDiff(t, want, got)
		return
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d]:\n  got:  %s\n  want: %s", label, i, got[i], want[i])
		}
	}
}

func printSegmentDiff(t *testing.T, want, got []Segment) {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("  want:\n")
	for _, seg := range want {
		sb.WriteString("    " + seg.String() + "\n")
	}
	sb.WriteString("  got:\n")
	for _, seg := range got {
		sb.WriteString("    " + seg.String() + "\n")
	}
	t.Log(sb.String())
}
