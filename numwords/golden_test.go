package numwords

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

type goldenCase struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	Value  int64  `json:"value"`
	Error  string `json:"error,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

const goldenPath = "../data/golden/numwords.json"

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

			got := evaluate(tc.Input)
			if got.Error != tc.Error || got.Offset != tc.Offset {
				t.Fatalf("Parse(%q) error = %s@%d, want %s@%d",
					tc.Input, got.Error, got.Offset, tc.Error, tc.Offset)
			}
			if tc.Error != "" {
				return
			}
			if got.Value != tc.Value {
				t.Errorf("Parse(%q) = %d, want %d", tc.Input, got.Value, tc.Value)
			}

			canonical := Convert(tc.Value)
			back, err := Parse(canonical)
			if err != nil || back != tc.Value {
				t.Errorf("Parse(Convert(%d)) = %d, %v (text: %q)", tc.Value, back, err, canonical)
			}
		})
	}
}

// evaluate runs Parse and records the outcome in golden form.
func evaluate(input string) goldenCase {
	out := goldenCase{Input: input}
	v, err := Parse(input)
	if err == nil {
		out.Value = v
		return out
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		out.Error = pe.Kind.String()
		out.Offset = pe.Offset
		return out
	}
	out.Error = err.Error()
	return out
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
		got := evaluate(cases[i].Input)
		got.Name = cases[i].Name
		cases[i] = got
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/numwords.json")
}
