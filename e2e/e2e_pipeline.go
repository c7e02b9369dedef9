//go:build ignore

// e2e_pipeline exercises the segmenter, the parser, the extractor, and the
// renderer together and writes structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/az-ai-labs/numwords/internal/segment"
	"github.com/az-ai-labs/numwords/numwords"
)

// ---------- constants ----------

const (
	logPath      = "data/e2e_pipeline.log"
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
	goldenDir    = "data/golden"
)

// ---------- test corpus ----------

const textHistory = `Four score and seven years ago our fathers brought forth on this continent a new nation.
The census of nineteen hundred and ninety nine counted two million, three hundred thousand and forty-two people.
She bought a dozen eggs, six dozen and two apples, and a hundred and five pears.`

const textTraps = `The tenant paid fifty hundred dollars; the fourteenth visitor said "ten-year-old" twice.`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

// ---------- test suites ----------

func testSegment() []testResult {
	const mod = "segment"
	var results []testResult

	results = append(results, safeRun(mod, "reconstruction", func() testResult {
		start := time.Now()
		var sb strings.Builder
		for seg := range segment.All(textHistory) {
			sb.WriteString(seg.Text)
		}
		if sb.String() != textHistory {
			return fail(mod, "reconstruction", "concatenated segments != original", start)
		}
		return pass(mod, "reconstruction", start)
	}))

	results = append(results, safeRun(mod, "offset_invariant", func() testResult {
		start := time.Now()
		for _, s := range segment.Split(textTraps) {
			if textTraps[s.Start:s.End] != s.Text {
				return fail(mod, "offset_invariant",
					fmt.Sprintf("text[%d:%d]=%q != segment.Text=%q", s.Start, s.End, textTraps[s.Start:s.End], s.Text), start)
			}
		}
		return pass(mod, "offset_invariant", start)
	}))

	return results
}

func testParse() []testResult {
	const mod = "parse"
	var results []testResult

	results = append(results, safeRun(mod, "parse_basic", func() testResult {
		start := time.Now()
		cases := []struct {
			in   string
			want int64
		}{
			{"four score and seven", 87},
			{"nineteen hundred and ninety nine", 1999},
			{"a billion", 1_000_000_000},
			{"forty-two", 42},
			{"a hundred thousand", 100_000},
		}
		for _, c := range cases {
			got, err := numwords.Parse(c.in)
			if err != nil || got != c.want {
				return fail(mod, "parse_basic", fmt.Sprintf("Parse(%q)=%d, %v, want %d", c.in, got, err, c.want), start)
			}
		}
		return pass(mod, "parse_basic", start)
	}))

	results = append(results, safeRun(mod, "rejections", func() testResult {
		start := time.Now()
		cases := []struct {
			in   string
			want error
		}{
			{"fifty hundred", numwords.ErrInvalidMagnitudeOrder},
			{"tenant", numwords.ErrBoundaryViolation},
			{"ten ten", numwords.ErrIncompleteInput},
			{"   ", numwords.ErrEmptyInput},
		}
		for _, c := range cases {
			if _, err := numwords.Parse(c.in); !errors.Is(err, c.want) {
				return fail(mod, "rejections", fmt.Sprintf("Parse(%q) error=%v, want %v", c.in, err, c.want), start)
			}
		}
		return pass(mod, "rejections", start)
	}))

	results = append(results, safeRun(mod, "prefix", func() testResult {
		start := time.Now()
		v, n, err := numwords.ParsePrefix("twenty and a half")
		if err != nil || v != 20 || n != 6 {
			return fail(mod, "prefix", fmt.Sprintf("ParsePrefix=%d, %d, %v, want 20, 6", v, n, err), start)
		}
		return pass(mod, "prefix", start)
	}))

	return results
}

func testExtract() []testResult {
	const mod = "extract"
	var results []testResult

	results = append(results, safeRun(mod, "history_values", func() testResult {
		start := time.Now()
		want := []int64{87, 1999, 2_300_042, 12, 74, 105}
		var got []int64
		for m := range numwords.Extract(textHistory) {
			got = append(got, m.Value)
		}
		if fmt.Sprint(got) != fmt.Sprint(want) {
			return fail(mod, "history_values", fmt.Sprintf("values=%v, want %v", got, want), start)
		}
		return pass(mod, "history_values", start)
	}))

	results = append(results, safeRun(mod, "traps", func() testResult {
		start := time.Now()
		var texts []string
		for m := range numwords.Extract(textTraps) {
			texts = append(texts, m.Text)
		}
		if strings.Join(texts, "|") != "fifty|ten" {
			return fail(mod, "traps", fmt.Sprintf("matches=%q, want [fifty ten]", texts), start)
		}
		return pass(mod, "traps", start)
	}))

	results = append(results, safeRun(mod, "positions", func() testResult {
		start := time.Now()
		for m := range numwords.Extract(textHistory) {
			if textHistory[m.Start:m.End] != m.Text || m.Line < 1 || m.Column < 1 {
				return fail(mod, "positions", fmt.Sprintf("bad match %v at %d:%d", m, m.Line, m.Column), start)
			}
		}
		return pass(mod, "positions", start)
	}))

	return results
}

func testPipeline() []testResult {
	const mod = "pipeline"
	var results []testResult

	results = append(results, safeRun(mod, "extract_convert_parse", func() testResult {
		start := time.Now()
		for m := range numwords.Extract(textHistory) {
			canonical := numwords.Convert(m.Value)
			back, err := numwords.Parse(canonical)
			if err != nil || back != m.Value {
				return fail(mod, "extract_convert_parse",
					fmt.Sprintf("%q -> %q -> %d, %v", m.Text, canonical, back, err), start)
			}
		}
		return pass(mod, "extract_convert_parse", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "all_functions_8_goroutines_x100", func() testResult {
		start := time.Now()
		var panics atomic.Int64
		var wg sync.WaitGroup

		for range concWorkers {
			wg.Go(func() {
				for range concIter {
					func() {
						defer func() {
							if p := recover(); p != nil {
								panics.Add(1)
							}
						}()
						segment.Split(textHistory)
						numwords.ExtractAll(textHistory)
						_, _ = numwords.Parse("nineteen hundred and ninety nine")
						_, _, _ = numwords.ParsePrefix("a dozen eggs")
						numwords.Convert(999_999_999_999)
					}()
				}
			})
		}
		wg.Wait()

		if n := panics.Load(); n > 0 {
			return fail(mod, "all_functions_8_goroutines_x100",
				fmt.Sprintf("%d panics detected across goroutines", n), start)
		}
		return pass(mod, "all_functions_8_goroutines_x100", start)
	}))

	return results
}

// ---------- corpus helpers ----------

// goldenEntry represents one entry from a golden JSON test file.
type goldenEntry struct {
	Input string `json:"input"`
}

// loadGoldenCorpus reads all golden JSON files and returns their inputs.
func loadGoldenCorpus() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(goldenDir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no golden files found in %s", goldenDir)
	}

	var inputs []string
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		var entries []goldenEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			continue // skip non-array golden files
		}
		for _, e := range entries {
			if e.Input != "" {
				inputs = append(inputs, e.Input)
			}
		}
	}
	return inputs, nil
}

func testCorpus() []testResult {
	const mod = "corpus"
	var results []testResult

	inputs, err := loadGoldenCorpus()
	if err != nil {
		return append(results, fail(mod, "load", err.Error(), time.Now()))
	}

	results = append(results, safeRun(mod, "parse_agrees_with_extract", func() testResult {
		start := time.Now()
		for _, in := range inputs {
			v, err := numwords.Parse(in)
			if err != nil {
				continue
			}
			all := numwords.ExtractAll(in)
			if len(all) != 1 || all[0].Value != v {
				return fail(mod, "parse_agrees_with_extract",
					fmt.Sprintf("Parse(%q)=%d but Extract found %v", in, v, all), start)
			}
		}
		return pass(mod, "parse_agrees_with_extract", start)
	}))

	results = append(results, safeRun(mod, "joined_corpus_offsets", func() testResult {
		start := time.Now()
		text := strings.Join(inputs, "\n\n")
		prev := 0
		for m := range numwords.Extract(text) {
			if m.Start < prev || text[m.Start:m.End] != m.Text {
				return fail(mod, "joined_corpus_offsets", fmt.Sprintf("bad match %v after %d", m, prev), start)
			}
			prev = m.End
		}
		return pass(mod, "joined_corpus_offsets", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testSegment,
		testParse,
		testExtract,
		testPipeline,
		testConcurrent,
		testCorpus,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  numwords E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(bw, "  Go: %s  OS: %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	var totalDuration time.Duration
	totalFailed := 0
	for _, rep := range buildReports(results) {
		totalDuration += rep.duration
		totalFailed += rep.failed
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				fmt.Fprintf(bw, "         %s\n", r.detail)
			}
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		len(results), len(results)-totalFailed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	totalStart := time.Now()
	results := runAllSuites()

	failed := 0
	for _, rep := range buildReports(results) {
		failed += rep.failed
		logger.Info("suite", "module", rep.name, "passed", rep.passed, "tests", rep.tests)
	}
	for _, r := range results {
		if !r.passed {
			logger.Error("test failed", "module", r.module, "name", r.name, "detail", r.detail)
		}
	}
	logger.Info("completed", "tests", len(results), "failed", failed,
		"duration", time.Since(totalStart).Round(time.Microsecond))

	if err := writeLog(logPath, results); err != nil {
		logger.Error("cannot write log", "error", err)
		os.Exit(1)
	}
	logger.Info("log written", "path", logPath)

	if failed > 0 {
		os.Exit(1)
	}
}
