// Package scan runs number-phrase extraction over a directory tree.
//
// A Scanner walks a root directory, extracts every number phrase from each
// file with a matching extension using a bounded worker pool, and returns a
// Report. Runs are identified by a random UUID that is attached to every log
// record and stored alongside indexed results. Watch and Schedule repeat the
// scan on file changes or on a cron schedule.
package scan

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/az-ai-labs/numwords/internal/segment"
	"github.com/az-ai-labs/numwords/numwords"
)

const (
	defaultWorkers      = 4
	defaultMaxFileBytes = int64(64 << 20)
)

// Options configures a Scanner.
type Options struct {
	// Workers is the number of files processed concurrently.
	Workers int

	// Extensions lists the file suffixes to scan. Matching is
	// case-insensitive. Empty means ".txt".
	Extensions []string

	// MaxFileBytes skips larger files.
	MaxFileBytes int64
}

// FileReport is the result for a single file.
type FileReport struct {
	Path    string           `json:"path"`
	Bytes   int64            `json:"bytes"`
	Words   int              `json:"words"`
	Matches []numwords.Match `json:"matches,omitempty"`
	Skipped string           `json:"skipped,omitempty"` // reason the file was not scanned
}

// Report is the result of one scan run.
type Report struct {
	RunID      string        `json:"run_id"`
	Root       string        `json:"root"`
	Started    time.Time     `json:"started"`
	Duration   time.Duration `json:"duration"`
	Files      []FileReport  `json:"files"`
	Matches    int           `json:"matches"`
	Bytes      int64         `json:"bytes"`
	Skipped    int           `json:"skipped"`
	ReconFails int           `json:"recon_fails"`
}

// Scanner extracts number phrases from files. It is safe for concurrent use.
type Scanner struct {
	opts    Options
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a Scanner. A nil logger discards records.
func New(opts Options, logger *slog.Logger) *Scanner {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt"}
	}
	if opts.MaxFileBytes <= 0 {
		opts.MaxFileBytes = defaultMaxFileBytes
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{
		opts:    opts,
		logger:  logger.With("component", "scan"),
		metrics: NewMetrics(),
	}
}

// Metrics returns the scanner's metrics.
func (s *Scanner) Metrics() *Metrics {
	return s.metrics
}

// Run scans every matching file under root once. Cancelling ctx stops the
// run before the next file is started and returns ctx.Err().
func (s *Scanner) Run(ctx context.Context, root string) (*Report, error) {
	runID := uuid.NewString()
	log := s.logger.With("run_id", runID)

	paths, err := s.collect(root)
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	log.Info("scan started", "root", root, "files", len(paths), "workers", s.opts.Workers)

	report := &Report{
		RunID:   runID,
		Root:    root,
		Started: time.Now(),
		Files:   make([]FileReport, 0, len(paths)),
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		semaphore = make(chan struct{}, s.opts.Workers)
	)

	for _, path := range paths {
		select {
		case <-ctx.Done():
		case semaphore <- struct{}{}:
		}
		if ctx.Err() != nil {
			break
		}
		wg.Go(func() {
			defer func() { <-semaphore }()
			fr, recon := s.processFile(log, path)

			mu.Lock()
			defer mu.Unlock()
			report.Files = append(report.Files, fr)
			if !recon {
				report.ReconFails++
			}
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		log.Warn("scan cancelled", "completed", len(report.Files), "total", len(paths))
		return nil, err
	}

	slices.SortFunc(report.Files, func(a, b FileReport) int {
		return cmp.Compare(a.Path, b.Path)
	})
	for _, fr := range report.Files {
		report.Matches += len(fr.Matches)
		report.Bytes += fr.Bytes
		if fr.Skipped != "" {
			report.Skipped++
		}
	}
	report.Duration = time.Since(report.Started)
	s.metrics.observeRun(report)

	log.Info("scan completed",
		"files", len(report.Files),
		"matches", report.Matches,
		"bytes", report.Bytes,
		"skipped", report.Skipped,
		"duration", report.Duration.Round(time.Millisecond),
	)
	return report, nil
}

// collect returns the sorted paths of files under root with a matching
// extension. Hidden directories are not descended into.
func (s *Scanner) collect(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if s.matchesExtension(path) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func (s *Scanner) matchesExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range s.opts.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// processFile extracts matches from one file. The second result reports
// whether the file's segments reassemble into the original text.
func (s *Scanner) processFile(log *slog.Logger, path string) (FileReport, bool) {
	fr := FileReport{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		log.Warn("stat failed", "path", path, "error", err)
		fr.Skipped = "unreadable"
		return fr, true
	}
	fr.Bytes = info.Size()
	if fr.Bytes > s.opts.MaxFileBytes {
		log.Warn("file too large, skipping", "path", path, "bytes", fr.Bytes, "limit", s.opts.MaxFileBytes)
		fr.Skipped = "too large"
		return fr, true
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		log.Warn("read failed", "path", path, "error", err)
		fr.Skipped = "unreadable"
		return fr, true
	}
	fr.Bytes = int64(len(data))
	text := string(data)

	start := time.Now()
	var sb strings.Builder
	sb.Grow(len(text))
	for seg := range segment.All(text) {
		if seg.Type == segment.Word {
			fr.Words++
		}
		sb.WriteString(seg.Text)
	}
	recon := sb.String() == text
	if !recon {
		pos, got, want := firstDivergence(text, sb.String())
		log.Error("segment reconstruction failed",
			"path", path, "offset", pos, "got", fmt.Sprintf("0x%02x", got), "want", fmt.Sprintf("0x%02x", want))
	}

	fr.Matches = numwords.ExtractAll(text)
	log.Debug("file scanned",
		"path", path,
		"matches", len(fr.Matches),
		"duration", time.Since(start).Round(time.Microsecond),
	)
	return fr, recon
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}
