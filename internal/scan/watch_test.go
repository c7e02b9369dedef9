package scan

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

type result struct {
	report *Report
	err    error
}

func waitReport(t *testing.T, ch <-chan result) *Report {
	t.Helper()
	select {
	case res := <-ch:
		if res.err != nil {
			t.Fatalf("scan error: %v", res.err)
		}
		return res.report
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for scan report")
	}
	return nil
}

func TestWatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "ten")

	ctx, cancel := context.WithCancel(t.Context())
	reports := make(chan result, 10)
	done := make(chan error, 1)

	s := New(Options{}, nil)
	go func() {
		done <- s.Watch(ctx, root, 20*time.Millisecond, func(r *Report, err error) {
			reports <- result{r, err}
		})
	}()

	if r := waitReport(t, reports); r.Matches != 1 {
		t.Fatalf("initial scan matches = %d, want 1", r.Matches)
	}

	// A rescan may observe the new file before its contents are written, so
	// wait for the report that reflects the final state.
	writeFile(t, filepath.Join(root, "b.txt"), "a dozen and four score")
	for r := waitReport(t, reports); r.Matches != 3; r = waitReport(t, reports) {
		if r.Matches > 3 {
			t.Fatalf("rescan matches = %d, want 3", r.Matches)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchIgnoresOtherExtensions(t *testing.T) {
	s := New(Options{Extensions: []string{".txt"}}, nil)
	if s.matchesExtension("notes.md") {
		t.Error("notes.md matched .txt")
	}
	if !s.matchesExtension("NOTES.TXT") {
		t.Error("NOTES.TXT did not match .txt")
	}
}

func TestSchedule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "seven")

	ctx, cancel := context.WithCancel(t.Context())
	reports := make(chan result, 10)
	done := make(chan error, 1)

	s := New(Options{}, nil)
	go func() {
		done <- s.Schedule(ctx, "@every 1s", root, func(r *Report, err error) {
			reports <- result{r, err}
		})
	}()

	if r := waitReport(t, reports); r.Matches != 1 {
		t.Errorf("scheduled scan matches = %d, want 1", r.Matches)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Schedule() returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Schedule did not stop after cancel")
	}
}

func TestScheduleInvalid(t *testing.T) {
	s := New(Options{}, nil)
	err := s.Schedule(t.Context(), "every so often", t.TempDir(), func(*Report, error) {})
	if err == nil {
		t.Error("Schedule() accepted an invalid expression")
	}
}
