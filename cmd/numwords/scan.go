package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/internal/scan"
	"github.com/az-ai-labs/numwords/internal/store"
)

type scanFlags struct {
	watch       bool
	schedule    string
	index       string
	metricsFile string
	workers     int
	quiet       bool
}

func newScanCmd(a *app) *cobra.Command {
	f := &scanFlags{}
	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Extract number phrases from every file in a directory",
		Long: `Scan walks a directory and extracts number phrases from every file with
a configured extension. With --watch it rescans after changes; with
--schedule it rescans on a cron expression. Results can be stored in a
SQLite index for later queries and metrics can be written in the
Prometheus textfile format.`,
		Example: `  numwords scan ./corpus
  numwords scan ./corpus --watch --index index.db
  numwords scan ./corpus --schedule "0 * * * *" --metrics-file /var/lib/node_exporter/numwords.prom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runScan(ctx, cmd, f, args[0])
		},
	}

	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "rescan when files change")
	cmd.Flags().StringVar(&f.schedule, "schedule", "", "rescan on a cron expression (overrides scan.schedule)")
	cmd.Flags().StringVar(&f.index, "index", "", "SQLite index path (overrides scan.index)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Prometheus textfile path (overrides scan.metrics_file)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent files (overrides scan.workers)")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "print only the run summary")
	return cmd
}

func (a *app) runScan(ctx context.Context, cmd *cobra.Command, f *scanFlags, root string) error {
	sc := a.cfg.Scan
	if f.schedule != "" {
		sc.Schedule = f.schedule
	}
	if f.index != "" {
		sc.Index = f.index
	}
	if f.metricsFile != "" {
		sc.MetricsFile = f.metricsFile
	}
	if f.workers > 0 {
		sc.Workers = f.workers
	}
	if f.watch && sc.Schedule != "" {
		return errors.New("--watch and a schedule cannot be combined")
	}

	scanner := scan.New(scan.Options{
		Workers:      sc.Workers,
		Extensions:   sc.Extensions,
		MaxFileBytes: sc.MaxFileBytes,
	}, a.logger)

	var idx store.Store
	if sc.Index != "" {
		s, err := store.NewSQLiteStore(store.SQLiteConfig{Path: sc.Index})
		if err != nil {
			return err
		}
		defer s.Close()
		idx = s
	}

	handle := func(r *scan.Report) error {
		if err := a.printReport(cmd.OutOrStdout(), r, f.quiet); err != nil {
			return err
		}
		if idx != nil {
			if err := idx.SaveReport(ctx, r); err != nil {
				return fmt.Errorf("indexing run %s: %w", r.RunID, err)
			}
		}
		if sc.MetricsFile != "" {
			return scanner.Metrics().WriteTextfile(sc.MetricsFile)
		}
		return nil
	}
	repeat := func(r *scan.Report, err error) {
		if err == nil {
			err = handle(r)
		}
		if err != nil {
			a.logger.Error("scan failed", "root", root, "error", err)
		}
	}

	switch {
	case f.watch:
		return scanner.Watch(ctx, root, sc.Debounce, repeat)
	case sc.Schedule != "":
		return scanner.Schedule(ctx, sc.Schedule, root, repeat)
	default:
		r, err := scanner.Run(ctx, root)
		if err != nil {
			return err
		}
		return handle(r)
	}
}

func (a *app) printReport(w io.Writer, r *scan.Report, quiet bool) error {
	if a.jsonOutput() {
		return writeJSON(w, r)
	}
	if !quiet {
		for _, fr := range r.Files {
			if fr.Skipped != "" {
				if err := writeLine(w, "%s: skipped (%s)", fr.Path, fr.Skipped); err != nil {
					return err
				}
				continue
			}
			for _, m := range fr.Matches {
				if err := writeLine(w, "%s:%d:%d\t%d\t%s", fr.Path, m.Line, m.Column, m.Value, m.Text); err != nil {
					return err
				}
			}
		}
	}
	return writeLine(w, "run %s: %d files, %d matches, %d bytes, %d skipped in %s",
		r.RunID, len(r.Files), r.Matches, r.Bytes, r.Skipped, r.Duration.Round(time.Millisecond))
}
