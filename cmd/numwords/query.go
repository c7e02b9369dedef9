package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/internal/store"
)

type queryFlags struct {
	index string
	run   string
	file  string
	min   int64
	max   int64
	limit int
	count bool
}

func newQueryCmd(a *app) *cobra.Command {
	f := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "List matches stored in a scan index",
		Example: `  numwords query --index index.db --min 1000
  numwords query --index index.db --file corpus/a.txt --count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := f.index
			if path == "" {
				path = a.cfg.Scan.Index
			}
			if path == "" {
				return errors.New("no index: set --index or scan.index")
			}

			q := store.Query{RunID: f.run, Path: f.file, Limit: f.limit}
			if cmd.Flags().Changed("min") {
				q.Min = &f.min
			}
			if cmd.Flags().Changed("max") {
				q.Max = &f.max
			}

			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("opening index: %w", err)
			}
			s, err := store.NewSQLiteStore(store.SQLiteConfig{Path: path})
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			if f.count {
				n, err := s.Count(cmd.Context(), q)
				if err != nil {
					return err
				}
				if a.jsonOutput() {
					return writeJSON(out, map[string]int64{"count": n})
				}
				return writeLine(out, "%d", n)
			}

			records, err := s.Query(cmd.Context(), q)
			if err != nil {
				return err
			}
			for _, r := range records {
				if a.jsonOutput() {
					err = writeJSON(out, r)
				} else {
					err = writeLine(out, "%s:%d:%d\t%d\t%s", r.Path, r.Line, r.Column, r.Value, r.Text)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.index, "index", "", "SQLite index path (default scan.index)")
	cmd.Flags().StringVar(&f.run, "run", "", "only matches from this run ID")
	cmd.Flags().StringVar(&f.file, "file", "", "only matches from this file path")
	cmd.Flags().Int64Var(&f.min, "min", 0, "minimum value (inclusive)")
	cmd.Flags().Int64Var(&f.max, "max", 0, "maximum value (inclusive)")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of matches (0 for all)")
	cmd.Flags().BoolVar(&f.count, "count", false, "print only the number of matches")
	return cmd
}
