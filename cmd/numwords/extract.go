package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/numwords"
)

func newExtractCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file|-]",
		Short: "Find every number phrase in a file or stdin",
		Long: `Extract prints every number phrase found in the input with its line,
column, and value. With no argument or "-" it reads stdin.`,
		Example: `  numwords extract notes.txt
  echo "I have four cats and a dozen eggs" | numwords extract -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			r, err := fileOrStdin(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer r.Close()

			data, err := io.ReadAll(io.LimitReader(r, a.cfg.Scan.MaxFileBytes+1))
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			if int64(len(data)) > a.cfg.Scan.MaxFileBytes {
				return fmt.Errorf("input exceeds %d bytes", a.cfg.Scan.MaxFileBytes)
			}

			out := cmd.OutOrStdout()
			count := 0
			for m := range numwords.Extract(string(data)) {
				count++
				if a.jsonOutput() {
					err = writeJSON(out, m)
				} else {
					err = writeLine(out, "%d:%d\t%d\t%s", m.Line, m.Column, m.Value, m.Text)
				}
				if err != nil {
					return err
				}
			}
			a.logger.Debug("extract finished", "bytes", len(data), "matches", count)
			return nil
		},
	}
}
