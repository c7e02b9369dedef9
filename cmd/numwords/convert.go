package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/numwords"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <n>",
		Short:   "Render an integer as an English phrase",
		Example: `  numwords convert 1999`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer %q", args[0])
			}
			s := numwords.Convert(n)
			if s == "" {
				return fmt.Errorf("%d is outside 0 to 999,999,999,999", n)
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"value": n, "text": s})
			}
			return writeLine(cmd.OutOrStdout(), "%s", s)
		},
	}
}
