package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/numwords"
)

type parseResult struct {
	Input    string   `json:"input"`
	Value    *int64   `json:"value,omitempty"`
	Consumed *int     `json:"consumed,omitempty"`
	Text     string   `json:"text,omitempty"`
	Error    string   `json:"error,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	Offset   *int     `json:"offset,omitempty"`
	Expected []string `json:"expected,omitempty"`
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <phrase...>",
		Short: "Parse a complete number phrase",
		Long: `Parse converts a complete English number phrase to an integer. The
arguments are joined with single spaces. Any input left over after the
phrase is an error.`,
		Example: `  numwords parse nineteen hundred and ninety nine
  numwords parse "a dozen"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			v, err := numwords.Parse(input)
			res := parseResult{Input: input}
			if err == nil {
				res.Value = &v
			}
			return a.report(cmd, res, err, func() error {
				return writeLine(cmd.OutOrStdout(), "%d", v)
			})
		},
	}
}

func newPrefixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix <text...>",
		Short: "Parse the number phrase at the start of some text",
		Long: `Prefix parses the longest number phrase at the start of the text and
prints its value and the text it consumed.`,
		Example: `  numwords prefix ten years later`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			v, n, err := numwords.ParsePrefix(input)
			res := parseResult{Input: input}
			if err == nil {
				res.Value, res.Consumed, res.Text = &v, &n, input[:n]
			}
			return a.report(cmd, res, err, func() error {
				return writeLine(cmd.OutOrStdout(), "%d\t%s", v, strings.TrimSpace(input[:n]))
			})
		},
	}
}

// report prints a parse outcome. On failure in JSON mode the error is part
// of the output and the command still exits non-zero.
func (a *app) report(cmd *cobra.Command, res parseResult, err error, text func() error) error {
	if err != nil {
		a.logger.Debug("parse failed", "input", res.Input, "error", err)
	}
	if !a.jsonOutput() {
		if err != nil {
			return err
		}
		return text()
	}

	if err != nil {
		res.Error = err.Error()
		var pe *numwords.ParseError
		if errors.As(err, &pe) {
			res.Kind = pe.Kind.String()
			res.Offset = &pe.Offset
			res.Expected = pe.Expected
		}
	}
	if werr := writeJSON(cmd.OutOrStdout(), res); werr != nil {
		return werr
	}
	if err != nil {
		return errSilent
	}
	return nil
}
