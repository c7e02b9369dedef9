package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/numwords/internal/config"
	"github.com/az-ai-labs/numwords/internal/logging"
)

// app carries state shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	cfgFile  string
	logLevel string
	output   string

	cfg    *config.Config
	logger *slog.Logger
}

// errSilent marks a failure whose message has already been printed.
var errSilent = errors.New("silent failure")

// Execute runs the command line and returns the process exit code.
func Execute(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "numwords",
		Short: "Parse and extract English number phrases",
		Long: `numwords converts English cardinal number phrases such as
"nineteen hundred and ninety nine" or "four score and seven" to integers,
finds them in running text, and renders integers back into words.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.SetVersionTemplate("numwords {{.Version}}\n")

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format (text, json)")

	root.AddCommand(
		newParseCmd(a),
		newPrefixCmd(a),
		newExtractCmd(a),
		newConvertCmd(a),
		newScanCmd(a),
		newQueryCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration, applies flag overrides, and builds the logger.
// Flags take precedence over the environment, which takes precedence over
// the file.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.output != "" {
		cfg.Output.Format = a.output
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: logOut,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output.Format == "json"
}

// fileOrStdin opens path for reading, or returns stdin for "-" or "".
func fileOrStdin(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}
