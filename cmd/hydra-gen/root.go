package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hydra-jsonld/internal/diagnostic"
)

// app holds the state shared by all commands.
type app struct {
	verbose bool
	dir     string
	logger  zerolog.Logger
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "hydra-gen",
		Short: "JSON-LD descriptor generator for Go packages",
		Long: `hydra-gen turns //jsonld: directives into the static descriptor tables
used by the jsonld serializer.

Usage:
  hydra-gen gen ./store            # write store/jsonld_gen.go
  hydra-gen check ./...            # report declaration errors
  hydra-gen check --mixins mixins.yaml ./store`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", "", "directory package patterns are resolved from")

	rootCmd.AddCommand(newGenCmd(a), newCheckCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// report logs every diagnostic and returns an error when there are errors.
func (a *app) report(diags *diagnostic.Diagnostics) error {
	for _, d := range diags.All() {
		a.log(d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d declaration error(s)", len(diags.Errors))
	}

	return nil
}

func (a *app) log(d diagnostic.Diagnostic) {
	event := a.logger.Warn()
	if d.Severity == diagnostic.SeverityError {
		event = a.logger.Error()
	}

	if d.Member != "" {
		event = event.Str("member", d.Member)
	}

	event.Str("code", d.Code).Str("scope", d.Scope).Str("pos", d.Pos).Msg(d.Message)
}
