package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hydra-jsonld/internal/analyze"
	"hydra-jsonld/internal/gen"
	"hydra-jsonld/mixin"
)

func newCheckCmd(a *app) *cobra.Command {
	var mixinFile string

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Check declarations and mixins",
		Long: `Check the //jsonld: declarations of the matching packages without
generating anything.

Checks:
  - directives are well formed
  - no scope declares both term and terms
  - no scope declares a term twice
  - mixins refer to loaded structs, once each

Examples:
  hydra-gen check ./...
  hydra-gen check --mixins mixins.yaml ./store`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, mixinFile, args)
		},
	}

	cmd.Flags().StringVarP(&mixinFile, "mixins", "m", "", "mixin file to validate against the packages")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, mixinFile string, patterns []string) error {
	graph, err := analyze.NewAnalyzer(a.logger).
		WithDir(a.dir).
		IgnoreErrorsIn(gen.DefaultFilename).
		LoadPackages(patterns...)
	if err != nil {
		return err
	}

	diags := analyze.Validate(graph)

	mixins := 0

	if mixinFile != "" {
		f, err := mixin.LoadFile(mixinFile)
		if err != nil {
			return err
		}

		mixins = len(f.Mixins)
		diags.Merge(mixin.Validate(f, graph))
	}

	if err := a.report(diags); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d package(s), %d type(s), %d mixin(s), %d warning(s)\n",
		len(graph.Packages), len(graph.Types), mixins, len(diags.Warnings))

	return nil
}
