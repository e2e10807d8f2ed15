package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hydra-jsonld/internal/analyze"
	"hydra-jsonld/internal/gen"
)

type genOptions struct {
	outDir   string
	filename string
	stdout   bool
}

func newGenCmd(a *app) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate descriptor tables",
		Long: `Generate a descriptor file for every package matching the patterns.

The file is written next to the package sources unless --out is given.
Packages with declaration errors are not generated.

Examples:
  hydra-gen gen .
  hydra-gen gen --stdout hydra-jsonld/examples/store`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGen(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "write all files to this directory")
	cmd.Flags().StringVar(&opts.filename, "filename", gen.DefaultFilename, "name of the generated file")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print generated code instead of writing files")

	return cmd
}

func (a *app) runGen(cmd *cobra.Command, opts *genOptions, patterns []string) error {
	graph, err := analyze.NewAnalyzer(a.logger).
		WithDir(a.dir).
		IgnoreErrorsIn(opts.filename).
		LoadPackages(patterns...)
	if err != nil {
		return err
	}

	if err := a.report(analyze.Validate(graph)); err != nil {
		return err
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.Filename = opts.filename

	seen := len(graph.Diagnostics.Warnings)

	files, err := gen.NewGenerator(cfg).Generate(graph)
	if err != nil {
		return err
	}

	// warnings added while generating
	for _, d := range graph.Diagnostics.Warnings[seen:] {
		a.log(d)
	}

	if opts.stdout {
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s/%s\n%s\n", f.PkgPath, f.Filename, f.Content)
		}

		return nil
	}

	written, err := gen.WriteFiles(files, opts.outDir)
	for _, path := range written {
		a.logger.Info().Str("file", path).Msg("generated")
	}

	if err != nil {
		return err
	}

	if len(files) == 0 {
		a.logger.Warn().Strs("patterns", patterns).Msg("nothing to generate")
	}

	return nil
}
