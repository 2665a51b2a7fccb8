package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/casement/pkg/pipeline"
)

// modelCommand creates the model command for deriving the 3D model.
func (c *CLI) modelCommand() *cobra.Command {
	var (
		flags      specFlags
		formatsStr string
		output     string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "model [spec-file]",
		Short: "Derive the 3D model of a window",
		Long: `Derive the 3D model of a window.

The model is a list of axis-aligned boxes (frame, panels, divider, grill
bars, mesh) with material hints. It can be written as JSON for a 3D
engine, as Wavefront OBJ with an MTL material library, as an isometric
PNG snapshot, or as a standalone three.js viewer page.

The window spec is read from an optional JSON or TOML file and the spec flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = pipeline.ParseFormats(formatsStr)
			if err := pipeline.ValidateModelFormats(opts.Formats); err != nil {
				return err
			}
			return c.runModel(cmd, specArg(args), &flags, opts, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), obj, png, html (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().IntVar(&opts.ImageSize, "size", pipeline.DefaultImageSize, "PNG snapshot size in pixels")
	cmd.Flags().BoolVar(&opts.SkipValidation, "no-validate", false, "render degenerate specs instead of rejecting them")

	return cmd
}

func (c *CLI) runModel(cmd *cobra.Command, input string, flags *specFlags, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	specs, err := flags.resolve(cmd, input, c.Config.Specs())
	if err != nil {
		return err
	}
	runner, err := c.newRunner()
	if err != nil {
		return err
	}
	opts.Logger = logger

	prog := newProgress(logger)
	result, err := withSpinner(ctx, c, "Deriving model...", func(ctx context.Context) (*pipeline.ModelResult, error) {
		return runner.Model(ctx, specs, opts)
	})
	if err != nil {
		return err
	}

	base := basePath(output, defaultBase(input, "window"), pipeline.ValidModelFormats)
	written, err := writeArtifacts(result.Artifacts, output, base)
	if err != nil {
		return err
	}
	prog.done("model complete", "solids", result.Stats.Solids, "cached", result.CacheHit)

	printConflict(c.Err, result.Topology)
	printSuccess(c.Out, "Model: %s, %d solids", result.Topology.Model, result.Stats.Solids)
	for _, p := range written {
		printFile(c.Out, p)
	}
	return nil
}

// defaultBase derives an output base from the input file, or fallback.
func defaultBase(input, fallback string) string {
	if input == "" {
		return fallback
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// withSpinner runs fn while a spinner is shown on c.Err.
func withSpinner[T any](ctx context.Context, c *CLI, message string, fn func(context.Context) (T, error)) (T, error) {
	spinner := newSpinner(ctx, c.Err, message)
	spinner.Start()
	result, err := fn(ctx)
	if err != nil {
		spinner.StopWithError(strings.TrimSuffix(message, "...") + " failed")
		return result, err
	}
	spinner.Stop()
	return result, nil
}
