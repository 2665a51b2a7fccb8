package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/casement/pkg/pipeline"
	"github.com/matzehuels/casement/pkg/pricing"
	"github.com/matzehuels/casement/pkg/window"
)

// quoteCommand creates the quote command for generating the A4 quotation.
func (c *CLI) quoteCommand() *cobra.Command {
	var (
		flags      specFlags
		formatsStr string
		output     string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "quote [spec-file]",
		Short: "Generate a printable quotation",
		Long: `Generate a printable A4 quotation.

The quotation carries the letterhead, client and project details, the
window schematic with its dimensions, the specification table, the
computed price and the terms. PDF output requires rsvg-convert on PATH;
SVG, PNG and JSON are produced in-process.

Without -o the file is named Quotation_<client>_<number>.<format>.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = pipeline.ParseFormats(formatsStr)
			if err := pipeline.ValidateQuoteFormats(opts.Formats); err != nil {
				return err
			}
			return c.runQuote(cmd, specArg(args), &flags, opts, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), svg, png, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.Client, "client", "", "client name (default from config, else \"Valued Customer\")")
	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "quotation template (see 'casement templates')")
	cmd.Flags().Float64Var(&opts.DPI, "dpi", pipeline.DefaultDPI, "PNG resolution")
	cmd.Flags().BoolVar(&opts.SkipValidation, "no-validate", false, "render degenerate specs instead of rejecting them")
	_ = cmd.RegisterFlagCompletionFunc("template", c.completeTemplates)

	return cmd
}

func (c *CLI) runQuote(cmd *cobra.Command, input string, flags *specFlags, opts pipeline.Options, output string) error {
	specs, err := flags.resolve(cmd, input, c.Config.Specs())
	if err != nil {
		return err
	}
	return c.quote(cmd.Context(), specs, opts, output)
}

// quote runs the quotation pipeline for specs and writes the artifacts.
func (c *CLI) quote(ctx context.Context, specs window.WindowSpecs, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner()
	if err != nil {
		return err
	}
	opts.Logger = logger
	opts.Client = c.clientName(opts.Client)

	prog := newProgress(logger)
	result, err := withSpinner(ctx, c, "Rendering quotation...", func(ctx context.Context) (*pipeline.QuoteResult, error) {
		return runner.Quote(ctx, specs, opts)
	})
	if err != nil {
		return err
	}

	doc := result.Document
	base := basePath(output, strings.TrimSuffix(doc.FileName(""), "."), pipeline.ValidQuoteFormats)
	written, err := writeArtifacts(result.Artifacts, output, base)
	if err != nil {
		return err
	}
	prog.done("quotation complete", "number", doc.Number)

	printConflict(c.Err, doc.Topology)
	printSuccess(c.Out, "Quotation %s for %s: %s", doc.Number, doc.Client, pricing.FormatMoney(c.currency(runner, opts.Template), doc.Pricing.Total))
	for _, p := range written {
		printFile(c.Out, p)
	}
	return nil
}

func (c *CLI) completeTemplates(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	runner, err := c.newRunner()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return runner.TemplateNames(), cobra.ShellCompDirectiveNoFileComp
}

// currency returns the currency symbol of the named template.
func (c *CLI) currency(runner *pipeline.Runner, template string) string {
	if tmpl, err := runner.Template(template); err == nil && tmpl.Currency != "" {
		return tmpl.Currency
	}
	return pricing.DefaultCurrency
}
