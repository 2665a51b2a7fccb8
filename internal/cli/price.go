package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/casement/pkg/pipeline"
)

// priceCommand creates the price command for quick pricing.
func (c *CLI) priceCommand() *cobra.Command {
	var (
		flags    specFlags
		asJSON   bool
		template string
	)

	cmd := &cobra.Command{
		Use:   "price [spec-file]",
		Short: "Print the pricing breakdown of a window",
		Long: `Print the pricing breakdown of a window.

Area per window is height x width / 144 square feet; the value is area x
rate x quantity. Amounts are printed with two decimals.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := flags.resolve(cmd, specArg(args), c.Config.Specs())
			if err != nil {
				return err
			}
			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			b, err := runner.Price(specs, pipeline.Options{})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(b)
			}
			fmt.Fprintln(c.Out, priceTable(specs, b, c.currency(runner, template)))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the breakdown as JSON")
	cmd.Flags().StringVarP(&template, "template", "t", "", "template whose currency is used")
	_ = cmd.RegisterFlagCompletionFunc("template", c.completeTemplates)

	return cmd
}
