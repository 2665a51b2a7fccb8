package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/casement/pkg/quotation"
)

// templatesCommand lists the quotation templates.
func (c *CLI) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List quotation templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := c.newRunner()
			if err != nil {
				return err
			}

			names := runner.TemplateNames()
			slices.Sort(names)
			templates := make([]quotation.Template, 0, len(names))
			for _, name := range names {
				tmpl, err := runner.Template(name)
				if err != nil {
					return err
				}
				templates = append(templates, tmpl)
			}

			fmt.Fprintln(c.Out, StyleTitle.Render("Quotation templates"))
			fmt.Fprintln(c.Out, templatesTable(templates, runner.DefaultTemplate))
			return nil
		},
	}
}
