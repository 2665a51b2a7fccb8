package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/casement/pkg/pricing"
	"github.com/matzehuels/casement/pkg/quotation"
	"github.com/matzehuels/casement/pkg/window"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented secondary line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printConflict warns when the slider signals disagree, since the model
// and the schematic will then show different topologies.
func printConflict(w io.Writer, res window.Resolution) {
	if !res.Conflicting() {
		return
	}
	printWarning(w, "slider signals disagree: 3D model is %s, schematic is %s", res.Model, res.Schematic)
}

// =============================================================================
// Tables
// =============================================================================

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == 1 {
				return base.Foreground(colorWhite)
			}
			return base.Foreground(colorGray)
		})
}

// priceTable renders the pricing breakdown for s.
func priceTable(s window.WindowSpecs, b pricing.Breakdown, currency string) string {
	t := newTable().
		Headers("Item", "Value").
		Rows(
			[]string{"Size (Inch)", "W x " + strconv.FormatFloat(s.Width, 'f', -1, 64) + "   H x " + strconv.FormatFloat(s.Height, 'f', -1, 64)},
			[]string{"Sq.ft per Window", pricing.FormatArea(b.AreaSqFt)},
			[]string{"Rate per Sq.ft", pricing.FormatMoney(currency, b.Rate)},
			[]string{"Quantity", strconv.Itoa(b.Quantity) + " pcs"},
			[]string{"Total Area", pricing.FormatArea(b.TotalArea())},
			[]string{"Value", pricing.FormatMoney(currency, b.Total)},
		)
	return t.Render()
}

// templatesTable renders the template list, marking the default.
func templatesTable(templates []quotation.Template, defaultName string) string {
	rows := make([][]string, 0, len(templates))
	for _, tmpl := range templates {
		mark := ""
		if tmpl.Name == defaultName {
			mark = "default"
		}
		rows = append(rows, []string{tmpl.Name, tmpl.Description, tmpl.Currency, mark})
	}
	return newTable().
		Headers("Template", "Description", "Currency", "").
		Rows(rows...).
		Render()
}
