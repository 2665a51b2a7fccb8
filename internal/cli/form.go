package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/casement/pkg/io"
	"github.com/matzehuels/casement/pkg/pipeline"
	"github.com/matzehuels/casement/pkg/pricing"
	"github.com/matzehuels/casement/pkg/window"
)

// formCommand creates the form command: an interactive spec editor that
// generates a quotation on submit.
func (c *CLI) formCommand() *cobra.Command {
	var (
		flags      specFlags
		formatsStr string
		output     string
		save       string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "form [spec-file]",
		Short: "Edit a window spec interactively and quote it",
		Long: `Edit a window spec interactively and quote it.

The form starts from the window spec file and flags. Catalogue fields cycle with
←/→, toggles flip with space, and text fields take typed input. The price
updates as you type. Enter validates and generates the quotation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = pipeline.ParseFormats(formatsStr)
			if err := pipeline.ValidateQuoteFormats(opts.Formats); err != nil {
				return err
			}
			specs, err := flags.resolve(cmd, specArg(args), c.Config.Specs())
			if err != nil {
				return err
			}
			runner, err := c.newRunner()
			if err != nil {
				return err
			}

			model := newFormModel(specs, c.currency(runner, opts.Template))
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("form: %w", err)
			}
			result := final.(FormModel)
			if !result.Submitted {
				printWarning(c.Err, "form cancelled")
				return nil
			}

			if save != "" {
				if err := io.ExportSpecs(result.Specs, save); err != nil {
					return err
				}
				printFile(c.Out, save)
			}
			return c.quote(cmd.Context(), result.Specs, opts, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), svg, png, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.Client, "client", "", "client name")
	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "quotation template")
	cmd.Flags().StringVar(&save, "save", "", "also write the edited spec to this .json or .toml file")
	_ = cmd.RegisterFlagCompletionFunc("template", c.completeTemplates)

	return cmd
}

// =============================================================================
// FormModel - Interactive spec editor
// =============================================================================

type fieldKind int

const (
	kindNumber fieldKind = iota
	kindText
	kindChoice
	kindToggle
)

type formField struct {
	label   string
	kind    fieldKind
	choices []string
	value   string
	apply   func(*window.WindowSpecs, string) error
}

// FormModel is the bubbletea model for the spec editor.
type FormModel struct {
	Specs     window.WindowSpecs
	Submitted bool
	Cancelled bool

	fields   []formField
	cursor   int
	currency string
	err      error
}

var (
	formLabelStyle    = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	formSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formValueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	formErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

func newFormModel(s window.WindowSpecs, currency string) FormModel {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	yes := func(v bool) string {
		if v {
			return "YES"
		}
		return "NO"
	}
	types := make([]string, len(window.WindowTypes))
	for i, t := range window.WindowTypes {
		types[i] = string(t)
	}

	return FormModel{
		Specs:    s,
		currency: currency,
		fields: []formField{
			{label: "Height (in)", kind: kindNumber, value: num(s.Height), apply: floatField("height", func(s *window.WindowSpecs, v float64) { s.Height = v })},
			{label: "Width (in)", kind: kindNumber, value: num(s.Width), apply: floatField("width", func(s *window.WindowSpecs, v float64) { s.Width = v })},
			{label: "Profile", kind: kindChoice, choices: window.Profiles, value: s.ProfileSystem, apply: textField(func(s *window.WindowSpecs, v string) { s.ProfileSystem = v })},
			{label: "Window type", kind: kindChoice, choices: types, value: string(s.WindowType), apply: textField(func(s *window.WindowSpecs, v string) { s.WindowType = window.WindowType(v) })},
			{label: "Design", kind: kindChoice, choices: window.Designs, value: s.Design, apply: textField(func(s *window.WindowSpecs, v string) { s.Design = v })},
			{label: "Glass", kind: kindText, value: s.GlassType, apply: textField(func(s *window.WindowSpecs, v string) { s.GlassType = v })},
			{label: "Locking", kind: kindChoice, choices: window.LockingTypes, value: s.LockingType, apply: textField(func(s *window.WindowSpecs, v string) { s.LockingType = v })},
			{label: "Mesh", kind: kindToggle, value: yes(s.Mesh), apply: toggleField(func(s *window.WindowSpecs, v bool) { s.Mesh = v })},
			{label: "Grill", kind: kindToggle, value: yes(s.Grill), apply: toggleField(func(s *window.WindowSpecs, v bool) { s.Grill = v })},
			{label: "Quantity", kind: kindNumber, value: strconv.Itoa(s.Quantity), apply: intField("quantity", func(s *window.WindowSpecs, v int) { s.Quantity = v })},
			{label: "Rate / Sq.ft", kind: kindNumber, value: num(s.Rate), apply: floatField("rate", func(s *window.WindowSpecs, v float64) { s.Rate = v })},
			{label: "Project", kind: kindText, value: s.Project, apply: textField(func(s *window.WindowSpecs, v string) { s.Project = v })},
			{label: "Finish", kind: kindText, value: s.Finish, apply: textField(func(s *window.WindowSpecs, v string) { s.Finish = v })},
			{label: "Location", kind: kindText, value: s.Location, apply: textField(func(s *window.WindowSpecs, v string) { s.Location = v })},
			{label: "Code", kind: kindText, value: s.Code, apply: textField(func(s *window.WindowSpecs, v string) { s.Code = v })},
			{label: "Hardware", kind: kindText, value: s.HardwareBrand, apply: textField(func(s *window.WindowSpecs, v string) { s.HardwareBrand = v })},
		},
	}
}

func floatField(name string, set func(*window.WindowSpecs, float64)) func(*window.WindowSpecs, string) error {
	return func(s *window.WindowSpecs, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", name, v)
		}
		set(s, f)
		return nil
	}
}

func intField(name string, set func(*window.WindowSpecs, int)) func(*window.WindowSpecs, string) error {
	return func(s *window.WindowSpecs, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %q is not a whole number", name, v)
		}
		set(s, n)
		return nil
	}
}

func textField(set func(*window.WindowSpecs, string)) func(*window.WindowSpecs, string) error {
	return func(s *window.WindowSpecs, v string) error {
		set(s, v)
		return nil
	}
}

func toggleField(set func(*window.WindowSpecs, bool)) func(*window.WindowSpecs, string) error {
	return func(s *window.WindowSpecs, v string) error {
		set(s, v == "YES")
		return nil
	}
}

// collect applies every field to a copy of the starting spec.
func (m FormModel) collect() (window.WindowSpecs, error) {
	s := m.Specs
	for _, f := range m.fields {
		if err := f.apply(&s, f.value); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (m FormModel) Init() tea.Cmd {
	return nil
}

func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Copy the slice so earlier models stay unchanged.
	m.fields = append([]formField(nil), m.fields...)
	f := &m.fields[m.cursor]

	switch key.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "up", "shift+tab":
		m.cursor = (m.cursor - 1 + len(m.fields)) % len(m.fields)
	case "down", "tab":
		m.cursor = (m.cursor + 1) % len(m.fields)
	case "left":
		cycle(f, window.Prev)
	case "right":
		cycle(f, window.Next)
	case " ":
		if f.kind == kindText {
			f.value += " "
		} else {
			cycle(f, window.Next)
		}
	case "backspace":
		if f.kind == kindNumber || f.kind == kindText {
			r := []rune(f.value)
			if len(r) > 0 {
				f.value = string(r[:len(r)-1])
			}
		}
	case "enter":
		s, err := m.collect()
		if err == nil {
			err = s.Validate()
		}
		if err != nil {
			m.err = err
			return m, nil
		}
		m.Specs = s
		m.Submitted = true
		return m, tea.Quit
	default:
		if key.Type == tea.KeyRunes && (f.kind == kindNumber || f.kind == kindText) {
			f.value += string(key.Runes)
		}
	}
	m.err = nil
	return m, nil
}

func cycle(f *formField, step func([]string, string) string) {
	switch f.kind {
	case kindChoice:
		f.value = step(f.choices, f.value)
	case kindToggle:
		if f.value == "YES" {
			f.value = "NO"
		} else {
			f.value = "YES"
		}
	}
}

func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Window Specification"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ field  ←/→ choose  space toggle  ⏎ quote  esc quit"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := "  "
		value := formValueStyle.Render(f.value)
		if i == m.cursor {
			cursor = "▸ "
			value = formSelectedStyle.Render(f.value)
			if f.kind == kindNumber || f.kind == kindText {
				value += formSelectedStyle.Render("_")
			}
		}
		b.WriteString(cursor + formLabelStyle.Render(f.label) + " " + value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.preview())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(formErrorStyle.Render(iconError + " " + m.err.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

// preview prices the current form values.
func (m FormModel) preview() string {
	s, err := m.collect()
	if err == nil {
		err = s.Validate()
	}
	if err != nil {
		return StyleDim.Render("price: -")
	}
	p := pricing.Price(s)
	return fmt.Sprintf("%s %s x %d pcs = %s",
		StyleDim.Render("price:"),
		StyleNumber.Render(pricing.FormatArea(p.AreaSqFt)),
		p.Quantity,
		StyleNumber.Render(pricing.FormatMoney(m.currency, p.Total)))
}
