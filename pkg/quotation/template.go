package quotation

import (
	"slices"
	"strings"

	"github.com/matzehuels/casement/pkg/draw"
	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/pricing"
)

// Company is the letterhead printed at the top of every quotation.
type Company struct {
	Name    string   `json:"name" toml:"name"`
	Address []string `json:"address" toml:"address"`
	Contact []string `json:"contact" toml:"contact"`
}

// Template parameterizes the quotation layout. The page geometry is the
// same for every template; only letterhead, wording and colors vary.
type Template struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Company      Company    `json:"company"`
	Terms        []string   `json:"terms"`
	Accent       draw.Color `json:"accent"`
	LogoBox      bool       `json:"logoBox"`
	LogoFill     draw.Color `json:"logoFill"`
	Currency     string     `json:"currency"`
	NumberPrefix string     `json:"numberPrefix"`
	DateLayout   string     `json:"dateLayout"`
}

// Built-in template names.
const (
	TemplateClassic = "classic"
	TemplateCompact = "compact"
	TemplateMono    = "mono"
)

// DefaultTemplate is used when no template is named.
const DefaultTemplate = TemplateClassic

// Defaults shared by the built-in templates.
const (
	DefaultNumberPrefix = "QE/TK/"
	DefaultDateLayout   = "02/01/2006"
)

// DefaultCompany returns the stock letterhead.
func DefaultCompany() Company {
	return Company{
		Name: "TEKNA WINDOW SYSTEM",
		Address: []string{
			"VAVDI INDUSTRY AREA",
			"VAVDI MAIN ROAD",
			"TEKNA WINDOW",
		},
		Contact: []string{
			"Mobile : 9825256525",
			"Email : TEKNAWIN01@GMAIL.COM",
			"GSTIN : 24AMIPS5762R1Z4",
		},
	}
}

// DefaultTerms returns the stock terms and conditions.
func DefaultTerms() []string {
	return []string{
		"1. Quotation valid for 1 week.",
		"2. Transportation and GST extra.",
		"3. Installation time: 40–45 days.",
		"4. 70% advance, 20% before dispatch, 10% after installation.",
		"5. Glass breakage not covered after installation.",
	}
}

var builtins = map[string]func() Template{
	TemplateClassic: Classic,
	TemplateCompact: Compact,
	TemplateMono:    Mono,
}

// Classic has orange separators and a tinted logo box.
func Classic() Template {
	return Template{
		Name:         TemplateClassic,
		Description:  "orange separators and logo box",
		Company:      DefaultCompany(),
		Terms:        DefaultTerms(),
		Accent:       draw.Color{R: 220, G: 120},
		LogoBox:      true,
		LogoFill:     draw.Color{R: 230, G: 240, B: 230},
		Currency:     pricing.DefaultCurrency,
		NumberPrefix: DefaultNumberPrefix,
		DateLayout:   DefaultDateLayout,
	}
}

// Compact drops the logo box and uses grey separators.
func Compact() Template {
	t := Classic()
	t.Name = TemplateCompact
	t.Description = "grey separators, no logo box"
	t.Accent = draw.Grey
	t.LogoBox = false
	return t
}

// Mono prints black on white only, for fax and photocopies.
func Mono() Template {
	t := Classic()
	t.Name = TemplateMono
	t.Description = "black and white for fax and photocopy"
	t.Accent = draw.Black
	t.LogoFill = draw.White
	t.Currency = "Rs."
	return t
}

// Lookup returns the built-in template with the given name. Names are
// case-insensitive and the empty name selects [DefaultTemplate].
func Lookup(name string) (Template, error) {
	if name == "" {
		name = DefaultTemplate
	}
	f, ok := builtins[strings.ToLower(name)]
	if !ok {
		return Template{}, errors.New(errors.ErrCodeInvalidTemplate,
			"unknown template %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f(), nil
}

// Names lists the built-in templates alphabetically.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Templates returns every built-in template, ordered by name.
func Templates() []Template {
	out := make([]Template, 0, len(builtins))
	for _, n := range Names() {
		out = append(out, builtins[n]())
	}
	return out
}

// withDefaults fills empty fields from the classic template so partially
// configured templates still render.
func (t Template) withDefaults() Template {
	c := Classic()
	if t.Company.Name == "" {
		t.Company.Name = c.Company.Name
	}
	if len(t.Terms) == 0 {
		t.Terms = c.Terms
	}
	if t.Currency == "" {
		t.Currency = c.Currency
	}
	if t.NumberPrefix == "" {
		t.NumberPrefix = c.NumberPrefix
	}
	if t.DateLayout == "" {
		t.DateLayout = c.DateLayout
	}
	return t
}
