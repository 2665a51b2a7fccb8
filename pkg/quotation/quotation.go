// Package quotation lays out the printable quotation for one window.
//
// [Build] places letterhead, client metadata, the schematic from
// [diagram.Schematic], the specification rows and the priced totals from
// [pricing.Price] on a single A4 portrait [draw.Page] measured in
// millimetres. A [Template] supplies the letterhead, terms and colors; the
// geometry of the page is fixed.
//
// Build never validates and never fails. Absent optional fields print
// fallback literals and unusable dimensions print fallback captions, so a
// wrong document is still produced rather than none at all.
//
// Every call issues a fresh quotation number and document ID. Tests pin
// both with [WithClock] and [WithIDSource].
package quotation

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/casement/pkg/diagram"
	"github.com/matzehuels/casement/pkg/draw"
	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/pricing"
	"github.com/matzehuels/casement/pkg/window"
)

// A4 portrait in millimetres.
const (
	PageWidth  = 210.0
	PageHeight = 297.0
)

// DefaultClient is printed when no client name is given.
const DefaultClient = "Valued Customer"

// Fallback literals for absent optional fields.
const (
	FallbackProject  = "OFFICE"
	FallbackFinish   = "POWDER COATING"
	FallbackLocation = "W1"
	FallbackCode     = "W1"
	FallbackHardware = "PREMIUM QUALITY"
	FallbackProfile  = "50MM CASEMENT"
	FallbackDesign   = "FIX GLASS"
	FallbackGlass    = "5MM CL +10mm air gap +5mm CL tuff"
	FallbackLocking  = "-"
)

// Caption fallbacks for non-finite dimensions.
const (
	FallbackCaptionWidth  = "48.00"
	FallbackCaptionHeight = "51.00"
)

// ImageBox is the region the schematic is drawn into.
var ImageBox = draw.Rect{X: 15, Y: 105, W: 80, H: 120}

// Row is one line of the specification table.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Document is a laid-out quotation.
type Document struct {
	ID       uuid.UUID          `json:"id"`
	Number   string             `json:"number"`
	Date     string             `json:"date"`
	IssuedAt time.Time          `json:"issuedAt"`
	Client   string             `json:"client"`
	Template string             `json:"template"`
	Specs    window.WindowSpecs `json:"specs"`
	Topology window.Resolution  `json:"topology"`
	Rows     []Row              `json:"rows"`
	Pricing  pricing.Breakdown  `json:"pricing"`
	Page     draw.Page          `json:"page"`
}

// FileName returns "Quotation_<client>_<number>.<ext>" with both parts
// made safe for a file system.
func (d Document) FileName(ext string) string {
	return "Quotation_" + errors.SanitizeFilename(d.Client) + "_" +
		errors.SanitizeFilename(d.Number) + "." + strings.TrimPrefix(ext, ".")
}

// Option configures [Build].
type Option func(*builder)

type builder struct {
	client   string
	template Template
	now      func() time.Time
	newID    func() (uuid.UUID, error)
}

// WithClient sets the client name. Blank names fall back to [DefaultClient].
func WithClient(name string) Option {
	return func(b *builder) { b.client = strings.TrimSpace(name) }
}

// WithTemplate selects the template.
func WithTemplate(t Template) Option {
	return func(b *builder) { b.template = t }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *builder) { b.now = now }
}

// WithIDSource replaces uuid.NewV7.
func WithIDSource(f func() (uuid.UUID, error)) Option {
	return func(b *builder) { b.newID = f }
}

// Build lays out the quotation for s.
func Build(s window.WindowSpecs, opts ...Option) Document {
	b := builder{template: Classic(), now: time.Now, newID: uuid.NewV7}
	for _, opt := range opts {
		opt(&b)
	}
	if b.client == "" {
		b.client = DefaultClient
	}
	tmpl := b.template.withDefaults()

	issued := b.now()
	number := Number(tmpl.NumberPrefix, issued)
	id, err := b.newID()
	if err != nil {
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(number))
	}

	d := Document{
		ID:       id,
		Number:   number,
		Date:     issued.Format(tmpl.DateLayout),
		IssuedAt: issued,
		Client:   b.client,
		Template: tmpl.Name,
		Specs:    s,
		Topology: window.ResolveTopology(s),
		Rows:     SpecRows(s),
		Pricing:  pricing.Price(s),
		Page:     draw.Page{Width: PageWidth, Height: PageHeight},
	}
	l := layout{doc: &d, tmpl: tmpl}
	l.render()
	return d
}

// Number formats a quotation number from the issue time: the prefix and
// the millisecond timestamp in upper-case base 36.
func Number(prefix string, t time.Time) string {
	return prefix + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// SpecRows returns the specification table for s, in print order.
func SpecRows(s window.WindowSpecs) []Row {
	return []Row{
		{"Size (Inch)", "W x " + diagram.FormatInches(s.Width) + "   H x " + diagram.FormatInches(s.Height)},
		{"Profile System", or(s.ProfileSystem, FallbackProfile)},
		{"Design", or(s.Design, FallbackDesign)},
		{"Glass", or(s.GlassType, FallbackGlass)},
		{"Mesh", yesOr(s.Mesh, "-")},
		{"Locking", or(s.LockingType, FallbackLocking)},
		{"Grill", yesOr(s.Grill, "REMOVE")},
	}
}

// Caption formats a dimension for the image box captions.
func Caption(v float64, fallback string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func or(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func yesOr(v bool, no string) string {
	if v {
		return "YES"
	}
	return no
}
