// Package pipeline provides the generation pipeline for casement.
//
// This package implements the validate → derive/layout → render sequence
// used by the CLI, the terminal form and the HTTP surface. By centralizing
// it, every entry point applies the same validation, the same template
// resolution and the same logging.
//
// # Architecture
//
// Two pipelines share one [Runner]:
//
//  1. Model: validate specs, derive the 3D model, render JSON/OBJ/PNG/HTML
//  2. Quote: validate specs, lay out the quotation, render SVG/PDF/PNG/JSON
//
// Each stage notifies the [observability] hooks and is logged with its
// duration.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Quote(ctx, specs, pipeline.Options{
//	    Formats: []string{"pdf"},
//	    Client:  "Asha Patel",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"]
//
// [observability]: github.com/matzehuels/casement/pkg/observability
package pipeline

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/geometry"
	"github.com/matzehuels/casement/pkg/quotation"
	"github.com/matzehuels/casement/pkg/window"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, TUI, and HTTP
// =============================================================================

const (
	// DefaultDPI is the pixel density of rasterized quotation pages.
	DefaultDPI = 150.0

	// DefaultImageSize is the edge length of the 3D snapshot in pixels.
	DefaultImageSize = 800
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatOBJ  = "obj"
	FormatMTL  = "mtl"
	FormatHTML = "html"
)

// ValidQuoteFormats is the set of supported quotation output formats.
var ValidQuoteFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidModelFormats is the set of supported 3D model output formats.
// Requesting obj also produces the mtl companion.
var ValidModelFormats = map[string]bool{
	FormatJSON: true,
	FormatOBJ:  true,
	FormatPNG:  true,
	FormatHTML: true,
}

// DefaultQuoteFormats and DefaultModelFormats apply when no format is given.
var (
	DefaultQuoteFormats = []string{FormatPDF}
	DefaultModelFormats = []string{FormatJSON}
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Formats  []string `json:"formats,omitempty"`
	Client   string   `json:"client,omitempty"`
	Template string   `json:"template,omitempty"`

	// DPI applies to quotation PNG output.
	DPI float64 `json:"dpi,omitempty"`
	// ImageSize applies to the 3D PNG snapshot.
	ImageSize int `json:"image_size,omitempty"`

	// SkipValidation lets degenerate specs through to the core, which
	// then renders visibly wrong but complete output.
	SkipValidation bool `json:"skip_validation,omitempty"`

	// Runtime options (not serialized)

	// Logger receives this run's log lines instead of Runner.Logger.
	Logger *log.Logger      `json:"-"`
	Clock  func() time.Time `json:"-"`
}

// ModelResult contains the outputs of a model run.
type ModelResult struct {
	Model     geometry.Model
	Topology  window.Resolution
	Artifacts map[string][]byte
	Stats     Stats

	// CacheHit is set when every artifact came from the cache.
	CacheHit bool
}

// QuoteResult contains the outputs of a quotation run.
type QuoteResult struct {
	Document  quotation.Document
	Artifacts map[string][]byte
	Stats     Stats
}

// FileName returns the download name for a rendered format.
func (r *QuoteResult) FileName(format string) string {
	return r.Document.FileName(format)
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Solids     int
	Items      int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateQuoteFormats checks that all formats are valid quotation formats.
func ValidateQuoteFormats(formats []string) error {
	return validateFormats(formats, ValidQuoteFormats, "svg, png, pdf, json")
}

// ValidateModelFormats checks that all formats are valid model formats.
func ValidateModelFormats(formats []string) error {
	return validateFormats(formats, ValidModelFormats, "json, obj, png, html")
}

func validateFormats(formats []string, valid map[string]bool, names string) error {
	for _, f := range formats {
		if !valid[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", f, names)
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.ImageSize == 0 {
		o.ImageSize = DefaultImageSize
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
}

// ValidateForQuote applies defaults and checks the quotation formats.
func (o *Options) ValidateForQuote() error {
	o.SetDefaults()
	if len(o.Formats) == 0 {
		o.Formats = DefaultQuoteFormats
	}
	return ValidateQuoteFormats(o.Formats)
}

// ValidateForModel applies defaults and checks the model formats.
func (o *Options) ValidateForModel() error {
	o.SetDefaults()
	if len(o.Formats) == 0 {
		o.Formats = DefaultModelFormats
	}
	return ValidateModelFormats(o.Formats)
}
