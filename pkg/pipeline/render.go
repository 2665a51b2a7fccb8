package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/casement/pkg/geometry"
	"github.com/matzehuels/casement/pkg/quotation"
	"github.com/matzehuels/casement/pkg/render/model"
	"github.com/matzehuels/casement/pkg/render/page"
)

// MTLName is the material library referenced by the OBJ artifact.
const MTLName = "window.mtl"

// RenderModel generates model artifacts in the requested formats.
// Requesting obj adds the mtl artifact it references.
func RenderModel(ctx context.Context, m geometry.Model, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = model.RenderJSON(m)
		case FormatOBJ:
			data = model.RenderOBJ(m, MTLName)
			artifacts[FormatMTL] = model.RenderMTL()
		case FormatPNG:
			data, err = model.RenderPNG(m, model.WithSize(opts.ImageSize))
		case FormatHTML:
			data, err = model.RenderHTML(&m)
		default:
			return nil, fmt.Errorf("unsupported model format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderQuote generates quotation artifacts in the requested formats.
func RenderQuote(ctx context.Context, doc quotation.Document, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)
	title := page.WithTitle("Quotation " + doc.Number)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = page.RenderSVG(doc.Page, title, page.WithBackground())
		case FormatPDF:
			data, err = page.RenderPDF(ctx, doc.Page, title)
		case FormatPNG:
			data, err = page.RenderPNG(doc.Page, page.WithDPI(opts.DPI))
		case FormatJSON:
			data, err = json.MarshalIndent(doc, "", "  ")
		default:
			return nil, fmt.Errorf("unsupported quotation format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
