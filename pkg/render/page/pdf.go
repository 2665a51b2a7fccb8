package page

import (
	"context"

	"github.com/matzehuels/casement/pkg/draw"
	"github.com/matzehuels/casement/pkg/render"
)

// RenderPDF converts the SVG rendition of p to PDF.
func RenderPDF(ctx context.Context, p draw.Page, opts ...SVGOption) ([]byte, error) {
	svg := RenderSVG(p, append([]SVGOption{WithBackground()}, opts...)...)
	return render.ToPDF(ctx, svg)
}
