// Package page writes a [draw.Page] as SVG, PDF or PNG.
//
// Page units are millimetres and font sizes are points. The SVG sink keeps
// millimetres as user units so the document prints at its true size; the
// PNG sink rasterizes at a configurable pixel density.
//
//	svg := page.RenderSVG(doc.Page)
//	pdf, err := page.RenderPDF(ctx, doc.Page)
//	png, err := page.RenderPNG(doc.Page, page.WithDPI(200))
//
// [draw.Page]: github.com/matzehuels/casement/pkg/draw.Page
package page

// MMPerPoint is the length of one font point in millimetres.
const MMPerPoint = 25.4 / 72
