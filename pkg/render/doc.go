// Package render turns laid-out quotations and derived models into files.
//
// # Overview
//
// Layout packages produce plain values: a [draw.Page] for the quotation and
// a [geometry.Model] for the 3D view. The subpackages write those values in
// concrete formats:
//
//   - [page]: quotation pages as SVG, PDF and PNG
//   - [model]: 3D models as JSON, Wavefront OBJ/MTL, an isometric PNG
//     snapshot and a self-contained HTML viewer
//
// # Format Conversion
//
// PDF output is produced by converting the SVG with the external
// rsvg-convert tool (from librsvg). PNG output is rasterized in-process and
// needs no external tools.
//
//	svg := page.RenderSVG(doc.Page)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [draw.Page]: github.com/matzehuels/casement/pkg/draw.Page
// [geometry.Model]: github.com/matzehuels/casement/pkg/geometry.Model
// [page]: github.com/matzehuels/casement/pkg/render/page
// [model]: github.com/matzehuels/casement/pkg/render/model
package render
