package page

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/casement/pkg/draw"
	"github.com/matzehuels/casement/pkg/fonts"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	background bool
}

// WithTitle adds a <title> element.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithBackground paints the page white before the items.
func WithBackground() SVGOption { return func(r *svgRenderer) { r.background = true } }

// RenderSVG writes p as a standalone SVG document.
func RenderSVG(p draw.Page, opts ...SVGOption) []byte {
	r := &svgRenderer{}
	for _, opt := range opts {
		opt(r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%smm" height="%smm">`+"\n",
		num(p.Width), num(p.Height), num(p.Width), num(p.Height))
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", EscapeXML(r.title))
	}
	if r.background {
		fmt.Fprintf(&buf, `  <rect width="%s" height="%s" fill="#ffffff"/>`+"\n", num(p.Width), num(p.Height))
	}
	fmt.Fprintf(&buf, `  <g font-family="%s" stroke-linecap="round">`+"\n", EscapeXML(fonts.FontFamily))
	for _, it := range p.Items {
		renderItem(&buf, it)
	}
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func renderItem(buf *bytes.Buffer, it draw.Item) {
	st := it.Style
	switch it.Kind {
	case draw.KindLine:
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
			num(it.X1), num(it.Y1), num(it.X2), num(it.Y2), strokeAttrs(st))
	case draw.KindRect:
		fill := "none"
		if st.Fill != nil {
			fill = st.Fill.Hex()
		}
		fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`+"\n",
			num(it.X1), num(it.Y1), num(it.W), num(it.H), fill, strokeAttrs(st))
	case draw.KindText:
		var attrs strings.Builder
		fmt.Fprintf(&attrs, ` font-size="%s"`, num(fontSize(st)*MMPerPoint))
		if st.Bold {
			attrs.WriteString(` font-weight="bold"`)
		}
		if st.Anchor != "" && st.Anchor != draw.AnchorStart {
			fmt.Fprintf(&attrs, ` text-anchor="%s"`, st.Anchor)
		}
		if st.Rotate != 0 {
			fmt.Fprintf(&attrs, ` transform="rotate(%s %s %s)"`, num(st.Rotate), num(it.X1), num(it.Y1))
		}
		fmt.Fprintf(buf, `    <text x="%s" y="%s" fill="%s"%s>%s</text>`+"\n",
			num(it.X1), num(it.Y1), st.Stroke.Hex(), attrs.String(), EscapeXML(it.Text))
	}
}

func strokeAttrs(st draw.Style) string {
	if st.NoStroke {
		return ` stroke="none"`
	}
	var b strings.Builder
	fmt.Fprintf(&b, ` stroke="%s" stroke-width="%s"`, st.Stroke.Hex(), num(strokeWidth(st)))
	if len(st.Dash) > 0 {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = num(d)
		}
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	return b.String()
}

// DefaultStrokeWidth is used for items without a stroke width, in page units.
const DefaultStrokeWidth = 0.2

// DefaultFontSize is used for text without a font size, in points.
const DefaultFontSize = 10.0

func strokeWidth(st draw.Style) float64 {
	if st.StrokeWidth > 0 {
		return st.StrokeWidth
	}
	return DefaultStrokeWidth
}

func fontSize(st draw.Style) float64 {
	if st.FontSize > 0 {
		return st.FontSize
	}
	return DefaultFontSize
}

// num formats a coordinate compactly; non-finite values become 0 so the
// document stays parseable.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// EscapeXML escapes text for use in XML content and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
