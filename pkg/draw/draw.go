// Package draw is the 2D display list shared by the schematic, the
// quotation layout and the page sinks.
//
// Coordinates are in page units (millimetres for quotations) with the
// origin at the top-left corner and Y growing downwards. A [Page] is a
// plain value: layout code appends items, sinks walk them in order.
package draw

import "math"

// Color is an RGB color.
type Color struct{ R, G, B uint8 }

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	return string([]byte{'#',
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	})
}

// Float returns the components scaled to [0, 1].
func (c Color) Float() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Grey  = Color{120, 120, 120}
)

// Anchor is the horizontal alignment of a text item.
type Anchor string

// Text anchors.
const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Style holds paint attributes. A nil Fill means no fill; a zero
// StrokeWidth means the sink default.
type Style struct {
	Stroke      Color     `json:"stroke"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	Fill        *Color    `json:"fill,omitempty"`
	NoStroke    bool      `json:"noStroke,omitempty"`
	Dash        []float64 `json:"dash,omitempty"`
	FontSize    float64   `json:"fontSize,omitempty"` // points
	Bold        bool      `json:"bold,omitempty"`
	Anchor      Anchor    `json:"anchor,omitempty"`
	Rotate      float64   `json:"rotate,omitempty"` // degrees, clockwise
}

// Filled returns a copy of st filled with c.
func (st Style) Filled(c Color) Style {
	st.Fill = &c
	return st
}

// Kind identifies an item's primitive.
type Kind string

// Primitive kinds.
const (
	KindLine Kind = "line"
	KindRect Kind = "rect"
	KindText Kind = "text"
)

// Item is one primitive. Lines use (X1,Y1)-(X2,Y2); rectangles use
// X1,Y1 as the top-left corner and W,H as the size; text is drawn at
// (X1,Y1) on its baseline.
type Item struct {
	Kind  Kind    `json:"kind"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2,omitempty"`
	Y2    float64 `json:"y2,omitempty"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	Text  string  `json:"text,omitempty"`
	Style Style   `json:"style"`
}

// Line returns a line item.
func Line(x1, y1, x2, y2 float64, st Style) Item {
	return Item{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Style: st}
}

// RectItem returns a rectangle item.
func RectItem(r Rect, st Style) Item {
	return Item{Kind: KindRect, X1: r.X, Y1: r.Y, W: r.W, H: r.H, Style: st}
}

// Text returns a text item.
func Text(x, y float64, s string, st Style) Item {
	return Item{Kind: KindText, X1: x, Y1: y, Text: s, Style: st}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{r.X + d, r.Y + d, r.W - 2*d, r.H - 2*d}
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Fit returns the largest rectangle with aspect w:h centered in r. It
// returns ok=false when w or h is not a positive finite number.
func (r Rect) Fit(w, h float64) (Rect, bool) {
	if !positive(w) || !positive(h) {
		return Rect{}, false
	}
	scale := math.Min(r.W/w, r.H/h)
	fw, fh := w*scale, h*scale
	return Rect{r.X + (r.W-fw)/2, r.Y + (r.H-fh)/2, fw, fh}, true
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Page is a sized display list.
type Page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Items  []Item  `json:"items"`
}

// Add appends items to the page.
func (p *Page) Add(items ...Item) {
	p.Items = append(p.Items, items...)
}

// Count returns the number of items of the given kind.
func Count(items []Item, k Kind) int {
	n := 0
	for _, it := range items {
		if it.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns the strings of all text items, in order.
func Texts(items []Item) []string {
	var out []string
	for _, it := range items {
		if it.Kind == KindText {
			out = append(out, it.Text)
		}
	}
	return out
}
