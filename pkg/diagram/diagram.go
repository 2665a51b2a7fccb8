// Package diagram lays out the 2D schematic printed on a quotation.
//
// The schematic is a line drawing of the window scaled uniformly into a
// caller-supplied region, with width and height dimension lines. Slider
// topology is taken from [window.ResolveTopology]'s Schematic field, so a
// sliding design label or profile is enough to draw two leaves even when
// the window type says Normal.
package diagram

import (
	"math"
	"strconv"

	"github.com/matzehuels/casement/pkg/draw"
	"github.com/matzehuels/casement/pkg/window"
)

// Layout constants in page units (millimetres on a quotation).
const (
	// DimensionRoom is reserved above and left of the window for the
	// dimension lines and their labels.
	DimensionRoom = 10.0
	// Padding is kept free on the right and bottom of the region.
	Padding = 3.0
	// DimensionOffset is the distance of a dimension line from the outline.
	DimensionOffset = 4.0
	// TickLength is the length of a dimension end tick.
	TickLength = 2.0
	// PanelInset separates a sliding leaf from its half of the outline.
	PanelInset = 2.0
	// FrameStep is the spacing of the concentric frame rectangles of a
	// fixed window.
	FrameStep = 2.0
	// LabelSize is the font size of dimension labels.
	LabelSize = 8.0
)

// Fallback proportions used when the specs carry unusable dimensions.
const (
	FallbackWidth  = 36.0
	FallbackHeight = 48.0
)

var (
	outline   = draw.Style{Stroke: draw.Black, StrokeWidth: 0.4}
	thin      = draw.Style{Stroke: draw.Black, StrokeWidth: 0.2}
	hatch     = draw.Style{Stroke: draw.Grey, StrokeWidth: 0.2}
	grillLine = draw.Style{Stroke: draw.Black, StrokeWidth: 0.25, Dash: []float64{1, 0.6}}
	handle    = draw.Style{NoStroke: true}.Filled(draw.Black)
	label     = draw.Style{Stroke: draw.Black, FontSize: LabelSize, Anchor: draw.AnchorMiddle}
)

// Diagram is a laid-out schematic.
type Diagram struct {
	// Topology is the structure that was drawn.
	Topology window.Topology
	// Window is the fitted outline of the window.
	Window draw.Rect
	// Glazing is the innermost region, which the grill spans.
	Glazing draw.Rect
	// Fallback is set when the specs' dimensions could not be used and
	// the drawing uses the default proportions.
	Fallback bool
	Items    []draw.Item
}

// Schematic returns the drawing items for s fitted into region.
func Schematic(s window.WindowSpecs, region draw.Rect) []draw.Item {
	return Layout(s, region).Items
}

// Layout fits the window into region and draws it. It never fails: if the
// width or height is not a positive finite number the outline takes the
// default 36 x 48 proportions while the labels still print the raw values.
func Layout(s window.WindowSpecs, region draw.Rect) Diagram {
	avail := draw.Rect{
		X: region.X + DimensionRoom,
		Y: region.Y + DimensionRoom,
		W: region.W - DimensionRoom - Padding,
		H: region.H - DimensionRoom - Padding,
	}
	d := Diagram{Topology: window.ResolveTopology(s).Schematic}
	var ok bool
	if d.Window, ok = avail.Fit(s.Width, s.Height); !ok {
		d.Window, _ = avail.Fit(FallbackWidth, FallbackHeight)
		d.Fallback = true
	}

	d.add(draw.RectItem(d.Window, outline))
	if d.Topology == window.Sliding {
		d.slider()
	} else {
		d.fixed()
	}
	if s.Grill {
		d.grill()
	}
	d.dimensions(s.Width, s.Height)
	return d
}

func (d *Diagram) add(items ...draw.Item) {
	d.Items = append(d.Items, items...)
}

// slider draws the divider, two leaves with glass hatch, handles on the
// meeting edges and an arrow beside each handle pointing away from center.
func (d *Diagram) slider() {
	w := d.Window
	cx, cy := w.Center()
	d.add(draw.Line(cx, w.Y, cx, w.Bottom(), outline))

	left := draw.Rect{X: w.X, Y: w.Y, W: w.W / 2, H: w.H}.Inset(PanelInset)
	right := draw.Rect{X: cx, Y: w.Y, W: w.W / 2, H: w.H}.Inset(PanelInset)
	d.Glazing = w.Inset(PanelInset)

	for _, p := range []draw.Rect{left, right} {
		d.add(draw.RectItem(p, thin))
		d.cross(p)
	}

	hw, hh := handleSize(left)
	lx := left.Right() - hw - 1
	rx := right.X + 1
	d.add(
		draw.RectItem(draw.Rect{X: lx, Y: cy - hh/2, W: hw, H: hh}, handle),
		draw.RectItem(draw.Rect{X: rx, Y: cy - hh/2, W: hw, H: hh}, handle),
	)
	length := min(6, left.W/4)
	d.arrow(lx-1, cy, -length)
	d.arrow(rx+hw+1, cy, length)
}

// fixed draws three concentric rectangles and a cluster of hatch lines
// centered in the innermost one.
func (d *Diagram) fixed() {
	inner := d.Window
	for range 2 {
		inner = inner.Inset(FrameStep)
		d.add(draw.RectItem(inner, thin))
	}
	d.Glazing = inner

	cx, cy := inner.Center()
	size := min(inner.W, inner.H) / 4
	for i := -1; i <= 1; i++ {
		off := float64(i) * size / 3
		d.add(draw.Line(cx-size/2+off, cy+size/2, cx+size/2+off, cy-size/2, hatch))
	}
}

// cross draws the crossed glass hatch centered in p.
func (d *Diagram) cross(p draw.Rect) {
	cx, cy := p.Center()
	size := min(p.W, p.H) / 4
	d.add(
		draw.Line(cx-size/2, cy-size/2, cx+size/2, cy+size/2, hatch),
		draw.Line(cx-size/2, cy+size/2, cx+size/2, cy-size/2, hatch),
	)
}

// arrow draws a horizontal arrow starting at (x, y) whose tip lies
// length away; a negative length points left.
func (d *Diagram) arrow(x, y, length float64) {
	tip := x + length
	head := length / 3
	d.add(
		draw.Line(x, y, tip, y, thin),
		draw.Line(tip, y, tip-head, y-math.Abs(head)/1.5, thin),
		draw.Line(tip, y, tip-head, y+math.Abs(head)/1.5, thin),
	)
}

// grill draws three horizontal and three vertical lines across the glazing
// at -1, 0 and +1 thirds from its center.
func (d *Diagram) grill() {
	g := d.Glazing
	cx, cy := g.Center()
	for i := -1; i <= 1; i++ {
		y := cy + float64(i)*g.H/3
		d.add(draw.Line(g.X, y, g.Right(), y, grillLine))
	}
	for i := -1; i <= 1; i++ {
		x := cx + float64(i)*g.W/3
		d.add(draw.Line(x, g.Y, x, g.Bottom(), grillLine))
	}
}

// dimensions draws the width line above and the height line to the left
// of the outline, labelled with the raw spec values.
func (d *Diagram) dimensions(width, height float64) {
	w := d.Window
	cx, cy := w.Center()
	t := TickLength / 2

	y := w.Y - DimensionOffset
	d.add(
		draw.Line(w.X, y, w.Right(), y, thin),
		draw.Line(w.X, y-t, w.X, y+t, thin),
		draw.Line(w.Right(), y-t, w.Right(), y+t, thin),
		draw.Text(cx, y-1.5, "W: "+FormatInches(width)+`"`, label),
	)

	x := w.X - DimensionOffset
	vertical := label
	vertical.Rotate = -90
	d.add(
		draw.Line(x, w.Y, x, w.Bottom(), thin),
		draw.Line(x-t, w.Y, x+t, w.Y, thin),
		draw.Line(x-t, w.Bottom(), x+t, w.Bottom(), thin),
		draw.Text(x-1.5, cy, "H: "+FormatInches(height)+`"`, vertical),
	)
}

// FormatInches prints a raw spec dimension with as many digits as needed.
func FormatInches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func handleSize(panel draw.Rect) (w, h float64) {
	return min(1.2, panel.W/8), min(6, panel.H/5)
}
