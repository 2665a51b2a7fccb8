package quotation

import (
	"strconv"
	"strings"

	"github.com/matzehuels/casement/pkg/diagram"
	"github.com/matzehuels/casement/pkg/draw"
	"github.com/matzehuels/casement/pkg/pricing"
)

// Page regions in millimetres.
var (
	borderBox   = draw.Rect{X: 10, Y: 10, W: 190, H: 277}
	logoBox     = draw.Rect{X: 150, Y: 18, W: 45, H: 25}
	contentBox  = draw.Rect{X: 10, Y: 94, W: 190, H: 150}
	signatories = [2]draw.Rect{{X: 15, Y: 270, W: 80, H: 15}, {X: 115, Y: 270, W: 80, H: 15}}
)

const (
	marginLeft   = 15.0
	captionX     = 14.0
	pageRight    = 200.0
	metaValueX   = 45.0
	metaRightX   = 115.0
	metaRightVal = 145.0
	rowLabelX    = 105.0
	rowValueX    = 140.0
	rowStartY    = 105.0
	rowStep      = 6.0
	boxTextX     = 110.0
	termsY       = 250.0
	termsStep    = 3.5
)

type layout struct {
	doc  *Document
	tmpl Template
}

func (l *layout) add(items ...draw.Item) { l.doc.Page.Add(items...) }

func text(x, y float64, s string, size float64, bold bool) draw.Item {
	return draw.Text(x, y, s, draw.Style{Stroke: draw.Black, FontSize: size, Bold: bold})
}

var box = draw.Style{Stroke: draw.Black, StrokeWidth: 0.2}

func (l *layout) render() {
	l.add(draw.RectItem(borderBox, box))
	l.letterhead()
	l.separator(58)
	l.metadata()
	l.separator(82)
	l.location()
	l.add(draw.RectItem(contentBox, box))
	l.image()
	y := l.rows()
	y = l.computed(y)
	l.hardware(y)
	l.terms()
	l.signatures()
}

func (l *layout) letterhead() {
	c := l.tmpl.Company
	l.add(text(marginLeft, 20, c.Name, 14, true))
	y := 26.0
	for _, line := range c.Address {
		l.add(text(marginLeft, y, line, 10, false))
		y += 5
	}
	y += 1
	for _, line := range c.Contact {
		l.add(text(marginLeft, y, line, 10, false))
		y += 5
	}

	if !l.tmpl.LogoBox {
		return
	}
	l.add(draw.RectItem(logoBox, box.Filled(l.tmpl.LogoFill)))
	cx, _ := logoBox.Center()
	st := draw.Style{Stroke: draw.Black, FontSize: 10, Anchor: draw.AnchorMiddle}
	l.add(draw.Text(cx, 33, c.Name, st))
}

func (l *layout) separator(y float64) {
	l.add(draw.Line(borderBox.X, y, pageRight, y, draw.Style{Stroke: l.tmpl.Accent, StrokeWidth: 0.7}))
}

func (l *layout) metadata() {
	s := l.doc.Specs
	l.add(
		text(marginLeft, 66, "Client Name :", 10, true),
		text(marginLeft, 72, "Project :", 10, true),
		text(metaRightX, 66, "Quotation No. :", 10, true),
		text(metaRightX, 72, "Finish :", 10, true),
		text(metaRightX, 78, "Date :", 10, true),

		text(metaValueX, 66, strings.ToUpper(l.doc.Client), 10, false),
		text(metaValueX, 72, strings.ToUpper(or(s.Project, FallbackProject)), 10, false),
		text(metaRightVal, 66, l.doc.Number, 10, false),
		text(metaRightVal, 72, strings.ToUpper(or(s.Finish, FallbackFinish)), 10, false),
		text(metaRightVal, 78, l.doc.Date, 10, false),
	)
}

func (l *layout) location() {
	s := l.doc.Specs
	l.add(
		text(marginLeft, 90, "Location : "+or(s.Location, FallbackLocation), 10, true),
		text(170, 90, "Code : "+or(s.Code, FallbackCode), 10, true),
	)
}

// image draws the image box, its captions and the schematic inside it.
// Both captions sit outside the box, clear of the schematic's own
// dimension labels.
func (l *layout) image() {
	s := l.doc.Specs
	l.add(draw.RectItem(ImageBox, box))
	l.add(text(35, 100, "W x "+Caption(s.Width, FallbackCaptionWidth), 9, false))
	rotated := draw.Style{Stroke: draw.Black, FontSize: 9, Rotate: -90}
	l.add(draw.Text(captionX, 170, "H x "+Caption(s.Height, FallbackCaptionHeight), rotated))
	l.add(diagram.Schematic(s, ImageBox)...)
}

// rows prints the specification table and returns the Y below it.
func (l *layout) rows() float64 {
	y := rowStartY
	for _, r := range l.doc.Rows {
		l.add(
			text(rowLabelX, y, r.Label, 9, true),
			text(rowValueX, y, ": "+r.Value, 9, false),
		)
		y += rowStep
	}
	return y
}

// computed prints the priced figures and returns the Y below the box.
func (l *layout) computed(y float64) float64 {
	p := l.doc.Pricing
	cur := l.tmpl.Currency
	l.add(
		draw.RectItem(draw.Rect{X: rowLabelX, Y: y + 2, W: 90, H: 32}, box),
		text(boxTextX, y+8, "Computed Values", 9, true),
		text(boxTextX, y+14, "Sq.ft per Window : "+pricing.FormatArea(p.AreaSqFt), 9, false),
		text(boxTextX, y+20, "Rate per Sq.ft : "+pricing.FormatMoney(cur, p.Rate), 9, false),
		text(boxTextX, y+26, "Quantity : "+strconv.Itoa(p.Quantity)+" pcs", 9, false),
		text(boxTextX, y+32, "Value : "+pricing.FormatMoney(cur, p.Total), 9, false),
	)
	return y + 38
}

func (l *layout) hardware(y float64) {
	l.add(
		draw.RectItem(draw.Rect{X: rowLabelX, Y: y, W: 90, H: 15}, box),
		text(boxTextX, y+6, "Hardware Brand", 9, true),
		text(boxTextX, y+12, or(l.doc.Specs.HardwareBrand, FallbackHardware), 9, false),
	)
}

func (l *layout) terms() {
	l.add(text(marginLeft, termsY, "TERMS & CONDITIONS", 9, true))
	y := termsY + 5
	for _, t := range l.tmpl.Terms {
		l.add(text(marginLeft, y, t, 8, false))
		y += termsStep
	}
}

func (l *layout) signatures() {
	l.add(
		draw.RectItem(signatories[0], box),
		draw.RectItem(signatories[1], box),
		text(25, 280, "Authorised Signatory", 9, false),
		text(125, 280, "Signature of Customer", 9, false),
	)
}
