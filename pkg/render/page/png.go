package page

import (
	"bytes"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/casement/pkg/draw"
	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/fonts"
)

// DefaultDPI is the pixel density of [RenderPNG] output.
const DefaultDPI = 150.0

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi float64
}

// WithDPI sets the pixel density. Values below 10 are ignored.
func WithDPI(dpi float64) PNGOption {
	return func(r *pngRenderer) {
		if dpi >= 10 {
			r.dpi = dpi
		}
	}
}

// RenderPNG rasterizes p on a white background.
func RenderPNG(p draw.Page, opts ...PNGOption) ([]byte, error) {
	r := &pngRenderer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(r)
	}
	scale := r.dpi / 25.4
	w, h := int(math.Ceil(p.Width*scale)), int(math.Ceil(p.Height*scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "page has no area (%vx%v)", p.Width, p.Height)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	for _, it := range p.Items {
		if err := r.item(dc, it, scale); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "rasterize %s", it.Kind)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) item(dc *gg.Context, it draw.Item, scale float64) error {
	st := it.Style
	switch it.Kind {
	case draw.KindLine:
		if st.NoStroke {
			return nil
		}
		setStroke(dc, st, scale)
		dc.DrawLine(it.X1*scale, it.Y1*scale, it.X2*scale, it.Y2*scale)
		return dc.Stroke()
	case draw.KindRect:
		x, y, w, h := it.X1*scale, it.Y1*scale, it.W*scale, it.H*scale
		if st.Fill != nil {
			dc.SetRGB(st.Fill.Float())
			dc.DrawRectangle(x, y, w, h)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
		if st.NoStroke {
			return nil
		}
		setStroke(dc, st, scale)
		dc.DrawRectangle(x, y, w, h)
		return dc.Stroke()
	case draw.KindText:
		face, err := fonts.Face(fontSize(st)*MMPerPoint*scale, st.Bold)
		if err != nil {
			return err
		}
		dc.SetFont(face)
		dc.SetRGB(st.Stroke.Float())
		ax := 0.0
		switch st.Anchor {
		case draw.AnchorMiddle:
			ax = 0.5
		case draw.AnchorEnd:
			ax = 1
		}
		x, y := it.X1*scale, it.Y1*scale
		dc.Push()
		defer dc.Pop()
		if st.Rotate != 0 {
			dc.RotateAbout(st.Rotate*math.Pi/180, x, y)
		}
		// Y1 is the baseline; gg's anchored drawing would treat it as the top.
		w, _ := dc.MeasureString(it.Text)
		dc.DrawString(it.Text, x-w*ax, y)
	}
	return nil
}

func setStroke(dc *gg.Context, st draw.Style, scale float64) {
	dc.SetRGB(st.Stroke.Float())
	dc.SetLineWidth(strokeWidth(st) * scale)
	if len(st.Dash) > 0 {
		dash := make([]float64, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = d * scale
		}
		dc.SetDash(dash...)
	} else {
		dc.ClearDash()
	}
}
