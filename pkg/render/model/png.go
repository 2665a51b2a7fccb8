package model

import (
	"bytes"
	"math"
	"slices"

	"github.com/gogpu/gg"

	"github.com/matzehuels/casement/pkg/errors"
	"github.com/matzehuels/casement/pkg/geometry"
)

// Snapshot defaults.
const (
	DefaultSize  = 800
	DefaultYaw   = -30.0 // degrees around Y
	DefaultPitch = 20.0  // degrees around X
)

// PNGOption configures [RenderPNG].
type PNGOption func(*snapshot)

type snapshot struct {
	size       int
	yaw, pitch float64
}

// WithSize sets the edge length of the square image in pixels.
func WithSize(px int) PNGOption {
	return func(s *snapshot) {
		if px > 0 {
			s.size = px
		}
	}
}

// WithView sets the camera angles in degrees.
func WithView(yaw, pitch float64) PNGOption {
	return func(s *snapshot) { s.yaw, s.pitch = yaw, pitch }
}

type face struct {
	pts   [4][2]float64
	depth float64
	mat   geometry.MaterialHints
}

// RenderPNG draws a flat-shaded snapshot of m seen from the front, slightly
// above and to the right. Faces are painted back to front so the glass
// material's opacity shows the frame behind it.
func RenderPNG(m geometry.Model, opts ...PNGOption) ([]byte, error) {
	s := &snapshot{size: DefaultSize, yaw: DefaultYaw, pitch: DefaultPitch}
	for _, opt := range opts {
		opt(s)
	}

	faces := s.project(m)
	if len(faces) == 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "model has no drawable faces")
	}
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, fc := range faces {
		for _, p := range fc.pts {
			minX, maxX = math.Min(minX, p[0]), math.Max(maxX, p[0])
			minY, maxY = math.Min(minY, p[1]), math.Max(maxY, p[1])
		}
	}
	spanX, spanY := maxX-minX, maxY-minY
	if !(spanX > 0 && spanY > 0) || math.IsInf(spanX, 0) || math.IsInf(spanY, 0) {
		return nil, errors.New(errors.ErrCodeRenderFailed, "model has no visible extent")
	}

	size := float64(s.size)
	margin := size * 0.08
	scale := math.Min((size-2*margin)/spanX, (size-2*margin)/spanY)
	offX := (size - spanX*scale) / 2
	offY := (size - spanY*scale) / 2

	dc := gg.NewContext(s.size, s.size)
	defer dc.Close()
	dc.ClearWithColor(gg.RGB(0.96, 0.97, 0.98))

	slices.SortStableFunc(faces, func(a, b face) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})
	for _, fc := range faces {
		r, g, b := hexRGB(fc.mat.Color)
		for i, p := range fc.pts {
			x, y := offX+(p[0]-minX)*scale, offY+(p[1]-minY)*scale
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetRGBA(r, g, b, math.Max(fc.mat.Opacity, 0.15))
		if err := dc.FillPreserve(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "fill face")
		}
		dc.SetRGBA(r*0.6, g*0.6, b*0.6, 1)
		dc.SetLineWidth(1)
		if err := dc.Stroke(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "stroke face")
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

// project returns the faces of every solid that point towards the camera,
// in screen space with Y growing downwards. Larger depth is closer.
func (s *snapshot) project(m geometry.Model) []face {
	yaw, pitch := s.yaw*math.Pi/180, s.pitch*math.Pi/180
	cy, sy := math.Cos(yaw), math.Sin(yaw)
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	view := func(v geometry.Vec3) (x, y, z float64) {
		x1 := v[0]*cy + v[2]*sy
		z1 := -v[0]*sy + v[2]*cy
		y2 := v[1]*cp - z1*sp
		z2 := v[1]*sp + z1*cp
		return x1, -y2, z2
	}

	var out []face
	for _, solid := range m.Solids {
		hints, ok := geometry.Materials[solid.Material]
		if !ok {
			continue
		}
		cs := corners(solid)
		for _, idx := range boxFaces {
			var fc face
			var screen [4][3]float64
			for i, ci := range idx {
				x, y, z := view(cs[ci])
				screen[i] = [3]float64{x, y, z}
				fc.pts[i] = [2]float64{x, y}
				fc.depth += z / 4
			}
			// Screen Y points down, so a face towards the camera winds
			// clockwise on screen and its cross product is negative.
			e1x, e1y := screen[1][0]-screen[0][0], screen[1][1]-screen[0][1]
			e2x, e2y := screen[2][0]-screen[1][0], screen[2][1]-screen[1][1]
			if e1x*e2y-e1y*e2x >= 0 {
				continue
			}
			if math.IsNaN(fc.depth) {
				continue
			}
			fc.mat = hints
			out = append(out, fc)
		}
	}
	return out
}
