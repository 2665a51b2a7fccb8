package diagram

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/casement/pkg/draw"
	"github.com/matzehuels/casement/pkg/window"
)

var region = draw.Rect{X: 15, Y: 105, W: 80, H: 120}

func handles(items []draw.Item) int {
	n := 0
	for _, it := range items {
		if it.Kind == draw.KindRect && it.Style.Fill != nil {
			n++
		}
	}
	return n
}

func rectNear(a, b draw.Rect) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}

func TestLayoutTopologyTriggers(t *testing.T) {
	base := window.Default()

	tests := []struct {
		name   string
		mutate func(*window.WindowSpecs)
		want   window.Topology
	}{
		{"fixed", func(*window.WindowSpecs) {}, window.Fixed},
		{"window type", func(s *window.WindowSpecs) { s.WindowType = window.Slider }, window.Sliding},
		{"design", func(s *window.WindowSpecs) { s.Design = "SLIDING 3 SHUTTER" }, window.Sliding},
		{"profile", func(s *window.WindowSpecs) { s.ProfileSystem = "38MM SLIDER" }, window.Sliding},
		{"profile with disagreeing fields", func(s *window.WindowSpecs) {
			s.ProfileSystem = "29MM SLIDER"
			s.WindowType = window.Normal
			s.Design = "FIX GLASS"
		}, window.Sliding},
		{"design and window type", func(s *window.WindowSpecs) {
			s.WindowType = window.Slider
			s.Design = "SLIDING 2 SHUTTER SLIM I/L"
		}, window.Sliding},
		{"all three", func(s *window.WindowSpecs) {
			s.WindowType = window.Slider
			s.Design = "SLIDING 3 SHUTTER"
			s.ProfileSystem = "29MM SLIDER"
		}, window.Sliding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			d := Layout(s, region)
			if d.Topology != tt.want {
				t.Fatalf("Topology = %v, want %v", d.Topology, tt.want)
			}
			wantHandles := 0
			if tt.want == window.Sliding {
				wantHandles = 2
			}
			if got := handles(d.Items); got != wantHandles {
				t.Errorf("handles = %d, want %d", got, wantHandles)
			}
		})
	}
}

func TestSliderSchematic(t *testing.T) {
	s := window.Default()
	s.WindowType = window.Slider
	d := Layout(s, region)

	if got := draw.Count(d.Items, draw.KindRect); got != 5 {
		t.Errorf("rects = %d, want 5 (outline, two leaves, two handles)", got)
	}

	cx, _ := d.Window.Center()
	var divider bool
	for _, it := range d.Items {
		if it.Kind == draw.KindLine && it.X1 == cx && it.X2 == cx && it.Y1 == d.Window.Y && it.Y2 == d.Window.Bottom() {
			divider = true
		}
	}
	if !divider {
		t.Error("no centerline divider")
	}

	// Arrow tips point away from center.
	var leftTip, rightTip bool
	_, cy := d.Window.Center()
	for _, it := range d.Items {
		if it.Kind != draw.KindLine || it.Y1 != cy || it.Y2 != cy {
			continue
		}
		if it.X2 < it.X1 && it.X2 < cx {
			leftTip = true
		}
		if it.X2 > it.X1 && it.X2 > cx {
			rightTip = true
		}
	}
	if !leftTip || !rightTip {
		t.Errorf("arrows: left=%v right=%v", leftTip, rightTip)
	}
}

func TestFixedSchematic(t *testing.T) {
	d := Layout(window.Default(), region)
	if got := draw.Count(d.Items, draw.KindRect); got != 3 {
		t.Errorf("rects = %d, want 3 concentric", got)
	}
	if want := d.Window.Inset(2 * FrameStep); !rectNear(d.Glazing, want) {
		t.Errorf("Glazing = %+v, want innermost rectangle", d.Glazing)
	}
	if handles(d.Items) != 0 {
		t.Error("fixed window has handles")
	}
}

func TestGrill(t *testing.T) {
	for _, wt := range []window.WindowType{window.Normal, window.Slider} {
		s := window.Default()
		s.WindowType = wt

		off := Layout(s, region)
		s.Grill = true
		on := Layout(s, region)

		var horizontal, vertical []float64
		for _, it := range on.Items {
			if it.Kind != draw.KindLine || it.Style.Dash == nil {
				continue
			}
			if it.Y1 == it.Y2 {
				horizontal = append(horizontal, it.Y1)
			} else {
				vertical = append(vertical, it.X1)
			}
		}
		if len(horizontal) != 3 || len(vertical) != 3 {
			t.Fatalf("%s: grill has %d horizontal and %d vertical lines", wt, len(horizontal), len(vertical))
		}
		g := on.Glazing
		cx, cy := g.Center()
		for i, k := range []float64{-1, 0, 1} {
			if math.Abs(horizontal[i]-(cy+k*g.H/3)) > 1e-9 {
				t.Errorf("%s: horizontal %d at %v", wt, i, horizontal[i])
			}
			if math.Abs(vertical[i]-(cx+k*g.W/3)) > 1e-9 {
				t.Errorf("%s: vertical %d at %v", wt, i, vertical[i])
			}
		}
		if len(on.Items)-len(off.Items) != 6 {
			t.Errorf("%s: grill adds %d items, want 6", wt, len(on.Items)-len(off.Items))
		}
	}
}

func TestProportionalFit(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"portrait", 36, 48},
		{"landscape", 96, 48},
		{"square", 40, 40},
		{"very tall", 10, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := window.Default()
			s.Width, s.Height = tt.width, tt.height
			d := Layout(s, region)
			if d.Fallback {
				t.Fatal("unexpected fallback")
			}
			got := d.Window.W / d.Window.H
			want := tt.width / tt.height
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("aspect = %v, want %v", got, want)
			}
			if d.Window.X < region.X || d.Window.Y < region.Y ||
				d.Window.Right() > region.Right() || d.Window.Bottom() > region.Bottom() {
				t.Errorf("window %+v escapes region %+v", d.Window, region)
			}
		})
	}
}

func TestDimensionLabels(t *testing.T) {
	s := window.Default()
	s.Width, s.Height = 36.5, 48
	texts := draw.Texts(Schematic(s, region))
	if !slices.Contains(texts, `W: 36.5"`) || !slices.Contains(texts, `H: 48"`) {
		t.Errorf("labels = %v", texts)
	}

	for _, it := range Schematic(s, region) {
		if it.Kind == draw.KindText && it.Text == `H: 48"` && it.Style.Rotate != -90 {
			t.Errorf("height label rotation = %v, want -90", it.Style.Rotate)
		}
	}
}

func TestDegenerateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantW, wantH  string
	}{
		{"zero width", 0, 48, `W: 0"`, `H: 48"`},
		{"NaN height", 36, math.NaN(), `W: 36"`, `H: NaN"`},
		{"negative", -10, -20, `W: -10"`, `H: -20"`},
		{"infinite", math.Inf(1), 48, `W: +Inf"`, `H: 48"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := window.Default()
			s.Width, s.Height = tt.width, tt.height
			d := Layout(s, region)
			if !d.Fallback {
				t.Error("expected fallback proportions")
			}
			if got := d.Window.W / d.Window.H; math.Abs(got-FallbackWidth/FallbackHeight) > 1e-9 {
				t.Errorf("fallback aspect = %v", got)
			}
			texts := draw.Texts(d.Items)
			if !slices.Contains(texts, tt.wantW) || !slices.Contains(texts, tt.wantH) {
				t.Errorf("labels = %v, want %q and %q", texts, tt.wantW, tt.wantH)
			}
		})
	}
}
