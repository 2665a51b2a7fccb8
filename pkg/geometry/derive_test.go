package geometry

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/casement/pkg/window"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func specs(mutate func(*window.WindowSpecs)) window.WindowSpecs {
	s := window.Default()
	if mutate != nil {
		mutate(&s)
	}
	return s
}

func TestDeriveCounts(t *testing.T) {
	tests := []struct {
		name        string
		specs       window.WindowSpecs
		wantTotal   int
		wantFrame   int
		wantDivider int
		wantGlass   int
		wantGrill   int
		wantMesh    int
	}{
		{
			name:        "slider without overlays",
			specs:       specs(func(s *window.WindowSpecs) { s.WindowType = window.Slider }),
			wantTotal:   7,
			wantFrame:   4,
			wantDivider: 1,
			wantGlass:   2,
		},
		{
			name: "fixed with grill and mesh",
			specs: specs(func(s *window.WindowSpecs) {
				s.WindowType = window.Normal
				s.Grill = true
				s.Mesh = true
			}),
			wantTotal: 12,
			wantFrame: 4,
			wantGlass: 1,
			wantGrill: 6,
			wantMesh:  1,
		},
		{
			name:      "fixed plain",
			specs:     specs(nil),
			wantTotal: 5,
			wantFrame: 4,
			wantGlass: 1,
		},
		{
			name: "slider with grill",
			specs: specs(func(s *window.WindowSpecs) {
				s.WindowType = window.Slider
				s.Grill = true
			}),
			wantTotal:   13,
			wantFrame:   4,
			wantDivider: 1,
			wantGlass:   2,
			wantGrill:   6,
		},
		{
			name: "design label alone keeps the 3D model fixed",
			specs: specs(func(s *window.WindowSpecs) {
				s.Design = "SLIDING 3 SHUTTER"
				s.ProfileSystem = "29MM SLIDER"
			}),
			wantTotal: 5,
			wantFrame: 4,
			wantGlass: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Derive(tt.specs)
			if len(m.Solids) != tt.wantTotal {
				t.Errorf("len(Solids) = %d, want %d", len(m.Solids), tt.wantTotal)
			}
			for part, want := range map[Part]int{
				PartFrame:   tt.wantFrame,
				PartDivider: tt.wantDivider,
				PartGlass:   tt.wantGlass,
				PartGrill:   tt.wantGrill,
				PartMesh:    tt.wantMesh,
			} {
				if got := m.Count(part); got != want {
					t.Errorf("Count(%s) = %d, want %d", part, got, want)
				}
			}
		})
	}
}

func TestDeriveDeterministic(t *testing.T) {
	s := specs(func(s *window.WindowSpecs) {
		s.WindowType = window.Slider
		s.Grill = true
		s.Mesh = true
		s.Width = 71.5
	})
	a, b := Derive(s), Derive(s)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Derive is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestDeriveDoesNotMutate(t *testing.T) {
	s := specs(func(s *window.WindowSpecs) { s.Grill = true })
	before := s
	Derive(s)
	if s != before {
		t.Error("Derive mutated its input")
	}
}

func TestSliderWidthsAddUp(t *testing.T) {
	for _, width := range []float64{24, 36, 48, 60, 97.25} {
		m := Derive(specs(func(s *window.WindowSpecs) {
			s.WindowType = window.Slider
			s.Width = width
		}))
		panels := m.Parts(PartGlass)
		dividers := m.Parts(PartDivider)
		if len(panels) != 2 || len(dividers) != 1 {
			t.Fatalf("width %v: got %d panels and %d dividers", width, len(panels), len(dividers))
		}
		sum := panels[0].Size.X() + panels[1].Size.X() + dividers[0].Size.X()
		if !near(sum, m.InnerWidth()) {
			t.Errorf("width %v: panels + divider = %v, want %v", width, sum, m.InnerWidth())
		}
		if panels[0].Position.Z() == panels[1].Position.Z() {
			t.Errorf("width %v: sliding leaves share depth %v", width, panels[0].Position.Z())
		}
		if !near(dividers[0].Size.Y(), m.Bounds.Height) {
			t.Errorf("divider height = %v, want full height %v", dividers[0].Size.Y(), m.Bounds.Height)
		}
	}
}

func TestFixedPaneFillsInnerRectangle(t *testing.T) {
	m := Derive(specs(nil))
	panes := m.Parts(PartGlass)
	if len(panes) != 1 {
		t.Fatalf("got %d panes, want 1", len(panes))
	}
	p := panes[0]
	if !near(p.Size.X(), m.InnerWidth()) || !near(p.Size.Y(), m.InnerHeight()) {
		t.Errorf("pane size = %v, want (%v, %v)", p.Size, m.InnerWidth(), m.InnerHeight())
	}
	if p.Position != (Vec3{}) {
		t.Errorf("pane position = %v, want origin", p.Position)
	}
}

func TestBounds(t *testing.T) {
	m := Derive(specs(func(s *window.WindowSpecs) {
		s.Height = 60
		s.Width = 30
	}))
	if m.Bounds.Width != 2.5 || m.Bounds.Height != 5 || m.Bounds.Thickness != FrameThickness {
		t.Errorf("Bounds = %+v", m.Bounds)
	}
	top := m.Solids[0]
	if top.Name != "frame-top" || top.Position.Y() != 2.5 {
		t.Errorf("first solid = %+v, want frame-top at y=2.5", top)
	}
}

func TestGrillLayout(t *testing.T) {
	for _, wt := range []window.WindowType{window.Normal, window.Slider} {
		m := Derive(specs(func(s *window.WindowSpecs) {
			s.WindowType = wt
			s.Grill = true
		}))
		var horizontal, vertical []float64
		for _, bar := range m.Parts(PartGrill) {
			if bar.Position.Z() != GrillDepth {
				t.Errorf("%s: %s at z=%v, want %v", wt, bar.Name, bar.Position.Z(), GrillDepth)
			}
			if bar.Size.X() > bar.Size.Y() {
				horizontal = append(horizontal, bar.Position.Y())
			} else {
				vertical = append(vertical, bar.Position.X())
			}
		}
		h, w := m.Bounds.Height, m.Bounds.Width
		wantH := []float64{-h / 3, 0, h / 3}
		wantV := []float64{-w / 3, 0, w / 3}
		if len(horizontal) != 3 || len(vertical) != 3 {
			t.Fatalf("%s: got %d horizontal and %d vertical bars", wt, len(horizontal), len(vertical))
		}
		for i := range 3 {
			if !near(horizontal[i], wantH[i]) || !near(vertical[i], wantV[i]) {
				t.Errorf("%s: bar %d at (%v, %v), want (%v, %v)", wt, i, vertical[i], horizontal[i], wantV[i], wantH[i])
			}
		}
	}
}

func TestGrillToggle(t *testing.T) {
	on := Derive(specs(func(s *window.WindowSpecs) { s.Grill = true }))
	off := Derive(specs(func(s *window.WindowSpecs) { s.Grill = false }))
	if len(on.Solids)-len(off.Solids) != 6 {
		t.Errorf("grill adds %d solids, want 6", len(on.Solids)-len(off.Solids))
	}
	if off.Count(PartGrill) != 0 {
		t.Errorf("disabled grill left %d bars", off.Count(PartGrill))
	}
}

func TestMeshSmallerThanGlass(t *testing.T) {
	for _, wt := range []window.WindowType{window.Normal, window.Slider} {
		m := Derive(specs(func(s *window.WindowSpecs) {
			s.WindowType = wt
			s.Mesh = true
			s.Grill = true
		}))
		meshes := m.Parts(PartMesh)
		if len(meshes) != 1 {
			t.Fatalf("%s: got %d mesh overlays", wt, len(meshes))
		}
		mesh := meshes[0]
		if mesh.Material != MaterialAccent {
			t.Errorf("%s: mesh material = %s", wt, mesh.Material)
		}
		if mesh.Position.Z() <= GrillDepth {
			t.Errorf("%s: mesh at z=%v is not in front of the grill", wt, mesh.Position.Z())
		}

		// Glass extent across all panes.
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, g := range m.Parts(PartGlass) {
			if mesh.Size.Y() >= g.Size.Y() {
				t.Errorf("%s: mesh height %v not smaller than pane %v", wt, mesh.Size.Y(), g.Size.Y())
			}
			lo = math.Min(lo, g.Min().X())
			hi = math.Max(hi, g.Max().X())
		}
		if mesh.Size.X() >= hi-lo {
			t.Errorf("%s: mesh width %v not smaller than glazed span %v", wt, mesh.Size.X(), hi-lo)
		}
	}
}

func TestMaterials(t *testing.T) {
	m := Derive(specs(func(s *window.WindowSpecs) {
		s.WindowType = window.Slider
		s.Grill = true
		s.Mesh = true
	}))
	for _, s := range m.Solids {
		if s.Shape != ShapeBox {
			t.Errorf("%s: shape = %s", s.Name, s.Shape)
		}
		want := MaterialFrame
		switch s.Part {
		case PartGlass:
			want = MaterialGlass
		case PartMesh:
			want = MaterialAccent
		}
		if s.Material != want {
			t.Errorf("%s: material = %s, want %s", s.Name, s.Material, want)
		}
		if _, ok := Materials[s.Material]; !ok {
			t.Errorf("%s: no hints for material %s", s.Name, s.Material)
		}
	}
	if Materials[MaterialFrame].Transparent() {
		t.Error("frame material should be opaque")
	}
	if !Materials[MaterialGlass].Transparent() {
		t.Error("glass material should be transparent")
	}
}

func TestDeriveDegenerate(t *testing.T) {
	m := Derive(window.WindowSpecs{Height: math.NaN(), Width: 0})
	if len(m.Solids) != 5 {
		t.Errorf("len(Solids) = %d, want 5", len(m.Solids))
	}
	if !math.IsNaN(m.Bounds.Height) {
		t.Errorf("Bounds.Height = %v, want NaN", m.Bounds.Height)
	}
}

func TestModelJSON(t *testing.T) {
	m := Derive(specs(func(s *window.WindowSpecs) { s.Mesh = true }))
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded struct {
		Bounds    Bounds                     `json:"bounds"`
		Solids    []Solid                    `json:"solids"`
		Materials map[string]json.RawMessage `json:"materials"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Solids) != len(m.Solids) {
		t.Errorf("decoded %d solids, want %d", len(decoded.Solids), len(m.Solids))
	}
	for _, key := range []string{"frame", "glass", "accent"} {
		if _, ok := decoded.Materials[key]; !ok {
			t.Errorf("materials missing %q", key)
		}
	}
	if decoded.Bounds != m.Bounds {
		t.Errorf("bounds = %+v, want %+v", decoded.Bounds, m.Bounds)
	}
}
