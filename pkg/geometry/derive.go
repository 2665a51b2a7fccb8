package geometry

import (
	"fmt"

	"github.com/matzehuels/casement/pkg/window"
)

// Model constants in model units.
const (
	// InchesPerUnit scales spec inches down to model units.
	InchesPerUnit = 12.0
	// FrameThickness is the side length of every frame member's cross
	// section, independent of the profile system.
	FrameThickness = 0.2
	// GlassDepth is the thickness of a pane.
	GlassDepth = 0.02
	// SlideOffset separates the two sliding leaves along Z.
	SlideOffset = 0.05
	// GrillBar is the cross section of a grill bar.
	GrillBar = 0.05
	// GrillDepth places the grill in front of the glass.
	GrillDepth = 0.1
	// MeshThickness is the depth of the insect mesh panel.
	MeshThickness = 0.01
	// MeshDepth places the mesh in front of the grill.
	MeshDepth = 0.15
	// GrillBars is the number of bars per direction.
	GrillBars = 3
)

// Derive places the frame, glazing and overlay solids for s.
func Derive(s window.WindowSpecs) Model {
	w := s.Width / InchesPerUnit
	h := s.Height / InchesPerUnit
	const t = FrameThickness

	m := Model{Bounds: Bounds{Width: w, Height: h, Thickness: t}}
	add := func(name string, part Part, mat Material, size, pos Vec3) {
		m.Solids = append(m.Solids, Solid{
			Name:     name,
			Part:     part,
			Shape:    ShapeBox,
			Size:     size,
			Position: pos,
			Material: mat,
		})
	}

	add("frame-top", PartFrame, MaterialFrame, Vec3{w, t, t}, Vec3{0, h / 2, 0})
	add("frame-bottom", PartFrame, MaterialFrame, Vec3{w, t, t}, Vec3{0, -h / 2, 0})
	add("frame-left", PartFrame, MaterialFrame, Vec3{t, h, t}, Vec3{-w / 2, 0, 0})
	add("frame-right", PartFrame, MaterialFrame, Vec3{t, h, t}, Vec3{w / 2, 0, 0})

	if window.ResolveTopology(s).Model == window.Sliding {
		leaf := Vec3{w/2 - t, h - t, GlassDepth}
		add("panel-left", PartGlass, MaterialGlass, leaf, Vec3{-w / 4, 0, -SlideOffset})
		add("panel-right", PartGlass, MaterialGlass, leaf, Vec3{w / 4, 0, SlideOffset})
		add("divider", PartDivider, MaterialFrame, Vec3{t, h, t}, Vec3{0, 0, 0})
	} else {
		add("pane", PartGlass, MaterialGlass, Vec3{w - t, h - t, GlassDepth}, Vec3{0, 0, 0})
	}

	if s.Grill {
		for i := range GrillBars {
			off := float64(i - 1)
			add(fmt.Sprintf("grill-h%d", i+1), PartGrill, MaterialFrame,
				Vec3{w - t, GrillBar, GrillBar}, Vec3{0, off * h / 3, GrillDepth})
		}
		for i := range GrillBars {
			off := float64(i - 1)
			add(fmt.Sprintf("grill-v%d", i+1), PartGrill, MaterialFrame,
				Vec3{GrillBar, h - t, GrillBar}, Vec3{off * w / 3, 0, GrillDepth})
		}
	}

	if s.Mesh {
		add("mesh", PartMesh, MaterialAccent, Vec3{w - 2*t, h - 2*t, MeshThickness}, Vec3{0, 0, MeshDepth})
	}

	return m
}
