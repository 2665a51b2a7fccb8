package geometry

import "encoding/json"

// Vec3 is an (x, y, z) triple. For sizes it is (width, height, depth).
type Vec3 [3]float64

// X returns the first component.
func (v Vec3) X() float64 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float64 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float64 { return v[2] }

// Shape is the primitive a solid is drawn with. Only boxes are emitted.
type Shape string

// ShapeBox is an axis-aligned box centered on its position.
const ShapeBox Shape = "box"

// Part is the structural role of a solid.
type Part string

// Structural roles.
const (
	PartFrame   Part = "frame"
	PartDivider Part = "divider"
	PartGlass   Part = "glass"
	PartGrill   Part = "grill"
	PartMesh    Part = "mesh"
)

// Material is the material class a renderer paints a solid with.
type Material string

// Material classes.
const (
	MaterialFrame  Material = "frame"
	MaterialGlass  Material = "glass"
	MaterialAccent Material = "accent"
)

// Solid is one positioned box.
type Solid struct {
	Name     string   `json:"name"`
	Part     Part     `json:"part"`
	Shape    Shape    `json:"shape"`
	Size     Vec3     `json:"size"`
	Position Vec3     `json:"position"`
	Material Material `json:"material"`
}

// Min returns the corner with the smallest coordinates.
func (s Solid) Min() Vec3 {
	return Vec3{
		s.Position[0] - s.Size[0]/2,
		s.Position[1] - s.Size[1]/2,
		s.Position[2] - s.Size[2]/2,
	}
}

// Max returns the corner with the largest coordinates.
func (s Solid) Max() Vec3 {
	return Vec3{
		s.Position[0] + s.Size[0]/2,
		s.Position[1] + s.Size[1]/2,
		s.Position[2] + s.Size[2]/2,
	}
}

// Bounds describes the window rectangle the solids were derived from.
type Bounds struct {
	Width     float64 `json:"width"`     // W
	Height    float64 `json:"height"`    // H
	Thickness float64 `json:"thickness"` // T
}

// Model is the derived 3D window.
type Model struct {
	Bounds Bounds  `json:"bounds"`
	Solids []Solid `json:"solids"`
}

// InnerWidth is the width between the frame members' centerlines, W - T.
// A fixed pane is exactly this wide; two sliding leaves plus the divider
// add up to it.
func (m Model) InnerWidth() float64 { return m.Bounds.Width - m.Bounds.Thickness }

// InnerHeight is H - T.
func (m Model) InnerHeight() float64 { return m.Bounds.Height - m.Bounds.Thickness }

// Count returns how many solids play the given part.
func (m Model) Count(p Part) int {
	n := 0
	for _, s := range m.Solids {
		if s.Part == p {
			n++
		}
	}
	return n
}

// Parts returns the solids playing the given part, in emission order.
func (m Model) Parts(p Part) []Solid {
	var out []Solid
	for _, s := range m.Solids {
		if s.Part == p {
			out = append(out, s)
		}
	}
	return out
}

// MarshalJSON adds the material hints so a renderer needs nothing else.
func (m Model) MarshalJSON() ([]byte, error) {
	type plain Model
	return json.Marshal(struct {
		plain
		Materials map[Material]MaterialHints `json:"materials"`
	}{plain(m), Materials})
}
