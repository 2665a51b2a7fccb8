package geometry

// MaterialHints are the physically based parameters a renderer should use
// for a material class. Opacity below 1 means the material is transparent.
type MaterialHints struct {
	Color        string  `json:"color"`
	Opacity      float64 `json:"opacity"`
	Metalness    float64 `json:"metalness"`
	Roughness    float64 `json:"roughness"`
	Transmission float64 `json:"transmission,omitempty"`
}

// Transparent reports whether the material should be blended.
func (h MaterialHints) Transparent() bool { return h.Opacity < 1 }

// Materials holds the hints for every material class.
var Materials = map[Material]MaterialHints{
	MaterialFrame: {
		Color:     "#8b9197",
		Opacity:   1,
		Metalness: 0.8,
		Roughness: 0.2,
	},
	MaterialGlass: {
		Color:        "#88ccff",
		Opacity:      0.3,
		Metalness:    0.1,
		Roughness:    0.1,
		Transmission: 0.9,
	},
	MaterialAccent: {
		Color:     "#333333",
		Opacity:   0.2,
		Metalness: 0.5,
		Roughness: 0.8,
	},
}
