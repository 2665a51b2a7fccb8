package window

// WindowType is the opening style chosen on the form.
type WindowType string

// Window types offered by the form.
const (
	Normal WindowType = "Normal"
	Slider WindowType = "Slider"
)

// WindowSpecs describes one window. Lengths are in inches, Rate is currency
// per square foot. The optional text fields are printed on the quotation and
// replaced by fallback literals when empty.
type WindowSpecs struct {
	Height        float64    `json:"height" toml:"height"`
	Width         float64    `json:"width" toml:"width"`
	ProfileSystem string     `json:"profileSystem" toml:"profileSystem"`
	WindowType    WindowType `json:"windowType" toml:"windowType"`
	Design        string     `json:"design" toml:"design"`
	GlassType     string     `json:"glassType" toml:"glassType"`
	Mesh          bool       `json:"mesh" toml:"mesh"`
	Grill         bool       `json:"grill" toml:"grill"`
	LockingType   string     `json:"lockingType" toml:"lockingType"`
	Quantity      int        `json:"quantity" toml:"quantity"`
	Rate          float64    `json:"rate" toml:"rate"`

	Project       string `json:"project,omitempty" toml:"project,omitempty"`
	Finish        string `json:"finish,omitempty" toml:"finish,omitempty"`
	Location      string `json:"location,omitempty" toml:"location,omitempty"`
	Code          string `json:"code,omitempty" toml:"code,omitempty"`
	HardwareBrand string `json:"hardwareBrand,omitempty" toml:"hardwareBrand,omitempty"`
}

// Default returns the form's initial state: a 48" x 36" fixed casement at
// 150 per square foot.
func Default() WindowSpecs {
	return WindowSpecs{
		Height:        48,
		Width:         36,
		ProfileSystem: "50MM CASEMENT",
		WindowType:    Normal,
		Design:        "FIX GLASS",
		GlassType:     "5MM CLEAR GLASS",
		LockingType:   "Standard Lock",
		Quantity:      1,
		Rate:          150,
	}
}

// Merge returns s with every zero-valued field taken from base. Booleans are
// taken from s as-is since false is a meaningful choice.
func (s WindowSpecs) Merge(base WindowSpecs) WindowSpecs {
	if s.Height == 0 {
		s.Height = base.Height
	}
	if s.Width == 0 {
		s.Width = base.Width
	}
	if s.ProfileSystem == "" {
		s.ProfileSystem = base.ProfileSystem
	}
	if s.WindowType == "" {
		s.WindowType = base.WindowType
	}
	if s.Design == "" {
		s.Design = base.Design
	}
	if s.GlassType == "" {
		s.GlassType = base.GlassType
	}
	if s.LockingType == "" {
		s.LockingType = base.LockingType
	}
	if s.Quantity == 0 {
		s.Quantity = base.Quantity
	}
	if s.Rate == 0 {
		s.Rate = base.Rate
	}
	if s.Project == "" {
		s.Project = base.Project
	}
	if s.Finish == "" {
		s.Finish = base.Finish
	}
	if s.Location == "" {
		s.Location = base.Location
	}
	if s.Code == "" {
		s.Code = base.Code
	}
	if s.HardwareBrand == "" {
		s.HardwareBrand = base.HardwareBrand
	}
	return s
}
