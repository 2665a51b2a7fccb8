package window

import "strings"

// Topology is the structural family of a window: a single fixed pane or two
// sliding leaves with a central divider.
type Topology int

const (
	Fixed Topology = iota
	Sliding
)

// String returns "fixed" or "slider".
func (t Topology) String() string {
	if t == Sliding {
		return "slider"
	}
	return "fixed"
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Signal names one input field that implied slider topology.
type Signal string

// Slider signals, in the order they are evaluated.
const (
	SignalWindowType Signal = "windowType"
	SignalDesign     Signal = "design"
	SignalProfile    Signal = "profileSystem"
)

// Substrings that mark a design or profile label as sliding.
const (
	designSlidingMarker = "SLIDING"
	profileSliderMarker = "SLIDER"
)

// Resolution is the outcome of [ResolveTopology].
type Resolution struct {
	// Model is the topology of the 3D model. Only WindowType drives it.
	Model Topology `json:"model"`
	// Schematic is the topology of the printed schematic. Any signal makes
	// it sliding.
	Schematic Topology `json:"schematic"`
	// Signals lists every field that implied slider topology.
	Signals []Signal `json:"signals,omitempty"`
}

// ResolveTopology inspects WindowType, Design and ProfileSystem once and
// returns the topology each view should draw. The substring checks are
// case-sensitive, matching the upper-case catalogue labels.
func ResolveTopology(s WindowSpecs) Resolution {
	var r Resolution
	if s.WindowType == Slider {
		r.Signals = append(r.Signals, SignalWindowType)
		r.Model = Sliding
	}
	if strings.Contains(s.Design, designSlidingMarker) {
		r.Signals = append(r.Signals, SignalDesign)
	}
	if strings.Contains(s.ProfileSystem, profileSliderMarker) {
		r.Signals = append(r.Signals, SignalProfile)
	}
	if len(r.Signals) > 0 {
		r.Schematic = Sliding
	}
	return r
}

// Conflicting reports whether the three signals disagree, i.e. at least one
// field implies a slider and at least one does not. A disagreement also
// means the 3D model and the schematic may show different topologies.
func (r Resolution) Conflicting() bool {
	return len(r.Signals) > 0 && len(r.Signals) < 3
}
