package window

// =============================================================================
// Catalogues - values offered by the form pickers
// =============================================================================

// Profiles lists the frame systems in catalogue order.
var Profiles = []string{
	"50MM CASEMENT",
	"29MM SLIDER",
	"60MM CASEMENT",
	"38MM SLIDER",
}

// Designs lists the design labels in catalogue order.
var Designs = []string{
	"FIX GLASS",
	"SLIDING 2 SHUTTER SLIM I/L",
	"CASEMENT WINDOW",
	"SLIDING 3 SHUTTER",
}

// LockingTypes lists the locking hardware options.
var LockingTypes = []string{
	"Standard Lock",
	"Multi-Point Lock",
	"Push Lock",
}

// WindowTypes lists the opening styles.
var WindowTypes = []WindowType{Normal, Slider}

// ValidProfiles is the set of catalogued profile systems.
var ValidProfiles = setOf(Profiles)

// ValidDesigns is the set of catalogued designs.
var ValidDesigns = setOf(Designs)

// ValidLockingTypes is the set of catalogued locking types.
var ValidLockingTypes = setOf(LockingTypes)

// ValidWindowTypes is the set of accepted window types.
var ValidWindowTypes = map[WindowType]bool{
	Normal: true,
	Slider: true,
}

func setOf(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// Next returns the catalogue entry after current, wrapping around. An
// unknown current value selects the first entry.
func Next(values []string, current string) string {
	if len(values) == 0 {
		return current
	}
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// Prev returns the catalogue entry before current, wrapping around. An
// unknown current value selects the last entry.
func Prev(values []string, current string) string {
	if len(values) == 0 {
		return current
	}
	for i, v := range values {
		if v == current {
			return values[(i-1+len(values))%len(values)]
		}
	}
	return values[len(values)-1]
}
