package rgb

// Built-in animation presets. The order here is the order the UI offers
// them in, so keep it alphabetical.
var presetNames = []string{
	"Alternate",
	"Balls",
	"Colored Bars",
	"Fill",
	"Full Columns",
	"Full Rows",
	"Gradient Sweep",
	"One By One",
	"Plasma",
	"Random Single",
	"Stripes",
	"Waves",
}

// PresetNames returns the ordered list of animation preset names offered to
// matrix widgets. The returned slice is a copy.
func PresetNames() []string {
	out := make([]string, len(presetNames))
	copy(out, presetNames)
	return out
}

// IsPreset reports whether name is a known animation preset
func IsPreset(name string) bool {
	for _, n := range presetNames {
		if n == name {
			return true
		}
	}
	return false
}
