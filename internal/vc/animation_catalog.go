package vc

import (
	"sort"

	"github.com/lumideck/lumideck/internal/engine"
	"github.com/lumideck/lumideck/internal/rgb"
)

// AnimationCatalog returns the animation presets a matrix widget can use:
// the built-in presets plus the names of any Script functions the document
// holds, sorted alphabetically.
func AnimationCatalog(doc *engine.Document) []string {
	names := rgb.PresetNames()
	for _, f := range doc.FunctionsOfType(engine.FunctionScript) {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
