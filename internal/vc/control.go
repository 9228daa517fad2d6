package vc

import (
	"image/color"
	"sort"

	"github.com/lumideck/lumideck/internal/engine"
)

// ControlKind identifies what a matrix custom control does
type ControlKind string

const (
	ControlStartColor ControlKind = "start_color"
	ControlEndColor   ControlKind = "end_color"
	ControlAnimation  ControlKind = "animation"
	ControlImage      ControlKind = "image" // reserved, no creation path yet
	ControlText       ControlKind = "text"
)

// Label returns the kind's display name for the controls list
func (k ControlKind) Label() string {
	switch k {
	case ControlStartColor:
		return "Start Color"
	case ControlEndColor:
		return "End Color"
	case ControlAnimation:
		return "Animation"
	case ControlText:
		return "Text"
	}
	return ""
}

// MatrixControl is one custom control attached to a matrix: a color stop,
// an animation choice or a text overlay, optionally bound to an external
// input channel and/or a keyboard shortcut.
type MatrixControl struct {
	ID          uint8              `json:"id"`
	Kind        ControlKind        `json:"kind"`
	Color       color.RGBA         `json:"color"`
	Resource    string             `json:"resource,omitempty"`
	InputSource engine.InputSource `json:"input_source"`
	KeySequence string             `json:"key_sequence,omitempty"`
}

// Clone returns an independent copy of the control
func (c *MatrixControl) Clone() *MatrixControl {
	dup := *c
	return &dup
}

func sortControlsByID(controls []*MatrixControl) {
	sort.Slice(controls, func(i, j int) bool { return controls[i].ID < controls[j].ID })
}
