package vc

import (
	"fmt"

	"github.com/lumideck/lumideck/internal/engine"
)

// Matrix is a virtual-console widget producing RGB pixel output through an
// attached RGB-matrix function. The properties editor works on copies of its
// state and writes back through the setters only on accept.
type Matrix struct {
	ID             uint32
	Caption        string
	Function       uint32
	InstantChanges bool
	InputSource    engine.InputSource
	Page           int

	controls []*MatrixControl
}

// NewMatrix creates a matrix widget with the auto-generated placeholder
// caption ("Matrix <id>") and nothing attached.
func NewMatrix(id uint32) *Matrix {
	return &Matrix{
		ID:       id,
		Caption:  fmt.Sprintf("Matrix %d", id),
		Function: engine.NoFunction,
	}
}

// CustomControls returns the matrix's control list in stored order
func (m *Matrix) CustomControls() []*MatrixControl {
	return m.controls
}

// ResetCustomControls drops the entire control list
func (m *Matrix) ResetCustomControls() {
	m.controls = nil
}

// AddCustomControl appends one control to the list
func (m *Matrix) AddCustomControl(c *MatrixControl) {
	m.controls = append(m.controls, c)
}
