package vc

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lumideck/lumideck/internal/engine"
)

// InputNone is rendered in the universe/channel fields when a binding is
// absent or can no longer be resolved.
const InputNone = "None"

// NoFunctionText is the placeholder shown when no function is attached
const NoFunctionText = "No function"

// MatrixProperties holds the working copy of a matrix's configuration while
// its properties dialog is open. Every edit lands here; the matrix itself is
// only touched by Accept. Cancelling just drops the working copy.
type MatrixProperties struct {
	matrix *Matrix
	doc    *engine.Document

	caption        string
	function       uint32
	instantChanges bool
	sliderInput    engine.InputSource

	controls       []*MatrixControl
	lastAssignedID uint8
	selected       int // id of the selected control, -1 for none

	unsubSlider  func()
	unsubControl func()

	// Fired when an auto-detected input event lands, so the dialog can
	// re-render the binding fields. Nil callbacks are skipped.
	OnSliderInputChanged  func()
	OnControlInputChanged func()
}

// NewMatrixProperties snapshots the matrix's current configuration into a
// fresh working copy. matrix and doc must both be non-nil.
func NewMatrixProperties(matrix *Matrix, doc *engine.Document) *MatrixProperties {
	p := &MatrixProperties{
		matrix:         matrix,
		doc:            doc,
		caption:        matrix.Caption,
		function:       matrix.Function,
		instantChanges: matrix.InstantChanges,
		sliderInput:    matrix.InputSource,
		selected:       -1,
	}
	for _, c := range matrix.CustomControls() {
		p.controls = append(p.controls, c.Clone())
		if c.ID > p.lastAssignedID {
			p.lastAssignedID = c.ID
		}
	}
	sortControlsByID(p.controls)
	return p
}

// Caption returns the working display name
func (p *MatrixProperties) Caption() string {
	return p.caption
}

// SetCaption updates the working display name
func (p *MatrixProperties) SetCaption(caption string) {
	p.caption = caption
}

// InstantChanges returns the working instant-changes flag
func (p *MatrixProperties) InstantChanges() bool {
	return p.instantChanges
}

// SetInstantChanges updates the working instant-changes flag
func (p *MatrixProperties) SetInstantChanges(on bool) {
	p.instantChanges = on
}

// Function returns the working function id
func (p *MatrixProperties) Function() uint32 {
	return p.function
}

// FunctionName resolves the working function id to a display name, or the
// "No function" placeholder when nothing resolvable is attached.
func (p *MatrixProperties) FunctionName() string {
	if f := p.doc.Function(p.function); f != nil {
		return f.Name
	}
	return NoFunctionText
}

// SetFunction attaches a function to the working copy. When the caption
// still contains the matrix's own numeric id it is treated as the
// auto-generated placeholder and overwritten with the function's name.
// Known edge: a hand-typed caption that happens to contain those digits
// matches too.
func (p *MatrixProperties) SetFunction(fid uint32) {
	p.function = fid
	f := p.doc.Function(fid)
	if f == nil {
		return
	}
	if strings.Contains(strings.TrimSpace(p.caption), strconv.FormatUint(uint64(p.matrix.ID), 10)) {
		p.caption = f.Name
	}
}

// DetachFunction clears the working function id
func (p *MatrixProperties) DetachFunction() {
	p.function = engine.NoFunction
}

// ============ SLIDER EXTERNAL INPUT ============

// AutoDetectSliderInput subscribes to the document's live input stream while
// enabled; each received event fully replaces the slider binding. Toggling
// off unsubscribes. Enabling twice is a no-op.
func (p *MatrixProperties) AutoDetectSliderInput(enabled bool) {
	if enabled {
		if p.unsubSlider != nil {
			return
		}
		p.unsubSlider = p.doc.InputOutputMap().Subscribe(func(universe, channel uint32, _ byte) {
			p.sliderInputValueChanged(universe, channel)
		})
		return
	}
	if p.unsubSlider != nil {
		p.unsubSlider()
		p.unsubSlider = nil
	}
}

func (p *MatrixProperties) sliderInputValueChanged(universe, channel uint32) {
	p.sliderInput = engine.NewInputSource(universe, engine.FoldPage(p.matrix.Page, channel))
	if p.OnSliderInputChanged != nil {
		p.OnSliderInputChanged()
	}
}

// SetSliderInput stores a binding chosen through the input-channel picker.
// The picker returns a fully qualified channel, so no page folding here.
func (p *MatrixProperties) SetSliderInput(universe, channel uint32) {
	p.sliderInput = engine.NewInputSource(universe, channel)
}

// SliderInput returns the working slider binding
func (p *MatrixProperties) SliderInput() engine.InputSource {
	return p.sliderInput
}

// SliderInputNames resolves the slider binding to display names, falling
// back to the "None" placeholders.
func (p *MatrixProperties) SliderInputNames() (uniName, chName string) {
	uni, ch, ok := p.doc.InputOutputMap().SourceNames(p.sliderInput)
	if !ok {
		return InputNone, InputNone
	}
	return uni, ch
}

// ============ CUSTOM CONTROLS ============

// Controls returns the working control list, always sorted by ascending id
func (p *MatrixProperties) Controls() []*MatrixControl {
	return p.controls
}

func (p *MatrixProperties) nextControlID() uint8 {
	p.lastAssignedID++
	return p.lastAssignedID
}

func (p *MatrixProperties) appendControl(c *MatrixControl) {
	p.controls = append(p.controls, c)
	sortControlsByID(p.controls)
}

// AddStartColor appends a start-color control. A fully transparent color is
// what a cancelled picker reports, so it is discarded.
func (p *MatrixProperties) AddStartColor(col color.RGBA) {
	p.addColorControl(ControlStartColor, col)
}

// AddEndColor appends an end-color control
func (p *MatrixProperties) AddEndColor(col color.RGBA) {
	p.addColorControl(ControlEndColor, col)
}

func (p *MatrixProperties) addColorControl(kind ControlKind, col color.RGBA) {
	if col.A == 0 {
		return
	}
	p.appendControl(&MatrixControl{ID: p.nextControlID(), Kind: kind, Color: col})
}

// AddAnimation appends an animation-preset control; empty names (cancelled
// picker) are discarded.
func (p *MatrixProperties) AddAnimation(preset string) {
	if preset == "" {
		return
	}
	p.appendControl(&MatrixControl{ID: p.nextControlID(), Kind: ControlAnimation, Resource: preset})
}

// AddText appends a text-overlay control; whitespace-only text is discarded
func (p *MatrixProperties) AddText(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	p.appendControl(&MatrixControl{ID: p.nextControlID(), Kind: ControlText, Resource: text})
}

// RemoveSelected deletes the selected control from the working list and
// clears the selection. Removed ids are never reused. No-op without a
// selection.
func (p *MatrixProperties) RemoveSelected() {
	sel := p.SelectedControl()
	if sel == nil {
		return
	}
	for i, c := range p.controls {
		if c.ID == sel.ID {
			p.controls = append(p.controls[:i], p.controls[i+1:]...)
			break
		}
	}
	p.selected = -1
}

func (p *MatrixProperties) controlByID(id uint8) *MatrixControl {
	for _, c := range p.controls {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// SelectControl marks the control with the given id as selected. Unknown
// ids clear the selection.
func (p *MatrixProperties) SelectControl(id uint8) {
	if p.controlByID(id) == nil {
		p.selected = -1
		return
	}
	p.selected = int(id)
}

// ClearSelection deselects whatever control row was selected
func (p *MatrixProperties) ClearSelection() {
	p.selected = -1
}

// SelectedControl returns the selected control, or nil when no row is
// selected.
func (p *MatrixProperties) SelectedControl() *MatrixControl {
	if p.selected < 0 {
		return nil
	}
	return p.controlByID(uint8(p.selected))
}

// ============ PER-CONTROL EXTERNAL INPUT ============

// AutoDetectControlInput mirrors AutoDetectSliderInput but targets the
// selected control's binding.
func (p *MatrixProperties) AutoDetectControlInput(enabled bool) {
	if enabled {
		if p.unsubControl != nil {
			return
		}
		p.unsubControl = p.doc.InputOutputMap().Subscribe(func(universe, channel uint32, _ byte) {
			p.controlInputValueChanged(universe, channel)
		})
		return
	}
	if p.unsubControl != nil {
		p.unsubControl()
		p.unsubControl = nil
	}
}

func (p *MatrixProperties) controlInputValueChanged(universe, channel uint32) {
	c := p.SelectedControl()
	if c == nil {
		return
	}
	c.InputSource = engine.NewInputSource(universe, engine.FoldPage(p.matrix.Page, channel))
	if p.OnControlInputChanged != nil {
		p.OnControlInputChanged()
	}
}

// SetControlInput stores a picker-chosen binding on the selected control.
// No-op without a selection.
func (p *MatrixProperties) SetControlInput(universe, channel uint32) {
	c := p.SelectedControl()
	if c == nil {
		return
	}
	c.InputSource = engine.NewInputSource(universe, channel)
}

// ControlInputNames resolves the selected control's binding to display
// names, falling back to the "None" placeholders.
func (p *MatrixProperties) ControlInputNames() (uniName, chName string) {
	c := p.SelectedControl()
	if c == nil {
		return InputNone, InputNone
	}
	uni, ch, ok := p.doc.InputOutputMap().SourceNames(c.InputSource)
	if !ok {
		return InputNone, InputNone
	}
	return uni, ch
}

// AttachKey stores a key-combination on the selected control
func (p *MatrixProperties) AttachKey(sequence string) {
	if c := p.SelectedControl(); c != nil {
		c.KeySequence = sequence
	}
}

// DetachKey clears the selected control's key-combination
func (p *MatrixProperties) DetachKey() {
	if c := p.SelectedControl(); c != nil {
		c.KeySequence = ""
	}
}

// KeyText returns the selected control's key-combination, or "" without a
// selection.
func (p *MatrixProperties) KeyText() string {
	if c := p.SelectedControl(); c != nil {
		return c.KeySequence
	}
	return ""
}

// ============ COMMIT / TEARDOWN ============

// Accept writes the whole working copy back to the matrix in one pass and
// tears the editor down.
func (p *MatrixProperties) Accept() {
	m := p.matrix
	m.Caption = p.caption
	m.Function = p.function
	m.InstantChanges = p.instantChanges
	m.InputSource = p.sliderInput

	m.ResetCustomControls()
	for _, c := range p.controls {
		m.AddCustomControl(c.Clone())
	}

	p.Close()
}

// Close releases any still-active input subscription. Safe to call on every
// exit path, and more than once.
func (p *MatrixProperties) Close() {
	if p.unsubSlider != nil {
		p.unsubSlider()
		p.unsubSlider = nil
	}
	if p.unsubControl != nil {
		p.unsubControl()
		p.unsubControl = nil
	}
}
