package vc

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/lumideck/lumideck/internal/engine"
	"github.com/lumideck/lumideck/internal/rgb"
)

// matrixPropertiesDialog wires the working copy to Fyne widgets. All edits
// go through the MatrixProperties core; widgets only render its state.
type matrixPropertiesDialog struct {
	props  *MatrixProperties
	doc    *engine.Document
	parent fyne.Window

	nameEntry     *widget.Entry
	functionEntry *widget.Entry
	instantCheck  *widget.Check

	sliderUniverseEntry *widget.Entry
	sliderChannelEntry  *widget.Entry

	controlsList         *widget.List
	controlUniverseEntry *widget.Entry
	controlChannelEntry  *widget.Entry
	keyEntry             *widget.Entry
}

// ShowMatrixProperties opens the modal properties editor for a matrix.
// onAccept runs after a confirmed dialog has written the working copy back
// to the matrix; cancelling or closing leaves the matrix untouched.
func ShowMatrixProperties(parent fyne.Window, matrix *Matrix, doc *engine.Document, onAccept func()) {
	d := &matrixPropertiesDialog{
		props:  NewMatrixProperties(matrix, doc),
		doc:    doc,
		parent: parent,
	}

	content := d.buildContent()

	dlg := dialog.NewCustomConfirm("Matrix Properties", "OK", "Cancel", content,
		func(confirm bool) {
			if confirm {
				d.props.Accept()
				if onAccept != nil {
					onAccept()
				}
				return
			}
			d.props.Close()
		}, parent)
	dlg.Resize(fyne.NewSize(520, 640))
	dlg.Show()
}

func (d *matrixPropertiesDialog) buildContent() fyne.CanvasObject {
	p := d.props

	// Name and function attachment
	d.nameEntry = widget.NewEntry()
	d.nameEntry.SetText(p.Caption())
	d.nameEntry.OnChanged = func(s string) { p.SetCaption(s) }

	d.functionEntry = widget.NewEntry()
	d.functionEntry.SetText(p.FunctionName())
	d.functionEntry.Disable()

	attachBtn := widget.NewButtonWithIcon("", theme.SearchIcon(), func() {
		ShowFunctionPicker(d.parent, d.doc, engine.FunctionRGBMatrix, func(fid uint32) {
			p.SetFunction(fid)
			d.functionEntry.SetText(p.FunctionName())
			d.nameEntry.SetText(p.Caption())
		})
	})
	detachBtn := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		p.DetachFunction()
		d.functionEntry.SetText(p.FunctionName())
	})

	d.instantCheck = widget.NewCheck("Apply changes instantly", func(on bool) {
		p.SetInstantChanges(on)
	})
	d.instantCheck.SetChecked(p.InstantChanges())

	// Slider external input
	d.sliderUniverseEntry = widget.NewEntry()
	d.sliderUniverseEntry.Disable()
	d.sliderChannelEntry = widget.NewEntry()
	d.sliderChannelEntry.Disable()
	d.renderSliderInput()
	p.OnSliderInputChanged = d.renderSliderInput

	sliderAutoDetect := widget.NewCheck("Auto detect", func(on bool) {
		p.AutoDetectSliderInput(on)
	})
	sliderChoose := widget.NewButtonWithIcon("Choose...", theme.SearchIcon(), func() {
		ShowInputChannelPicker(d.parent, d.doc.InputOutputMap(), func(universe, channel uint32) {
			p.SetSliderInput(universe, channel)
			d.renderSliderInput()
		})
	})

	// Custom controls
	d.controlsList = widget.NewList(
		func() int { return len(p.Controls()) },
		func() fyne.CanvasObject { return d.createControlRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { d.updateControlRow(id, obj) },
	)
	d.controlsList.OnSelected = func(id widget.ListItemID) {
		controls := p.Controls()
		if id >= len(controls) {
			return
		}
		p.SelectControl(controls[id].ID)
		d.renderControlInput()
		d.keyEntry.SetText(p.KeyText())
	}

	addStartBtn := widget.NewButtonWithIcon("Start Color", theme.ContentAddIcon(), func() {
		d.pickColor(p.AddStartColor)
	})
	addEndBtn := widget.NewButtonWithIcon("End Color", theme.ContentAddIcon(), func() {
		d.pickColor(p.AddEndColor)
	})
	addAnimationBtn := widget.NewButtonWithIcon("Animation", theme.ContentAddIcon(), func() {
		d.pickAnimation()
	})
	addTextBtn := widget.NewButtonWithIcon("Text", theme.ContentAddIcon(), func() {
		d.pickText()
	})
	removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		p.RemoveSelected()
		d.refreshControls()
	})

	// Per-control external input and key binding
	d.controlUniverseEntry = widget.NewEntry()
	d.controlUniverseEntry.Disable()
	d.controlChannelEntry = widget.NewEntry()
	d.controlChannelEntry.Disable()
	d.renderControlInput()
	p.OnControlInputChanged = d.renderControlInput

	controlAutoDetect := widget.NewCheck("Auto detect", func(on bool) {
		p.AutoDetectControlInput(on)
	})
	controlChoose := widget.NewButtonWithIcon("Choose...", theme.SearchIcon(), func() {
		ShowInputChannelPicker(d.parent, d.doc.InputOutputMap(), func(universe, channel uint32) {
			p.SetControlInput(universe, channel)
			d.renderControlInput()
		})
	})

	d.keyEntry = widget.NewEntry()
	d.keyEntry.Disable()
	attachKeyBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if p.SelectedControl() == nil {
			return
		}
		ShowHotkeyPicker(d.parent, p.KeyText(), func(seq string) {
			p.AttachKey(seq)
			d.keyEntry.SetText(p.KeyText())
		})
	})
	detachKeyBtn := widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		p.DetachKey()
		d.keyEntry.SetText(p.KeyText())
	})

	top := container.NewVBox(
		widget.NewLabel("Name"),
		d.nameEntry,
		widget.NewLabel("Function"),
		container.NewBorder(nil, nil, nil, container.NewHBox(attachBtn, detachBtn), d.functionEntry),
		d.instantCheck,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Slider External Input", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, d.sliderUniverseEntry, d.sliderChannelEntry),
		container.NewHBox(sliderAutoDetect, sliderChoose),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Custom Controls", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(addStartBtn, addEndBtn, addAnimationBtn, addTextBtn, removeBtn),
	)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Control External Input", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, d.controlUniverseEntry, d.controlChannelEntry),
		container.NewHBox(controlAutoDetect, controlChoose),
		widget.NewLabel("Key binding"),
		container.NewBorder(nil, nil, nil, container.NewHBox(attachKeyBtn, detachKeyBtn), d.keyEntry),
	)

	return container.NewBorder(top, bottom, nil, nil, d.controlsList)
}

func (d *matrixPropertiesDialog) createControlRow() fyne.CanvasObject {
	icon := widget.NewIcon(theme.ColorPaletteIcon())
	kindLabel := widget.NewLabel("")

	swatch := canvas.NewRectangle(color.Transparent)
	swatch.SetMinSize(fyne.NewSize(18, 18))
	valueLabel := widget.NewLabel("")

	return container.NewGridWithColumns(2,
		container.NewHBox(icon, kindLabel),
		container.NewHBox(swatch, valueLabel),
	)
}

func (d *matrixPropertiesDialog) updateControlRow(id widget.ListItemID, obj fyne.CanvasObject) {
	controls := d.props.Controls()
	if id >= len(controls) {
		return
	}
	ctl := controls[id]

	row := obj.(*fyne.Container)
	left := row.Objects[0].(*fyne.Container)
	right := row.Objects[1].(*fyne.Container)
	icon := left.Objects[0].(*widget.Icon)
	kindLabel := left.Objects[1].(*widget.Label)
	swatch := right.Objects[0].(*canvas.Rectangle)
	valueLabel := right.Objects[1].(*widget.Label)

	kindLabel.SetText(ctl.Kind.Label())
	icon.SetResource(controlIcon(ctl.Kind))
	swatch.FillColor = color.Transparent

	switch ctl.Kind {
	case ControlStartColor, ControlEndColor:
		swatch.FillColor = ctl.Color
		valueLabel.SetText(rgb.HexName(ctl.Color))
	case ControlAnimation, ControlText:
		valueLabel.SetText(ctl.Resource)
	default:
		// Image is reserved: no value
		valueLabel.SetText("")
	}
	swatch.Refresh()
}

// controlIcon maps a control kind to its row icon. Reserved kinds render
// no icon, which also wipes a recycled row's previous one.
func controlIcon(kind ControlKind) fyne.Resource {
	switch kind {
	case ControlStartColor, ControlEndColor:
		return theme.ColorPaletteIcon()
	case ControlAnimation:
		return theme.MediaPlayIcon()
	case ControlText:
		return theme.DocumentIcon()
	}
	return nil
}

// refreshControls re-renders the list after a structural change. The
// selection does not survive, same as rebuilding the tree did.
func (d *matrixPropertiesDialog) refreshControls() {
	d.props.ClearSelection()
	d.controlsList.UnselectAll()
	d.controlsList.Refresh()
	d.renderControlInput()
	d.keyEntry.SetText(d.props.KeyText())
}

func (d *matrixPropertiesDialog) renderSliderInput() {
	uni, ch := d.props.SliderInputNames()
	d.sliderUniverseEntry.SetText(uni)
	d.sliderChannelEntry.SetText(ch)
}

func (d *matrixPropertiesDialog) renderControlInput() {
	uni, ch := d.props.ControlInputNames()
	d.controlUniverseEntry.SetText(uni)
	d.controlChannelEntry.SetText(ch)
}

func (d *matrixPropertiesDialog) pickColor(add func(color.RGBA)) {
	picker := dialog.NewColorPicker("Select Color", "", func(c color.Color) {
		r, g, b, a := c.RGBA()
		add(color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
		d.refreshControls()
	}, d.parent)
	picker.Advanced = true
	picker.Show()
}

func (d *matrixPropertiesDialog) pickAnimation() {
	presets := AnimationCatalog(d.doc)
	radio := widget.NewRadioGroup(presets, nil)

	dialog.ShowCustomConfirm("Select an animation preset", "OK", "Cancel",
		container.NewVScroll(radio),
		func(confirm bool) {
			if confirm {
				d.props.AddAnimation(radio.Selected)
				d.refreshControls()
			}
		}, d.parent)
}

func (d *matrixPropertiesDialog) pickText() {
	entry := widget.NewEntry()
	entry.SetText("Lumideck")

	dialog.ShowCustomConfirm("Enter a text", "OK", "Cancel",
		container.NewVBox(widget.NewLabel("Text"), entry),
		func(confirm bool) {
			if confirm {
				d.props.AddText(entry.Text)
				d.refreshControls()
			}
		}, d.parent)
}
