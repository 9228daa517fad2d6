package vc

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/lumideck/lumideck/internal/engine"
)

// ShowFunctionPicker opens a single-selection modal over the document's
// functions of the given type. Every other function kind is filtered out.
// onPick runs only when the user confirms with a row selected.
func ShowFunctionPicker(parent fyne.Window, doc *engine.Document, ftype engine.FunctionType, onPick func(uint32)) {
	functions := doc.FunctionsOfType(ftype)
	selected := -1

	list := widget.NewList(
		func() int { return len(functions) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(functions[id].Name)
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		selected = id
	}

	content := container.NewBorder(
		widget.NewLabel("Select a function"), nil, nil, nil,
		list,
	)

	d := dialog.NewCustomConfirm("Function Selection", "OK", "Cancel", content,
		func(confirm bool) {
			if confirm && selected >= 0 && selected < len(functions) {
				onPick(functions[selected].ID)
			}
		}, parent)
	d.Resize(fyne.NewSize(360, 420))
	d.Show()
}
