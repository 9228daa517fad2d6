package vc

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// hotkeyCapture is an entry that records the key combination pressed into
// it instead of accepting text.
type hotkeyCapture struct {
	widget.Entry
}

func newHotkeyCapture(seed string) *hotkeyCapture {
	h := &hotkeyCapture{}
	h.ExtendBaseWidget(h)
	h.SetText(seed)
	return h
}

func (h *hotkeyCapture) TypedRune(_ rune) {}

func (h *hotkeyCapture) TypedKey(ev *fyne.KeyEvent) {
	h.SetText(string(ev.Name))
}

func (h *hotkeyCapture) TypedShortcut(s fyne.Shortcut) {
	cs, ok := s.(*desktop.CustomShortcut)
	if !ok {
		return
	}
	h.SetText(modifierPrefix(cs.Modifier) + string(cs.KeyName))
}

func modifierPrefix(mod fyne.KeyModifier) string {
	prefix := ""
	if mod&fyne.KeyModifierControl != 0 {
		prefix += "Ctrl+"
	}
	if mod&fyne.KeyModifierAlt != 0 {
		prefix += "Alt+"
	}
	if mod&fyne.KeyModifierShift != 0 {
		prefix += "Shift+"
	}
	if mod&fyne.KeyModifierSuper != 0 {
		prefix += "Super+"
	}
	return prefix
}

// ShowHotkeyPicker opens a modal that captures one key combination, seeded
// with the current one. onPick runs only on confirm.
func ShowHotkeyPicker(parent fyne.Window, current string, onPick func(string)) {
	capture := newHotkeyCapture(current)

	content := container.NewVBox(
		widget.NewLabel("Press the key combination to assign:"),
		capture,
	)

	d := dialog.NewCustomConfirm("Assign Key", "OK", "Cancel", content,
		func(confirm bool) {
			if confirm {
				onPick(capture.Text)
			}
		}, parent)
	d.Resize(fyne.NewSize(320, 160))
	d.Show()
	parent.Canvas().Focus(capture)
}
