package window

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/lumideck/lumideck/internal/config"
)

// ============ INPUT DEVICES TAB ============

func (mw *MainWindow) createDevicesTab() fyne.CanvasObject {
	header := widget.NewLabel("Input Devices")
	header.TextStyle = fyne.TextStyle{Bold: true}

	subtitle := widget.NewLabel("Each device feeds one input universe, in list order")

	addBtn := widget.NewButtonWithIcon("Add Device", theme.ContentAddIcon(), func() {
		mw.cfg.AddInputDevice(config.NewInputDeviceConfig())
		mw.deviceList.Refresh()
	})
	toolbar := container.NewBorder(nil, nil, header, addBtn)

	headerName := widget.NewLabel("Name")
	headerName.TextStyle = fyne.TextStyle{Bold: true}
	headerPort := widget.NewLabel("Input Port")
	headerPort.TextStyle = fyne.TextStyle{Bold: true}
	headerProfile := widget.NewLabel("Profile")
	headerProfile.TextStyle = fyne.TextStyle{Bold: true}
	headerDelete := widget.NewLabel("")

	columnHeaders := container.NewGridWithColumns(4,
		headerName, headerPort, headerProfile, headerDelete,
	)

	mw.deviceList = widget.NewList(
		func() int { return len(mw.cfg.InputDevices) },
		func() fyne.CanvasObject { return mw.createDeviceRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { mw.updateDeviceRow(id, obj) },
	)

	saveBtn := widget.NewButtonWithIcon("Save & Activate", theme.DocumentSaveIcon(), func() {
		mw.saveAndActivate()
	})
	saveBtn.Importance = widget.HighImportance

	return container.NewBorder(
		container.NewVBox(toolbar, subtitle, widget.NewSeparator(), columnHeaders),
		container.NewVBox(widget.NewSeparator(), container.NewHBox(saveBtn)),
		nil, nil,
		mw.deviceList,
	)
}

func (mw *MainWindow) createDeviceRow() fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Device Name")

	portSelect := widget.NewSelect([]string{}, nil)
	portSelect.PlaceHolder = "Select..."

	profileEntry := widget.NewEntry()
	profileEntry.SetPlaceHolder("Profile name")

	removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)

	return container.NewGridWithColumns(4,
		nameEntry, portSelect, profileEntry, container.NewCenter(removeBtn),
	)
}

func (mw *MainWindow) updateDeviceRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(mw.cfg.InputDevices) {
		return
	}

	device := &mw.cfg.InputDevices[id]
	grid := obj.(*fyne.Container)

	nameEntry := grid.Objects[0].(*widget.Entry)
	portSelect := grid.Objects[1].(*widget.Select)
	profileEntry := grid.Objects[2].(*widget.Entry)
	removeBtn := grid.Objects[3].(*fyne.Container).Objects[0].(*widget.Button)

	portSelect.Options = append([]string{"(None)"}, mw.midiManager.ListInPorts()...)

	nameEntry.SetText(device.Name)
	nameEntry.OnChanged = func(s string) { device.Name = s }

	if device.InPort == "" {
		portSelect.SetSelected("(None)")
	} else {
		portSelect.SetSelected(device.InPort)
	}
	portSelect.OnChanged = func(s string) {
		if s == "(None)" {
			device.InPort = ""
		} else {
			device.InPort = s
		}
	}

	profileEntry.SetText(device.Profile)
	profileEntry.OnChanged = func(s string) { device.Profile = s }

	deviceID := device.ID
	removeBtn.OnTapped = func() {
		mw.deleteDeviceByID(deviceID)
	}
}

func (mw *MainWindow) deleteDeviceByID(id string) {
	for _, d := range mw.cfg.InputDevices {
		if d.ID == id {
			dialog.ShowConfirm("Delete Device", "Are you sure you want to delete '"+d.Name+"'?",
				func(confirm bool) {
					if confirm {
						mw.cfg.RemoveInputDevice(id)
						mw.deviceList.Refresh()
					}
				}, mw.window)
			return
		}
	}
}

func (mw *MainWindow) saveAndActivate() {
	if err := mw.cfg.Save(); err != nil {
		log.Printf("Failed to save devices: %v", err)
		dialog.ShowError(err, mw.window)
		return
	}

	// Universe layout may have changed; rebuild the document and restart
	// the listeners against it.
	mw.doc = mw.cfg.BuildDocument()
	mw.StartInputListeners()
	mw.matrixList.Refresh()

	dialog.ShowInformation("Saved", "Input devices saved and activated.", mw.window)
}
