package vc

import (
	"fmt"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/lumideck/lumideck/internal/engine"
)

// ShowInputChannelPicker opens a modal over the document's input map. The
// user either taps a profiled channel or types a channel number directly.
// onPick runs only on confirm with a universe available.
func ShowInputChannelPicker(parent fyne.Window, ioMap *engine.InputOutputMap, onPick func(universe, channel uint32)) {
	universes := ioMap.Universes()
	if len(universes) == 0 {
		dialog.ShowInformation("No Input", "Configure an input device first.", parent)
		return
	}

	uniNames := make([]string, len(universes))
	for i, u := range universes {
		uniNames[i] = u.Name
	}

	selectedUniverse := 0
	channelEntry := widget.NewEntry()
	channelEntry.SetPlaceHolder("Channel number")

	// Named channels of the selected universe, sorted by channel
	var channels []uint32
	channelList := widget.NewList(
		func() int { return len(channels) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ch := channels[id]
			name := universes[selectedUniverse].Profile.Channels[ch]
			obj.(*widget.Label).SetText(fmt.Sprintf("%d: %s", ch+1, name))
		},
	)
	channelList.OnSelected = func(id widget.ListItemID) {
		channelEntry.SetText(strconv.FormatUint(uint64(channels[id]+1), 10))
	}

	reloadChannels := func() {
		channels = channels[:0]
		if p := universes[selectedUniverse].Profile; p != nil {
			for ch := range p.Channels {
				channels = append(channels, ch)
			}
			sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
		}
		channelList.UnselectAll()
		channelList.Refresh()
	}

	universeSelect := widget.NewSelect(uniNames, func(name string) {
		for i, n := range uniNames {
			if n == name {
				selectedUniverse = i
				break
			}
		}
		reloadChannels()
	})
	universeSelect.SetSelected(uniNames[0])

	content := container.NewBorder(
		container.NewVBox(
			widget.NewLabel("Universe"),
			universeSelect,
			widget.NewLabel("Channel"),
			channelEntry,
		),
		nil, nil, nil,
		channelList,
	)

	d := dialog.NewCustomConfirm("Select Input Channel", "OK", "Cancel", content,
		func(confirm bool) {
			if !confirm {
				return
			}
			ch, err := strconv.ParseUint(channelEntry.Text, 10, 32)
			if err != nil || ch == 0 {
				return
			}
			onPick(universes[selectedUniverse].ID, uint32(ch-1))
		}, parent)
	d.Resize(fyne.NewSize(380, 460))
	d.Show()
}
