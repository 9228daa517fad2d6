package window

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/lumideck/lumideck/internal/config"
	"github.com/lumideck/lumideck/internal/engine"
	"github.com/lumideck/lumideck/internal/midi"
	"github.com/lumideck/lumideck/internal/vc"
)

// MainWindow manages the main application window
type MainWindow struct {
	window      fyne.Window
	app         fyne.App
	cfg         *config.Config
	doc         *engine.Document
	midiManager *midi.Manager
	onSave      func()

	// Console tab state
	matrices       []*vc.Matrix
	selectedMatrix int
	matrixList     *widget.List
	preview        *previewPane

	// Devices tab state
	deviceList *widget.List

	// MIDI input listeners
	midiStopFuncs []func()
}

// NewMainWindow creates the main application window
func NewMainWindow(app fyne.App, cfg *config.Config, midiManager *midi.Manager, onSave func()) *MainWindow {
	win := app.NewWindow("Lumideck")

	mw := &MainWindow{
		window:         win,
		app:            app,
		cfg:            cfg,
		doc:            cfg.BuildDocument(),
		midiManager:    midiManager,
		onSave:         onSave,
		selectedMatrix: -1,
	}
	for i := range cfg.Matrices {
		mw.matrices = append(mw.matrices, cfg.Matrices[i].ToMatrix())
	}

	mw.setupUI()

	win.Resize(fyne.NewSize(900, 620))
	win.CenterOnScreen()

	win.SetCloseIntercept(func() {
		win.Hide()
	})

	return mw
}

// Show brings the main window to the front
func (mw *MainWindow) Show() {
	mw.window.Show()
}

// Document returns the engine document currently in use
func (mw *MainWindow) Document() *engine.Document {
	return mw.doc
}

func (mw *MainWindow) setupUI() {
	consoleTab := container.NewTabItem("Console", mw.createConsoleTab())
	devicesTab := container.NewTabItem("Input Devices", mw.createDevicesTab())

	tabs := container.NewAppTabs(consoleTab, devicesTab)
	tabs.SetTabLocation(container.TabLocationTop)

	mw.window.SetContent(tabs)
}

// StartInputListeners begins decoding input from every configured device.
// Each device feeds the universe matching its position in the device list;
// events are re-dispatched on the UI goroutine because the document's input
// map is single-threaded.
func (mw *MainWindow) StartInputListeners() {
	mw.StopInputListeners()

	for i, device := range mw.cfg.InputDevices {
		if device.InPort == "" {
			continue
		}

		universe := uint32(i)
		stop, err := mw.midiManager.StartListening(device.InPort, func(portName string, channel uint32, value byte) {
			fyne.Do(func() {
				mw.doc.InputOutputMap().InjectInputValue(universe, channel, value)
			})
		})

		if err != nil {
			log.Printf("Failed to start listener for %s: %v", device.Name, err)
			continue
		}

		if stop != nil {
			mw.midiStopFuncs = append(mw.midiStopFuncs, stop)
			log.Printf("Started listening on %s", device.InPort)
		}
	}
}

// StopInputListeners stops all MIDI input listeners
func (mw *MainWindow) StopInputListeners() {
	for _, stop := range mw.midiStopFuncs {
		if stop != nil {
			stop()
		}
	}
	mw.midiStopFuncs = nil
}
