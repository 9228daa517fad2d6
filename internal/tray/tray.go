package tray

import (
	_ "embed"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/lumideck/lumideck/internal/config"
	"github.com/lumideck/lumideck/internal/startup"
)

//go:embed icon-white.png
var iconWhiteData []byte

// Callbacks for tray menu actions
type Callbacks struct {
	OnOpen func()
	OnQuit func()
}

// Setup initializes the system tray using Fyne's built-in support
func Setup(app fyne.App, cfg *config.Config, callbacks Callbacks) {
	desk, ok := app.(desktop.App)
	if !ok {
		return
	}

	openItem := fyne.NewMenuItem("Open Lumideck", func() {
		if callbacks.OnOpen != nil {
			callbacks.OnOpen()
		}
	})

	startupItem := fyne.NewMenuItem("Open at Startup", nil)
	if cfg.OpenAtStartup {
		startupItem.Checked = true
	}

	quitItem := fyne.NewMenuItem("Quit", func() {
		if callbacks.OnQuit != nil {
			callbacks.OnQuit()
		}
	})

	menu := fyne.NewMenu("Lumideck",
		openItem,
		fyne.NewMenuItemSeparator(),
		startupItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	// Set the action after menu is created so we can refresh it
	startupItem.Action = func() {
		if startupItem.Checked {
			startupItem.Checked = false
			cfg.OpenAtStartup = false
			_ = startup.Disable()
		} else {
			startupItem.Checked = true
			cfg.OpenAtStartup = true
			_ = startup.Enable()
		}
		_ = cfg.Save()
		menu.Refresh()
	}

	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(fyne.NewStaticResource("icon.png", iconWhiteData))
}
