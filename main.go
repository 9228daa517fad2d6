package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/lumideck/lumideck/internal/config"
	"github.com/lumideck/lumideck/internal/midi"
	"github.com/lumideck/lumideck/internal/tray"
	"github.com/lumideck/lumideck/internal/window"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	midiManager := midi.NewManager()
	defer midiManager.Close()

	fyneApp := app.NewWithID("com.lumideck.lumideck")

	mainWindow := window.NewMainWindow(fyneApp, cfg, midiManager, func() {
		// Called when the console is saved
	})

	tray.Setup(fyneApp, cfg, tray.Callbacks{
		OnOpen: func() {
			mainWindow.Show()
		},
		OnQuit: func() {
			fyneApp.Quit()
		},
	})

	mainWindow.StartInputListeners()

	// Show window if first launch, otherwise run in background
	if !cfg.FirstLaunchCompleted {
		cfg.FirstLaunchCompleted = true
		if err := cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		mainWindow.Show()
	}

	fyneApp.Run()
}
