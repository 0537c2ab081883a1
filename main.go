package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/moodlists/internal/config"
	"github.com/ytget/moodlists/internal/model"
	"github.com/ytget/moodlists/internal/platform"
	"github.com/ytget/moodlists/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.moodlists"
)

func main() {
	fmt.Printf("Mood Playlists v%s starting...\n", version)

	settings, err := config.LoadSettings(config.SettingsFile)
	if err != nil {
		log.Printf("Warning: using default settings: %v", err)
	}

	// Load the table before any window exists so a schema error is visible
	table, loadErr := platform.LoadPlaylists(settings.DataFile)
	if model.IsFatal(loadErr) {
		log.Fatalf("Failed to load playlists: %v", loadErr)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(float32(settings.WindowWidth), float32(settings.WindowHeight)))
	myWindow.SetFixedSize(true)

	root := ui.NewRootUI(myWindow, settings, table, platform.NewSystemOpener(myApp))

	// Missing data file: keep running with no moods and tell the user
	if loadErr != nil {
		root.ReportError(loadErr)
	}

	myWindow.ShowAndRun()
}
