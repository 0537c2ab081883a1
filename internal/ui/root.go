package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/moodlists/internal/config"
	"github.com/ytget/moodlists/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     config.Settings
	localization *Localization
	notifier     Notifier
	table        *model.Table

	headerLabel *widget.Label
	moodGrid    *MoodGrid
	panel       *PlaylistPanel
}

// NewRootUI creates and initializes the main UI over a loaded table
func NewRootUI(window fyne.Window, settings config.Settings, table *model.Table, opener URLOpener) *RootUI {
	return NewRootUIWithNotifier(window, settings, table, opener, NewDialogNotifier(window))
}

// NewRootUIWithNotifier is NewRootUI with a custom notifier
func NewRootUIWithNotifier(window fyne.Window, settings config.Settings, table *model.Table, opener URLOpener, notifier Notifier) *RootUI {
	if table == nil {
		table = model.EmptyTable()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.Language)

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		notifier:     notifier,
		table:        table,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI(opener)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(opener URLOpener) {
	ui.createMenu()

	ui.headerLabel = widget.NewLabel(ui.localization.GetText(KeyHeader))
	ui.headerLabel.Alignment = fyne.TextAlignCenter
	ui.headerLabel.SizeName = theme.SizeNameSubHeadingText

	ui.panel = NewPlaylistPanel(ui.table, opener, ui.notifier, ui.localization)
	ui.moodGrid = NewMoodGrid(ui.table.Moods(), ui.settings.GridColumns, ui.onMoodSelected)

	top := container.NewVBox(ui.headerLabel, ui.moodGrid.Container(), widget.NewSeparator())

	content := container.NewBorder(
		top,                  // top
		nil,                  // bottom
		nil,                  // left
		nil,                  // right
		ui.panel.Container(), // center - playlist list and actions
	)

	ui.window.SetContent(container.NewPadded(content))

	log.Printf("UI setup completed with %d mood buttons", len(ui.moodGrid.Buttons()))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange switches the UI language for this session
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.headerLabel.SetText(ui.localization.GetText(KeyHeader))
	ui.panel.refreshTexts()
}

// onMoodSelected shows the playlists of the tapped mood
func (ui *RootUI) onMoodSelected(mood string) {
	ui.panel.ShowMood(mood)
}

// ReportError shows a non-fatal condition, such as a missing data file, to the user
func (ui *RootUI) ReportError(err error) {
	report(ui.notifier, ui.localization, err)
}

// MoodGrid returns the mood selector
func (ui *RootUI) MoodGrid() *MoodGrid {
	return ui.moodGrid
}

// Panel returns the playlist panel
func (ui *RootUI) Panel() *PlaylistPanel {
	return ui.panel
}
