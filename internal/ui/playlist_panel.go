package ui

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/moodlists/internal/model"
)

// URLOpener hands a URL to the system's default handler
type URLOpener interface {
	OpenURL(u *url.URL) error
}

// PlaylistPanel shows the playlists of the chosen mood and opens their links.
// The displayed rows only change when a mood is shown; open actions never
// modify them.
type PlaylistPanel struct {
	table        *model.Table
	opener       URLOpener
	notifier     Notifier
	localization *Localization

	mood     string
	rows     []model.DisplayRow
	selected widget.ListItemID

	// UI components
	infoLabel       *widget.Label
	list            *widget.List
	openSelectedBtn *widget.Button
	openAllBtn      *widget.Button
	container       *fyne.Container
}

// NewPlaylistPanel creates the result list and its action buttons
func NewPlaylistPanel(table *model.Table, opener URLOpener, notifier Notifier, localization *Localization) *PlaylistPanel {
	p := &PlaylistPanel{
		table:        table,
		opener:       opener,
		notifier:     notifier,
		localization: localization,
		selected:     noSelection,
	}

	p.createUI()
	return p
}

func (p *PlaylistPanel) createUI() {
	p.infoLabel = widget.NewLabel(p.localization.GetText(KeyInfo))
	p.infoLabel.Wrapping = fyne.TextWrapWord

	p.list = widget.NewList(
		func() int {
			return len(p.rows)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(p.rows) {
				return
			}
			obj.(*widget.Label).SetText(p.rows[id].Text)
		},
	)
	p.list.OnSelected = func(id widget.ListItemID) {
		p.selected = id
	}
	p.list.OnUnselected = func(id widget.ListItemID) {
		if p.selected == id {
			p.selected = noSelection
		}
	}

	p.openSelectedBtn = widget.NewButton(p.localization.GetText(KeyOpenSelected), p.onOpenSelectedClick)
	p.openSelectedBtn.Importance = widget.HighImportance
	p.openAllBtn = widget.NewButton(p.localization.GetText(KeyOpenAll), p.onOpenAllClick)

	actions := container.NewVBox(
		container.NewCenter(p.openSelectedBtn),
		container.NewCenter(p.openAllBtn),
	)

	p.container = container.NewBorder(
		p.infoLabel, // top
		actions,     // bottom
		nil,         // left
		nil,         // right
		p.list,      // center - scrolls on its own
	)
}

// Container returns the panel container
func (p *PlaylistPanel) Container() *fyne.Container {
	return p.container
}

// ShowMood replaces the displayed rows with the playlists of mood
func (p *PlaylistPanel) ShowMood(mood string) {
	p.mood = strings.ToLower(mood)
	p.rows = p.table.Filter(p.mood)

	p.list.UnselectAll()
	p.selected = noSelection
	p.list.Refresh()

	log.Printf("Showing %d rows for mood %s", len(p.rows), p.mood)
}

// Mood returns the currently shown mood, or "" before any selection
func (p *PlaylistPanel) Mood() string {
	return p.mood
}

// Rows returns a copy of the displayed rows
func (p *PlaylistPanel) Rows() []model.DisplayRow {
	out := make([]model.DisplayRow, len(p.rows))
	copy(out, p.rows)
	return out
}

// Selected returns the selected row
func (p *PlaylistPanel) Selected() (model.DisplayRow, bool) {
	if p.selected < 0 || p.selected >= len(p.rows) {
		return model.DisplayRow{}, false
	}
	return p.rows[p.selected], true
}

// OpenSelected opens the link of the selected row
func (p *PlaylistPanel) OpenSelected() error {
	row, ok := p.Selected()
	if !ok {
		return &model.Error{Kind: model.ErrorKindNoSelection}
	}

	u, ok := parseLink(row.Link)
	if !ok {
		return &model.Error{Kind: model.ErrorKindNoLinkFound}
	}

	log.Printf("Opening URL: %s", u)
	if err := p.opener.OpenURL(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", u, err)
	}
	return nil
}

// OpenAllShown opens the link of every displayed row, in display order and
// without deduplication. It returns the number of URLs handed to the opener.
func (p *PlaylistPanel) OpenAllShown() (int, error) {
	var links []*url.URL
	for _, raw := range model.ExtractURLs(p.rows) {
		u, err := url.Parse(raw)
		if err != nil {
			log.Printf("Skipping unparsable link %q: %v", raw, err)
			continue
		}
		links = append(links, u)
	}

	if len(links) == 0 {
		return 0, &model.Error{Kind: model.ErrorKindNoLinksFound}
	}

	var errs []error
	for _, u := range links {
		log.Printf("Opening URL: %s", u)
		if err := p.opener.OpenURL(u); err != nil {
			errs = append(errs, fmt.Errorf("failed to open %s: %w", u, err))
		}
	}
	return len(links), errors.Join(errs...)
}

// refreshTexts updates texts after a language change
func (p *PlaylistPanel) refreshTexts() {
	p.infoLabel.SetText(p.localization.GetText(KeyInfo))
	p.openSelectedBtn.SetText(p.localization.GetText(KeyOpenSelected))
	p.openAllBtn.SetText(p.localization.GetText(KeyOpenAll))
}

func (p *PlaylistPanel) onOpenSelectedClick() {
	report(p.notifier, p.localization, p.OpenSelected())
}

func (p *PlaylistPanel) onOpenAllClick() {
	_, err := p.OpenAllShown()
	report(p.notifier, p.localization, err)
}

// parseLink extracts the URL from a raw link field
func parseLink(link string) (*url.URL, bool) {
	raw, ok := model.ExtractURL(link)
	if !ok {
		return nil, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}
