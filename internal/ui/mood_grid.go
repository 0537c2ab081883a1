package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/moodlists/internal/model"
)

// MoodGrid renders one button per mood in a fixed number of columns
type MoodGrid struct {
	buttons   []*widget.Button
	container *fyne.Container
}

// NewMoodGrid creates the mood buttons. Labels are capitalized for display only;
// onSelect receives the mood as stored in the table.
func NewMoodGrid(moods []string, columns int, onSelect func(mood string)) *MoodGrid {
	if columns < 1 {
		columns = 1
	}

	g := &MoodGrid{
		buttons: make([]*widget.Button, 0, len(moods)),
	}

	objects := make([]fyne.CanvasObject, 0, len(moods))
	for _, mood := range moods {
		m := mood // Capture for closure
		btn := widget.NewButton(model.Capitalize(m), func() {
			if onSelect != nil {
				onSelect(m)
			}
		})
		g.buttons = append(g.buttons, btn)
		objects = append(objects, btn)
	}

	g.container = container.NewGridWithColumns(columns, objects...)
	return g
}

// Container returns the grid container
func (g *MoodGrid) Container() *fyne.Container {
	return g.container
}

// Buttons returns the mood buttons in mood order
func (g *MoodGrid) Buttons() []*widget.Button {
	return g.buttons
}
