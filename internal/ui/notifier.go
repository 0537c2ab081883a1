package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/moodlists/internal/model"
)

// Notifier shows modal notices to the user
type Notifier interface {
	Notify(title, message string)
	NotifyError(err error)
}

// dialogNotifier shows notices as Fyne dialogs on a window
type dialogNotifier struct {
	window fyne.Window
}

// NewDialogNotifier creates a notifier bound to window
func NewDialogNotifier(window fyne.Window) Notifier {
	return &dialogNotifier{window: window}
}

func (n *dialogNotifier) Notify(title, message string) {
	dialog.ShowInformation(title, message, n.window)
}

func (n *dialogNotifier) NotifyError(err error) {
	dialog.ShowError(err, n.window)
}

// report shows err to the user. Classified conditions become localized
// information notices; anything else is shown as an error dialog.
func report(notifier Notifier, localization *Localization, err error) {
	if err == nil {
		return
	}
	log.Printf("Reporting to user: %v", err)

	var modelErr *model.Error
	if !errors.As(err, &modelErr) {
		notifier.NotifyError(err)
		return
	}

	switch modelErr.Kind {
	case model.ErrorKindMissingFile:
		notifier.Notify(
			localization.GetText(KeyFileMissingTitle),
			fmt.Sprintf(localization.GetText(KeyFileMissingMessage), modelErr.Path),
		)
	case model.ErrorKindNoSelection:
		notifier.Notify(localization.GetText(KeySelectOneTitle), localization.GetText(KeySelectOneMessage))
	case model.ErrorKindNoLinkFound:
		notifier.Notify(localization.GetText(KeyNoLinkTitle), localization.GetText(KeyNoLinkMessage))
	case model.ErrorKindNoLinksFound:
		notifier.Notify(localization.GetText(KeyNoLinksTitle), localization.GetText(KeyNoLinksMessage))
	default:
		notifier.NotifyError(err)
	}
}
