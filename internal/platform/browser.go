package platform

import (
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSFreeBSD = "freebsd"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	RundllCommand  = "rundll32"
	URLDLLHandler  = "url.dll,FileProtocolHandler"
)

// SystemOpener hands URLs to the user's default browser
type SystemOpener struct {
	app fyne.App
}

// NewSystemOpener creates an opener backed by the Fyne app. A nil app makes
// the opener use OS commands directly.
func NewSystemOpener(app fyne.App) *SystemOpener {
	return &SystemOpener{app: app}
}

// OpenURL opens u without waiting for the browser
func (o *SystemOpener) OpenURL(u *url.URL) error {
	if o.app != nil {
		err := o.app.OpenURL(u)
		if err == nil {
			return nil
		}
		log.Printf("Fyne failed to open %s, falling back to OS command: %v", u, err)
	}
	return OpenURLWithCommand(u.String())
}

// OpenURLWithCommand launches the OS URL handler for rawURL
func OpenURLWithCommand(rawURL string) error {
	name, args, err := browserCommand(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}

	// Start, not Run: the browser process is not tracked
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", rawURL, err)
	}
	return nil
}

// browserCommand returns the command that opens rawURL on goos
func browserCommand(goos, rawURL string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{rawURL}, nil
	case OSWindows:
		return RundllCommand, []string{URLDLLHandler, rawURL}, nil
	case OSLinux, OSFreeBSD:
		return XDGOpenCommand, []string{rawURL}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
