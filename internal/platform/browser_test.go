package platform

import (
	"net/url"
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestBrowserCommand(t *testing.T) {
	const link = "https://open.spotify.com/playlist/1"

	tests := []struct {
		goos         string
		expectedName string
		expectedArgs []string
		expectError  bool
	}{
		{OSDarwin, OpenCommand, []string{link}, false},
		{OSWindows, RundllCommand, []string{URLDLLHandler, link}, false},
		{OSLinux, XDGOpenCommand, []string{link}, false},
		{OSFreeBSD, XDGOpenCommand, []string{link}, false},
		{"plan9", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := browserCommand(tt.goos, link)
			if (err != nil) != tt.expectError {
				t.Fatalf("browserCommand(%s) error = %v, expectError %v", tt.goos, err, tt.expectError)
			}
			if name != tt.expectedName {
				t.Errorf("expected command %q, got %q", tt.expectedName, name)
			}
			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected args %v, got %v", tt.expectedArgs, args)
			}
		})
	}
}

func TestSystemOpener_UsesApp(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	opener := NewSystemOpener(app)
	u, _ := url.Parse("https://open.spotify.com/playlist/1")

	if err := opener.OpenURL(u); err != nil {
		t.Errorf("OpenURL() error = %v", err)
	}
}
