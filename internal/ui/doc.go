package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders one button per mood, the playlist list for the chosen mood, and the
// actions that hand playlist links to the browser. All UI strings are localized
// via Localization.
