package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconLanguage = "🌐"
)

// List selection sentinel
const (
	noSelection = -1
)
