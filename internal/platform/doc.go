package platform

// Package platform contains OS/platform integration glue: reading the playlist
// data file from disk and handing URLs to the system's default handler.
