package model

// Package model defines domain data structures used across the app: playlist
// records, the read-only playlist table, rendered display rows, and the error
// kinds surfaced to the user. Values are built once at load time and never mutated.
