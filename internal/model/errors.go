package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies conditions reported to the user
type ErrorKind string

const (
	// ErrorKindMissingFile means the data file is absent; the app runs with an empty table
	ErrorKindMissingFile ErrorKind = "MissingFile"

	// ErrorKindSchema means a required column is missing; startup aborts
	ErrorKindSchema ErrorKind = "SchemaError"

	// ErrorKindNoSelection means "open selected" was used with nothing selected
	ErrorKindNoSelection ErrorKind = "NoSelection"

	// ErrorKindNoLinkFound means the selected row has no recognizable URL
	ErrorKindNoLinkFound ErrorKind = "NoLinkFound"

	// ErrorKindNoLinksFound means none of the displayed rows has a recognizable URL
	ErrorKindNoLinksFound ErrorKind = "NoLinksFound"
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	return string(k)
}

// IsFatal returns true if the condition must stop startup
func (k ErrorKind) IsFatal() bool {
	return k == ErrorKindSchema
}

// Sentinel errors for errors.Is comparisons
var (
	ErrMissingFile  = &Error{Kind: ErrorKindMissingFile}
	ErrSchema       = &Error{Kind: ErrorKindSchema}
	ErrNoSelection  = &Error{Kind: ErrorKindNoSelection}
	ErrNoLinkFound  = &Error{Kind: ErrorKindNoLinkFound}
	ErrNoLinksFound = &Error{Kind: ErrorKindNoLinksFound}
)

// Error is a classified application error
type Error struct {
	Kind   ErrorKind
	Path   string // data file path, if any
	Column string // missing column for schema errors
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindMissingFile:
		return fmt.Sprintf("%s not found", e.Path)
	case ErrorKindSchema:
		if e.Column != "" {
			return fmt.Sprintf("%s: missing required column %q", e.Path, e.Column)
		}
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Path, e.Err)
		}
		return fmt.Sprintf("%s: invalid schema", e.Path)
	case ErrorKindNoSelection:
		return "no playlist selected"
	case ErrorKindNoLinkFound:
		return "no link found in selected playlist"
	case ErrorKindNoLinksFound:
		return "no links found in shown playlists"
	}
	return string(e.Kind)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsFatal reports whether err must stop startup. Unclassified errors, such as
// an unreadable data file, are fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	kind := KindOf(err)
	if kind == "" {
		return true
	}
	return kind.IsFatal()
}

// KindOf returns the kind of err, or "" when err is not an *Error
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
