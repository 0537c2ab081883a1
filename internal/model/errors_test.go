package model

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKind_IsFatal(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected bool
	}{
		{ErrorKindMissingFile, false},
		{ErrorKindSchema, true},
		{ErrorKindNoSelection, false},
		{ErrorKindNoLinkFound, false},
		{ErrorKindNoLinksFound, false},
	}

	for _, test := range tests {
		if result := test.kind.IsFatal(); result != test.expected {
			t.Errorf("ErrorKind(%s).IsFatal() = %v, expected %v", test.kind, result, test.expected)
		}
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{Kind: ErrorKindMissingFile, Path: "playlists.csv"}

	if !errors.Is(err, ErrMissingFile) {
		t.Error("expected errors.Is to match by kind")
	}
	if errors.Is(err, ErrSchema) {
		t.Error("errors of different kinds must not match")
	}

	wrapped := fmt.Errorf("startup: %w", err)
	if !errors.Is(wrapped, ErrMissingFile) {
		t.Error("expected wrapped error to match")
	}
	if KindOf(wrapped) != ErrorKindMissingFile {
		t.Errorf("KindOf() = %s, expected %s", KindOf(wrapped), ErrorKindMissingFile)
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("KindOf() should be empty for unclassified errors")
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: ErrorKindSchema, Path: "playlists.csv", Column: "link"}
	if !strings.Contains(err.Error(), `"link"`) {
		t.Errorf("schema error should name the column, got %q", err.Error())
	}

	missing := &Error{Kind: ErrorKindMissingFile, Path: "playlists.csv"}
	if missing.Error() != "playlists.csv not found" {
		t.Errorf("unexpected message: %q", missing.Error())
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"missing file", &Error{Kind: ErrorKindMissingFile, Path: "playlists.csv"}, false},
		{"wrapped missing file", fmt.Errorf("load: %w", &Error{Kind: ErrorKindMissingFile}), false},
		{"schema error", &Error{Kind: ErrorKindSchema, Column: "link"}, true},
		{"unclassified", errors.New("permission denied"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsFatal(tt.err); result != tt.expected {
				t.Errorf("IsFatal(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}
