package model

import (
	"fmt"
	"sort"
	"strings"
)

// Default values applied to empty categorical columns
const (
	DefaultMood     = "other"
	DefaultLanguage = "english"
)

// Display formats
const (
	DisplayLineFormat      = "%s (%s)  - %s"
	NoPlaylistsFoundFormat = "No playlists found for mood: %s"
)

// PlaylistRecord represents a single curated playlist row
type PlaylistRecord struct {
	Mood         string `csv:"mood"`
	Language     string `csv:"language"`
	PlaylistName string `csv:"playlist_name"`
	Link         string `csv:"link"`
}

// NewPlaylistRecord creates a record with mood and language normalized
func NewPlaylistRecord(mood, language, name, link string) PlaylistRecord {
	return PlaylistRecord{
		Mood:         NormalizeCategory(mood, DefaultMood),
		Language:     NormalizeCategory(language, DefaultLanguage),
		PlaylistName: name,
		Link:         link,
	}
}

// NormalizeCategory lowercases value, falling back to def when it is blank
func NormalizeCategory(value, def string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	return strings.ToLower(value)
}

// DisplayLine returns the list entry shown for the record
func (r PlaylistRecord) DisplayLine() string {
	return fmt.Sprintf(DisplayLineFormat, r.PlaylistName, Capitalize(r.Language), r.Link)
}

// DisplayRow is a rendered list entry. Link holds the raw link field of the
// source record so actions never re-parse the formatted Text.
type DisplayRow struct {
	Text        string
	Link        string
	Placeholder bool // stands in for an empty result
}

// Table is the in-memory playlist dataset. It is built once and read-only afterwards.
type Table struct {
	records []PlaylistRecord
	moods   []string
}

// NewTable creates a table over records in file order
func NewTable(records []PlaylistRecord) *Table {
	owned := make([]PlaylistRecord, len(records))
	copy(owned, records)

	return &Table{
		records: owned,
		moods:   distinctMoods(owned),
	}
}

// EmptyTable returns a table with no records
func EmptyTable() *Table {
	return NewTable(nil)
}

// Len returns the number of records
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of all records in file order
func (t *Table) Records() []PlaylistRecord {
	if t == nil {
		return nil
	}
	out := make([]PlaylistRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Moods returns the sorted set of distinct moods
func (t *Table) Moods() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.moods))
	copy(out, t.moods)
	return out
}

// ByMood returns the records whose mood matches, preserving file order
func (t *Table) ByMood(mood string) []PlaylistRecord {
	if t == nil {
		return nil
	}

	mood = strings.ToLower(mood)
	var matched []PlaylistRecord
	for _, r := range t.records {
		if strings.ToLower(r.Mood) == mood {
			matched = append(matched, r)
		}
	}
	return matched
}

// Filter renders the rows displayed for mood. An empty result yields a single
// placeholder row naming the mood.
func (t *Table) Filter(mood string) []DisplayRow {
	mood = strings.ToLower(mood)

	matched := t.ByMood(mood)
	if len(matched) == 0 {
		return []DisplayRow{{Text: fmt.Sprintf(NoPlaylistsFoundFormat, mood), Placeholder: true}}
	}

	rows := make([]DisplayRow, 0, len(matched))
	for _, r := range matched {
		rows = append(rows, DisplayRow{Text: r.DisplayLine(), Link: r.Link})
	}
	return rows
}

func distinctMoods(records []PlaylistRecord) []string {
	seen := make(map[string]struct{})
	moods := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Mood]; ok {
			continue
		}
		seen[r.Mood] = struct{}{}
		moods = append(moods, r.Mood)
	}
	sort.Strings(moods)
	return moods
}
