package platform

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ytget/moodlists/internal/model"
)

// Column names of the playlist data file
const (
	ColumnMood         = "mood"
	ColumnLanguage     = "language"
	ColumnPlaylistName = "playlist_name"
	ColumnLink         = "link"
)

// RequiredColumns lists the header columns every data file must carry
var RequiredColumns = []string{ColumnMood, ColumnLanguage, ColumnPlaylistName, ColumnLink}

const utf8BOM = "\ufeff"

// LoadPlaylists reads the playlist table from a CSV file.
// A missing file yields an empty table together with a MissingFile error so
// the caller can keep running; a missing column yields a SchemaError.
func LoadPlaylists(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.EmptyTable(), &model.Error{Kind: model.ErrorKindMissingFile, Path: path, Err: err}
		}
		return model.EmptyTable(), fmt.Errorf("failed to open playlists file: %w", err)
	}
	defer f.Close()

	table, err := ParsePlaylists(f, path)
	if err != nil {
		return model.EmptyTable(), err
	}

	log.Printf("Loaded %d playlists (%d moods) from %s", table.Len(), len(table.Moods()), path)
	return table, nil
}

// ParsePlaylists parses CSV data with a header row. Columns are matched by name,
// so their order does not matter. name is only used in error messages.
func ParsePlaylists(r io.Reader, name string) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &model.Error{Kind: model.ErrorKindSchema, Path: name, Err: errors.New("file has no header row")}
		}
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	index, err := columnIndex(header, name)
	if err != nil {
		return nil, err
	}

	var records []model.PlaylistRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		records = append(records, model.NewPlaylistRecord(
			field(row, index[ColumnMood]),
			field(row, index[ColumnLanguage]),
			field(row, index[ColumnPlaylistName]),
			field(row, index[ColumnLink]),
		))
	}

	return model.NewTable(records), nil
}

// columnIndex maps required column names to their position in header
func columnIndex(header []string, name string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		col = strings.ToLower(strings.TrimSpace(col))
		if _, dup := positions[col]; !dup {
			positions[col] = i
		}
	}

	index := make(map[string]int, len(RequiredColumns))
	for _, col := range RequiredColumns {
		pos, ok := positions[col]
		if !ok {
			return nil, &model.Error{Kind: model.ErrorKindSchema, Path: name, Column: col}
		}
		index[col] = pos
	}
	return index, nil
}

// field returns row[i], or "" for short rows
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
