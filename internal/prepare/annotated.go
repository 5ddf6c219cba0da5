package prepare

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names of the annotated dictionary parts
const (
	ColumnEntry    = "Entry"
	ColumnMainBase = "MainBase"
	ColumnMX       = "MX"
)

// excludedMX marks entries not used in Mexican Spanish
const excludedMX = "N"

// Entry is one usable row of the annotated dictionary
type Entry struct {
	Word     string
	Phonemes string
}

// ReadAnnotated reads and concatenates annotated dictionary parts in the
// given order, dropping entries marked as not used in Mexico.
func ReadAnnotated(paths ...string) ([]Entry, error) {
	var entries []Entry
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open annotated dictionary: %w", err)
		}

		part, err := parseAnnotated(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse annotated dictionary %s: %w", path, err)
		}
		entries = append(entries, part...)
	}
	return entries, nil
}

func parseAnnotated(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	entryCol, baseCol, mxCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case ColumnEntry:
			entryCol = i
		case ColumnMainBase:
			baseCol = i
		case ColumnMX:
			mxCol = i
		}
	}
	if entryCol < 0 || baseCol < 0 || mxCol < 0 {
		return nil, fmt.Errorf("header must contain %q, %q and %q columns", ColumnEntry, ColumnMainBase, ColumnMX)
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if cell(record, mxCol) == excludedMX {
			continue
		}
		word := cell(record, entryCol)
		if word == "" {
			continue
		}

		entries = append(entries, Entry{
			Word:     word,
			Phonemes: strings.Join(strings.Fields(cell(record, baseCol)), " "),
		})
	}

	return entries, nil
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
