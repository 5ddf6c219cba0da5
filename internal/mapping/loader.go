package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names of the base transcription table
const (
	ColumnIPA     = "IPA"
	ColumnToolkit = "Toolkit"
)

// LoadCSV reads a base table from a CSV file with IPA and Toolkit columns
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcription table: %w", err)
	}
	defer f.Close()

	t, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse transcription table %s: %w", path, err)
	}
	return t, nil
}

// ParseCSV reads a base table from r. The header row must name the IPA and
// Toolkit columns; any other columns are ignored. Rows with an empty IPA
// cell are skipped. A repeated key overwrites the earlier value in place.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	ipaCol, codeCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case ColumnIPA:
			ipaCol = i
		case ColumnToolkit:
			codeCol = i
		}
	}
	if ipaCol < 0 || codeCol < 0 {
		return nil, fmt.Errorf("header must contain %q and %q columns", ColumnIPA, ColumnToolkit)
	}

	t := NewTable()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if ipaCol >= len(record) || codeCol >= len(record) {
			continue
		}

		ipa := strings.TrimSpace(record[ipaCol])
		if ipa == "" {
			continue
		}
		t.Set(ipa, strings.TrimSpace(record[codeCol]))
	}

	return t, nil
}
