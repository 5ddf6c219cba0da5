package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/espada/internal/diagnostics"
)

// Column names of the prepared pronunciation files
const (
	ColumnWord     = "word"
	ColumnPhonemes = "phonemes"
	ColumnIPA      = "mx_ipa"
	ColumnToolkit  = "toolkit_pron"
)

// ReadPronunciations reads a prepared CSV with word and mx_ipa columns.
// The phonemes column is optional.
func ReadPronunciations(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pronunciations: %w", err)
	}
	defer f.Close()

	rows, err := ParsePronunciations(f)
	if err != nil {
		return nil, fmt.Errorf("parse pronunciations %s: %w", path, err)
	}
	return rows, nil
}

// ParsePronunciations reads prepared rows from r
func ParsePronunciations(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := columnIndex(header)
	wordCol, okWord := cols[ColumnWord]
	ipaCol, okIPA := cols[ColumnIPA]
	if !okWord || !okIPA {
		return nil, fmt.Errorf("header must contain %q and %q columns", ColumnWord, ColumnIPA)
	}
	phonemesCol, hasPhonemes := cols[ColumnPhonemes]

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if wordCol >= len(record) || ipaCol >= len(record) {
			continue
		}

		row := Row{
			Word: strings.TrimSpace(record[wordCol]),
			IPA:  strings.TrimSpace(record[ipaCol]),
		}
		if hasPhonemes && phonemesCol < len(record) {
			row.Phonemes = record[phonemesCol]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// WritePronunciations writes prepared rows as word,phonemes,mx_ipa
func WritePronunciations(path string, rows []Row) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{r.Word, r.Phonemes, r.IPA})
	}
	return writeCSV(path, []string{ColumnWord, ColumnPhonemes, ColumnIPA}, records)
}

// WriteAll writes every row with its transcription; toolkit[i] belongs to
// rows[i] and is empty for rows that failed.
func WriteAll(path string, rows []Row, toolkit []string) error {
	if len(rows) != len(toolkit) {
		return fmt.Errorf("row count %d does not match transcription count %d", len(rows), len(toolkit))
	}

	records := make([][]string, 0, len(rows))
	for i, r := range rows {
		records = append(records, []string{r.Word, r.Phonemes, r.IPA, toolkit[i]})
	}
	return writeCSV(path, []string{ColumnWord, ColumnPhonemes, ColumnIPA, ColumnToolkit}, records)
}

// WriteValid writes the successful transcriptions as word,mx_ipa,toolkit_pron
func WriteValid(path string, valid []diagnostics.Transcription) error {
	records := make([][]string, 0, len(valid))
	for _, v := range valid {
		records = append(records, []string{v.Word, v.Pronunciation, v.Toolkit})
	}
	return writeCSV(path, []string{ColumnWord, ColumnIPA, ColumnToolkit}, records)
}

func writeCSV(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return file.Close()
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	return cols
}
