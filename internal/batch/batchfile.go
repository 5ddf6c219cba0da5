package batch

import (
	"fmt"
	"os"
	"strings"
)

// Row is one word with its IPA pronunciation
type Row struct {
	Word string
	// Phonemes is the dictionary's own phoneme sequence, space separated.
	// It is carried through to the output untouched.
	Phonemes string
	IPA      string
}

// ReadBatchFile reads pronunciations from a text file, one per line.
// Supports formats:
// - With word: "casa = kasa"
// - Pronunciation only: "kasa" (the pronunciation doubles as the word)
func ReadBatchFile(filename string) ([]Row, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var rows []Row
	for _, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if word, ipa, ok := strings.Cut(line, "="); ok {
			word = strings.TrimSpace(word)
			ipa = strings.TrimSpace(ipa)
			// Ignore lines with an empty side
			if word != "" && ipa != "" {
				rows = append(rows, Row{Word: word, IPA: ipa})
			}
			continue
		}

		rows = append(rows, Row{Word: line, IPA: line})
	}

	return rows, nil
}

// splitLines splits a string by newlines, dropping carriage returns
func splitLines(s string) []string {
	var lines []string
	var current strings.Builder
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current.String())
			current.Reset()
		} else if r != '\r' {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
