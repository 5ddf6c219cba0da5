package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TranscriptionTable is a small base table in the english_transcriptions.csv layout
const TranscriptionTable = `Example,IPA,Toolkit
red,ɹ,r
bed,e,ɛ
cat,k,k
sun,s,s
on,o,o
man,m,m
far,a,a
day,eɪ,8
church,tʃ,ch
hurt,ɝ or ɚ,3r
father,ɑ~ɒ,a
`

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTranscriptionTable writes TranscriptionTable into dir and returns its path
func CreateTranscriptionTable(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "english_transcriptions.csv")
	CreateTestFile(t, path, []byte(TranscriptionTable))
	return path
}

// CreatePronunciationFile writes a prepared word,phonemes,mx_ipa CSV
func CreatePronunciationFile(t *testing.T, dir string, rows [][3]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("word,phonemes,mx_ipa\n")
	for _, r := range rows {
		b.WriteString(r[0] + "," + r[1] + "," + r[2] + "\n")
	}

	path := filepath.Join(dir, "all_espada_mx_ipas.csv")
	CreateTestFile(t, path, []byte(b.String()))
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
