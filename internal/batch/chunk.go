package batch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/espada/internal"
)

// DefaultChunkSize is the number of words per chunk file
const DefaultChunkSize = 5000

// ReadWordList reads a CMU-style dictionary where each line holds a word
// followed by its phonemes. The pronunciation is the phonemes joined
// without a separator.
func ReadWordList(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var rows []Row
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, Row{
			Word:     fields[0],
			Phonemes: strings.Join(fields[1:], " "),
			IPA:      strings.Join(fields[1:], ""),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return rows, nil
}

// WriteChunks writes the words of rows into numbered files of at most size
// words each and returns the paths written.
func WriteChunks(rows []Row, dir, prefix string, size int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create chunk directory: %w", err)
	}

	prefix = internal.SanitizeFilename(prefix)
	numFiles := (len(rows) + size - 1) / size
	paths := make([]string, 0, numFiles)

	for i := 0; i < numFiles; i++ {
		start := i * size
		end := min(start+size, len(rows))

		var b strings.Builder
		for _, r := range rows[start:end] {
			b.WriteString(r.Word)
			b.WriteByte('\n')
		}

		path := filepath.Join(dir, fmt.Sprintf("%s_part%d.txt", prefix, i+1))
		if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
			return paths, fmt.Errorf("failed to write chunk %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
