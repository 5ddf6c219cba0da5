package archive

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchiveOutputs(t *testing.T) {
	tmpDir := t.TempDir()

	outputDir := filepath.Join(tmpDir, "output")
	if err := os.MkdirAll(filepath.Join(outputDir, "sqlite"), 0755); err != nil {
		t.Fatalf("Failed to create output directory: %v", err)
	}

	csvFile := filepath.Join(outputDir, "mx_with_toolkit.csv")
	if err := os.WriteFile(csvFile, []byte("word,phonemes,mx_ipa,toolkit_pron\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	dbFile := filepath.Join(outputDir, "sqlite", "runs.db")
	if err := os.WriteFile(dbFile, []byte("db"), 0644); err != nil {
		t.Fatalf("Failed to create sub file: %v", err)
	}

	archivedPath, err := ArchiveOutputs(outputDir)
	if err != nil {
		t.Fatalf("ArchiveOutputs failed: %v", err)
	}

	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Error("Output directory still exists after archiving")
	}

	archiveDir := filepath.Join(tmpDir, "archive")
	if filepath.Dir(archivedPath) != archiveDir {
		t.Errorf("Archived to %s, want a child of %s", archivedPath, archiveDir)
	}

	// output-YYYYMMDD-HHMMSS
	name := filepath.Base(archivedPath)
	if !strings.HasPrefix(name, "output-") {
		t.Errorf("Archived directory name doesn't start with 'output-': %s", name)
	}
	if parts := strings.Split(name, "-"); len(parts) < 3 {
		t.Errorf("Invalid archive name format: %s", name)
	}

	for _, f := range []string{"mx_with_toolkit.csv", filepath.Join("sqlite", "runs.db")} {
		if _, err := os.Stat(filepath.Join(archivedPath, f)); err != nil {
			t.Errorf("%s not found in archive: %v", f, err)
		}
	}
}

func TestArchiveOutputs_NonExistentDirectory(t *testing.T) {
	_, err := ArchiveOutputs(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Fatal("Expected error for non-existent directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got: %v", err)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveOutputs_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "output")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if _, err := ArchiveOutputs(file); err == nil {
		t.Error("Expected error for a regular file")
	}
}

func TestArchiveOutputs_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()
	outputDir := filepath.Join(tmpDir, "output")

	for i := 0; i < 2; i++ {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			t.Fatalf("Failed to create output directory: %v", err)
		}
		content := []byte("run " + string(rune('0'+i)))
		if err := os.WriteFile(filepath.Join(outputDir, "run.txt"), content, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		if _, err := ArchiveOutputs(outputDir); err != nil {
			t.Fatalf("ArchiveOutputs failed on iteration %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}
	if entries[0].Name() == entries[1].Name() {
		t.Error("Archive names are not unique")
	}
}
