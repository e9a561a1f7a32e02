package docload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileReadsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	want := "tomorrow at 3pm"
	if err := os.WriteFile(path, []byte(want), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, closer, err := File(path)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	defer func() { _ = closer() }()

	if got != want {
		t.Errorf("File() = %q, want %q", got, want)
	}
}

func TestFileEmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, closer, err := File(path)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	defer func() { _ = closer() }()

	if got != "" {
		t.Errorf("File() = %q, want empty string", got)
	}
}

func TestFileMissingReturnsError(t *testing.T) {
	if _, _, err := File(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
