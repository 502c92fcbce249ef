package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"quizplay/internal/testutil"
)

// TestReadFileReturnsContents verifies a successful read.
func TestReadFileReturnsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(`{"A": []}`), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	data, err := ReadFile(testutil.Context(t, 0), path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `{"A": []}` {
		t.Fatalf("unexpected contents %q", data)
	}
}

// TestReadFileMissing verifies missing files surface as read errors.
func TestReadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := ReadFile(testutil.Context(t, 0), path)
	if !errors.Is(err, ErrFileRead) {
		t.Fatalf("expected file read error, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
	var readErr *ReadError
	if !errors.As(err, &readErr) || readErr.Path != path {
		t.Fatalf("expected ReadError for %s, got %v", path, err)
	}
}

// TestReadFileCancelled verifies a cancelled context aborts the read.
func TestReadFileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadFile(ctx, "bank.json")
	if !errors.Is(err, ErrFileRead) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancelled read error, got %v", err)
	}
}

// TestReadFileRequiresPath verifies the empty path guard.
func TestReadFileRequiresPath(t *testing.T) {
	if _, err := ReadFile(testutil.Context(t, 0), ""); !errors.Is(err, ErrFileRead) {
		t.Fatalf("expected file read error, got %v", err)
	}
}
