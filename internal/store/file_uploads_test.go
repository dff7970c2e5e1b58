package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Only-Gg/gih/internal/logger"
)

type fixedIDGenerator struct {
	id string
}

func (g *fixedIDGenerator) Generate() string { return g.id }

type sequentialIDGenerator struct {
	prefix string
	n      int
}

func (g *sequentialIDGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

func newTestUploadStorage(t *testing.T, id string) (UploadFileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewLocalUploadStorage(dir, &fixedIDGenerator{id: id}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create upload storage: %v", err)
	}
	return s, dir
}

func TestLocalUploadStorage_Save(t *testing.T) {
	s, dir := newTestUploadStorage(t, "generated-id")
	ctx := context.Background()

	filename, err := s.Save(ctx, ".jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "generated-id.jpg" {
		t.Errorf("expected generated-id.jpg, got %q", filename)
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("expected stored content to match upload, got %q", data)
	}
}

func TestLocalUploadStorage_Save_EmptyExtension(t *testing.T) {
	s, _ := newTestUploadStorage(t, "noext")
	ctx := context.Background()

	filename, err := s.Save(ctx, "", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "noext" {
		t.Errorf("expected bare generated name, got %q", filename)
	}
}

func TestLocalUploadStorage_Remove(t *testing.T) {
	s, dir := newTestUploadStorage(t, "to-remove")
	ctx := context.Background()

	filename, err := s.Save(ctx, ".mp4", strings.NewReader("video"))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := s.Remove(ctx, filename); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filename)); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}

	// removing again is a no-op
	if err := s.Remove(ctx, filename); err != nil {
		t.Fatalf("expected idempotent remove, got %v", err)
	}
}

func TestLocalUploadStorage_Remove_RejectsTraversal(t *testing.T) {
	s, _ := newTestUploadStorage(t, "x")
	ctx := context.Background()

	if err := s.Remove(ctx, "../escape.txt"); err == nil {
		t.Fatal("expected error for path traversal, got nil")
	}
}

func TestLocalUploadStorage_List(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalUploadStorage(dir, &sequentialIDGenerator{prefix: "file"}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create upload storage: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Save(ctx, ".jpg", strings.NewReader("a")); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := s.Save(ctx, ".mp4", strings.NewReader("b")); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// subdirectories are skipped
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(names), names)
	}
}
