// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/Only-Gg/gih/internal/logger"
)

type fakePages struct {
	urls []string
	err  error
}

func (f *fakePages) ListMediaURLs(_ context.Context) ([]string, error) {
	return f.urls, f.err
}

type fakeFiles struct {
	stored  []string
	removed []string
	listErr error
}

func (f *fakeFiles) Save(_ context.Context, _ string, _ io.Reader) (string, error) {
	panic("not used")
}

func (f *fakeFiles) Remove(_ context.Context, filename string) error {
	f.removed = append(f.removed, filename)
	for i, name := range f.stored {
		if name == filename {
			f.stored = append(f.stored[:i], f.stored[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeFiles) List(_ context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.stored...), nil
}

func newTestSweeper(pages *fakePages, files *fakeFiles) *UploadSweeper {
	return NewUploadSweeper(1, pages, files, logger.Nop())
}

func TestSweep_RemovesOrphansAfterTwoPasses(t *testing.T) {
	pages := &fakePages{urls: []string{"/uploads/kept.jpg", "http://host/uploads/also-kept.mp4"}}
	files := &fakeFiles{stored: []string{"kept.jpg", "also-kept.mp4", "orphan.jpg"}}
	s := newTestSweeper(pages, files)

	// First pass marks the orphan but removes nothing.
	s.Sweep(context.Background())
	if len(files.removed) != 0 {
		t.Fatalf("first pass removed %v, want none", files.removed)
	}

	// Second pass removes it.
	s.Sweep(context.Background())
	if len(files.removed) != 1 || files.removed[0] != "orphan.jpg" {
		t.Fatalf("second pass removed %v, want [orphan.jpg]", files.removed)
	}
}

func TestSweep_ReferencedFilesSurvive(t *testing.T) {
	pages := &fakePages{urls: []string{"/uploads/a.jpg", "/uploads/b.mp4"}}
	files := &fakeFiles{stored: []string{"a.jpg", "b.mp4"}}
	s := newTestSweeper(pages, files)

	s.Sweep(context.Background())
	s.Sweep(context.Background())

	if len(files.removed) != 0 {
		t.Fatalf("removed %v, want none", files.removed)
	}
}

func TestSweep_FileReattachedBetweenPassesSurvives(t *testing.T) {
	pages := &fakePages{urls: nil}
	files := &fakeFiles{stored: []string{"draft.jpg"}}
	s := newTestSweeper(pages, files)

	s.Sweep(context.Background())

	// The admin saves the page referencing the file before the next pass.
	pages.urls = []string{"/uploads/draft.jpg"}
	s.Sweep(context.Background())
	s.Sweep(context.Background())

	if len(files.removed) != 0 {
		t.Fatalf("removed %v, want none", files.removed)
	}
}

func TestSweep_SkipsPassOnListErrors(t *testing.T) {
	pages := &fakePages{err: errors.New("db down")}
	files := &fakeFiles{stored: []string{"orphan.jpg"}}
	s := newTestSweeper(pages, files)

	s.Sweep(context.Background())
	s.Sweep(context.Background())

	if len(files.removed) != 0 {
		t.Fatalf("removed %v despite list error", files.removed)
	}
}

func TestSweep_MultipleOrphans(t *testing.T) {
	pages := &fakePages{urls: []string{"/uploads/kept.jpg"}}
	files := &fakeFiles{stored: []string{"kept.jpg", "o1.jpg", "o2.mp4", "o3.png"}}
	s := newTestSweeper(pages, files)

	s.Sweep(context.Background())
	s.Sweep(context.Background())

	sort.Strings(files.removed)
	want := []string{"o1.jpg", "o2.mp4", "o3.png"}
	if len(files.removed) != len(want) {
		t.Fatalf("removed %v, want %v", files.removed, want)
	}
	for i := range want {
		if files.removed[i] != want[i] {
			t.Fatalf("removed %v, want %v", files.removed, want)
		}
	}
}
