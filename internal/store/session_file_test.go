package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Only-Gg/gih/internal/logger"
)

func newTestSessionStore(t *testing.T) *SessionStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewSessionStore(path, logger.Nop())
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	s := newTestSessionStore(t)

	if err := s.Save("token-123"); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	token, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if token != "token-123" {
		t.Errorf("expected token-123, got %q", token)
	}
}

func TestSessionStore_Load_NoSession(t *testing.T) {
	s := newTestSessionStore(t)

	_, err := s.Load()
	if !errors.Is(err, ErrNoStoredSession) {
		t.Fatalf("expected ErrNoStoredSession, got %v", err)
	}
}

func TestSessionStore_Load_EmptyToken(t *testing.T) {
	s := newTestSessionStore(t)

	if err := s.Save(""); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	_, err := s.Load()
	if !errors.Is(err, ErrNoStoredSession) {
		t.Fatalf("expected ErrNoStoredSession for empty token, got %v", err)
	}
}

func TestSessionStore_Load_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	s := NewSessionStore(path, logger.Nop())
	_, err := s.Load()
	if err == nil || errors.Is(err, ErrNoStoredSession) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestSessionStore_Save_Overwrites(t *testing.T) {
	s := newTestSessionStore(t)

	if err := s.Save("first"); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := s.Save("second"); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	token, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if token != "second" {
		t.Errorf("expected second, got %q", token)
	}
}

func TestSessionStore_Save_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	s := NewSessionStore(path, logger.Nop())

	if err := s.Save("token"); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected session file to exist: %v", err)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	s := newTestSessionStore(t)

	if err := s.Save("token"); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}

	if _, err := s.Load(); !errors.Is(err, ErrNoStoredSession) {
		t.Fatalf("expected ErrNoStoredSession after clear, got %v", err)
	}

	// clearing again is a no-op
	if err := s.Clear(); err != nil {
		t.Fatalf("expected idempotent clear, got %v", err)
	}
}
