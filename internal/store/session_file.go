package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Only-Gg/gih/internal/logger"
)

// ErrNoStoredSession is returned by [SessionStore.Load] when no session has
// been persisted yet, or when the previous one was cleared by a logout.
var ErrNoStoredSession = errors.New("no stored session")

// SessionStore persists the admin session token between client runs in a
// small JSON file, the desktop analog of a browser's local storage.
type SessionStore struct {
	path   string
	logger *logger.Logger
}

type storedSession struct {
	Token string `json:"admin_token"`
}

// NewSessionStore constructs a [SessionStore] writing to the given file path.
// The parent directory is created on first save if it does not exist.
func NewSessionStore(path string, log *logger.Logger) *SessionStore {
	return &SessionStore{path: path, logger: log}
}

// Save persists the given token, replacing any previous session.
// The file is written with owner-only permissions.
func (s *SessionStore) Save(token string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			s.logger.Err(err).Str("func", "SessionStore.Save").Msg("error creating session directory")
			return fmt.Errorf("error creating session directory: %w", err)
		}
	}

	data, err := json.Marshal(storedSession{Token: token})
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Err(err).Str("func", "SessionStore.Save").Msg("error writing session file")
		return fmt.Errorf("error writing session file: %w", err)
	}

	return nil
}

// Load returns the persisted token.
//
// Error handling:
//   - missing file or empty token → [ErrNoStoredSession].
//   - unreadable or corrupted file → wrapped error.
func (s *SessionStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoStoredSession
		}
		s.logger.Err(err).Str("func", "SessionStore.Load").Msg("error reading session file")
		return "", fmt.Errorf("error reading session file: %w", err)
	}

	var session storedSession
	if err := json.Unmarshal(data, &session); err != nil {
		return "", fmt.Errorf("error decoding session file: %w", err)
	}

	if session.Token == "" {
		return "", ErrNoStoredSession
	}

	return session.Token, nil
}

// Clear removes the persisted session. Clearing a non-existent session is
// not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Err(err).Str("func", "SessionStore.Clear").Msg("error removing session file")
		return fmt.Errorf("error removing session file: %w", err)
	}

	return nil
}
