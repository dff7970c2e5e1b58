package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Only-Gg/gih/internal/logger"
)

// UploadFileStorage persists uploaded photo and video files outside the
// relational database, so that the database only holds lightweight page
// metadata and media references.
type UploadFileStorage interface {
	Save(ctx context.Context, extension string, content io.Reader) (string, error)
	Remove(ctx context.Context, filename string) error
	List(ctx context.Context) ([]string, error)
}

// IDGenerator produces the unique part of stored file names.
type IDGenerator interface {
	Generate() string
}

// localUploadStorage is the filesystem implementation of [UploadFileStorage].
// Files are stored flat in a single directory under generated names, so a
// stored name never collides with or leaks the uploaded one.
type localUploadStorage struct {
	dir    string
	ids    IDGenerator
	logger *logger.Logger
}

// NewLocalUploadStorage constructs an [UploadFileStorage] rooted at dir.
// The directory is created if it does not exist.
func NewLocalUploadStorage(dir string, ids IDGenerator, log *logger.Logger) (UploadFileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewLocalUploadStorage").Str("dir", dir).Msg("error creating uploads directory")
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	return &localUploadStorage{
		dir:    dir,
		ids:    ids,
		logger: log,
	}, nil
}

// Save streams content into a new file named by a generated id plus the
// original extension and returns the stored file name.
func (s *localUploadStorage) Save(ctx context.Context, extension string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	filename := s.ids.Generate() + extension
	path := filepath.Join(s.dir, filename)

	file, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "localUploadStorage.Save").Str("path", path).Msg("error creating upload file")
		return "", fmt.Errorf("error creating upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		log.Err(err).Str("func", "localUploadStorage.Save").Str("path", path).Msg("error writing upload file")
		// remove the partial file so the sweeper never has to
		_ = os.Remove(path)
		return "", fmt.Errorf("error writing upload file: %w", err)
	}

	return filename, nil
}

// Remove deletes a stored file by name. Removing a missing file is not an
// error.
func (s *localUploadStorage) Remove(ctx context.Context, filename string) error {
	log := logger.FromContext(ctx)

	// reject traversal outside the uploads directory
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid upload filename: %q", filename)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("func", "localUploadStorage.Remove").Str("path", path).Msg("error removing upload file")
		return fmt.Errorf("error removing upload file: %w", err)
	}

	return nil
}

// List returns the names of all stored files.
func (s *localUploadStorage) List(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Err(err).Str("func", "localUploadStorage.List").Str("dir", s.dir).Msg("error reading uploads directory")
		return nil, fmt.Errorf("error reading uploads directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
