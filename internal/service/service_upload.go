package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
	"github.com/Only-Gg/gih/models"
)

// uploadService stores uploaded media files and hands back the root-relative
// URL under which the HTTP layer serves them.
type uploadService struct {
	files store.UploadFileStorage

	logger *logger.Logger
}

// NewUploadService constructs an UploadService over the given file storage.
func NewUploadService(files store.UploadFileStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		files:  files,
		logger: logger,
	}
}

// SaveUpload persists the uploaded content under a generated name that keeps
// the original file extension, so content type detection by extension keeps
// working on the serving side.
func (s *uploadService) SaveUpload(ctx context.Context, originalFilename string, content io.Reader) (models.UploadResponse, error) {
	log := logger.FromContext(ctx)

	extension := filepath.Ext(originalFilename)
	filename, err := s.files.Save(ctx, extension, content)
	if err != nil {
		log.Err(err).Str("original", originalFilename).Msg("storing uploaded file failed")
		return models.UploadResponse{}, fmt.Errorf("storing uploaded file: %w", err)
	}

	return models.UploadResponse{
		Success:  true,
		URL:      "/uploads/" + filename,
		Filename: filename,
	}, nil
}
