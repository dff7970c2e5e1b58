package workers

import (
	"context"
	"path"
	"time"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
)

// UploadSweeper removes stored upload files that no memory page references
// anymore. Pages reference media by URL; deleting or editing a page can
// leave its files behind, and nothing else ever cleans the uploads dir.
//
// Deletion is two-phase: a file is removed only when it was already
// unreferenced on the previous pass, so an upload the admin is still
// attaching to a draft survives at least one full interval.
// MediaURLLister yields every media URL referenced by stored pages.
// Satisfied by store.MemoryPageRepository.
type MediaURLLister interface {
	ListMediaURLs(ctx context.Context) ([]string, error)
}

type UploadSweeper struct {
	interval time.Duration

	pages MediaURLLister
	files store.UploadFileStorage

	// candidates holds the filenames found unreferenced on the previous
	// pass. Only touched from the Run goroutine.
	candidates map[string]struct{}

	logger *logger.Logger
}

func NewUploadSweeper(interval time.Duration, pages MediaURLLister, files store.UploadFileStorage, logger *logger.Logger) *UploadSweeper {
	return &UploadSweeper{
		interval:   interval,
		pages:      pages,
		files:      files,
		candidates: make(map[string]struct{}),
		logger:     logger,
	}
}

// Run sweeps on every interval tick until ctx is cancelled.
func (s *UploadSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("upload sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("upload sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep performs one mark-and-sweep pass. Files unreferenced on two
// consecutive passes are removed.
func (s *UploadSweeper) Sweep(ctx context.Context) {
	referenced, err := s.pages.ListMediaURLs(ctx)
	if err != nil {
		s.logger.Err(err).Msg("sweep skipped: listing referenced media failed")
		return
	}

	stored, err := s.files.List(ctx)
	if err != nil {
		s.logger.Err(err).Msg("sweep skipped: listing stored uploads failed")
		return
	}

	inUse := make(map[string]struct{}, len(referenced))
	for _, url := range referenced {
		// Stored filenames are compared by base name so absolute and
		// root-relative references both count.
		inUse[path.Base(url)] = struct{}{}
	}

	removed := 0
	next := make(map[string]struct{})
	for _, filename := range stored {
		if _, ok := inUse[filename]; ok {
			continue
		}

		if _, seenBefore := s.candidates[filename]; !seenBefore {
			next[filename] = struct{}{}
			continue
		}

		if err := s.files.Remove(ctx, filename); err != nil {
			s.logger.Err(err).Str("filename", filename).Msg("removing orphaned upload failed")
			next[filename] = struct{}{}
			continue
		}
		removed++
	}
	s.candidates = next

	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("orphaned uploads removed")
	}
}
