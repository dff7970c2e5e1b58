package workers

import (
	"context"

	"github.com/Only-Gg/gih/internal/config"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers.
func NewWorkers(cfg config.Workers, pages store.MemoryPageRepository, files store.UploadFileStorage, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewUploadSweeper(cfg.SweepInterval, pages, files, logger),
		},
	}
}

// Run starts every worker in its own goroutine. It returns immediately;
// workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
