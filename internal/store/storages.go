package store

import (
	"context"
	"strings"

	"github.com/Only-Gg/gih/internal/config"
	"github.com/Only-Gg/gih/internal/logger"
)

type Storages struct {
	AdminRepository      AdminRepository
	MemoryPageRepository MemoryPageRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AdminRepository:      NewAdminRepository(db, log),
		MemoryPageRepository: NewMemoryPageRepository(db, log),
	}
}

// Connect opens the database selected by the DSN scheme: "postgres://" (or
// "postgresql://") selects PostgreSQL, anything else is treated as a SQLite
// file path. Migrations run on the opened connection before it is returned.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var db *DB
	var err error

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return db, nil
}
