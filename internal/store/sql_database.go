package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/migrations"
)

type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
