package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/models"
)

// adminRepository is the SQL-backed implementation of [AdminRepository].
// It handles admin account creation and lookup against the "admins" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new administrator account.
//
// Error handling:
//   - uniqueness violation → [ErrAdminAlreadyExists].
//   - zero affected rows → wrapped [ErrExecutingStatement].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAdminQuery(r.db.placeholder, admin)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("failed to create query")
		return models.Admin{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.CreateAdmin").Msg("error executing insert")

		if isUniqueViolation(err) {
			return models.Admin{}, ErrAdminAlreadyExists
		}
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "*adminRepository.CreateAdmin").Msg("admin account was not saved")
		return models.Admin{}, fmt.Errorf("%w: zero rows affected", ErrExecutingStatement)
	}

	return admin, nil
}

// FindAdminByUsername retrieves the admin record with the given username.
//
// Error handling:
//   - no matching row → [ErrAdminNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) FindAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAdminQuery(r.db.placeholder, username)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.FindAdminByUsername").Msg("failed to create query")
		return models.Admin{}, err
	}

	var foundAdmin models.Admin
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found admin from db
	if err := row.Scan(&foundAdmin.Username, &foundAdmin.PasswordHash, &foundAdmin.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}

		log.Err(err).Str("func", "*adminRepository.FindAdminByUsername").Msg("error: scanning error")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundAdmin, nil
}
