package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/models"
)

func newTestAdminRepo(t *testing.T) (*adminRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &adminRepository{
		db:     &DB{DB: db, placeholder: sq.Dollar, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateAdmin_Success(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()
	admin := models.Admin{
		Username:     "OnlyGg",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}

	mock.ExpectExec("INSERT INTO admins").
		WithArgs(admin.Username, admin.PasswordHash, admin.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateAdmin(ctx, admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Username != admin.Username {
		t.Errorf("expected username %s, got %s", admin.Username, created.Username)
	}
}

func TestCreateAdmin_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()
	admin := models.Admin{Username: "OnlyGg"}

	mock.ExpectExec("INSERT INTO admins").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAdmin(ctx, admin)
	if !errors.Is(err, ErrAdminAlreadyExists) {
		t.Fatalf("expected ErrAdminAlreadyExists, got %v", err)
	}
}

func TestCreateAdmin_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()
	admin := models.Admin{Username: "OnlyGg"}

	mock.ExpectExec("INSERT INTO admins").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateAdmin(ctx, admin)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateAdmin_ZeroRowsAffected(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()
	admin := models.Admin{Username: "OnlyGg"}

	mock.ExpectExec("INSERT INTO admins").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.CreateAdmin(ctx, admin)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestFindAdminByUsername_Success(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"username", "password_hash", "created_at"}).
		AddRow("OnlyGg", "$2a$10$hash", now)

	mock.ExpectQuery("SELECT username").
		WithArgs("OnlyGg").
		WillReturnRows(rows)

	found, err := repo.FindAdminByUsername(ctx, "OnlyGg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "OnlyGg" {
		t.Errorf("expected username OnlyGg, got %s", found.Username)
	}
	if found.PasswordHash != "$2a$10$hash" {
		t.Errorf("expected stored hash, got %s", found.PasswordHash)
	}
}

func TestFindAdminByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash", "created_at"}))

	_, err := repo.FindAdminByUsername(ctx, "ghost")
	if !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestFindAdminByUsername_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestAdminRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username").
		WithArgs("OnlyGg").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindAdminByUsername(ctx, "OnlyGg")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
