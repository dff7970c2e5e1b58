package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/Only-Gg/gih/models"
)

// Column sets shared by the query builders below. The memories collection is
// stored as a JSON document in a single text column.
var (
	memoryPageColumns = []string{
		"id",
		"title",
		"password_hash",
		"welcome_message",
		"memories",
		"final_message",
		"created_at",
	}

	adminColumns = []string{
		"username",
		"password_hash",
		"created_at",
	}
)

func buildInsertPageQuery(ph sq.PlaceholderFormat, page models.MemoryPage, memoriesJSON string) (string, []any, error) {
	query, args, err := sq.Insert("memory_pages").
		Columns(memoryPageColumns...).
		Values(page.ID, page.Title, page.PasswordHash, page.WelcomeMessage, memoriesJSON, page.FinalMessage, page.CreatedAt).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectPagesQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select(memoryPageColumns...).
		From("memory_pages").
		OrderBy("created_at DESC").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectPageByIDQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	query, args, err := sq.Select(memoryPageColumns...).
		From("memory_pages").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdatePageQuery builds the dynamic UPDATE for a page edit. The id
// column is always set (it may equal pageID when unchanged); password_hash is
// set only when a new hash is provided, so a blank edit keeps the old secret.
func buildUpdatePageQuery(ph sq.PlaceholderFormat, pageID string, page models.MemoryPage, memoriesJSON string) (string, []any, error) {
	builder := sq.Update("memory_pages").
		Set("id", page.ID).
		Set("title", page.Title).
		Set("welcome_message", page.WelcomeMessage).
		Set("memories", memoriesJSON).
		Set("final_message", page.FinalMessage)

	if page.PasswordHash != "" {
		builder = builder.Set("password_hash", page.PasswordHash)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": pageID}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeletePageQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	query, args, err := sq.Delete("memory_pages").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectMemoriesQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select("memories").
		From("memory_pages").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertAdminQuery(ph sq.PlaceholderFormat, admin models.Admin) (string, []any, error) {
	query, args, err := sq.Insert("admins").
		Columns(adminColumns...).
		Values(admin.Username, admin.PasswordHash, admin.CreatedAt).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectAdminQuery(ph sq.PlaceholderFormat, username string) (string, []any, error) {
	query, args, err := sq.Select(adminColumns...).
		From("admins").
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
