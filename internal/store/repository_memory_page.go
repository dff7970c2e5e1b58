package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/models"
)

// memoryPageRepository is the SQL-backed implementation of
// [MemoryPageRepository]. It executes all page CRUD operations directly
// against the "memory_pages" table using the embedded [*DB] connection.
//
// The memories collection of a page is persisted as a JSON document in a
// single text column; ordering inside the document is authoritative.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (page id, memories count, etc.).
type memoryPageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMemoryPageRepository constructs a [MemoryPageRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewMemoryPageRepository(db *DB, logger *logger.Logger) MemoryPageRepository {
	return &memoryPageRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePage persists a new memory page and returns it unchanged on success.
//
// CreatedAt must be set by the caller before insertion so that the returned
// model matches the stored row without a follow-up read.
//
// Error handling:
//   - uniqueness violation on the page id → [ErrPageIDAlreadyExists].
//   - transient driver errors are retried once before giving up.
//   - zero affected rows → [ErrPageNotSaved].
func (p *memoryPageRepository) CreatePage(ctx context.Context, page models.MemoryPage) (models.MemoryPage, error) {
	log := logger.FromContext(ctx)

	memoriesJSON, err := encodeMemories(page.Memories)
	if err != nil {
		log.Err(err).Str("func", "memoryPageRepository.CreatePage").Str("page_id", page.ID).Msg("failed to encode memories")
		return models.MemoryPage{}, err
	}

	query, args, err := buildInsertPageQuery(p.placeholder, page, memoriesJSON)
	if err != nil {
		log.Err(err).Str("func", "memoryPageRepository.CreatePage").Str("page_id", page.ID).Msg("failed to create query")
		return models.MemoryPage{}, err
	}

	result, err := p.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "memoryPageRepository.CreatePage").
			Str("page_id", page.ID).
			Int("memories_count", len(page.Memories)).
			Msg("failed to execute insert for memory page")

		if isUniqueViolation(err) {
			return models.MemoryPage{}, ErrPageIDAlreadyExists
		}
		return models.MemoryPage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().Str("func", "memoryPageRepository.CreatePage").Str("page_id", page.ID).Msg("provided memory page was not saved")
		return models.MemoryPage{}, ErrPageNotSaved
	}

	return page, nil
}

// GetAllPages retrieves every stored memory page, newest first.
//
// Returns an empty slice when no records are found.
func (p *memoryPageRepository) GetAllPages(ctx context.Context) ([]models.MemoryPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPagesQuery(p.placeholder)
	if err != nil {
		log.Err(err).Str("func", "memoryPageRepository.GetAllPages").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "memoryPageRepository.GetAllPages").
			Msg("failed to execute query for getting all memory pages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	pages := make([]models.MemoryPage, 0, 20)

	for rows.Next() {
		page, scanErr := scanMemoryPage(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "memoryPageRepository.GetAllPages").
				Msg("failed to scan memory page row")
			return nil, scanErr
		}

		pages = append(pages, page)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "memoryPageRepository.GetAllPages").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return pages, nil
}

// GetPageByID retrieves a single memory page by its URL identifier.
//
// Error handling:
//   - no matching row → [ErrPageNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (p *memoryPageRepository) GetPageByID(ctx context.Context, id string) (models.MemoryPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPageByIDQuery(p.placeholder, id)
	if err != nil {
		log.Err(err).Str("func", "memoryPageRepository.GetPageByID").Str("page_id", id).Msg("failed to create query")
		return models.MemoryPage{}, err
	}

	row := p.QueryRowContext(ctx, query, args...)

	page, scanErr := scanMemoryPage(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.MemoryPage{}, ErrPageNotFound
		}

		log.Err(scanErr).
			Str("func", "memoryPageRepository.GetPageByID").
			Str("page_id", id).
			Msg("failed to scan memory page row")
		return models.MemoryPage{}, scanErr
	}

	return page, nil
}

// UpdatePage rewrites the page stored under pageID with the provided model.
// When page.ID differs from pageID the page is renamed; the uniqueness
// constraint guards against collisions. An empty page.PasswordHash keeps the
// stored hash untouched.
//
// Error handling:
//   - zero affected rows → [ErrPageNotFound].
//   - uniqueness violation on the new id → [ErrPageIDAlreadyExists].
func (p *memoryPageRepository) UpdatePage(ctx context.Context, pageID string, page models.MemoryPage) (models.MemoryPage, error) {
	log := logger.FromContext(ctx)

	memoriesJSON, err := encodeMemories(page.Memories)
	if err != nil {
		log.Err(err).Str("func", "memoryPageRepository.UpdatePage").Str("page_id", pageID).Msg("failed to encode memories")
		return models.MemoryPage{}, err
	}

	query, args, err := buildUpdatePageQuery(p.placeholder, pageID, page, memoriesJSON)
	if err != nil {
		log.Err(err).Str("func", "memoryPageRepository.UpdatePage").Str("page_id", pageID).Msg("failed to create query")
		return models.MemoryPage{}, err
	}

	result, err := p.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "memoryPageRepository.UpdatePage").
			Str("page_id", pageID).
			Str("new_page_id", page.ID).
			Msg("failed to execute update for memory page")

		if isUniqueViolation(err) {
			return models.MemoryPage{}, ErrPageIDAlreadyExists
		}
		return models.MemoryPage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.MemoryPage{}, ErrPageNotFound
	}

	// read back: password_hash and created_at come from the stored row
	return p.GetPageByID(ctx, page.ID)
}

// DeletePage removes the page stored under the given identifier.
//
// Error handling:
//   - zero affected rows → [ErrPageNotFound].
func (p *memoryPageRepository) DeletePage(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePageQuery(p.placeholder, id)
	if err != nil {
		log.Err(err).Str("func", "memoryPageRepository.DeletePage").Str("page_id", id).Msg("failed to create query")
		return err
	}

	result, err := p.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "memoryPageRepository.DeletePage").
			Str("page_id", id).
			Msg("failed to execute delete for memory page")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPageNotFound
	}

	return nil
}

// ListMediaURLs collects the media URLs referenced by every stored page.
// Used by the orphan upload sweeper to decide which files are still alive.
func (p *memoryPageRepository) ListMediaURLs(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMemoriesQuery(p.placeholder)
	if err != nil {
		log.Err(err).Str("func", "memoryPageRepository.ListMediaURLs").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "memoryPageRepository.ListMediaURLs").
			Msg("failed to execute query for listing media urls")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	urls := make([]string, 0, 50)

	for rows.Next() {
		var memoriesJSON []byte
		if scanErr := rows.Scan(&memoriesJSON); scanErr != nil {
			log.Err(scanErr).
				Str("func", "memoryPageRepository.ListMediaURLs").
				Msg("failed to scan memories column")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		memories, decodeErr := decodeMemories(memoriesJSON)
		if decodeErr != nil {
			log.Err(decodeErr).
				Str("func", "memoryPageRepository.ListMediaURLs").
				Msg("failed to decode memories column")
			return nil, decodeErr
		}

		for _, memory := range memories {
			urls = append(urls, memory.URL)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "memoryPageRepository.ListMediaURLs").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return urls, nil
}

// execWithRetry executes a DML statement, retrying once when the driver
// reports a transient condition (connection loss, deadlock, SQLITE_BUSY).
func (p *memoryPageRepository) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := p.ExecContext(ctx, query, args...)
	if err != nil && p.errorClassificator != nil && p.errorClassificator.Classify(err) == Retryable {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "memoryPageRepository.execWithRetry").
			Msg("transient database error, retrying once")
		return p.ExecContext(ctx, query, args...)
	}

	return result, err
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMemoryPage(row rowScanner) (models.MemoryPage, error) {
	var page models.MemoryPage
	var memoriesJSON []byte

	if err := row.Scan(
		&page.ID,
		&page.Title,
		&page.PasswordHash,
		&page.WelcomeMessage,
		&memoriesJSON,
		&page.FinalMessage,
		&page.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MemoryPage{}, err
		}
		return models.MemoryPage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	memories, err := decodeMemories(memoriesJSON)
	if err != nil {
		return models.MemoryPage{}, err
	}
	page.Memories = memories

	// page_url is not a column; rebuild it from the id on every read.
	page.PageURL = models.PageViewURL(page.ID)

	return page, nil
}

func encodeMemories(memories []models.Memory) (string, error) {
	if memories == nil {
		memories = []models.Memory{}
	}

	data, err := json.Marshal(memories)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingMemories, err)
	}

	return string(data), nil
}

func decodeMemories(data []byte) ([]models.Memory, error) {
	if len(data) == 0 {
		return []models.Memory{}, nil
	}

	var memories []models.Memory
	if err := json.Unmarshal(data, &memories); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingMemories, err)
	}

	return memories, nil
}
