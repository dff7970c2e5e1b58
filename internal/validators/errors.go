package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle        = errors.New("page title is required")
	ErrEmptyPassword     = errors.New("page password is required")
	ErrEmptyPageID       = errors.New("page id is required")
	ErrNoMemories        = errors.New("memories list cannot be empty")
	ErrEmptyMediaURL     = errors.New("memory media url is required")
	ErrInvalidMemoryType = errors.New("invalid memory type")
)
