package validators

import (
	"context"
	"fmt"

	"github.com/Only-Gg/gih/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldTitle targets the display title of a memory page.
	FieldTitle = "title"

	// FieldPassword targets the plain-text view password of a page submission.
	FieldPassword = "password"

	// FieldPageID targets the public page identifier used in share links.
	FieldPageID = "page_id"

	// FieldMemories targets the ordered media list of a page submission.
	FieldMemories = "memories"

	// FieldMediaURL targets the stored media reference of a single memory.
	FieldMediaURL = "media_url"

	// FieldMemoryType targets the image/video discriminator of a single memory.
	FieldMemoryType = "memory_type"
)

// allowedMemoryTypes is the exhaustive set of MemoryType values accepted by
// the validator. Any MemoryType not present in this slice is considered invalid.
var allowedMemoryTypes = []models.MemoryType{
	models.MemoryImage,
	models.MemoryVideo,
}

// MemoryPageValidator implements the Validator interface for page
// submissions: MemoryPageCreate, MemoryPageUpdate, and Memory.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type MemoryPageValidator struct {
}

// NewMemoryPageValidator constructs a new MemoryPageValidator
// and returns it as the Validator interface.
func NewMemoryPageValidator() Validator {
	return &MemoryPageValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.MemoryPageCreate / *models.MemoryPageCreate
//   - models.MemoryPageUpdate / *models.MemoryPageUpdate
//   - models.Memory / *models.Memory
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *MemoryPageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MemoryPageCreate:
		return v.validatePageCreate(ctx, value, fields...)
	case *models.MemoryPageCreate:
		return v.validatePageCreate(ctx, *value, fields...)

	case models.MemoryPageUpdate:
		return v.validatePageUpdate(ctx, value, fields...)
	case *models.MemoryPageUpdate:
		return v.validatePageUpdate(ctx, *value, fields...)

	case models.Memory:
		return v.validateMemory(ctx, value, fields...)
	case *models.Memory:
		return v.validateMemory(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidMemoryType reports whether mt is one of the recognized MemoryType
// values defined in allowedMemoryTypes.
func isValidMemoryType(mt models.MemoryType) bool {
	for _, t := range allowedMemoryTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// validatePageCreate validates a new page submission.
//
// Default validated fields (when none specified): Title, Password, Memories.
// A create must carry a password; the update path is the only one allowed to
// leave it unset.
func (v *MemoryPageValidator) validatePageCreate(ctx context.Context, page models.MemoryPageCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPassword, FieldMemories}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if page.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPassword:
			if page.Password == "" {
				return ErrEmptyPassword
			}
		case FieldMemories:
			if err := v.validateMemoriesList(ctx, page.Memories); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePageUpdate validates an edit submission.
//
// Default validated fields: PageID, Title, Password, Memories.
//
// The password check only triggers when the submission carries a replacement
// password (partial update semantics: nil means "keep the stored one").
func (v *MemoryPageValidator) validatePageUpdate(ctx context.Context, page models.MemoryPageUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPageID, FieldTitle, FieldPassword, FieldMemories}
	}

	for _, f := range fields {
		switch f {
		case FieldPageID:
			if page.ID == "" {
				return ErrEmptyPageID
			}
		case FieldTitle:
			if page.Title == "" {
				return ErrEmptyTitle
			}
		case FieldPassword:
			if page.Password != nil && *page.Password == "" {
				return ErrEmptyPassword
			}
		case FieldMemories:
			if err := v.validateMemoriesList(ctx, page.Memories); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMemory validates a single media entry.
//
// Default validated fields: MediaURL, MemoryType. Captions may be empty.
func (v *MemoryPageValidator) validateMemory(ctx context.Context, memory models.Memory, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMediaURL, FieldMemoryType}
	}

	for _, f := range fields {
		switch f {
		case FieldMediaURL:
			if memory.URL == "" {
				return ErrEmptyMediaURL
			}
		case FieldMemoryType:
			if !isValidMemoryType(memory.Type) {
				return ErrInvalidMemoryType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMemoriesList enforces the at-least-one-memory rule and checks each
// entry individually. Returns a wrapped error indicating the index of the
// first invalid item.
func (v *MemoryPageValidator) validateMemoriesList(ctx context.Context, memories []models.Memory) error {
	if len(memories) == 0 {
		return ErrNoMemories
	}

	for i, memory := range memories {
		if err := v.validateMemory(ctx, memory); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}

	return nil
}
