package ops

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/db"
	"github.com/tf2tools/skup/internal/errors"
)

// StoreMode controls collision behavior.
type StoreMode string

const (
	StoreModeError   StoreMode = "error"   // default: fail on name collision
	StoreModeReplace StoreMode = "replace" // overwrite existing
)

// StoreInput contains parameters for the Store operation.
type StoreInput struct {
	SKU     string  // required
	Name    *string // optional
	Lenient *bool
	Mode    StoreMode // default: StoreModeError
}

// StoreOutput contains the result of the Store operation.
type StoreOutput struct {
	ID        string  `json:"id"`
	SKU       string  `json:"sku"` // canonical form
	Name      *string `json:"name,omitempty"`
	Replaced  bool    `json:"replaced"`
	CreatedAt int64   `json:"created_at"`
}

// Store parses, canonicalizes, and persists an item.
func Store(ctx context.Context, database *sql.DB, cfg *config.Config, input StoreInput) (*StoreOutput, error) {
	if input.SKU == "" {
		return nil, errors.NewInvalidRequest("sku is required")
	}
	if input.Mode == "" {
		input.Mode = StoreModeError
	}
	if input.Mode != StoreModeError && input.Mode != StoreModeReplace {
		return nil, errors.NewInvalidRequest("mode must be one of: error, replace")
	}

	rec, err := parseOne(cfg, input.SKU, input.Lenient)
	if err != nil {
		return nil, err
	}
	canonical := rec.String()

	// Normalize name if provided
	var nameRaw, nameNorm *string
	if input.Name != nil {
		normalized := NormalizeName(*input.Name)
		if normalized == "" {
			return nil, errors.NewInvalidRequest("name must not be empty (omit it for unnamed items)")
		}
		nameRaw = input.Name
		nameNorm = &normalized
	}

	now := time.Now().Unix()

	if input.Mode == StoreModeReplace && nameNorm != nil {
		// Replace keeps the existing row's identity when the name is taken.
		existing, err := db.GetByName(database, *nameNorm, false)
		if err != nil && !errors.Is(err, errors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			existing.SKU = canonical
			existing.Defindex = rec.Defindex
			existing.Quality = uint32(rec.Quality)
			if err := db.UpdateByID(database, existing); err != nil {
				return nil, err
			}
			return &StoreOutput{
				ID:        existing.ID,
				SKU:       canonical,
				Name:      existing.NameRaw,
				Replaced:  true,
				CreatedAt: existing.CreatedAt,
			}, nil
		}
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	it := &db.Item{
		ID:        id,
		NameRaw:   nameRaw,
		NameNorm:  nameNorm,
		SKU:       canonical,
		Defindex:  rec.Defindex,
		Quality:   uint32(rec.Quality),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := db.Insert(database, it); err != nil {
		if errors.Is(err, db.ErrUniqueConstraint.Code) && nameRaw != nil {
			return nil, errors.NewNameAlreadyExists(*nameRaw)
		}
		return nil, err
	}

	return &StoreOutput{
		ID:        id,
		SKU:       canonical,
		Name:      nameRaw,
		Replaced:  false,
		CreatedAt: now,
	}, nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
