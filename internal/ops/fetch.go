package ops

import (
	"database/sql"

	"github.com/tf2tools/skup/internal/db"
	"github.com/tf2tools/skup/internal/errors"
	"github.com/tf2tools/skup/internal/sku"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID             string
	Name           string
	IncludeDeleted bool
}

// FetchOutput contains the result of the Fetch operation.
type FetchOutput struct {
	db.Item         // embedded (copy, not pointer)
	Record  *Record `json:"record"`
}

// Fetch retrieves an item by ID or name and decodes its stored SKU.
func Fetch(database *sql.DB, input FetchInput) (*FetchOutput, error) {
	addr, err := ValidateAddress(input.ID, input.Name)
	if err != nil {
		return nil, err
	}

	var it *db.Item
	if addr.ByID {
		it, err = db.GetByID(database, addr.ID, input.IncludeDeleted)
	} else {
		it, err = db.GetByName(database, addr.Name, input.IncludeDeleted)
	}
	if err != nil {
		return nil, err
	}

	// The stored SKU is the canonical form written by Store or Import, so
	// a decode failure here means the row was corrupted out of band.
	rec, err := sku.Parse(it.SKU)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return &FetchOutput{
		Item:   *it,
		Record: NewRecord(rec),
	}, nil
}
