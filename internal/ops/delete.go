package ops

import (
	"database/sql"

	"github.com/tf2tools/skup/internal/db"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	ID   string
	Name string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete soft-deletes an item.
func Delete(database *sql.DB, input DeleteInput) (*DeleteOutput, error) {
	addr, err := ValidateAddress(input.ID, input.Name)
	if err != nil {
		return nil, err
	}

	// Fetch existing (active only) to get the ID if addressed by name
	var itemID string
	if addr.ByID {
		itemID = addr.ID
		// Verify it exists (GetByID will return ErrNotFound if not)
		if _, err := db.GetByID(database, addr.ID, false); err != nil {
			return nil, err
		}
	} else {
		it, err := db.GetByName(database, addr.Name, false)
		if err != nil {
			return nil, err
		}
		itemID = it.ID
	}

	if err := db.SoftDelete(database, itemID); err != nil {
		return nil, err
	}

	return &DeleteOutput{
		Deleted: true,
		ID:      itemID,
	}, nil
}
