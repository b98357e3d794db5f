package ops

import (
	"database/sql"
	"strconv"

	"github.com/tf2tools/skup/internal/db"
	"github.com/tf2tools/skup/internal/errors"
	"github.com/tf2tools/skup/internal/tf2"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Quality        *string // name ("Unusual") or wire value ("5")
	Defindex       *uint32
	NamePrefix     *string
	Limit          int // default: 20, max: 100
	Offset         int // default: 0
	IncludeDeleted bool
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []db.Item  `json:"items"`
	Pagination Pagination `json:"pagination"`
	Sort       string     `json:"sort"`
}

// List retrieves stored items with optional filters and pagination.
func List(database *sql.DB, input ListInput) (*ListOutput, error) {
	var filters db.ListFilters

	if input.Quality != nil && *input.Quality != "" {
		q, err := ResolveQuality(*input.Quality)
		if err != nil {
			return nil, err
		}
		v := uint32(q)
		filters.Quality = &v
	}
	if input.Defindex != nil {
		filters.Defindex = input.Defindex
	}
	if input.NamePrefix != nil {
		prefix := NormalizeName(*input.NamePrefix)
		if prefix != "" {
			filters.NamePrefix = &prefix
		}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = clamp(limit, 1, MaxListLimit)

	offset := max(input.Offset, 0)

	items, total, err := db.List(database, filters, limit, offset, input.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	// Ensure we return an empty array rather than nil
	if items == nil {
		items = []db.Item{}
	}

	hasMore := offset+len(items) < total

	return &ListOutput{
		Items: items,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: hasMore,
			Total:   total,
		},
		Sort: "updated_at_desc",
	}, nil
}

// ResolveQuality accepts either a quality display name or its wire value.
func ResolveQuality(s string) (tf2.Quality, error) {
	if v, err := strconv.ParseUint(s, 10, 32); err == nil {
		q, ok := tf2.QualityFromValue(uint32(v))
		if !ok {
			return 0, errors.NewInvalidRequest("unknown quality value: " + s)
		}
		return q, nil
	}
	q, ok := tf2.QualityFromName(s)
	if !ok {
		return 0, errors.NewInvalidRequest("unknown quality: " + s)
	}
	return q, nil
}
