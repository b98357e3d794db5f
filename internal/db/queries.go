package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tf2tools/skup/internal/errors"
)

// Item is a stored item row. The SKU column is the canonical string form;
// defindex and quality are denormalized out of it for filtering.
type Item struct {
	ID        string  `json:"id"`
	NameRaw   *string `json:"name,omitempty"`
	NameNorm  *string `json:"-"`
	SKU       string  `json:"sku"`
	Defindex  uint32  `json:"defindex"`
	Quality   uint32  `json:"quality"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
	DeletedAt *int64  `json:"deleted_at,omitempty"`
}

// ListFilters narrows List results. Nil fields match everything.
type ListFilters struct {
	Defindex   *uint32
	Quality    *uint32
	NamePrefix *string
}

// QualityCount is one row of the inventory breakdown.
type QualityCount struct {
	Quality uint32 `json:"quality"`
	Count   int    `json:"count"`
}

// ErrUniqueConstraint is returned when an insert violates a UNIQUE constraint.
var ErrUniqueConstraint = &errors.SkupError{
	Code:    "UNIQUE_CONSTRAINT",
	Status:  409,
	Message: "unique constraint violation",
}

// Insert stores a new item in the database.
func Insert(db *sql.DB, it *Item) error {
	query := `
		INSERT INTO items (
			id, name_raw, name_norm, sku, defindex, quality,
			created_at, updated_at, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`

	_, err := db.Exec(query,
		it.ID, toNullString(it.NameRaw), toNullString(it.NameNorm),
		it.SKU, it.Defindex, it.Quality, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUniqueConstraint
		}
		return errors.NewInternal(err)
	}

	return nil
}

// isUniqueConstraintError checks if the error is a SQLite UNIQUE constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	// SQLite returns "UNIQUE constraint failed: ..." for unique violations
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetByID retrieves an item by its ULID.
// If includeDeleted is false, soft-deleted items are excluded.
func GetByID(db *sql.DB, id string, includeDeleted bool) (*Item, error) {
	query := `
		SELECT id, name_raw, name_norm, sku, defindex, quality,
			created_at, updated_at, deleted_at
		FROM items
		WHERE id = ?
	`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	row := db.QueryRow(query, id)
	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return it, nil
}

// GetByName retrieves an item by normalized name.
// If includeDeleted is false, soft-deleted items are excluded.
func GetByName(db *sql.DB, nameNorm string, includeDeleted bool) (*Item, error) {
	query := `
		SELECT id, name_raw, name_norm, sku, defindex, quality,
			created_at, updated_at, deleted_at
		FROM items
		WHERE name_norm = ?
	`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	} else {
		// If both active and soft-deleted items exist for the same name, prefer the active one.
		// If no active item exists, return the most recently updated deleted item.
		query += " ORDER BY (deleted_at IS NULL) DESC, updated_at DESC LIMIT 1"
	}

	row := db.QueryRow(query, nameNorm)
	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(nameNorm)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return it, nil
}

// CheckNameExists checks if an active item with the given name exists.
func CheckNameExists(db *sql.DB, nameNorm string) (bool, error) {
	query := `
		SELECT 1 FROM items
		WHERE name_norm = ? AND deleted_at IS NULL
		LIMIT 1
	`

	var exists int
	err := db.QueryRow(query, nameNorm).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewInternal(err)
	}

	return true, nil
}

// UpdateByID updates the SKU columns of an existing item.
// Sets updated_at to current timestamp.
// Does NOT change: id, name
func UpdateByID(db *sql.DB, it *Item) error {
	now := time.Now().Unix()

	query := `
		UPDATE items
		SET sku = ?, defindex = ?, quality = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := db.Exec(query, it.SKU, it.Defindex, it.Quality, now, it.ID)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(it.ID)
	}

	it.UpdatedAt = now

	return nil
}

// UpdateFull overwrites every mutable column of an item, including
// names and timestamps. Used by import in replace mode, where the
// incoming record's history wins over the stored row's.
func UpdateFull(db *sql.DB, it *Item) error {
	query := `
		UPDATE items
		SET name_raw = ?, name_norm = ?, sku = ?, defindex = ?, quality = ?,
			created_at = ?, updated_at = ?, deleted_at = NULL
		WHERE id = ?
	`

	result, err := db.Exec(query,
		toNullString(it.NameRaw), toNullString(it.NameNorm),
		it.SKU, it.Defindex, it.Quality, it.CreatedAt, it.UpdatedAt, it.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUniqueConstraint
		}
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(it.ID)
	}

	return nil
}

// FindUniqueName returns a normalized name not currently held by any
// active item, suffixing baseNorm with -2, -3, ... if it is taken.
func FindUniqueName(db *sql.DB, baseNorm string) (string, error) {
	exists, err := CheckNameExists(db, baseNorm)
	if err != nil {
		return "", err
	}
	if !exists {
		return baseNorm, nil
	}

	for i := 2; i <= 1000; i++ {
		candidate := fmt.Sprintf("%s-%d", baseNorm, i)
		exists, err := CheckNameExists(db, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", errors.NewConflict(fmt.Sprintf("could not find unique name for %q", baseNorm))
}

// SoftDelete marks an item as deleted by setting deleted_at.
func SoftDelete(db *sql.DB, id string) error {
	now := time.Now().Unix()

	query := `
		UPDATE items
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := db.Exec(query, now, id)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(id)
	}

	return nil
}

// List retrieves items matching the filters, newest first, with pagination.
// Returns the page of items and the total match count.
func List(db *sql.DB, filters ListFilters, limit, offset int, includeDeleted bool) ([]Item, int, error) {
	where, args := buildListWhere(filters, includeDeleted)

	var total int
	countQuery := "SELECT COUNT(*) FROM items" + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	query := `
		SELECT id, name_raw, name_norm, sku, defindex, quality,
			created_at, updated_at, deleted_at
		FROM items` + where + `
		ORDER BY updated_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	rows, err := db.Query(query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		it, err := scanItemRows(rows)
		if err != nil {
			return nil, 0, errors.NewInternal(err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	return items, total, nil
}

// buildListWhere assembles the WHERE clause shared by the count and page
// queries so the two can never disagree.
func buildListWhere(filters ListFilters, includeDeleted bool) (string, []any) {
	var conds []string
	var args []any

	if !includeDeleted {
		conds = append(conds, "deleted_at IS NULL")
	}
	if filters.Defindex != nil {
		conds = append(conds, "defindex = ?")
		args = append(args, *filters.Defindex)
	}
	if filters.Quality != nil {
		conds = append(conds, "quality = ?")
		args = append(args, *filters.Quality)
	}
	if filters.NamePrefix != nil {
		conds = append(conds, "name_norm LIKE ? ESCAPE '\\'")
		args = append(args, escapeLikePrefix(*filters.NamePrefix)+"%")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLikePrefix escapes LIKE metacharacters in a user-supplied prefix.
func escapeLikePrefix(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// CountByQuality returns the number of active items per quality, most
// numerous first.
func CountByQuality(db *sql.DB) ([]QualityCount, error) {
	query := `
		SELECT quality, COUNT(*) AS n
		FROM items
		WHERE deleted_at IS NULL
		GROUP BY quality
		ORDER BY n DESC, quality ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var counts []QualityCount
	for rows.Next() {
		var qc QualityCount
		if err := rows.Scan(&qc.Quality, &qc.Count); err != nil {
			return nil, errors.NewInternal(err)
		}
		counts = append(counts, qc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return counts, nil
}

// All retrieves every item, oldest first, for export.
func All(db *sql.DB, includeDeleted bool) ([]Item, error) {
	query := `
		SELECT id, name_raw, name_norm, sku, defindex, quality,
			created_at, updated_at, deleted_at
		FROM items
	`
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at ASC, id ASC"

	rows, err := db.Query(query)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		it, err := scanItemRows(rows)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return items, nil
}

// scanItem scans a single row into an Item struct.
func scanItem(row *sql.Row) (*Item, error) {
	var (
		it        Item
		nameRaw   sql.NullString
		nameNorm  sql.NullString
		deletedAt sql.NullInt64
	)

	err := row.Scan(
		&it.ID, &nameRaw, &nameNorm, &it.SKU, &it.Defindex, &it.Quality,
		&it.CreatedAt, &it.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	it.NameRaw = fromNullString(nameRaw)
	it.NameNorm = fromNullString(nameNorm)
	if deletedAt.Valid {
		it.DeletedAt = &deletedAt.Int64
	}

	return &it, nil
}

// scanItemRows is scanItem for a multi-row result set.
func scanItemRows(rows *sql.Rows) (*Item, error) {
	var (
		it        Item
		nameRaw   sql.NullString
		nameNorm  sql.NullString
		deletedAt sql.NullInt64
	)

	err := rows.Scan(
		&it.ID, &nameRaw, &nameNorm, &it.SKU, &it.Defindex, &it.Quality,
		&it.CreatedAt, &it.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	it.NameRaw = fromNullString(nameRaw)
	it.NameNorm = fromNullString(nameNorm)
	if deletedAt.Valid {
		it.DeletedAt = &deletedAt.Int64
	}

	return &it, nil
}

// toNullString converts a *string to sql.NullString.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// fromNullString converts a sql.NullString to *string.
func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
