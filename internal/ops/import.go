package ops

import (
	"bufio"
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/db"
	"github.com/tf2tools/skup/internal/errors"
	"github.com/tf2tools/skup/internal/sku"
)

// ImportMode controls collision behavior during import.
type ImportMode string

const (
	ImportModeError   ImportMode = "error"   // fail on collision (atomic)
	ImportModeReplace ImportMode = "replace" // overwrite on collision
	ImportModeSkip    ImportMode = "skip"    // leave existing rows untouched
	ImportModeRename  ImportMode = "rename"  // auto-suffix name on collision
)

// ImportInput contains parameters for the Import operation.
type ImportInput struct {
	Path    string     // required; .jsonl export or .md document
	Mode    ImportMode // default: error
	Lenient *bool      // markdown extraction only
}

// ImportOutput contains the result of the Import operation.
type ImportOutput struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Errors   []ImportError `json:"errors"`
}

// ImportError represents an error that occurred during import.
type ImportError struct {
	Line    int    `json:"line,omitempty"`
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Import imports items from a JSONL export file or a markdown document.
func Import(database *sql.DB, cfg *config.Config, input ImportInput) (*ImportOutput, error) {
	if input.Path == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}
	if input.Mode == "" {
		input.Mode = ImportModeError
	}
	switch input.Mode {
	case ImportModeError, ImportModeReplace, ImportModeSkip, ImportModeRename:
	default:
		return nil, errors.NewInvalidRequest("mode must be one of: error, replace, skip, rename")
	}

	if err := ValidatePath(input.Path, PathCheckRead, cfg); err != nil {
		return nil, err
	}

	file, err := openFileNoFollowRead(input.Path)
	if err != nil {
		if _, ok := err.(*errors.SkupError); ok {
			return nil, err
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to open import file: %w", err))
	}
	defer file.Close()

	var (
		items       []db.Item
		parseErrors []ImportError
	)
	if filepath.Ext(input.Path) == ".md" {
		items, err = extractMarkdownItems(file, cfg, input.Lenient)
		if err != nil {
			return nil, err
		}
	} else {
		items, parseErrors = parseExportFile(file)
	}

	if cfg != nil && cfg.ImportMaxItems > 0 && len(items) > cfg.ImportMaxItems {
		return nil, errors.NewTooManyItems(cfg.ImportMaxItems, len(items))
	}

	// For mode:error, fail on any parse errors
	if input.Mode == ImportModeError && len(parseErrors) > 0 {
		return &ImportOutput{
			Imported: 0,
			Skipped:  0,
			Errors:   parseErrors,
		}, nil
	}

	switch input.Mode {
	case ImportModeError:
		return importModeError(database, items)
	case ImportModeReplace:
		return importModeReplace(database, items, parseErrors)
	case ImportModeSkip:
		return importModeSkip(database, items, parseErrors)
	default:
		return importModeRename(database, items, parseErrors)
	}
}

// parseExportFile parses a JSONL export file into ready-to-insert items.
// Each record's sku is re-parsed strictly; the canonical form is stored.
func parseExportFile(r io.Reader) ([]db.Item, []ImportError) {
	var items []db.Item
	var parseErrors []ImportError

	now := time.Now().Unix()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var record ExportRecord
		if err := json.Unmarshal(line, &record); err != nil {
			parseErrors = append(parseErrors, ImportError{
				Line:    lineNum,
				Code:    "PARSE_ERROR",
				Message: fmt.Sprintf("invalid JSON: %v", err),
			})
			continue
		}

		// Skip header line
		if record.SkupExport {
			continue
		}

		if record.SKU == "" {
			parseErrors = append(parseErrors, ImportError{
				Line:    lineNum,
				ID:      record.ID,
				Code:    "INVALID_RECORD",
				Message: "missing sku field",
			})
			continue
		}

		rec, err := sku.Parse(record.SKU)
		if err != nil {
			parseErrors = append(parseErrors, ImportError{
				Line:    lineNum,
				ID:      record.ID,
				Code:    "PARSE_ERROR",
				Message: fmt.Sprintf("invalid sku %q: %v", record.SKU, err),
			})
			continue
		}

		it := db.Item{
			ID:        record.ID,
			SKU:       rec.String(),
			Defindex:  rec.Defindex,
			Quality:   uint32(rec.Quality),
			CreatedAt: record.CreatedAt,
			UpdatedAt: record.UpdatedAt,
			DeletedAt: record.DeletedAt,
		}
		if it.CreatedAt == 0 {
			it.CreatedAt = now
		}
		if it.UpdatedAt == 0 {
			it.UpdatedAt = it.CreatedAt
		}
		if record.Name != nil {
			norm := NormalizeName(*record.Name)
			if norm != "" {
				it.NameRaw = record.Name
				it.NameNorm = &norm
			}
		}

		items = append(items, it)
	}

	if err := scanner.Err(); err != nil {
		parseErrors = append(parseErrors, ImportError{
			Line:    lineNum,
			Code:    "READ_ERROR",
			Message: fmt.Sprintf("failed to read file: %v", err),
		})
	}

	return items, parseErrors
}

// extractMarkdownItems walks a markdown document's AST and collects SKUs
// from inline code spans and fenced code blocks. Code text that does not
// parse as a SKU is ignored; trade listings mix SKUs with arbitrary prose
// and code, so non-SKU candidates are not errors.
func extractMarkdownItems(r io.Reader, cfg *config.Config, lenient *bool) ([]db.Item, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to read markdown file: %w", err))
	}

	candidates := extractCodeText(source)

	now := time.Now().Unix()
	var items []db.Item
	seen := make(map[string]bool)

	for _, candidate := range candidates {
		rec, err := parseOne(cfg, candidate, lenient)
		if err != nil {
			continue
		}
		canonical := rec.String()
		if seen[canonical] {
			continue
		}
		seen[canonical] = true

		items = append(items, db.Item{
			SKU:       canonical,
			Defindex:  rec.Defindex,
			Quality:   uint32(rec.Quality),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return items, nil
}

// extractCodeText returns the text of every inline code span and every
// fenced or indented code block line in a markdown document.
func extractCodeText(source []byte) []string {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(source))

	var candidates []string
	addLine := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			candidates = append(candidates, s)
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.CodeSpan:
			var buf bytes.Buffer
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					buf.Write(t.Segment.Value(source))
				}
			}
			addLine(buf.String())
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				addLine(string(seg.Value(source)))
			}
		}
		return ast.WalkContinue, nil
	})

	return candidates
}

// importModeError imports all items atomically, rolling back on any collision.
func importModeError(database *sql.DB, items []db.Item) (*ImportOutput, error) {
	tx, err := database.Begin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer tx.Rollback() //nolint:errcheck

	imported := 0

	for i := range items {
		it := items[i]

		if it.ID != "" {
			existing, err := db.GetByID(database, it.ID, true)
			if err != nil && !errors.Is(err, errors.ErrNotFound) {
				return nil, err
			}
			if existing != nil {
				return &ImportOutput{
					Errors: []ImportError{{
						ID:      it.ID,
						Code:    "ID_COLLISION",
						Message: fmt.Sprintf("item with id %q already exists", it.ID),
					}},
				}, nil
			}
		} else {
			it.ID, err = generateULID()
			if err != nil {
				return nil, errors.NewInternal(err)
			}
		}

		if it.NameNorm != nil {
			exists, err := db.CheckNameExists(database, *it.NameNorm)
			if err != nil {
				return nil, err
			}
			if exists {
				name := ""
				if it.NameRaw != nil {
					name = *it.NameRaw
				}
				return &ImportOutput{
					Errors: []ImportError{{
						ID:      it.ID,
						Name:    name,
						Code:    "NAME_COLLISION",
						Message: fmt.Sprintf("item with name %q already exists", name),
					}},
				}, nil
			}
		}

		if err := insertWithTx(tx, &it); err != nil {
			return nil, err
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return &ImportOutput{Imported: imported}, nil
}

// importModeReplace imports items, updating existing rows on collision.
func importModeReplace(database *sql.DB, items []db.Item, parseErrors []ImportError) (*ImportOutput, error) {
	imported := 0
	skipped := len(parseErrors)
	importErrors := append([]ImportError{}, parseErrors...)

	for i := range items {
		it := items[i]

		var existingByID *db.Item
		var err error
		if it.ID != "" {
			existingByID, err = db.GetByID(database, it.ID, true)
			if err != nil && !errors.Is(err, errors.ErrNotFound) {
				return nil, err
			}
		} else {
			it.ID, err = generateULID()
			if err != nil {
				return nil, errors.NewInternal(err)
			}
		}

		var existingByName *db.Item
		if it.NameNorm != nil {
			existingByName, err = db.GetByName(database, *it.NameNorm, true)
			if err != nil && !errors.Is(err, errors.ErrNotFound) {
				return nil, err
			}
		}

		// Ambiguous case: ID matches row A AND name matches different row B
		if existingByID != nil && existingByName != nil && existingByID.ID != existingByName.ID {
			name := ""
			if it.NameRaw != nil {
				name = *it.NameRaw
			}
			importErrors = append(importErrors, ImportError{
				ID:      it.ID,
				Name:    name,
				Code:    "AMBIGUOUS_COLLISION",
				Message: fmt.Sprintf("id %q matches existing item but name %q matches a different item", it.ID, name),
			})
			skipped++
			continue
		}

		switch {
		case existingByID != nil:
			if err := db.UpdateFull(database, &it); err != nil {
				return nil, err
			}
			imported++
		case existingByName != nil:
			// Name collision (different ID): update the existing row, keep new data
			it.ID = existingByName.ID
			if err := db.UpdateFull(database, &it); err != nil {
				return nil, err
			}
			imported++
		default:
			if err := db.Insert(database, &it); err != nil {
				return nil, err
			}
			imported++
		}
	}

	return &ImportOutput{
		Imported: imported,
		Skipped:  skipped,
		Errors:   importErrors,
	}, nil
}

// importModeSkip imports items, leaving existing rows untouched on collision.
func importModeSkip(database *sql.DB, items []db.Item, parseErrors []ImportError) (*ImportOutput, error) {
	imported := 0
	skipped := len(parseErrors)
	importErrors := append([]ImportError{}, parseErrors...)

	for i := range items {
		it := items[i]

		var err error
		if it.ID != "" {
			existing, err := db.GetByID(database, it.ID, true)
			if err != nil && !errors.Is(err, errors.ErrNotFound) {
				return nil, err
			}
			if existing != nil {
				skipped++
				continue
			}
		} else {
			it.ID, err = generateULID()
			if err != nil {
				return nil, errors.NewInternal(err)
			}
		}

		if it.NameNorm != nil {
			exists, err := db.CheckNameExists(database, *it.NameNorm)
			if err != nil {
				return nil, err
			}
			if exists {
				skipped++
				continue
			}
		}

		if err := db.Insert(database, &it); err != nil {
			return nil, err
		}
		imported++
	}

	return &ImportOutput{
		Imported: imported,
		Skipped:  skipped,
		Errors:   importErrors,
	}, nil
}

// importModeRename imports items, auto-renaming on collision.
func importModeRename(database *sql.DB, items []db.Item, parseErrors []ImportError) (*ImportOutput, error) {
	imported := 0
	skipped := len(parseErrors)
	importErrors := append([]ImportError{}, parseErrors...)

	for i := range items {
		it := items[i]

		var err error
		needNewID := it.ID == ""
		if it.ID != "" {
			existing, err := db.GetByID(database, it.ID, true)
			if err != nil && !errors.Is(err, errors.ErrNotFound) {
				return nil, err
			}
			needNewID = existing != nil
		}
		if needNewID {
			it.ID, err = generateULID()
			if err != nil {
				return nil, errors.NewInternal(err)
			}
		}

		if it.NameNorm != nil {
			newName, err := db.FindUniqueName(database, *it.NameNorm)
			if err != nil {
				name := ""
				if it.NameRaw != nil {
					name = *it.NameRaw
				}
				importErrors = append(importErrors, ImportError{
					ID:      it.ID,
					Name:    name,
					Code:    "RENAME_FAILED",
					Message: fmt.Sprintf("failed to find unique name: %v", err),
				})
				skipped++
				continue
			}
			if newName != *it.NameNorm {
				it.NameRaw = &newName
				it.NameNorm = &newName
			}
		}

		if err := db.Insert(database, &it); err != nil {
			name := ""
			if it.NameRaw != nil {
				name = *it.NameRaw
			}
			importErrors = append(importErrors, ImportError{
				ID:      it.ID,
				Name:    name,
				Code:    "INSERT_FAILED",
				Message: fmt.Sprintf("failed to insert: %v", err),
			})
			skipped++
			continue
		}
		imported++
	}

	return &ImportOutput{
		Imported: imported,
		Skipped:  skipped,
		Errors:   importErrors,
	}, nil
}

// insertWithTx inserts an item within a transaction.
func insertWithTx(tx *sql.Tx, it *db.Item) error {
	var nameRaw, nameNorm sql.NullString
	if it.NameRaw != nil {
		nameRaw = sql.NullString{String: *it.NameRaw, Valid: true}
	}
	if it.NameNorm != nil {
		nameNorm = sql.NullString{String: *it.NameNorm, Valid: true}
	}
	var deletedAt sql.NullInt64
	if it.DeletedAt != nil {
		deletedAt = sql.NullInt64{Int64: *it.DeletedAt, Valid: true}
	}

	query := `
		INSERT INTO items (
			id, name_raw, name_norm, sku, defindex, quality,
			created_at, updated_at, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.Exec(query,
		it.ID, nameRaw, nameNorm, it.SKU, it.Defindex, it.Quality,
		it.CreatedAt, it.UpdatedAt, deletedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}
