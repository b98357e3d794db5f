package ops

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/db"
	"github.com/tf2tools/skup/internal/errors"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path           string  // optional, default: ~/.skup/exports/<quality>-<timestamp>.jsonl
	Quality        *string // optional filter, name or wire value
	IncludeDeleted bool
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path       string `json:"path"`
	Count      int    `json:"count"`
	ExportedAt int64  `json:"exported_at"`
}

// ExportHeader represents the header line in a JSONL export file.
type ExportHeader struct {
	SkupExport    bool   `json:"_skup_export"`
	SchemaVersion string `json:"schema_version"`
	ExportedAt    int64  `json:"exported_at"`
}

// ExportRecord is one item line in a JSONL export file. The header fields
// are only set on the first line, which carries no item.
type ExportRecord struct {
	SkupExport bool `json:"_skup_export,omitempty"`

	ID        string  `json:"id,omitempty"`
	Name      *string `json:"name,omitempty"`
	SKU       string  `json:"sku,omitempty"`
	CreatedAt int64   `json:"created_at,omitempty"`
	UpdatedAt int64   `json:"updated_at,omitempty"`
	DeletedAt *int64  `json:"deleted_at,omitempty"`
}

// Export exports items to a JSONL file.
func Export(ctx context.Context, database *sql.DB, cfg *config.Config, input ExportInput) (*ExportOutput, error) {
	now := time.Now()
	exportedAt := now.Unix()

	// Resolve the quality filter up front so a bad value fails before I/O.
	var qualityFilter *uint32
	if input.Quality != nil && *input.Quality != "" {
		q, err := ResolveQuality(*input.Quality)
		if err != nil {
			return nil, err
		}
		v := uint32(q)
		qualityFilter = &v
	}

	exportPath := input.Path
	if exportPath == "" {
		var err error
		exportPath, err = defaultExportPath(input.Quality, now)
		if err != nil {
			return nil, err
		}
	}

	// Validate ALL paths (both user-provided and default) for security
	if err := ValidatePath(exportPath, PathCheckWrite, cfg); err != nil {
		return nil, err
	}

	// Ensure parent directory exists
	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	// Write to temp file first, then atomic rename to preserve existing file on failure
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := exportPath + "." + hex.EncodeToString(randBytes) + ".tmp"
	file, err := openFileNoFollow(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	// Clean up temp file on failure (original file is preserved)
	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	header := ExportHeader{
		SkupExport:    true,
		SchemaVersion: "1.0",
		ExportedAt:    exportedAt,
	}
	if err := writeJSONLine(file, header); err != nil {
		return nil, err
	}

	items, err := db.All(database, input.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	count := 0
	for i := range items {
		select {
		case <-ctx.Done():
			return nil, errors.NewCancelled("export")
		default:
		}

		it := &items[i]
		if qualityFilter != nil && it.Quality != *qualityFilter {
			continue
		}

		record := ExportRecord{
			ID:        it.ID,
			Name:      it.NameRaw,
			SKU:       it.SKU,
			CreatedAt: it.CreatedAt,
			UpdatedAt: it.UpdatedAt,
			DeletedAt: it.DeletedAt,
		}
		if err := writeJSONLine(file, record); err != nil {
			return nil, err
		}

		count++
	}

	// Ensure file is written
	if err := file.Sync(); err != nil {
		return nil, errors.NewInternal(err)
	}

	// Close before atomic replace (required on Windows; fine elsewhere).
	if err := file.Close(); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to close export file: %w", err))
	}
	file = nil

	// Check if destination is a symlink (os.Rename would follow it)
	if info, err := os.Lstat(exportPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return nil, errors.NewInternal(fmt.Errorf("export path is a symlink"))
	}

	// Finalize export by renaming temp file into place.
	//
	// Note: On Windows, os.Rename fails if the destination exists. We intentionally
	// fail safely (preserving the existing file) instead of doing a non-atomic
	// delete+rename that could lose the original if rename fails.
	if err := os.Rename(tempPath, exportPath); err != nil {
		if runtime.GOOS == "windows" {
			if _, statErr := os.Stat(exportPath); statErr == nil {
				return nil, errors.NewInvalidRequest("export destination already exists; overwriting is not supported on Windows yet (choose a new path or delete the existing file)")
			}
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}

	success = true
	return &ExportOutput{
		Path:       exportPath,
		Count:      count,
		ExportedAt: exportedAt,
	}, nil
}

// writeJSONLine marshals v and writes it as one newline-terminated line.
func writeJSONLine(file *os.File, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.NewInternal(err)
	}
	if _, err := file.Write(data); err != nil {
		return errors.NewInternal(err)
	}
	if _, err := file.Write([]byte("\n")); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// defaultExportPath generates the default export path.
// Format: ~/.skup/exports/<quality>-<timestamp>.jsonl or all-<timestamp>.jsonl
func defaultExportPath(quality *string, now time.Time) (string, error) {
	exportsDir, err := DefaultExportsDir()
	if err != nil {
		return "", err
	}

	timestamp := now.Format("2006-01-02T150405")
	name := "all"
	if quality != nil && *quality != "" {
		// Normalize first (lowercase, collapse whitespace), then sanitize for
		// filename to prevent traversal/injection via a malicious filter value
		name = SanitizeForFilename(NormalizeName(*quality))
	}

	filename := fmt.Sprintf("%s-%s.jsonl", name, timestamp)
	return filepath.Join(exportsDir, filename), nil
}
