package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/errors"
	"github.com/tf2tools/skup/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	db  *sql.DB
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{db: db, cfg: cfg}
}

// Request types for each tool

// ParseRequest represents the arguments for sku_parse.
type ParseRequest struct {
	SKUs    []string `json:"skus"`
	Lenient *bool    `json:"lenient,omitempty"`
}

// CanonRequest represents the arguments for sku_canon.
type CanonRequest struct {
	SKU     string `json:"sku"`
	Lenient *bool  `json:"lenient,omitempty"`
}

// StoreRequest represents the arguments for sku_store.
type StoreRequest struct {
	SKU     string  `json:"sku"`
	Name    *string `json:"name,omitempty"`
	Mode    string  `json:"mode,omitempty"`
	Lenient *bool   `json:"lenient,omitempty"`
}

// FetchRequest represents the arguments for sku_fetch.
type FetchRequest struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
}

// ListRequest represents the arguments for sku_list.
type ListRequest struct {
	Quality        *string `json:"quality,omitempty"`
	Defindex       *uint32 `json:"defindex,omitempty"`
	NamePrefix     *string `json:"name_prefix,omitempty"`
	Limit          int     `json:"limit,omitempty"`
	Offset         int     `json:"offset,omitempty"`
	IncludeDeleted bool    `json:"include_deleted,omitempty"`
}

// DeleteRequest represents the arguments for sku_delete.
type DeleteRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// ExportRequest represents the arguments for sku_export.
type ExportRequest struct {
	Path           string  `json:"path,omitempty"`
	Quality        *string `json:"quality,omitempty"`
	IncludeDeleted bool    `json:"include_deleted,omitempty"`
}

// ImportRequest represents the arguments for sku_import.
type ImportRequest struct {
	Path    string `json:"path"`
	Mode    string `json:"mode,omitempty"`
	Lenient *bool  `json:"lenient,omitempty"`
}

// Handler implementations

// HandleParse handles the sku_parse tool call.
func (h *Handlers) HandleParse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ParseRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Parse(h.cfg, ops.ParseInput{
		SKUs:    input.SKUs,
		Lenient: input.Lenient,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCanon handles the sku_canon tool call.
func (h *Handlers) HandleCanon(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CanonRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Canon(h.cfg, ops.CanonInput{
		SKU:     input.SKU,
		Lenient: input.Lenient,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStore handles the sku_store tool call.
func (h *Handlers) HandleStore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[StoreRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	mode := ops.StoreModeError
	if input.Mode == "replace" {
		mode = ops.StoreModeReplace
	}

	result, err := ops.Store(ctx, h.db, h.cfg, ops.StoreInput{
		SKU:     input.SKU,
		Name:    input.Name,
		Mode:    mode,
		Lenient: input.Lenient,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the sku_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(h.db, ops.FetchInput{
		ID:             input.ID,
		Name:           input.Name,
		IncludeDeleted: input.IncludeDeleted,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the sku_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.db, ops.ListInput{
		Quality:        input.Quality,
		Defindex:       input.Defindex,
		NamePrefix:     input.NamePrefix,
		Limit:          input.Limit,
		Offset:         input.Offset,
		IncludeDeleted: input.IncludeDeleted,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the sku_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(h.db, ops.DeleteInput{
		ID:   input.ID,
		Name: input.Name,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleInventory handles the sku_inventory tool call.
func (h *Handlers) HandleInventory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Inventory(h.db)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the sku_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(ctx, h.db, h.cfg, ops.ExportInput{
		Path:           input.Path,
		Quality:        input.Quality,
		IncludeDeleted: input.IncludeDeleted,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleImport handles the sku_import tool call.
func (h *Handlers) HandleImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ImportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Import(h.db, h.cfg, ops.ImportInput{
		Path:    input.Path,
		Mode:    ops.ImportMode(input.Mode),
		Lenient: input.Lenient,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	var skupErr *errors.SkupError
	if stderrors.As(err, &skupErr) {
		// Wrapped errors keep their wrapper context in the message.
		msg := skupErr.Message
		if err.Error() != skupErr.Error() {
			msg = err.Error()
		}
		errorObj := map[string]any{
			"code":    skupErr.Code,
			"message": msg,
			"status":  skupErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if skupErr.Code != errors.ErrInternal && skupErr.Details != nil {
			errorObj["details"] = skupErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
