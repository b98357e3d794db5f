package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var parseToolDef = mcp.NewTool("sku_parse",
	mcp.WithDescription("Parse one or more SKU strings into typed records. Individual failures are reported per input; the call itself only fails on invalid arguments."),
	mcp.WithArray("skus",
		mcp.Required(),
		mcp.Description("SKU strings to parse (max 100)"),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithBoolean("lenient",
		mcp.Description("Recover from an invalid quality token by substituting Normal quality (overrides config default)"),
	),
)

var canonToolDef = mcp.NewTool("sku_canon",
	mcp.WithDescription("Parse a single SKU string and return its canonical form."),
	mcp.WithString("sku",
		mcp.Required(),
		mcp.Description("SKU string to canonicalize"),
	),
	mcp.WithBoolean("lenient",
		mcp.Description("Recover from an invalid quality token (overrides config default)"),
	),
)

var storeToolDef = mcp.NewTool("sku_store",
	mcp.WithDescription("Parse, canonicalize, and persist an item. Names are optional and unique among active items."),
	mcp.WithString("sku",
		mcp.Required(),
		mcp.Description("SKU string to store (stored in canonical form)"),
	),
	mcp.WithString("name",
		mcp.Description("Optional human-readable name (case-insensitive unique)"),
	),
	mcp.WithString("mode",
		mcp.Description("Name collision behavior: error (default) or replace"),
		mcp.Enum("error", "replace"),
	),
	mcp.WithBoolean("lenient",
		mcp.Description("Recover from an invalid quality token (overrides config default)"),
	),
)

var fetchToolDef = mcp.NewTool("sku_fetch",
	mcp.WithDescription("Fetch a stored item by id or name and decode its SKU into a typed record. Exactly one addressing mode must be used."),
	mcp.WithString("id",
		mcp.Description("Item ULID"),
	),
	mcp.WithString("name",
		mcp.Description("Item name (case-insensitive)"),
	),
	mcp.WithBoolean("include_deleted",
		mcp.Description("Also match soft-deleted items"),
	),
)

var listToolDef = mcp.NewTool("sku_list",
	mcp.WithDescription("List stored items, newest first, with optional filters and pagination."),
	mcp.WithString("quality",
		mcp.Description("Filter by quality name or numeric value (e.g. \"Strange\" or \"11\")"),
	),
	mcp.WithNumber("defindex",
		mcp.Description("Filter by item definition index"),
	),
	mcp.WithString("name_prefix",
		mcp.Description("Filter by name prefix (case-insensitive)"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Page size (default 20, max 100)"),
	),
	mcp.WithNumber("offset",
		mcp.Description("Page offset"),
	),
	mcp.WithBoolean("include_deleted",
		mcp.Description("Include soft-deleted items"),
	),
)

var deleteToolDef = mcp.NewTool("sku_delete",
	mcp.WithDescription("Soft-delete a stored item by id or name. Deleted items stop matching active lookups; their names become reusable."),
	mcp.WithString("id",
		mcp.Description("Item ULID"),
	),
	mcp.WithString("name",
		mcp.Description("Item name (case-insensitive)"),
	),
)

var inventoryToolDef = mcp.NewTool("sku_inventory",
	mcp.WithDescription("Aggregate active items by quality."),
)

var exportToolDef = mcp.NewTool("sku_export",
	mcp.WithDescription("Export items to a JSONL file. Paths must be directly inside ~/.skup/exports or a configured allowed directory."),
	mcp.WithString("path",
		mcp.Description("Destination path (.jsonl); defaults to a timestamped file in ~/.skup/exports"),
	),
	mcp.WithString("quality",
		mcp.Description("Only export items of this quality (name or numeric value)"),
	),
	mcp.WithBoolean("include_deleted",
		mcp.Description("Include soft-deleted items"),
	),
)

var importToolDef = mcp.NewTool("sku_import",
	mcp.WithDescription("Import items from a JSONL export or extract SKUs from a markdown document's code spans and blocks."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Source path (.jsonl or .md)"),
	),
	mcp.WithString("mode",
		mcp.Description("Collision behavior: error (default, atomic), replace, skip, or rename"),
		mcp.Enum("error", "replace", "skip", "rename"),
	),
	mcp.WithBoolean("lenient",
		mcp.Description("Lenient SKU extraction for markdown sources"),
	),
)
