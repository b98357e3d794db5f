package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/errors"
	"github.com/tf2tools/skup/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "skup",
		Usage:   "TF2 item SKU parser and store",
		Version: Version,
		Commands: []*cli.Command{
			parseCmd(cfg),
			canonCmd(cfg),
			storeCmd(db, cfg),
			fetchCmd(db),
			listCmd(db),
			deleteCmd(db),
			inventoryCmd(db),
			exportCmd(db, cfg),
			importCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// parseCmd creates the parse command.
func parseCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse SKU strings into typed records (args or one per stdin line)",
		ArgsUsage: "[sku...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "lenient", Usage: "Recover from an invalid quality token"},
		},
		Action: func(c *cli.Context) error {
			skus := c.Args().Slice()
			if len(skus) == 0 && stdinHasData() {
				lines, err := readStdinLines()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				skus = lines
			}
			if len(skus) == 0 {
				return outputError(errors.NewInvalidRequest("at least one sku is required (args or stdin)"))
			}

			input := ops.ParseInput{SKUs: skus}
			if c.IsSet("lenient") {
				lenient := c.Bool("lenient")
				input.Lenient = &lenient
			}

			output, err := ops.Parse(cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// canonCmd creates the canon command.
func canonCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "canon",
		Usage:     "Print the canonical form of a SKU",
		ArgsUsage: "<sku>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "lenient", Usage: "Recover from an invalid quality token"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Print only the canonical string"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("exactly one sku argument is required"))
			}

			input := ops.CanonInput{SKU: c.Args().First()}
			if c.IsSet("lenient") {
				lenient := c.Bool("lenient")
				input.Lenient = &lenient
			}

			output, err := ops.Canon(cfg, input)
			if err != nil {
				return outputError(err)
			}

			if c.Bool("quiet") {
				fmt.Println(output.Canonical)
				return nil
			}
			return outputJSON(output)
		},
	}
}

// storeCmd creates the store command.
func storeCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "store",
		Usage:     "Parse, canonicalize, and persist an item",
		ArgsUsage: "<sku>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Item name (optional, case-insensitive unique)"},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "error", Usage: "Name collision mode: error|replace"},
			&cli.BoolFlag{Name: "lenient", Usage: "Recover from an invalid quality token"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return outputError(errors.NewInvalidRequest("exactly one sku argument is required"))
			}

			input := ops.StoreInput{
				SKU:  c.Args().First(),
				Mode: ops.StoreMode(c.String("mode")),
			}
			if name := c.String("name"); name != "" {
				input.Name = &name
			}
			if c.IsSet("lenient") {
				lenient := c.Bool("lenient")
				input.Lenient = &lenient
			}

			output, err := ops.Store(c.Context, db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// fetchCmd creates the fetch command.
func fetchCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch an item by ID or name",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Item name"},
			&cli.BoolFlag{Name: "include-deleted", Usage: "Include soft-deleted items"},
		},
		Action: func(c *cli.Context) error {
			input := ops.FetchInput{
				IncludeDeleted: c.Bool("include-deleted"),
			}

			// Check for positional ID argument
			if c.NArg() > 0 {
				input.ID = c.Args().First()
			} else {
				input.Name = c.String("name")
			}

			output, err := ops.Fetch(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored items, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "quality", Aliases: []string{"q"}, Usage: "Filter by quality name or value"},
			&cli.UintFlag{Name: "defindex", Aliases: []string{"d"}, Usage: "Filter by defindex"},
			&cli.StringFlag{Name: "name-prefix", Usage: "Filter by name prefix"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "Maximum items to return"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
			&cli.BoolFlag{Name: "include-deleted", Usage: "Include soft-deleted items"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ListInput{
				Limit:          c.Int("limit"),
				Offset:         c.Int("offset"),
				IncludeDeleted: c.Bool("include-deleted"),
			}

			if quality := c.String("quality"); quality != "" {
				input.Quality = &quality
			}
			if c.IsSet("defindex") {
				defindex := uint32(c.Uint("defindex"))
				input.Defindex = &defindex
			}
			if prefix := c.String("name-prefix"); prefix != "" {
				input.NamePrefix = &prefix
			}

			output, err := ops.List(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Soft-delete an item",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Item name"},
		},
		Action: func(c *cli.Context) error {
			input := ops.DeleteInput{}

			// Check for positional ID argument
			if c.NArg() > 0 {
				input.ID = c.Args().First()
			} else {
				input.Name = c.String("name")
			}

			output, err := ops.Delete(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// inventoryCmd creates the inventory command.
func inventoryCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "inventory",
		Usage: "Aggregate active items by quality",
		Action: func(c *cli.Context) error {
			output, err := ops.Inventory(db)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export items to a JSONL file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.skup/exports/<quality>-<timestamp>.jsonl)"},
			&cli.StringFlag{Name: "quality", Aliases: []string{"q"}, Usage: "Only export items of this quality"},
			&cli.BoolFlag{Name: "include-deleted", Usage: "Include soft-deleted items"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ExportInput{
				Path:           c.String("path"),
				IncludeDeleted: c.Bool("include-deleted"),
			}

			if quality := c.String("quality"); quality != "" {
				input.Quality = &quality
			}

			output, err := ops.Export(c.Context, db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// importCmd creates the import command.
func importCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import items from a JSONL export or a markdown document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Import file path (.jsonl or .md)"},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "error", Usage: "Collision mode: error|replace|skip|rename"},
			&cli.BoolFlag{Name: "lenient", Usage: "Lenient SKU extraction for markdown sources"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ImportInput{
				Path: c.String("path"),
				Mode: ops.ImportMode(c.String("mode")),
			}
			if c.IsSet("lenient") {
				lenient := c.Bool("lenient")
				input.Lenient = &lenient
			}

			output, err := ops.Import(db, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if skupErr, ok := err.(*errors.SkupError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", skupErr.Code, skupErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdinLines reads stdin and splits it into non-empty trimmed lines.
func readStdinLines() ([]string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
