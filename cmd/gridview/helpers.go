// Shared helpers for gridview CLI commands.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fathomline/gridview/internal/client"
	"github.com/fathomline/gridview/pkg/listview"
	"github.com/fathomline/gridview/pkg/types"
)

// newLogger builds a text logger at the configured level.
func newLogger() *slog.Logger {
	var level slog.Level
	switch cliLogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newClient builds a backend client from the loaded configuration.
func newClient(logger *slog.Logger) (*client.Client, error) {
	c, err := client.New(cliConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return c, nil
}

// parseFilterFlags turns repeated --filter field=value flags into setter
// calls on the session.
func parseFilterFlags(v *listview.ListView, filters []string) error {
	for _, f := range filters {
		field, value, ok := strings.Cut(f, "=")
		if !ok || field == "" {
			return fmt.Errorf("invalid --filter %q: expected field=value", f)
		}
		v.SetFilter(field, value)
	}
	return nil
}

// printRecordTable renders the visible page as a text table, one column per
// schema field, with reference columns showing resolved display values.
func printRecordTable(v *listview.ListView, visible []types.Record, totalPages, pageIndex int) {
	if len(visible) == 0 {
		fmt.Println("No records found.")
		return
	}
	// The pipeline clamps the page index internally; mirror that here so
	// the footer never reports a page beyond the last.
	if pageIndex > totalPages {
		pageIndex = totalPages
	}
	if pageIndex < 1 {
		pageIndex = 1
	}

	fields := v.Schema().Fields
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	headers := make([]string, len(fields))
	rules := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = strings.ToUpper(f.Name)
		rules[i] = strings.Repeat("-", len(f.Name))
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	fmt.Fprintln(w, strings.Join(rules, "\t"))

	for _, rec := range visible {
		cells := make([]string, len(fields))
		for i, f := range fields {
			cell := v.Display(rec, f)
			if len(cell) > 40 {
				cell = cell[:37] + "..."
			}
			cells[i] = cell
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()

	fmt.Printf("Page %d of %d (%d record(s) shown)\n", pageIndex, totalPages, len(visible))
}
