// Get command: fetch a single record by id.
package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fathomline/gridview/pkg/schema"
)

var getCmd = &cobra.Command{
	Use:   "get <resource> <id>",
	Short: "Fetch a single record by id",
	Long: `Get fetches one record from the resource's detail endpoint.

Example:
  gridview get users usr-01
  gridview get orders ord-02 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	resource, id := args[0], args[1]
	sch, err := schema.Lookup(resource)
	if err != nil {
		return fmt.Errorf("resource %q: %w", resource, err)
	}

	c, err := newClient(newLogger())
	if err != nil {
		return err
	}

	rec, err := c.FetchOne(cmd.Context(), resource, id)
	if err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	// Schema fields first in declared order, then any extra fields sorted.
	printed := make(map[string]bool)
	for _, f := range sch.Fields {
		if v, ok := rec.StringField(f.Name); ok {
			fmt.Printf("%s: %s\n", f.Name, v)
			printed[f.Name] = true
		}
	}
	var extra []string
	for name := range rec {
		if !printed[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		if v, ok := rec.StringField(name); ok {
			fmt.Printf("%s: %s\n", name, v)
		}
	}
	return nil
}
