// Resources command: show the built-in resource schemas.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fathomline/gridview/pkg/schema"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List the known resources and their fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RESOURCE\tFIELD\tKIND\tFLAGS\tREFERENCES")
		for _, name := range schema.Resources() {
			sch, err := schema.Lookup(name)
			if err != nil {
				return err
			}
			for _, f := range sch.Fields {
				var flags []string
				if f.Searchable {
					flags = append(flags, "searchable")
				}
				if f.Sortable {
					flags = append(flags, "sortable")
				}
				ref := ""
				if f.Ref != nil {
					ref = f.Ref.TargetResource + "." + f.Ref.DisplayField
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					name, f.Name, f.Kind, strings.Join(flags, ","), ref)
			}
		}
		return w.Flush()
	},
}
