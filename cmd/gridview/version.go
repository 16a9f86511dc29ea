// Version command for the gridview CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fathomline/gridview/pkg/gridview"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gridview version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gridview", gridview.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
