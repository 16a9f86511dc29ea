// Root command for the gridview CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/fathomline/gridview/internal/paths"
	"github.com/fathomline/gridview/pkg/gridview"
)

// Global flag values.
var (
	flagConfigDir string
	flagBaseURL   string
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:     "gridview",
	Short:   "Gridview shapes admin backend collections into list views",
	Version: gridview.Version,
	Long: `Gridview fetches a resource collection from an admin backend once and
shapes it entirely client-side: free-text search, field filters, sorting,
and pagination, with foreign-key columns resolved to display values.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		return loadCLIConfig(configDir)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > GRIDVIEW_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
