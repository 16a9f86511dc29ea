// Serve command: run the sqlite-backed fixture backend.
package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/fathomline/gridview/internal/fixture"
	"github.com/fathomline/gridview/internal/paths"
)

var (
	serveAddr    string
	serveDataDir string
	serveSeed    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local fixture backend",
	Long: `Serve runs a sqlite-backed backend implementing the envelope API for
the built-in resources, for local development and demos. With no --seed
file a small sample dataset is loaded.

Example:
  gridview serve
  gridview serve --addr :8590 --seed ./fixtures.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8590", "listen address")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "fixture database directory (default: $(CWD)/.gridview-db)")
	serveCmd.Flags().StringVar(&serveSeed, "seed", "", "YAML seed file (default: embedded sample data)")
}

func runServe(cmd *cobra.Command, args []string) error {
	dataDir, err := paths.ResolveDataDir(serveDataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := fixture.OpenStore(dataDir)
	if err != nil {
		return fmt.Errorf("open fixture store: %w", err)
	}
	defer store.Close()

	if serveSeed != "" {
		err = store.SeedFile(serveSeed)
	} else {
		err = store.SeedDefault()
	}
	if err != nil {
		return fmt.Errorf("seed fixture store: %w", err)
	}

	logger := newLogger()
	srv := fixture.NewServer(store, logger)
	logger.Info("fixture backend listening", "addr", serveAddr)
	fmt.Printf("Fixture backend listening on %s\n", serveAddr)
	return http.ListenAndServe(serveAddr, srv.Handler())
}
