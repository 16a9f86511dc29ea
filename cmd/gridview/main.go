// Package main provides the gridview CLI: list-view queries against an
// admin backend, and a fixture server for local development.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
