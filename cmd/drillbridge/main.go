// Package main provides the drillbridge CLI, the bridge between map-feature
// selections exported from a GIS application and the external
// subsurface-investigation CLI that owns the project database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
