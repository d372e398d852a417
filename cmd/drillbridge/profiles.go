// Profiles command lists the database profiles the CLI knows about.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/geoforge/drillbridge/internal/connect"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured database profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, args []string) error {
	if err := requireCLIConfigured(); err != nil {
		return err
	}

	started := time.Now()
	profiles, err := connect.NewClient(settings).ListProfiles()

	message := fmt.Sprintf("%d profiles", len(profiles))
	if err != nil {
		message = err.Error()
	}
	recordInvocation("profiles", "", err == nil, message, started)

	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(profiles)
	}

	if len(profiles) == 0 {
		fmt.Println("No database profiles configured.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Profile"})
	for _, p := range profiles {
		t.AppendRow(table.Row{p.Name})
	}
	t.Render()
	return nil
}
