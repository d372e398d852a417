// Projects command lists the projects in the active database profile.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/geoforge/drillbridge/internal/connect"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects in the active database profile",
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func runProjects(cmd *cobra.Command, args []string) error {
	if err := requireCLIConfigured(); err != nil {
		return err
	}

	started := time.Now()
	projects, err := connect.NewClient(settings).ListProjects()

	message := fmt.Sprintf("%d projects", len(projects))
	if err != nil {
		message = err.Error()
	}
	recordInvocation("projects", "", err == nil, message, started)

	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(projects)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"ID", "Name", "Project No", "Customer", "Status"})
	for _, p := range projects {
		t.AppendRow(table.Row{p.ID, p.Name, p.ProjectNo, p.Customer, p.Status})
	}
	t.Render()
	return nil
}
