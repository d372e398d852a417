// History command shows recent CLI invocations from the journal.
package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/geoforge/drillbridge/internal/journal"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent CLI invocations",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	j, err := journal.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	entries, err := j.List(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("list journal: %w", err)
	}

	if flagJSON {
		return printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No invocations recorded yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Started", "Operation", "Args", "OK", "Duration", "Message"})
	for _, e := range entries {
		ok := "yes"
		if !e.Success {
			ok = "no"
		}
		t.AppendRow(table.Row{
			e.StartedAt.Local().Format("2006-01-02 15:04:05"),
			e.Operation,
			e.Args,
			ok,
			e.Duration.Round(timeRounding).String(),
			truncateMessage(e.Message),
		})
	}
	t.Render()
	return nil
}
