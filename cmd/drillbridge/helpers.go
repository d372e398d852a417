// Shared helpers for drillbridge CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/geoforge/drillbridge/internal/journal"
	"github.com/geoforge/drillbridge/pkg/logging"
)

const cliSubsystem = "CLI"

// requireCLIConfigured verifies the settings name an existing executable.
// Called before any operation that spawns the external CLI so the user gets
// a configuration hint instead of a spawn failure.
func requireCLIConfigured() error {
	if settings.CLIPath == "" {
		return fmt.Errorf("CLI path is not configured (set it with: drillbridge config set %s <path-to-executable>)", cfgKeyCLIPath)
	}
	if _, err := os.Stat(settings.CLIPath); err != nil {
		return fmt.Errorf("CLI executable not found: %s", settings.CLIPath)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// recordInvocation appends the outcome of one operation to the invocation
// journal. Journal failures are logged, never fatal; the operation outcome
// has already been decided.
func recordInvocation(operation, args string, success bool, message string, started time.Time) {
	dataDir, err := resolveDataDir()
	if err != nil {
		logging.Warn(cliSubsystem, "journal disabled: %v", err)
		return
	}

	j, err := journal.Open(dataDir)
	if err != nil {
		logging.Warn(cliSubsystem, "journal disabled: %v", err)
		return
	}
	defer j.Close()

	err = j.Record(journal.Entry{
		Operation: operation,
		Args:      args,
		Success:   success,
		Message:   message,
		Duration:  time.Since(started),
		StartedAt: started,
	})
	if err != nil {
		logging.Warn(cliSubsystem, "journal write failed: %v", err)
	}
}

// timeRounding is the display precision for journal durations.
const timeRounding = time.Millisecond

// tableMessageLen caps the message column in table output.
const tableMessageLen = 60

// truncateMessage shortens long CLI output for single-line table cells.
func truncateMessage(msg string) string {
	if len(msg) <= tableMessageLen {
		return msg
	}
	return msg[:tableMessageLen-3] + "..."
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
