package connect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/geoforge/drillbridge/pkg/logging"
	"github.com/geoforge/drillbridge/pkg/types"
)

const runnerSubsystem = "Runner"

// Wall-clock bounds for external CLI invocations. Data operations may move
// whole projects and get the long bound; listing and status commands answer
// from the database index and get the short one.
const (
	dataTimeout = 300 * time.Second
	listTimeout = 15 * time.Second
)

// execCommandContext is a variable to allow mocking in tests.
var execCommandContext = exec.CommandContext

// Runner invokes the external CLI executable. One child process is spawned
// and awaited per call; a timeout forcibly terminates it so no process
// outlives the call.
type Runner struct {
	// ExePath is the configured path to the CLI executable.
	ExePath string
}

// Run executes the CLI with the given argument vector and classifies the
// outcome. It never returns an error; every failure mode is folded into the
// CommandResult so callers have a single channel for success payloads and
// human-readable error text.
func (r *Runner) Run(args []string, timeout time.Duration) types.CommandResult {
	if r.ExePath == "" {
		logging.Warn(runnerSubsystem, "CLI path not configured")
		return types.CommandResult{Output: "CLI path not configured"}
	}
	if _, err := os.Stat(r.ExePath); err != nil {
		logging.Warn(runnerSubsystem, "CLI executable not found: %s", r.ExePath)
		return types.CommandResult{Output: fmt.Sprintf("CLI executable not found: %s", r.ExePath)}
	}

	logging.Info(runnerSubsystem, "executing: %s %s", r.ExePath, strings.Join(args, " "))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := execCommandContext(ctx, r.ExePath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	logging.Debug(runnerSubsystem, "stdout %d bytes, stderr %d bytes", stdout.Len(), stderr.Len())

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		logging.Error(runnerSubsystem, ctx.Err(), "command timed out after %s", timeout)
		return types.CommandResult{Output: fmt.Sprintf("command timed out after %s", timeout)}
	}

	if err == nil {
		return types.CommandResult{Success: true, Output: stdout.String()}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			msg = fmt.Sprintf("exit code %d", exitErr.ExitCode())
		}
		logging.Warn(runnerSubsystem, "command failed: %s", msg)
		return types.CommandResult{Output: msg}
	}

	// The executable can vanish between the Stat check and the spawn.
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return types.CommandResult{Output: fmt.Sprintf("CLI executable not found: %s", r.ExePath)}
	}

	logging.Error(runnerSubsystem, err, "error running CLI")
	return types.CommandResult{Output: fmt.Sprintf("error running CLI: %v", err)}
}
