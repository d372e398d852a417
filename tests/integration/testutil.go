// Package integration provides CLI integration tests for drillbridge.
// The tests build the drillbridge binary and a fake subsurface CLI, then
// drive real processes end to end.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// drillbridgeBin is the path to the built drillbridge binary.
	drillbridgeBin string
	// fakeCLIBin is the path to the built fake subsurface CLI.
	fakeCLIBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config and data
// directory, wired to the fake CLI.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
	// RecordFile receives one line per fake CLI invocation (tab-joined args).
	RecordFile string
	// DumpFile receives the content of the --input file at invocation time.
	DumpFile string
	// Mode selects the fake CLI behavior (see testdata/fakecli).
	Mode string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build binaries: %v", buildErr)
	}
	if drillbridgeBin == "" || fakeCLIBin == "" {
		t.Fatal("binaries not built")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "cli_path: " + fakeCLIBin + "\npayload_format: xml\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:          t,
		TempDir:    tempDir,
		Config:     configDir,
		DataDir:    dataDir,
		RecordFile: filepath.Join(tempDir, "record.txt"),
		DumpFile:   filepath.Join(tempDir, "dump.txt"),
	}
}

// WriteConfig replaces config.yaml with the given content.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	if err := os.WriteFile(filepath.Join(e.Config, "config.yaml"), []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// WriteSelection writes a selection file into the temp dir and returns its path.
func (e *TestEnv) WriteSelection(content string) string {
	e.t.Helper()
	path := filepath.Join(e.TempDir, "selection.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write selection: %v", err)
	}
	return path
}

// CmdResult holds the result of a drillbridge command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes the drillbridge CLI with the given arguments.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(drillbridgeBin, allArgs...)
	cmd.Env = append(os.Environ(),
		"FAKECLI_MODE="+e.Mode,
		"FAKECLI_RECORD="+e.RecordFile,
		"FAKECLI_DUMP="+e.DumpFile,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run drillbridge: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRun executes the drillbridge CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("drillbridge %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// RecordedInvocations returns the argument lines the fake CLI recorded.
func (e *TestEnv) RecordedInvocations() []string {
	e.t.Helper()
	data, err := os.ReadFile(e.RecordFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		e.t.Fatalf("failed to read record file: %v", err)
	}
	var lines []string
	for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}

// DumpedInput returns the --input file content the fake CLI captured.
func (e *TestEnv) DumpedInput() string {
	e.t.Helper()
	data, err := os.ReadFile(e.DumpFile)
	if err != nil {
		e.t.Fatalf("failed to read dump file: %v", err)
	}
	return string(data)
}
