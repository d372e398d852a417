package connect

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/geoforge/drillbridge/pkg/logging"
	"github.com/geoforge/drillbridge/pkg/types"
)

const clientSubsystem = "Client"

// Viewer target passed to OpenInViewer for the stratigraphy application.
const (
	ViewerAppStratig = "stratig"
	ViewerModeOpen   = "open"
)

// Input errors, reported before any serialization or process spawn.
var (
	ErrNoIdentifiers     = errors.New("no drilling identifiers given")
	ErrNoPoints          = errors.New("no points given")
	ErrProjectIDRequired = errors.New("project ID is required")
)

// commandRunner abstracts process execution so tests can script outcomes.
type commandRunner interface {
	Run(args []string, timeout time.Duration) types.CommandResult
}

// Client is the façade over the orchestration layer. It composes the GUID
// formatter, payload serializers, temp-file handling, process execution, and
// response parsing into the public operations, and implements the
// command-fallback negotiation for drilling creation.
//
// A Client issues at most one child process at a time; operations block the
// calling goroutine until the process exits or times out.
type Client struct {
	settings types.Settings
	runner   commandRunner
}

// NewClient returns a Client bound to the given settings. The settings are
// an explicit value object; the client never reads ambient configuration.
func NewClient(settings types.Settings) *Client {
	return &Client{
		settings: settings,
		runner:   &Runner{ExePath: settings.CLIPath},
	}
}

// dbProfileArgs returns the profile flag when a database profile is
// configured.
func (c *Client) dbProfileArgs() []string {
	if c.settings.DBProfile == "" {
		return nil
	}
	return []string{"--db-profile", c.settings.DBProfile}
}

// OpenInViewer hands the given drilling identifiers to the external viewer
// application. The CLI resolves the project from the first identifier.
// Single attempt, no fallback.
func (c *Client) OpenInViewer(locationIDs []string, app, mode string) error {
	if len(locationIDs) == 0 {
		return ErrNoIdentifiers
	}

	formatted := make([]string, len(locationIDs))
	for i, id := range locationIDs {
		formatted[i] = FormatGUID(id)
	}

	// The CLI requires an output directory even in open mode. It is handed
	// over to the viewer and not removed here.
	outputDir, err := os.MkdirTemp("", tempFilePrefix)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	logging.Info(clientSubsystem, "opening %d drilling(s) in %s", len(formatted), app)

	args := []string{
		"export", "ggu-app",
		"--app", app,
		"--mode", mode,
		"--filter-drilling-ids", strings.Join(formatted, ","),
		"--output", outputDir,
	}
	args = append(args, c.dbProfileArgs()...)

	result := c.runner.Run(args, dataTimeout)
	if !result.Success {
		return errors.New(result.Output)
	}
	return nil
}

// CreateOutcome reports a successful drilling creation. UsedFallback is set
// when the older import command handled the batch; that command cannot
// express drilling types, so every record was created as a borehole.
type CreateOutcome struct {
	Output       string
	UsedFallback bool
}

// CreateDrillings creates drilling records for the given points. It first
// attempts the structured create command in the configured payload format.
// When the deployed CLI rejects that command as unknown, it falls back
// exactly once to the older delimited-text "import coordinates" command.
// Every other failure is terminal and surfaced verbatim.
//
// Temp payload files are removed on every path, success or failure.
func (c *Client) CreateDrillings(points []types.DrillingPoint, dtype types.DrillingType, projectID string) (CreateOutcome, error) {
	if len(points) == 0 {
		return CreateOutcome{}, ErrNoPoints
	}
	if projectID == "" {
		return CreateOutcome{}, ErrProjectIDRequired
	}

	result, err := c.createStructured(points, dtype, projectID)
	if err != nil {
		return CreateOutcome{}, err
	}
	if result.Success {
		return CreateOutcome{Output: result.Output}, nil
	}

	if !isUnknownCommand(result.Output) {
		return CreateOutcome{}, errors.New(result.Output)
	}

	logging.Warn(clientSubsystem, "create command not supported by this CLI build, falling back to coordinate import")

	result, err = c.createViaImport(points, projectID)
	if err != nil {
		return CreateOutcome{}, err
	}
	if !result.Success {
		return CreateOutcome{}, errors.New(result.Output)
	}
	return CreateOutcome{Output: result.Output, UsedFallback: true}, nil
}

// createStructured serializes the batch in the configured payload format and
// issues the structured create command.
func (c *Client) createStructured(points []types.DrillingPoint, dtype types.DrillingType, projectID string) (types.CommandResult, error) {
	var payload, suffix string
	var err error

	switch c.settings.EffectivePayloadFormat() {
	case types.PayloadJSON:
		payload, err = buildJSONPayload(points, dtype, projectID)
		suffix = ".json"
	default:
		payload, err = buildXMLPayload(points, dtype, projectID)
		suffix = ".xml"
	}
	if err != nil {
		return types.CommandResult{}, err
	}

	path, err := createTempFile(payload, suffix)
	if err != nil {
		return types.CommandResult{}, fmt.Errorf("write payload file: %w", err)
	}
	defer removeTempFile(path)

	args := []string{"create", "drillings", "--input", path}
	args = append(args, c.dbProfileArgs()...)

	return c.runner.Run(args, dataTimeout), nil
}

// createViaImport issues the older coordinate-import command with explicit
// column indexes and a header-skip row offset.
func (c *Client) createViaImport(points []types.DrillingPoint, projectID string) (types.CommandResult, error) {
	path, err := createTempFile(buildDelimitedPayload(points), ".csv")
	if err != nil {
		return types.CommandResult{}, fmt.Errorf("write payload file: %w", err)
	}
	defer removeTempFile(path)

	args := []string{
		"import", "coordinates",
		"--input", path,
		"--project", projectID,
		"--col-name", "0",
		"--col-x", "1",
		"--col-y", "2",
		"--start-row", "2",
		"--epsg", epsgCode(points),
	}
	if anyHasZ(points) {
		args = append(args, "--col-z", "3")
	}
	args = append(args, c.dbProfileArgs()...)

	return c.runner.Run(args, dataTimeout), nil
}

// isUnknownCommand matches the failure signature of an older CLI build that
// does not know the structured create command. The substring check against
// stderr text is brittle but it is the only negotiation mechanism the CLI
// offers; keep it for compatibility.
func isUnknownCommand(output string) bool {
	return strings.Contains(strings.ToLower(output), "unknown command")
}

// ListProfiles returns the database profiles known to the CLI.
func (c *Client) ListProfiles() ([]types.ProfileRecord, error) {
	args := append([]string{"config", "profile-list", "-f", "json"}, c.dbProfileArgs()...)

	result := c.runner.Run(args, listTimeout)
	if !result.Success {
		return nil, errors.New(result.Output)
	}
	return parseProfiles(result.Output)
}

// ListProjects returns the projects in the project database.
func (c *Client) ListProjects() ([]types.ProjectRecord, error) {
	args := append([]string{"search", "projects", "-f", "json"}, c.dbProfileArgs()...)

	result := c.runner.Run(args, listTimeout)
	if !result.Success {
		return nil, errors.New(result.Output)
	}
	return parseProjects(result.Output)
}
