package types

import "errors"

// Payload formats for the structured create command. The deployed CLI
// generation determines which one it accepts.
const (
	PayloadXML  = "xml"
	PayloadJSON = "json"
)

// Settings validation errors.
var (
	ErrCLIPathEmpty         = errors.New("CLI path not configured")
	ErrPayloadFormatUnknown = errors.New("unknown payload format")
)

// validPayloadFormats is the set of accepted payload format values.
var validPayloadFormats = map[string]bool{
	PayloadXML:  true,
	PayloadJSON: true,
}

// Settings carries the persisted user configuration into the connect layer
// as an explicit value object. The orchestrator never reads ambient
// process-wide state; the CLI front-end resolves configuration once per
// invocation and hands it over here.
type Settings struct {
	// CLIPath is the path to the external CLI executable.
	CLIPath string `json:"cli_path" yaml:"cli_path"`

	// DBProfile is the database profile passed to the CLI, if any.
	DBProfile string `json:"db_profile" yaml:"db_profile"`

	// DefaultProjectID is the project GUID used by create operations when
	// the selection does not carry one.
	DefaultProjectID string `json:"default_project_id" yaml:"default_project_id"`

	// PayloadFormat selects the structured create payload: PayloadXML
	// (default) or PayloadJSON, matching the deployed CLI generation.
	PayloadFormat string `json:"payload_format" yaml:"payload_format"`
}

// Validate checks that the settings are well-formed. It returns a sentinel
// error from this package on failure. An empty PayloadFormat is accepted and
// treated as PayloadXML.
func (s Settings) Validate() error {
	if s.CLIPath == "" {
		return ErrCLIPathEmpty
	}
	if s.PayloadFormat != "" && !validPayloadFormats[s.PayloadFormat] {
		return ErrPayloadFormatUnknown
	}
	return nil
}

// EffectivePayloadFormat returns PayloadFormat, defaulting to PayloadXML
// when unset.
func (s Settings) EffectivePayloadFormat() string {
	if s.PayloadFormat == "" {
		return PayloadXML
	}
	return s.PayloadFormat
}
