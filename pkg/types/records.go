package types

// CommandResult is the classified outcome of one external CLI invocation.
// Output holds stdout on success. On failure it holds stderr, falling back
// to stdout, falling back to a synthesized "exit code N" message. Callers
// must check Success before assuming either content shape.
type CommandResult struct {
	Success bool
	Output  string
}

// ProfileRecord is one database profile known to the external CLI,
// normalized from whichever JSON envelope version the CLI emitted.
type ProfileRecord struct {
	Name string `json:"name"`
}

// ProjectRecord is one project from the project database. Only ID and Name
// are guaranteed; the remaining fields depend on the CLI generation.
type ProjectRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectNo string `json:"projectNo,omitempty"`
	Customer  string `json:"customer,omitempty"`
	Status    string `json:"status,omitempty"`
}
