// Package connect is the orchestration layer around the external
// subsurface-investigation CLI. It builds command-line invocations in the
// on-disk formats the deployed CLI generation understands (XML, JSON,
// tab-delimited text), executes the process under a bounded timeout,
// classifies every failure mode, and parses the CLI's JSON response
// envelopes into stable records.
//
// All domain and database logic lives in the external CLI. This package only
// shapes and transmits data faithfully and reports what the process reports.
package connect
