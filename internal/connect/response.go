package connect

import (
	"encoding/json"
	"errors"

	"github.com/geoforge/drillbridge/pkg/types"
)

// ErrMalformedResponse is returned when the CLI exits successfully but its
// stdout is not valid JSON in any known envelope shape.
var ErrMalformedResponse = errors.New("malformed CLI response")

// extractRecords locates the record array inside one of the envelope shapes
// the CLI has emitted over its generations, tried in order:
//
//	[ {...} ]                     bare array (oldest builds)
//	{"data": {"<key>": [...]}}    generic {success, data} wrapper
//	{"<key>": [...]}              flat key
//
// A nil slice with ok=true means the envelope was recognized but empty.
func extractRecords(raw []byte, key string) ([]json.RawMessage, bool) {
	var bare []json.RawMessage
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, true
	}

	var wrapped struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Data != nil {
		if inner, ok := wrapped.Data[key]; ok {
			var records []json.RawMessage
			if err := json.Unmarshal(inner, &records); err == nil {
				return records, true
			}
		}
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(raw, &flat); err == nil {
		if inner, ok := flat[key]; ok {
			var records []json.RawMessage
			if err := json.Unmarshal(inner, &records); err == nil {
				return records, true
			}
		}
	}

	return nil, false
}

// parseProfiles decodes the profile-list output into profile records.
// Records without a name are dropped rather than failing the whole list.
func parseProfiles(rawOutput string) ([]types.ProfileRecord, error) {
	records, ok := extractRecords([]byte(rawOutput), "profiles")
	if !ok {
		return nil, ErrMalformedResponse
	}

	profiles := make([]types.ProfileRecord, 0, len(records))
	for _, raw := range records {
		var p types.ProfileRecord
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		if p.Name == "" {
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// parseProjects decodes the project-search output into project records.
// Records without an id are dropped rather than failing the whole list.
func parseProjects(rawOutput string) ([]types.ProjectRecord, error) {
	records, ok := extractRecords([]byte(rawOutput), "projects")
	if !ok {
		return nil, ErrMalformedResponse
	}

	projects := make([]types.ProjectRecord, 0, len(records))
	for _, raw := range records {
		var p types.ProjectRecord
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		if p.ID == "" {
			continue
		}
		projects = append(projects, p)
	}
	return projects, nil
}
