package connect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoforge/drillbridge/pkg/types"
)

func TestParseProfilesEnvelopeShapes(t *testing.T) {
	// The same logical list in all three envelope generations.
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "bare array",
			raw:  `[{"name":"a"}]`,
		},
		{
			name: "nested under data",
			raw:  `{"success":true,"data":{"profiles":[{"name":"a"}]}}`,
		},
		{
			name: "flat key",
			raw:  `{"profiles":[{"name":"a"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, err := parseProfiles(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, []types.ProfileRecord{{Name: "a"}}, profiles)
		})
	}
}

func TestParseProfilesDropsNamelessRecords(t *testing.T) {
	profiles, err := parseProfiles(`[{"name":"a"},{"host":"db1"},{"name":""},{"name":"b"}]`)
	require.NoError(t, err)
	assert.Equal(t, []types.ProfileRecord{{Name: "a"}, {Name: "b"}}, profiles)
}

func TestParseProfilesMalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "Fehler: Datenbank nicht erreichbar"},
		{name: "empty output", raw: ""},
		{name: "object without known key", raw: `{"status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, err := parseProfiles(tt.raw)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Empty(t, profiles)
		})
	}
}

func TestParseProfilesEmptyList(t *testing.T) {
	profiles, err := parseProfiles(`[]`)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestParseProjectsEnvelopeShapes(t *testing.T) {
	record := `{"id":"{p1}","name":"Harbor Extension","projectNo":"24-117","customer":"Port Authority","status":"active"}`
	want := []types.ProjectRecord{{
		ID:        "{p1}",
		Name:      "Harbor Extension",
		ProjectNo: "24-117",
		Customer:  "Port Authority",
		Status:    "active",
	}}

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "bare array",
			raw:  `[` + record + `]`,
		},
		{
			name: "nested under data",
			raw:  `{"success":true,"data":{"projects":[` + record + `]}}`,
		},
		{
			name: "flat key",
			raw:  `{"projects":[` + record + `]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, err := parseProjects(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, want, projects)
		})
	}
}

func TestParseProjectsDropsRecordsWithoutID(t *testing.T) {
	projects, err := parseProjects(`{"projects":[{"id":"{p1}","name":"A"},{"name":"orphan"}]}`)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "{p1}", projects[0].ID)
}

func TestParseProjectsMalformedJSON(t *testing.T) {
	projects, err := parseProjects(`{"projects": "not-a-list"`)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Empty(t, projects)
}
