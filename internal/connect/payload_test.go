package connect

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoforge/drillbridge/pkg/types"
)

func floatPtr(v float64) *float64 { return &v }

func TestEpsgCode(t *testing.T) {
	tests := []struct {
		name string
		crs  string
		want string
	}{
		{
			name: "epsg prefix is stripped",
			crs:  "EPSG:31468",
			want: "31468",
		},
		{
			name: "default batch crs",
			crs:  "EPSG:25832",
			want: "25832",
		},
		{
			name: "non-epsg crs falls back",
			crs:  "DHDN / Gauss-Kruger zone 4",
			want: "25832",
		},
		{
			name: "empty crs falls back",
			crs:  "",
			want: "25832",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := []types.DrillingPoint{{Name: "BH-1", X: 1, Y: 2, CRS: tt.crs}}
			assert.Equal(t, tt.want, epsgCode(points))
		})
	}

	t.Run("empty batch falls back", func(t *testing.T) {
		assert.Equal(t, "25832", epsgCode(nil))
	})
}

func TestBuildDelimitedPayloadWithoutZ(t *testing.T) {
	points := []types.DrillingPoint{
		{Name: "BH-1", X: 357812.12, Y: 5812341.44, CRS: "EPSG:25832"},
		{Name: "BH-2", X: 357813.0, Y: 5812342.0, CRS: "EPSG:25832"},
	}

	payload := buildDelimitedPayload(points)
	lines := strings.Split(strings.TrimRight(payload, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "name\tx\ty", lines[0])
	assert.Equal(t, "BH-1\t357812.12\t5812341.44", lines[1])
	assert.Equal(t, "BH-2\t357813\t5812342", lines[2])
}

func TestBuildDelimitedPayloadWithZ(t *testing.T) {
	// One point with z is enough to add the column for the whole batch.
	points := []types.DrillingPoint{
		{Name: "BH-1", X: 357812.12, Y: 5812341.44, CRS: "EPSG:25832"},
		{Name: "BH-2", X: 357813.0, Y: 5812342.0, Z: floatPtr(45.5), CRS: "EPSG:25832"},
	}

	payload := buildDelimitedPayload(points)
	lines := strings.Split(strings.TrimRight(payload, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "name\tx\ty\tz", lines[0])
	assert.Equal(t, "BH-1\t357812.12\t5812341.44\t", lines[1], "row without z gets an empty trailing cell")
	assert.Equal(t, "BH-2\t357813\t5812342\t45.5", lines[2])
}

func TestBuildDelimitedPayloadZeroElevation(t *testing.T) {
	points := []types.DrillingPoint{
		{Name: "BH-1", X: 1, Y: 2, Z: floatPtr(0), CRS: "EPSG:25832"},
	}

	payload := buildDelimitedPayload(points)
	lines := strings.Split(strings.TrimRight(payload, "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "name\tx\ty\tz", lines[0])
	assert.Equal(t, "BH-1\t1\t2\t0", lines[1], "a zero elevation must not be dropped")
}

func TestBuildXMLPayload(t *testing.T) {
	points := []types.DrillingPoint{
		{Name: "BH-1", X: 357812.12, Y: 5812341.44, CRS: "EPSG:25832"},
		{Name: "BH-2", X: 357813.0, Y: 5812342.0, Z: floatPtr(45.5), CRS: "EPSG:25832"},
	}

	payload, err := buildXMLPayload(points, types.DrillingBorehole, "{aaaa}")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(payload, xmlDeclaration))
	assert.Contains(t, payload, `<ggu-connect version="1.0">`)
	assert.Contains(t, payload, `<project id="{aaaa}">`)
	assert.Contains(t, payload, "<drillings>")
	assert.Contains(t, payload, `name="BH-1"`)
	assert.Contains(t, payload, `x-coordinate="357812.12"`)
	assert.Contains(t, payload, `y-coordinate="5812341.44"`)
	assert.Contains(t, payload, `coordinatesystem-epsg-code="25832"`)
	assert.Contains(t, payload, `z-coordinate-begin="45.5"`)

	// The first point has no elevation, so exactly one element carries the
	// z attribute.
	assert.Equal(t, 1, strings.Count(payload, "z-coordinate-begin"))
}

func TestBuildXMLPayloadContainerNames(t *testing.T) {
	tests := []struct {
		name      string
		dtype     types.DrillingType
		container string
		element   string
	}{
		{
			name:      "borehole",
			dtype:     types.DrillingBorehole,
			container: "drillings",
			element:   "drilling",
		},
		{
			name:      "cone penetration test",
			dtype:     types.DrillingConePenetration,
			container: "cone-penetrations",
			element:   "cone-penetration",
		},
		{
			name:      "dynamic probing test",
			dtype:     types.DrillingDynamicProbing,
			container: "percussion-drillings",
			element:   "percussion-drilling",
		},
		{
			name:      "unknown type maps to boreholes",
			dtype:     types.DrillingType("other"),
			container: "drillings",
			element:   "drilling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := []types.DrillingPoint{{Name: "P-1", X: 1, Y: 2, CRS: "EPSG:25832"}}
			payload, err := buildXMLPayload(points, tt.dtype, "pid")
			require.NoError(t, err)

			assert.Contains(t, payload, "<"+tt.container+">")
			assert.Contains(t, payload, "<"+tt.element+" ")
		})
	}
}

func TestBuildXMLPayloadGeneratesFreshLocationIDs(t *testing.T) {
	points := []types.DrillingPoint{{Name: "P-1", X: 1, Y: 2, CRS: "EPSG:25832"}}

	first, err := buildXMLPayload(points, types.DrillingBorehole, "pid")
	require.NoError(t, err)
	second, err := buildXMLPayload(points, types.DrillingBorehole, "pid")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "location identifiers must not be reused across calls")
}

func TestBuildJSONPayload(t *testing.T) {
	points := []types.DrillingPoint{
		{Name: "BH-1", X: 357812.12, Y: 5812341.44, CRS: "EPSG:25832"},
		{Name: "BH-2", X: 357813.0, Y: 5812342.0, Z: floatPtr(45.5), CRS: "EPSG:25832"},
	}

	payload, err := buildJSONPayload(points, types.DrillingConePenetration, "{pid}")
	require.NoError(t, err)

	var decoded struct {
		Operation string `json:"operation"`
		ProjectID string `json:"project_id"`
		Drillings []map[string]any
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))

	assert.Equal(t, "create_drillings", decoded.Operation)
	assert.Equal(t, "{pid}", decoded.ProjectID)
	require.Len(t, decoded.Drillings, 2)

	first := decoded.Drillings[0]
	assert.Equal(t, "BH-1", first["name"])
	assert.Equal(t, "cpt", first["type"])
	assert.Equal(t, "25832", first["crs"])
	_, hasZ := first["z"]
	assert.False(t, hasZ, "absent z must be omitted, not null")

	second := decoded.Drillings[1]
	assert.Equal(t, 45.5, second["z"])
}
