package connect

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/geoforge/drillbridge/pkg/types"
)

// defaultEPSG is the coordinate system assumed when the selection CRS does
// not carry an EPSG code (ETRS89 / UTM zone 32N, the CLI's own default).
const defaultEPSG = "25832"

// xmlDeclaration is prepended to every structured-markup payload.
const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// createOperation is the operation name in structured-data payloads.
const createOperation = "create_drillings"

// epsgCode derives the numeric EPSG code for a batch of points. All points
// of one batch share a CRS, so the first point decides. A CRS without the
// "EPSG:" prefix falls back to defaultEPSG.
func epsgCode(points []types.DrillingPoint) string {
	if len(points) == 0 {
		return defaultEPSG
	}
	crs := points[0].CRS
	if strings.HasPrefix(crs, "EPSG:") {
		return strings.TrimPrefix(crs, "EPSG:")
	}
	return defaultEPSG
}

// formatCoord renders a coordinate the way the CLI expects: shortest decimal
// representation, no exponent.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// anyHasZ reports whether at least one point of the batch carries an
// elevation. The z column is a batch-level decision, not a per-row one.
func anyHasZ(points []types.DrillingPoint) bool {
	for _, p := range points {
		if p.HasZ() {
			return true
		}
	}
	return false
}

// buildDelimitedPayload renders points as tab-separated text for the older
// "import coordinates" command: a header row, then one row per point. The z
// column appears in the header and every row iff any point has an elevation;
// rows without one emit an empty cell.
func buildDelimitedPayload(points []types.DrillingPoint) string {
	hasZ := anyHasZ(points)

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = '\t'

	header := []string{"name", "x", "y"}
	if hasZ {
		header = append(header, "z")
	}
	w.Write(header)

	for _, p := range points {
		row := []string{p.Name, formatCoord(p.X), formatCoord(p.Y)}
		if hasZ {
			z := ""
			if p.HasZ() {
				z = formatCoord(*p.Z)
			}
			row = append(row, z)
		}
		w.Write(row)
	}

	w.Flush()
	return sb.String()
}

// Structured-markup payload model. Container and per-point element names
// depend on the drilling type, so XMLName is filled in at build time.
type xmlDrilling struct {
	XMLName    xml.Name
	Name       string `xml:"name,attr"`
	LocationID string `xml:"location-id,attr"`
	X          string `xml:"x-coordinate,attr"`
	Y          string `xml:"y-coordinate,attr"`
	EPSG       string `xml:"coordinatesystem-epsg-code,attr"`
	Z          string `xml:"z-coordinate-begin,attr,omitempty"`
}

type xmlContainer struct {
	XMLName   xml.Name
	Drillings []xmlDrilling
}

type xmlProject struct {
	XMLName   xml.Name `xml:"project"`
	ID        string   `xml:"id,attr"`
	Container xmlContainer
}

type xmlRoot struct {
	XMLName xml.Name `xml:"ggu-connect"`
	Version string   `xml:"version,attr"`
	Project xmlProject
}

// xmlElementNames maps a drilling type to its container and per-point
// element names in the structured-markup payload.
func xmlElementNames(dtype types.DrillingType) (container, element string) {
	switch dtype {
	case types.DrillingConePenetration:
		return "cone-penetrations", "cone-penetration"
	case types.DrillingDynamicProbing:
		return "percussion-drillings", "percussion-drilling"
	default:
		return "drillings", "drilling"
	}
}

// buildXMLPayload renders points as the structured-markup document consumed
// by the "create drillings" command. Every element gets a freshly generated
// location identifier; identifiers are never reused across calls.
func buildXMLPayload(points []types.DrillingPoint, dtype types.DrillingType, projectID string) (string, error) {
	code := epsgCode(points)
	containerName, elementName := xmlElementNames(dtype)

	container := xmlContainer{XMLName: xml.Name{Local: containerName}}
	for _, p := range points {
		name := p.Name
		if name == "" {
			name = "NEW"
		}

		d := xmlDrilling{
			XMLName:    xml.Name{Local: elementName},
			Name:       name,
			LocationID: uuid.NewString(),
			X:          formatCoord(p.X),
			Y:          formatCoord(p.Y),
			EPSG:       code,
		}
		if p.HasZ() {
			d.Z = formatCoord(*p.Z)
		}
		container.Drillings = append(container.Drillings, d)
	}

	root := xmlRoot{
		Version: "1.0",
		Project: xmlProject{
			ID:        projectID,
			Container: container,
		},
	}

	body, err := xml.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("marshal drilling document: %w", err)
	}
	return xmlDeclaration + string(body), nil
}

// Structured-data payload model for the JSON CLI generation. Absent
// elevations are omitted from the document entirely, never encoded as null.
type jsonDrilling struct {
	Name string   `json:"name"`
	Type string   `json:"type"`
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	Z    *float64 `json:"z,omitempty"`
	CRS  string   `json:"crs"`
}

type jsonPayload struct {
	Operation string         `json:"operation"`
	ProjectID string         `json:"project_id"`
	Drillings []jsonDrilling `json:"drillings"`
}

// buildJSONPayload renders points as the structured-data document consumed
// by the JSON generation of the create command. It carries the same content
// model as the markup form.
func buildJSONPayload(points []types.DrillingPoint, dtype types.DrillingType, projectID string) (string, error) {
	code := epsgCode(points)

	payload := jsonPayload{
		Operation: createOperation,
		ProjectID: projectID,
		Drillings: make([]jsonDrilling, 0, len(points)),
	}
	for _, p := range points {
		name := p.Name
		if name == "" {
			name = "NEW"
		}
		payload.Drillings = append(payload.Drillings, jsonDrilling{
			Name: name,
			Type: string(dtype),
			X:    p.X,
			Y:    p.Y,
			Z:    p.Z,
			CRS:  code,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal drilling payload: %w", err)
	}
	return string(body), nil
}
