// Package selection reads the feature sets exported by the host mapping
// application. A selection file is a JSON document with the layer's CRS and
// one attribute map per selected feature; attribute names vary between data
// sources, so lookups match a list of known spellings case-insensitively.
package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/geoforge/drillbridge/pkg/types"
)

// Selection errors.
var (
	ErrMalformedSelection = errors.New("malformed selection file")
	ErrNoFeatures         = errors.New("selection contains no features")
	ErrNoLocationIDs      = errors.New("selected features have no location identifier attribute")
	ErrNoProjectID        = errors.New("selected features have no project identifier attribute")
)

// Known attribute spellings for drilling identification, tried in order.
var (
	locationIDFields = []string{"LocationID", "locationid", "location_id", "borehole_location_id"}
	projectIDFields  = []string{"ProjectID", "projectid", "project_id"}
	nameFields       = []string{"BoreholeName", "borehole_name", "name", "Name", "NAME"}
)

// Selection is one batch of features read from a selection file. All
// features share the layer CRS.
type Selection struct {
	LayerName string
	CRS       string

	features []map[string]any
}

// selectionDoc is the on-disk shape of a selection file.
type selectionDoc struct {
	LayerName string           `json:"layer_name"`
	CRS       string           `json:"crs"`
	Features  []map[string]any `json:"features"`
}

// Load reads and parses a selection file.
func Load(path string) (*Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selection file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Selection, error) {
	var doc selectionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSelection, err)
	}
	if len(doc.Features) == 0 {
		return nil, ErrNoFeatures
	}
	return &Selection{
		LayerName: doc.LayerName,
		CRS:       doc.CRS,
		features:  doc.Features,
	}, nil
}

// findString returns the first candidate attribute present in the feature
// with a non-empty string value. Attribute names match case-insensitively.
func findString(attrs map[string]any, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		for key, value := range attrs {
			if !strings.EqualFold(key, candidate) {
				continue
			}
			if s, ok := value.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// findNumber returns the attribute with the given name as a float64.
func findNumber(attrs map[string]any, name string) (float64, bool) {
	v, ok := attrs[name]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// BoreholeRefs extracts the drilling location identifiers and the project
// identifier of the batch. The project is taken from the first feature that
// carries one; all drillings of one selection belong to the same project.
func (s *Selection) BoreholeRefs() (locationIDs []string, projectID string, err error) {
	for _, f := range s.features {
		if id, ok := findString(f, locationIDFields); ok {
			locationIDs = append(locationIDs, id)
		}
		if projectID == "" {
			if id, ok := findString(f, projectIDFields); ok {
				projectID = id
			}
		}
	}

	if len(locationIDs) == 0 {
		return nil, "", ErrNoLocationIDs
	}
	if projectID == "" {
		return nil, "", ErrNoProjectID
	}
	return locationIDs, projectID, nil
}

// Points converts the selected features into drilling points for creation.
// Features without coordinates are skipped. Unnamed points get a generated
// "NEW-<n>" placeholder, numbered per batch starting at 1.
func (s *Selection) Points() []types.DrillingPoint {
	var points []types.DrillingPoint
	for _, f := range s.features {
		x, okX := findNumber(f, "x")
		y, okY := findNumber(f, "y")
		if !okX || !okY {
			continue
		}

		name, ok := findString(f, nameFields)
		if !ok {
			name = fmt.Sprintf("NEW-%d", len(points)+1)
		}

		p := types.DrillingPoint{
			Name: name,
			X:    x,
			Y:    y,
			CRS:  s.CRS,
		}
		if z, okZ := findNumber(f, "z"); okZ {
			p.Z = &z
		}
		points = append(points, p)
	}
	return points
}
