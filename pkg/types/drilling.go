package types

import "errors"

// Drilling type values. The external CLI distinguishes these three kinds of
// subsurface investigation points.
const (
	DrillingBorehole        DrillingType = "borehole"
	DrillingConePenetration DrillingType = "cpt"
	DrillingDynamicProbing  DrillingType = "dpt"
)

// ErrDrillingTypeUnknown is returned when a drilling type value is not one of
// the recognized constants.
var ErrDrillingTypeUnknown = errors.New("unknown drilling type")

// DrillingType identifies the kind of subsurface investigation point to
// create: borehole, cone penetration test, or dynamic probing test.
type DrillingType string

// validDrillingTypes is the set of recognized drilling type values.
var validDrillingTypes = map[DrillingType]bool{
	DrillingBorehole:        true,
	DrillingConePenetration: true,
	DrillingDynamicProbing:  true,
}

// Validate checks that the drilling type is one of the recognized values.
func (t DrillingType) Validate() error {
	if !validDrillingTypes[t] {
		return ErrDrillingTypeUnknown
	}
	return nil
}

// DisplayName returns a human-readable plural form for user-facing messages.
func (t DrillingType) DisplayName() string {
	switch t {
	case DrillingConePenetration:
		return "cone penetration test(s)"
	case DrillingDynamicProbing:
		return "dynamic probing test(s)"
	default:
		return "borehole(s)"
	}
}

// DrillingPoint is a single point selected in the host application, destined
// for the external CLI. Name falls back to a generated placeholder when the
// selection carries no name attribute. Z is a pointer so a legitimate zero
// elevation survives serialization; a nil Z means "no elevation captured".
//
// Points are constructed by the selection reader and treated as immutable
// afterwards. All points of one batch share the same CRS.
type DrillingPoint struct {
	Name string   `json:"name"`
	X    float64  `json:"x"`
	Y    float64  `json:"y"`
	Z    *float64 `json:"z,omitempty"`
	CRS  string   `json:"crs"`
}

// HasZ reports whether the point carries an elevation.
func (p DrillingPoint) HasZ() bool {
	return p.Z != nil
}
