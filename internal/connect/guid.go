package connect

import "strings"

// FormatGUID ensures an identifier is wrapped in curly braces, the form the
// external CLI requires: {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}.
//
// An empty input is returned unchanged; callers treat empty as "absent".
// Interior structure is not validated, only the bracing is normalized, so
// the function is idempotent.
func FormatGUID(value string) string {
	if value == "" {
		return value
	}
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "{") {
		value = "{" + value
	}
	if !strings.HasSuffix(value, "}") {
		value = value + "}"
	}
	return value
}
