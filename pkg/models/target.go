package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Target is a leg's line or threshold. Scrapers emit it as either a JSON
// string ("3+", "25.5") or a bare number (25.5), so it unmarshals from both
// and always round-trips as its string form.
type Target string

// UnmarshalJSON accepts a JSON string or number
func (t *Target) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*t = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Target(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Target(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// String returns the raw target text
func (t Target) String() string {
	return string(t)
}

// IsMilestone reports whether the target carries a "+" suffix
// (e.g. "3+" made threes), which implies an Over-style threshold
func (t Target) IsMilestone() bool {
	return strings.HasSuffix(strings.TrimSpace(string(t)), "+")
}
