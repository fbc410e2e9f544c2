package perf

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	windUnitRe   = regexp.MustCompile(`(?i)([+-]?\d+(?:[.,]\d+)?)\s*m\s*/\s*s`)
	signedNumRe  = regexp.MustCompile(`[+-]\d+(?:[.,]\d+)?`)
	windMarkerRe = regexp.MustCompile(`(?i)vent|m\s*/\s*s`)
)

// hasWindMarker reports whether a free-text field plausibly carries a wind
// reading: the word "vent", an m/s unit, or an explicit sign.
func hasWindMarker(s string) bool {
	return windMarkerRe.MatchString(s) || strings.ContainsAny(s, "+-")
}

// windFromString extracts a signed wind reading out of free text.
// Units-qualified numbers win over bare signed numbers; anything else is
// too ambiguous to trust (markers only decide whether a field is examined
// at all, see extractWind).
func windFromString(s string) *float64 {
	if m := windUnitRe.FindStringSubmatch(s); m != nil {
		return parseWindNumber(m[1])
	}
	if m := signedNumRe.FindString(s); m != "" {
		return parseWindNumber(m)
	}
	return nil
}

func parseWindNumber(s string) *float64 {
	n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil
	}
	return &n
}

// extractWind pulls a wind reading out of a raw entry, trying the dedicated
// fields first and falling back to marker-gated free-text fields. Returns
// nil when nothing could be confidently extracted.
func extractWind(entry map[string]any, rawPerformance string) *float64 {
	for _, key := range []string{"wind", "vent"} {
		v, ok := entry[key]
		if !ok || v == nil {
			continue
		}
		switch w := v.(type) {
		case float64:
			n := w
			return &n
		case string:
			trimmed := strings.TrimSpace(w)
			if n, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", "."), 64); err == nil {
				return &n
			}
			if hasWindMarker(trimmed) {
				if n := windFromString(trimmed); n != nil {
					return n
				}
			}
		}
	}

	for _, key := range []string{"meeting", "notes"} {
		s, ok := entry[key].(string)
		if !ok || !hasWindMarker(s) {
			continue
		}
		if n := windFromString(s); n != nil {
			return n
		}
	}

	if rawPerformance != "" && hasWindMarker(rawPerformance) {
		return windFromString(rawPerformance)
	}
	return nil
}
