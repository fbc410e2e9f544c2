package perf

import (
	"encoding/json"
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Normalize converts an arbitrarily-shaped payload of raw performance
// records into a flat list of points, sorted ascending by date.
//
// The payload is whatever the results-aggregation endpoint returned after
// json decoding: either a flat list of entries, or a map from discipline
// name to a list (or a single object) of entries. Anything else yields an
// empty list. Entries missing a parseable date or any usable value field
// are dropped silently; the upstream source is scraped and noisy, so
// partial garbage is expected and never an error.
func Normalize(payload any) []Point {
	points := make([]Point, 0)

	switch p := payload.(type) {
	case []any:
		for _, raw := range p {
			if point, ok := normalizeEntry(raw, ""); ok {
				points = append(points, point)
			}
		}
	case map[string]any:
		for _, discipline := range sortedKeys(p) {
			switch v := p[discipline].(type) {
			case []any:
				for _, raw := range v {
					if point, ok := normalizeEntry(raw, discipline); ok {
						points = append(points, point)
					}
				}
			case map[string]any:
				if point, ok := normalizeEntry(v, discipline); ok {
					points = append(points, point)
				}
			}
		}
	}

	sortPointsByDate(points)
	return points
}

// NormalizeJSON decodes a raw JSON body and normalizes it. Invalid JSON
// yields an empty list, matching the tolerance of Normalize itself.
func NormalizeJSON(data []byte) []Point {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return []Point{}
	}
	return Normalize(payload)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortPointsByDate(points []Point) {
	type keyed struct {
		point Point
		at    time.Time
	}
	keyedPoints := make([]keyed, len(points))
	for i, p := range points {
		t, _ := parseDate(p.Date)
		keyedPoints[i] = keyed{point: p, at: t}
	}
	sort.SliceStable(keyedPoints, func(i, j int) bool {
		return keyedPoints[i].at.Before(keyedPoints[j].at)
	})
	for i := range keyedPoints {
		points[i] = keyedPoints[i].point
	}
}

func normalizeEntry(raw any, disciplineHint string) (Point, bool) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return Point{}, false
	}

	date, ok := entry["date"].(string)
	if !ok || date == "" {
		return Point{}, false
	}
	if _, ok := parseDate(date); !ok {
		return Point{}, false
	}

	value := entry["value"]
	rawPerf := firstPresent(entry, "rawPerformance", "performance")
	if rawPerf == nil {
		rawPerf = value
	}
	if value == nil && rawPerf == nil {
		return Point{}, false
	}

	numeric, ok := extractValue(value, rawPerf)
	if !ok {
		return Point{}, false
	}

	rawString, _ := rawPerf.(string)
	point := Point{
		Date:           date,
		Value:          numeric,
		RawPerformance: displayToken(rawPerf),
		Wind:           extractWind(entry, rawString),
		Discipline:     disciplineHint,
	}
	if d, ok := entry["discipline"].(string); ok && d != "" {
		point.Discipline = d
	}
	return point, true
}

func firstPresent(entry map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := entry[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

var embeddedDecimalRe = regexp.MustCompile(`\d+[.,]\d+`)

// extractValue derives the most precise numeric magnitude available from
// a raw entry. Priority: a chrono parsed out of the raw token, then a
// decimal embedded in the token when the plain value is a rounded integer,
// then the plain numeric value.
func extractValue(value, rawPerf any) (float64, bool) {
	numeric, hasNumeric := toNumber(value)
	isInteger := hasNumeric && numeric == math.Trunc(numeric)

	if raw, isString := rawPerf.(string); isString {
		cleaned := cleanToken(raw)
		if looksLikeTime(cleaned) {
			token := extractTimeToken(replaceDoublePrime(cleaned))
			if secs, ok := parseChrono(token); ok && secs > 0 {
				return secs, true
			}
		}
		if hasNumeric && isInteger {
			// A rounded integer summary can hide a more precise chrono in
			// the display string, e.g. value 6 vs performance "6,70".
			if m := embeddedDecimalRe.FindString(cleaned); m != "" {
				if dec, ok := parseChrono(m); ok && dec != numeric {
					return dec, true
				}
			}
		}
	}

	if hasNumeric {
		return numeric, true
	}
	return 0, false
}

func replaceDoublePrime(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			out = append(out, '\'', '\'')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func displayToken(rawPerf any) string {
	switch t := rawPerf.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return ""
}
