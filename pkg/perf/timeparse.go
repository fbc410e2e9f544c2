package perf

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Results scraped from the aggregation source carry chronos in a bunch of
// notations: "1:45.32", "2'03''33", "10''94", sometimes with unicode prime
// marks or a wind annotation glued in parentheses.

var (
	tokenCleaner = strings.NewReplacer(
		" ", " ", // non-breaking space
		"′", "'", // prime
		"’", "'", // right single quote
		"‘", "'", // left single quote
		"″", `"`, // double prime
		"“", `"`,
		"”", `"`,
	)
	parenAsideRe = regexp.MustCompile(`\([^)]*\)`)

	// time token extraction, in priority order
	timeTokenRes = []*regexp.Regexp{
		regexp.MustCompile(`\d+:\d{2}:\d{2}(?:[.,]\d+)?`),          // H:MM:SS[.ss]
		regexp.MustCompile(`\d+:\d{2}(?:[.,]\d+)?`),                // MM:SS[.ss]
		regexp.MustCompile(`\d+'\s*\d{1,2}''\s*\d+`),               // N' SS'' DD
		regexp.MustCompile(`\d+'\s*\d{1,2}(?:'')?(?:\s*\d{1,2})?`), // N' SS[''] [DD]
		regexp.MustCompile(`\d+''\s*\d{1,2}`),                      // N'' DD
	}

	primeMinSecRe = regexp.MustCompile(`^(\d+)'\s*(\d{1,2})(?:'')?(?:\s*(\d{1,2}))?$`)
	primeSecRe    = regexp.MustCompile(`^(\d+)''\s*(\d{1,2})$`)
	bareSecRe     = regexp.MustCompile(`^(\d+)''$`)
)

// cleanToken maps exotic unicode punctuation to plain ASCII and strips
// parenthesized asides (typically embedded wind annotations).
func cleanToken(s string) string {
	s = tokenCleaner.Replace(s)
	s = parenAsideRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// looksLikeTime reports whether a cleaned token is plausibly a chrono
// rather than a plain measure.
func looksLikeTime(s string) bool {
	if strings.Contains(s, ":") || strings.Contains(s, "''") || strings.Contains(s, `"`) {
		return true
	}
	for i := 0; i < len(s)-1; i++ {
		if s[i] == '\'' && s[i+1] >= '0' && s[i+1] <= '9' {
			return true
		}
	}
	return false
}

// extractTimeToken pulls the best-matching time token out of a cleaned
// string, or returns the whole string when no pattern matches.
func extractTimeToken(s string) string {
	for _, re := range timeTokenRes {
		if m := re.FindString(s); m != "" {
			return m
		}
	}
	return s
}

// parseChrono converts a time token into a duration in seconds.
// Accepted notations: "H:MM:SS[.ss]", "MM:SS[.ss]", "M'SS”DD", "M'SS",
// "SS”DD" and a plain decimal number.
func parseChrono(token string) (float64, bool) {
	token = strings.TrimSpace(strings.ReplaceAll(token, ",", "."))
	if token == "" {
		return 0, false
	}

	if strings.Contains(token, ":") {
		parts := strings.Split(token, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return 0, false
		}
		secs, err := strconv.ParseFloat(strings.TrimSpace(parts[len(parts)-1]), 64)
		if err != nil {
			return 0, false
		}
		total := secs
		multiplier := 60.0
		for i := len(parts) - 2; i >= 0; i-- {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil {
				return 0, false
			}
			total += float64(n) * multiplier
			multiplier *= 60
		}
		return total, true
	}

	if m := primeMinSecRe.FindStringSubmatch(token); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		seconds, _ := strconv.Atoi(m[2])
		total := float64(minutes)*60 + float64(seconds)
		if m[3] != "" {
			cents, _ := strconv.Atoi(m[3])
			total += float64(cents) / 100
		}
		return total, true
	}
	if m := primeSecRe.FindStringSubmatch(token); m != nil {
		seconds, _ := strconv.Atoi(m[1])
		cents, _ := strconv.Atoi(m[2])
		return float64(seconds) + float64(cents)/100, true
	}
	if m := bareSecRe.FindStringSubmatch(token); m != nil {
		seconds, _ := strconv.Atoi(m[1])
		return float64(seconds), true
	}

	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return n, true
	}
	return 0, false
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// parseDate accepts the ISO-ish date strings the aggregation source emits.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
