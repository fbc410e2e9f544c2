package perf

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Discipline names come from scraped results and from user input, so the
// same event shows up as "Saut en longueur", "saut en Longueur", "LONGUEUR"
// and worse. Classification first folds the name down to bare lowercase
// ascii-ish text, then walks a fixed priority list of regex families.

var (
	// NFD decompose, drop combining marks, recompose: "Décathlon" -> "Decathlon"
	marksStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonAlnumSpaceRe = regexp.MustCompile(`[^a-z0-9 ]+`)
)

type familyRule struct {
	family Family
	re     *regexp.Regexp
	// compactRe, when set, is matched against the whitespace-collapsed
	// form for boundary-sensitive patterns like "60m".
	compactRe *regexp.Regexp
}

// Priority order matters: a combined-event name containing a distance
// ("decathlon 100m") must still land in the combined family. Keep the
// order combined -> jumps -> throws -> courses.
var familyRules = []familyRule{
	{
		family: FamilyCombined,
		re:     regexp.MustCompile(`decathlon|heptathlon|pentathlon`),
	},
	{
		family: FamilySauts,
		re:     regexp.MustCompile(`longueur|hauteur|perche|triple`),
	},
	{
		family: FamilyLancers,
		re:     regexp.MustCompile(`javelot|disque|marteau|poids`),
	},
	{
		family:    FamilyCourses,
		re:        regexp.MustCompile(`sprint|demi ?fond|fond|course|haies|relais|relay|km|route|marathon|cross|\b(?:100|200|400|800|1500|5000|10000) ?m\b`),
		compactRe: regexp.MustCompile(`^60m`),
	},
}

// Classify maps a free-text discipline name to its coarse family.
// Pure function, total over any string; unknown names land in Autres.
func Classify(name string) Family {
	normalized := normalizeDisciplineName(name)
	compact := strings.Join(strings.Fields(normalized), "")
	for _, rule := range familyRules {
		if rule.re.MatchString(normalized) {
			return rule.family
		}
		if rule.compactRe != nil && rule.compactRe.MatchString(compact) {
			return rule.family
		}
	}
	return FamilyAutres
}

func normalizeDisciplineName(name string) string {
	stripped, _, err := transform.String(marksStripper, name)
	if err != nil {
		stripped = name
	}
	stripped = strings.ToLower(stripped)
	stripped = nonAlnumSpaceRe.ReplaceAllString(stripped, "")
	return strings.TrimSpace(stripped)
}
