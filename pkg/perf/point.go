package perf

// Family is a coarse grouping of athletics disciplines, used by the
// profile statistics screens to split a timeline into chart sections.
type Family string

const (
	FamilyCourses  Family = "Courses"
	FamilySauts    Family = "Sauts"
	FamilyLancers  Family = "Lancers"
	FamilyCombined Family = "Épreuves combinées"
	FamilyAutres   Family = "Autres"
)

// Point is one normalized performance record: an athlete's result in a
// discipline on a given date. Value always holds the most precise numeric
// magnitude derivable from the raw entry (seconds for timed events, meters
// or points otherwise); RawPerformance keeps the original token for display.
type Point struct {
	Date           string   `json:"date"`
	Value          float64  `json:"value"`
	RawPerformance string   `json:"rawPerformance,omitempty"`
	Wind           *float64 `json:"wind,omitempty"`
	Discipline     string   `json:"discipline,omitempty"`
}
