package perf

// Grouping and best-mark helpers used by the statistics screens to slice a
// normalized timeline. All of them are pure functions over a point slice;
// the per-render recompute is cheap enough that no caching is done here.

// GroupByFamily splits a timeline by the family of each point's discipline.
// Relative order within each group is preserved, so groups of a sorted
// timeline stay sorted.
func GroupByFamily(points []Point) map[Family][]Point {
	groups := make(map[Family][]Point)
	for _, p := range points {
		family := Classify(p.Discipline)
		groups[family] = append(groups[family], p)
	}
	return groups
}

// GroupByDiscipline splits a timeline by the exact discipline label.
func GroupByDiscipline(points []Point) map[string][]Point {
	groups := make(map[string][]Point)
	for _, p := range points {
		groups[p.Discipline] = append(groups[p.Discipline], p)
	}
	return groups
}

// lowerIsBetter: timed events improve downwards, measured and scored
// events improve upwards.
func lowerIsBetter(family Family) bool {
	return family == FamilyCourses
}

func better(family Family, candidate, current float64) bool {
	if lowerIsBetter(family) {
		return candidate < current
	}
	return candidate > current
}

// Best returns the best mark among the points whose discipline classifies
// into the given family, or nil when the family has no points. Ties keep
// the earliest point of a date-sorted timeline.
func Best(points []Point, family Family) *Point {
	var best *Point
	for i := range points {
		p := points[i]
		if Classify(p.Discipline) != family {
			continue
		}
		if best == nil || better(family, p.Value, best.Value) {
			cp := p
			best = &cp
		}
	}
	return best
}

// SeasonBests returns the best mark per calendar year for the given family.
// Points whose date cannot be parsed are skipped; Normalize never emits
// such points, but callers may hand in hand-built slices.
func SeasonBests(points []Point, family Family) map[int]Point {
	bests := make(map[int]Point)
	for _, p := range points {
		if Classify(p.Discipline) != family {
			continue
		}
		t, ok := parseDate(p.Date)
		if !ok {
			continue
		}
		year := t.Year()
		current, exists := bests[year]
		if !exists || better(family, p.Value, current.Value) {
			bests[year] = p
		}
	}
	return bests
}
