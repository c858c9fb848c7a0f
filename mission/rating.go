package mission

// Rating is a Stats snapshot with its classification
type Rating struct {
	Stats          Stats `json:"stats"`
	SilentAssassin bool  `json:"silent_assassin"`
}

// Qualifies reports whether stats is at most some reference combination in
// table, field by field. The table is scanned in order and the first match wins.
func Qualifies(stats Stats, table []Stats) bool {
	for _, ref := range table {
		if stats.LessOrEqual(ref) {
			return true
		}
	}
	return false
}

// Classify returns the Rating for stats against table
func Classify(stats Stats, table []Stats) Rating {
	return Rating{
		Stats:          stats,
		SilentAssassin: Qualifies(stats, table),
	}
}
