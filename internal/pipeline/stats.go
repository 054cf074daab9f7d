package pipeline

// RunStats tracks aggregate counters across a commit.
type RunStats struct {
	Total     int
	Current   int
	Renamed   int
	Skipped   int
	Conflicts int // Conflict and IntraBatchConflict.
	Failed    int
}

// Errors returns conflicts plus failures, the "errors" line of a summary.
func (s *RunStats) Errors() int {
	return s.Conflicts + s.Failed
}

// Add folds one result into the counters.
func (s *RunStats) Add(r Result) {
	s.Current++
	switch r.Outcome {
	case Renamed:
		s.Renamed++
	case Skipped:
		s.Skipped++
	case Conflict, IntraBatchConflict:
		s.Conflicts++
	case Failed:
		s.Failed++
	}
}

// Tally folds results into a RunStats.
func Tally(results []Result) RunStats {
	s := RunStats{Total: len(results)}
	for _, r := range results {
		s.Add(r)
	}
	return s
}

// PreviewStats summarizes a scan.
type PreviewStats struct {
	Total     int
	Unchanged int
	Pending   int
	Conflicts int
}

// Summarize counts items by state.
func Summarize(items []PreviewItem) PreviewStats {
	s := PreviewStats{Total: len(items)}
	for _, it := range items {
		switch it.State() {
		case StateUnchanged:
			s.Unchanged++
		case StatePendingRename:
			s.Pending++
		case StatePendingConflict:
			s.Conflicts++
		}
	}
	return s
}
