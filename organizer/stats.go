package organizer

import (
	"time"

	"github.com/filesan-cli/filesan/mover"
)

// Stats aggregates the outcome counters of a single run. It is derived per
// run and never persisted.
type Stats struct {
	Total     int
	Organized int
	Skipped   int
	Errors    int

	// Bytes is the volume of data actually moved.
	Bytes uint64
	// Categories counts organized files per category name.
	Categories map[string]int

	Elapsed time.Duration
}

// NewStats returns zeroed statistics.
func NewStats() *Stats {
	return &Stats{Categories: make(map[string]int)}
}

// observe folds one record into the counters.
func (s *Stats) observe(rec mover.Record, categoryName string, size int64) {
	s.Total++

	switch rec.Outcome {
	case mover.Moved:
		s.Organized++
		s.Bytes += uint64(size)
		s.Categories[categoryName]++
	case mover.Skipped:
		s.Skipped++
	case mover.Errored:
		s.Errors++
	}
}
